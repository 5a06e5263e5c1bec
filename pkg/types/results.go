package types

// Outcome is the non-fatal result of instantiating a project
type Outcome string

const (
	// OutcomeCreated means an empty project directory was created
	OutcomeCreated Outcome = "created"
	// OutcomeNoScripts means files were copied and the template has no scripts
	OutcomeNoScripts Outcome = "no_scripts"
	// OutcomeScriptsSucceeded means the init scripts exited with status 0
	OutcomeScriptsSucceeded Outcome = "scripts_succeeded"
	// OutcomeScriptsFailed means the init scripts exited non-zero; the project is kept
	OutcomeScriptsFailed Outcome = "scripts_failed"
)

// ScriptResult is the captured output of one shell invocation
type ScriptResult struct {
	Shell    string
	Args     []string
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the shell exited with status 0
func (r *ScriptResult) Success() bool {
	return r != nil && r.ExitCode == 0
}

// NewProjectResult holds the result of instantiating a project
type NewProjectResult struct {
	ProjectPath  string
	TemplatePath string
	Template     *TemplateConfig
	Outcome      Outcome
	Scripts      *ScriptResult
}

// NewTemplateResult holds the result of registering a new template
type NewTemplateResult struct {
	Name       string
	Path       string
	ConfigPath string
	Empty      bool
}

// TemplateListing is one row of the template listing
type TemplateListing struct {
	Index int
	RegisteredTemplate
}

// ListTemplatesResult holds the listing offered for template selection
type ListTemplatesResult struct {
	Templates []TemplateListing
	Skipped   []RegisteredTemplate
}

// Names returns the display names in listing order
func (r *ListTemplatesResult) Names() []string {
	names := make([]string, 0, len(r.Templates))
	for _, t := range r.Templates {
		names = append(names, t.Name)
	}
	return names
}

// InitResult holds the result of initializing the templates registry
type InitResult struct {
	RegistryPath string
	Created      bool
}

// GenConfigResult holds the result of the gen-config command
type GenConfigResult struct {
	ConfigContent string
	FilesWritten  []string
}
