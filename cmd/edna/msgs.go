package edna

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Scaffold projects from reusable templates"
	MsgNewShort         = "Create a new project or template"
	MsgNewProjectShort  = "Creates a new project"
	MsgNewTemplateShort = "Creates a new template"
	MsgInitShort        = "Create the templates registry"
	MsgInitLong         = "Init creates the templates directory and an empty templates registry. An existing registry is left untouched."
	MsgListShort        = "List registered templates"
	MsgListLong         = "List displays the templates offered when creating a project, in registry order."
	MsgGenConfigShort   = "Output a commented configuration file"
	MsgGenConfigLong    = "Gen-config prints edna's configuration with every value commented out. With --write it is saved as the user config file."
	MsgCompletionShort  = "Generate shell completion script"
	MsgVersionShort     = "Print version information"

	// Prompts
	MsgPromptProjectName     = "Enter the project's name (Required)"
	MsgPromptProjectOutput   = "Enter the project's output path"
	MsgPromptTemplate        = "Select a template"
	MsgPromptTemplateName    = "Enter the template's name (Required)"
	MsgPromptTemplateAuthor  = "Enter the template's author"
	MsgPromptTemplateVersion = "Enter the template's version"
	MsgPromptTemplateDesc    = "Enter the template's description"
	MsgPromptExcludeConfig   = "Ignore the template's config when creating project"
	MsgPromptExcludePaths    = "Ignore certain paths when copying the template"
	MsgPromptScripts         = "Add initialisation scripts for the project separated by a comma"
	MsgPromptTemplateOutput  = "Where in the templates directory to create it"
	MsgPromptTemplateSource  = "The folder to be used when creating the template"

	// Status messages
	MsgRunningScripts     = "Running scripts..."
	MsgScriptsSucceeded   = "Scripts completed successfully!"
	MsgScriptsFailed      = "Scripts completed with errors."
	MsgNoScripts          = "No scripts to run."
	MsgAllTheBest         = "All the best!"
	MsgTemplateCreated    = "Template created!"
	MsgRegistryCreated    = "Created templates registry at %s"
	MsgRegistryExists     = "Templates registry already exists at %s"
	MsgSkippedTemplate    = "Skipped %s: %s does not exist"
	MsgConfigWritten      = "Written config file %s"
	MsgVersionFormat      = "edna version %s\n  commit: %s\n  built:  %s\n"
	MsgErrorFormat        = "Error: %v"
	MsgNoCommandSpecified = "no command specified"

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagTemplatesDir   = "Directory holding the templates registry"
	MsgFlagProjectName    = "The name of the project to be created"
	MsgFlagProjectDesc    = "The description of the project"
	MsgFlagProjectVersion = "The version of the project"
	MsgFlagProjectAuthor  = "The author of the project"
	MsgFlagProjectOutput  = "Sets a custom path where the project will be created"
	MsgFlagTemplate       = "The registered name or path of the template for the new project"
	MsgFlagEmpty          = "Creates an empty project"
	MsgFlagSource         = "The source path for the template"
	MsgFlagTemplateOutput = "Where in the templates directory to create the new template"
	MsgFlagTemplateName   = "The name of the template"
	MsgFlagTemplateDesc   = "The description of the template"
	MsgFlagTemplateVer    = "The version of the template"
	MsgFlagTemplateAuthor = "The author of the template"
	MsgFlagExcludeConfig  = "Exclude the config file when copying the template"
	MsgFlagExcludePaths   = "Exclude certain paths when copying the template"
	MsgFlagScript         = "Add initialisation scripts to run when the project is created"
	MsgFlagWrite          = "Write the config file instead of printing it"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/new-project-long.txt
	msgNewProjectLongRaw string
	MsgNewProjectLong    = strings.TrimSpace(msgNewProjectLongRaw)

	//go:embed msgs/new-template-long.txt
	msgNewTemplateLongRaw string
	MsgNewTemplateLong    = strings.TrimSpace(msgNewTemplateLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
