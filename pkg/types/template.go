package types

import (
	"path/filepath"
)

// Discriminator values for the "target" field of edna documents
const (
	TargetProject   = "project"
	TargetTemplates = "templates"
)

// Defaults applied when a template config is synthesized
const (
	DefaultTemplateVersion = "1.0.0"
)

// TemplateConfig is the per-template metadata file stored at the template root.
type TemplateConfig struct {
	// Target must always be TargetProject
	Target      string `json:"target"`
	Name        string `json:"name"`
	Author      string `json:"author"`
	Version     string `json:"version"`
	Description string `json:"description"`

	// ExcludePaths are compared verbatim against the paths visited while copying
	ExcludePaths []string `json:"exclude_paths"`

	// Scripts run in the new project directory after copying
	Scripts []string `json:"scripts"`

	// ExcludeConfig makes the loader add the config file itself to ExcludePaths
	ExcludeConfig bool `json:"exclude_config"`
}

// DefaultTemplateConfig returns the config synthesized for a template root
// that has none.
func DefaultTemplateConfig(name string) TemplateConfig {
	return TemplateConfig{
		Target:        TargetProject,
		Name:          name,
		Author:        "",
		Version:       DefaultTemplateVersion,
		ExcludeConfig: true,
		ExcludePaths:  []string{},
		Scripts:       []string{},
	}
}

// RegisteredTemplate points a template name at its directory
type RegisteredTemplate struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// RegistryDocument is the single file listing every known template
type RegistryDocument struct {
	Target   string               `json:"target"`
	Registry []RegisteredTemplate `json:"registry"`
}

// TemplatesMetadata locates the templates directory and the file name used
// both for the registry document and for each template's config.
type TemplatesMetadata struct {
	Directory string
	Filename  string
}

// RegistryPath returns <absolute directory>/<filename>
func (m TemplatesMetadata) RegistryPath() string {
	dir, err := filepath.Abs(m.Directory)
	if err != nil {
		dir = m.Directory
	}
	return filepath.Join(dir, m.Filename)
}

// TemplateConfigPath returns the config file path for a template root
func (m TemplatesMetadata) TemplateConfigPath(templateRoot string) string {
	return filepath.Join(templateRoot, m.Filename)
}
