package newtemplate

import (
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/arthur-debert/edna/pkg/errors"
	"github.com/arthur-debert/edna/pkg/filesystem"
	"github.com/arthur-debert/edna/pkg/logging"
	"github.com/arthur-debert/edna/pkg/paths"
	"github.com/arthur-debert/edna/pkg/registry"
	"github.com/arthur-debert/edna/pkg/templates"
	"github.com/arthur-debert/edna/pkg/types"
)

// NewTemplateOptions defines the options for the NewTemplate command.
type NewTemplateOptions struct {
	// Metadata locates the registry and names template config files.
	Metadata types.TemplatesMetadata
	// Output is the directory of the new template. It must not exist.
	Output string
	// Source is copied into Output. Empty creates an empty template.
	Source string
	// Config is written into the template and names the registry entry.
	Config types.TemplateConfig
}

// NewTemplate creates the template directory, writes its config and
// registers it, in that order.
func NewTemplate(opts NewTemplateOptions) (*types.NewTemplateResult, error) {
	log := logging.GetLogger("commands.newtemplate")
	log.Debug().
		Str("command", "NewTemplate").
		Str("name", opts.Config.Name).
		Str("output", opts.Output).
		Str("source", opts.Source).
		Msg("Executing command")

	if opts.Output == "" {
		return nil, errors.New(errors.ErrInvalidInput, "template output cannot be empty")
	}

	cfg := opts.Config
	if cfg.Target == "" {
		cfg.Target = types.TargetProject
	}
	if cfg.Target != types.TargetProject {
		return nil, errors.Newf(errors.ErrConfigValid,
			"the target must be '%s', got '%s'", types.TargetProject, cfg.Target).
			WithDetail("output", opts.Output)
	}

	exists, err := paths.Exists(opts.Output)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Newf(errors.ErrTemplateExists,
			"The template %s already exists! Please choose another name or output.", opts.Output).
			WithDetail("output", opts.Output)
	}

	if cfg.ExcludePaths == nil {
		cfg.ExcludePaths = []string{}
	}
	if cfg.Scripts == nil {
		cfg.Scripts = []string{}
	}
	if cfg.Version != "" {
		if _, err := semver.NewVersion(cfg.Version); err != nil {
			log.Warn().Str("version", cfg.Version).Msg("Template version is not a semantic version")
		}
	}

	result := &types.NewTemplateResult{
		Name:  cfg.Name,
		Path:  opts.Output,
		Empty: opts.Source == "",
	}

	if result.Empty {
		if err := filesystem.CreateEmptyDirectory(opts.Output); err != nil {
			return nil, err
		}
	} else {
		if err := filesystem.Copy(opts.Source, opts.Output, cfg.ExcludePaths); err != nil {
			return nil, err
		}
	}

	store := templates.NewStore(opts.Metadata)
	result.ConfigPath = store.ConfigPath(opts.Output)
	if err := store.Save(result.ConfigPath, &cfg); err != nil {
		return nil, err
	}

	err = registry.New(opts.Metadata).Register(types.RegisteredTemplate{
		Name: cfg.Name,
		Path: opts.Output,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("command", "NewTemplate").
		Str("name", cfg.Name).
		Str("path", opts.Output).
		Msg("Command finished")
	return result, nil
}

// OutputPath returns where a template is created: templatesDir/output when
// output is given, templatesDir/name otherwise, made absolute.
func OutputPath(meta types.TemplatesMetadata, output, name string) (string, error) {
	if output == "" {
		output = name
	}
	if output == "" {
		return "", errors.New(errors.ErrInvalidInput, "template name cannot be empty")
	}
	return paths.Absolute(filepath.Join(meta.Directory, output))
}
