package newproject

import (
	"context"
	"io"
	"path/filepath"

	"github.com/arthur-debert/edna/pkg/errors"
	"github.com/arthur-debert/edna/pkg/filesystem"
	"github.com/arthur-debert/edna/pkg/logging"
	"github.com/arthur-debert/edna/pkg/paths"
	"github.com/arthur-debert/edna/pkg/registry"
	"github.com/arthur-debert/edna/pkg/scripts"
	"github.com/arthur-debert/edna/pkg/templates"
	"github.com/arthur-debert/edna/pkg/types"
)

// NewProjectOptions defines the options for the NewProject command.
type NewProjectOptions struct {
	// Metadata locates the registry and names template config files.
	Metadata types.TemplatesMetadata
	// Selector picks the template to instantiate.
	Selector types.Selector
	// Destination is the project directory to create.
	Destination string
	// Runner executes the template's init scripts.
	Runner scripts.Runner
	// Stdout and Stderr receive the captured script output. Nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// NewProject materializes a project at opts.Destination from the selected
// template and runs the template's init scripts there. Scripts exiting
// non-zero yield OutcomeScriptsFailed, not an error; the project is kept.
func NewProject(ctx context.Context, opts NewProjectOptions) (*types.NewProjectResult, error) {
	log := logging.GetLogger("commands.newproject")
	log.Debug().
		Str("command", "NewProject").
		Str("template", opts.Selector.String()).
		Str("destination", opts.Destination).
		Msg("Executing command")

	if opts.Destination == "" {
		return nil, errors.New(errors.ErrInvalidInput, "project destination cannot be empty")
	}

	result := &types.NewProjectResult{ProjectPath: opts.Destination}

	if opts.Selector.IsNone() {
		if err := filesystem.CreateEmptyDirectory(opts.Destination); err != nil {
			return nil, err
		}
		result.Outcome = types.OutcomeCreated
		log.Info().Str("destination", opts.Destination).Msg("Created empty project")
		return result, nil
	}

	source, err := resolveTemplate(opts.Metadata, opts.Selector)
	if err != nil {
		return nil, err
	}
	result.TemplatePath = source

	cfg, err := templates.NewStore(opts.Metadata).Load(source)
	if err != nil {
		return nil, err
	}
	result.Template = cfg

	if err := filesystem.Copy(source, opts.Destination, cfg.ExcludePaths); err != nil {
		return nil, err
	}
	log.Info().
		Str("template", source).
		Str("destination", opts.Destination).
		Msg("Copied template files")

	if len(cfg.Scripts) == 0 {
		result.Outcome = types.OutcomeNoScripts
		return result, nil
	}

	if opts.Runner == nil {
		return nil, errors.New(errors.ErrInternal, "no script runner configured")
	}

	scriptResult, err := opts.Runner.Run(ctx, opts.Destination, cfg.Scripts)
	if err != nil {
		return nil, err
	}
	result.Scripts = scriptResult

	if opts.Stdout != nil {
		_, _ = opts.Stdout.Write(scriptResult.Stdout)
	}
	if opts.Stderr != nil {
		_, _ = opts.Stderr.Write(scriptResult.Stderr)
	}

	if scriptResult.Success() {
		result.Outcome = types.OutcomeScriptsSucceeded
	} else {
		result.Outcome = types.OutcomeScriptsFailed
		log.Warn().Int("exitCode", scriptResult.ExitCode).Msg("Scripts completed with errors")
	}

	log.Info().Str("command", "NewProject").Str("outcome", string(result.Outcome)).Msg("Command finished")
	return result, nil
}

// resolveTemplate turns a selector into an absolute template directory.
// Names are looked up first, then treated as a literal path.
func resolveTemplate(meta types.TemplatesMetadata, selector types.Selector) (string, error) {
	reg := registry.New(meta)

	var candidate string
	switch selector.Kind {
	case types.SelectIndex:
		listing, err := reg.List()
		if err != nil {
			return "", err
		}
		if selector.Index < 0 || selector.Index >= len(listing.Templates) {
			return "", errors.Newf(errors.ErrInvalidInput,
				"template index %d is out of range (0-%d)", selector.Index, len(listing.Templates)-1)
		}
		candidate = listing.Templates[selector.Index].Path
	case types.SelectNameOrPath:
		entry, ok, err := reg.Lookup(selector.Value)
		if err != nil {
			return "", err
		}
		if ok {
			candidate = entry.Path
		} else {
			candidate = paths.ExpandHome(selector.Value)
		}
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported template selector %q", selector.String())
	}

	path, err := paths.Absolute(candidate)
	if err != nil {
		return "", err
	}

	if path == "" || !paths.IsDir(path) {
		return "", errors.Newf(errors.ErrTemplateNotFound,
			"The path %s does not exist! Please supply a valid folder path or a supported template.", candidate).
			WithDetail("selector", selector.String())
	}

	return path, nil
}

// ProjectPath returns output when it already names the project, output/name
// otherwise.
func ProjectPath(output, name string) string {
	cleaned := filepath.Clean(output)
	if name == "" || filepath.Base(cleaned) == name {
		return cleaned
	}
	return filepath.Join(cleaned, name)
}
