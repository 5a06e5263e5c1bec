package registry

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/arthur-debert/edna/pkg/errors"
	"github.com/arthur-debert/edna/pkg/filesystem"
	"github.com/arthur-debert/edna/pkg/logging"
	"github.com/arthur-debert/edna/pkg/paths"
	"github.com/arthur-debert/edna/pkg/types"
	"github.com/rs/zerolog"
	"github.com/tidwall/jsonc"
)

// Registry reads and appends to the registry document described by its metadata
type Registry struct {
	meta   types.TemplatesMetadata
	logger zerolog.Logger
}

// New creates a Registry for meta
func New(meta types.TemplatesMetadata) *Registry {
	return &Registry{
		meta:   meta,
		logger: logging.GetLogger("registry"),
	}
}

// Path returns the registry document path
func (r *Registry) Path() string {
	return r.meta.RegistryPath()
}

// Load reads the registry document. It never creates it: a missing or
// malformed document is an error.
func (r *Registry) Load() (*types.RegistryDocument, error) {
	path := r.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrRegistryLoad,
				"templates registry %s does not exist, run `edna init` to create it", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrRegistryLoad, "failed to read templates registry %s", path)
	}

	var doc types.RegistryDocument
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRegistryParse, "failed to parse templates registry %s", path).
			WithDetail("path", path)
	}

	if doc.Target != types.TargetTemplates {
		r.logger.Warn().
			Str("path", path).
			Str("target", doc.Target).
			Msg("Registry target is not \"templates\"")
	}
	if doc.Registry == nil {
		doc.Registry = []types.RegisteredTemplate{}
	}

	r.logger.Debug().Str("path", path).Int("templates", len(doc.Registry)).Msg("Loaded templates registry")
	return &doc, nil
}

// Register appends template to the registry and rewrites the document.
// Concurrent callers race; the last writer wins.
func (r *Registry) Register(template types.RegisteredTemplate) error {
	doc, err := r.Load()
	if err != nil {
		return err
	}

	doc.Registry = append(doc.Registry, template)
	if err := r.write(doc); err != nil {
		return err
	}

	r.logger.Info().
		Str("name", template.Name).
		Str("path", template.Path).
		Int("templates", len(doc.Registry)).
		Msg("Registered template")
	return nil
}

// Lookup returns the first entry named name, in registry order
func (r *Registry) Lookup(name string) (types.RegisteredTemplate, bool, error) {
	doc, err := r.Load()
	if err != nil {
		return types.RegisteredTemplate{}, false, err
	}

	for _, entry := range doc.Registry {
		if entry.Name == name {
			return entry, true, nil
		}
	}
	return types.RegisteredTemplate{}, false, nil
}

// List returns the templates offered for selection: a "(No template)" entry
// at index 0 followed by every registered template whose path is an existing
// directory, in registry order.
func (r *Registry) List() (*types.ListTemplatesResult, error) {
	doc, err := r.Load()
	if err != nil {
		return nil, err
	}

	result := &types.ListTemplatesResult{
		Templates: []types.TemplateListing{{
			Index:              0,
			RegisteredTemplate: types.RegisteredTemplate{Name: types.NoTemplateLabel},
		}},
	}

	for _, entry := range doc.Registry {
		if !paths.IsDir(entry.Path) {
			r.logger.Warn().
				Str("name", entry.Name).
				Str("path", entry.Path).
				Msg("Skipping registered template whose directory is missing")
			result.Skipped = append(result.Skipped, entry)
			continue
		}
		result.Templates = append(result.Templates, types.TemplateListing{
			Index:              len(result.Templates),
			RegisteredTemplate: entry,
		})
	}

	return result, nil
}

// Initialize creates the templates directory and an empty registry document.
// It reports false without touching anything when the document exists.
func (r *Registry) Initialize() (bool, error) {
	path := r.Path()

	exists, err := paths.Exists(path)
	if err != nil {
		return false, err
	}
	if exists {
		r.logger.Info().Str("path", path).Msg("Templates registry already exists")
		return false, nil
	}

	if err := filesystem.CreateEmptyDirectory(filepath.Dir(path)); err != nil {
		return false, err
	}

	doc := &types.RegistryDocument{
		Target:   types.TargetTemplates,
		Registry: []types.RegisteredTemplate{},
	}
	if err := r.write(doc); err != nil {
		return false, err
	}

	r.logger.Info().Str("path", path).Msg("Created templates registry")
	return true, nil
}

func (r *Registry) write(doc *types.RegistryDocument) error {
	path := r.Path()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to encode templates registry %s", path)
	}
	data = append(data, '\n')

	if err := filesystem.WriteFileAtomic(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrRegistryWrite, "failed to write templates registry %s", path)
	}
	return nil
}
