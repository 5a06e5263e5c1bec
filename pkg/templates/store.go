// Package templates reads and writes the per-template config file.
package templates

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/arthur-debert/edna/pkg/errors"
	"github.com/arthur-debert/edna/pkg/filesystem"
	"github.com/arthur-debert/edna/pkg/logging"
	"github.com/arthur-debert/edna/pkg/types"
	"github.com/rs/zerolog"
	"github.com/tidwall/jsonc"
)

// Store loads and saves template configs named after the metadata filename
type Store struct {
	meta   types.TemplatesMetadata
	logger zerolog.Logger
}

// NewStore creates a config store for meta.Filename
func NewStore(meta types.TemplatesMetadata) *Store {
	return &Store{
		meta:   meta,
		logger: logging.GetLogger("templates.store"),
	}
}

// ConfigPath returns the config file path for a template root
func (s *Store) ConfigPath(templateRoot string) string {
	return s.meta.TemplateConfigPath(templateRoot)
}

// Load returns the config of the template at templateRoot. A missing config
// file is synthesized with defaults and written before being read back. When
// exclude_config is set the config file's own path is appended to the
// in-memory ExcludePaths.
func (s *Store) Load(templateRoot string) (*types.TemplateConfig, error) {
	path := s.ConfigPath(templateRoot)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		name := filepath.Base(filepath.Clean(templateRoot))
		s.logger.Info().
			Str("path", path).
			Str("name", name).
			Msg("Template has no config, writing defaults")

		cfg := types.DefaultTemplateConfig(name)
		if err := s.Save(path, &cfg); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat template config %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read template config %s", path)
	}

	var cfg types.TemplateConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse template config %s", path).
			WithDetail("path", path)
	}

	if cfg.Target != types.TargetProject {
		return nil, errors.Newf(errors.ErrConfigValid,
			"invalid template config for %s: the target must be `%s`", path, types.TargetProject).
			WithDetail("path", path).
			WithDetail("target", cfg.Target)
	}

	if cfg.ExcludePaths == nil {
		cfg.ExcludePaths = []string{}
	}
	if cfg.Scripts == nil {
		cfg.Scripts = []string{}
	}
	if cfg.ExcludeConfig {
		cfg.ExcludePaths = append(cfg.ExcludePaths, path)
	}

	s.logger.Debug().
		Str("path", path).
		Str("name", cfg.Name).
		Strs("excluded", cfg.ExcludePaths).
		Int("scripts", len(cfg.Scripts)).
		Msg("Loaded template config")

	return &cfg, nil
}

// Save writes cfg to path, replacing whatever is there
func (s *Store) Save(path string, cfg *types.TemplateConfig) error {
	out := *cfg
	if out.ExcludePaths == nil {
		out.ExcludePaths = []string{}
	}
	if out.Scripts == nil {
		out.Scripts = []string{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to encode template config %s", path)
	}
	data = append(data, '\n')

	if err := filesystem.WriteFileAtomic(path, data, 0644); err != nil {
		return err
	}

	s.logger.Debug().Str("path", path).Msg("Saved template config")
	return nil
}
