package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/edna/pkg/errors"
	"github.com/arthur-debert/edna/pkg/paths"
	"github.com/arthur-debert/edna/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "EDNA_"

// Config is the application configuration
type Config struct {
	Templates TemplatesConfig `koanf:"templates"`
	Scripts   ScriptsConfig   `koanf:"scripts"`
}

// TemplatesConfig locates the registry and names config files
type TemplatesConfig struct {
	Directory      string `koanf:"directory"`
	ConfigFilename string `koanf:"config_filename"`
}

// ScriptsConfig controls how init scripts are run
type ScriptsConfig struct {
	Shell string `koanf:"shell"`
}

// envKeys lists the environment variables mapped onto config keys
var envKeys = map[string]string{
	"EDNA_TEMPLATES_DIRECTORY":       "templates.directory",
	"EDNA_TEMPLATES_CONFIG_FILENAME": "templates.config_filename",
	"EDNA_SCRIPTS_SHELL":             "scripts.shell",
}

// Load builds the configuration. overrides are dotted keys applied last,
// typically from command-line flags; empty values are ignored.
func Load(p paths.Paths, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file if it exists
	configPath := p.ConfigFilePath()
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config %s", configPath)
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	set := make(map[string]interface{}, len(overrides))
	for key, value := range overrides {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		set[key] = value
	}
	if len(set) > 0 {
		if err := k.Load(confmap.Provider(set, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := postProcess(&cfg, p); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// postProcess fills computed defaults and validates the result
func postProcess(cfg *Config, p paths.Paths) error {
	if cfg.Templates.Directory == "" {
		cfg.Templates.Directory = p.TemplatesDir()
	}

	dir, err := paths.Absolute(cfg.Templates.Directory)
	if err != nil {
		return err
	}
	cfg.Templates.Directory = dir

	name := cfg.Templates.ConfigFilename
	if name == "" || strings.ContainsAny(name, `/\`) {
		return errors.Newf(errors.ErrConfigValid,
			"templates.config_filename must be a plain file name, got %q", name)
	}

	return nil
}

// Metadata returns the templates metadata threaded into the engines
func (c *Config) Metadata() types.TemplatesMetadata {
	return types.TemplatesMetadata{
		Directory: c.Templates.Directory,
		Filename:  c.Templates.ConfigFilename,
	}
}
