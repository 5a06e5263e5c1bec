package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/edna/pkg/errors"
)

// Environment variable names
const (
	// EnvEdnaDataDir overrides the XDG data directory for edna
	EnvEdnaDataDir = "EDNA_DATA_DIR"

	// EnvEdnaConfigDir overrides the XDG config directory for edna
	EnvEdnaConfigDir = "EDNA_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// EdnaDirName is the directory name for edna-specific files
	EdnaDirName = "edna"

	// TemplatesDir is the data subdirectory holding registered templates
	TemplatesDir = "templates"

	// ConfigFileName is the user configuration file inside the config dir
	ConfigFileName = "config.toml"

	// TemplateConfigFile is the per-template and registry file name
	TemplateConfigFile = "edna.config.json"

	// LogFileName is the name of the log file
	LogFileName = "edna.log"
)

// Paths resolves the directories edna reads from and writes to
type Paths interface {
	DataDir() string
	ConfigDir() string
	StateDir() string
	TemplatesDir() string
	ConfigFilePath() string
	LogFilePath() string
}

type paths struct {
	xdgData   string
	xdgConfig string
	xdgState  string
}

// New creates a Paths instance from the current environment.
func New() (Paths, error) {
	// Pick up XDG_* changes made after process start (tests rely on this).
	xdg.Reload()

	p := &paths{}

	if dataDir := os.Getenv(EnvEdnaDataDir); dataDir != "" {
		p.xdgData = ExpandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, EdnaDirName)
	}

	if configDir := os.Getenv(EnvEdnaConfigDir); configDir != "" {
		p.xdgConfig = ExpandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, EdnaDirName)
	}

	p.xdgState = filepath.Join(stateHome(), EdnaDirName)

	for _, dir := range []*string{&p.xdgData, &p.xdgConfig, &p.xdgState} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", *dir)
		}
		*dir = abs
	}

	return p, nil
}

// stateHome returns XDG_STATE_HOME or its documented default
func stateHome() string {
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		return stateDir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".local", "state")
}

// DataDir returns the XDG data directory for edna
func (p *paths) DataDir() string {
	return p.xdgData
}

// ConfigDir returns the XDG config directory for edna
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// StateDir returns the XDG state directory for edna
func (p *paths) StateDir() string {
	return p.xdgState
}

// TemplatesDir returns the default templates directory
func (p *paths) TemplatesDir() string {
	return filepath.Join(p.xdgData, TemplatesDir)
}

// ConfigFilePath returns the user configuration file path
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// LogFilePath returns the path to the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}

// Absolute expands ~ and makes path absolute against the working directory.
// The empty string stays empty.
func Absolute(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", path)
	}
	return abs, nil
}

// Exists reports whether anything exists at path
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
}

// IsDir reports whether path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
