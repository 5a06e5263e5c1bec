package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/edna/pkg/config"
	"github.com/arthur-debert/edna/pkg/filesystem"
	"github.com/arthur-debert/edna/pkg/logging"
	"github.com/arthur-debert/edna/pkg/types"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// ConfigPath is where the file is written in write mode
	ConfigPath string
	Write      bool
}

// GenConfig outputs or writes a commented configuration file
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &types.GenConfigResult{
		ConfigContent: config.GenerateConfigContent(),
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	if _, err := os.Stat(opts.ConfigPath); err == nil {
		logger.Warn().Str("path", opts.ConfigPath).Msg("Config file already exists, skipping")
		return result, nil
	}

	if err := filesystem.CreateEmptyDirectory(filepath.Dir(opts.ConfigPath)); err != nil {
		return nil, err
	}
	if err := filesystem.WriteFileAtomic(opts.ConfigPath, []byte(result.ConfigContent), 0644); err != nil {
		return nil, err
	}

	logger.Info().Str("path", opts.ConfigPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, opts.ConfigPath)
	return result, nil
}
