package initialize

import (
	"github.com/arthur-debert/edna/pkg/logging"
	"github.com/arthur-debert/edna/pkg/registry"
	"github.com/arthur-debert/edna/pkg/types"
)

// InitOptions defines the options for the Init command.
type InitOptions struct {
	// Metadata locates the registry to create.
	Metadata types.TemplatesMetadata
}

// Init creates the templates directory and an empty registry. An existing
// registry is left untouched and reported with Created false.
func Init(opts InitOptions) (*types.InitResult, error) {
	log := logging.GetLogger("commands.initialize")
	log.Debug().Str("command", "Init").Str("directory", opts.Metadata.Directory).Msg("Executing command")

	reg := registry.New(opts.Metadata)
	created, err := reg.Initialize()
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "Init").Bool("created", created).Msg("Command finished")
	return &types.InitResult{
		RegistryPath: reg.Path(),
		Created:      created,
	}, nil
}
