package list

import (
	"github.com/arthur-debert/edna/pkg/logging"
	"github.com/arthur-debert/edna/pkg/registry"
	"github.com/arthur-debert/edna/pkg/types"
)

// ListTemplatesOptions defines the options for the ListTemplates command.
type ListTemplatesOptions struct {
	// Metadata locates the registry.
	Metadata types.TemplatesMetadata
}

// ListTemplates returns the templates offered for selection, "(No template)"
// first. Registered templates whose directory is gone are reported as skipped.
func ListTemplates(opts ListTemplatesOptions) (*types.ListTemplatesResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListTemplates").Msg("Executing command")

	result, err := registry.New(opts.Metadata).List()
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("command", "ListTemplates").
		Int("templateCount", len(result.Templates)-1).
		Int("skipped", len(result.Skipped)).
		Msg("Command finished")
	return result, nil
}
