package edna

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/arthur-debert/edna/pkg/types"
	"github.com/stretchr/testify/require"
)

func readTemplateConfig(t *testing.T, path string) types.TemplateConfig {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var cfg types.TemplateConfig
	require.NoError(t, json.Unmarshal(data, &cfg))
	return cfg
}
