package list_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/edna/pkg/commands/list"
	"github.com/arthur-debert/edna/pkg/errors"
	"github.com/arthur-debert/edna/pkg/testutil"
	"github.com/arthur-debert/edna/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTemplates_Empty(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	result, err := list.ListTemplates(list.ListTemplatesOptions{Metadata: env.Metadata()})
	require.NoError(t, err)

	assert.Equal(t, []string{types.NoTemplateLabel}, result.Names())
	assert.Empty(t, result.Skipped)
}

func TestListTemplates_OrderAndSkipped(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.AddTemplate(testutil.TemplateFixture{Name: "go", Files: map[string]string{"main.go": ""}})
	missing := types.RegisteredTemplate{Name: "gone", Path: filepath.Join(env.WorkDir(), "gone")}
	doc := testutil.ReadRegistry(t, env.Metadata())
	testutil.WriteRegistry(t, env.Metadata(), append(doc.Registry, missing)...)
	env.AddTemplate(testutil.TemplateFixture{Name: "rust", Files: map[string]string{"Cargo.toml": ""}})

	result, err := list.ListTemplates(list.ListTemplatesOptions{Metadata: env.Metadata()})
	require.NoError(t, err)

	assert.Equal(t, []string{types.NoTemplateLabel, "go", "rust"}, result.Names())
	for i, entry := range result.Templates {
		assert.Equal(t, i, entry.Index)
	}
	assert.Equal(t, []types.RegisteredTemplate{missing}, result.Skipped)
}

func TestListTemplates_MalformedRegistry(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	testutil.CreateFile(t, env.TemplatesDir(), "edna.config.json", "{not json")

	_, err := list.ListTemplates(list.ListTemplatesOptions{Metadata: env.Metadata()})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRegistryParse))
}
