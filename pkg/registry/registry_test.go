package registry_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/edna/pkg/errors"
	"github.com/arthur-debert/edna/pkg/registry"
	"github.com/arthur-debert/edna/pkg/testutil"
	"github.com/arthur-debert/edna/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMeta(t *testing.T) types.TemplatesMetadata {
	t.Helper()
	return types.TemplatesMetadata{
		Directory: testutil.CreateDir(t, t.TempDir(), "templates"),
		Filename:  "edna.config.json",
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing registry is an error", func(t *testing.T) {
		meta := newMeta(t)

		doc, err := registry.New(meta).Load()

		assert.Nil(t, doc)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRegistryLoad))
		assert.NoFileExists(t, meta.RegistryPath(), "load must never create the registry")
	})

	t.Run("malformed registry is an error", func(t *testing.T) {
		meta := newMeta(t)
		testutil.CreateFile(t, meta.Directory, "edna.config.json", `{"target": "templates", "registry": [`)

		_, err := registry.New(meta).Load()
		assert.True(t, errors.IsErrorCode(err, errors.ErrRegistryParse))
	})

	t.Run("reads entries in order", func(t *testing.T) {
		meta := newMeta(t)
		testutil.WriteRegistry(t, meta,
			types.RegisteredTemplate{Name: "web", Path: "/templates/web"},
			types.RegisteredTemplate{Name: "cli", Path: "/templates/cli"},
		)

		doc, err := registry.New(meta).Load()
		require.NoError(t, err)

		assert.Equal(t, types.TargetTemplates, doc.Target)
		assert.Equal(t, []types.RegisteredTemplate{
			{Name: "web", Path: "/templates/web"},
			{Name: "cli", Path: "/templates/cli"},
		}, doc.Registry)
	})

	t.Run("null registry becomes empty", func(t *testing.T) {
		meta := newMeta(t)
		testutil.CreateFile(t, meta.Directory, "edna.config.json", `{"target": "templates", "registry": null}`)

		doc, err := registry.New(meta).Load()
		require.NoError(t, err)
		assert.NotNil(t, doc.Registry)
		assert.Empty(t, doc.Registry)
	})
}

func TestRegisterIsAppendOnly(t *testing.T) {
	meta := newMeta(t)
	testutil.WriteRegistry(t, meta, types.RegisteredTemplate{Name: "seed", Path: "/templates/seed"})
	reg := registry.New(meta)

	added := []types.RegisteredTemplate{
		{Name: "web", Path: "/templates/web"},
		{Name: "cli", Path: "/templates/cli"},
		{Name: "web", Path: "/templates/web-2"},
	}
	for _, tpl := range added {
		require.NoError(t, reg.Register(tpl))
	}

	doc := testutil.ReadRegistry(t, meta)
	require.Len(t, doc.Registry, 4)
	assert.Equal(t, types.RegisteredTemplate{Name: "seed", Path: "/templates/seed"}, doc.Registry[0])
	assert.Equal(t, added, doc.Registry[1:])
	assert.Equal(t, types.TargetTemplates, doc.Target)
}

func TestRegisterWithoutRegistry(t *testing.T) {
	meta := newMeta(t)

	err := registry.New(meta).Register(types.RegisteredTemplate{Name: "web", Path: "/t/web"})

	assert.True(t, errors.IsErrorCode(err, errors.ErrRegistryLoad))
	assert.NoFileExists(t, meta.RegistryPath())
}

func TestLookupFirstMatchWins(t *testing.T) {
	meta := newMeta(t)
	testutil.WriteRegistry(t, meta,
		types.RegisteredTemplate{Name: "web", Path: "/templates/web-old"},
		types.RegisteredTemplate{Name: "web", Path: "/templates/web-new"},
	)
	reg := registry.New(meta)

	entry, ok, err := reg.Lookup("web")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/templates/web-old", entry.Path)

	_, ok, err = reg.Lookup("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestList(t *testing.T) {
	meta := newMeta(t)
	base := t.TempDir()
	web := testutil.CreateDir(t, base, "web")
	cli := testutil.CreateDir(t, base, "cli")
	testutil.WriteRegistry(t, meta,
		types.RegisteredTemplate{Name: "web", Path: web},
		types.RegisteredTemplate{Name: "gone", Path: filepath.Join(base, "gone")},
		types.RegisteredTemplate{Name: "cli", Path: cli},
	)

	result, err := registry.New(meta).List()
	require.NoError(t, err)

	assert.Equal(t, []string{"(No template)", "web", "cli"}, result.Names())
	assert.Equal(t, 2, result.Templates[2].Index)
	assert.Equal(t, cli, result.Templates[2].Path)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "gone", result.Skipped[0].Name)
}

func TestInitialize(t *testing.T) {
	meta := types.TemplatesMetadata{
		Directory: filepath.Join(t.TempDir(), "nested", "templates"),
		Filename:  "edna.config.json",
	}
	reg := registry.New(meta)

	created, err := reg.Initialize()
	require.NoError(t, err)
	assert.True(t, created)

	doc, err := reg.Load()
	require.NoError(t, err)
	assert.Equal(t, types.TargetTemplates, doc.Target)
	assert.Empty(t, doc.Registry)

	require.NoError(t, reg.Register(types.RegisteredTemplate{Name: "web", Path: "/t/web"}))

	created, err = reg.Initialize()
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, testutil.ReadRegistry(t, meta).Registry, 1, "initialize must not reset an existing registry")
}
