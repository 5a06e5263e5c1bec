package templates_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/edna/pkg/errors"
	"github.com/arthur-debert/edna/pkg/templates"
	"github.com/arthur-debert/edna/pkg/testutil"
	"github.com/arthur-debert/edna/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *templates.Store {
	return templates.NewStore(types.TemplatesMetadata{Filename: "edna.config.json"})
}

func TestLoadSynthesizesMissingConfig(t *testing.T) {
	base := t.TempDir()
	root := testutil.CreateDir(t, base, "my-template")
	store := newStore()
	configPath := filepath.Join(root, "edna.config.json")

	cfg, err := store.Load(root)
	require.NoError(t, err)

	assert.Equal(t, types.TargetProject, cfg.Target)
	assert.Equal(t, "my-template", cfg.Name)
	assert.Equal(t, "", cfg.Author)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.True(t, cfg.ExcludeConfig)
	assert.Equal(t, []string{configPath}, cfg.ExcludePaths)
	assert.Empty(t, cfg.Scripts)
	require.FileExists(t, configPath)

	first, err := os.ReadFile(configPath)
	require.NoError(t, err)
	info, err := os.Stat(configPath)
	require.NoError(t, err)

	again, err := store.Load(root)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)

	second, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
	info2, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), info2.ModTime(), "second load must not rewrite the file")

	// the in-memory self exclusion is never persisted
	assert.NotContains(t, string(second), configPath)
}

func TestLoadTrailingSlashUsesLastSegment(t *testing.T) {
	base := t.TempDir()
	root := testutil.CreateDir(t, base, "api")

	cfg, err := newStore().Load(root + string(filepath.Separator))
	require.NoError(t, err)
	assert.Equal(t, "api", cfg.Name)
}

func TestLoadExistingConfig(t *testing.T) {
	base := t.TempDir()
	root := testutil.CreateDir(t, base, "web")

	tests := []struct {
		name        string
		content     string
		wantExclude []string
		wantScripts []string
	}{
		{
			name: "explicit fields without self exclusion",
			content: `{
				"target": "project",
				"name": "web",
				"exclude_paths": ["/templates/web/node_modules"],
				"scripts": ["npm install"],
				"exclude_config": false
			}`,
			wantExclude: []string{"/templates/web/node_modules"},
			wantScripts: []string{"npm install"},
		},
		{
			name:        "optional fields missing or null",
			content:     `{"target": "project", "name": "web", "author": null, "scripts": null}`,
			wantExclude: []string{},
			wantScripts: []string{},
		},
		{
			name: "comments and trailing commas are tolerated",
			content: `{
				// generated by hand
				"target": "project",
				"name": "web",
				"exclude_config": true,
			}`,
			wantExclude: []string{filepath.Join(root, "edna.config.json")},
			wantScripts: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.CreateFile(t, root, "edna.config.json", tt.content)

			cfg, err := newStore().Load(root)
			require.NoError(t, err)

			assert.Equal(t, "web", cfg.Name)
			assert.Equal(t, tt.wantExclude, cfg.ExcludePaths)
			assert.Equal(t, tt.wantScripts, cfg.Scripts)
		})
	}
}

func TestLoadRejectsInvalidTarget(t *testing.T) {
	base := t.TempDir()
	root := testutil.CreateDir(t, base, "lib")
	path := testutil.CreateFile(t, root, "edna.config.json", `{"target": "library", "name": "lib"}`)

	cfg, err := newStore().Load(root)

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
	assert.Contains(t, err.Error(), path)
}

func TestLoadMalformedConfig(t *testing.T) {
	base := t.TempDir()
	root := testutil.CreateDir(t, base, "broken")
	testutil.CreateFile(t, root, "edna.config.json", `{"target": `)

	_, err := newStore().Load(root)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadMissingRoot(t *testing.T) {
	_, err := newStore().Load(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
}

func TestSaveRoundTrip(t *testing.T) {
	base := t.TempDir()
	root := testutil.CreateDir(t, base, "cli")
	store := newStore()

	cfg := &types.TemplateConfig{
		Target:        types.TargetProject,
		Name:          "cli",
		Author:        "Ada",
		Version:       "2.0.0",
		Description:   "command line starter",
		ExcludePaths:  []string{filepath.Join(root, "bin")},
		Scripts:       []string{"go mod tidy", "git init"},
		ExcludeConfig: false,
	}

	require.NoError(t, store.Save(store.ConfigPath(root), cfg))

	loaded, err := store.Load(root)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	// Save overwrites unconditionally
	cfg.Version = "2.1.0"
	require.NoError(t, store.Save(store.ConfigPath(root), cfg))
	loaded, err = store.Load(root)
	require.NoError(t, err)
	assert.Equal(t, "2.1.0", loaded.Version)
}
