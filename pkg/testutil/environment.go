package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/edna/pkg/types"
	"github.com/stretchr/testify/require"
)

// TestEnvironment provides isolated directories for integration testing
type TestEnvironment struct {
	t         *testing.T
	baseDir   string
	dataDir   string
	configDir string
	workDir   string
	meta      types.TemplatesMetadata
}

// NewTestEnvironment creates isolated edna directories, points the EDNA_* and
// XDG variables at them and writes an empty registry.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	baseDir := t.TempDir()
	dataDir := filepath.Join(baseDir, "data")
	configDir := filepath.Join(baseDir, "config")
	stateDir := filepath.Join(baseDir, "state")
	workDir := filepath.Join(baseDir, "work")
	templatesDir := filepath.Join(dataDir, "templates")

	for _, dir := range []string{dataDir, configDir, stateDir, workDir, templatesDir} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	t.Setenv("EDNA_DATA_DIR", dataDir)
	t.Setenv("EDNA_CONFIG_DIR", configDir)
	t.Setenv("XDG_STATE_HOME", stateDir)
	t.Setenv("HOME", baseDir)

	te := &TestEnvironment{
		t:         t,
		baseDir:   baseDir,
		dataDir:   dataDir,
		configDir: configDir,
		workDir:   workDir,
		meta: types.TemplatesMetadata{
			Directory: templatesDir,
			Filename:  "edna.config.json",
		},
	}
	WriteRegistry(t, te.meta)
	return te
}

// Metadata returns the templates metadata for this environment
func (te *TestEnvironment) Metadata() types.TemplatesMetadata {
	return te.meta
}

// TemplatesDir returns the templates directory
func (te *TestEnvironment) TemplatesDir() string {
	return te.meta.Directory
}

// ConfigDir returns the edna config directory
func (te *TestEnvironment) ConfigDir() string {
	return te.configDir
}

// WorkDir returns a scratch directory for sources and projects
func (te *TestEnvironment) WorkDir() string {
	return te.workDir
}

// AddTemplate creates the fixture in the templates directory and registers it
func (te *TestEnvironment) AddTemplate(fixture TemplateFixture) string {
	te.t.Helper()

	root := CreateTemplateFixture(te.t, te.meta.Directory, fixture)
	doc := ReadRegistry(te.t, te.meta)
	WriteRegistry(te.t, te.meta, append(doc.Registry, types.RegisteredTemplate{
		Name: fixture.Name,
		Path: root,
	})...)
	return root
}
