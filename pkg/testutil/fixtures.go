package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/edna/pkg/types"
	"github.com/stretchr/testify/require"
)

// TemplateFixture represents a template directory with files and directories
type TemplateFixture struct {
	Name   string
	Files  map[string]string // relative path -> content
	Dirs   []string
	Config *types.TemplateConfig // written as edna.config.json when set
}

// CreateTemplateFixture creates the fixture under baseDir and returns its path
func CreateTemplateFixture(t *testing.T, baseDir string, fixture TemplateFixture) string {
	t.Helper()

	root := CreateDir(t, baseDir, fixture.Name)

	for _, dir := range fixture.Dirs {
		CreateDir(t, root, dir)
	}

	for path, content := range fixture.Files {
		CreateFile(t, root, path, content)
	}

	if fixture.Config != nil {
		WriteJSON(t, filepath.Join(root, "edna.config.json"), fixture.Config)
	}

	return root
}

// WebTemplateFixture returns a small web-app style template
func WebTemplateFixture() TemplateFixture {
	return TemplateFixture{
		Name: "web",
		Files: map[string]string{
			"package.json":              `{"name": "app"}`,
			"src/index.js":              "console.log('hello')\n",
			"src/components/button.js":  "export default {}\n",
			"node_modules/dep/index.js": "module.exports = 1\n",
			"README.md":                 "# App\n",
		},
		Dirs: []string{"public"},
	}
}

// CreateDir creates a directory below baseDir and returns its path
func CreateDir(t *testing.T, baseDir, name string) string {
	t.Helper()

	dir := filepath.Join(baseDir, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	return dir
}

// CreateFile creates a file (and its parents) below baseDir
func CreateFile(t *testing.T, baseDir, name, content string) string {
	t.Helper()

	path := filepath.Join(baseDir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteJSON marshals v into path with indentation
func WriteJSON(t *testing.T, path string, v interface{}) {
	t.Helper()

	data, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

// WriteRegistry writes a registry document listing templates
func WriteRegistry(t *testing.T, meta types.TemplatesMetadata, templates ...types.RegisteredTemplate) string {
	t.Helper()

	if templates == nil {
		templates = []types.RegisteredTemplate{}
	}
	path := meta.RegistryPath()
	WriteJSON(t, path, types.RegistryDocument{
		Target:   types.TargetTemplates,
		Registry: templates,
	})
	return path
}

// ReadRegistry parses the registry document at meta.RegistryPath()
func ReadRegistry(t *testing.T, meta types.TemplatesMetadata) types.RegistryDocument {
	t.Helper()

	data, err := os.ReadFile(meta.RegistryPath())
	require.NoError(t, err)

	var doc types.RegistryDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

// Tree returns every file below root as relative path -> content
func Tree(t *testing.T, root string) map[string]string {
	t.Helper()

	files := make(map[string]string)
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}

// Keys returns the sorted keys of a Tree result
func Keys(files map[string]string) []string {
	keys := make([]string, 0, len(files))
	for k := range files {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
