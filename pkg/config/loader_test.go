package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/edna/pkg/errors"
	"github.com/arthur-debert/edna/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPaths(t *testing.T) paths.Paths {
	t.Helper()
	base := t.TempDir()
	t.Setenv("EDNA_DATA_DIR", filepath.Join(base, "data"))
	t.Setenv("EDNA_CONFIG_DIR", filepath.Join(base, "config"))
	t.Setenv("EDNA_TEMPLATES_DIRECTORY", "")
	t.Setenv("EDNA_TEMPLATES_CONFIG_FILENAME", "")
	t.Setenv("EDNA_SCRIPTS_SHELL", "")
	os.Unsetenv("EDNA_TEMPLATES_DIRECTORY")
	os.Unsetenv("EDNA_TEMPLATES_CONFIG_FILENAME")
	os.Unsetenv("EDNA_SCRIPTS_SHELL")

	p, err := paths.New()
	require.NoError(t, err)
	return p
}

func writeUserConfig(t *testing.T, p paths.Paths, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(p.ConfigFilePath()), 0755))
	require.NoError(t, os.WriteFile(p.ConfigFilePath(), []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	p := setupPaths(t)

	cfg, err := Load(p, nil)
	require.NoError(t, err)

	assert.Equal(t, p.TemplatesDir(), cfg.Templates.Directory)
	assert.Equal(t, "edna.config.json", cfg.Templates.ConfigFilename)
	assert.Empty(t, cfg.Scripts.Shell)

	meta := cfg.Metadata()
	assert.Equal(t, filepath.Join(p.TemplatesDir(), "edna.config.json"), meta.RegistryPath())
}

func TestLoad_UserFile(t *testing.T) {
	p := setupPaths(t)
	dir := filepath.Join(t.TempDir(), "mine")
	writeUserConfig(t, p, `
[templates]
directory = "`+filepath.ToSlash(dir)+`"
config_filename = "templates.json"

[scripts]
shell = "bash"
`)

	cfg, err := Load(p, nil)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Templates.Directory)
	assert.Equal(t, "templates.json", cfg.Templates.ConfigFilename)
	assert.Equal(t, "bash", cfg.Scripts.Shell)
}

func TestLoad_Precedence(t *testing.T) {
	p := setupPaths(t)
	fileDir := filepath.Join(t.TempDir(), "from-file")
	envDir := filepath.Join(t.TempDir(), "from-env")
	flagDir := filepath.Join(t.TempDir(), "from-flag")

	writeUserConfig(t, p, "[templates]\ndirectory = \""+filepath.ToSlash(fileDir)+"\"\n")

	cfg, err := Load(p, nil)
	require.NoError(t, err)
	assert.Equal(t, fileDir, cfg.Templates.Directory)

	t.Setenv("EDNA_TEMPLATES_DIRECTORY", envDir)
	cfg, err = Load(p, nil)
	require.NoError(t, err)
	assert.Equal(t, envDir, cfg.Templates.Directory)

	cfg, err = Load(p, map[string]interface{}{"templates.directory": flagDir})
	require.NoError(t, err)
	assert.Equal(t, flagDir, cfg.Templates.Directory)

	// empty overrides leave lower layers alone
	cfg, err = Load(p, map[string]interface{}{"templates.directory": ""})
	require.NoError(t, err)
	assert.Equal(t, envDir, cfg.Templates.Directory)
}

func TestLoad_UnknownEnvIgnored(t *testing.T) {
	p := setupPaths(t)
	t.Setenv("EDNA_SOMETHING_ELSE", "x")

	cfg, err := Load(p, nil)
	require.NoError(t, err)
	assert.Equal(t, "edna.config.json", cfg.Templates.ConfigFilename)
}

func TestLoad_RelativeDirectoryMadeAbsolute(t *testing.T) {
	p := setupPaths(t)

	cfg, err := Load(p, map[string]interface{}{"templates.directory": "rel/templates"})
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(cfg.Templates.Directory))
	assert.True(t, strings.HasSuffix(cfg.Templates.Directory, filepath.Join("rel", "templates")))
}

func TestLoad_InvalidFilename(t *testing.T) {
	p := setupPaths(t)

	tests := []string{"sub/edna.json", `sub\edna.json`}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(p, map[string]interface{}{"templates.config_filename": name})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		})
	}

	writeUserConfig(t, p, "[templates]\nconfig_filename = \"\"\n")
	_, err := Load(p, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestLoad_MalformedFile(t *testing.T) {
	p := setupPaths(t)
	writeUserConfig(t, p, "[templates\ndirectory = ")

	_, err := Load(p, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[templates]")
	assert.Contains(t, content, "[scripts]")
	assert.Contains(t, content, `# config_filename = "edna.config.json"`)
	assert.Contains(t, content, `# shell = ""`)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented value line: %q", line)
	}
}

func TestCommentOutConfigValues(t *testing.T) {
	in := "# note\n[a]\nkey = 1\n\n  nested = \"x\"\n"
	want := "# note\n[a]\n# key = 1\n\n#   nested = \"x\"\n"
	assert.Equal(t, want, commentOutConfigValues(in))
}
