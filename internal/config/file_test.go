package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseFile_JSON(t *testing.T) {
	path := writeConfigFile(t, "repoinfo.json", `{
		"source": {"root": "/src/tree"},
		"output": {"path": "gen/repoinfo.go", "package": "gen"},
		"build":  {"user": "user-name <email@demo.com>"}
	}`)

	cfg, err := parseFile(path)

	require.NoError(t, err)
	assert.Equal(t, "/src/tree", cfg.Source.Root)
	assert.Equal(t, "gen/repoinfo.go", cfg.Output.Path)
	assert.Equal(t, "gen", cfg.Output.Package)
	assert.Equal(t, "user-name <email@demo.com>", cfg.Build.User)
	assert.Empty(t, cfg.ConfigFilePath, "file config must not point at another file")
}

func TestParseFile_YAML(t *testing.T) {
	path := writeConfigFile(t, "repoinfo.yaml", `
source:
  root: /src/tree
output:
  path: gen/repoinfo.go
  package: gen
build:
  user: user-name <email@demo.com>
`)

	cfg, err := parseFile(path)

	require.NoError(t, err)
	assert.Equal(t, "/src/tree", cfg.Source.Root)
	assert.Equal(t, "gen/repoinfo.go", cfg.Output.Path)
	assert.Equal(t, "gen", cfg.Output.Package)
	assert.Equal(t, "user-name <email@demo.com>", cfg.Build.User)
}

func TestParseFile_YMLExtension(t *testing.T) {
	path := writeConfigFile(t, "repoinfo.yml", "source:\n  root: /yml/root\n")

	cfg, err := parseFile(path)

	require.NoError(t, err)
	assert.Equal(t, "/yml/root", cfg.Source.Root)
}

func TestParseFile_PartialDocument(t *testing.T) {
	path := writeConfigFile(t, "partial.json", `{"build": {"user": "somebody"}}`)

	cfg, err := parseFile(path)

	require.NoError(t, err)
	assert.Equal(t, "somebody", cfg.Build.User)
	assert.Empty(t, cfg.Source.Root)
	assert.Empty(t, cfg.Output.Path)
}

func TestParseFile_MissingFile(t *testing.T) {
	cfg, err := parseFile(filepath.Join(t.TempDir(), "absent.json"))

	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestParseFile_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, "broken.json", `{"source": `)

	cfg, err := parseFile(path)

	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestParseFile_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "broken.yaml", "source: [unclosed\n")

	cfg, err := parseFile(path)

	assert.Nil(t, cfg)
	require.Error(t, err)
}
