package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{"port": 9000, "memory_store": true, "debug": true}`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.MemoryStore)
	assert.True(t, cfg.Debug)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{port: 9000}`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_RequiresDatabaseUnlessMemory(t *testing.T) {
	cfg := &Config{Port: 8080}
	assert.Error(t, cfg.Validate())

	cfg.MemoryStore = true
	assert.NoError(t, cfg.Validate())

	cfg = &Config{Port: 8080, DatabaseURL: "postgres://localhost/resumes"}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000, MemoryStore: true}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingModelDir(t *testing.T) {
	cfg := &Config{MemoryStore: true, ModelDir: filepath.Join(t.TempDir(), "nope")}
	assert.Error(t, cfg.Validate())
}

func TestFromEnv_FillsEmptyFields(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("DATABASE_URL", "postgres://env/resumes")

	cfg := &Config{}
	cfg.FromEnv()
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "postgres://env/resumes", cfg.DatabaseURL)
}

func TestFromEnv_ExplicitValuesWin(t *testing.T) {
	t.Setenv("PORT", "7070")

	cfg := &Config{Port: 9090}
	cfg.FromEnv()
	assert.Equal(t, 9090, cfg.Port)
}
