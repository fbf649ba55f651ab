package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/abdidvp/codeshift/internal/adapters/outbound/config"
	"github.com/abdidvp/codeshift/internal/domain"
	"github.com/abdidvp/codeshift/internal/domain/fixer"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CODESHIFT_LATENCY_MS", "CODESHIFT_CACHE_SIZE", "CODESHIFT_WORKERS",
		"CODESHIFT_RECORD_HISTORY", "CODESHIFT_DEFAULT_TARGET",
	} {
		t.Setenv(k, "")
	}
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := appconfig.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".codeshift.yaml", `
latency_ms: 0
workers: 8
record_history: true
disabled_rules: [redundant-and-true]
default_target: typescript
`)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.LatencyMS)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, domain.DefaultCacheSize, cfg.CacheSize, "omitted fields keep defaults")
	assert.True(t, cfg.RecordHistory)
	assert.Equal(t, []string{fixer.RuleRedundantAnd}, cfg.DisabledRules)
	assert.Equal(t, domain.LangTypeScript, cfg.DefaultTarget)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".codeshift.yaml", `{{{invalid yaml`)

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .codeshift.yaml")
}

func TestYAMLLoader_ValidationFailure(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".codeshift.yaml", "disabled_rules: [no-such-rule]\n")

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "invalid .codeshift.yaml")
}

func TestYAMLLoader_EnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".codeshift.yaml", "latency_ms: 100\n")
	t.Setenv("CODESHIFT_LATENCY_MS", "0")
	t.Setenv("CODESHIFT_RECORD_HISTORY", "true")
	t.Setenv("CODESHIFT_DEFAULT_TARGET", "ts")

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.LatencyMS)
	assert.True(t, cfg.RecordHistory)
	assert.Equal(t, domain.LangTypeScript, cfg.DefaultTarget)
}

func TestYAMLLoader_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, ".env", "CODESHIFT_CACHE_SIZE=7\nCODESHIFT_WORKERS=2\n")
	t.Setenv("CODESHIFT_WORKERS", "5")

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.CacheSize)
	assert.Equal(t, 5, cfg.Workers, "process environment wins over .env")
}

func TestYAMLLoader_BadEnvValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("CODESHIFT_WORKERS", "many")

	_, err := appconfig.New().Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "CODESHIFT_WORKERS")
}

func TestWriteDefault(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	path, err := appconfig.WriteDefault(dir, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".codeshift.yaml"), path)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig().LatencyMS, cfg.LatencyMS)
	assert.Equal(t, domain.LangJavaScript, cfg.DefaultTarget)

	_, err = appconfig.WriteDefault(dir, false)
	assert.Error(t, err)
	_, err = appconfig.WriteDefault(dir, true)
	assert.NoError(t, err)
}
