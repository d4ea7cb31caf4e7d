package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithoutPostgresSection(t *testing.T) {
	dir := t.TempDir()
	content := []byte("env:\n  env: test\n  log:\n    level: info\nhttp:\n  port: 8080\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))
	t.Chdir(dir)

	cfg, err := New()

	require.NoError(t, err)
	assert.Nil(t, cfg.Postgres)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}
