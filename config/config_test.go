package config_test

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primviz/config"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFS(afero.NewMemMapFs(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "prim", cfg.Algorithm.Method)
	assert.Equal(t, 1024, cfg.Algorithm.MaxVertices)
}

func TestLoad_FileThenEnv(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/primviz.toml", []byte(`
[server]
addr = "127.0.0.1:9000"
request_timeout = "2s"
max_concurrent = 4

[log]
level = "debug"

[algorithm]
method = "kruskal"
strict_symmetry = true

[export]
format = "markdown"
width = 60
`), 0o644))

	cfg, err := config.LoadFS(fs, "/etc/primviz.toml", envMap(map[string]string{
		"PRIMVIZ_MAX_CONCURRENT": "8",
		"PRIMVIZ_LOG_JSON":       "true",
		"PRIMVIZ_ROOT":           "not-a-number",
	}))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 8, cfg.Server.MaxConcurrent, "env wins over file")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "kruskal", cfg.Algorithm.Method)
	assert.True(t, cfg.Algorithm.StrictSymmetry)
	assert.Zero(t, cfg.Algorithm.Root, "unparsable env keeps the current value")
	assert.Equal(t, "markdown", cfg.Export.Format)
	assert.Equal(t, uint(60), cfg.Export.Width)
}

func TestLoad_UnknownKey(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "c.toml", []byte("[server]\nport = 1\n"), 0o644))

	_, err := config.LoadFS(fs, "c.toml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFS(afero.NewMemMapFs(), "nope.toml", nil)
	assert.Error(t, err)
}

func TestValidate_ReportsAll(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Server.MaxConcurrent = 0
	cfg.Algorithm.Method = "boruvka"
	cfg.Export.Format = "pdf"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_concurrent")
	assert.Contains(t, err.Error(), "boruvka")
	assert.Contains(t, err.Error(), "pdf")
}
