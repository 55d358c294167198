package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), reloaded)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[server]
max_limit = 20
learn_on_submit = false

[dict]
paths = ["words.txt", "extra.msgpack"]
max_words = 1000
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Server.MaxLimit)
	assert.False(t, cfg.Server.LearnOnSubmit)
	assert.Equal(t, 60, cfg.Server.MaxPrefix)
	assert.Equal(t, []string{"words.txt", "extra.msgpack"}, cfg.Dict.Paths)
	assert.Equal(t, 24, cfg.CLI.DefaultLimit)

	opts := cfg.CompleterOptions()
	assert.Equal(t, 1000, opts.MaxWords)
	assert.False(t, opts.LearnOnSubmit)
	assert.Equal(t, 256, opts.RecentSize)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// max_prefix has the wrong type, which fails strict decoding
	data := `
[server]
max_limit = 5
max_prefix = "long"

[cli]
default_limit = 3
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Server.MaxLimit)
	assert.Equal(t, 60, cfg.Server.MaxPrefix)
	assert.Equal(t, 3, cfg.CLI.DefaultLimit)
}

func TestLoadConfigGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nmax_limit = "), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigWithPriority(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	custom := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(custom, []byte("[server]\nrecent_size = 7\n"), 0o644))

	cfg, path, err := LoadConfigWithPriority(custom)
	require.NoError(t, err)
	assert.Equal(t, custom, path)
	assert.Equal(t, 7, cfg.Server.RecentSize)

	cfg, path, err = LoadConfigWithPriority(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "config.toml", filepath.Base(path))
	assert.Equal(t, DefaultConfig(), cfg)
}
