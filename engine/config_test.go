package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/prism/engine/core"
)

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prism.toml")
	writeConfig(t, path, `
log_level = "debug"

[systems]
max_texture_count = 8
job_workers = 2
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint32(8), cfg.Systems.MaxTextureCount)
	assert.Equal(t, 2, cfg.Systems.JobWorkers)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultConfig().Systems.MaxMaterialCount, cfg.Systems.MaxMaterialCount)
	assert.Equal(t, DefaultConfig().Name, cfg.Name)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"log level":     `log_level = "loud"`,
		"zero workers":  "[systems]\njob_workers = 0",
		"zero textures": "[systems]\nmax_texture_count = 0",
		"zero tick":     "tick_rate = 0",
		"unknown key":   `colour = "red"`,
		"syntax":        `log_level = `,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prism.toml")
			writeConfig(t, path, body)
			_, err := LoadConfig(path)
			assert.ErrorIs(t, err, core.ErrInvalidConfig)
		})
	}
}

func TestConfigApply(t *testing.T) {
	prev := core.GetLogLevel()
	t.Cleanup(func() { core.SetLogLevel(prev) })

	cfg := DefaultConfig()
	cfg.LogLevel = "error"
	cfg.Apply()
	assert.Equal(t, core.LogLevelError, core.GetLogLevel())

	cfg.LogLevel = "nonsense"
	cfg.Apply()
	assert.Equal(t, core.LogLevelError, core.GetLogLevel())
}

func TestConfigWatcherReloads(t *testing.T) {
	prev := core.GetLogLevel()
	t.Cleanup(func() { core.SetLogLevel(prev) })

	dir := t.TempDir()
	path := filepath.Join(dir, "prism.toml")
	writeConfig(t, path, `log_level = "info"`)

	changes := make(chan *Config, 8)
	cw, err := NewConfigWatcher(path, func(c *Config) { changes <- c })
	require.NoError(t, err)
	t.Cleanup(func() { cw.Close() })

	// sibling files and invalid contents are ignored
	writeConfig(t, filepath.Join(dir, "other.toml"), `log_level = "debug"`)
	writeConfig(t, path, `log_level = "loud"`)
	writeConfig(t, path, `log_level = "warn"`)

	// a truncated file may be observed before the final write lands
	timeout := time.After(5 * time.Second)
	for seen := false; !seen; {
		select {
		case c := <-changes:
			seen = c.LogLevel == "warn"
		case <-timeout:
			t.Fatal("config change was not observed")
		}
	}
	assert.Equal(t, core.LogLevelWarn, core.GetLogLevel())

	require.NoError(t, cw.Close())
	require.NoError(t, cw.Close())
}
