package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/maktabati-t/internal/layout"
	"github.com/justyntemme/maktabati-t/internal/navigation"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	return filepath.Join(home, appDirName)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		env               map[string]string
		wantErr           bool
		wantErrorContains []string
		check             func(t *testing.T, dir string, cfg *Config)
	}{
		{
			name: "missing file uses defaults",
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, filepath.Join(dir, "images"), cfg.Library.ImageDir)
				assert.Equal(t, filepath.Join(dir, "state"), cfg.State.Dir)
				assert.Equal(t, filepath.Join(dir, "maktabati.log"), cfg.Log.File)
				assert.Equal(t, "info", cfg.Log.Level)
				assert.Equal(t, "pretty", cfg.Log.Format)
				assert.Equal(t, 64, cfg.Library.CacheSizeMB)
				assert.Equal(t, layout.DefaultThresholds, cfg.Thresholds())
				assert.Equal(t, navigation.DefaultGestureConfig, cfg.GestureConfig())
				assert.Equal(t, layout.PointerFine, cfg.Pointer())
				assert.Equal(t, "dark", cfg.UI.Theme)
			},
		},
		{
			name: "file values override defaults",
			configContent: `library:
  image_dir: /srv/books
  remote_url: https://example.org/static
  cache_size_mb: 128
layout:
  pointer: coarse
  desktop_min_width: 1280
gestures:
  swipe_max_duration: 300ms
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, "/srv/books", cfg.Library.ImageDir)
				assert.Equal(t, "https://example.org/static", cfg.Library.RemoteURL)
				assert.Equal(t, int64(128<<20), cfg.CacheBytes())
				assert.Equal(t, layout.PointerCoarse, cfg.Pointer())
				assert.Equal(t, 1280, cfg.Thresholds().DesktopMinWidth)
				assert.Equal(t, 600, cfg.Thresholds().TabletMinHeight)
				assert.Equal(t, 300*time.Millisecond, cfg.GestureConfig().SwipeMaxDuration)
				assert.Equal(t, filepath.Join(dir, "state"), cfg.State.Dir)
			},
		},
		{
			name: "environment overrides file",
			configContent: `log:
  level: warn
`,
			env: map[string]string{"MAKTABATI_LOG_LEVEL": "debug"},
			check: func(t *testing.T, _ string, cfg *Config) {
				assert.Equal(t, "debug", cfg.Log.Level)
			},
		},
		{
			name: "invalid YAML format",
			configContent: `library:
  image_dir: [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
			},
		},
		{
			name: "invalid values are reported by key",
			configContent: `library:
  remote_url: not a url
  cache_size_mb: 0
log:
  level: loud
layout:
  pointer: stylus
`,
			wantErr: true,
			wantErrorContains: []string{
				"remote_url",
				"cache_size_mb",
				"level",
				"pointer",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var configPath string
			if tt.configContent != "" {
				configPath = filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0o644))
			}

			got, err := Load(configPath)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			tt.check(t, dir, got)
		})
	}
}

func TestLoad_DefaultPath(t *testing.T) {
	dir := isolate(t)
	wd := t.TempDir()
	original, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(wd))
	t.Cleanup(func() { _ = os.Chdir(original) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, configFileName), cfg.Path())

	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("ui:\n  theme: light\n"), 0o644))

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path())
}

func TestSave_RoundTrip(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.Library.RemoteURL = "https://books.example.org"
	cfg.Gestures.SwipeMaxDuration = 450 * time.Millisecond
	cfg.UI.Theme = "light"
	require.NoError(t, cfg.Save())
	assert.FileExists(t, path)

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Settings(), reloaded.Settings())
}

func TestValidate(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	cfg.Layout.CellWidth = 0
	cfg.UI.Theme = "neon"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cell_width")
	assert.Contains(t, err.Error(), "theme")
}
