// Package config loads reader settings from config.yaml, MAKTABATI_*
// environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/justyntemme/maktabati-t/internal/layout"
	"github.com/justyntemme/maktabati-t/internal/navigation"
)

const (
	appDirName     = "maktabati"
	configFileName = "config.yaml"
	envPrefix      = "MAKTABATI"
)

// Config holds the application configuration
type Config struct {
	Library  LibraryConfig  `mapstructure:"library"`
	State    StateConfig    `mapstructure:"state"`
	Log      LogConfig      `mapstructure:"log"`
	Layout   LayoutConfig   `mapstructure:"layout"`
	Gestures GesturesConfig `mapstructure:"gestures"`
	UI       UIConfig       `mapstructure:"ui"`

	// Path to config file (not persisted)
	path string
}

type LibraryConfig struct {
	ImageDir    string `mapstructure:"image_dir" validate:"required"`
	RemoteURL   string `mapstructure:"remote_url" validate:"omitempty,url"`
	CacheSizeMB int    `mapstructure:"cache_size_mb" validate:"gt=0"`
}

type StateConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=pretty json"`
	File   string `mapstructure:"file"`
}

type LayoutConfig struct {
	Pointer         string `mapstructure:"pointer" validate:"oneof=fine coarse"`
	CellWidth       int    `mapstructure:"cell_width" validate:"gt=0"`
	CellHeight      int    `mapstructure:"cell_height" validate:"gt=0"`
	DesktopMinWidth int    `mapstructure:"desktop_min_width" validate:"gt=0"`
	TabletMinHeight int    `mapstructure:"tablet_min_height" validate:"gt=0"`
}

type GesturesConfig struct {
	DragDistance     float64       `mapstructure:"drag_distance" validate:"gt=0"`
	DragVelocity     float64       `mapstructure:"drag_velocity" validate:"gt=0"`
	SwipeDistance    float64       `mapstructure:"swipe_distance" validate:"gt=0"`
	SwipeMaxDuration time.Duration `mapstructure:"swipe_max_duration" validate:"gt=0"`
}

type UIConfig struct {
	Theme string `mapstructure:"theme" validate:"oneof=dark light"`
}

// Load reads configFile, or config.yaml from the current directory and the
// user config dir when configFile is empty. A missing file is not an error.
func Load(configFile string) (*Config, error) {
	dir, err := appDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")

	path := configFile
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath(dir)
		path = filepath.Join(dir, configFileName)
	}

	setDefaults(v, dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	} else {
		path = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("library.image_dir", filepath.Join(dir, "images"))
	v.SetDefault("library.remote_url", "")
	v.SetDefault("library.cache_size_mb", 64)
	v.SetDefault("state.dir", filepath.Join(dir, "state"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "pretty")
	v.SetDefault("log.file", filepath.Join(dir, "maktabati.log"))
	v.SetDefault("layout.pointer", string(layout.PointerFine))
	v.SetDefault("layout.cell_width", 8)
	v.SetDefault("layout.cell_height", 16)
	v.SetDefault("layout.desktop_min_width", layout.DefaultThresholds.DesktopMinWidth)
	v.SetDefault("layout.tablet_min_height", layout.DefaultThresholds.TabletMinHeight)
	v.SetDefault("gestures.drag_distance", navigation.DefaultGestureConfig.DragDistance)
	v.SetDefault("gestures.drag_velocity", navigation.DefaultGestureConfig.DragVelocity)
	v.SetDefault("gestures.swipe_distance", navigation.DefaultGestureConfig.SwipeDistance)
	v.SetDefault("gestures.swipe_max_duration", navigation.DefaultGestureConfig.SwipeMaxDuration)
	v.SetDefault("ui.theme", "dark")
}

// Path returns the file the config was read from, or would be saved to.
func (c *Config) Path() string {
	return c.path
}

// Save persists the configuration to disk
func (c *Config) Save() error {
	if c.path == "" {
		return fmt.Errorf("config has no path")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	for key, value := range c.Settings() {
		v.Set(key, value)
	}
	return v.WriteConfigAs(c.path)
}

// SaveAs writes the configuration to path and remembers it.
func (c *Config) SaveAs(path string) error {
	c.path = path
	return c.Save()
}

// Settings flattens the config into dotted keys.
func (c *Config) Settings() map[string]any {
	return map[string]any{
		"library.image_dir":           c.Library.ImageDir,
		"library.remote_url":          c.Library.RemoteURL,
		"library.cache_size_mb":       c.Library.CacheSizeMB,
		"state.dir":                   c.State.Dir,
		"log.level":                   c.Log.Level,
		"log.format":                  c.Log.Format,
		"log.file":                    c.Log.File,
		"layout.pointer":              c.Layout.Pointer,
		"layout.cell_width":           c.Layout.CellWidth,
		"layout.cell_height":          c.Layout.CellHeight,
		"layout.desktop_min_width":    c.Layout.DesktopMinWidth,
		"layout.tablet_min_height":    c.Layout.TabletMinHeight,
		"gestures.drag_distance":      c.Gestures.DragDistance,
		"gestures.drag_velocity":      c.Gestures.DragVelocity,
		"gestures.swipe_distance":     c.Gestures.SwipeDistance,
		"gestures.swipe_max_duration": c.Gestures.SwipeMaxDuration.String(),
		"ui.theme":                    c.UI.Theme,
	}
}

// Thresholds returns the layout breakpoints.
func (c *Config) Thresholds() layout.Thresholds {
	return layout.Thresholds{
		DesktopMinWidth: c.Layout.DesktopMinWidth,
		TabletMinHeight: c.Layout.TabletMinHeight,
	}
}

// Pointer returns the configured input device.
func (c *Config) Pointer() layout.Pointer {
	return layout.Pointer(c.Layout.Pointer)
}

// GestureConfig returns the gesture thresholds.
func (c *Config) GestureConfig() navigation.GestureConfig {
	return navigation.GestureConfig{
		DragDistance:     c.Gestures.DragDistance,
		DragVelocity:     c.Gestures.DragVelocity,
		SwipeDistance:    c.Gestures.SwipeDistance,
		SwipeMaxDuration: c.Gestures.SwipeMaxDuration,
	}
}

// CacheBytes is the decoded image cache budget.
func (c *Config) CacheBytes() int64 {
	return int64(c.Library.CacheSizeMB) << 20
}

// appDir returns the per-user directory holding config and data.
func appDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, appDirName), nil
}
