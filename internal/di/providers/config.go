// Package providers contains dependency injection providers.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/justyntemme/maktabati-t/internal/config"
	"github.com/justyntemme/maktabati-t/internal/logger"
)

// ConfigFile is the --config flag value. Empty means the default lookup.
type ConfigFile string

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.Load(string(do.MustInvoke[ConfigFile](i)))
}

// ProvideLogger provides the structured logger. The terminal belongs to the
// reader, so records go to the log file.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	lcfg := logger.Config{
		Format: cfg.Log.Format,
		Level:  logger.ParseLevel(cfg.Log.Level),
	}
	if cfg.Log.File == "" {
		return logger.Discard(), nil
	}
	log, err := logger.Open(cfg.Log.File, lcfg)
	if err != nil {
		return nil, err
	}

	log.Info("starting maktabati",
		"config", cfg.Path(),
		"image_dir", cfg.Library.ImageDir,
		"state_dir", cfg.State.Dir,
	)
	return log, nil
}
