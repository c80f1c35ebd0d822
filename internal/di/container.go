// Package di wires the reader's services together.
package di

import (
	"github.com/samber/do/v2"

	"github.com/justyntemme/maktabati-t/internal/assets"
	"github.com/justyntemme/maktabati-t/internal/config"
	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/di/providers"
	"github.com/justyntemme/maktabati-t/internal/layout"
	"github.com/justyntemme/maktabati-t/internal/logger"
	"github.com/justyntemme/maktabati-t/internal/navigation"
	"github.com/justyntemme/maktabati-t/internal/state"
)

// NewContainer creates the DI container. configFile may be empty to use
// the default lookup.
func NewContainer(configFile string) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, providers.ConfigFile(configFile))

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Reading state
	do.Provide(injector, providers.ProvideStateBackend)
	do.Provide(injector, providers.ProvideStore)

	// Content and navigation
	do.Provide(injector, providers.ProvideIndex)
	do.Provide(injector, providers.ProvideDetector)
	do.Provide(injector, providers.ProvideController)

	// Images
	do.Provide(injector, providers.ProvideLoader)

	return injector
}

// Bootstrap initializes the services every command needs.
func Bootstrap(injector do.Injector) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*state.Store](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*content.Index](injector)
	_ = do.MustInvoke[*layout.Detector](injector)
	_ = do.MustInvoke[*navigation.Controller](injector)
	return nil
}

// Loader returns the image loader, creating it on first use.
func Loader(injector do.Injector) (*assets.Loader, error) {
	return do.Invoke[*assets.Loader](injector)
}
