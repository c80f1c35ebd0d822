package providers

import (
	"github.com/samber/do/v2"

	"github.com/justyntemme/maktabati-t/internal/assets"
	"github.com/justyntemme/maktabati-t/internal/config"
	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/layout"
	"github.com/justyntemme/maktabati-t/internal/logger"
	"github.com/justyntemme/maktabati-t/internal/navigation"
	"github.com/justyntemme/maktabati-t/internal/state"
)

// ProvideIndex provides the page index of both books.
func ProvideIndex(i do.Injector) (*content.Index, error) {
	return content.NewIndex(), nil
}

// ProvideDetector provides the layout detector, primed with the active book.
func ProvideDetector(i do.Injector) (*layout.Detector, error) {
	cfg := do.MustInvoke[*config.Config](i)
	store := do.MustInvoke[*state.Store](i)

	d := layout.NewDetector(cfg.Thresholds())
	book, _ := store.Current()
	d.SetBook(book)
	return d, nil
}

// ProvideController provides the navigation controller.
func ProvideController(i do.Injector) (*navigation.Controller, error) {
	store := do.MustInvoke[*state.Store](i)
	index := do.MustInvoke[*content.Index](i)
	detector := do.MustInvoke[*layout.Detector](i)
	log := do.MustInvoke[*logger.Logger](i)

	return navigation.NewController(store, index, detector, log.WithComponent("navigation")), nil
}

// ProvideLoader provides the page image loader.
func ProvideLoader(i do.Injector) (*assets.Loader, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	var remote assets.Fetcher
	if cfg.Library.RemoteURL != "" {
		remote = assets.NewClient(cfg.Library.RemoteURL)
	}
	return assets.NewLoader(cfg.Library.ImageDir, remote, cfg.CacheBytes(), log.WithComponent("assets"))
}
