package providers

import (
	"context"
	"fmt"

	"github.com/samber/do/v2"

	"github.com/justyntemme/maktabati-t/internal/config"
	"github.com/justyntemme/maktabati-t/internal/logger"
	"github.com/justyntemme/maktabati-t/internal/state"
)

// BackendHandle wraps the badger backend with shutdown capability.
type BackendHandle struct {
	*state.BadgerBackend
}

// Shutdown implements do.ShutdownerWithError.
func (h *BackendHandle) Shutdown() error {
	return h.Close()
}

// ProvideStateBackend opens the badger database holding the reading state.
func ProvideStateBackend(i do.Injector) (*BackendHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	backend, err := state.OpenBadger(cfg.State.Dir, log.WithComponent("state"))
	if err != nil {
		return nil, fmt.Errorf("state database %s: %w", cfg.State.Dir, err)
	}
	return &BackendHandle{BadgerBackend: backend}, nil
}

// ProvideStore provides the reading state store. It shuts down before the
// backend, flushing pending writes.
func ProvideStore(i do.Injector) (*state.Store, error) {
	backend := do.MustInvoke[*BackendHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	store := state.NewStore(context.Background(), backend.BadgerBackend, log.WithComponent("state"))
	snap := store.Snapshot()
	log.Debug("reading state loaded",
		"book", snap.ActiveBook,
		"quran", snap.QuranIndex,
		"thoughts", snap.ThoughtsIndex,
		"bookmarks", len(snap.Bookmarks),
		"notes", len(snap.Notes),
	)
	return store, nil
}
