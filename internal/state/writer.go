package state

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const saveTimeout = 5 * time.Second

// writer persists the most recent snapshot in the background. Snapshots
// queued while a save is running collapse into one.
type writer struct {
	backend Backend
	logger  *slog.Logger

	mu      sync.Mutex
	pending []byte
	closed  bool

	// saveMu serialises saves between the loop and Flush.
	saveMu sync.Mutex
	kick   chan struct{}
	done   chan struct{}
}

func newWriter(backend Backend, logger *slog.Logger) *writer {
	w := &writer{
		backend: backend,
		logger:  logger,
		kick:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w
}

// enqueue replaces the pending snapshot and wakes the loop.
func (w *writer) enqueue(data []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.pending = data
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

func (w *writer) loop() {
	defer close(w.done)
	for range w.kick {
		if err := w.flush(); err != nil {
			w.logger.Warn("persist reader state", "error", err)
		}
	}
}

// flush saves the pending snapshot, if any.
func (w *writer) flush() error {
	w.saveMu.Lock()
	defer w.saveMu.Unlock()

	w.mu.Lock()
	data := w.pending
	w.pending = nil
	w.mu.Unlock()

	if data == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	return w.backend.Save(ctx, data)
}

// close stops the loop and writes whatever is still pending.
func (w *writer) close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.kick)
	w.mu.Unlock()

	<-w.done
	return w.flush()
}
