package state

import (
	"context"
	"sync"
	"testing"

	"github.com/justyntemme/maktabati-t/internal/errors"
	"github.com/justyntemme/maktabati-t/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingBackend records saves and can hold them until released.
type blockingBackend struct {
	mu      sync.Mutex
	saves   [][]byte
	gate    chan struct{}
	started chan struct{}
}

func newBlockingBackend() *blockingBackend {
	return &blockingBackend{gate: make(chan struct{}), started: make(chan struct{}, 16)}
}

func (b *blockingBackend) Load(context.Context) ([]byte, error) {
	return nil, errors.NotFound("empty")
}

func (b *blockingBackend) Save(_ context.Context, data []byte) error {
	b.started <- struct{}{}
	<-b.gate
	b.mu.Lock()
	defer b.mu.Unlock()
	b.saves = append(b.saves, data)
	return nil
}

func (b *blockingBackend) saved() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.saves))
	for i, s := range b.saves {
		out[i] = string(s)
	}
	return out
}

func TestWriter_CoalescesWhileSaving(t *testing.T) {
	backend := newBlockingBackend()
	w := newWriter(backend, logger.Discard().Logger)

	w.enqueue([]byte("1"))
	<-backend.started

	// Queued behind the in-flight save; only the latest survives.
	w.enqueue([]byte("2"))
	w.enqueue([]byte("3"))
	w.enqueue([]byte("4"))

	close(backend.gate)
	require.NoError(t, w.close())

	assert.Equal(t, []string{"1", "4"}, backend.saved())
}

func TestWriter_CloseFlushesAndIgnoresLateWrites(t *testing.T) {
	backend := newBlockingBackend()
	close(backend.gate)
	w := newWriter(backend, logger.Discard().Logger)

	w.enqueue([]byte("last"))
	require.NoError(t, w.close())
	require.NoError(t, w.close())

	w.enqueue([]byte("late"))
	assert.Equal(t, []string{"last"}, backend.saved())
}
