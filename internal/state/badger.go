package state

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/justyntemme/maktabati-t/internal/errors"
	"github.com/justyntemme/maktabati-t/pkg/models"
)

// Backend stores the encoded reader state under a single entry.
type Backend interface {
	// Load returns ErrNotFound when nothing has been saved yet.
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// BadgerBackend keeps the reader state in a Badger database.
type BadgerBackend struct {
	db     *badger.DB
	key    []byte
	logger *slog.Logger
}

// OpenBadger opens the database at path. An empty path opens an in-memory
// database, which tests use.
func OpenBadger(path string, logger *slog.Logger) (*BadgerBackend, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}
	if logger != nil {
		logger.Debug("state database opened", "path", path)
	}
	return &BadgerBackend{db: db, key: []byte(models.StorageKey), logger: logger}, nil
}

// Load reads the stored entry.
func (b *BadgerBackend) Load(_ context.Context) ([]byte, error) {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(b.key)
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.NotFound("no entry %q", b.key)
	}
	if err != nil {
		return nil, errors.Internal(err, "read reader state")
	}
	return data, nil
}

// Save replaces the stored entry.
func (b *BadgerBackend) Save(_ context.Context, data []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(b.key, data)
	})
	if err != nil {
		return errors.Internal(err, "write reader state")
	}
	return nil
}

// Close closes the database.
func (b *BadgerBackend) Close() error {
	return b.db.Close()
}
