// Package assets loads page images. Images are read from a local directory
// first; missing ones are downloaded once from the static host and written
// to that directory so later sessions work offline. Decoded images are kept
// in a bounded in-memory cache.
package assets

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgraph-io/ristretto/v2"
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/justyntemme/maktabati-t/internal/errors"
)

var errNotOnHost = stderrors.New("not on host")

// Fetcher downloads images by relative reference.
type Fetcher interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// Loader resolves image references to decoded images.
type Loader struct {
	root   string
	remote Fetcher
	cache  *ristretto.Cache[string, image.Image]
	logger *slog.Logger
}

// NewLoader creates a loader rooted at dir. remote may be nil for a purely
// local library. cacheBytes bounds the decoded image cache.
func NewLoader(dir string, remote Fetcher, cacheBytes int64, logger *slog.Logger) (*Loader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, image.Image]{
		NumCounters: 10_000,
		MaxCost:     cacheBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create image cache: %w", err)
	}
	return &Loader{root: dir, remote: remote, cache: cache, logger: logger}, nil
}

// Load returns the decoded image for ref.
func (l *Loader) Load(ctx context.Context, ref string) (image.Image, error) {
	if img, ok := l.cache.Get(ref); ok {
		return img, nil
	}

	data, err := l.read(ctx, ref)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Corrupt(err, "decode %s", ref)
	}

	b := img.Bounds()
	l.cache.Set(ref, img, int64(b.Dx()*b.Dy()*4))
	return img, nil
}

// Available reports whether ref is on disk.
func (l *Loader) Available(ref string) bool {
	_, err := os.Stat(l.path(ref))
	return err == nil
}

// Prefetch downloads refs that are not on disk yet. It stops at the first
// failure other than a missing remote file.
func (l *Loader) Prefetch(ctx context.Context, refs []string) (int, error) {
	fetched := 0
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return fetched, err
		}
		if l.Available(ref) {
			continue
		}
		if _, err := l.read(ctx, ref); err != nil {
			if errors.Is(err, errors.ErrNotFound) {
				continue
			}
			return fetched, err
		}
		fetched++
	}
	return fetched, nil
}

// Close releases the cache.
func (l *Loader) Close() {
	l.cache.Close()
}

// Shutdown implements do.ShutdownerWithError.
func (l *Loader) Shutdown() error {
	l.Close()
	return nil
}

func (l *Loader) path(ref string) string {
	return filepath.Join(l.root, filepath.FromSlash(ref))
}

func (l *Loader) read(ctx context.Context, ref string) ([]byte, error) {
	p := l.path(ref)
	data, err := os.ReadFile(p)
	if err == nil {
		return data, nil
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Internal(err, "read %s", ref)
	}
	if l.remote == nil {
		return nil, errors.NotFound("image %s not in %s", ref, l.root)
	}

	data, err = l.remote.Fetch(ctx, ref)
	if stderrors.Is(err, errNotOnHost) {
		return nil, errors.NotFound("image %s not on host", ref)
	}
	if err != nil {
		return nil, errors.Internal(err, "fetch %s", ref)
	}
	if err := writeFile(p, data); err != nil {
		l.logger.Warn("cache image", "ref", ref, "error", err)
	} else {
		l.logger.Debug("cached image", "ref", ref, "bytes", len(data))
	}
	return data, nil
}

// writeFile writes atomically so an interrupted download never leaves a
// truncated image behind.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".download-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
