package di

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/navigation"
	"github.com/justyntemme/maktabati-t/internal/state"
)

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf(`library:
  image_dir: %s
state:
  dir: %s
log:
  level: debug
  file: %s
`, filepath.Join(dir, "images"), filepath.Join(dir, "state"), filepath.Join(dir, "maktabati.log"))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestContainer_PersistsAcrossRestarts(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	injector := NewContainer(cfgPath)
	require.NoError(t, Bootstrap(injector))

	ctrl := do.MustInvoke[*navigation.Controller](injector)
	require.NoError(t, ctrl.JumpTo(navigation.Logical(content.Quran, 50)))
	_, err := Loader(injector)
	require.NoError(t, err)
	require.NoError(t, injector.Shutdown())

	assert.FileExists(t, filepath.Join(dir, "maktabati.log"))

	injector = NewContainer(cfgPath)
	require.NoError(t, Bootstrap(injector))
	t.Cleanup(func() { _ = injector.Shutdown() })

	store := do.MustInvoke[*state.Store](injector)
	book, i := store.Current()
	assert.Equal(t, content.Quran, book)
	assert.Equal(t, 53, i)
}

func TestBootstrap_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  pointer: pen\n"), 0o644))

	injector := NewContainer(path)
	err := Bootstrap(injector)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pointer")
}
