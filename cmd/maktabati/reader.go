package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/samber/do/v2"
	"golang.org/x/term"

	"github.com/justyntemme/maktabati-t/internal/config"
	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/di"
	"github.com/justyntemme/maktabati-t/internal/errors"
	"github.com/justyntemme/maktabati-t/internal/logger"
	"github.com/justyntemme/maktabati-t/internal/navigation"
	"github.com/justyntemme/maktabati-t/internal/state"
)

// reader holds the services a command works with.
type reader struct {
	injector   *do.RootScope
	cfg        *config.Config
	log        *slog.Logger
	store      *state.Store
	index      *content.Index
	controller *navigation.Controller
}

func openReader() (*reader, error) {
	injector := di.NewContainer(configFile)
	if err := di.Bootstrap(injector); err != nil {
		_ = injector.Shutdown()
		return nil, err
	}
	return &reader{
		injector:   injector,
		cfg:        do.MustInvoke[*config.Config](injector),
		log:        do.MustInvoke[*logger.Logger](injector).Logger,
		store:      do.MustInvoke[*state.Store](injector),
		index:      do.MustInvoke[*content.Index](injector),
		controller: do.MustInvoke[*navigation.Controller](injector),
	}, nil
}

// close flushes the state and releases badger.
func (r *reader) close() {
	if err := r.injector.Shutdown(); err != nil {
		r.log.Error("shutdown failed", "error", err)
	}
}

var (
	headingColor = color.New(color.Bold)
	labelColor   = color.New(color.FgCyan)
	markColor    = color.New(color.FgYellow)
	mutedColor   = color.New(color.Faint)
	okColor      = color.New(color.FgGreen)
	errColor     = color.New(color.FgRed)
)

// setupColor disables colour unless out is a terminal.
func setupColor(out io.Writer) {
	f, ok := out.(*os.File)
	color.NoColor = !ok || !term.IsTerminal(int(f.Fd()))
}

// parsePage reads a book and page number from command arguments.
func parsePage(bookArg, pageArg string) (content.Book, int, error) {
	book, err := content.ParseBook(bookArg)
	if err != nil {
		return "", 0, err
	}
	n, err := strconv.Atoi(pageArg)
	if err != nil {
		return "", 0, errors.Validation("page %q is not a number", pageArg)
	}
	return book, n, nil
}

// printPosition writes the page now on screen.
func printPosition(w io.Writer, r *reader) {
	sp := r.controller.Spread()
	p := r.controller.Page()
	_, _ = labelColor.Fprintf(w, "%s", sp.Book.Title())
	fmt.Fprintf(w, "  %s", sp.Label(r.index))
	if p.Surah != "" {
		fmt.Fprintf(w, "  سورة %s  الجزء %d", p.Surah, p.Juz)
	}
	_, _ = mutedColor.Fprintf(w, "  (%d/%d)\n", p.SequentialIndex, sp.Book.Length())
}
