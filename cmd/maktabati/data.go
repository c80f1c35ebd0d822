package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/di"
)

func newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the reading state as JSON. Use - for stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openReader()
			if err != nil {
				return err
			}
			defer r.close()

			data, err := r.store.Export()
			if err != nil {
				return err
			}
			if args[0] == "-" {
				_, err := cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(args[0], data, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}
			setupColor(cmd.OutOrStdout())
			_, _ = okColor.Fprintf(cmd.OutOrStdout(), "exported %s to %s\n", humanize.Bytes(uint64(len(data))), args[0])
			return nil
		},
	}
}

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the reading state from a JSON export. Use - for stdin",
		Long:  "Replace the reading state from a JSON export. Exports from the browser edition are accepted and migrated.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			r, err := openReader()
			if err != nil {
				return err
			}
			defer r.close()

			if err := r.store.Import(data); err != nil {
				return err
			}
			snap := r.store.Snapshot()
			setupColor(cmd.OutOrStdout())
			_, _ = okColor.Fprintf(cmd.OutOrStdout(), "imported %d bookmarks and %d notes\n", len(snap.Bookmarks), len(snap.Notes))
			printPosition(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func newPrefetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prefetch [quran|thoughts]",
		Short: "Download missing page images from library.remote_url",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books := content.Books
			if len(args) == 1 {
				book, err := content.ParseBook(args[0])
				if err != nil {
					return err
				}
				books = []content.Book{book}
			}

			r, err := openReader()
			if err != nil {
				return err
			}
			defer r.close()

			if r.cfg.Library.RemoteURL == "" {
				return fmt.Errorf("library.remote_url is not set")
			}
			loader, err := di.Loader(r.injector)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			w := cmd.OutOrStdout()
			setupColor(w)
			fmt.Fprintf(w, "Fetching pages from %s...\n", r.cfg.Library.RemoteURL)
			total := 0
			for _, book := range books {
				refs := make([]string, 0, book.Length())
				for _, p := range r.index.Pages(book) {
					refs = append(refs, p.ImageRef)
				}
				fmt.Fprintf(w, "  %s... ", book.Title())
				n, err := loader.Prefetch(ctx, refs)
				total += n
				if err != nil {
					_, _ = errColor.Fprintf(w, "FAILED after %d: %v\n", n, err)
					return err
				}
				_, _ = okColor.Fprintf(w, "%d new\n", n)
			}
			fmt.Fprintf(w, "\nFetched %s page(s) into %s.\n", humanize.Comma(int64(total)), r.cfg.Library.ImageDir)
			return nil
		},
	}
}

