package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/navigation"
)

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the reading position in both books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openReader()
			if err != nil {
				return err
			}
			defer r.close()

			w := cmd.OutOrStdout()
			setupColor(w)
			snap := r.store.Snapshot()

			for _, book := range content.Books {
				i := snap.IndexOf(book)
				p, err := r.index.Resolve(book, i)
				if err != nil {
					return err
				}
				marker := " "
				if book == snap.ActiveBook {
					marker = "•"
				}
				_, _ = headingColor.Fprintf(w, "%s %s\n", marker, book.Title())
				fmt.Fprintf(w, "    %s", p.Label())
				if p.Surah != "" {
					fmt.Fprintf(w, "  سورة %s  الجزء %d", p.Surah, p.Juz)
				}
				fmt.Fprintf(w, "  (%d/%d, %.0f%%)\n", i, book.Length(), r.index.Progress(book, i)*100)
			}

			fmt.Fprintln(w)
			fmt.Fprintf(w, "spread: %t  rotation: %d°  ui: %t\n", snap.SpreadMode, snap.Rotation, snap.UIVisible)
			fmt.Fprintf(w, "bookmarks: %s  notes: %s\n",
				humanize.Comma(int64(len(snap.Bookmarks))), humanize.Comma(int64(len(snap.Notes))))
			return nil
		},
	}
}

func newGotoCommand() *cobra.Command {
	var sequential bool

	command := &cobra.Command{
		Use:   "goto <book> <page>",
		Short: "Jump to a printed page number, or a file index with --sequential",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, n, err := parsePage(args[0], args[1])
			if err != nil {
				return err
			}

			r, err := openReader()
			if err != nil {
				return err
			}
			defer r.close()

			target := navigation.Logical(book, n)
			if sequential {
				target = navigation.Sequential(book, n)
			}
			if err := r.controller.JumpTo(target); err != nil {
				return err
			}
			setupColor(cmd.OutOrStdout())
			printPosition(cmd.OutOrStdout(), r)
			return nil
		},
	}

	command.Flags().BoolVar(&sequential, "sequential", false, "treat <page> as a file index, counting the cover and intro pages")
	return command
}

func newPaginateCommand(use, short string, dir navigation.Direction) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openReader()
			if err != nil {
				return err
			}
			defer r.close()

			if err := r.controller.Paginate(dir); err != nil {
				return err
			}
			setupColor(cmd.OutOrStdout())
			printPosition(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func newNextCommand() *cobra.Command {
	return newPaginateCommand("next", "Turn to the next page of the active book", navigation.Forward)
}

func newPrevCommand() *cobra.Command {
	return newPaginateCommand("prev", "Turn to the previous page of the active book", navigation.Backward)
}

func newBookCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "book <quran|thoughts>",
		Short:     "Switch the active book",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(content.Quran), string(content.Thoughts)},
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := content.ParseBook(args[0])
			if err != nil {
				return err
			}

			r, err := openReader()
			if err != nil {
				return err
			}
			defer r.close()

			if err := r.controller.SwitchBook(book); err != nil {
				return err
			}
			setupColor(cmd.OutOrStdout())
			printPosition(cmd.OutOrStdout(), r)
			return nil
		},
	}
}
