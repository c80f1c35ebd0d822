package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/justyntemme/maktabati-t/internal/content"
)

func newBookmarkCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "bookmark",
		Short: "Manage bookmarks",
	}
	command.AddCommand(&cobra.Command{
		Use:   "toggle <book> <page>",
		Short: "Add or remove a bookmark on a file index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, i, err := parsePage(args[0], args[1])
			if err != nil {
				return err
			}

			r, err := openReader()
			if err != nil {
				return err
			}
			defer r.close()

			p, err := r.index.Resolve(book, i)
			if err != nil {
				return err
			}
			added, err := r.store.ToggleBookmark(p.ID)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			setupColor(w)
			if added {
				_, _ = okColor.Fprintf(w, "bookmarked %s\n", p.NoteLabel())
			} else {
				_, _ = mutedColor.Fprintf(w, "removed bookmark %s\n", p.NoteLabel())
			}
			return nil
		},
	})
	list := newBookmarksCommand()
	list.Use = "list"
	command.AddCommand(list)
	return command
}

func newBookmarksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bookmarks",
		Short: "List bookmarks in both books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openReader()
			if err != nil {
				return err
			}
			defer r.close()

			w := cmd.OutOrStdout()
			setupColor(w)
			ids := r.store.Snapshot().Bookmarks
			if len(ids) == 0 {
				_, _ = mutedColor.Fprintln(w, "no bookmarks")
				return nil
			}
			ids = append([]content.PageID(nil), ids...)
			sort.Slice(ids, func(i, j int) bool {
				if ids[i].Book != ids[j].Book {
					return ids[i].Book < ids[j].Book
				}
				return ids[i].Index < ids[j].Index
			})
			for _, id := range ids {
				p, err := r.index.Lookup(id)
				if err != nil {
					r.log.Warn("skipping bookmark", "page", id.String(), "error", err)
					continue
				}
				_, _ = markColor.Fprint(w, "★ ")
				fmt.Fprintf(w, "%-14s %s\n", id.String(), p.NoteLabel())
			}
			return nil
		},
	}
}

func newNoteCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "note",
		Short: "Manage page notes",
	}
	command.AddCommand(newNoteSetCommand(), newNoteRemoveCommand(), newNoteListCommand())
	return command
}

func newNoteSetCommand() *cobra.Command {
	var verse string

	command := &cobra.Command{
		Use:   "set <book> <page> <text...>",
		Short: "Write the note on a file index. Blank text deletes it",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, i, err := parsePage(args[0], args[1])
			if err != nil {
				return err
			}

			r, err := openReader()
			if err != nil {
				return err
			}
			defer r.close()

			p, err := r.index.Resolve(book, i)
			if err != nil {
				return err
			}
			if book != content.Quran {
				verse = ""
			}
			text := strings.Join(args[2:], " ")
			if err := r.store.SaveNote(p.ID, text, verse); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			setupColor(w)
			if strings.TrimSpace(text) == "" {
				_, _ = mutedColor.Fprintf(w, "deleted note on %s\n", p.NoteLabel())
				return nil
			}
			_, _ = okColor.Fprintf(w, "saved note on %s\n", p.NoteLabel())
			return nil
		},
	}

	command.Flags().StringVar(&verse, "verse", "", "verse reference, Quran pages only")
	return command
}

func newNoteRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <book> <page>",
		Aliases: []string{"delete"},
		Short:   "Delete the note on a file index",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, i, err := parsePage(args[0], args[1])
			if err != nil {
				return err
			}

			r, err := openReader()
			if err != nil {
				return err
			}
			defer r.close()

			p, err := r.index.Resolve(book, i)
			if err != nil {
				return err
			}
			if _, ok := r.store.Note(p.ID); !ok {
				return fmt.Errorf("no note on %s", p.NoteLabel())
			}
			r.store.DeleteNote(p.ID)

			setupColor(cmd.OutOrStdout())
			_, _ = mutedColor.Fprintf(cmd.OutOrStdout(), "deleted note on %s\n", p.NoteLabel())
			return nil
		},
	}
}

func newNoteListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openReader()
			if err != nil {
				return err
			}
			defer r.close()

			w := cmd.OutOrStdout()
			setupColor(w)
			notes := r.store.Snapshot().SortedNotes()
			if len(notes) == 0 {
				_, _ = mutedColor.Fprintln(w, "no notes")
				return nil
			}
			now := time.Now()
			for _, n := range notes {
				p, err := r.index.Lookup(n.PageID)
				if err != nil {
					continue
				}
				_, _ = headingColor.Fprint(w, p.NoteLabel())
				if n.VerseReference != "" {
					_, _ = labelColor.Fprintf(w, "  (%s)", n.VerseReference)
				}
				_, _ = mutedColor.Fprintf(w, "  %s\n", humanize.RelTime(n.CreatedAt, now, "ago", "from now"))
				for _, line := range strings.Split(n.Content, "\n") {
					fmt.Fprintf(w, "    %s\n", line)
				}
			}
			return nil
		},
	}
}
