package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/justyntemme/maktabati-t/internal/content"
	"github.com/justyntemme/maktabati-t/internal/search"
)

func newSearchCommand() *cobra.Command {
	var jump bool

	command := &cobra.Command{
		Use:   "search <query...>",
		Short: "Find a page, surah or juz in the active book",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openReader()
			if err != nil {
				return err
			}
			defer r.close()

			w := cmd.OutOrStdout()
			setupColor(w)
			book, _ := r.store.Current()
			results := search.Query(book, strings.Join(args, " "))
			if len(results) == 0 {
				_, _ = mutedColor.Fprintln(w, "لا توجد نتائج")
				return nil
			}
			for _, res := range results {
				_, _ = labelColor.Fprintf(w, "%-6s", resultKind(res))
				fmt.Fprintf(w, " %s\n", res.Label())
			}
			if jump {
				if err := r.controller.Select(results[0]); err != nil {
					return err
				}
				fmt.Fprintln(w)
				printPosition(w, r)
			}
			return nil
		},
	}

	command.Flags().BoolVar(&jump, "go", false, "jump to the first result")
	return command
}

func resultKind(r search.Result) string {
	switch r.(type) {
	case search.PageResult:
		return "page"
	case search.SurahResult:
		return "surah"
	case search.JuzResult:
		return "juz"
	default:
		return ""
	}
}

func newIndexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Print the juz index of the Quran",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			setupColor(w)
			for _, j := range content.JuzIndex() {
				_, _ = headingColor.Fprintf(w, "%2d  %s", j.Number, j.Name)
				_, _ = mutedColor.Fprintf(w, "  %d-%d\n", j.StartPage, j.EndPage)
				for _, s := range j.Surahs {
					fmt.Fprintf(w, "      %3d  %-24s %d\n", s.Number, s.DisplayName(), s.StartPage)
				}
			}
			return nil
		},
	}
}
