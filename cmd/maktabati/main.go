package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/justyntemme/maktabati-t/internal/di"
	"github.com/justyntemme/maktabati-t/internal/ui"
	"github.com/justyntemme/maktabati-t/internal/ui/styles"
	"github.com/justyntemme/maktabati-t/internal/ui/terminal"
	"github.com/justyntemme/maktabati-t/internal/ui/views"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "Error: %v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "maktabati",
		Short:         "Terminal reader for the Quran and Thoughts page books",
		Long:          "maktabati opens the last page you read. Pages turn right to left.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debugMode {
				return os.Setenv("MAKTABATI_LOG_LEVEL", "debug")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path (default ~/.config/maktabati/config.yaml)")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "log at debug level")

	rootCommand.AddCommand(
		newStatusCommand(),
		newGotoCommand(),
		newNextCommand(),
		newPrevCommand(),
		newBookCommand(),
		newBookmarkCommand(),
		newBookmarksCommand(),
		newNoteCommand(),
		newSearchCommand(),
		newIndexCommand(),
		newExportCommand(),
		newImportCommand(),
		newPrefetchCommand(),
		newConfigCommand(),
	)
	return rootCommand
}

// runTUI starts the full-screen reader.
func runTUI() error {
	r, err := openReader()
	if err != nil {
		return err
	}
	defer r.close()

	loader, err := di.Loader(r.injector)
	if err != nil {
		return err
	}

	styles.SetCurrentTheme(r.cfg.UI.Theme)
	session := &views.Session{
		Controller: r.controller,
		Store:      r.store,
		Index:      r.index,
		Images:     loader,
		Term:       terminal.DetectTerminalMode(),
		Cell:       terminal.CellSize{Width: r.cfg.Layout.CellWidth, Height: r.cfg.Layout.CellHeight},
		Pointer:    r.cfg.Pointer(),
		Gestures:   r.cfg.GestureConfig(),
	}
	r.log.Info("starting reader", "terminal", session.Term.String())

	p := tea.NewProgram(ui.NewApp(session), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
