package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/justyntemme/maktabati-t/internal/config"
)

func newConfigCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}
	command.AddCommand(newConfigShowCommand(), newConfigInitCommand())
	return command
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			w := cmd.OutOrStdout()
			setupColor(w)
			_, _ = mutedColor.Fprintf(w, "# %s\n", cfg.Path())

			settings := cfg.Settings()
			keys := make([]string, 0, len(settings))
			for k := range settings {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				_, _ = labelColor.Fprintf(w, "%-28s", k)
				fmt.Fprintf(w, " %v\n", settings[k])
			}
			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			setupColor(cmd.OutOrStdout())
			_, _ = okColor.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfg.Path())
			return nil
		},
	}
}
