package main

import (
	"fmt"
	"log/slog"
	"os"
	"terminaldiary/database"
	"terminaldiary/images"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "terminaldiary",
		Short: "A diary in your terminal",
		Long: "Pick a date in the calendar, write an entry with an optional photo attached, " +
			"and browse, search and sort your entries.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return runTUI(cfg)
		},
	}

	addConfigFlags(rootCmd)

	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newClearCommand())

	return rootCmd
}

func runTUI(cfg config) error {
	file, err := initSlog(cfg)
	if err != nil {
		return fmt.Errorf("couldn't create logger: %w", err)
	}
	defer file.Close()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		slog.Error("Couldn't connect to database", "error", err)
		return err
	}
	defer db.Close()

	m := newTerminaldiary(db, images.NewStore(cfg.Images))

	finalModel, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		slog.Error("Bubbletea error", "error", err)
		return fmt.Errorf("bubbletea error: %w", err)
	}

	err = finalModel.(*terminaldiary).fatalError
	if err != nil {
		return fmt.Errorf("program exited with fatal error: %w", err)
	}

	slog.Info("Exited gracefully")

	return nil
}
