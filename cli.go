package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"terminaldiary/database"
	"terminaldiary/entrylist"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// Opens the configured database for a headless subcommand.
// The returned func closes both the database and the log file.
func openStore(cmd *cobra.Command) (*database.EntryStore, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	file, err := initSlog(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		file.Close()
		return nil, nil, err
	}

	closeAll := func() {
		db.Close()
		file.Close()
	}

	return database.NewEntryStore(db), closeAll, nil
}

func newListCommand() *cobra.Command {
	var search, sort string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print entries, optionally filtered by title and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := entrylist.ParseSortMode(sort)
			if err != nil {
				return err
			}

			store, closeAll, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closeAll()

			return listEntries(cmd.Context(), cmd.OutOrStdout(), store, search, mode)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "only show entries whose title contains this (case-insensitive)")
	cmd.Flags().StringVar(&sort, "sort", "none", "none, date (newest first) or title (Z to A)")

	return cmd
}

func listEntries(ctx context.Context, out io.Writer, store *database.EntryStore, search string, mode entrylist.SortMode) error {
	entries, err := store.SelectEntries(ctx)
	if err != nil {
		return err
	}

	controller := entrylist.New()
	controller.ReplaceAll(entries)

	err = controller.Search(search, mode)
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tDATE\tTITLE\tIMAGE")

	for _, entry := range controller.Visible() {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", entry.Id, entry.Date, entry.Title, entry.AttachedImagePath)
	}

	return writer.Flush()
}

func newClearCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to delete every entry without --yes")
			}

			store, closeAll, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closeAll()

			err = store.DeleteAllEntries(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Deleted all entries")

			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deleting every entry")

	return cmd
}
