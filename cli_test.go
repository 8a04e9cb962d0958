package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"terminaldiary/database"
	"terminaldiary/entrylist"
	"terminaldiary/tat"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cliEntries = []database.Entry{
	{Title: "Beach day", Date: "01/07/2024", Content: "a", AttachedImagePath: "images/beach.jpg"},
	{Title: "Work", Date: "03/07/2024", Content: "b"},
	{Title: "beach cleanup", Date: "02/07/2024", Content: "c"},
}

// The titles in the order they got printed, skipping the header
func printedTitles(output string) []string {
	var result []string

	lines := strings.Split(strings.TrimSpace(output), "\n")
	for _, line := range lines[1:] {
		for _, entry := range cliEntries {
			if strings.Contains(line, entry.Title) {
				result = append(result, entry.Title)
			}
		}
	}

	return result
}

func TestListEntries(t *testing.T) {
	DB := tat.SetupTestEnv(t)
	store := database.NewEntryStore(DB)
	tat.InsertEntries(t, store, cliEntries...)

	tests := []struct {
		name   string
		search string
		mode   entrylist.SortMode
		want   []string
	}{
		{"everything", "", entrylist.SORTNONE, []string{"Beach day", "Work", "beach cleanup"}},
		{"by date", "", entrylist.SORTDATE, []string{"Work", "beach cleanup", "Beach day"}},
		{"by title", "", entrylist.SORTTITLEDESC, []string{"beach cleanup", "Work", "Beach day"}},
		{"search", "BEACH", entrylist.SORTNONE, []string{"Beach day", "beach cleanup"}},
		{"search by date", "beach", entrylist.SORTDATE, []string{"beach cleanup", "Beach day"}},
		{"no matches", "mountain", entrylist.SORTNONE, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			err := listEntries(context.Background(), &out, store, tt.search, tt.mode)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(out.String(), "ID"))
			assert.Equal(t, tt.want, printedTitles(out.String()))
		})
	}
}

func TestListEntriesShowsImage(t *testing.T) {
	DB := tat.SetupTestEnv(t)
	store := database.NewEntryStore(DB)
	tat.InsertEntries(t, store, cliEntries[0])

	var out bytes.Buffer
	require.NoError(t, listEntries(context.Background(), &out, store, "", entrylist.SORTNONE))

	assert.Contains(t, out.String(), "01/07/2024")
	assert.Contains(t, out.String(), "images/beach.jpg")
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestCommands(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "diary.db")
	logPath := filepath.Join(dir, "test.log")

	db, err := database.Connect(dbPath)
	require.NoError(t, err)
	tat.InsertEntries(t, database.NewEntryStore(db), cliEntries...)
	require.NoError(t, db.Close())

	output, err := runCommand(t, "list", "--database", dbPath, "--log-file", logPath, "--sort", "title")
	require.NoError(t, err)
	assert.Equal(t, []string{"beach cleanup", "Work", "Beach day"}, printedTitles(output))

	_, err = runCommand(t, "list", "--database", dbPath, "--log-file", logPath, "--sort", "alphabetical")
	assert.ErrorContains(t, err, `unknown sort mode "alphabetical"`)

	_, err = runCommand(t, "clear", "--database", dbPath, "--log-file", logPath)
	assert.EqualError(t, err, "refusing to delete every entry without --yes")

	output, err = runCommand(t, "clear", "--yes", "--database", dbPath, "--log-file", logPath)
	require.NoError(t, err)
	assert.Equal(t, "Deleted all entries\n", output)

	db, err = database.Connect(dbPath)
	require.NoError(t, err)
	defer db.Close()

	entries, err := database.NewEntryStore(db).SelectEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.FileExists(t, logPath)
}
