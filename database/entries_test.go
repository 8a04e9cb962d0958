package database_test

import (
	"context"
	"errors"
	"terminaldiary/database"
	"terminaldiary/meta"
	tat "terminaldiary/tat"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaSetUp(t *testing.T) {
	DB := tat.SetupTestEnv(t)

	setUp, err := database.DatabaseTableIsSetUp(DB, "diary_entries")
	require.Nil(t, err)
	assert.True(t, setUp)

	// Running the migrations again is a no-op
	err = database.InitSchemas(DB)
	assert.NoError(t, err)
}

func TestInsertSelectEntry(t *testing.T) {
	DB := tat.SetupTestEnv(t)
	store := database.NewEntryStore(DB)
	ctx := context.Background()

	entries, err := store.SelectEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)

	input := database.Entry{Title: "A", Date: "01/01/2024", AttachedImagePath: "", Content: "hello"}

	id, err := store.Insert(ctx, input)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, id, 1)

	entries, err = store.SelectEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	input.Id = id
	assert.Equal(t, input, entries[0])

	entry, err := store.SelectEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, input, entry)
}

func TestInsertIgnoresId(t *testing.T) {
	DB := tat.SetupTestEnv(t)
	store := database.NewEntryStore(DB)

	first, err := store.Insert(context.Background(), database.Entry{Id: 42, Title: "first", Date: "01/01/2024", Content: "x"})
	require.NoError(t, err)

	second, err := store.Insert(context.Background(), database.Entry{Id: 42, Title: "second", Date: "01/01/2024", Content: "y"})
	require.NoError(t, err)

	assert.NotEqual(t, 42, first)
	assert.Greater(t, second, first)
}

func TestSelectEntriesInInsertionOrder(t *testing.T) {
	DB := tat.SetupTestEnv(t)
	store := database.NewEntryStore(DB)

	inserted := tat.InsertEntries(t, store,
		database.Entry{Title: "Zebra", Date: "05/05/2024", Content: "stripes"},
		database.Entry{Title: "Aardvark", Date: "01/01/2020", AttachedImagePath: "images/a.jpg", Content: "ants"},
		database.Entry{Title: "Moose", Date: "10/10/2022", Content: "antlers"},
	)

	entries, err := store.SelectEntries(context.Background())
	require.NoError(t, err)

	assert.Equal(t, inserted, entries)
}

func TestSelectMissingEntry(t *testing.T) {
	DB := tat.SetupTestEnv(t)
	store := database.NewEntryStore(DB)

	_, err := store.SelectEntry(context.Background(), 69)

	var storageErr *database.StorageError
	assert.ErrorAs(t, err, &storageErr)
}

func TestDeleteEntry(t *testing.T) {
	DB := tat.SetupTestEnv(t)
	store := database.NewEntryStore(DB)
	ctx := context.Background()

	inserted := tat.InsertEntries(t, store,
		database.Entry{Title: "keep", Date: "01/01/2024", Content: "a"},
		database.Entry{Title: "delete", Date: "02/01/2024", Content: "b"},
	)

	err := store.DeleteEntry(ctx, inserted[1].Id)
	require.NoError(t, err)

	entries, err := store.SelectEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, inserted[:1], entries)

	// Nothing to delete is not an error
	err = store.DeleteEntry(ctx, inserted[1].Id)
	assert.NoError(t, err)
}

func TestDeleteAllEntries(t *testing.T) {
	DB := tat.SetupTestEnv(t)
	store := database.NewEntryStore(DB)
	ctx := context.Background()

	tat.InsertEntries(t, store,
		database.Entry{Title: "one", Date: "01/01/2024", Content: "a"},
		database.Entry{Title: "two", Date: "02/01/2024", Content: "b"},
	)

	err := store.DeleteAllEntries(ctx)
	require.NoError(t, err)

	entries, err := store.SelectEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Clearing an empty store is fine too
	assert.NoError(t, store.DeleteAllEntries(ctx))
}

func TestStoreErrorsAfterClose(t *testing.T) {
	DB := tat.SetupTestEnv(t)
	store := database.NewEntryStore(DB)

	require.NoError(t, DB.Close())

	_, err := store.Insert(context.Background(), database.Entry{Title: "x", Date: "01/01/2024", Content: "y"})

	var storageErr *database.StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "insert", storageErr.Op)

	_, err = store.SelectEntries(context.Background())
	assert.ErrorAs(t, err, &storageErr)
}

func TestLoadEntriesCmd(t *testing.T) {
	DB := tat.SetupTestEnv(t)
	store := database.NewEntryStore(DB)

	inserted := tat.InsertEntries(t, store, database.Entry{Title: "x", Date: "01/01/2024", Content: "y"})

	message := store.MakeLoadEntriesCmd(meta.ENTRIESAPP)()

	expected := meta.DataLoadedMsg{
		TargetApp: meta.ENTRIESAPP,
		Model:     meta.ENTRYMODEL,
		Data:      inserted,
	}
	assert.Equal(t, expected, message)

	message = store.MakeLoadEntryDetailCmd(inserted[0].Id, meta.ENTRIESAPP)()
	expected.Data = inserted[0]
	assert.Equal(t, expected, message)

	message = store.MakeLoadEntryDetailCmd(1000, meta.ENTRIESAPP)()
	assert.Implements(t, (*error)(nil), message)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"15/03/2024", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{"1/2/2023", time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{" 01/01/2024 ", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, test := range tests {
		result, err := database.ParseDate(test.input)
		assert.NoError(t, err, test.input)
		assert.Equal(t, test.expected, result, test.input)
	}

	for _, input := range []string{"", "2024-03-15", "32/01/2024", "15/13/2024", "tomorrow"} {
		_, err := database.ParseDate(input)

		var parseErr *database.DateParseError
		assert.ErrorAs(t, err, &parseErr, input)
	}

	assert.Equal(t, "05/11/2024", database.FormatDate(time.Date(2024, time.November, 5, 12, 0, 0, 0, time.Local)))
}
