package database

import (
	"context"
	"fmt"
	"strconv"
	"terminaldiary/meta"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jmoiron/sqlx"
)

type Entry struct {
	Id                int    `db:"id"`
	Title             string `db:"title"`
	Date              string `db:"date"`
	AttachedImagePath string `db:"attached_image_path"`
	Content           string `db:"content"`
}

func (e Entry) HasImage() bool {
	return e.AttachedImagePath != ""
}

func (e Entry) String() string {
	return e.Title + " (" + strconv.Itoa(e.Id) + ")"
}

type EntryStore struct {
	db *sqlx.DB
}

func NewEntryStore(db *sqlx.DB) *EntryStore {
	return &EntryStore{db: db}
}

// Inserts the entry as a new row, ignoring e.Id. Returns the id assigned by sqlite.
func (s *EntryStore) Insert(ctx context.Context, e Entry) (int, error) {
	result, err := s.db.NamedExecContext(
		ctx,
		`INSERT INTO diary_entries (title, date, attached_image_path, content)
		VALUES (:title, :date, :attached_image_path, :content);`,
		e)
	if err != nil {
		return 0, &StorageError{Op: "insert", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "insert", Err: err}
	}

	return int(id), nil
}

// All entries in insertion order.
func (s *EntryStore) SelectEntries(ctx context.Context) ([]Entry, error) {
	result := []Entry{}

	err := s.db.SelectContext(ctx, &result, `SELECT * FROM diary_entries ORDER BY id ASC;`)
	if err != nil {
		return nil, &StorageError{Op: "select", Err: err}
	}

	return result, nil
}

func (s *EntryStore) SelectEntry(ctx context.Context, id int) (Entry, error) {
	var result Entry

	err := s.db.GetContext(ctx, &result, `SELECT * FROM diary_entries WHERE id = $1;`, id)
	if err != nil {
		return Entry{}, &StorageError{Op: fmt.Sprintf("select %d", id), Err: err}
	}

	return result, nil
}

// Deleting an id that doesn't exist is not an error.
func (s *EntryStore) DeleteEntry(ctx context.Context, id int) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM diary_entries WHERE id = $1;`, id)
	if err != nil {
		return &StorageError{Op: fmt.Sprintf("delete %d", id), Err: err}
	}

	return nil
}

func (s *EntryStore) DeleteAllEntries(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM diary_entries;`)
	if err != nil {
		return &StorageError{Op: "delete all", Err: err}
	}

	return nil
}

func (s *EntryStore) MakeLoadEntriesCmd(targetApp meta.AppType) tea.Cmd {
	return func() tea.Msg {
		entries, err := s.SelectEntries(context.Background())
		if err != nil {
			return fmt.Errorf("FAILED TO LOAD ENTRIES: %w", err)
		}

		return meta.DataLoadedMsg{
			TargetApp: targetApp,
			Model:     meta.ENTRYMODEL,
			Data:      entries,
		}
	}
}

func (s *EntryStore) MakeLoadEntryDetailCmd(id int, targetApp meta.AppType) tea.Cmd {
	// Shoutout to closures
	return func() tea.Msg {
		entry, err := s.SelectEntry(context.Background(), id)
		if err != nil {
			return fmt.Errorf("FAILED TO LOAD ENTRY WITH ID %d: %w", id, err)
		}

		return meta.DataLoadedMsg{
			TargetApp: targetApp,
			Model:     meta.ENTRYMODEL,
			Data:      entry,
		}
	}
}
