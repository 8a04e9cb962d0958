// Package tat holds helpers for testing the diary's tea.Models.
package tat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"terminaldiary/database"
	"terminaldiary/meta"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func SetupTestEnv(t *testing.T) *sqlx.DB {
	t.Helper()

	slog.SetLogLoggerLevel(slog.LevelWarn)

	previousDelay := meta.NotificationDelay
	meta.NotificationDelay = 0
	t.Cleanup(func() { meta.NotificationDelay = previousDelay })

	// Ensure that each connection *within each test* uses the same in-memory database.
	id := fmt.Sprintf("%s-%s", strings.ReplaceAll(t.Name(), "/", "_"), time.Now().String())
	DB := sqlx.MustConnect("sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared", id))
	t.Cleanup(func() { DB.Close() })

	err := database.InitSchemas(DB)

	require.Nil(t, err)

	return DB
}

// Inserts the entries into the store, returning them with their assigned ids.
func InsertEntries(t *testing.T, store *database.EntryStore, entries ...database.Entry) []database.Entry {
	t.Helper()

	result := make([]database.Entry, len(entries))

	for i, entry := range entries {
		id, err := store.Insert(context.Background(), entry)
		require.NoError(t, err)

		entry.Id = id
		result[i] = entry
	}

	return result
}

func makeKeyMsg(input string) tea.KeyMsg {
	return tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune(input),
	}
}

// Drives a tea.Model synchronously, running every returned tea.Cmd
// and feeding the results back into the model like the runtime would.
type TestWrapper struct {
	model tea.Model

	lastCmdResults []tea.Msg
}

func NewTestWrapper(model tea.Model) *TestWrapper {
	return &TestWrapper{
		model: model,
	}
}

// Runs the model's Init, handling the resulting commands.
func (tw *TestWrapper) Init() *TestWrapper {
	tw.lastCmdResults = make([]tea.Msg, 0)

	tw.handleCmd(tw.model.Init())

	return tw
}

func (tw *TestWrapper) Send(messages ...tea.Msg) *TestWrapper {
	tw.lastCmdResults = make([]tea.Msg, 0)

	for _, message := range messages {
		var cmd tea.Cmd
		tw.model, cmd = tw.model.Update(message)

		tw.handleCmd(cmd)
	}

	return tw
}

func (tw *TestWrapper) SendText(input string) *TestWrapper {
	var messages []tea.Msg

	for _, char := range input {
		messages = append(messages, makeKeyMsg(string(char)))
	}

	tw.Send(messages...)

	return tw
}

// For keys that aren't runes, e.g. tea.KeyEnter or tea.KeyEsc
func (tw *TestWrapper) SendKey(keyType tea.KeyType) *TestWrapper {
	tw.Send(tea.KeyMsg{Type: keyType})

	return tw
}

// Types the command (without leading ':') in command mode and executes it
func (tw *TestWrapper) SendCommand(command string) *TestWrapper {
	tw.SendText(":" + command)
	tw.SendKey(tea.KeyEnter)

	return tw
}

// Simulate runtime handling cmds returned by an Update
func (tw *TestWrapper) handleCmd(cmd tea.Cmd) {
	var queue []tea.Cmd
	queue = append(queue, cmd)

	for len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]

		if cmd == nil {
			continue
		}

		switch message := cmd().(type) {
		case tea.BatchMsg:
			queue = append(queue, message...)

		case tea.QuitMsg:
			tw.lastCmdResults = append(tw.lastCmdResults, message)

		// Nil message, e.g. meta.MessageCmd(err) but err was nil
		case nil:
			continue

		default:
			tw.lastCmdResults = append(tw.lastCmdResults, message)
			tw.model, cmd = tw.model.Update(message)

			queue = append(queue, cmd)
		}
	}
}

// Every message that resulted from commands since the last Send
func (tw *TestWrapper) GetLastCmdResults() []tea.Msg {
	return tw.lastCmdResults
}

func (tw *TestWrapper) Model() tea.Model {
	return tw.model
}

func (tw *TestWrapper) AssertEqual(t *testing.T, actualGetter func(tea.Model) any, expected any) {
	t.Helper()

	assert.Equal(t, expected, actualGetter(tw.model))
}

func (tw *TestWrapper) AssertViewContains(t *testing.T, expected string) {
	t.Helper()

	assert.Contains(t, tw.model.View(), expected)
}

func (tw *TestWrapper) AssertViewNotContains(t *testing.T, expected string) {
	t.Helper()

	assert.NotContains(t, tw.model.View(), expected)
}

// Asserts that some message of type T resulted from the last Send, returning the first one
func AssertCmdResult[T tea.Msg](t *testing.T, tw *TestWrapper) T {
	t.Helper()

	for _, message := range tw.lastCmdResults {
		if result, ok := message.(T); ok {
			return result
		}
	}

	var null T
	assert.Failf(t, "message not found", "no %T in %#v", null, tw.lastCmdResults)

	return null
}
