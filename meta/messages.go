package meta

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Takes a message and builds a tea.Cmd that returns that message.
func MessageCmd(message tea.Msg) tea.Cmd {
	return func() tea.Msg { return message }
}

type FatalErrorMsg struct {
	Error error
}

type NotificationMessageMsg struct {
	Message string
}

type ClearNotificationMsg struct{}

// How long a notification or error stays in the status line
var NotificationDelay = time.Second * 3

func ClearNotificationAfterDelayCmd() tea.Msg {
	time.Sleep(NotificationDelay)

	return ClearNotificationMsg{}
}

type AppType string

const (
	CALENDARAPP AppType = "CALENDAR"
	ENTRIESAPP  AppType = "ENTRIES"
)

type ModelType string

const (
	ENTRYMODEL ModelType = "ENTRY"
)

type DataLoadedMsg struct {
	TargetApp AppType

	Model ModelType
	Data  any
}

// The set of stored entries changed, lists should be reloaded
type DataChangedMsg struct{}

// Every entry got deleted from the store
type EntriesClearedMsg struct{}

// A date got picked in the calendar
type DateSelectedMsg struct {
	Date time.Time
}

type NavigateMsg struct {
	Direction
}

type Direction string

const (
	UP    Direction = "UP"
	RIGHT Direction = "RIGHT"
	DOWN  Direction = "DOWN"
	LEFT  Direction = "LEFT"
)

// For the t and T motions in the calendar
type JumpToDayMsg struct {
	DaysFromToday int
}

type SwitchModeMsg struct {
	InputMode
	// vim treats search as command mode, so I am too
	// Data = false -> command, true -> search
	Data any
}

type Sequence string

const (
	PREVIOUS Sequence = "PREVIOUS"
	NEXT     Sequence = "NEXT"
)

type SwitchFocusMsg struct {
	Direction Sequence
}

type SwitchTabMsg struct {
	Direction Sequence
}

type CycleSortModeMsg struct {
	Direction Sequence
}

type ViewType string

const (
	LISTVIEWTYPE     ViewType = "LIST VIEW"
	DETAILVIEWTYPE   ViewType = "DETAIL VIEW"
	CREATEVIEWTYPE   ViewType = "CREATE VIEW"
	DELETEVIEWTYPE   ViewType = "DELETE VIEW"
	CALENDARVIEWTYPE ViewType = "CALENDAR VIEW"
)

// To switch to specific View (in specific App if provided)
type SwitchViewMsg struct {
	App      *AppType
	ViewType ViewType
	Data     any
}

type ReloadViewMsg struct{}

type ExecuteCommandMsg struct{}

type TryCompleteCommandMsg struct{}

// Leaving search mode without submitting
type ResetSearchMsg struct{}

// Search query changed while typing
type UpdateSearchMsg struct {
	Query string
}

// Search query submitted with enter
type SubmitSearchMsg struct {
	Query string
}

// For comitting the changes from a create/delete view to the database
type CommitMsg struct{}

// For resetting every input of a create view
type ClearInputsMsg struct{}

// Open the file dialog to pick an image to attach
type AttachImageMsg struct{}

type ImageSelectedMsg struct {
	Path string
}

type ShowDeleteAllModalMsg struct{}

type ShowTextModalMsg struct {
	Text string
}

type CloseModalMsg struct{}

// When inputting e.g. `j`, this gets captured as a motion,
// and gets propagated through Model.Update() calls as a Navigate message
// When passing the message back to a bubbletea model (i.e. not one I made but one from the bubbles package),
// it has to be converted back to a keyMsg.
func NavigateMessageToKeyMsg(message NavigateMsg) tea.KeyMsg {
	keyMsg := tea.KeyMsg{
		Type:  tea.KeyRunes,
		Alt:   false,
		Paste: false,
	}

	switch message.Direction {
	case DOWN:
		keyMsg.Runes = []rune{'j'}

	case UP:
		keyMsg.Runes = []rune{'k'}

	case LEFT:
		keyMsg.Runes = []rune{'h'}

	case RIGHT:
		keyMsg.Runes = []rune{'l'}
	}

	return keyMsg
}
