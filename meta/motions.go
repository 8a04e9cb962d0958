package meta

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type InputMode string

const (
	NORMALMODE  InputMode = "NORMAL"
	INSERTMODE  InputMode = "INSERT"
	COMMANDMODE InputMode = "COMMAND"
)

// The key strokes making up a motion, as reported by tea.KeyMsg.String()
type Motion []string

var strokeLabels = map[string]string{
	" ":         "<space>",
	"backspace": "<bs>",
	"enter":     "<enter>",
	"esc":       "<esc>",
	"tab":       "<tab>",
}

// Renders the motion for the status line
func (m Motion) View() string {
	var result strings.Builder

	for _, stroke := range m {
		if label, ok := strokeLabels[stroke]; ok {
			result.WriteString(label)
		} else {
			result.WriteString(stroke)
		}
	}

	return result.String()
}

// The motions bound in each input mode
type MotionSet struct {
	Normal  Trie[tea.Msg]
	Insert  Trie[tea.Msg]
	Command Trie[tea.Msg]
}

func (ms *MotionSet) forMode(mode InputMode) *Trie[tea.Msg] {
	switch mode {
	case NORMALMODE:
		return &ms.Normal

	case INSERTMODE:
		return &ms.Insert

	case COMMANDMODE:
		return &ms.Command

	default:
		panic(fmt.Sprintf("unexpected meta.InputMode: %#v", mode))
	}
}

type binding struct {
	mode   InputMode
	motion Motion
	msg    tea.Msg
}

// Available in every view, unless the view binds the same motion itself
var globalBindings = []binding{
	{NORMALMODE, Motion{"i"}, SwitchModeMsg{InputMode: INSERTMODE}},
	{NORMALMODE, Motion{":"}, SwitchModeMsg{InputMode: COMMANDMODE}},
	{NORMALMODE, Motion{"g", "t"}, SwitchTabMsg{Direction: NEXT}},
	{NORMALMODE, Motion{"g", "T"}, SwitchTabMsg{Direction: PREVIOUS}},

	{INSERTMODE, Motion{"esc"}, SwitchModeMsg{InputMode: NORMALMODE}},
	{INSERTMODE, Motion{"ctrl+c"}, SwitchModeMsg{InputMode: NORMALMODE}},
	{INSERTMODE, Motion{"tab"}, SwitchFocusMsg{Direction: NEXT}},
	{INSERTMODE, Motion{"shift+tab"}, SwitchFocusMsg{Direction: PREVIOUS}},

	{COMMANDMODE, Motion{"enter"}, ExecuteCommandMsg{}},
	{COMMANDMODE, Motion{"tab"}, TryCompleteCommandMsg{}},
	{COMMANDMODE, Motion{"esc"}, SwitchModeMsg{InputMode: NORMALMODE}},
	{COMMANDMODE, Motion{"ctrl+c"}, SwitchModeMsg{InputMode: NORMALMODE}},
}

func GlobalMotions() MotionSet {
	var result MotionSet

	for _, b := range globalBindings {
		result.forMode(b.mode).Insert(b.motion, b.msg)
	}

	return result
}
