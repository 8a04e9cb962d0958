package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"terminaldiary/database"
	"terminaldiary/images"
	"terminaldiary/meta"
	"terminaldiary/modals"
	"terminaldiary/view"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jmoiron/sqlx"
)

type terminaldiary struct {
	viewWidth, viewHeight int

	appManager   *appManager
	entriesState *view.EntriesState

	modalManager *modals.ModalManager

	inputMode              meta.InputMode
	currentCommandIsSearch bool
	commandInput           textinput.Model

	currentMotion meta.Motion
	keymap        *meta.Keymap

	notificationMessage string
	displayedError      error
	fatalError          error
}

func newTerminaldiary(db *sqlx.DB, imageStore *images.Store) *terminaldiary {
	commandInput := textinput.New()
	commandInput.Cursor.SetMode(cursor.CursorStatic)
	commandInput.Prompt = ":"

	entriesState := view.NewEntriesState(database.NewEntryStore(db), imageStore)

	return &terminaldiary{
		appManager:   newAppManager(entriesState),
		entriesState: entriesState,
		modalManager: modals.NewModalManager(entriesState),

		inputMode:    meta.NORMALMODE,
		commandInput: commandInput,

		currentMotion: make(meta.Motion, 0),
		keymap:        meta.NewKeymap(),
	}
}

func (m *terminaldiary) Init() tea.Cmd {
	cmd := m.appManager.Init()

	slog.Info("Initialised")

	return cmd
}

func (m *terminaldiary) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.QuitMsg:
		return m, tea.Quit

	case error:
		slog.Debug("Error", "error", message)
		m.displayedError = message
		m.notificationMessage = ""
		return m, meta.ClearNotificationAfterDelayCmd

	case meta.NotificationMessageMsg:
		m.notificationMessage = message.Message
		m.displayedError = nil
		return m, meta.ClearNotificationAfterDelayCmd

	case meta.ClearNotificationMsg:
		m.displayedError = nil
		m.notificationMessage = ""
		return m, nil

	case meta.FatalErrorMsg:
		slog.Error("Fatal error", "error", message.Error)
		m.fatalError = message.Error
		return m, tea.Quit

	// A motion that resolves to a command rather than a message
	case tea.Cmd:
		return m, message

	case tea.WindowSizeMsg:
		m.viewWidth = message.Width
		m.viewHeight = message.Height

		// -1 for the status line
		sizeMsg := tea.WindowSizeMsg{
			Width:  message.Width,
			Height: message.Height - 1,
		}

		var modalCmd tea.Cmd
		m.modalManager, modalCmd = m.modalManager.Update(sizeMsg)

		_, appsCmd := m.updateApps(sizeMsg)

		return m, tea.Batch(modalCmd, appsCmd)

	case tea.KeyMsg:
		return m.handleKeyMsg(message)

	case meta.SwitchModeMsg:
		return m.switchMode(message)

	case meta.ExecuteCommandMsg:
		if m.currentCommandIsSearch {
			query := m.commandInput.Value()

			// Submitting is not resetting
			m.currentCommandIsSearch = false
			m.switchMode(meta.SwitchModeMsg{InputMode: meta.NORMALMODE})

			return m, meta.MessageCmd(meta.SubmitSearchMsg{Query: query})
		}

		return m.executeCommand(m.commandInput.Value())

	case meta.TryCompleteCommandMsg:
		if m.currentCommandIsSearch {
			return m, nil
		}

		m.refreshKeymap()

		completion := m.keymap.CompleteCommand(meta.NewCommand(m.commandInput.Value()))
		if completion != nil {
			m.commandInput.SetValue(strings.Join(completion, ""))
			m.commandInput.CursorEnd()
		}

		return m, nil

	case meta.ShowDeleteAllModalMsg, meta.ShowTextModalMsg, meta.CloseModalMsg:
		var cmd tea.Cmd
		m.modalManager, cmd = m.modalManager.Update(message)

		return m, cmd

	case meta.CommitMsg, meta.ReloadViewMsg:
		if m.modalManager.IsOpen() {
			var cmd tea.Cmd
			m.modalManager, cmd = m.modalManager.Update(message)

			return m, cmd
		}
	}

	return m.updateApps(message)
}

func (m *terminaldiary) View() string {
	body := m.modalManager.View(m.appManager.View())

	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusLineView())
}

func (m *terminaldiary) statusLineView() string {
	var result strings.Builder

	var leftWidth int

	switch m.inputMode {
	case meta.NORMALMODE:
		modeStyle := lipgloss.NewStyle().Background(lipgloss.Color("10")).Padding(0, 1)
		mode := modeStyle.Render("NORMAL")
		result.WriteString(mode)
		leftWidth = lipgloss.Width(mode)

	case meta.INSERTMODE:
		modeStyle := lipgloss.NewStyle().Background(lipgloss.Color("12")).Padding(0, 1)
		mode := modeStyle.Render("INSERT")
		result.WriteString(mode)
		leftWidth = lipgloss.Width(mode)

	case meta.COMMANDMODE:
		command := meta.CommandStyle.Render(m.commandInput.View())
		result.WriteString(command)
		leftWidth = lipgloss.Width(command)

	default:
		panic(fmt.Sprintf("unexpected meta.InputMode: %#v", m.inputMode))
	}

	var message string
	style := meta.StatusLineStyle
	switch {
	case m.displayedError != nil:
		message = " " + m.displayedError.Error()
		style = meta.StatusLineErrorStyle

	case m.notificationMessage != "":
		message = " " + m.notificationMessage
	}

	motion := m.currentMotion.View()

	// This has to be clamped because on initial render viewWidth is 0
	fill := max(m.viewWidth-leftWidth-lipgloss.Width(message)-lipgloss.Width(motion), 1)

	result.WriteString(style.Render(message))
	result.WriteString(meta.StatusLineStyle.Render(strings.Repeat(" ", fill)))
	result.WriteString(meta.StatusLineStyle.Render(motion))

	return result.String()
}

func (m *terminaldiary) handleKeyMsg(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c to reset the current motion can't be handled as a motion itself,
	// because then for instance ["g", "ctrl+c"] would be recognised as an invalid motion
	if m.inputMode == meta.NORMALMODE && message.Type == tea.KeyCtrlC {
		m.resetCurrentMotion()

		return m, nil
	}

	m.refreshKeymap()

	m.currentMotion = append(m.currentMotion, message.String())

	if !m.keymap.IsMotionPrefix(m.inputMode, m.currentMotion) {
		switch m.inputMode {
		case meta.NORMALMODE:
			cmd := meta.MessageCmd(fmt.Errorf("invalid motion: %s", m.currentMotion.View()))

			m.resetCurrentMotion()

			return m, cmd

		// In INSERT and COMMAND mode, a key stroke that isn't a motion gets sent to the appropriate input
		case meta.INSERTMODE:
			m.resetCurrentMotion()

			return m.updateApps(message)

		case meta.COMMANDMODE:
			var cmd tea.Cmd
			m.commandInput, cmd = m.commandInput.Update(message)

			m.resetCurrentMotion()

			if m.currentCommandIsSearch {
				return m, tea.Batch(cmd, meta.MessageCmd(meta.UpdateSearchMsg{Query: m.commandInput.Value()}))
			}

			return m, cmd

		default:
			panic(fmt.Sprintf("unexpected meta.InputMode: %#v", m.inputMode))
		}
	}

	completedMotionMsg, ok := m.keymap.Motion(m.inputMode, m.currentMotion)
	if !ok {
		// The currentMotion is the start of an existing motion, wait for more inputs
		return m, nil
	}

	m.resetCurrentMotion()

	return m.Update(completedMotionMsg)
}

// The view-specific motions and commands come from the modal if one is shown,
// otherwise from the view of the active app
func (m *terminaldiary) refreshKeymap() {
	if m.modalManager.IsOpen() {
		m.keymap.SetView(m.modalManager.CurrentMotionSet(), m.modalManager.CurrentCommandSet())
		return
	}

	m.keymap.SetView(m.appManager.CurrentMotionSet(), m.appManager.CurrentCommandSet())
}

func (m *terminaldiary) updateApps(message tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.appManager, cmd = m.appManager.Update(message)

	return m, cmd
}

func (m *terminaldiary) resetCurrentMotion() {
	m.currentMotion = m.currentMotion[:0]
}

func (m *terminaldiary) switchMode(message meta.SwitchModeMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch message.InputMode {
	case meta.INSERTMODE:
		allowed := !m.modalManager.IsOpen() && m.appManager.ActiveApp().CurrentViewAllowsInsertMode()
		if !allowed {
			return m, meta.MessageCmd(errors.New("current view doesn't allow insert mode"))
		}

	case meta.COMMANDMODE:
		isSearch, _ := message.Data.(bool)
		m.currentCommandIsSearch = isSearch

		if isSearch {
			m.commandInput.Prompt = "/"
		} else {
			m.commandInput.Prompt = ":"
		}

		cmd = m.commandInput.Focus()
	}

	if m.inputMode == meta.COMMANDMODE && message.InputMode != meta.COMMANDMODE {
		// Leaving search without submitting it
		if m.currentCommandIsSearch {
			cmd = meta.MessageCmd(meta.ResetSearchMsg{})
		}

		m.currentCommandIsSearch = false
		m.commandInput.Reset()
		m.commandInput.Blur()
	}

	m.inputMode = message.InputMode

	return m, cmd
}

func (m *terminaldiary) executeCommand(command string) (tea.Model, tea.Cmd) {
	m.refreshKeymap()

	commandMsg, ok := m.keymap.Command(meta.NewCommand(command))

	m.switchMode(meta.SwitchModeMsg{InputMode: meta.NORMALMODE})

	if !ok {
		return m, meta.MessageCmd(fmt.Errorf("invalid command: %v", command))
	}

	return m.Update(commandMsg)
}
