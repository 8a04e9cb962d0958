package main

import (
	"fmt"
	"log/slog"
	"strings"
	"terminaldiary/meta"
	"terminaldiary/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Owns the apps shown as tabs, in tab order
type appManager struct {
	width, height int

	apps   []meta.App
	active int
}

func newAppManager(entriesState *view.EntriesState) *appManager {
	return &appManager{
		apps: []meta.App{
			NewCalendarApp(),
			NewEntriesApp(entriesState),
		},
	}
}

func (am *appManager) Init() tea.Cmd {
	cmds := make([]tea.Cmd, len(am.apps))
	for i, app := range am.apps {
		cmds[i] = app.Init()
	}

	slog.Info("Initialising apps", "count", len(am.apps))

	return tea.Batch(cmds...)
}

func (am *appManager) Update(message tea.Msg) (*appManager, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		am.width = message.Width
		am.height = message.Height

		return am, am.resizeApps()

	case meta.DataLoadedMsg:
		app := am.app(message.TargetApp)

		if _, ok := app.AcceptedModels()[message.Model]; !ok {
			panic(fmt.Sprintf("Mismatch between target app %q and loaded model:\n%#v", app.Name(), message))
		}

		return am, am.updateApp(message.TargetApp, message)

	// Picked in the calendar or the file dialog, used by the entries app
	case meta.DateSelectedMsg, meta.ImageSelectedMsg, meta.DataChangedMsg, meta.EntriesClearedMsg:
		return am, am.updateApp(meta.ENTRIESAPP, message)

	case meta.SwitchTabMsg:
		switch message.Direction {
		case meta.PREVIOUS:
			am.cycleTab(-1)

		case meta.NEXT:
			am.cycleTab(1)

		default:
			panic(fmt.Sprintf("unexpected meta.Sequence: %#v", message.Direction))
		}

		return am, nil

	case meta.SwitchViewMsg:
		if message.App != nil {
			am.active = am.indexOf(*message.App)
		}

		updateCmd := am.updateApp(am.ActiveApp().Type(), message)

		return am, tea.Batch(updateCmd, am.resizeApps())

	case meta.ReloadViewMsg:
		reloadCmd := am.ActiveApp().ReloadView()
		notificationCmd := meta.MessageCmd(meta.NotificationMessageMsg{Message: "Refreshed view"})

		return am, tea.Batch(reloadCmd, am.resizeApps(), notificationCmd)
	}

	return am, am.updateApp(am.ActiveApp().Type(), message)
}

func (am *appManager) View() string {
	accent := am.ActiveApp().Colours().Foreground

	tabs := make([]string, 0, len(am.apps)+1)
	for i, app := range am.apps {
		tabs = append(tabs, meta.TabStyle(accent, i == am.active).Render(app.Name()))
	}

	// Underline the rest of the row, +2 for the borders of each tab
	if fill := am.width - len(am.apps)*(meta.TABWIDTH+2); fill >= 0 {
		style := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(accent)
		tabs = append(tabs, style.Render(strings.Repeat(" ", fill)))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...),
		am.ActiveApp().View(),
	)
}

func (am *appManager) ActiveApp() meta.App {
	return am.apps[am.active]
}

func (am *appManager) CurrentMotionSet() meta.MotionSet {
	return am.ActiveApp().CurrentMotionSet()
}

func (am *appManager) CurrentCommandSet() meta.CommandSet {
	return am.ActiveApp().CurrentCommandSet()
}

func (am *appManager) app(appType meta.AppType) meta.App {
	return am.apps[am.indexOf(appType)]
}

func (am *appManager) indexOf(appType meta.AppType) int {
	for i, app := range am.apps {
		if app.Type() == appType {
			return i
		}
	}

	panic(fmt.Sprintf("no app of type %q", appType))
}

func (am *appManager) updateApp(appType meta.AppType, message tea.Msg) tea.Cmd {
	i := am.indexOf(appType)

	newApp, cmd := am.apps[i].Update(message)
	am.apps[i] = newApp.(meta.App)

	return cmd
}

// Each app gets the full width, and the height minus the tab row
func (am *appManager) resizeApps() tea.Cmd {
	// -3 for the tabs and their borders
	sizeMsg := tea.WindowSizeMsg{Width: am.width, Height: am.height - 3}

	cmds := make([]tea.Cmd, len(am.apps))
	for i, app := range am.apps {
		newApp, cmd := app.Update(sizeMsg)
		am.apps[i] = newApp.(meta.App)
		cmds[i] = cmd
	}

	return tea.Batch(cmds...)
}

// Wraps around at either end
func (am *appManager) cycleTab(step int) {
	am.active = (am.active + step + len(am.apps)) % len(am.apps)
}
