// Package modals shows a single view on top of the active app.
package modals

import (
	"terminaldiary/meta"
	"terminaldiary/view"

	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

type ModalManager struct {
	width, height int

	state *view.EntriesState

	// nil when no modal is shown
	Modal view.View
}

func NewModalManager(state *view.EntriesState) *ModalManager {
	return &ModalManager{state: state}
}

func (mm *ModalManager) Init() tea.Cmd {
	return nil
}

func (mm *ModalManager) Update(message tea.Msg) (*ModalManager, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		mm.width = message.Width
		mm.height = message.Height

		var cmd tea.Cmd
		if mm.Modal != nil {
			mm.Modal, cmd = mm.Modal.Update(message)
		}

		return mm, cmd

	case meta.ShowTextModalMsg:
		return mm, mm.show(NewTextModal(message.Text))

	case meta.ShowDeleteAllModalMsg:
		return mm, mm.show(view.NewDeleteAllView(mm.state))

	case meta.CloseModalMsg:
		mm.Modal = nil

		return mm, nil

	case meta.ReloadViewMsg:
		mm.Modal = mm.Modal.Reload()

		initCmd := mm.Modal.Init()

		var sizeCmd tea.Cmd
		mm.Modal, sizeCmd = mm.Modal.Update(tea.WindowSizeMsg{Width: mm.width, Height: mm.height})

		notificationCmd := meta.MessageCmd(meta.NotificationMessageMsg{Message: "Refreshed modal"})

		return mm, tea.Batch(initCmd, sizeCmd, notificationCmd)
	}

	var cmd tea.Cmd
	mm.Modal, cmd = mm.Modal.Update(message)

	return mm, cmd
}

func (mm *ModalManager) show(modal view.View) tea.Cmd {
	mm.Modal = modal

	initCmd := mm.Modal.Init()

	var sizeCmd tea.Cmd
	mm.Modal, sizeCmd = mm.Modal.Update(tea.WindowSizeMsg{
		Width:  mm.width,
		Height: mm.height,
	})

	return tea.Batch(initCmd, sizeCmd)
}

func (mm *ModalManager) IsOpen() bool {
	return mm.Modal != nil
}

// Renders the modal centered on top of background
func (mm *ModalManager) View(background string) string {
	if mm.Modal == nil {
		return background
	}

	return overlay.New(
		rendered(meta.ModalStyle.Render(mm.Modal.View())),
		rendered(background),
		overlay.Center,
		overlay.Center,
		0,
		0,
	).View()
}

func (mm *ModalManager) CurrentMotionSet() meta.MotionSet {
	return mm.Modal.MotionSet()
}

func (mm *ModalManager) CurrentCommandSet() meta.CommandSet {
	return mm.Modal.CommandSet()
}

// overlay wants tea.Models, this is just an already rendered string
type rendered string

func (r rendered) Init() tea.Cmd {
	return nil
}

func (r rendered) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return r, nil
}

func (r rendered) View() string {
	return string(r)
}
