package main

import (
	"terminaldiary/meta"
	"terminaldiary/view"

	tea "github.com/charmbracelet/bubbletea"
)

// Only ever shows the calendar view
type CalendarApp struct {
	viewWidth, viewHeight int

	currentView view.View
}

func NewCalendarApp() meta.App {
	model := &CalendarApp{}

	model.currentView = view.NewCalendarView(model.Colours())

	return model
}

func (app *CalendarApp) Init() tea.Cmd {
	return app.currentView.Init()
}

func (app *CalendarApp) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		app.viewWidth = message.Width
		app.viewHeight = message.Height

	case meta.SwitchViewMsg:
		if message.ViewType != meta.CALENDARVIEWTYPE {
			panic("calendar app only has the calendar view")
		}

		return app, nil

	case meta.ImageSelectedMsg:
		return app, nil
	}

	newView, cmd := app.currentView.Update(message)
	app.currentView = newView

	return app, cmd
}

func (app *CalendarApp) View() string {
	style := meta.BodyStyle(app.viewWidth, app.viewHeight)

	return style.Render(app.currentView.View())
}

func (app *CalendarApp) Name() string {
	return "Calendar"
}

func (app *CalendarApp) Type() meta.AppType {
	return meta.CALENDARAPP
}

func (app *CalendarApp) Colours() meta.AppColours {
	return meta.CALENDARCOLOURS
}

func (app *CalendarApp) CurrentViewType() meta.ViewType {
	return meta.CALENDARVIEWTYPE
}

func (app *CalendarApp) CurrentViewAllowsInsertMode() bool {
	return app.currentView.AllowsInsertMode()
}

func (app *CalendarApp) CurrentMotionSet() meta.MotionSet {
	return app.currentView.MotionSet()
}

func (app *CalendarApp) CurrentCommandSet() meta.CommandSet {
	return app.currentView.CommandSet()
}

func (app *CalendarApp) AcceptedModels() map[meta.ModelType]struct{} {
	return map[meta.ModelType]struct{}{}
}

// Reloading jumps back to today
func (app *CalendarApp) ReloadView() tea.Cmd {
	app.currentView = app.currentView.Reload()

	return app.currentView.Init()
}
