package main

import (
	"fmt"
	"log/slog"
	"terminaldiary/meta"
	"terminaldiary/view"

	tea "github.com/charmbracelet/bubbletea"
)

type EntriesApp struct {
	viewWidth, viewHeight int

	state *view.EntriesState

	currentView view.View
}

func NewEntriesApp(state *view.EntriesState) meta.App {
	model := &EntriesApp{
		state: state,
	}

	model.currentView = view.NewListView(state, model.Colours())

	return model
}

func (app *EntriesApp) Init() tea.Cmd {
	return app.currentView.Init()
}

func (app *EntriesApp) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		app.viewWidth = message.Width
		app.viewHeight = message.Height

		newView, cmd := app.currentView.Update(message)
		app.currentView = newView

		return app, cmd

	case meta.DateSelectedMsg:
		app.state.SelectedDate = message.Date

		if app.CurrentViewType() != meta.CREATEVIEWTYPE {
			return app, nil
		}

	// The file dialog runs in the background, the user may have left the form since
	case meta.ImageSelectedMsg:
		if app.CurrentViewType() != meta.CREATEVIEWTYPE {
			slog.Warn("Dropped selected image, no entry is being written", "path", message.Path)
			return app, nil
		}

	case meta.DataChangedMsg:
		// Other views load the entries themselves on switching to the list
		if app.CurrentViewType() != meta.LISTVIEWTYPE {
			return app, nil
		}

		return app, app.currentView.Init()

	case meta.EntriesClearedMsg:
		if app.CurrentViewType() != meta.LISTVIEWTYPE {
			return app, nil
		}

	case meta.SwitchViewMsg:
		if message.App != nil && *message.App != meta.ENTRIESAPP {
			panic("wrong app type, something went wrong")
		}

		switch message.ViewType {
		case meta.LISTVIEWTYPE:
			app.currentView = view.NewListView(app.state, app.Colours())

		case meta.DETAILVIEWTYPE:
			entryId := message.Data.(int)

			app.currentView = view.NewDetailView(app.state, entryId, app.Colours())

		case meta.CREATEVIEWTYPE:
			app.currentView = view.NewCreateView(app.state, app.Colours())

		case meta.DELETEVIEWTYPE:
			index := message.Data.(int)

			app.currentView = view.NewDeleteView(app.state, index, app.Colours())

		default:
			panic(fmt.Sprintf("unexpected meta.ViewType: %#v", message.ViewType))
		}

		return app, app.currentView.Init()
	}

	newView, cmd := app.currentView.Update(message)
	app.currentView = newView

	return app, cmd
}

func (app *EntriesApp) View() string {
	style := meta.BodyStyle(app.viewWidth, app.viewHeight)

	return style.Render(app.currentView.View())
}

func (app *EntriesApp) Name() string {
	return "Entries"
}

func (app *EntriesApp) Type() meta.AppType {
	return meta.ENTRIESAPP
}

func (app *EntriesApp) Colours() meta.AppColours {
	return meta.ENTRIESCOLOURS
}

func (app *EntriesApp) CurrentViewType() meta.ViewType {
	switch app.currentView.(type) {
	case *view.ListView:
		return meta.LISTVIEWTYPE

	case *view.DetailView:
		return meta.DETAILVIEWTYPE

	case *view.CreateView:
		return meta.CREATEVIEWTYPE

	case *view.DeleteView:
		return meta.DELETEVIEWTYPE

	default:
		panic(fmt.Sprintf("unexpected view.View: %#v", app.currentView))
	}
}

func (app *EntriesApp) CurrentViewAllowsInsertMode() bool {
	return app.currentView.AllowsInsertMode()
}

func (app *EntriesApp) CurrentMotionSet() meta.MotionSet {
	return app.currentView.MotionSet()
}

func (app *EntriesApp) CurrentCommandSet() meta.CommandSet {
	return app.currentView.CommandSet()
}

func (app *EntriesApp) AcceptedModels() map[meta.ModelType]struct{} {
	return map[meta.ModelType]struct{}{
		meta.ENTRYMODEL: {},
	}
}

func (app *EntriesApp) ReloadView() tea.Cmd {
	app.currentView = app.currentView.Reload()

	return app.currentView.Init()
}
