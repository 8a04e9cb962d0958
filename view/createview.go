package view

import (
	"context"
	"fmt"
	"strings"
	"terminaldiary/database"
	"terminaldiary/images"
	"terminaldiary/meta"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	TITLEINPUT int = iota
	DATEINPUT
	CONTENTINPUT
	IMAGEINPUT
)

// Input rejected before anything reaches the store
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Checks the fields of a new entry, trimming title and content
func validateEntry(title, date, content string) (database.Entry, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" {
		return database.Entry{}, &ValidationError{Field: "Title", Reason: "must not be empty"}
	}

	if content == "" {
		return database.Entry{}, &ValidationError{Field: "Content", Reason: "must not be empty"}
	}

	parsedDate, err := database.ParseDate(date)
	if err != nil {
		return database.Entry{}, &ValidationError{Field: "Date", Reason: fmt.Sprintf("%q is not a valid dd/mm/yyyy date", date)}
	}

	return database.Entry{
		Title:   title,
		Date:    database.FormatDate(parsedDate),
		Content: content,
	}, nil
}

type CreateView struct {
	inputManager *inputManager

	attachment *images.Attachment

	state   *EntriesState
	colours meta.AppColours
}

func NewCreateView(state *EntriesState, colours meta.AppColours) *CreateView {
	const baseInputWidth = 40

	titleInput := newTextInput(baseInputWidth)

	dateInput := newTextInput(baseInputWidth)
	dateInput.model.Placeholder = database.DATE_FORMAT
	dateInput.setValue(database.FormatDate(state.SelectedDate))

	contentInput := newTextArea(baseInputWidth, colours)

	imageInput := &displayInput{placeholder: "None, attach one with `ga`"}

	inputs := []input{titleInput, dateInput, contentInput, imageInput}
	names := []string{"Title", "Date", "Content", "Image"}

	return &CreateView{
		inputManager: newInputManager(inputs, names),

		attachment: images.NewAttachment(state.Images),

		state:   state,
		colours: colours,
	}
}

func (cv *CreateView) Init() tea.Cmd {
	return nil
}

func (cv *CreateView) Update(message tea.Msg) (View, tea.Cmd) {
	switch message := message.(type) {
	case meta.CommitMsg:
		entry, err := validateEntry(
			cv.inputManager.value(TITLEINPUT),
			cv.inputManager.value(DATEINPUT),
			cv.inputManager.value(CONTENTINPUT),
		)
		if err != nil {
			return cv, meta.MessageCmd(err)
		}

		entry.AttachedImagePath = cv.attachment.ImagePath

		_, err = cv.state.Store.Insert(context.Background(), entry)
		if err != nil {
			return cv, meta.MessageCmd(fmt.Errorf("FAILED TO SAVE ENTRY: %w", err))
		}

		var cmds []tea.Cmd

		cmds = append(cmds, meta.MessageCmd(meta.NotificationMessageMsg{Message: fmt.Sprintf(
			"Successfully saved entry %q", entry.Title,
		)}))
		cmds = append(cmds, cv.clear())
		cmds = append(cmds, meta.MessageCmd(meta.DataChangedMsg{}))

		return cv, tea.Batch(cmds...)

	case meta.ClearInputsMsg:
		return cv, cv.clear()

	case meta.AttachImageMsg:
		return cv, images.SelectFileCmd()

	case meta.ImageSelectedMsg:
		err := cv.attachment.Attach(message.Path)
		if err != nil {
			return cv, meta.MessageCmd(fmt.Errorf("FAILED TO ATTACH IMAGE: %w", err))
		}

		cv.inputManager.setValue(IMAGEINPUT, cv.attachment.ImagePath)

		return cv, meta.MessageCmd(meta.NotificationMessageMsg{Message: "Attached image"})

	case meta.DateSelectedMsg:
		cv.inputManager.setValue(DATEINPUT, database.FormatDate(message.Date))

		return cv, nil

	// Left over from the list, before switching here
	case meta.NavigateMsg, meta.DataLoadedMsg:
		return cv, nil

	case tea.WindowSizeMsg, meta.SwitchFocusMsg, tea.KeyMsg:
		var cmd tea.Cmd
		cv.inputManager, cmd = cv.inputManager.Update(message)

		return cv, cmd

	default:
		panic(fmt.Sprintf("unexpected tea.Msg: %#v", message))
	}
}

func (cv *CreateView) View() string {
	var result strings.Builder

	titleStyle := lipgloss.NewStyle().Background(cv.colours.Background).Padding(0, 1)
	result.WriteString(titleStyle.Render("Write new entry"))

	result.WriteString("\n\n")

	result.WriteString(cv.inputManager.View(cv.colours.Foreground))

	return lipgloss.NewStyle().MarginLeft(2).Render(result.String())
}

func (cv *CreateView) AllowsInsertMode() bool {
	return true
}

func (cv *CreateView) AcceptedModels() map[meta.ModelType]struct{} {
	return map[meta.ModelType]struct{}{}
}

func (cv *CreateView) MotionSet() meta.MotionSet {
	var normalMotions meta.Trie[tea.Msg]

	normalMotions.Insert(meta.Motion{"g", "l"}, meta.SwitchViewMsg{ViewType: meta.LISTVIEWTYPE})

	normalMotions.Insert(meta.Motion{"g", "a"}, meta.AttachImageMsg{}) // [g]o [a]ttach
	normalMotions.Insert(meta.Motion{"g", "r"}, meta.ClearInputsMsg{}) // [g]o [r]eset

	normalMotions.Insert(meta.Motion{"tab"}, meta.SwitchFocusMsg{Direction: meta.NEXT})
	normalMotions.Insert(meta.Motion{"shift+tab"}, meta.SwitchFocusMsg{Direction: meta.PREVIOUS})

	return meta.MotionSet{Normal: normalMotions}
}

func (cv *CreateView) CommandSet() meta.CommandSet {
	var commands meta.Trie[tea.Msg]

	commands.Insert(meta.NewCommand("w"), meta.CommitMsg{})
	commands.Insert(meta.NewCommand("write"), meta.CommitMsg{})

	return meta.CommandSet(commands)
}

func (cv *CreateView) Reload() View {
	return NewCreateView(cv.state, cv.colours)
}

// Resets the form, keeping the date picked in the calendar
func (cv *CreateView) clear() tea.Cmd {
	cmd := cv.inputManager.reset()

	cv.inputManager.setValue(DATEINPUT, database.FormatDate(cv.state.SelectedDate))
	cv.attachment.Clear()

	return cmd
}
