package view

import (
	"fmt"
	"strings"
	"terminaldiary/database"
	"terminaldiary/meta"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var weekdayHeaders = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Month grid to pick the date new entries get written for
type CalendarView struct {
	selected time.Time

	now func() time.Time

	colours meta.AppColours
}

func NewCalendarView(colours meta.AppColours) *CalendarView {
	return newCalendarViewAt(time.Now, colours)
}

func newCalendarViewAt(now func() time.Time, colours meta.AppColours) *CalendarView {
	return &CalendarView{
		selected: truncateToDay(now()),

		now: now,

		colours: colours,
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Broadcasts today's date, it being the default before anything gets picked
func (cv *CalendarView) Init() tea.Cmd {
	return cv.selectedCmd()
}

func (cv *CalendarView) Update(message tea.Msg) (View, tea.Cmd) {
	switch message := message.(type) {
	case meta.NavigateMsg:
		switch message.Direction {
		case meta.LEFT:
			cv.selected = cv.selected.AddDate(0, 0, -1)
		case meta.RIGHT:
			cv.selected = cv.selected.AddDate(0, 0, 1)
		case meta.UP:
			cv.selected = cv.selected.AddDate(0, 0, -7)
		case meta.DOWN:
			cv.selected = cv.selected.AddDate(0, 0, 7)
		default:
			panic(fmt.Sprintf("unexpected meta.Direction: %#v", message.Direction))
		}

		return cv, cv.selectedCmd()

	case meta.JumpToDayMsg:
		cv.selected = truncateToDay(cv.now()).AddDate(0, 0, message.DaysFromToday)

		return cv, cv.selectedCmd()

	case tea.WindowSizeMsg:
		return cv, nil

	default:
		panic(fmt.Sprintf("unexpected tea.Msg: %#v", message))
	}
}

func (cv *CalendarView) View() string {
	var result strings.Builder

	titleStyle := lipgloss.NewStyle().Background(cv.colours.Background).Padding(0, 1)
	result.WriteString(titleStyle.Render(cv.selected.Format("January 2006")))
	result.WriteString("\n\n")

	cellStyle := lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	selectedStyle := cellStyle.Foreground(cv.colours.Foreground).Bold(true).Reverse(true)
	todayStyle := cellStyle.Underline(true)

	for _, header := range weekdayHeaders {
		result.WriteString(cellStyle.Faint(true).Render(header))
	}
	result.WriteString("\n")

	firstOfMonth := time.Date(cv.selected.Year(), cv.selected.Month(), 1, 0, 0, 0, 0, cv.selected.Location())
	// Monday-first weeks
	offset := (int(firstOfMonth.Weekday()) + 6) % 7
	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()

	today := truncateToDay(cv.now())

	result.WriteString(strings.Repeat(cellStyle.Render(""), offset))

	for day := 1; day <= daysInMonth; day++ {
		date := firstOfMonth.AddDate(0, 0, day-1)

		style := cellStyle
		switch {
		case date.Equal(cv.selected):
			style = selectedStyle
		case date.Equal(today):
			style = todayStyle
		}

		result.WriteString(style.Render(fmt.Sprintf("%d", day)))

		if (offset+day)%7 == 0 {
			result.WriteString("\n")
		}
	}

	result.WriteString("\n\n")
	result.WriteString(fmt.Sprintf("Selected: %s", database.FormatDate(cv.selected)))

	return lipgloss.NewStyle().MarginLeft(2).Render(result.String())
}

func (cv *CalendarView) AllowsInsertMode() bool {
	return false
}

func (cv *CalendarView) AcceptedModels() map[meta.ModelType]struct{} {
	return map[meta.ModelType]struct{}{}
}

func (cv *CalendarView) MotionSet() meta.MotionSet {
	var normalMotions meta.Trie[tea.Msg]

	normalMotions.Insert(meta.Motion{"h"}, meta.NavigateMsg{Direction: meta.LEFT})
	normalMotions.Insert(meta.Motion{"j"}, meta.NavigateMsg{Direction: meta.DOWN})
	normalMotions.Insert(meta.Motion{"k"}, meta.NavigateMsg{Direction: meta.UP})
	normalMotions.Insert(meta.Motion{"l"}, meta.NavigateMsg{Direction: meta.RIGHT})

	normalMotions.Insert(meta.Motion{"t"}, meta.JumpToDayMsg{DaysFromToday: 0}) // [t]oday
	normalMotions.Insert(meta.Motion{"T"}, meta.JumpToDayMsg{DaysFromToday: 1}) // [T]omorrow

	entriesApp := meta.ENTRIESAPP
	normalMotions.Insert(meta.Motion{"g", "c"}, meta.SwitchViewMsg{App: &entriesApp, ViewType: meta.CREATEVIEWTYPE})

	return meta.MotionSet{Normal: normalMotions}
}

func (cv *CalendarView) CommandSet() meta.CommandSet {
	return meta.CommandSet{}
}

func (cv *CalendarView) Reload() View {
	return newCalendarViewAt(cv.now, cv.colours)
}

func (cv *CalendarView) Selected() time.Time {
	return cv.selected
}

func (cv *CalendarView) selectedCmd() tea.Cmd {
	return meta.MessageCmd(meta.DateSelectedMsg{Date: cv.selected})
}
