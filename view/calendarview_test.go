package view

import (
	"terminaldiary/meta"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	// A Wednesday
	return time.Date(2024, time.July, 3, 15, 30, 0, 0, time.UTC)
}

func selectedDate(t *testing.T, cv *CalendarView, message any) time.Time {
	t.Helper()

	_, cmd := cv.Update(message)
	require.NotNil(t, cmd)

	selected, ok := cmd().(meta.DateSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, cv.Selected(), selected.Date)

	return selected.Date
}

func TestCalendarInit(t *testing.T) {
	cv := newCalendarViewAt(fixedNow, meta.CALENDARCOLOURS)

	message := cv.Init()()

	assert.Equal(t, meta.DateSelectedMsg{Date: time.Date(2024, time.July, 3, 0, 0, 0, 0, time.UTC)}, message)
}

func TestCalendarNavigation(t *testing.T) {
	cv := newCalendarViewAt(fixedNow, meta.CALENDARCOLOURS)

	assert.Equal(t, "04/07/2024", formatted(selectedDate(t, cv, meta.NavigateMsg{Direction: meta.RIGHT})))
	assert.Equal(t, "11/07/2024", formatted(selectedDate(t, cv, meta.NavigateMsg{Direction: meta.DOWN})))
	assert.Equal(t, "10/07/2024", formatted(selectedDate(t, cv, meta.NavigateMsg{Direction: meta.LEFT})))

	// Crossing into the previous month
	assert.Equal(t, "03/07/2024", formatted(selectedDate(t, cv, meta.NavigateMsg{Direction: meta.UP})))
	assert.Equal(t, "26/06/2024", formatted(selectedDate(t, cv, meta.NavigateMsg{Direction: meta.UP})))

	assert.Contains(t, cv.View(), "June 2024")
	assert.Contains(t, cv.View(), "Selected: 26/06/2024")
}

func TestCalendarJumpToDay(t *testing.T) {
	cv := newCalendarViewAt(fixedNow, meta.CALENDARCOLOURS)

	selectedDate(t, cv, meta.NavigateMsg{Direction: meta.DOWN})

	assert.Equal(t, "04/07/2024", formatted(selectedDate(t, cv, meta.JumpToDayMsg{DaysFromToday: 1})))
	assert.Equal(t, "03/07/2024", formatted(selectedDate(t, cv, meta.JumpToDayMsg{DaysFromToday: 0})))
}

func TestCalendarReload(t *testing.T) {
	cv := newCalendarViewAt(fixedNow, meta.CALENDARCOLOURS)

	selectedDate(t, cv, meta.NavigateMsg{Direction: meta.DOWN})

	reloaded := cv.Reload().(*CalendarView)
	assert.Equal(t, "03/07/2024", formatted(reloaded.Selected()))
}

func TestCalendarView(t *testing.T) {
	cv := newCalendarViewAt(fixedNow, meta.CALENDARCOLOURS)

	view := cv.View()

	assert.Contains(t, view, "July 2024")
	assert.Contains(t, view, "Mo  Tu  We  Th  Fr  Sa  Su")
	assert.Contains(t, view, "31")
	assert.NotContains(t, view, "32")
	assert.Contains(t, view, "Selected: 03/07/2024")
}

func formatted(date time.Time) string {
	return date.Format("02/01/2006")
}
