package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/datepicker/internal/calendar"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

// DateSelectedMsg is emitted after the picker accepts a selection.
type DateSelectedMsg struct {
	Date        calendar.Date
	Granularity Granularity
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func SelectedCmd(d calendar.Date, g Granularity) tea.Cmd {
	return func() tea.Msg { return DateSelectedMsg{Date: d, Granularity: g} }
}
