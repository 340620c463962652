package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/datepicker/core"
)

// GridWidth is the width shared by the day, month and year grids.
const GridWidth = 28

// PickerWidth is the outer width of RenderPicker.
const PickerWidth = GridWidth + 4

// RenderGrid draws the snapshot cells in rows of s.Columns, preceded by the
// weekday header on the day grid. cursor indexes s.Cells; -1 hides it.
func RenderGrid(s core.Snapshot, cursor int) string {
	if s.Columns <= 0 || len(s.Cells) == 0 {
		return ""
	}
	w := GridWidth / s.Columns
	rows := make([]string, 0, len(s.Cells)/s.Columns+1)
	if len(s.Weekdays) > 0 {
		hdr := make([]string, len(s.Weekdays))
		for i, d := range s.Weekdays {
			hdr[i] = weekdayStyle.Width(w).Render(d)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, hdr...))
	}
	for start := 0; start < len(s.Cells); start += s.Columns {
		end := min(start+s.Columns, len(s.Cells))
		row := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			row = append(row, styleFor(s.Cells[i], i == cursor).Width(w).Render(s.Cells[i].Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func styleFor(c core.Cell, cursor bool) lipgloss.Style {
	switch {
	case cursor:
		return cellCursorStyle.Strikethrough(c.Disabled)
	case c.Selected:
		return cellSelectedStyle
	case c.Disabled:
		return cellDisabledStyle
	case c.Outside:
		return cellOutsideStyle
	}
	return cellStyle
}

// RenderPicker frames the grid with the snapshot title and navigation
// markers.
func RenderPicker(s core.Snapshot, cursor int, focused bool) string {
	return Pane{
		Title:    s.Title,
		Content:  RenderGrid(s, cursor),
		Previous: s.CanPrevious,
		Next:     s.CanNext,
		Focused:  focused,
	}.Render(PickerWidth)
}

// Hit is the part of a rendered picker under a position.
type Hit struct {
	// Cell indexes Snapshot.Cells, or is -1.
	Cell     int
	Title    bool
	Previous bool
	Next     bool
}

// PickerHit maps x, y, relative to the top-left corner of RenderPicker's
// output, to the part drawn there.
func PickerHit(s core.Snapshot, x, y int) Hit {
	h := Hit{Cell: -1}
	if y == 0 {
		inner := PickerWidth - 2
		titleW := ansi.StringWidth(fitTitle(s.Title, inner))
		// x of the space before the previous marker
		start := 1 + max(0, inner-titleW-6)/2
		switch {
		case x == start+1:
			h.Previous = true
		case x >= start+3 && x < start+3+titleW:
			h.Title = true
		case x == start+4+titleW:
			h.Next = true
		}
		return h
	}

	row, col := y-1, x-2
	if len(s.Weekdays) > 0 {
		row--
	}
	if s.Columns <= 0 || row < 0 || col < 0 || col >= GridWidth {
		return h
	}
	c := col / (GridWidth / s.Columns)
	if c >= s.Columns {
		return h
	}
	if i := row*s.Columns + c; i < len(s.Cells) {
		h.Cell = i
	}
	return h
}

// RenderField draws the input the picker is attached to.
func RenderField(label, value string, open bool) string {
	if value == "" {
		value = lipgloss.NewStyle().Foreground(colorOverlay).Render("no date")
	}
	arrow := "▾"
	if open {
		arrow = "▴"
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorOverlay).
		Padding(0, 1).
		Width(PickerWidth - 2)
	if open {
		box = box.BorderForeground(colorAccent)
	}
	labelStyle := lipgloss.NewStyle().Foreground(colorMuted)
	return lipgloss.JoinHorizontal(lipgloss.Center,
		labelStyle.Render(label+" "),
		box.Render(value+" "+arrow),
	)
}
