package core

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jask/datepicker/internal/calendar"
)

// CellRef identifies the period a cell represents. Years are referenced by
// January 1 and months by their first day.
type CellRef struct {
	Granularity Granularity
	Date        calendar.Date
}

// Cell is one renderable unit of a snapshot.
type Cell struct {
	Label    string
	Ref      CellRef
	Disabled bool
	Selected bool
	// Outside marks grid days belonging to a neighbouring month.
	Outside bool
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Granularity Granularity
	Title       string
	Columns     int
	Cells       []Cell
	// Weekdays holds the column headers of the day grid.
	Weekdays    []string
	Selected    calendar.Date
	HasSelected bool
	CanPrevious bool
	CanNext     bool
	Open        bool
}

// Snapshot projects the current state into cells. It does not mutate the
// controller and returns equal values for equal states.
func (c *Controller) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	sel, hasSel := c.Selected()
	s := Snapshot{
		Granularity: c.view.Granularity(),
		Title:       c.Title(),
		Selected:    sel,
		HasSelected: hasSel,
		CanPrevious: c.CanPrevious(),
		CanNext:     c.CanNext(),
		Open:        c.open,
	}

	switch cur := c.view.(type) {
	case YearBlockView:
		s.Columns = 4
		s.Cells = make([]Cell, 0, calendar.YearsPerBlock)
		for _, y := range calendar.YearBlock(cur.Start) {
			d := calendar.MustDate(y, 1, 1)
			s.Cells = append(s.Cells, Cell{
				Label:    strconv.Itoa(y),
				Ref:      CellRef{Granularity: GranularityYearBlock, Date: d},
				Disabled: c.cons.YearForbidden(y),
				Selected: hasSel && sel.Year() == y,
			})
		}

	case MonthView:
		s.Columns = 3
		s.Cells = make([]Cell, 0, 12)
		for _, m := range calendar.Months() {
			d := calendar.MustDate(cur.Year, m, 1)
			s.Cells = append(s.Cells, Cell{
				Label:    calendar.MonthLabel(m),
				Ref:      CellRef{Granularity: GranularityMonth, Date: d},
				Disabled: c.cons.MonthForbidden(cur.Year, m),
				Selected: hasSel && sel.Year() == cur.Year && sel.Month() == m,
			})
		}

	case DayView:
		s.Columns = calendar.GridColumns
		s.Weekdays = WeekdayHeaders(c.weekStart)
		grid := calendar.MonthGrid(cur.Year, cur.Month, c.weekStart)
		s.Cells = make([]Cell, 0, len(grid))
		for _, gd := range grid {
			s.Cells = append(s.Cells, Cell{
				Label:    strconv.Itoa(gd.Date.Day()),
				Ref:      CellRef{Granularity: GranularityDay, Date: gd.Date},
				Disabled: !c.cons.IsAllowed(gd.Date),
				Selected: hasSel && sel.Equal(gd.Date),
				Outside:  gd.Outside,
			})
		}
	}
	return s
}

// Title is the dialog heading for the current view.
func (c *Controller) Title() string {
	switch cur := c.view.(type) {
	case YearBlockView:
		return fmt.Sprintf("%d - %d", cur.Start, cur.Start+calendar.YearsPerBlock-1)
	case MonthView:
		return strconv.Itoa(cur.Year)
	case DayView:
		return cur.Anchor().Format(c.titleLayout)
	}
	return ""
}

// WeekdayHeaders returns two letter weekday names starting at weekStart.
func WeekdayHeaders(weekStart time.Weekday) []string {
	days := calendar.Weekdays(weekStart)
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.String()[:2]
	}
	return out
}
