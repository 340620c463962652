package core

import (
	"time"

	"github.com/jask/datepicker/internal/calendar"
	"github.com/jask/datepicker/internal/constraints"
)

// ClickAction describes what a gesture did.
type ClickAction int

const (
	// ClickIgnored means the gesture did not apply to the current view.
	ClickIgnored ClickAction = iota
	ClickNavigated
	ClickSelected
	// ClickRejected means the gesture would have selected a forbidden period.
	ClickRejected
)

func (a ClickAction) String() string {
	switch a {
	case ClickNavigated:
		return "navigated"
	case ClickSelected:
		return "selected"
	case ClickRejected:
		return "rejected"
	default:
		return "ignored"
	}
}

type ClickResult struct {
	Action ClickAction
	// Date is the selected date, or the refused candidate for ClickRejected.
	Date calendar.Date
}

// Controller owns one picker's view and selection. It is not safe for
// concurrent use; hosts serialize gestures.
type Controller struct {
	cons          constraints.Constraints
	selectionType Granularity
	weekStart     time.Weekday
	titleLayout   string

	view     View
	month    time.Month
	selected calendar.Date
	open     bool
}

// New validates cfg and builds a controller showing the period that
// contains the starting date at the starting granularity.
func New(cfg Config) (*Controller, error) {
	cons, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	layout := cfg.MonthTitleLayout
	if layout == "" {
		layout = DefaultMonthTitleLayout
	}
	start := cfg.startingDate()
	c := &Controller{
		cons:          cons,
		selectionType: cfg.SelectionType,
		weekStart:     cfg.WeekStart,
		titleLayout:   layout,
		view:          viewFor(cfg.StartingGranularity(), start),
		month:         start.Month(),
		open:          cfg.InitiallyOpen,
	}
	if cfg.InitialSelected != nil {
		c.selected = *cfg.InitialSelected
	}
	return c, nil
}

func (c *Controller) View() View                 { return c.view }
func (c *Controller) Granularity() Granularity   { return c.view.Granularity() }
func (c *Controller) SelectionType() Granularity { return c.selectionType }
func (c *Controller) WeekStart() time.Weekday    { return c.weekStart }

// Constraints returns the immutable rule set.
func (c *Controller) Constraints() constraints.Constraints { return c.cons }

func (c *Controller) Selected() (calendar.Date, bool) {
	return c.selected, !c.selected.IsZero()
}

func (c *Controller) Open()        { c.open = true }
func (c *Controller) Close()       { c.open = false }
func (c *Controller) IsOpen() bool { return c.open }

// HandleCellClick applies a click on the cell identified by ref.
// Refs that do not belong to the displayed view are ignored and selections
// of forbidden periods are rejected, in both cases without any state change.
func (c *Controller) HandleCellClick(ref CellRef) ClickResult {
	if c == nil || !c.owns(ref) {
		return ClickResult{Action: ClickIgnored}
	}
	step := Transition(c.view, CellClick(ref.Date), c.selectionType, c.month)
	if step.Selects {
		if c.forbidden(ref.Granularity, step.Select) {
			return ClickResult{Action: ClickRejected, Date: step.Select}
		}
		c.selected = step.Select
		return ClickResult{Action: ClickSelected, Date: step.Select}
	}
	if step.View == c.view {
		return ClickResult{Action: ClickIgnored}
	}
	c.setView(step.View)
	return ClickResult{Action: ClickNavigated}
}

// HandleTitleClick zooms out one granularity. It is a no-op on the year block.
func (c *Controller) HandleTitleClick() ClickResult {
	if c == nil {
		return ClickResult{Action: ClickIgnored}
	}
	step := Transition(c.view, TitleClick(), c.selectionType, c.month)
	if step.View == c.view {
		return ClickResult{Action: ClickIgnored}
	}
	c.setView(step.View)
	return ClickResult{Action: ClickNavigated}
}

// CanPrevious reports whether the previous period holds anything selectable.
func (c *Controller) CanPrevious() bool {
	return c != nil && !c.periodForbidden(shift(c.view, -1))
}

// CanNext reports whether the next period holds anything selectable.
func (c *Controller) CanNext() bool {
	return c != nil && !c.periodForbidden(shift(c.view, 1))
}

// Previous shows the previous month, year or year block.
func (c *Controller) Previous() bool {
	if !c.CanPrevious() {
		return false
	}
	c.setView(shift(c.view, -1))
	return true
}

// Next shows the next month, year or year block.
func (c *Controller) Next() bool {
	if !c.CanNext() {
		return false
	}
	c.setView(shift(c.view, 1))
	return true
}

// JumpTo shows the period containing year/month at the current granularity.
// A zero month keeps the remembered month. Navigation is never blocked by
// the constraints.
func (c *Controller) JumpTo(year int, month time.Month) bool {
	if c == nil || month < 0 || month > time.December {
		return false
	}
	if month == 0 {
		month = c.month
	}
	c.setView(viewFor(c.view.Granularity(), calendar.MustDate(year, month, 1)))
	c.month = month
	return true
}

func (c *Controller) setView(v View) {
	switch cur := v.(type) {
	case MonthView:
		c.month = cur.Month
	case DayView:
		c.month = cur.Month
	}
	c.view = v
}

// owns reports whether ref names a cell of the displayed view.
func (c *Controller) owns(ref CellRef) bool {
	if ref.Date.IsZero() || ref.Granularity != c.view.Granularity() {
		return false
	}
	switch cur := c.view.(type) {
	case YearBlockView:
		y := ref.Date.Year()
		return y >= cur.Start && y < cur.Start+calendar.YearsPerBlock
	case MonthView:
		return ref.Date.Year() == cur.Year
	case DayView:
		grid := calendar.MonthGrid(cur.Year, cur.Month, c.weekStart)
		return !ref.Date.Before(grid[0].Date) && !ref.Date.After(grid[len(grid)-1].Date)
	}
	return false
}

// forbidden evaluates the constraints at the granularity of a cell: a day
// must be allowed, a month or year needs at least one allowed day.
func (c *Controller) forbidden(g Granularity, d calendar.Date) bool {
	switch g {
	case GranularityYearBlock:
		return c.cons.YearForbidden(d.Year())
	case GranularityMonth:
		return c.cons.MonthForbidden(d.Year(), d.Month())
	default:
		return !c.cons.IsAllowed(d)
	}
}

func (c *Controller) periodForbidden(v View) bool {
	switch cur := v.(type) {
	case YearBlockView:
		return c.cons.YearBlockForbidden(cur.Start)
	case MonthView:
		return c.cons.YearForbidden(cur.Year)
	case DayView:
		return c.cons.MonthForbidden(cur.Year, cur.Month)
	}
	return true
}
