package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/jask/datepicker/internal/calendar"
)

// Granularity is the zoom level of the picker, ordered coarse to fine.
type Granularity int

const (
	GranularityYearBlock Granularity = iota
	GranularityMonth
	GranularityDay
)

func (g Granularity) String() string {
	switch g {
	case GranularityYearBlock:
		return "years"
	case GranularityMonth:
		return "months"
	case GranularityDay:
		return "days"
	default:
		return fmt.Sprintf("granularity(%d)", int(g))
	}
}

func (g Granularity) valid() bool {
	return g >= GranularityYearBlock && g <= GranularityDay
}

// ParseGranularity accepts the names used in configuration files.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "years", "year", "yearblock", "year_block", "year-block":
		return GranularityYearBlock, nil
	case "months", "month":
		return GranularityMonth, nil
	case "days", "day":
		return GranularityDay, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGranularity, s)
	}
}

// View is the period the picker currently displays. It is one of
// YearBlockView, MonthView or DayView.
type View interface {
	Granularity() Granularity
	// Anchor is the first day of the displayed period.
	Anchor() calendar.Date
	isView()
}

// YearBlockView shows the twenty years starting at Start.
type YearBlockView struct {
	Start int
}

// MonthView shows the twelve months of Year. Month is the month most
// recently displayed and is restored when drilling back into days.
type MonthView struct {
	Year  int
	Month time.Month
}

// DayView shows the days of one month.
type DayView struct {
	Year  int
	Month time.Month
}

func (YearBlockView) Granularity() Granularity { return GranularityYearBlock }
func (MonthView) Granularity() Granularity     { return GranularityMonth }
func (DayView) Granularity() Granularity       { return GranularityDay }

func (v YearBlockView) Anchor() calendar.Date {
	return calendar.MustDate(v.Start, time.January, 1)
}

func (v MonthView) Anchor() calendar.Date {
	return calendar.MustDate(v.Year, time.January, 1)
}

func (v DayView) Anchor() calendar.Date {
	return calendar.MustDate(v.Year, v.Month, 1)
}

func (YearBlockView) isView() {}
func (MonthView) isView()     {}
func (DayView) isView()       {}

// viewFor returns the view at granularity g containing date.
func viewFor(g Granularity, date calendar.Date) View {
	switch g {
	case GranularityYearBlock:
		return YearBlockView{Start: calendar.YearBlockStart(date.Year())}
	case GranularityMonth:
		return MonthView{Year: date.Year(), Month: date.Month()}
	default:
		return DayView{Year: date.Year(), Month: date.Month()}
	}
}

type GestureKind int

const (
	GestureCellClick GestureKind = iota
	GestureTitleClick
)

// Gesture is an input from the rendering layer. Date is the represented
// period of the clicked cell and is ignored for title clicks.
type Gesture struct {
	Kind GestureKind
	Date calendar.Date
}

func CellClick(d calendar.Date) Gesture { return Gesture{Kind: GestureCellClick, Date: d} }
func TitleClick() Gesture               { return Gesture{Kind: GestureTitleClick} }

// Step is the outcome of a transition. When Selects is true the view is
// unchanged and Select holds the candidate date, still subject to the
// constraints.
type Step struct {
	View    View
	Select  calendar.Date
	Selects bool
}

// Transition applies a gesture to v. selection is the granularity at which
// a click picks a date instead of drilling down; month is the month to show
// when a year is opened.
func Transition(v View, g Gesture, selection Granularity, month time.Month) Step {
	stay := Step{View: v}
	switch cur := v.(type) {
	case YearBlockView:
		if g.Kind == GestureTitleClick {
			return stay
		}
		year := g.Date.Year()
		if selection == GranularityYearBlock {
			return Step{View: v, Select: calendar.MustDate(year, time.January, 1), Selects: true}
		}
		if month < time.January || month > time.December {
			month = time.January
		}
		return Step{View: MonthView{Year: year, Month: month}}

	case MonthView:
		if g.Kind == GestureTitleClick {
			return Step{View: YearBlockView{Start: calendar.YearBlockStart(cur.Year)}}
		}
		m := g.Date.Month()
		switch selection {
		case GranularityMonth:
			return Step{View: v, Select: calendar.MustDate(cur.Year, m, 1), Selects: true}
		case GranularityDay:
			return Step{View: DayView{Year: cur.Year, Month: m}}
		}
		return stay

	case DayView:
		if g.Kind == GestureTitleClick {
			return Step{View: MonthView{Year: cur.Year, Month: cur.Month}}
		}
		if selection != GranularityDay {
			return stay
		}
		return Step{View: v, Select: g.Date, Selects: true}
	}
	return stay
}

// shift moves v by delta periods of its own granularity.
func shift(v View, delta int) View {
	switch cur := v.(type) {
	case YearBlockView:
		return YearBlockView{Start: calendar.ShiftYearBlock(cur.Start, delta)}
	case MonthView:
		return MonthView{Year: calendar.ShiftYear(cur.Year, delta), Month: cur.Month}
	case DayView:
		y, m := calendar.ShiftMonth(cur.Year, cur.Month, delta)
		return DayView{Year: y, Month: m}
	}
	return v
}
