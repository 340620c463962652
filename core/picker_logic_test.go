package core

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jask/datepicker/internal/calendar"
	"github.com/jask/datepicker/internal/constraints"
)

func granularity(g Granularity) *Granularity { return &g }

func datePtr(y int, m time.Month, d int) *calendar.Date {
	v := calendar.MustDate(y, m, d)
	return &v
}

func newTestController(t *testing.T, cfg Config) *Controller {
	t.Helper()
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Date(2021, time.June, 15, 9, 0, 0, 0, time.UTC) }
	}
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func exampleConstraints() *constraints.Builder {
	return constraints.NewBuilder().
		MinDate(calendar.MustDate(2020, time.December, 1)).
		MaxDate(calendar.MustDate(2022, time.December, 14)).
		DisableWeekdays(time.Saturday, time.Sunday)
}

func TestNewStartsAtSelectionGranularity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SelectionType = GranularityMonth
	c := newTestController(t, cfg)

	want := MonthView{Year: 2021, Month: time.June}
	if c.View() != want {
		t.Fatalf("view = %+v, want %+v", c.View(), want)
	}
	if _, ok := c.Selected(); ok {
		t.Fatalf("expected no selection")
	}
}

func TestNewHonoursStartingViewAndDate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartingView = granularity(GranularityYearBlock)
	cfg.StartingDate = datePtr(1993, time.February, 2)
	c := newTestController(t, cfg)

	if c.View() != (YearBlockView{Start: 1980}) {
		t.Fatalf("view = %+v, want year block 1980", c.View())
	}
}

func TestNewStartsAtInitialSelection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialSelected = datePtr(2020, time.December, 15)
	c := newTestController(t, cfg)

	if c.View() != (DayView{Year: 2020, Month: time.December}) {
		t.Fatalf("view = %+v", c.View())
	}
	got, ok := c.Selected()
	if !ok || got != calendar.MustDate(2020, time.December, 15) {
		t.Fatalf("selected = %s, %v", got, ok)
	}
}

func TestNewRejectsInvertedBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Constraints = constraints.NewBuilder().
		MinDate(calendar.MustDate(2020, time.October, 15)).
		MaxDate(calendar.MustDate(2020, time.October, 14))
	_, err := New(cfg)

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *ConfigError", err)
	}
	if cfgErr.Field != "date_constraints" {
		t.Fatalf("field = %q", cfgErr.Field)
	}
	if !errors.Is(err, constraints.ErrInvertedBounds) {
		t.Fatalf("err = %v, want ErrInvertedBounds", err)
	}
}

func TestNewRejectsStartingViewFinerThanSelection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SelectionType = GranularityMonth
	cfg.StartingView = granularity(GranularityDay)
	if _, err := New(cfg); !errors.Is(err, ErrStartingViewTooFine) {
		t.Fatalf("err = %v, want ErrStartingViewTooFine", err)
	}

	cfg.StartingView = granularity(GranularityYearBlock)
	if _, err := New(cfg); err != nil {
		t.Fatalf("coarser starting view: %v", err)
	}
}

func TestNewRejectsForbiddenInitialDate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Constraints = exampleConstraints()
	cfg.InitialSelected = datePtr(2020, time.December, 5)
	if _, err := New(cfg); !errors.Is(err, ErrInitialDateForbidden) {
		t.Fatalf("err = %v, want ErrInitialDateForbidden", err)
	}
}

func TestNewRejectsUnknownGranularity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SelectionType = Granularity(7)
	if _, err := New(cfg); !errors.Is(err, ErrUnknownGranularity) {
		t.Fatalf("err = %v, want ErrUnknownGranularity", err)
	}
}

func TestYearClickDrillsDownWithoutSelecting(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartingView = granularity(GranularityYearBlock)
	c := newTestController(t, cfg)

	res := c.HandleCellClick(CellRef{Granularity: GranularityYearBlock, Date: calendar.MustDate(2021, 1, 1)})
	if res.Action != ClickNavigated {
		t.Fatalf("action = %v, want navigated", res.Action)
	}
	if c.View() != (MonthView{Year: 2021, Month: time.June}) {
		t.Fatalf("view = %+v", c.View())
	}
	if _, ok := c.Selected(); ok {
		t.Fatalf("year click must not select")
	}
}

func TestYearClickMonthSelection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SelectionType = GranularityMonth
	cfg.StartingView = granularity(GranularityYearBlock)
	c := newTestController(t, cfg)

	for _, y := range []int{2020, 2027, 2039} {
		c.HandleCellClick(CellRef{Granularity: GranularityYearBlock, Date: calendar.MustDate(y, 1, 1)})
		if c.Granularity() != GranularityMonth {
			t.Fatalf("granularity = %v, want months", c.Granularity())
		}
		if v, ok := c.View().(MonthView); !ok || v.Year != y {
			t.Fatalf("view = %+v, want month view of %d", c.View(), y)
		}
		c.HandleTitleClick()
		if c.View() != (YearBlockView{Start: 2020}) {
			t.Fatalf("title click view = %+v, want block 2020", c.View())
		}
	}
}

func TestYearSelection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SelectionType = GranularityYearBlock
	cfg.Constraints = constraints.NewBuilder().DisableYears(2022)
	c := newTestController(t, cfg)

	res := c.HandleCellClick(CellRef{Granularity: GranularityYearBlock, Date: calendar.MustDate(2023, 1, 1)})
	if res.Action != ClickSelected || res.Date != calendar.MustDate(2023, 1, 1) {
		t.Fatalf("result = %+v", res)
	}
	if c.View() != (YearBlockView{Start: 2020}) {
		t.Fatalf("view changed to %+v", c.View())
	}

	res = c.HandleCellClick(CellRef{Granularity: GranularityYearBlock, Date: calendar.MustDate(2022, 1, 1)})
	if res.Action != ClickRejected {
		t.Fatalf("action = %v, want rejected", res.Action)
	}
	if got, _ := c.Selected(); got != calendar.MustDate(2023, 1, 1) {
		t.Fatalf("selected = %s, want 2023-01-01", got)
	}
}

func TestMonthSelectionUsesFirstOfMonth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SelectionType = GranularityMonth
	cfg.Constraints = exampleConstraints()
	c := newTestController(t, cfg)

	// May 1 2021 is a Saturday; the month still has weekdays.
	res := c.HandleCellClick(CellRef{Granularity: GranularityMonth, Date: calendar.MustDate(2021, time.May, 1)})
	if res.Action != ClickSelected || res.Date != calendar.MustDate(2021, time.May, 1) {
		t.Fatalf("result = %+v", res)
	}

	c.JumpTo(2023, time.January)
	res = c.HandleCellClick(CellRef{Granularity: GranularityMonth, Date: calendar.MustDate(2023, time.March, 1)})
	if res.Action != ClickRejected {
		t.Fatalf("action = %v, want rejected past max", res.Action)
	}
}

func TestDayClickSelectsAndRejects(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Constraints = exampleConstraints()
	cfg.StartingDate = datePtr(2020, time.December, 1)
	c := newTestController(t, cfg)

	res := c.HandleCellClick(CellRef{Granularity: GranularityDay, Date: calendar.MustDate(2020, time.December, 5)})
	if res.Action != ClickRejected {
		t.Fatalf("saturday action = %v, want rejected", res.Action)
	}
	if _, ok := c.Selected(); ok {
		t.Fatalf("rejected click must not select")
	}

	res = c.HandleCellClick(CellRef{Granularity: GranularityDay, Date: calendar.MustDate(2020, time.December, 7)})
	if res.Action != ClickSelected {
		t.Fatalf("monday action = %v, want selected", res.Action)
	}
	if c.View() != (DayView{Year: 2020, Month: time.December}) {
		t.Fatalf("view changed to %+v", c.View())
	}
}

func TestForeignCellRefsIgnored(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartingDate = datePtr(2021, time.March, 10)
	c := newTestController(t, cfg)
	before := c.Snapshot()

	refs := []CellRef{
		{Granularity: GranularityMonth, Date: calendar.MustDate(2021, time.March, 1)},
		{Granularity: GranularityDay, Date: calendar.MustDate(2021, time.July, 1)},
		{Granularity: GranularityDay},
	}
	for _, ref := range refs {
		if res := c.HandleCellClick(ref); res.Action != ClickIgnored {
			t.Fatalf("ref %+v action = %v, want ignored", ref, res.Action)
		}
	}
	if !reflect.DeepEqual(before, c.Snapshot()) {
		t.Fatalf("ignored clicks changed the snapshot")
	}

	// trailing grid days from April belong to the March grid
	res := c.HandleCellClick(CellRef{Granularity: GranularityDay, Date: calendar.MustDate(2021, time.April, 5)})
	if res.Action != ClickSelected {
		t.Fatalf("outside day action = %v, want selected", res.Action)
	}
}

func TestTitleClicks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartingDate = datePtr(2021, time.March, 10)
	c := newTestController(t, cfg)

	c.HandleTitleClick()
	if c.View() != (MonthView{Year: 2021, Month: time.March}) {
		t.Fatalf("view = %+v", c.View())
	}
	c.HandleTitleClick()
	if c.View() != (YearBlockView{Start: 2020}) {
		t.Fatalf("view = %+v", c.View())
	}
	if res := c.HandleTitleClick(); res.Action != ClickIgnored {
		t.Fatalf("year block title action = %v, want ignored", res.Action)
	}
}

func TestNavigationRoundTripIsIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Constraints = exampleConstraints()
	cfg.StartingDate = datePtr(2021, time.March, 10)
	c := newTestController(t, cfg)
	c.HandleCellClick(CellRef{Granularity: GranularityDay, Date: calendar.MustDate(2021, time.March, 10)})
	original := c.Snapshot()

	c.HandleTitleClick()
	c.HandleTitleClick()
	c.HandleCellClick(CellRef{Granularity: GranularityYearBlock, Date: calendar.MustDate(2021, 1, 1)})
	c.HandleCellClick(CellRef{Granularity: GranularityMonth, Date: calendar.MustDate(2021, time.March, 1)})

	if !reflect.DeepEqual(original, c.Snapshot()) {
		t.Fatalf("snapshot differs after round trip")
	}
}

func TestYearBlockRemembersMonth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartingDate = datePtr(2021, time.September, 10)
	c := newTestController(t, cfg)

	c.HandleTitleClick()
	c.HandleTitleClick()
	c.HandleCellClick(CellRef{Granularity: GranularityYearBlock, Date: calendar.MustDate(2024, 1, 1)})
	if c.View() != (MonthView{Year: 2024, Month: time.September}) {
		t.Fatalf("view = %+v, want September remembered", c.View())
	}
}

func TestPreviousNextRespectForbiddenPeriods(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Constraints = exampleConstraints()
	cfg.StartingDate = datePtr(2020, time.December, 10)
	c := newTestController(t, cfg)

	if c.CanPrevious() {
		t.Fatalf("November 2020 is before min date")
	}
	if c.Previous() {
		t.Fatalf("Previous moved into a forbidden month")
	}
	if !c.Next() || c.View() != (DayView{Year: 2021, Month: time.January}) {
		t.Fatalf("Next view = %+v", c.View())
	}

	c.JumpTo(2022, time.December)
	if c.CanNext() {
		t.Fatalf("January 2023 is after max date")
	}

	c.HandleTitleClick()
	if !c.CanPrevious() || c.CanNext() {
		t.Fatalf("month view: previous=%v next=%v", c.CanPrevious(), c.CanNext())
	}
	c.HandleTitleClick()
	if c.CanPrevious() || c.CanNext() {
		t.Fatalf("year block view: previous=%v next=%v", c.CanPrevious(), c.CanNext())
	}
}

func TestJumpToKeepsGranularity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartingDate = datePtr(2021, time.March, 10)
	c := newTestController(t, cfg)

	if !c.JumpTo(1999, time.July) || c.View() != (DayView{Year: 1999, Month: time.July}) {
		t.Fatalf("view = %+v", c.View())
	}
	c.HandleTitleClick()
	c.HandleTitleClick()
	c.JumpTo(2044, time.February)
	if c.View() != (YearBlockView{Start: 2040}) {
		t.Fatalf("view = %+v", c.View())
	}
	c.HandleCellClick(CellRef{Granularity: GranularityYearBlock, Date: calendar.MustDate(2044, 1, 1)})
	if c.View() != (MonthView{Year: 2044, Month: time.February}) {
		t.Fatalf("view = %+v", c.View())
	}
	if !c.JumpTo(2050, 0) || c.View() != (MonthView{Year: 2050, Month: time.February}) {
		t.Fatalf("year only jump view = %+v", c.View())
	}
	if c.JumpTo(2044, 13) {
		t.Fatalf("JumpTo accepted month 13")
	}
}

func TestOpenClose(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitiallyOpen = false
	c := newTestController(t, cfg)
	if c.IsOpen() {
		t.Fatalf("expected closed")
	}
	c.Open()
	if !c.Snapshot().Open {
		t.Fatalf("snapshot should report open")
	}
	c.Close()
	if c.IsOpen() {
		t.Fatalf("expected closed after Close")
	}
}

func TestNilControllerIsInert(t *testing.T) {
	var c *Controller
	if res := c.HandleCellClick(CellRef{}); res.Action != ClickIgnored {
		t.Fatalf("action = %v", res.Action)
	}
	if res := c.HandleTitleClick(); res.Action != ClickIgnored {
		t.Fatalf("action = %v", res.Action)
	}
	if c.Next() || c.Previous() {
		t.Fatalf("nil controller navigated")
	}
}
