package core

import (
	"reflect"
	"testing"
	"time"

	"github.com/jask/datepicker/internal/calendar"
	"github.com/jask/datepicker/internal/constraints"
)

func TestSnapshotDayGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Constraints = exampleConstraints()
	cfg.InitialSelected = datePtr(2021, time.March, 10)
	c := newTestController(t, cfg)
	s := c.Snapshot()

	if s.Title != "Mar 2021" {
		t.Fatalf("title = %q", s.Title)
	}
	if s.Columns != 7 || len(s.Cells) != calendar.GridSize {
		t.Fatalf("columns = %d cells = %d", s.Columns, len(s.Cells))
	}
	if want := []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}; !reflect.DeepEqual(s.Weekdays, want) {
		t.Fatalf("weekdays = %v", s.Weekdays)
	}
	first := s.Cells[0]
	if first.Ref.Date != calendar.MustDate(2021, time.March, 1) || first.Label != "1" || first.Outside {
		t.Fatalf("first cell = %+v", first)
	}
	last := s.Cells[len(s.Cells)-1]
	if last.Ref.Date != calendar.MustDate(2021, time.April, 11) || !last.Outside || !last.Disabled {
		t.Fatalf("last cell = %+v", last)
	}
	if !s.Cells[5].Disabled || s.Cells[4].Disabled {
		t.Fatalf("weekend flags: fri=%v sat=%v", s.Cells[4].Disabled, s.Cells[5].Disabled)
	}
	selected := 0
	for _, cell := range s.Cells {
		if cell.Selected {
			selected++
			if cell.Ref.Date != calendar.MustDate(2021, time.March, 10) {
				t.Fatalf("selected cell = %+v", cell)
			}
		}
	}
	if selected != 1 || !s.HasSelected {
		t.Fatalf("selected cells = %d", selected)
	}
}

func TestSnapshotWeekStartAndLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeekStart = time.Sunday
	cfg.MonthTitleLayout = "January 2006"
	cfg.StartingDate = datePtr(2021, time.March, 10)
	c := newTestController(t, cfg)
	s := c.Snapshot()

	if s.Title != "March 2021" {
		t.Fatalf("title = %q", s.Title)
	}
	if s.Weekdays[0] != "Su" {
		t.Fatalf("first weekday = %q", s.Weekdays[0])
	}
	if got := s.Cells[0].Ref.Date; got != calendar.MustDate(2021, time.February, 28) || !s.Cells[0].Outside {
		t.Fatalf("first cell = %s", got)
	}
}

func TestSnapshotMonthView(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SelectionType = GranularityMonth
	cfg.Constraints = constraints.NewBuilder().
		MinDate(calendar.MustDate(2021, time.March, 31)).
		DisableMonths(time.July)
	cfg.InitialSelected = datePtr(2021, time.May, 1)
	c := newTestController(t, cfg)
	s := c.Snapshot()

	if s.Title != "2021" || s.Columns != 3 || len(s.Cells) != 12 || s.Weekdays != nil {
		t.Fatalf("snapshot = %+v", s)
	}
	wantDisabled := map[int]bool{0: true, 1: true, 2: false, 3: false, 6: true}
	for i, want := range wantDisabled {
		if s.Cells[i].Disabled != want {
			t.Fatalf("%s disabled = %v, want %v", s.Cells[i].Label, s.Cells[i].Disabled, want)
		}
	}
	if s.Cells[0].Label != "Jan" || !s.Cells[4].Selected {
		t.Fatalf("cells = %+v", s.Cells[:5])
	}
	if !s.CanNext || s.CanPrevious {
		t.Fatalf("previous=%v next=%v", s.CanPrevious, s.CanNext)
	}
}

func TestSnapshotYearBlock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SelectionType = GranularityYearBlock
	cfg.StartingDate = datePtr(1993, time.February, 2)
	cfg.Constraints = constraints.NewBuilder().DisableYears(1985)
	c := newTestController(t, cfg)
	s := c.Snapshot()

	if s.Title != "1980 - 1999" || s.Columns != 4 || len(s.Cells) != 20 {
		t.Fatalf("snapshot title=%q columns=%d cells=%d", s.Title, s.Columns, len(s.Cells))
	}
	if s.Cells[0].Label != "1980" || s.Cells[19].Label != "1999" {
		t.Fatalf("labels %q..%q", s.Cells[0].Label, s.Cells[19].Label)
	}
	if !s.Cells[5].Disabled || s.Cells[6].Disabled {
		t.Fatalf("1985 disabled=%v 1986 disabled=%v", s.Cells[5].Disabled, s.Cells[6].Disabled)
	}
}

func TestSnapshotDoesNotMutate(t *testing.T) {
	c := newTestController(t, DefaultConfig())
	a := c.Snapshot()
	b := c.Snapshot()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("snapshots differ")
	}
	a.Cells[0].Label = "x"
	if c.Snapshot().Cells[0].Label == "x" {
		t.Fatalf("snapshot shares cell storage with the controller")
	}
}
