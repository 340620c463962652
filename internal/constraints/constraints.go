// Package constraints decides which calendar dates a picker may select.
//
// A Constraints value is immutable once built and safe for concurrent reads.
package constraints

import (
	"errors"
	"fmt"
	"time"

	"github.com/jask/datepicker/internal/calendar"
)

var (
	ErrInvertedBounds = errors.New("min date must be earlier than or equal to max date")
	ErrInvalidRule    = errors.New("invalid constraint rule")
)

// MonthDay is a day of the year with the year left out, e.g. December 25.
type MonthDay struct {
	Month time.Month
	Day   int
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}

// Constraints holds the bounds and exclusion rules. The zero value allows
// every date.
type Constraints struct {
	min, max       calendar.Date
	hasMin, hasMax bool

	weekdays     map[time.Weekday]struct{}
	months       map[time.Month]struct{}
	years        map[int]struct{}
	monthlyDates map[int]struct{}
	yearlyDates  map[MonthDay]struct{}
	uniqueDates  map[calendar.Date]struct{}
}

// IsAllowed reports whether c permits date.
func IsAllowed(date calendar.Date, c Constraints) bool {
	return c.IsAllowed(date)
}

// IsAllowed reports whether date passes every rule: inside the inclusive
// bounds and matched by none of the exclusion sets.
func (c Constraints) IsAllowed(date calendar.Date) bool {
	if c.hasMin && date.Before(c.min) {
		return false
	}
	if c.hasMax && date.After(c.max) {
		return false
	}
	if has(c.weekdays, date.Weekday()) {
		return false
	}
	if has(c.months, date.Month()) {
		return false
	}
	if has(c.years, date.Year()) {
		return false
	}
	if has(c.monthlyDates, date.Day()) {
		return false
	}
	if has(c.yearlyDates, MonthDay{Month: date.Month(), Day: date.Day()}) {
		return false
	}
	return !has(c.uniqueDates, date)
}

// MonthForbidden reports whether no day of the month is allowed.
func (c Constraints) MonthForbidden(year int, month time.Month) bool {
	if has(c.years, year) || has(c.months, month) {
		return true
	}
	first := calendar.MustDate(year, month, 1)
	last := calendar.MustDate(year, month, calendar.DaysInMonth(year, month))
	if c.outsideBounds(first, last) {
		return true
	}
	for d := first; !d.After(last); d = d.AddDays(1) {
		if c.IsAllowed(d) {
			return false
		}
	}
	return true
}

// YearForbidden reports whether every month of the year is forbidden.
func (c Constraints) YearForbidden(year int) bool {
	if has(c.years, year) {
		return true
	}
	if c.outsideBounds(calendar.MustDate(year, time.January, 1), calendar.MustDate(year, time.December, 31)) {
		return true
	}
	for _, m := range calendar.Months() {
		if !c.MonthForbidden(year, m) {
			return false
		}
	}
	return true
}

// YearBlockForbidden reports whether every year of the block containing year
// is forbidden.
func (c Constraints) YearBlockForbidden(year int) bool {
	for _, y := range calendar.YearBlock(year) {
		if !c.YearForbidden(y) {
			return false
		}
	}
	return true
}

func (c Constraints) Min() (calendar.Date, bool) { return c.min, c.hasMin }
func (c Constraints) Max() (calendar.Date, bool) { return c.max, c.hasMax }

// outsideBounds reports whether the whole range [from, to] lies before min or
// after max.
func (c Constraints) outsideBounds(from, to calendar.Date) bool {
	if c.hasMin && to.Before(c.min) {
		return true
	}
	return c.hasMax && from.After(c.max)
}

func has[K comparable](set map[K]struct{}, k K) bool {
	if len(set) == 0 {
		return false
	}
	_, ok := set[k]
	return ok
}
