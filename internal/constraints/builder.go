package constraints

import (
	"fmt"
	"time"

	"github.com/jask/datepicker/internal/calendar"
)

// Builder collects rules for a Constraints value. Setters copy their inputs
// and may be chained; Build validates everything once.
//
//	c, err := constraints.NewBuilder().
//		MinDate(calendar.MustDate(2020, time.December, 1)).
//		DisableWeekdays(time.Saturday, time.Sunday).
//		Build()
type Builder struct {
	min, max       calendar.Date
	hasMin, hasMax bool

	weekdays     []time.Weekday
	months       []time.Month
	years        []int
	monthlyDates []int
	yearlyDates  []MonthDay
	uniqueDates  []calendar.Date
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) MinDate(d calendar.Date) *Builder {
	b.min, b.hasMin = d, true
	return b
}

func (b *Builder) MaxDate(d calendar.Date) *Builder {
	b.max, b.hasMax = d, true
	return b
}

func (b *Builder) DisableWeekdays(days ...time.Weekday) *Builder {
	b.weekdays = append(b.weekdays, days...)
	return b
}

func (b *Builder) DisableMonths(months ...time.Month) *Builder {
	b.months = append(b.months, months...)
	return b
}

func (b *Builder) DisableYears(years ...int) *Builder {
	b.years = append(b.years, years...)
	return b
}

// DisableMonthlyDates disables a day-of-month in every month, e.g. the 13th.
func (b *Builder) DisableMonthlyDates(days ...int) *Builder {
	b.monthlyDates = append(b.monthlyDates, days...)
	return b
}

// DisableYearlyDates disables a month/day pair in every year.
func (b *Builder) DisableYearlyDates(days ...MonthDay) *Builder {
	b.yearlyDates = append(b.yearlyDates, days...)
	return b
}

func (b *Builder) DisableUniqueDates(dates ...calendar.Date) *Builder {
	b.uniqueDates = append(b.uniqueDates, dates...)
	return b
}

// Build returns the immutable Constraints. Inverted bounds yield
// ErrInvertedBounds; out of range identifiers yield ErrInvalidRule.
func (b *Builder) Build() (Constraints, error) {
	if b.hasMin && b.hasMax && b.min.After(b.max) {
		return Constraints{}, fmt.Errorf("%w: %s > %s", ErrInvertedBounds, b.min, b.max)
	}
	c := Constraints{
		min:    b.min,
		max:    b.max,
		hasMin: b.hasMin,
		hasMax: b.hasMax,
	}

	for _, wd := range b.weekdays {
		if wd < time.Sunday || wd > time.Saturday {
			return Constraints{}, fmt.Errorf("%w: weekday %d", ErrInvalidRule, wd)
		}
	}
	for _, m := range b.months {
		if m < time.January || m > time.December {
			return Constraints{}, fmt.Errorf("%w: month %d", ErrInvalidRule, m)
		}
	}
	for _, d := range b.monthlyDates {
		if d < 1 || d > 31 {
			return Constraints{}, fmt.Errorf("%w: day of month %d", ErrInvalidRule, d)
		}
	}
	for _, md := range b.yearlyDates {
		// a leap year admits February 29
		if _, err := calendar.NewDate(2000, md.Month, md.Day); err != nil {
			return Constraints{}, fmt.Errorf("%w: yearly date %s", ErrInvalidRule, md)
		}
	}
	for _, d := range b.uniqueDates {
		if d.IsZero() {
			return Constraints{}, fmt.Errorf("%w: zero unique date", ErrInvalidRule)
		}
	}

	c.weekdays = toSet(b.weekdays)
	c.months = toSet(b.months)
	c.years = toSet(b.years)
	c.monthlyDates = toSet(b.monthlyDates)
	c.yearlyDates = toSet(b.yearlyDates)
	c.uniqueDates = toSet(b.uniqueDates)
	return c, nil
}

func toSet[K comparable](items []K) map[K]struct{} {
	if len(items) == 0 {
		return nil
	}
	out := make(map[K]struct{}, len(items))
	for _, it := range items {
		out[it] = struct{}{}
	}
	return out
}
