package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jask/datepicker/internal/calendar"
	"github.com/jask/datepicker/internal/constraints"
)

// constraintsFile mirrors the constraints TOML document.
type constraintsFile struct {
	MinDate              dateValue       `toml:"min_date"`
	MaxDate              dateValue       `toml:"max_date"`
	DisabledWeekdays     []weekdayValue  `toml:"disabled_weekdays"`
	DisabledMonths       []monthValue    `toml:"disabled_months"`
	DisabledYears        []int           `toml:"disabled_years"`
	DisabledMonthlyDates []int           `toml:"disabled_monthly_dates"`
	DisabledYearlyDates  []monthDayValue `toml:"disabled_yearly_dates"`
	DisabledUniqueDates  []dateValue     `toml:"disabled_unique_dates"`
}

// LoadConstraints decodes the constraints file at path.
func LoadConstraints(path string) (*constraints.Builder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open constraints: %w", err)
	}
	defer f.Close()
	return DecodeConstraints(f)
}

// DecodeConstraints reads a constraints document. Unknown keys are an error.
// The returned builder has not been validated; Build reports bad rules.
func DecodeConstraints(r io.Reader) (*constraints.Builder, error) {
	var doc constraintsFile
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decode constraints: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode constraints: unknown keys %v", undecoded)
	}

	b := constraints.NewBuilder()
	if !doc.MinDate.IsZero() {
		b.MinDate(doc.MinDate.Date)
	}
	if !doc.MaxDate.IsZero() {
		b.MaxDate(doc.MaxDate.Date)
	}
	for _, w := range doc.DisabledWeekdays {
		b.DisableWeekdays(time.Weekday(w))
	}
	for _, m := range doc.DisabledMonths {
		b.DisableMonths(time.Month(m))
	}
	b.DisableYears(doc.DisabledYears...)
	b.DisableMonthlyDates(doc.DisabledMonthlyDates...)
	for _, yd := range doc.DisabledYearlyDates {
		b.DisableYearlyDates(constraints.MonthDay(yd))
	}
	for _, d := range doc.DisabledUniqueDates {
		b.DisableUniqueDates(d.Date)
	}
	return b, nil
}

// dateValue accepts "2020-12-08" strings and TOML local dates.
type dateValue struct{ calendar.Date }

func (d *dateValue) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		return d.Date.UnmarshalText([]byte(v))
	case time.Time:
		d.Date = calendar.FromTime(v)
		return nil
	}
	return fmt.Errorf("date: unexpected %T", v)
}

// weekdayValue accepts names ("sat", "Saturday") or numbers 0-6.
type weekdayValue time.Weekday

func (w *weekdayValue) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		day, err := ParseWeekday(v)
		if err != nil {
			return err
		}
		*w = weekdayValue(day)
		return nil
	case int64:
		*w = weekdayValue(v)
		return nil
	}
	return fmt.Errorf("weekday: unexpected %T", v)
}

// monthValue accepts names ("jul", "July") or numbers 1-12.
type monthValue time.Month

func (m *monthValue) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		month, err := ParseMonth(v)
		if err != nil {
			return err
		}
		*m = monthValue(month)
		return nil
	case int64:
		*m = monthValue(v)
		return nil
	}
	return fmt.Errorf("month: unexpected %T", v)
}

// monthDayValue reads "MM-DD".
type monthDayValue constraints.MonthDay

func (md *monthDayValue) UnmarshalText(text []byte) error {
	ms, ds, ok := strings.Cut(strings.TrimSpace(string(text)), "-")
	if !ok {
		return fmt.Errorf("yearly date %q: want MM-DD", text)
	}
	m, errM := strconv.Atoi(ms)
	d, errD := strconv.Atoi(ds)
	if errM != nil || errD != nil {
		return fmt.Errorf("yearly date %q: want MM-DD", text)
	}
	*md = monthDayValue{Month: time.Month(m), Day: d}
	return nil
}

// ParseWeekday reads a weekday name, its three letter prefix or 0-6.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("weekday %d out of range", n)
		}
		return time.Weekday(n), nil
	}
	if len(s) >= 3 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			if strings.HasPrefix(strings.ToLower(d.String()), s) {
				return d, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// ParseMonth reads a month name, its three letter prefix or 1-12.
func ParseMonth(s string) (time.Month, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month %d out of range", n)
		}
		return time.Month(n), nil
	}
	if len(s) >= 3 {
		for m := time.January; m <= time.December; m++ {
			if strings.HasPrefix(strings.ToLower(m.String()), s) {
				return m, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown month %q", s)
}
