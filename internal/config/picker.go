package config

import (
	"strings"

	"github.com/jask/datepicker/core"
	"github.com/jask/datepicker/internal/calendar"
)

// CoreConfig converts the picker settings for core.New, loading the
// constraints file when one is configured. Errors are *core.ConfigError.
func (c Config) CoreConfig() (core.Config, error) {
	out := core.DefaultConfig()
	p := c.Picker

	sel, err := core.ParseGranularity(p.SelectionType)
	if err != nil {
		return out, &core.ConfigError{Field: "selection_type", Err: err}
	}
	out.SelectionType = sel

	if strings.TrimSpace(p.StartingView) != "" {
		g, err := core.ParseGranularity(p.StartingView)
		if err != nil {
			return out, &core.ConfigError{Field: "starting_view", Err: err}
		}
		out.StartingView = &g
	}

	if out.InitialSelected, err = optionalDate(p.InitialDate); err != nil {
		return out, &core.ConfigError{Field: "initial_selected_date", Err: err}
	}
	if out.StartingDate, err = optionalDate(p.StartingDate); err != nil {
		return out, &core.ConfigError{Field: "starting_date", Err: err}
	}

	if strings.TrimSpace(p.WeekStart) != "" {
		if out.WeekStart, err = ParseWeekday(p.WeekStart); err != nil {
			return out, &core.ConfigError{Field: "week_start", Err: err}
		}
	}
	if p.MonthTitleLayout != "" {
		out.MonthTitleLayout = p.MonthTitleLayout
	}
	out.InitiallyOpen = p.InitiallyOpen

	if p.ConstraintsFile != "" {
		b, err := LoadConstraints(p.ConstraintsFile)
		if err != nil {
			return out, &core.ConfigError{Field: "date_constraints", Err: err}
		}
		out.Constraints = b
	}
	return out, nil
}

func optionalDate(s string) (*calendar.Date, error) {
	var d calendar.Date
	if err := d.UnmarshalText([]byte(s)); err != nil {
		return nil, err
	}
	if d.IsZero() {
		return nil, nil
	}
	return &d, nil
}
