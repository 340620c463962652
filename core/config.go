package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/jask/datepicker/internal/calendar"
	"github.com/jask/datepicker/internal/constraints"
)

const DefaultMonthTitleLayout = "Jan 2006"

var (
	ErrUnknownGranularity   = errors.New("unknown granularity")
	ErrStartingViewTooFine  = errors.New("starting view must not be finer than the selection type")
	ErrInitialDateForbidden = errors.New("initial selected date is forbidden by the constraints")
)

// ConfigError reports an invalid picker configuration.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("datepicker config %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Config is the option set read once by New.
//
// StartingView defaults to SelectionType: unless told otherwise the picker
// opens directly at the granularity the user picks in. A coarser
// StartingView lets the user drill down first; a finer one is rejected.
type Config struct {
	// Constraints holds the date rules; nil allows every date. It is built
	// once by New.
	Constraints   *constraints.Builder
	SelectionType Granularity
	StartingView  *Granularity

	// InitialSelected pre-selects a date. It must be allowed by Constraints.
	InitialSelected *calendar.Date
	// StartingDate picks the first displayed period. It falls back to
	// InitialSelected, then to today.
	StartingDate *calendar.Date

	WeekStart        time.Weekday
	MonthTitleLayout string
	InitiallyOpen    bool

	// Now is used to resolve today. Defaults to time.Now.
	Now func() time.Time
}

// DefaultConfig selects days, starts the week on Monday and allows every date.
func DefaultConfig() Config {
	return Config{
		SelectionType:    GranularityDay,
		WeekStart:        time.Monday,
		MonthTitleLayout: DefaultMonthTitleLayout,
		InitiallyOpen:    true,
	}
}

// StartingGranularity is the resolved granularity of the first view.
func (c Config) StartingGranularity() Granularity {
	if c.StartingView != nil {
		return *c.StartingView
	}
	return c.SelectionType
}

func (c Config) startingDate() calendar.Date {
	if c.StartingDate != nil && !c.StartingDate.IsZero() {
		return *c.StartingDate
	}
	if c.InitialSelected != nil && !c.InitialSelected.IsZero() {
		return *c.InitialSelected
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return calendar.FromTime(now())
}

// Validate checks the whole configuration. Errors are *ConfigError.
func (c Config) Validate() error {
	_, err := c.resolve()
	return err
}

// resolve validates c and builds its constraints.
func (c Config) resolve() (constraints.Constraints, error) {
	var none constraints.Constraints
	if !c.SelectionType.valid() {
		return none, &ConfigError{Field: "selection_type", Err: fmt.Errorf("%w: %d", ErrUnknownGranularity, int(c.SelectionType))}
	}
	start := c.StartingGranularity()
	if !start.valid() {
		return none, &ConfigError{Field: "starting_view", Err: fmt.Errorf("%w: %d", ErrUnknownGranularity, int(start))}
	}
	if start > c.SelectionType {
		return none, &ConfigError{Field: "starting_view", Err: fmt.Errorf("%w: %s > %s", ErrStartingViewTooFine, start, c.SelectionType)}
	}
	if c.WeekStart < time.Sunday || c.WeekStart > time.Saturday {
		return none, &ConfigError{Field: "week_start", Err: fmt.Errorf("weekday %d out of range", int(c.WeekStart))}
	}

	var cons constraints.Constraints
	if c.Constraints != nil {
		built, err := c.Constraints.Build()
		if err != nil {
			return none, &ConfigError{Field: "date_constraints", Err: err}
		}
		cons = built
	}
	if c.InitialSelected != nil && !c.InitialSelected.IsZero() && !cons.IsAllowed(*c.InitialSelected) {
		return none, &ConfigError{Field: "initial_selected_date", Err: fmt.Errorf("%w: %s", ErrInitialDateForbidden, c.InitialSelected)}
	}
	return cons, nil
}
