package calendar

import "time"

const (
	// YearsPerBlock is the number of years shown in a year-block view.
	YearsPerBlock = 20

	GridRows    = 6
	GridColumns = 7
	GridSize    = GridRows * GridColumns
)

var monthLabels = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// GridDay is one slot of a month grid.
type GridDay struct {
	Date    Date
	Outside bool
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// YearBlockStart returns the largest multiple of YearsPerBlock not above year.
func YearBlockStart(year int) int {
	r := year % YearsPerBlock
	if r < 0 {
		r += YearsPerBlock
	}
	return year - r
}

func YearBlockEnd(year int) int {
	return YearBlockStart(year) + YearsPerBlock - 1
}

// YearBlock lists the block containing year in ascending order.
func YearBlock(year int) []int {
	start := YearBlockStart(year)
	out := make([]int, YearsPerBlock)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// ShiftMonth moves delta months from year/month, carrying across years.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	idx := year*12 + int(month-1) + delta
	y := floorDiv(idx, 12)
	return y, time.Month(idx-y*12) + 1
}

func ShiftYear(year, delta int) int {
	return year + delta
}

// ShiftYearBlock returns the first year of the block delta blocks away.
func ShiftYearBlock(year, delta int) int {
	return YearBlockStart(year) + delta*YearsPerBlock
}

// MonthGrid lays out the month as six full weeks beginning on weekStart.
// Days from the neighbouring months fill the leading and trailing slots and
// are marked Outside.
func MonthGrid(year int, month time.Month, weekStart time.Weekday) []GridDay {
	first := Date{year: year, month: month, day: 1}
	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7
	start := first.AddDays(-lead)

	out := make([]GridDay, 0, GridSize)
	t := start.Time()
	for i := 0; i < GridSize; i++ {
		d := FromTime(t.AddDate(0, 0, i))
		out = append(out, GridDay{
			Date:    d,
			Outside: d.year != year || d.month != month,
		})
	}
	return out
}

// Weekdays lists the seven weekdays beginning on weekStart.
func Weekdays(weekStart time.Weekday) []time.Weekday {
	out := make([]time.Weekday, GridColumns)
	for i := range out {
		out[i] = time.Weekday((int(weekStart) + i) % 7)
	}
	return out
}

func Months() []time.Month {
	out := make([]time.Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, m)
	}
	return out
}

// MonthLabel is the three letter English name of m.
func MonthLabel(m time.Month) string {
	if m < time.January || m > time.December {
		return "???"
	}
	return monthLabels[m-1]
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
