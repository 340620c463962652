package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// maxMonthDistance is the largest edit distance accepted for a month name.
const maxMonthDistance = 2

var ErrBadJump = errors.New("unrecognised period")

// JumpTarget is a parsed "go to" request. Month is zero when only a year
// was given.
type JumpTarget struct {
	Year  int
	Month time.Month
}

// ParseJump reads a period typed by the user: "2021", "2021-03", "03/2021",
// "march 2021", "mar" or a near miss such as "febuary". A missing year
// falls back to fallbackYear.
func ParseJump(text string, fallbackYear int) (JumpTarget, error) {
	fields := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(text)), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '/' || r == '.' || r == ','
	})
	if len(fields) == 0 || len(fields) > 2 {
		return JumpTarget{}, fmt.Errorf("%w: %q", ErrBadJump, text)
	}

	target := JumpTarget{Year: fallbackYear}
	haveYear := false
	for _, f := range fields {
		if n, err := strconv.Atoi(f); err == nil {
			switch {
			case len(f) >= 3 && !haveYear:
				target.Year = n
				haveYear = true
			case n >= 1 && n <= 12 && target.Month == 0:
				target.Month = time.Month(n)
			default:
				return JumpTarget{}, fmt.Errorf("%w: %q", ErrBadJump, text)
			}
			continue
		}
		if target.Month != 0 {
			return JumpTarget{}, fmt.Errorf("%w: %q", ErrBadJump, text)
		}
		m, ok := matchMonth(f)
		if !ok {
			return JumpTarget{}, fmt.Errorf("%w: %q", ErrBadJump, text)
		}
		target.Month = m
	}
	if !haveYear && target.Month == 0 {
		return JumpTarget{}, fmt.Errorf("%w: %q", ErrBadJump, text)
	}
	return target, nil
}

// matchMonth resolves a month name, its three letter prefix or the closest
// full name within maxMonthDistance edits.
func matchMonth(word string) (time.Month, bool) {
	best, bestDist := time.Month(0), maxMonthDistance+1
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if word == name || (len(word) >= 3 && strings.HasPrefix(name, word)) {
			return m, true
		}
		if d := levenshtein.ComputeDistance(word, name); d < bestDist {
			best, bestDist = m, d
		}
	}
	return best, best != 0
}
