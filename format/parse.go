package format

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sporadisk/timesheet/summary"
)

// DateLayout is the calendar date layout accepted for entry start dates and
// used for report column headers.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidDate     = errors.New("invalid date")
)

var (
	clockPattern   = regexp.MustCompile(`^(\d+):(\d+):(\d+)$`)
	secondsPattern = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)$`)
)

// ParseHours converts a raw duration into fractional hours. Two forms are
// accepted: a clock value (HH:MM:SS, hours unbounded) and a plain decimal
// number of seconds.
func ParseHours(raw string) (float64, error) {
	s := strings.TrimSpace(raw)

	clockMatches := clockPattern.FindStringSubmatch(s)
	if clockMatches != nil {
		return parseClock(clockMatches[1], clockMatches[2], clockMatches[3])
	}

	if !secondsPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q is neither HH:MM:SS nor a number of seconds", ErrInvalidDuration, raw)
	}

	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidDuration, raw, err)
	}

	return seconds / 3600, nil
}

func parseClock(hStr, mStr, sStr string) (float64, error) {
	hours, err := strconv.Atoi(hStr)
	if err != nil {
		return 0, fmt.Errorf("%w: could not parse hours %q: %w", ErrInvalidDuration, hStr, err)
	}
	minutes, err := strconv.Atoi(mStr)
	if err != nil {
		return 0, fmt.Errorf("%w: could not parse minutes %q: %w", ErrInvalidDuration, mStr, err)
	}
	seconds, err := strconv.Atoi(sStr)
	if err != nil {
		return 0, fmt.Errorf("%w: could not parse seconds %q: %w", ErrInvalidDuration, sStr, err)
	}

	if minutes > 59 {
		return 0, fmt.Errorf("%w: minute value out of range: %d", ErrInvalidDuration, minutes)
	}
	if seconds > 59 {
		return 0, fmt.Errorf("%w: second value out of range: %d", ErrInvalidDuration, seconds)
	}

	return float64(hours) + float64(minutes)/60 + float64(seconds)/3600, nil
}

// ParseDate reads a calendar date. The date is expected as YYYY-MM-DD; a full
// RFC 3339 timestamp is also accepted, in which case the date is taken in the
// timestamp's own offset.
func ParseDate(raw string) (summary.Date, error) {
	s := strings.TrimSpace(raw)

	t, err := time.Parse(DateLayout, s)
	if err == nil {
		return summary.DateOf(t), nil
	}

	t, err = time.Parse(time.RFC3339, s)
	if err == nil {
		return summary.DateOf(t), nil
	}

	return summary.Date{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, raw)
}
