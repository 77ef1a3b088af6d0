package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// hour formats
	TimeDecimal = "decimal" // fractional hours (default)
	TimeHMS     = "hms"     // hours, minutes and seconds
	TimeHM      = "hm"      // hours and minutes
	TimeM       = "m"       // minutes
)

// Hours renders fractional hours in the given time format.
func Hours(h float64, timeFormat string) string {
	switch timeFormat {
	case TimeM:
		return DurationM(HoursToDuration(h))
	case TimeHM:
		return DurationHM(HoursToDuration(h))
	case TimeHMS:
		return DurationHMS(HoursToDuration(h))
	default:
		return Decimal(h, 2)
	}
}

// Decimal renders fractional hours with a fixed number of decimals. A
// negative precision uses the smallest number of digits that represents the
// value exactly.
func Decimal(h float64, precision int) string {
	return strconv.FormatFloat(h, 'f', precision, 64)
}

func HoursToDuration(h float64) time.Duration {
	return time.Duration(math.Round(h * float64(time.Hour)))
}

func DurationM(d time.Duration) string {
	return fmt.Sprintf("%dm", int(math.Floor(d.Minutes())))
}

func DurationHM(d time.Duration) string {
	hours := int(math.Floor(d.Hours()))
	d = d - (time.Duration(hours) * time.Hour)
	minutes := int(math.Floor(d.Minutes()))

	parts := []string{}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || hours == 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}

	return strings.Join(parts, " ")
}

func DurationHMS(d time.Duration) string {
	hours := int(math.Floor(d.Hours()))
	d = d - (time.Duration(hours) * time.Hour)
	minutes := int(math.Floor(d.Minutes()))
	d = d - (time.Duration(minutes) * time.Minute)
	seconds := int(math.Floor(d.Seconds()))

	parts := []string{}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}

	return strings.Join(parts, " ")
}
