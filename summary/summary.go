package summary

import (
	"fmt"
	"time"
)

// Date is a calendar day without a time zone. It is comparable, so it can be
// used as a map key.
type Date struct {
	Year  int
	Month int
	Day   int
}

func DateOf(t time.Time) Date {
	return Date{
		Year:  t.Year(),
		Month: int(t.Month()),
		Day:   t.Day(),
	}
}

func (sd Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", sd.Year, sd.Month, sd.Day)
}

func (sd Date) Before(other Date) bool {
	if sd.Year != other.Year {
		return sd.Year < other.Year
	}
	if sd.Month != other.Month {
		return sd.Month < other.Month
	}
	return sd.Day < other.Day
}

func (sd Date) Compare(other Date) int {
	switch {
	case sd.Before(other):
		return -1
	case other.Before(sd):
		return 1
	default:
		return 0
	}
}

// Table is the rendered timesheet: one row per task, one column per day.
// Every row's Hours slice is aligned with Days. A day without activity for a
// task holds 0.
type Table struct {
	Days []Date
	Rows []Row
}

type Row struct {
	Task  string
	Hours []float64
}

func (r Row) Total() float64 {
	var total float64
	for _, h := range r.Hours {
		total += h
	}
	return total
}

func (t Table) DayTotals() []float64 {
	totals := make([]float64, len(t.Days))
	for _, r := range t.Rows {
		for i, h := range r.Hours {
			totals[i] += h
		}
	}
	return totals
}

func (t Table) Total() float64 {
	var total float64
	for _, r := range t.Rows {
		total += r.Total()
	}
	return total
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

type Output interface {
	OutputTable(table Table) error
}
