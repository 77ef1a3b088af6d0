// Package timesheet folds raw time entries into per-task, per-day hours and
// lays the result out as a report table.
package timesheet

import (
	"fmt"

	"github.com/sporadisk/timesheet/format"
	"github.com/sporadisk/timesheet/summary"
	"github.com/sporadisk/timesheet/task"
	"github.com/sporadisk/timesheet/timeentry"
)

// DayHours accumulates hours per calendar day for a single task.
type DayHours map[summary.Date]float64

// Result is the outcome of one aggregation pass. Days holds every date that
// appears in any of the task accumulators, and nothing else.
type Result struct {
	Tasks map[string]DayHours
	Days  map[summary.Date]struct{}
}

func newResult() *Result {
	return &Result{
		Tasks: map[string]DayHours{},
		Days:  map[summary.Date]struct{}{},
	}
}

func (r *Result) add(taskID string, date summary.Date, hours float64) {
	days, ok := r.Tasks[taskID]
	if !ok {
		days = DayHours{}
		r.Tasks[taskID] = days
	}

	days[date] += hours
	r.Days[date] = struct{}{}
}

// Hours returns the accumulated hours for a task on a day, and whether any
// entry contributed to that cell.
func (r *Result) Hours(taskID string, date summary.Date) (float64, bool) {
	days, ok := r.Tasks[taskID]
	if !ok {
		return 0, false
	}
	h, ok := days[date]
	return h, ok
}

// Aggregate folds entries, in order, into a Result. The pass is all or
// nothing: the first entry that fails to parse or resolve aborts it, and no
// result is returned. A nil resolver uses the entry description verbatim.
func Aggregate(entries []timeentry.Entry, resolver task.Resolver) (*Result, error) {
	if resolver == nil {
		resolver = task.Verbatim{}
	}
	resolver = task.NewMemo(resolver)

	res := newResult()
	for i, entry := range entries {
		date, err := format.ParseDate(entry.StartDate)
		if err != nil {
			return nil, fmt.Errorf("entry %d: format.ParseDate: %w", i+1, err)
		}

		hours, err := format.ParseHours(entry.Duration)
		if err != nil {
			return nil, fmt.Errorf("entry %d: format.ParseHours: %w", i+1, err)
		}

		taskID, err := resolver.Resolve(entry.Description, entry.Project)
		if err != nil {
			return nil, fmt.Errorf("entry %d: resolver.Resolve: %w", i+1, err)
		}

		res.add(taskID, date, hours)
	}

	return res, nil
}
