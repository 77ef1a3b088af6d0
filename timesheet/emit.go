package timesheet

import (
	"maps"
	"slices"

	"github.com/sporadisk/timesheet/summary"
)

// Emit lays a Result out as a table. Columns are the distinct days in
// chronological order; rows are tasks in lexicographic order, so identical
// input always gives an identical table. Days without activity for a task
// hold 0.
func Emit(res *Result) summary.Table {
	if res == nil {
		return summary.Table{Days: []summary.Date{}, Rows: []summary.Row{}}
	}

	days := slices.SortedFunc(maps.Keys(res.Days), summary.Date.Compare)
	taskIDs := slices.Sorted(maps.Keys(res.Tasks))

	table := summary.Table{
		Days: days,
		Rows: make([]summary.Row, 0, len(taskIDs)),
	}

	for _, taskID := range taskIDs {
		dayHours := res.Tasks[taskID]
		row := summary.Row{
			Task:  taskID,
			Hours: make([]float64, len(days)),
		}
		for i, day := range days {
			row.Hours[i] = dayHours[day]
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}
