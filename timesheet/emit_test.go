package timesheet

import (
	"math"
	"testing"

	"github.com/sporadisk/timesheet/timeentry"
)

func TestEmit(t *testing.T) {
	res, err := Aggregate([]timeentry.Entry{
		entry("2023-10-02", "03:00:00", "ProjectB", "Task1"),
		entry("2023-10-01", "02:30:00", "ProjectA", "Task1"),
		entry("2023-10-01", "01:00:00", "ProjectA", "Task2"),
		entry("2023-09-28", "00:30:00", "ProjectA", "Alpha"),
	}, nil)
	if err != nil {
		t.Errorf("Aggregate: %s", err.Error())
		return
	}

	table := Emit(res)

	expectedDays := []string{"2023-09-28", "2023-10-01", "2023-10-02"}
	if len(table.Days) != len(expectedDays) {
		t.Errorf("day count mismatch: expected %d, got %d", len(expectedDays), len(table.Days))
		return
	}
	for i, d := range expectedDays {
		if table.Days[i].String() != d {
			t.Errorf("day %d: expected %s, got %s", i, d, table.Days[i])
		}
	}

	expectedRows := []struct {
		task  string
		hours []float64
	}{
		{"Alpha", []float64{0.5, 0, 0}},
		{"Task1", []float64{0, 2.5, 3}},
		{"Task2", []float64{0, 1, 0}},
	}

	if len(table.Rows) != len(expectedRows) {
		t.Errorf("row count mismatch: expected %d, got %d", len(expectedRows), len(table.Rows))
		return
	}

	for i, er := range expectedRows {
		row := table.Rows[i]
		if row.Task != er.task {
			t.Errorf("row %d: expected task %q, got %q", i, er.task, row.Task)
			continue
		}
		if len(row.Hours) != len(table.Days) {
			t.Errorf("row %q has %d cells, expected %d", row.Task, len(row.Hours), len(table.Days))
			continue
		}
		for j, h := range er.hours {
			if math.Abs(row.Hours[j]-h) > tolerance {
				t.Errorf("row %q, day %s: expected %f, got %f", row.Task, table.Days[j], h, row.Hours[j])
			}
		}
	}

	if math.Abs(table.Total()-7) > tolerance {
		t.Errorf("expected a total of 7h, got %f", table.Total())
	}

	dayTotals := table.DayTotals()
	if math.Abs(dayTotals[1]-3.5) > tolerance {
		t.Errorf("expected 3.5h on 2023-10-01, got %f", dayTotals[1])
	}
}

func TestEmitNoActivityIsZero(t *testing.T) {
	res, err := Aggregate([]timeentry.Entry{
		entry("2023-10-01", "01:00:00", "P", "Task1"),
		entry("2023-10-02", "01:00:00", "P", "Task2"),
	}, nil)
	if err != nil {
		t.Errorf("Aggregate: %s", err.Error())
		return
	}

	// The accumulator has no key for the idle day, the table has a zero.
	if _, ok := res.Hours("Task1", date("2023-10-02")); ok {
		t.Errorf("expected no accumulator key for an idle day")
	}

	table := Emit(res)
	if table.Rows[0].Task != "Task1" || table.Rows[0].Hours[1] != 0 {
		t.Errorf("expected a zero cell for Task1 on 2023-10-02, got %v", table.Rows[0].Hours)
	}
}

func TestEmitDeterministic(t *testing.T) {
	entries := []timeentry.Entry{
		entry("2023-10-03", "01:00:00", "P", "zeta"),
		entry("2023-10-01", "01:00:00", "P", "Beta"),
		entry("2023-10-02", "01:00:00", "P", "alpha"),
	}
	reversed := []timeentry.Entry{entries[2], entries[1], entries[0]}

	a, _ := Aggregate(entries, nil)
	b, _ := Aggregate(reversed, nil)
	ta, tb := Emit(a), Emit(b)

	for i := range ta.Rows {
		if ta.Rows[i].Task != tb.Rows[i].Task {
			t.Errorf("row %d differs: %q vs %q", i, ta.Rows[i].Task, tb.Rows[i].Task)
		}
	}

	// byte order: upper case sorts before lower case
	expected := []string{"Beta", "alpha", "zeta"}
	for i, e := range expected {
		if ta.Rows[i].Task != e {
			t.Errorf("row %d: expected %q, got %q", i, e, ta.Rows[i].Task)
		}
	}
}

func TestEmitEmpty(t *testing.T) {
	for _, table := range []struct {
		name string
		res  *Result
	}{
		{"nil result", nil},
		{"empty result", newResult()},
	} {
		got := Emit(table.res)
		if len(got.Days) != 0 || len(got.Rows) != 0 {
			t.Errorf("%s: expected an empty table, got %d days and %d rows", table.name, len(got.Days), len(got.Rows))
		}
		if !got.Empty() {
			t.Errorf("%s: expected Empty() to be true", table.name)
		}
	}
}
