package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sporadisk/timesheet/format"
	"github.com/sporadisk/timesheet/summary"
)

var ErrOutputExists = errors.New("output file exists")

// Writer renders a timesheet table as CSV: a "Task" column followed by one
// column per day, headed by the day as YYYY-MM-DD.
type Writer struct {
	Path   string
	Stream io.Writer

	// Precision is the number of decimals written for hours; -1 writes the
	// shortest exact value.
	Precision int
	// BlankZero writes days without activity as empty cells instead of 0.
	BlankZero bool
	// Totals adds a "Total" column and a "Total" row.
	Totals bool

	// Overwrite replaces an existing file without asking. Otherwise Confirm
	// is asked, and a missing Confirm means no.
	Overwrite bool
	Confirm   func(prompt string) bool
}

func (w *Writer) OutputTable(table summary.Table) error {
	if w.Stream != nil {
		return w.WriteTable(w.Stream, table)
	}

	if w.Path == StdStream || w.Path == "" {
		return w.WriteTable(os.Stdout, table)
	}

	err := w.checkOverwrite()
	if err != nil {
		return err
	}

	f, err := os.Create(w.Path)
	if err != nil {
		return fmt.Errorf("os.Create: %w", err)
	}
	defer f.Close()

	err = w.WriteTable(f, table)
	if err != nil {
		return err
	}

	return f.Close()
}

func (w *Writer) checkOverwrite() error {
	finfo, err := os.Stat(w.Path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("os.Stat: %w", err)
	}

	if finfo.IsDir() {
		return fmt.Errorf("output path %s is a directory", w.Path)
	}

	if w.Overwrite {
		return nil
	}

	if w.Confirm != nil && w.Confirm(fmt.Sprintf("%s already exists. Overwrite?", w.Path)) {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrOutputExists, w.Path)
}

func (w *Writer) WriteTable(out io.Writer, table summary.Table) error {
	cw := csv.NewWriter(out)

	header := make([]string, 0, len(table.Days)+2)
	header = append(header, "Task")
	for _, day := range table.Days {
		header = append(header, day.String())
	}
	if w.Totals {
		header = append(header, "Total")
	}

	err := cw.Write(header)
	if err != nil {
		return fmt.Errorf("csv.Writer.Write: %w", err)
	}

	for _, row := range table.Rows {
		record := append([]string{row.Task}, w.cells(row.Hours)...)
		if w.Totals {
			record = append(record, w.cell(row.Total()))
		}

		err = cw.Write(record)
		if err != nil {
			return fmt.Errorf("csv.Writer.Write: %w", err)
		}
	}

	if w.Totals {
		record := append([]string{"Total"}, w.cells(table.DayTotals())...)
		record = append(record, w.cell(table.Total()))

		err = cw.Write(record)
		if err != nil {
			return fmt.Errorf("csv.Writer.Write: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func (w *Writer) cells(hours []float64) []string {
	out := make([]string, len(hours))
	for i, h := range hours {
		out[i] = w.cell(h)
	}
	return out
}

func (w *Writer) cell(h float64) string {
	if h == 0 && w.BlankZero {
		return ""
	}
	return format.Decimal(h, w.Precision)
}
