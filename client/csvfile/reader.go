package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sporadisk/timesheet/timeentry"
)

// StdStream is the path that selects stdin (for input) or stdout (for output).
const StdStream = "-"

var ErrMissingColumn = errors.New("missing column")

// Column aliases, matched against normalized header names. The first alias
// is the canonical name used in error messages.
var columnAliases = map[string][]string{
	"start date":  {"start date", "startdate", "date", "rawstartdate"},
	"duration":    {"duration", "rawduration"},
	"project":     {"project"},
	"description": {"description"},
}

// Reader loads entries from a CSV export with a header row. It reads either
// a named file or an arbitrary stream.
type Reader struct {
	Path   string
	Stream io.Reader
	Comma  rune
}

func (r *Reader) Load(ctx context.Context) ([]timeentry.Entry, error) {
	if r.Stream != nil {
		return r.ReadFrom(r.Stream)
	}

	if r.Path == StdStream {
		return r.ReadFrom(os.Stdin)
	}

	f, err := os.Open(r.Path)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	return r.ReadFrom(f)
}

func (r *Reader) ReadFrom(in io.Reader) ([]timeentry.Entry, error) {
	cr := csv.NewReader(in)
	if r.Comma != 0 {
		cr.Comma = r.Comma
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []timeentry.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols, err := locateColumns(header)
	if err != nil {
		return nil, fmt.Errorf("locateColumns: %w", err)
	}

	entries := []timeentry.Entry{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv.Reader.Read: %w", err)
		}

		if blankRecord(record) {
			continue
		}

		line, _ := cr.FieldPos(0)
		if len(record) <= cols.max() {
			return nil, fmt.Errorf("line %d: expected at least %d fields, got %d", line, cols.max()+1, len(record))
		}

		entries = append(entries, timeentry.Entry{
			StartDate:   record[cols.startDate],
			Duration:    record[cols.duration],
			Project:     record[cols.project],
			Description: record[cols.description],
		})
	}

	return entries, nil
}

type columns struct {
	startDate   int
	duration    int
	project     int
	description int
}

func (c columns) max() int {
	return max(c.startDate, c.duration, c.project, c.description)
}

func locateColumns(header []string) (columns, error) {
	index := map[string]int{}
	for i, h := range header {
		name := normalizeHeader(h)
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	find := func(canonical string) (int, error) {
		for _, alias := range columnAliases[canonical] {
			if i, ok := index[alias]; ok {
				return i, nil
			}
		}
		return 0, fmt.Errorf("%w: %q", ErrMissingColumn, canonical)
	}

	var cols columns
	var err error
	if cols.startDate, err = find("start date"); err != nil {
		return cols, err
	}
	if cols.duration, err = find("duration"); err != nil {
		return cols, err
	}
	if cols.project, err = find("project"); err != nil {
		return cols, err
	}
	if cols.description, err = find("description"); err != nil {
		return cols, err
	}

	return cols, nil
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "_", " ")
	return strings.Join(strings.Fields(h), " ")
}

func blankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
