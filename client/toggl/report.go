package toggl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/sporadisk/timesheet/format"
	"github.com/sporadisk/timesheet/timeentry"
)

const nextRowHeader = "X-Next-Row-Number"

type searchRequest struct {
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	FirstRowNumber int    `json:"first_row_number,omitempty"`
}

// Row is one grouped row of the detailed report: a description/project pair
// with the time entries recorded under it.
type Row struct {
	UserID      int    `json:"user_id"`
	Username    string `json:"username"`
	ProjectID   *int64 `json:"project_id"`
	Description string `json:"description"`
	TimeEntries []Span `json:"time_entries"`
}

type Span struct {
	ID      int64     `json:"id"`
	Seconds int64     `json:"seconds"`
	Start   time.Time `json:"start"`
	Stop    time.Time `json:"stop"`
}

// Report holds the raw response pages alongside the parsed rows.
type Report struct {
	Raw  []json.RawMessage
	Rows []Row
}

// Fetch retrieves the detailed report for the configured workspace and date
// range, following pagination until the last page.
func (c *Client) Fetch(ctx context.Context) (*Report, error) {
	endpoint := fmt.Sprintf("/reports/api/v3/workspace/%s/search/time_entries", c.WorkspaceID)
	report := &Report{}
	body := searchRequest{
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
	}

	for {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal: %w", err)
		}

		resp, err := c.PostRequest(ctx, endpoint, bodyBytes)
		if err != nil {
			return nil, fmt.Errorf("c.PostRequest(%s): %w", endpoint, err)
		}

		err = resp.Expect(http.StatusOK)
		if err != nil {
			return nil, err
		}

		var rows []Row
		err = json.Unmarshal(resp.Body, &rows)
		if err != nil {
			return nil, fmt.Errorf("json.Unmarshal: %w", err)
		}

		report.Raw = append(report.Raw, json.RawMessage(resp.Body))
		report.Rows = append(report.Rows, rows...)

		next := resp.Header.Get(nextRowHeader)
		if next == "" {
			return report, nil
		}

		nextRow, err := strconv.Atoi(next)
		if err != nil {
			return nil, fmt.Errorf("invalid %s header %q: %w", nextRowHeader, next, err)
		}
		if nextRow <= body.FirstRowNumber {
			return nil, fmt.Errorf("%s header did not advance (%d)", nextRowHeader, nextRow)
		}
		body.FirstRowNumber = nextRow
	}
}

// Load implements timeentry.Loader: it fetches the report and flattens it into
// one entry per recorded time span.
func (c *Client) Load(ctx context.Context) ([]timeentry.Entry, error) {
	report, err := c.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("c.Fetch: %w", err)
	}

	if c.RawOutput != "" {
		err = report.WriteRaw(c.RawOutput)
		if err != nil {
			return nil, fmt.Errorf("report.WriteRaw: %w", err)
		}
	}

	if report.hasProjects() {
		err = c.GetProjects(ctx)
		if err != nil {
			return nil, fmt.Errorf("c.GetProjects: %w", err)
		}
	}

	entries := []timeentry.Entry{}
	for _, row := range report.Rows {
		project := c.projectName(row.ProjectID)
		for _, span := range row.TimeEntries {
			entries = append(entries, timeentry.Entry{
				StartDate:   span.Start.Format(format.DateLayout),
				Duration:    strconv.FormatInt(span.Seconds, 10),
				Project:     project,
				Description: row.Description,
			})
		}
	}

	return entries, nil
}

func (r *Report) hasProjects() bool {
	for _, row := range r.Rows {
		if row.ProjectID != nil {
			return true
		}
	}
	return false
}

// WriteRaw stores the raw response pages as a JSON array, one element per page.
func (r *Report) WriteRaw(path string) error {
	data, err := json.MarshalIndent(r.Raw, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}
	return nil
}
