package toggl

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sporadisk/timesheet/client"
	"github.com/sporadisk/timesheet/format"
)

const pageOne = `[
  {"user_id": 1, "username": "kim", "project_id": 77, "description": "Task1",
   "time_entries": [
     {"id": 10, "seconds": 9000, "start": "2023-10-01T08:00:00+02:00", "stop": "2023-10-01T10:30:00+02:00"},
     {"id": 11, "seconds": 10800, "start": "2023-10-02T08:00:00+02:00", "stop": "2023-10-02T11:00:00+02:00"}
   ]}
]`

const pageTwo = `[
  {"user_id": 1, "username": "kim", "project_id": null, "description": "Task2",
   "time_entries": [
     {"id": 12, "seconds": 3600, "start": "2023-10-01T13:00:00+02:00", "stop": "2023-10-01T14:00:00+02:00"}
   ]}
]`

const projectList = `[{"id": 77, "name": "ProjectA", "active": true}]`

type fakeToggl struct {
	t        *testing.T
	requests []searchRequest
	auth     []string
	status   int
}

func (f *fakeToggl) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /reports/api/v3/workspace/42/search/time_entries", func(w http.ResponseWriter, r *http.Request) {
		f.auth = append(f.auth, r.Header.Get("Authorization"))

		var body searchRequest
		err := json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			f.t.Errorf("decoding request body: %s", err.Error())
		}
		f.requests = append(f.requests, body)

		if f.status != 0 {
			w.WriteHeader(f.status)
			w.Write([]byte(`{"error":"nope"}`))
			return
		}

		if body.FirstRowNumber == 0 {
			w.Header().Set(nextRowHeader, "51")
			w.Write([]byte(pageOne))
			return
		}
		w.Write([]byte(pageTwo))
	})
	mux.HandleFunc("GET /api/v9/workspaces/42/projects", func(w http.ResponseWriter, r *http.Request) {
		f.auth = append(f.auth, r.Header.Get("Authorization"))
		w.Write([]byte(projectList))
	})
	return mux
}

func newTestClient(t *testing.T, srv *httptest.Server, c *Client) *Client {
	c.Endpoint = srv.URL
	c.WorkspaceID = "42"
	c.StartDate = "2023-10-01"
	c.EndDate = "2023-10-08"

	err := c.Init(context.Background())
	if err != nil {
		t.Fatalf("Init: %s", err.Error())
	}
	return c
}

func TestLoad(t *testing.T) {
	fake := &fakeToggl{t: t}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	rawPath := filepath.Join(t.TempDir(), "raw.json")
	c := newTestClient(t, srv, &Client{APIToken: "secret", RawOutput: rawPath})

	entries, err := c.Load(context.Background())
	if err != nil {
		t.Errorf("Load: %s", err.Error())
		return
	}

	if len(fake.requests) != 2 {
		t.Errorf("expected 2 paged requests, got %d", len(fake.requests))
		return
	}
	if fake.requests[0].StartDate != "2023-10-01" || fake.requests[0].EndDate != "2023-10-08" {
		t.Errorf("unexpected date range in request: %#v", fake.requests[0])
	}
	if fake.requests[1].FirstRowNumber != 51 {
		t.Errorf("expected the second page to start at row 51, got %d", fake.requests[1].FirstRowNumber)
	}

	// "secret:api_token", base64
	for _, auth := range fake.auth {
		if auth != "Basic c2VjcmV0OmFwaV90b2tlbg==" {
			t.Errorf("unexpected Authorization header %q", auth)
		}
	}

	expected := []struct {
		date, duration, project, description string
	}{
		{"2023-10-01", "9000", "ProjectA", "Task1"},
		{"2023-10-02", "10800", "ProjectA", "Task1"},
		{"2023-10-01", "3600", "", "Task2"},
	}

	if len(entries) != len(expected) {
		t.Errorf("entry count mismatch: expected %d, got %d", len(expected), len(entries))
		return
	}

	for i, e := range expected {
		got := entries[i]
		if got.StartDate != e.date || got.Duration != e.duration || got.Project != e.project || got.Description != e.description {
			t.Errorf("entry %d: expected %v, got %#v", i, e, got)
		}
	}

	data, err := os.ReadFile(rawPath)
	if err != nil {
		t.Errorf("reading raw output: %s", err.Error())
		return
	}
	var pages []json.RawMessage
	err = json.Unmarshal(data, &pages)
	if err != nil || len(pages) != 2 {
		t.Errorf("expected 2 raw pages, got %d (%v)", len(pages), err)
	}
}

func TestLoadBearer(t *testing.T) {
	fake := &fakeToggl{t: t}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := newTestClient(t, srv, &Client{BearerToken: "tok"})

	_, err := c.Fetch(context.Background())
	if err != nil {
		t.Errorf("Fetch: %s", err.Error())
		return
	}

	for _, auth := range fake.auth {
		if auth != "Bearer tok" {
			t.Errorf("unexpected Authorization header %q", auth)
		}
	}
}

func TestFetchNonSuccess(t *testing.T) {
	fake := &fakeToggl{t: t, status: http.StatusForbidden}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := newTestClient(t, srv, &Client{APIToken: "secret"})

	report, err := c.Fetch(context.Background())
	if err == nil {
		t.Errorf("expected an error for a 403 response")
		return
	}
	if report != nil {
		t.Errorf("expected no report on failure")
	}

	var statusErr *client.StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusForbidden {
		t.Errorf("expected a StatusError with code 403, got %v", err)
	}
}

func TestInitValidation(t *testing.T) {
	tests := []struct {
		name   string
		client Client
	}{
		{"missing workspace", Client{APIToken: "x", StartDate: "2023-10-01", EndDate: "2023-10-02"}},
		{"missing credentials", Client{WorkspaceID: "42", StartDate: "2023-10-01", EndDate: "2023-10-02"}},
		{"bad start date", Client{WorkspaceID: "42", APIToken: "x", StartDate: "01.10.2023", EndDate: "2023-10-02"}},
		{"end before start", Client{WorkspaceID: "42", APIToken: "x", StartDate: "2023-10-05", EndDate: "2023-10-02"}},
	}

	for _, test := range tests {
		err := test.client.Init(context.Background())
		if err == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}

	c := Client{WorkspaceID: "42", APIToken: "x", StartDate: "yesterday", EndDate: "2023-10-02"}
	err := c.Init(context.Background())
	if !errors.Is(err, format.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}
