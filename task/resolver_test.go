package task

import (
	"errors"
	"fmt"
	"testing"
)

func TestVerbatim(t *testing.T) {
	got, err := Verbatim{}.Resolve("Task1", "ProjectA")
	if err != nil {
		t.Errorf("Resolve: %s", err.Error())
		return
	}
	if got != "Task1" {
		t.Errorf("expected %q, got %q", "Task1", got)
	}
}

func TestTemplate(t *testing.T) {
	tests := []struct {
		text        string
		description string
		project     string
		expect      string
	}{
		{`{{.Project}}: {{.Description}}`, "Task1", "ProjectA", "ProjectA: Task1"},
		{`{{.Project | upper}}-{{.Description | lower}}`, "Review PR", "web", "WEB-review pr"},
		{`{{.Description | title}}`, "sprint planning", "", "Sprint Planning"},
		{`  {{.Description | trim}}  `, "  padded ", "", "padded"},
	}

	for _, test := range tests {
		tmpl, err := NewTemplate(test.text)
		if err != nil {
			t.Errorf("NewTemplate(%q): %s", test.text, err.Error())
			continue
		}

		got, err := tmpl.Resolve(test.description, test.project)
		if err != nil {
			t.Errorf("Resolve: %s", err.Error())
			continue
		}

		if got != test.expect {
			t.Errorf("template %q: expected %q, got %q", test.text, test.expect, got)
		}
	}
}

func TestTemplateErrors(t *testing.T) {
	_, err := NewTemplate(`{{.Project`)
	if err == nil {
		t.Errorf("expected a parse error")
	}

	tmpl, err := NewTemplate(`{{.Project}}`)
	if err != nil {
		t.Errorf("NewTemplate: %s", err.Error())
		return
	}

	_, err = tmpl.Resolve("Task1", "")
	if !errors.Is(err, ErrResolution) {
		t.Errorf("expected ErrResolution for an empty task name, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	dir := NewMapDirectory([]Mapping{
		{Description: "Standup", Project: "", Task: "MEET-1"},
		{Description: "Standup", Project: "Billing", Task: "BILL-7"},
		{Description: "Fix login", Project: "Web", Task: "WEB-42"},
	})

	lookup := &Lookup{Directory: dir}

	tests := []struct {
		description string
		project     string
		expect      string
	}{
		{"Standup", "Web", "MEET-1"},
		{"standup", "billing", "BILL-7"},
		{" Fix login ", "WEB", "WEB-42"},
	}

	for _, test := range tests {
		got, err := lookup.Resolve(test.description, test.project)
		if err != nil {
			t.Errorf("Resolve(%q, %q): %s", test.description, test.project, err.Error())
			continue
		}
		if got != test.expect {
			t.Errorf("Resolve(%q, %q): expected %q, got %q", test.description, test.project, test.expect, got)
		}
	}

	_, err := lookup.Resolve("Fix login", "Mobile")
	if !errors.Is(err, ErrResolution) {
		t.Errorf("expected ErrResolution for an unmapped entry, got %v", err)
	}

	lookup.Fallback = Verbatim{}
	got, err := lookup.Resolve("Fix login", "Mobile")
	if err != nil {
		t.Errorf("Resolve with fallback: %s", err.Error())
		return
	}
	if got != "Fix login" {
		t.Errorf("expected the fallback to be used, got %q", got)
	}
}

type brokenDirectory struct{}

func (brokenDirectory) Find(description, project string) (string, bool, error) {
	return "", false, fmt.Errorf("ticket system unavailable")
}

func TestLookupDirectoryFailure(t *testing.T) {
	lookup := &Lookup{Directory: brokenDirectory{}, Fallback: Verbatim{}}

	_, err := lookup.Resolve("Task1", "ProjectA")
	if !errors.Is(err, ErrResolution) {
		t.Errorf("expected ErrResolution, got %v", err)
		return
	}

	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Errorf("expected a *ResolutionError")
		return
	}
	if resErr.Description != "Task1" || resErr.Project != "ProjectA" {
		t.Errorf("unexpected error context: %q / %q", resErr.Description, resErr.Project)
	}
}

// counter gives a new answer on every call.
type counter struct {
	calls int
}

func (c *counter) Resolve(description, project string) (string, error) {
	c.calls++
	return fmt.Sprintf("%s-%d", description, c.calls), nil
}

func TestMemo(t *testing.T) {
	c := &counter{}
	memo := NewMemo(c)

	first, _ := memo.Resolve("Task1", "ProjectA")
	second, _ := memo.Resolve("Task1", "ProjectA")
	other, _ := memo.Resolve("Task1", "ProjectB")

	if first != second {
		t.Errorf("expected a stable answer within one memo, got %q and %q", first, second)
	}
	if other == first {
		t.Errorf("expected a different pair to be resolved separately")
	}
	if c.calls != 2 {
		t.Errorf("expected 2 calls to the underlying resolver, got %d", c.calls)
	}
}

type plainFailure struct{}

func (plainFailure) Resolve(description, project string) (string, error) {
	return "", fmt.Errorf("boom")
}

func TestMemoWrapsPlainErrors(t *testing.T) {
	_, err := NewMemo(plainFailure{}).Resolve("Task1", "ProjectA")
	if !errors.Is(err, ErrResolution) {
		t.Errorf("expected ErrResolution, got %v", err)
	}
}

func TestChain(t *testing.T) {
	first := NewMapDirectory([]Mapping{{Description: "Standup", Task: "MEET-1"}})
	second := NewMapDirectory([]Mapping{
		{Description: "Standup", Task: "IGNORED"},
		{Description: "Review", Task: "REV-2"},
	})
	chain := Chain{first, second}

	got, found, err := chain.Find("Standup", "")
	if err != nil || !found || got != "MEET-1" {
		t.Errorf("expected the first directory to win, got (%q, %t, %v)", got, found, err)
	}

	got, found, _ = chain.Find("Review", "")
	if !found || got != "REV-2" {
		t.Errorf("expected the second directory to answer, got (%q, %t)", got, found)
	}

	_, found, _ = chain.Find("Lunch", "")
	if found {
		t.Errorf("expected no match")
	}

	_, _, err = Chain{brokenDirectory{}, second}.Find("Review", "")
	if err == nil {
		t.Errorf("expected a directory error to stop the chain")
	}
}
