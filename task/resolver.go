// Package task decides which timesheet row a raw entry belongs to.
package task

import (
	"errors"
	"fmt"
)

var ErrResolution = errors.New("task resolution failed")

// Resolver derives a task identity from an entry's description and project.
// Entries that resolve to the same identity share a row in the report.
type Resolver interface {
	Resolve(description, project string) (string, error)
}

// ResolutionError reports an unrecoverable failure of a resolver strategy.
type ResolutionError struct {
	Description string
	Project     string
	Err         error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving task for %q (project %q): %s", e.Description, e.Project, e.Err.Error())
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

func (e *ResolutionError) Is(target error) bool {
	return target == ErrResolution
}

func resolutionErrorf(description, project, format string, v ...any) *ResolutionError {
	return &ResolutionError{
		Description: description,
		Project:     project,
		Err:         fmt.Errorf(format, v...),
	}
}

// Verbatim uses the description as the task identity.
type Verbatim struct{}

func (Verbatim) Resolve(description, project string) (string, error) {
	return description, nil
}

// Memo remembers the first answer given for each (description, project) pair,
// so a strategy that may change its mind between calls still gives one answer
// per aggregation pass. A Memo must not outlive the pass it was created for.
type Memo struct {
	resolver Resolver
	seen     map[memoKey]string
}

type memoKey struct {
	description string
	project     string
}

func NewMemo(resolver Resolver) *Memo {
	return &Memo{
		resolver: resolver,
		seen:     map[memoKey]string{},
	}
}

func (m *Memo) Resolve(description, project string) (string, error) {
	key := memoKey{description: description, project: project}
	if taskID, ok := m.seen[key]; ok {
		return taskID, nil
	}

	taskID, err := m.resolver.Resolve(description, project)
	if err != nil {
		var resErr *ResolutionError
		if errors.As(err, &resErr) {
			return "", err
		}
		return "", &ResolutionError{Description: description, Project: project, Err: err}
	}

	m.seen[key] = taskID
	return taskID, nil
}
