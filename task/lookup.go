package task

import "strings"

// Directory maps entries to task identities kept outside the time tracker,
// such as ticket numbers.
type Directory interface {
	Find(description, project string) (taskID string, found bool, err error)
}

// Lookup resolves through a Directory. Pairs the directory does not know are
// handed to Fallback; without a fallback they are a resolution failure, since
// dropping them would under-report hours.
type Lookup struct {
	Directory Directory
	Fallback  Resolver
}

func (l *Lookup) Resolve(description, project string) (string, error) {
	taskID, found, err := l.Directory.Find(description, project)
	if err != nil {
		return "", resolutionErrorf(description, project, "Directory.Find: %w", err)
	}

	if found {
		return taskID, nil
	}

	if l.Fallback == nil {
		return "", resolutionErrorf(description, project, "no task mapping found")
	}

	return l.Fallback.Resolve(description, project)
}

type Mapping struct {
	Description string
	Project     string // empty matches any project
	Task        string
}

// MapDirectory is an in-memory Directory. Descriptions and projects are
// matched case-insensitively, exact project first, then the wildcard.
type MapDirectory struct {
	mappings map[memoKey]string
}

func NewMapDirectory(mappings []Mapping) *MapDirectory {
	md := &MapDirectory{mappings: map[memoKey]string{}}
	for _, m := range mappings {
		md.mappings[normalizedKey(m.Description, m.Project)] = m.Task
	}
	return md
}

func (md *MapDirectory) Find(description, project string) (string, bool, error) {
	taskID, ok := md.mappings[normalizedKey(description, project)]
	if ok {
		return taskID, true, nil
	}

	taskID, ok = md.mappings[normalizedKey(description, "")]
	return taskID, ok, nil
}

func normalizedKey(description, project string) memoKey {
	return memoKey{
		description: strings.ToLower(strings.TrimSpace(description)),
		project:     strings.ToLower(strings.TrimSpace(project)),
	}
}

// Chain asks each directory in turn and returns the first match.
type Chain []Directory

func (c Chain) Find(description, project string) (string, bool, error) {
	for _, dir := range c {
		taskID, found, err := dir.Find(description, project)
		if err != nil || found {
			return taskID, found, err
		}
	}
	return "", false, nil
}
