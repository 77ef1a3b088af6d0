package timeentry

import "context"

// Entry is a raw time-tracking record, as read from a CSV export or the
// Toggl reports API. Fields are kept as text; interpretation happens during
// aggregation.
type Entry struct {
	StartDate   string // expected: YYYY-MM-DD
	Duration    string // HH:MM:SS, or a number of seconds
	Project     string
	Description string
}

// Loader produces the full set of entries for one report. Blocking I/O
// belongs here, before anything is aggregated.
type Loader interface {
	Load(ctx context.Context) ([]Entry, error)
}

type Receiver interface {
	Receive(entries []Entry) error
}

type Subscriber interface {
	Subscribe(receiver Receiver) error
}
