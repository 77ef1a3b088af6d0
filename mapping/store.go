// Package mapping keeps a task directory in SQLite, for teams that map time
// entries to ticket numbers outside the time tracker.
package mapping

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sporadisk/timesheet/task"
	_ "modernc.org/sqlite"
)

const currentVersion = 1

type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("exec pragma: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		_, err := s.db.Exec(`
			CREATE TABLE IF NOT EXISTS task_mappings (
				description TEXT NOT NULL,
				project     TEXT NOT NULL DEFAULT '',
				task        TEXT NOT NULL,
				PRIMARY KEY (description, project)
			)`)
		if err != nil {
			return fmt.Errorf("migrate v1: %w", err)
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

// Set creates or replaces the mapping for a description/project pair. An
// empty project applies to every project without a mapping of its own.
func (s *Store) Set(m task.Mapping) error {
	if strings.TrimSpace(m.Description) == "" || strings.TrimSpace(m.Task) == "" {
		return fmt.Errorf("description and task are required")
	}

	_, err := s.db.Exec(
		`INSERT INTO task_mappings (description, project, task) VALUES (?, ?, ?)
		 ON CONFLICT (description, project) DO UPDATE SET task = excluded.task`,
		normalize(m.Description), normalize(m.Project), strings.TrimSpace(m.Task),
	)
	if err != nil {
		return fmt.Errorf("upsert mapping: %w", err)
	}
	return nil
}

func (s *Store) Delete(description, project string) error {
	_, err := s.db.Exec(
		"DELETE FROM task_mappings WHERE description = ? AND project = ?",
		normalize(description), normalize(project),
	)
	if err != nil {
		return fmt.Errorf("delete mapping: %w", err)
	}
	return nil
}

func (s *Store) List() ([]task.Mapping, error) {
	rows, err := s.db.Query("SELECT description, project, task FROM task_mappings ORDER BY description, project")
	if err != nil {
		return nil, fmt.Errorf("list mappings: %w", err)
	}
	defer rows.Close()

	var mappings []task.Mapping
	for rows.Next() {
		var m task.Mapping
		if err := rows.Scan(&m.Description, &m.Project, &m.Task); err != nil {
			return nil, fmt.Errorf("scan mapping: %w", err)
		}
		mappings = append(mappings, m)
	}
	return mappings, rows.Err()
}

// Find implements task.Directory: the exact project wins over the wildcard.
func (s *Store) Find(description, project string) (string, bool, error) {
	var taskID string
	err := s.db.QueryRow(
		`SELECT task FROM task_mappings
		 WHERE description = ? AND project IN (?, '')
		 ORDER BY project = '' LIMIT 1`,
		normalize(description), normalize(project),
	).Scan(&taskID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("find mapping: %w", err)
	}
	return taskID, true, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
