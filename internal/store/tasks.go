package store

import (
	"database/sql"
	"fmt"

	"github.com/kochan17/taskdash/internal/domain"
	"github.com/kochan17/taskdash/internal/events"
)

// TaskStore handles task table persistence.
type TaskStore struct {
	store *Store
}

// List returns all task rows in table order.
func (ts *TaskStore) List() ([]domain.Task, error) {
	return ts.list("SELECT project, title, deadline, status, source, url FROM tasks ORDER BY position")
}

// ListBySource returns task rows with the given source, in table order.
func (ts *TaskStore) ListBySource(source domain.Source) ([]domain.Task, error) {
	return ts.list("SELECT project, title, deadline, status, source, url FROM tasks WHERE source = ? ORDER BY position", string(source))
}

func (ts *TaskStore) list(query string, args ...interface{}) ([]domain.Task, error) {
	rows, err := ts.store.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.Project, &t.Title, &t.Deadline, &t.Status, &t.Source, &t.URL); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	return tasks, nil
}

// AppendManual adds one manually entered row at the end of the table.
// Manual rows are the only task rows that survive a sync.
func (ts *TaskStore) AppendManual(t domain.Task) error {
	t.Source = domain.SourceManual
	_, err := ts.store.db.Exec(`
		INSERT INTO tasks (position, project, title, deadline, status, source, url)
		VALUES ((SELECT COALESCE(MAX(position), 0) + 1 FROM tasks), ?, ?, ?, ?, ?, ?)
	`, t.Project, t.Title, t.Deadline, t.Status, string(t.Source), t.URL)
	if err != nil {
		return fmt.Errorf("failed to append manual task %q: %w", t.Title, err)
	}
	return nil
}

// Replace overwrites the whole task data region with the given rows in one
// transaction and logs a tasks.synced event for the run.
func (ts *TaskStore) Replace(runID string, tasks []domain.Task, payload map[string]interface{}) error {
	return ts.store.withTx(func(tx *sql.Tx, ew *events.Writer) error {
		if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
			return fmt.Errorf("failed to clear task table: %w", err)
		}

		for i, t := range tasks {
			if err := domain.ValidateSource(string(t.Source)); err != nil {
				return fmt.Errorf("task %q: %w", t.Title, err)
			}
			_, err := tx.Exec(`
				INSERT INTO tasks (position, project, title, deadline, status, source, url)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, i+1, t.Project, t.Title, t.Deadline, t.Status, string(t.Source), t.URL)
			if err != nil {
				return fmt.Errorf("failed to insert task %q: %w", t.Title, err)
			}
		}

		return ew.LogRun(tx, runID, "tasks", "tasks.synced", payload)
	})
}
