package events

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/kochan17/taskdash/internal/domain"
)

// Writer handles writing events to the run event log
type Writer struct {
	db *sql.DB
}

// NewWriter creates a new event writer
func NewWriter(db *sql.DB) *Writer {
	return &Writer{db: db}
}

// LogEvent writes an event to the event log
func (w *Writer) LogEvent(tx *sql.Tx, event *domain.Event) error {
	query := `
		INSERT INTO event_log (run_id, resource_type, event_type, payload)
		VALUES (?, ?, ?, ?)
	`

	executor := w.getExecutor(tx)
	_, err := executor.Exec(query, event.RunID, event.ResourceType, event.EventType, event.Payload)
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}

// LogRun logs a completed pass for a resource with a structured payload.
func (w *Writer) LogRun(tx *sql.Tx, runID, resourceType, eventType string, payload map[string]interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	payloadStr := string(data)
	return w.LogEvent(tx, &domain.Event{
		RunID:        runID,
		ResourceType: resourceType,
		EventType:    eventType,
		Payload:      &payloadStr,
	})
}

type executor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func (w *Writer) getExecutor(tx *sql.Tx) executor {
	if tx != nil {
		return tx
	}
	return w.db
}
