package store

import (
	"fmt"

	"github.com/kochan17/taskdash/internal/domain"
)

// SessionStore reads the work log. Rows are appended by hand; the
// aggregation pass only reads them.
type SessionStore struct {
	store *Store
}

// List returns all work sessions in entry order.
func (ss *SessionStore) List() ([]domain.Session, error) {
	rows, err := ss.store.db.Query(`
		SELECT seq, date, project, task_title, start_time, end_time, duration, note
		FROM work_sessions ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query work sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.Seq, &s.Date, &s.Project, &s.TaskTitle, &s.Start, &s.End, &s.Duration, &s.Note); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}

	return sessions, nil
}

// Append adds one session row at the end of the log.
func (ss *SessionStore) Append(s domain.Session) error {
	_, err := ss.store.db.Exec(`
		INSERT INTO work_sessions (date, project, task_title, start_time, end_time, duration, note)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, s.Date, s.Project, s.TaskTitle, s.Start, s.End, s.Duration, s.Note)
	if err != nil {
		return fmt.Errorf("failed to append session: %w", err)
	}
	return nil
}

// SettingsStore handles the project settings table.
type SettingsStore struct {
	store *Store
}

// List returns all project settings.
func (ss *SettingsStore) List() ([]domain.ProjectSetting, error) {
	rows, err := ss.store.db.Query(`
		SELECT project, revenue, type, note FROM project_settings ORDER BY project
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query project settings: %w", err)
	}
	defer rows.Close()

	var settings []domain.ProjectSetting
	for rows.Next() {
		var s domain.ProjectSetting
		if err := rows.Scan(&s.Project, &s.Revenue, &s.Type, &s.Note); err != nil {
			return nil, fmt.Errorf("failed to scan settings row: %w", err)
		}
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settings: %w", err)
	}

	return settings, nil
}

// Map returns settings keyed by project name.
func (ss *SettingsStore) Map() (map[string]domain.ProjectSetting, error) {
	settings, err := ss.List()
	if err != nil {
		return nil, err
	}

	m := make(map[string]domain.ProjectSetting, len(settings))
	for _, s := range settings {
		m[s.Project] = s
	}
	return m, nil
}

// Upsert inserts or updates one project setting.
func (ss *SettingsStore) Upsert(s domain.ProjectSetting) error {
	if s.Type != "" {
		if err := domain.ValidateProjectType(string(s.Type)); err != nil {
			return err
		}
	}

	_, err := ss.store.db.Exec(`
		INSERT INTO project_settings (project, revenue, type, note)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(project) DO UPDATE SET revenue = excluded.revenue, type = excluded.type, note = excluded.note
	`, s.Project, s.Revenue, string(s.Type), s.Note)
	if err != nil {
		return fmt.Errorf("failed to upsert setting for %q: %w", s.Project, err)
	}
	return nil
}
