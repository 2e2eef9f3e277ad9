// Package store provides the persistence layer over the SQLite tables,
// handling transactions and run event logging.
package store

import (
	"database/sql"
	"fmt"

	"github.com/kochan17/taskdash/internal/db"
	"github.com/kochan17/taskdash/internal/events"
)

// Store is the root store that provides access to domain-specific stores.
type Store struct {
	db *db.DB

	// Domain-specific stores
	Tasks     *TaskStore
	Sessions  *SessionStore
	Settings  *SettingsStore
	Dashboard *DashboardStore
}

// New creates a new Store wrapping the given database connection.
func New(database *db.DB) *Store {
	s := &Store{db: database}
	s.Tasks = &TaskStore{store: s}
	s.Sessions = &SessionStore{store: s}
	s.Settings = &SettingsStore{store: s}
	s.Dashboard = &DashboardStore{store: s}
	return s
}

// DB returns the underlying database connection (for read-only queries).
func (s *Store) DB() *db.DB {
	return s.db
}

// withTx executes fn within a transaction. If fn returns nil, the
// transaction is committed; otherwise it is rolled back.
func (s *Store) withTx(fn func(tx *sql.Tx, ew *events.Writer) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ew := events.NewWriter(s.db.DB)
	if err := fn(tx, ew); err != nil {
		return err
	}

	return tx.Commit()
}
