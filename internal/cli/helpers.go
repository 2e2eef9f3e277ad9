package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kochan17/taskdash/internal/config"
	"github.com/kochan17/taskdash/internal/db"
	"github.com/kochan17/taskdash/internal/domain"
	"github.com/kochan17/taskdash/internal/store"
)

// App holds the shared application context for commands.
type App struct {
	Config *config.Config
	DB     *db.DB
	Store  *store.Store
}

// Close releases resources held by the App. Safe to call multiple times.
func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
		a.DB = nil
	}
}

// openApp loads config, opens the database, and runs pending migrations.
func openApp(cmd *cobra.Command) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if dbFlag := cmd.Flag("db").Value.String(); dbFlag != "" {
		cfg.DBPath = dbFlag
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(); err != nil {
		database.Close()
		return nil, err
	}

	return &App{
		Config: cfg,
		DB:     database,
		Store:  store.New(database),
	}, nil
}

// taskRows converts tasks to render rows in task table column order.
func taskRows(tasks []domain.Task) [][]string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{t.Project, t.Title, t.Deadline, t.Status, string(t.Source), t.URL})
	}
	return rows
}

// tasksSnapshot renders the current task table as one TSV string, used for
// before/after diffing.
func tasksSnapshot(s *store.Store) (string, error) {
	tasks, err := s.Tasks.List()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(strings.Join([]string{t.Project, t.Title, t.Deadline, t.Status, string(t.Source), t.URL}, "\t"))
		b.WriteString("\n")
	}
	return b.String(), nil
}

var taskHeaders = []string{"プロジェクト", "タスク名", "締切", "ステータス", "ソース", "URL"}
