package store

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/kochan17/taskdash/internal/domain"
	"github.com/kochan17/taskdash/internal/events"
)

const targetRateKey = "target_hourly_rate"

// DashboardStore handles the dashboard summary region. The target hourly
// rate cell is operator-owned: it is read before recomputation and never
// included in the bulk overwrite.
type DashboardStore struct {
	store *Store
}

// TargetRate reads the operator-set target hourly rate. Returns 0 when the
// cell is empty or not yet created.
func (ds *DashboardStore) TargetRate() (int64, error) {
	var value string
	err := ds.store.db.QueryRow("SELECT value FROM dashboard WHERE key = ?", targetRateKey).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read target rate: %w", err)
	}
	if value == "" {
		return 0, nil
	}

	rate, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("target rate %q is not a number: %w", value, err)
	}
	return rate, nil
}

// SetTargetRate writes the operator-owned target cell. Only the operator
// command calls this; the dashboard pass never does.
func (ds *DashboardStore) SetTargetRate(rate int64) error {
	_, err := ds.store.db.Exec(`
		INSERT INTO dashboard (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, targetRateKey, strconv.FormatInt(rate, 10))
	if err != nil {
		return fmt.Errorf("failed to set target rate: %w", err)
	}
	return nil
}

// SaveSummary replaces the computed dashboard region (per-project rows and
// portfolio cells) in one transaction, leaving the target rate cell alone,
// and logs a dashboard.updated event.
func (ds *DashboardStore) SaveSummary(runID string, stats []domain.ProjectStats, metrics domain.PortfolioMetrics) error {
	return ds.store.withTx(func(tx *sql.Tx, ew *events.Writer) error {
		if _, err := tx.Exec("DELETE FROM dashboard_projects"); err != nil {
			return fmt.Errorf("failed to clear project summary: %w", err)
		}

		for i, st := range stats {
			rateKnown := 0
			if st.RateKnown {
				rateKnown = 1
			}
			_, err := tx.Exec(`
				INSERT INTO dashboard_projects (position, project, total_hours, task_count, avg_hours, revenue, hourly_rate, rate_known)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`, i+1, st.Project, st.TotalHours, st.TaskCount, st.AvgHours, st.Revenue, st.HourlyRate, rateKnown)
			if err != nil {
				return fmt.Errorf("failed to insert summary for %q: %w", st.Project, err)
			}
		}

		cells := map[string]string{
			"total_hours":        strconv.FormatFloat(metrics.TotalHours, 'f', -1, 64),
			"contract_revenue":   strconv.FormatInt(metrics.ContractRevenue, 10),
			"actual_hourly_rate": strconv.FormatInt(metrics.ActualRate, 10),
			"gap_message":        metrics.GapMessage,
		}
		for key, value := range cells {
			_, err := tx.Exec(`
				INSERT INTO dashboard (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value
			`, key, value)
			if err != nil {
				return fmt.Errorf("failed to write dashboard cell %q: %w", key, err)
			}
		}

		return ew.LogRun(tx, runID, "dashboard", "dashboard.updated", map[string]interface{}{
			"projects":    len(stats),
			"total_hours": metrics.TotalHours,
		})
	})
}

// ProjectSummary returns the stored per-project summary rows.
func (ds *DashboardStore) ProjectSummary() ([]domain.ProjectStats, error) {
	rows, err := ds.store.db.Query(`
		SELECT project, total_hours, task_count, avg_hours, revenue, hourly_rate, rate_known
		FROM dashboard_projects ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query project summary: %w", err)
	}
	defer rows.Close()

	var stats []domain.ProjectStats
	for rows.Next() {
		var st domain.ProjectStats
		var rateKnown int
		if err := rows.Scan(&st.Project, &st.TotalHours, &st.TaskCount, &st.AvgHours, &st.Revenue, &st.HourlyRate, &rateKnown); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		st.RateKnown = rateKnown != 0
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating summary: %w", err)
	}

	return stats, nil
}
