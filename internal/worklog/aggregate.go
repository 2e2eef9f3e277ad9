// Package worklog folds logged work sessions into per-project statistics
// and portfolio-wide hourly-rate metrics.
package worklog

import (
	"fmt"
	"math"

	"github.com/kochan17/taskdash/internal/domain"
)

// Aggregate recomputes per-project stats and portfolio metrics from
// scratch. targetRate is the operator-owned target hourly rate, passed
// through to the metrics unchanged. Projects appear in first-session
// order. Sessions with an empty project are skipped.
func Aggregate(sessions []domain.Session, settings map[string]domain.ProjectSetting, targetRate int64) ([]domain.ProjectStats, domain.PortfolioMetrics) {
	type fold struct {
		hours float64
		count int
	}
	folds := make(map[string]*fold)
	var order []string

	for _, s := range sessions {
		if s.Project == "" {
			continue
		}
		f, ok := folds[s.Project]
		if !ok {
			f = &fold{}
			folds[s.Project] = f
			order = append(order, s.Project)
		}
		f.hours += SessionHours(s)
		f.count++
	}

	stats := make([]domain.ProjectStats, 0, len(order))
	metrics := domain.PortfolioMetrics{TargetRate: targetRate}
	var contractHours float64

	for _, project := range order {
		f := folds[project]
		setting := settings[project]

		st := domain.ProjectStats{
			Project:    project,
			TotalHours: f.hours,
			TaskCount:  f.count,
			Revenue:    setting.Revenue,
		}
		if f.count > 0 {
			st.AvgHours = f.hours / float64(f.count)
		}
		// A rate is only reportable when both revenue and hours exist; a
		// missing rate is distinct from a genuine ¥0 rate.
		if setting.Revenue > 0 && f.hours > 0 {
			st.HourlyRate = int64(math.Round(float64(setting.Revenue) / f.hours))
			st.RateKnown = true
		}
		stats = append(stats, st)

		metrics.TotalHours += f.hours
		if setting.Type == domain.ProjectTypeContract && setting.Revenue > 0 {
			metrics.ContractRevenue += setting.Revenue
			contractHours += f.hours
		}
	}

	if metrics.ContractRevenue > 0 && contractHours > 0 {
		metrics.ActualRate = int64(math.Round(float64(metrics.ContractRevenue) / contractHours))
		metrics.ActualRateKnown = true
	}

	if targetRate > 0 && metrics.ActualRateKnown && metrics.ActualRate > 0 {
		gap := targetRate - metrics.ActualRate
		metrics.Gap = gap
		if gap > 0 {
			metrics.GapPercent = int64(math.Round(float64(gap) / float64(metrics.ActualRate) * 100))
			metrics.GapMessage = fmt.Sprintf("¥%d（%d%%アップ必要）", gap, metrics.GapPercent)
		} else {
			metrics.GapMessage = "目標達成済み"
		}
	}

	return stats, metrics
}
