package domain

// Source identifies where a task row came from.
type Source string

const (
	SourceGitHub Source = "GitHub"
	SourceManual Source = "手動"
)

// Task statuses follow the sheet vocabulary. The status column also accepts
// free text entered by hand, so Status stays a plain string on Task.
const (
	StatusTodo       = "未着手"
	StatusInProgress = "進行中"
	StatusDone       = "完了"
)

// ProjectType represents the billing type of a project.
type ProjectType string

const (
	ProjectTypeContract ProjectType = "受託"
	ProjectTypeInternal ProjectType = "自社"
	ProjectTypePersonal ProjectType = "個人"
)

// Task represents one row of the task table, merged from GitHub or
// entered by hand.
type Task struct {
	Project  string `json:"project" db:"project"`
	Title    string `json:"title" db:"title"`
	Deadline string `json:"deadline,omitempty" db:"deadline"` // yyyy/mm/dd or empty
	Status   string `json:"status" db:"status"`
	Source   Source `json:"source" db:"source"`
	URL      string `json:"url,omitempty" db:"url"`
}

// IdentityKey returns the value used to recognize the same task across
// sync passes: the permalink, or the title when no permalink exists.
func (t Task) IdentityKey() string {
	if t.URL != "" {
		return t.URL
	}
	return t.Title
}

// Session represents one logged interval of work. Duration holds the raw
// stored value: either a clock string like "7:30" or a day-fraction
// numeric like "0.3125"; worklog.SessionHours normalizes both.
type Session struct {
	Seq       int    `json:"seq" db:"seq"`
	Date      string `json:"date" db:"date"`
	Project   string `json:"project" db:"project"`
	TaskTitle string `json:"task_title" db:"task_title"`
	Start     string `json:"start,omitempty" db:"start_time"` // HH:MM or empty
	End       string `json:"end,omitempty" db:"end_time"`     // HH:MM or empty
	Duration  string `json:"duration,omitempty" db:"duration"`
	Note      string `json:"note,omitempty" db:"note"`
}

// ProjectSetting maps a project name to its billing configuration.
type ProjectSetting struct {
	Project string      `json:"project" db:"project"`
	Revenue int64       `json:"revenue" db:"revenue"` // tax-exclusive yen, 0 = not set
	Type    ProjectType `json:"type" db:"type"`
	Note    string      `json:"note,omitempty" db:"note"`
}

// ProjectStats is the per-project rollup of work sessions.
type ProjectStats struct {
	Project    string  `json:"project"`
	TotalHours float64 `json:"total_hours"`
	TaskCount  int     `json:"task_count"`
	AvgHours   float64 `json:"avg_hours"`
	Revenue    int64   `json:"revenue"`
	// HourlyRate is round(Revenue/TotalHours). RateKnown distinguishes a
	// genuine ¥0 rate from "cannot be computed" (missing revenue or no
	// logged hours).
	HourlyRate int64 `json:"hourly_rate"`
	RateKnown  bool  `json:"rate_known"`
}

// PortfolioMetrics is the portfolio-wide rollup across contract projects.
type PortfolioMetrics struct {
	TotalHours      float64 `json:"total_hours"`
	ContractRevenue int64   `json:"contract_revenue"`
	ActualRate      int64   `json:"actual_rate"`
	ActualRateKnown bool    `json:"actual_rate_known"`
	// TargetRate is operator-owned: read from the dashboard table before
	// recomputation and written back unchanged.
	TargetRate int64  `json:"target_rate"`
	Gap        int64  `json:"gap"`
	GapPercent int64  `json:"gap_percent"`
	GapMessage string `json:"gap_message,omitempty"`
}

// Event represents an entry in the run event log.
type Event struct {
	ID           int64   `json:"id" db:"id"`
	Timestamp    string  `json:"timestamp" db:"timestamp"`
	RunID        string  `json:"run_id" db:"run_id"`
	ResourceType string  `json:"resource_type" db:"resource_type"`
	EventType    string  `json:"event_type" db:"event_type"`
	Payload      *string `json:"payload,omitempty" db:"payload"`
}
