package sync

import (
	"testing"

	"github.com/kochan17/taskdash/internal/domain"
	"github.com/kochan17/taskdash/internal/github"
)

func labels(names ...string) []github.Label {
	ls := make([]github.Label, len(names))
	for i, n := range names {
		ls[i] = github.Label{Name: n}
	}
	return ls
}

func TestStatusFromLabels(t *testing.T) {
	tests := []struct {
		name   string
		labels []github.Label
		state  string
		want   string
	}{
		{"in-progress label beats open state", labels("bug", "in-progress"), "OPEN", domain.StatusInProgress},
		{"doing label", labels("doing"), "OPEN", domain.StatusInProgress},
		{"japanese progress label", labels("進行中"), "OPEN", domain.StatusInProgress},
		{"done label", labels("done"), "OPEN", domain.StatusDone},
		{"first matching label wins", labels("in-progress", "done"), "OPEN", domain.StatusInProgress},
		{"no matching label, open state", labels("bug", "enhancement"), "OPEN", domain.StatusTodo},
		{"no matching label, closed state", labels("bug"), "CLOSED", domain.StatusDone},
		{"no labels at all", nil, "OPEN", domain.StatusTodo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFromLabels(tt.labels, tt.state); got != tt.want {
				t.Errorf("StatusFromLabels() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeIssue(t *testing.T) {
	issue := github.Issue{
		Title:     "Fix login flow",
		URL:       "https://github.com/kochan17/co-co/issues/12",
		State:     "OPEN",
		Milestone: &github.Milestone{Title: "v1", DueOn: "2026-09-30T00:00:00Z"},
	}
	issue.Labels.Nodes = labels("in-progress")

	task := NormalizeIssue(issue, "co-co")

	if task.Project != "co-co" {
		t.Errorf("Project = %q, want co-co", task.Project)
	}
	if task.Deadline != "2026/09/30" {
		t.Errorf("Deadline = %q, want 2026/09/30", task.Deadline)
	}
	if task.Status != domain.StatusInProgress {
		t.Errorf("Status = %q, want %q", task.Status, domain.StatusInProgress)
	}
	if task.Source != domain.SourceGitHub {
		t.Errorf("Source = %q, want GitHub", task.Source)
	}
	if task.URL != issue.URL {
		t.Errorf("URL = %q, want %q", task.URL, issue.URL)
	}
}

func TestNormalizeIssueWithoutMilestone(t *testing.T) {
	task := NormalizeIssue(github.Issue{Title: "No deadline", State: "OPEN"}, "co-co")
	if task.Deadline != "" {
		t.Errorf("Deadline = %q, want empty", task.Deadline)
	}
	if task.Status != domain.StatusTodo {
		t.Errorf("Status = %q, want %q", task.Status, domain.StatusTodo)
	}
}

func fieldValue(fieldName, date, name string) github.FieldValue {
	fv := github.FieldValue{Date: date, Name: name}
	fv.Field.Name = fieldName
	return fv
}

func TestNormalizeBoardItem(t *testing.T) {
	item := github.BoardItem{
		Content: &github.ItemContent{
			Kind:  "Issue",
			Title: "Design review",
			URL:   "https://github.com/kochan17/co-co/issues/5",
			State: "OPEN",
			Repository: &struct {
				Name string `json:"name"`
			}{Name: "co-co"},
		},
	}
	item.FieldValues.Nodes = []github.FieldValue{
		fieldValue("締切", "2026-10-01", ""),
		fieldValue("Status", "", "進行中"),
	}

	task := NormalizeBoardItem(item, "Roadmap")
	if task == nil {
		t.Fatal("expected a task, got nil")
	}

	if task.Project != "co-co" {
		t.Errorf("Project = %q, want repository name over board title", task.Project)
	}
	if task.Deadline != "2026/10/01" {
		t.Errorf("Deadline = %q, want 2026/10/01", task.Deadline)
	}
	if task.Status != "進行中" {
		t.Errorf("Status = %q, want 進行中", task.Status)
	}
}

func TestNormalizeBoardItemLastMatchingFieldWins(t *testing.T) {
	item := github.BoardItem{
		Content: &github.ItemContent{Kind: "Issue", Title: "t", State: "OPEN"},
	}
	item.FieldValues.Nodes = []github.FieldValue{
		fieldValue("Due date", "2026-10-01", ""),
		fieldValue("締切", "2026-11-15", ""),
		fieldValue("Status", "", "未着手"),
		fieldValue("ステータス", "", "進行中"),
	}

	task := NormalizeBoardItem(item, "Board")
	if task.Deadline != "2026/11/15" {
		t.Errorf("Deadline = %q, want the later 締切 value", task.Deadline)
	}
	if task.Status != "進行中" {
		t.Errorf("Status = %q, want the later ステータス value", task.Status)
	}
}

func TestNormalizeBoardItemDraft(t *testing.T) {
	item := github.BoardItem{
		Content: &github.ItemContent{
			Kind:  "DraftIssue",
			Title: "Sketch pricing page",
			Body:  "rough notes",
		},
	}

	task := NormalizeBoardItem(item, "Roadmap")
	if task == nil {
		t.Fatal("expected a task, got nil")
	}

	if task.Project != "Roadmap" {
		t.Errorf("Project = %q, want board title fallback", task.Project)
	}
	if task.URL != "" {
		t.Errorf("URL = %q, want empty for draft", task.URL)
	}
	// Drafts carry no state: status stays empty unless a field sets it.
	if task.Status != "" {
		t.Errorf("Status = %q, want empty", task.Status)
	}
}

func TestNormalizeBoardItemStateFallback(t *testing.T) {
	tests := []struct {
		state string
		want  string
	}{
		{"OPEN", domain.StatusTodo},
		{"CLOSED", domain.StatusDone},
	}
	for _, tt := range tests {
		item := github.BoardItem{
			Content: &github.ItemContent{Kind: "Issue", Title: "t", State: tt.state},
		}
		task := NormalizeBoardItem(item, "Board")
		if task.Status != tt.want {
			t.Errorf("state %s: Status = %q, want %q", tt.state, task.Status, tt.want)
		}
	}
}

func TestNormalizeBoardItemNoContent(t *testing.T) {
	if task := NormalizeBoardItem(github.BoardItem{}, "Board"); task != nil {
		t.Errorf("expected nil for item without content, got %+v", task)
	}
}

func TestFormatDeadline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"2026-09-30", "2026/09/30"},
		{"2026-09-30T00:00:00Z", "2026/09/30"},
		{"not a date", "not a date"},
	}
	for _, tt := range tests {
		if got := formatDeadline(tt.in); got != tt.want {
			t.Errorf("formatDeadline(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
