// Package sync turns raw GitHub content into task table rows and merges
// them with manually entered rows.
package sync

import (
	"strings"
	"time"

	"github.com/kochan17/taskdash/internal/domain"
	"github.com/kochan17/taskdash/internal/github"
)

// deadlineFields are the custom field names recognized as a due date.
// Matching is case-sensitive and exact.
var deadlineFields = []string{"Due date", "締切", "Deadline", "Due"}

// statusFields are the custom field names recognized as a status.
var statusFields = []string{"Status", "ステータス"}

// NormalizeIssue maps a repository issue to a task row. The project name is
// supplied by the caller (the configured display name for the repository).
func NormalizeIssue(issue github.Issue, project string) domain.Task {
	deadline := ""
	if issue.Milestone != nil {
		deadline = formatDeadline(issue.Milestone.DueOn)
	}

	return domain.Task{
		Project:  project,
		Title:    issue.Title,
		Deadline: deadline,
		Status:   StatusFromLabels(issue.Labels.Nodes, issue.State),
		Source:   domain.SourceGitHub,
		URL:      issue.URL,
	}
}

// NormalizeBoardItem maps a Projects V2 board item to a task row. Returns
// nil when the item has no content body (deleted or invisible content),
// meaning "skip". The board title is the fallback project name when the
// content carries no repository.
func NormalizeBoardItem(item github.BoardItem, boardTitle string) *domain.Task {
	if item.Content == nil {
		return nil
	}
	content := item.Content

	project := boardTitle
	if content.Repository != nil {
		project = content.Repository.Name
	}

	// Assignment is unconditional: when an item carries two recognized
	// field names, the last one in field order wins.
	var deadline, status string
	for _, fv := range item.FieldValues.Nodes {
		name := fv.Field.Name
		if name == "" {
			continue
		}
		if matchesField(name, deadlineFields) {
			deadline = formatDeadline(fv.Date)
		}
		if matchesField(name, statusFields) {
			status = fv.Name
		}
	}

	if status == "" && content.State != "" {
		if content.State == "OPEN" {
			status = domain.StatusTodo
		} else {
			status = domain.StatusDone
		}
	}

	return &domain.Task{
		Project:  project,
		Title:    content.Title,
		Deadline: deadline,
		Status:   status,
		Source:   domain.SourceGitHub,
		URL:      content.URL,
	}
}

// StatusFromLabels derives a status from issue labels, falling back to the
// open/closed state when no label matches a known pattern. The first
// matching label wins, in the order the labels were returned.
func StatusFromLabels(labels []github.Label, state string) string {
	for _, label := range labels {
		name := strings.ToLower(label.Name)
		if strings.Contains(name, "progress") || strings.Contains(name, "進行") || strings.Contains(name, "doing") {
			return domain.StatusInProgress
		}
		if strings.Contains(name, "done") || strings.Contains(name, "完了") {
			return domain.StatusDone
		}
	}
	if state == "CLOSED" {
		return domain.StatusDone
	}
	return domain.StatusTodo
}

func matchesField(name string, known []string) bool {
	for _, k := range known {
		if name == k {
			return true
		}
	}
	return false
}

// formatDeadline normalizes a GraphQL date (RFC 3339 or plain yyyy-mm-dd)
// into the table's yyyy/mm/dd form. Unparseable input is passed through.
func formatDeadline(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006/01/02")
		}
	}
	return raw
}
