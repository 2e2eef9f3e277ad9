package sync

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kochan17/taskdash/internal/config"
	"github.com/kochan17/taskdash/internal/domain"
	"github.com/kochan17/taskdash/internal/github"
	"github.com/kochan17/taskdash/internal/store"
)

// Source fetches raw GitHub content. Satisfied by *github.Client; tests
// substitute a fake.
type Source interface {
	FetchRepoIssues(ctx context.Context, owner, repo string) ([]github.Issue, error)
	FetchBoards(ctx context.Context, owner string) ([]github.Board, error)
}

// Syncer drives one sync pass: fetch, normalize, dedupe, merge with manual
// rows, replace the task table.
type Syncer struct {
	source     Source
	store      *store.Store
	repos      []config.Repo
	boardOwner string
}

// New creates a Syncer. boardOwner may be empty to skip Projects V2 boards.
func New(source Source, st *store.Store, repos []config.Repo, boardOwner string) *Syncer {
	return &Syncer{
		source:     source,
		store:      st,
		repos:      repos,
		boardOwner: boardOwner,
	}
}

// Result summarizes one sync pass.
type Result struct {
	RunID       string   `json:"run_id"`
	GitHubCount int      `json:"github_count"`
	ManualCount int      `json:"manual_count"`
	Warnings    []string `json:"warnings,omitempty"`
}

// Summary returns the one-line human-readable form of the result.
func (r *Result) Summary() string {
	return fmt.Sprintf("GitHub: %d件、手動: %d件", r.GitHubCount, r.ManualCount)
}

// Sync runs one full pass. A fetch failure for one repository or for the
// boards is recorded as a warning and does not stop the rest; manual rows
// are preserved verbatim. The table data region is replaced wholesale in
// one transaction, so re-running against unchanged remote state is
// idempotent.
func (s *Syncer) Sync(ctx context.Context) (*Result, error) {
	manual, err := s.store.Tasks.ListBySource(domain.SourceManual)
	if err != nil {
		return nil, fmt.Errorf("failed to read manual tasks: %w", err)
	}

	var remote []domain.Task
	var warnings []string

	if s.boardOwner != "" {
		boards, err := s.source.FetchBoards(ctx, s.boardOwner)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("boards of %s: %v", s.boardOwner, err))
		} else {
			for _, board := range boards {
				for _, item := range board.Items.Nodes {
					if task := NormalizeBoardItem(item, board.Title); task != nil {
						remote = append(remote, *task)
					}
				}
			}
		}
	}

	for _, repo := range s.repos {
		issues, err := s.source.FetchRepoIssues(ctx, repo.Owner, repo.Name)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s/%s: %v", repo.Owner, repo.Name, err))
			continue
		}

		project := repo.Project
		if project == "" {
			project = repo.Name
		}
		for _, issue := range issues {
			remote = append(remote, NormalizeIssue(issue, project))
		}
	}

	unique := Dedupe(remote)
	merged := append(append([]domain.Task{}, unique...), manual...)

	result := &Result{
		RunID:       uuid.NewString(),
		GitHubCount: len(unique),
		ManualCount: len(manual),
		Warnings:    warnings,
	}

	if err := s.store.Tasks.Replace(result.RunID, merged, map[string]interface{}{
		"github_count": result.GitHubCount,
		"manual_count": result.ManualCount,
		"warnings":     len(warnings),
	}); err != nil {
		return nil, fmt.Errorf("failed to write task table: %w", err)
	}

	return result, nil
}
