package sync

import "github.com/kochan17/taskdash/internal/domain"

// Dedupe collapses tasks that share an identity key (URL, or title when the
// URL is empty). The first occurrence wins; later duplicates are dropped
// without merging fields. Order is otherwise preserved.
func Dedupe(tasks []domain.Task) []domain.Task {
	seen := make(map[string]bool, len(tasks))
	unique := make([]domain.Task, 0, len(tasks))

	for _, task := range tasks {
		key := task.IdentityKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, task)
	}

	return unique
}
