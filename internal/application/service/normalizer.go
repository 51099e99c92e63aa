package service

import (
	"github.com/logmycode/logmycode/internal/application/dto"
	"github.com/logmycode/logmycode/internal/domain/repository"
)

// GroupCommits shapes a flat sequence of stored commits into per-repository
// groups. Repositories appear in first-seen order; within a repository,
// commits are deduplicated by hash with the first occurrence kept, remaining
// commits in insertion order. The result is never nil.
func GroupCommits(commits []repository.DayCommit) []dto.RepoView {
	var order []string
	byRepo := make(map[string][]dto.CommitView)
	seen := make(map[string]map[string]struct{})

	for _, c := range commits {
		if _, ok := byRepo[c.RepoName]; !ok {
			order = append(order, c.RepoName)
			byRepo[c.RepoName] = []dto.CommitView{}
			seen[c.RepoName] = make(map[string]struct{})
		}
		if _, dup := seen[c.RepoName][c.Hash]; dup {
			continue
		}
		seen[c.RepoName][c.Hash] = struct{}{}
		byRepo[c.RepoName] = append(byRepo[c.RepoName], dto.CommitView{
			Hash:    c.Hash,
			Message: c.Message,
		})
	}

	repos := make([]dto.RepoView, 0, len(order))
	for _, name := range order {
		repos = append(repos, dto.RepoView{Name: name, Commits: byRepo[name]})
	}
	return repos
}
