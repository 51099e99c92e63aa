package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/logmycode/logmycode/internal/domain/repository"
)

func dayCommit(repo, hash, message string) repository.DayCommit {
	return repository.DayCommit{
		RepoName:    repo,
		Hash:        hash,
		Message:     message,
		CommittedAt: time.Now(),
	}
}

func TestGroupCommits_FirstSeenRepoOrder(t *testing.T) {
	commits := []repository.DayCommit{
		dayCommit("beta", "b1", "one"),
		dayCommit("alpha", "a1", "two"),
		dayCommit("beta", "b2", "three"),
	}

	repos := GroupCommits(commits)

	assert.Len(t, repos, 2)
	assert.Equal(t, "beta", repos[0].Name)
	assert.Equal(t, "alpha", repos[1].Name)
	assert.Len(t, repos[0].Commits, 2)
	assert.Equal(t, "b1", repos[0].Commits[0].Hash)
	assert.Equal(t, "b2", repos[0].Commits[1].Hash)
}

func TestGroupCommits_DeduplicatesByHashFirstWins(t *testing.T) {
	commits := []repository.DayCommit{
		dayCommit("proj", "abc", "first message"),
		dayCommit("proj", "abc", "second message"),
		dayCommit("proj", "def", "kept"),
	}

	repos := GroupCommits(commits)

	assert.Len(t, repos, 1)
	assert.Len(t, repos[0].Commits, 2)
	assert.Equal(t, "abc", repos[0].Commits[0].Hash)
	assert.Equal(t, "first message", repos[0].Commits[0].Message)
	assert.Equal(t, "def", repos[0].Commits[1].Hash)
}

func TestGroupCommits_EmptyInput(t *testing.T) {
	repos := GroupCommits(nil)

	assert.NotNil(t, repos)
	assert.Empty(t, repos)
}
