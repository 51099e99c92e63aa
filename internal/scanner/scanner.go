package scanner

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"

	"github.com/logmycode/logmycode/pkg/logger"
)

// RepoCommits holds the commits found in one scanned folder, named after the
// folder's base name.
type RepoCommits struct {
	Name    string
	Commits []Commit
}

// Scanner extracts a developer's commits for one calendar day from local
// repositories by shelling out to git. Scans are best effort: a folder that
// fails to yield commits is logged and skipped so a multi-folder scan can
// complete partially.
type Scanner struct {
	log *logger.Logger
}

// New creates a new Scanner instance
func New() *Scanner {
	return &Scanner{
		log: logger.Get().WithFields(logger.Component("scanner")),
	}
}

// Scan extracts commits for the given date and author from each folder.
// Folders that produce no commits are omitted from the result.
func (s *Scanner) Scan(ctx context.Context, folders []string, date, author string) []RepoCommits {
	var repos []RepoCommits
	for _, folder := range folders {
		rc := s.ScanFolder(ctx, folder, date, author)
		if len(rc.Commits) == 0 {
			continue
		}
		repos = append(repos, rc)
	}
	return repos
}

// ScanFolder runs git log in one folder, restricted to the day window
// [date 00:00:00, date 23:59:59] and to the given author. Any failure is
// logged and yields an empty result.
func (s *Scanner) ScanFolder(ctx context.Context, folder, date, author string) RepoCommits {
	name := filepath.Base(folder)

	if !IsRepository(folder) {
		s.log.Warn("Folder is not a git repository, skipping",
			logger.Folder(folder),
		)
		return RepoCommits{Name: name, Commits: []Commit{}}
	}

	cmd := exec.CommandContext(ctx, "git", logArgs(date, author)...)
	cmd.Dir = folder

	out, err := cmd.Output()
	if err != nil {
		s.log.Error("git log failed, skipping folder",
			logger.Error(err),
			logger.Folder(folder),
			logger.Date(date),
		)
		return RepoCommits{Name: name, Commits: []Commit{}}
	}

	commits := ParseLog(string(out))
	s.log.Debug("Scanned folder",
		logger.Folder(folder),
		logger.Date(date),
		logger.Int("commits", len(commits)),
	)
	return RepoCommits{Name: name, Commits: commits}
}

// logArgs builds the git log invocation for one day and author. The author
// filter is a regex on git's side; escaping it makes a literal name with
// metacharacters match itself.
func logArgs(date, author string) []string {
	return []string{
		"log",
		"--no-merges",
		"--all",
		"--author=" + regexp.QuoteMeta(author),
		fmt.Sprintf("--since=%s 00:00:00", date),
		fmt.Sprintf("--until=%s 23:59:59", date),
		"--pretty=format:%H|%s|%aI",
	}
}
