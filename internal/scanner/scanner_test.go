package scanner

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanFolder_NonRepositoryYieldsEmptyResult(t *testing.T) {
	dir := t.TempDir()

	rc := New().ScanFolder(context.Background(), dir, "2025-12-06", "alen")

	assert.Equal(t, filepath.Base(dir), rc.Name)
	assert.Empty(t, rc.Commits)
}

func TestScan_OmitsFoldersWithoutCommits(t *testing.T) {
	dirs := []string{t.TempDir(), t.TempDir()}

	repos := New().Scan(context.Background(), dirs, "2025-12-06", "alen")

	assert.Empty(t, repos)
}

func TestIsRepository_PlainDirectory(t *testing.T) {
	assert.False(t, IsRepository(t.TempDir()))
}

func TestDetectAuthor_NonRepositoryFails(t *testing.T) {
	_, err := DetectAuthor(t.TempDir())
	assert.Error(t, err)
}

func TestLogArgs_DayWindowAndFormat(t *testing.T) {
	args := logArgs("2025-12-06", "alen")

	assert.Contains(t, args, "--no-merges")
	assert.Contains(t, args, "--all")
	assert.Contains(t, args, "--author=alen")
	assert.Contains(t, args, "--since=2025-12-06 00:00:00")
	assert.Contains(t, args, "--until=2025-12-06 23:59:59")
	assert.Contains(t, args, "--pretty=format:%H|%s|%aI")
}

func TestLogArgs_EscapesAuthorMetacharacters(t *testing.T) {
	args := logArgs("2025-12-06", "alen (work)")

	assert.Contains(t, args, `--author=alen \(work\)`)
}
