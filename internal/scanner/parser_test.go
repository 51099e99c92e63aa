package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLog_ValidLines(t *testing.T) {
	out := "abc1234|feat: add login validation|2025-12-06T10:15:00+00:00\n" +
		"def5678|fix: handle empty payload|2025-12-06T14:02:11+05:30"

	commits := ParseLog(out)

	assert.Len(t, commits, 2)
	assert.Equal(t, "abc1234", commits[0].Hash)
	assert.Equal(t, "feat: add login validation", commits[0].Message)
	assert.Equal(t, "2025-12-06T10:15:00+00:00", commits[0].Timestamp)
	assert.Equal(t, "def5678", commits[1].Hash)
}

func TestParseLog_EmptyOutput(t *testing.T) {
	assert.Empty(t, ParseLog(""))
	assert.Empty(t, ParseLog("   \n  "))
	assert.NotNil(t, ParseLog(""))
}

func TestParseLog_SkipsMalformedLines(t *testing.T) {
	out := "abc1234|feat: one|2025-12-06T10:15:00+00:00\n" +
		"not-a-log-line\n" +
		"missing-timestamp|just two fields\n" +
		"|empty hash|2025-12-06T10:15:00+00:00\n" +
		"def5678|feat: two|2025-12-06T11:00:00+00:00"

	commits := ParseLog(out)

	assert.Len(t, commits, 2)
	assert.Equal(t, "abc1234", commits[0].Hash)
	assert.Equal(t, "def5678", commits[1].Hash)
}

func TestParseLog_DelimiterInSubjectDropsLine(t *testing.T) {
	// a "|" inside the subject yields four fields; the format has no
	// escaping, so the line is dropped rather than guessed at
	out := "abc1234|feat: add a|b toggle|2025-12-06T10:15:00+00:00"

	commits := ParseLog(out)

	assert.Empty(t, commits)
}

func TestParseLog_SkipsBlankLines(t *testing.T) {
	out := "\nabc1234|feat: one|2025-12-06T10:15:00+00:00\n\n"

	commits := ParseLog(out)

	assert.Len(t, commits, 1)
}
