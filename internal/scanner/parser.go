package scanner

import "strings"

// logDelimiter separates the fields of one formatted log line
const logDelimiter = "|"

// Commit is one commit as read from a repository's log. Timestamp is the
// author date in strict ISO 8601, as emitted by the %aI format token.
type Commit struct {
	Hash      string
	Message   string
	Timestamp string
}

// ParseLog parses the output of
//
//	git log --pretty=format:%H|%s|%aI
//
// Grammar: one commit per line, exactly three non-empty fields separated by
// "|". Lines that do not match are skipped. A "|" inside a commit subject
// produces extra fields and the line is dropped as malformed; the format has
// no escaping scheme, so none is guessed at here.
func ParseLog(out string) []Commit {
	commits := []Commit{}
	if strings.TrimSpace(out) == "" {
		return commits
	}

	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, logDelimiter)
		if len(fields) != 3 {
			continue
		}
		if fields[0] == "" || fields[1] == "" || fields[2] == "" {
			continue
		}
		commits = append(commits, Commit{
			Hash:      fields[0],
			Message:   fields[1],
			Timestamp: fields[2],
		})
	}
	return commits
}
