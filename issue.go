package valid

import "strings"

// Issue represents a single validation failure at one location of the input
type Issue struct {
	Path    []string `json:"path,omitempty"`
	Message string   `json:"message"`
}

// String formats the issue as "<dot-joined path>: <message>", or just the
// message when the issue applies to the input as a whole
func (i Issue) String() string {
	if len(i.Path) == 0 {
		return i.Message
	}
	return strings.Join(i.Path, ".") + ": " + i.Message
}

// FormatIssues formats each issue on its own line, preserving the order
// reported by the schema. The result always has one entry per issue
func FormatIssues(issues []Issue) []string {
	lines := make([]string, len(issues))
	for n, issue := range issues {
		lines[n] = issue.String()
	}
	return lines
}

// UserMessage builds a single display string from a list of issues.
//
// A single issue yields its formatted line verbatim. Multiple issues are
// listed under a "Multiple validation errors:" header, one per line. An
// empty list yields the empty string
func UserMessage(issues []Issue) string {
	lines := FormatIssues(issues)

	switch len(lines) {
	case 0:
		return ""
	case 1:
		return lines[0]
	}

	var sb strings.Builder
	sb.WriteString("Multiple validation errors:")
	for _, line := range lines {
		sb.WriteString("\n- ")
		sb.WriteString(line)
	}
	return sb.String()
}
