package markup

// Issue describes the kind of problem detected during interpretation,
// e.g. a tag marker with no name after it or a tag that never terminates.
type Issue int

const (
	IssueMissingName Issue = iota
	IssueMissingTagEnd
	IssueUnexpectedToken
	IssueUnexpectedEnd
)

var issueNames = map[Issue]string{
	IssueMissingName:     "MISSING_NAME",
	IssueMissingTagEnd:   "MISSING_TAG_END",
	IssueUnexpectedToken: "UNEXPECTED_TOKEN",
	IssueUnexpectedEnd:   "UNEXPECTED_END",
}

func (i Issue) String() string {
	if s, ok := issueNames[i]; ok {
		return s
	}
	return "UNKNOWN"
}

// Diagnostic represents details about a non-critical issue that occurred
// during lenient interpretation. Parsing still succeeded and produced a
// tree, but something about the input was malformed and was recovered by
// re-absorbing the offending tokens as literal text.
type Diagnostic struct {
	// Issue describes the category of the problem.
	Issue Issue `json:"issue"`

	// Index is the byte offset in the raw input where the problem was
	// detected. Position tracking is best-effort; -1 means unknown.
	Index int `json:"index"`

	// Near is an optional short snippet from the input around Index.
	Near string `json:"near,omitempty"`

	// Description is a human-readable explanation of what went wrong.
	Description string `json:"description"`
}
