package internal

import "fmt"

// Hint formats provide actionable guidance appended to error messages.
// Both take the open and close delimiters.
const (
	HintFmtNameNotFound = "Hint: use %[1]s name | fallback %[2]s to render a fallback when the value is missing"
	HintFmtKindMismatch = "Hint: list values are rendered with %[1]s ...name %[2]s, single values with %[1]s name %[2]s"
	HintSeparator       = "\n"
)

// HintFor returns the hint for a failed variable, or "" when the template
// already uses the form the hint would suggest.
func HintFor(reason Reason, kind VariableKind, openDelim, closeDelim string) string {
	switch reason {
	case ReasonNameNotFound:
		if kind == KindPlain {
			return fmt.Sprintf(HintFmtNameNotFound, openDelim, closeDelim)
		}
	case ReasonKindMismatch:
		return fmt.Sprintf(HintFmtKindMismatch, openDelim, closeDelim)
	}
	return ""
}

// AppendHint appends a hint to a message with a newline separator.
// Returns the original message if hint is empty.
func AppendHint(msg, hint string) string {
	if hint == "" {
		return msg
	}
	return msg + HintSeparator + hint
}
