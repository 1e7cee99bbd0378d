package scaffold

import (
	"fmt"
	"strings"
)

// TemplateError reports a missing or unreadable template source, or a
// failed write of derived output. It carries ordered remediation hints
// that commands render beneath the error message.
type TemplateError struct {
	Op    string
	Path  string
	Hints []string
	Err   error
}

func (e *TemplateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s", e.Op, e.Path)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// Remediation renders the hint list as a numbered block, or "" if the
// error carries no hints.
func (e *TemplateError) Remediation() string {
	if len(e.Hints) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, hint := range e.Hints {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, hint)
	}
	return sb.String()
}

func newTemplateError(op, path string, err error, hints ...string) *TemplateError {
	return &TemplateError{
		Op:    op,
		Path:  path,
		Hints: hints,
		Err:   err,
	}
}
