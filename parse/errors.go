package parse

import (
	"errors"
	"fmt"
)

// Control-flow signals. The tokenizer returns these; the batch parser
// consumes them and never surfaces them to callers.
var (
	ErrNotAHeaderRow = errors.New("not a header row")
	ErrIgnoreLine    = errors.New("ignored line")
)

// Parse failures. Any of these aborts the whole file.
var (
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrInvalidValueLine      = errors.New("invalid value line")
	ErrMultiLineString       = errors.New("value line contains line breaks")
	ErrMissingRequiredHeader = errors.New("missing required header")
	ErrInvalidScoreThreshold = errors.New("invalid score threshold")
	ErrInvalidGeneset        = errors.New("invalid geneset")
)

// LineError reports which line of the input a parse failure came from.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
