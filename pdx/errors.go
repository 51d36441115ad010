package pdx

import "fmt"

// Severity ranks a queued diagnostic.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityNormal:
		return "normal"
	case SeverityWarning:
		return "warning"
	}
	return "unknown"
}

// FileLocation identifies where in a source file a diagnostic arose.
type FileLocation struct {
	Path string
	Line int
}

func (loc FileLocation) String() string {
	return fmt.Sprintf("%s:L%d", loc.Path, loc.Line)
}

// ParseError is a fatal structural error: malformed grammar, an
// unrecognized token, or an unrepresentable date field. It aborts the
// parse immediately and yields no partial tree.
type ParseError struct {
	Loc FileLocation
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.Loc)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Error is a recoverable, value-level diagnostic. Fatal structural errors
// are ParseError values returned by the parser; these are the ones a
// parse survives.
type Error struct {
	Severity Severity
	Loc      FileLocation
	Message  string
}

// ErrorQueue collects diagnostics in source-encounter order. The queue is
// owned by the caller and accumulates across an entire parse.
type ErrorQueue struct {
	errs []Error
}

func (q *ErrorQueue) Enqueue(sev Severity, loc FileLocation, format string, args ...any) {
	q.errs = append(q.errs, Error{
		Severity: sev,
		Loc:      loc,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (q *ErrorQueue) Len() int { return len(q.errs) }

func (q *ErrorQueue) Empty() bool { return len(q.errs) == 0 }

// Errors returns the queued diagnostics in encounter order. The returned
// slice is owned by the queue.
func (q *ErrorQueue) Errors() []Error { return q.errs }
