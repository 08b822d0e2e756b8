// Package diag implements a source-located diagnostic channel.
//
// Admission and validation passes accumulate diagnostics here instead of
// failing fast: a bad token definition is still recorded, so that later
// passes can surface further problems in the same run. The overall build
// is considered failed only if the collector holds at least one error.
package diag

import (
	"errors"
	"fmt"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	// SeverityError marks a diagnostic that fails the overall build.
	SeverityError Severity = iota
	// SeverityWarning marks a diagnostic that is reported but does not fail the build.
	SeverityWarning
)

// String renders the severity the way it appears in a rendered diagnostic.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Location identifies a position in a source grammar file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String renders a Location as "file:line.column".
func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d.%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d.%d", l.File, l.Line, l.Column)
}

// Diagnostic is a single located error or warning.
type Diagnostic struct {
	Loc      Location
	Severity Severity
	Message  string
}

// String renders a Diagnostic as "severity: file:line.column: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Loc, d.Message)
}

// Collector accumulates diagnostics across a single engine run.
//
// A Collector is not safe for concurrent use; the engine is invoked
// single-threaded.
type Collector struct {
	diags []Diagnostic
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Errorf records an error-severity diagnostic at loc.
func (c *Collector) Errorf(loc Location, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{
		Loc:      loc,
		Severity: SeverityError,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Warnf records a warning-severity diagnostic at loc.
func (c *Collector) Warnf(loc Location, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{
		Loc:      loc,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Diagnostics returns every diagnostic recorded so far, in recording order.
func (c *Collector) Diagnostics() []Diagnostic {
	return c.diags
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (c *Collector) HasErrors() bool {
	for _, d := range c.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ErrInternal marks an InternalError: a bug in this engine's own code, as
// opposed to a problem with the grammar being compiled. Grammar problems
// are reported through Collector; ErrInternal is reserved for invariants
// that should be impossible to violate, like an unreachable switch case
// over a closed set of pattern kinds.
var ErrInternal = errors.New("internal invariant violation")

// InternalError wraps the panic value raised by Raise. Where identifies
// the function that detected the violation (e.g. "nfa.buildPattern"); Err
// is the specific condition.
type InternalError struct {
	Where string
	Err   error
}

// Error renders the violation with its origin and ErrInternal, matching
// the wrapped-error convention of this module's compiler-error types.
func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Where, ErrInternal, e.Err)
}

// Unwrap exposes both ErrInternal and the specific wrapped condition, so
// errors.Is(err, ErrInternal) succeeds for any InternalError while
// errors.As can still reach the original cause.
func (e *InternalError) Unwrap() []error {
	return []error{ErrInternal, e.Err}
}

// Raise panics with an *InternalError tagged with where and a formatted
// message. Call this instead of a bare panic for any condition that
// indicates a bug in this engine rather than a problem with the input
// grammar -- callers at the public API boundary recover exactly this type
// (see the root package's Engine.Build) and turn it into a returned error;
// any other panic is a genuine bug and propagates uncaught.
func Raise(where, format string, args ...any) {
	panic(&InternalError{Where: where, Err: fmt.Errorf(format, args...)})
}
