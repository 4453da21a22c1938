// Package errors implements the ambient, recoverable Go-level error
// values this repository's glue code returns, such as a source file
// named on the command line that cannot be read. These are
// ordinary `error` values distinct from the interpreted program's own
// unrecoverable runtime faults (see internal/diagnostics), which
// terminate the process by design rather than returning to a caller.
package errors

import (
	"fmt"
	"strings"
)

// Kind classifies what part of the system rejected a request, the same
// role ErrorType plays for the interpreted program's own error taxonomy.
type Kind string

const (
	UsageError  Kind = "UsageError"
	ConfigError Kind = "ConfigError"
	ModuleError Kind = "ModuleError"
)

// CodeError is a Kind-tagged error with an optional wrapped cause. It
// trims the teacher's SentraError down to what this ambient layer
// actually needs: no call stack and no source excerpt, since rendering
// a highlighted source excerpt is the fatal diagnostics path's job
// (internal/diagnostics), not a recoverable Go error's.
type CodeError struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *CodeError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %s", e.Kind, e.Message))
	if e.Cause != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Cause))
	}
	return sb.String()
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *CodeError) Unwrap() error { return e.Cause }

// New builds a CodeError with no wrapped cause.
func New(kind Kind, message string) *CodeError {
	return &CodeError{Kind: kind, Message: message}
}

// Wrapf builds a CodeError that wraps cause, formatting message with
// args first, mirroring %w-wrapping conventions elsewhere in this repo.
func Wrapf(kind Kind, cause error, format string, args ...any) *CodeError {
	return &CodeError{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}
