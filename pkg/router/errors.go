package router

import (
	"fmt"
	"strings"
)

// ErrorKind categorizes build diagnostics.
type ErrorKind string

const (
	// ErrUnknownMethod indicates a method token outside the verb set.
	ErrUnknownMethod ErrorKind = "UNKNOWN_METHOD"

	// ErrInvalidFileName indicates a declaration name matching no
	// recognized form.
	ErrInvalidFileName ErrorKind = "INVALID_FILE_NAME"

	// ErrDuplicateMiddleware indicates a second middleware declaration
	// in the same directory.
	ErrDuplicateMiddleware ErrorKind = "DUPLICATE_MIDDLEWARE"

	// ErrDuplicateRoute indicates two declarations resolving to the
	// same path shape and method.
	ErrDuplicateRoute ErrorKind = "DUPLICATE_ROUTE"

	// ErrPathConflict indicates a catch-all segment coexisting with a
	// sibling route at the same position for the same method, or a
	// catch-all in a non-final position.
	ErrPathConflict ErrorKind = "PATH_CONFLICT"

	// ErrAmbiguousParam indicates a parameter name used twice within
	// one path.
	ErrAmbiguousParam ErrorKind = "AMBIGUOUS_PARAM_NAME"
)

// Diagnostic is one build problem: a kind tag, the offending path and a
// human-readable message. Files lists every source location involved.
type Diagnostic struct {
	Kind    ErrorKind
	Path    string
	Message string
	Files   []string
}

func (d Diagnostic) Error() string {
	if len(d.Files) > 0 {
		return fmt.Sprintf("%s: %s (%s)", d.Kind, d.Message, strings.Join(d.Files, ", "))
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// BuildError aggregates every diagnostic collected by the failing
// pipeline stage, so one pass surfaces all conflicts together.
type BuildError struct {
	Diagnostics []Diagnostic
}

func (e *BuildError) Error() string {
	if len(e.Diagnostics) == 0 {
		return "no build diagnostics"
	}
	if len(e.Diagnostics) == 1 {
		return e.Diagnostics[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d route build errors:\n", len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, d.Error())
	}
	return sb.String()
}
