package emitter

import (
	"fmt"

	"golang.org/x/xerrors"
)

// EmitErrorKind discriminates the two failure modes spec section 6
// names for the emitter's error surface: a write failure on the
// underlying sink, or a value shape the emitter has no syntax for.
type EmitErrorKind int

const (
	// SinkFailure wraps an io.Writer error encountered mid-Dump.
	SinkFailure EmitErrorKind = iota
	// BadHashmapKey marks a Value that cannot legally occupy the
	// position it was found in — e.g. a Comment written where YAML has
	// no syntax for one (a hash *value*, per spec section 3's
	// invariant that Comment is never legal there).
	BadHashmapKey
)

func (k EmitErrorKind) String() string {
	if k == BadHashmapKey {
		return "BadHashmapKey"
	}
	return "SinkFailure"
}

// EmitError reports a failure while rendering a value tree, such as a
// write failure on the underlying sink or an attempt to emit a Comment
// value in a position where YAML has no syntax for one.
type EmitError struct {
	Kind    EmitErrorKind
	Problem string
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("yaml: %s: %s", e.Kind, e.Problem)
}

func newEmitError(format string, args ...any) error {
	e := &EmitError{Kind: BadHashmapKey, Problem: fmt.Sprintf(format, args...)}
	return xerrors.Errorf("emit: %w", e)
}

func newSinkError(cause error) error {
	e := &EmitError{Kind: SinkFailure, Problem: cause.Error()}
	return xerrors.Errorf("emit: %w", e)
}
