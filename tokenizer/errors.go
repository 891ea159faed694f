package tokenizer

import (
	"fmt"

	"github.com/kvx-labs/yamlcore/token"
	"golang.org/x/xerrors"
)

// ScanError reports a syntax or semantic failure while tokenizing. Once a
// Tokenizer produces one, it is sticky: every subsequent Next call
// returns the same error and no further tokens are produced, because
// YAML's context-sensitive grammar makes resynchronization unsound
// (spec section 7).
type ScanError struct {
	Marker  token.Marker
	Problem string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("yaml: %s at %s", e.Problem, e.Marker)
}

func newScanError(m token.Marker, format string, args ...any) error {
	e := &ScanError{Marker: m, Problem: fmt.Sprintf(format, args...)}
	return xerrors.Errorf("scan: %w", e)
}
