// Package scalar holds the pure, stateless helpers shared by the
// tokenizer's escape decoder and the emitter's double-quote encoder:
// NeedQuotes classifies whether a plain scalar is safe to emit unquoted,
// and EscapeString renders the double-quoted form.
//
// The escape table mirrors scan_flow_scalar's decoder in the original
// yaml-rust scanner (alevinval/yaml-rust, src/scanner.rs) so that
// encoding and decoding stay inverses of each other.
package scalar

import (
	"fmt"
	"io"
	"unicode"
)

// namedEscapes maps a rune to the single letter that follows a backslash
// in a double-quoted scalar, for the codepoints YAML gives a short name.
var namedEscapes = map[rune]byte{
	0x00:   '0',
	0x07:   'a',
	0x08:   'b',
	0x09:   't',
	0x0A:   'n',
	0x0B:   'v',
	0x0C:   'f',
	0x0D:   'r',
	0x1B:   'e',
	0x22:   '"',
	0x5C:   '\\',
	0x85:   'N',
	0xA0:   '_',
	0x2028: 'L',
	0x2029: 'P',
}

// reverseEscapes is namedEscapes inverted, used by the tokenizer's quoted
// scalar decoder.
var reverseEscapes = func() map[byte]rune {
	m := make(map[byte]rune, len(namedEscapes))
	for r, b := range namedEscapes {
		m[b] = r
	}
	// '\ ' (escaped space) decodes to a literal space but has no forward
	// entry above since a literal space never needs escaping on its own.
	m[' '] = 0x20
	// '\'' (escaped apostrophe) likewise decodes to a literal apostrophe;
	// the encoder writes apostrophes unescaped.
	m['\''] = '\''
	return m
}()

// DecodeNamedEscape returns the rune a `\<letter>` (or `\<space>`, `\'`) escape
// decodes to and whether letter is a recognized named escape. Hex forms
// (\x \u \U) are handled by the tokenizer directly, not through this
// table.
func DecodeNamedEscape(letter byte) (rune, bool) {
	r, ok := reverseEscapes[letter]
	return r, ok
}

// EscapeString writes a double-quoted rendering of s to w, including the
// surrounding quotes.
func EscapeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, `"`); err != nil {
		return err
	}
	for _, r := range s {
		if err := writeEscapedRune(w, r); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `"`)
	return err
}

func writeEscapedRune(w io.Writer, r rune) error {
	if letter, ok := namedEscapes[r]; ok {
		_, err := fmt.Fprintf(w, "\\%c", letter)
		return err
	}
	if isSafePrintable(r) {
		_, err := io.WriteString(w, string(r))
		return err
	}
	switch {
	case r <= 0xFF:
		_, err := fmt.Fprintf(w, "\\x%02X", r)
		return err
	case r <= 0xFFFF:
		_, err := fmt.Fprintf(w, "\\u%04X", r)
		return err
	default:
		_, err := fmt.Fprintf(w, "\\U%08X", r)
		return err
	}
}

// isSafePrintable reports whether r can appear literally inside a
// double-quoted scalar without escaping: YAML's printable set, excluding
// anything namedEscapes already claims.
func isSafePrintable(r rune) bool {
	if _, named := namedEscapes[r]; named {
		return false
	}
	if r == 0x0A || (r >= 0x20 && r <= 0x7E) {
		return true
	}
	if r == 0x85 || (r >= 0xA0 && r <= 0xD7FF) || (r >= 0xE000 && r <= 0xFFFD) {
		return !unicode.Is(unicode.Cc, r)
	}
	if r >= 0x10000 && r <= 0x10FFFF {
		return true
	}
	return false
}
