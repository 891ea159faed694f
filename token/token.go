// Package token defines the lexical tokens produced by the tokenizer and
// consumed by the emitter's sibling, the (out-of-scope) tree loader.
//
// The types here mirror the token taxonomy of libyaml-derived scanners
// (see the internal/yamlh package this was adapted from) extended with a
// Comment token and a Marker that tracks Unicode code point offsets rather
// than bytes.
package token

import "fmt"

// Marker is a source position triple. Index and Col are zero-based; Line
// is one-based.
type Marker struct {
	Index int
	Line  int
	Col   int
}

func (m Marker) String() string {
	return fmt.Sprintf("line %d, column %d", m.Line, m.Col+1)
}

// Encoding identifies the stream's character encoding, carried on
// StreamStart. This implementation always decodes to Unicode code points
// before tokenizing, so UTF8 is the only value ever produced.
type Encoding int

const (
	UTF8Encoding Encoding = iota
)

// ScalarStyle distinguishes how a scalar token's text was written.
type ScalarStyle int

const (
	// Plain scalar, no quoting.
	Plain ScalarStyle = iota
	// SingleQuoted scalar: 'text'.
	SingleQuoted
	// DoubleQuoted scalar: "text".
	DoubleQuoted
	// Literal block scalar: |.
	Literal
	// Folded block scalar: >.
	Folded
)

func (s ScalarStyle) String() string {
	switch s {
	case Plain:
		return "Plain"
	case SingleQuoted:
		return "SingleQuoted"
	case DoubleQuoted:
		return "DoubleQuoted"
	case Literal:
		return "Literal"
	case Folded:
		return "Folded"
	default:
		return "ScalarStyle(?)"
	}
}

// Kind enumerates the structural token types the tokenizer emits.
type Kind int

const (
	NoToken Kind = iota

	StreamStart // The stream start. Carries Encoding.
	StreamEnd   // The stream end.

	VersionDirective // '%YAML' directive. Carries Major/Minor.
	TagDirective      // '%TAG' directive. Carries Handle/Prefix.
	DocumentStart     // '---'
	DocumentEnd       // '...'

	BlockSequenceStart // Indentation increase denoting a block sequence.
	BlockMappingStart  // Indentation increase denoting a block mapping.
	BlockEnd           // Indentation decrease.

	FlowSequenceStart // '['
	FlowSequenceEnd   // ']'
	FlowMappingStart  // '{'
	FlowMappingEnd    // '}'

	BlockEntry // '-'
	FlowEntry  // ','
	Key        // '?' or an implicit simple key.
	Value      // ':'

	Alias // '*name'. Carries Name.
	Anchor // '&name'. Carries Name.
	Tag    // '!handle!suffix'. Carries Handle/Suffix.
	Scalar // A scalar. Carries Style/Text.

	Comment // '#text'. Only produced when the tokenizer is asked for comments.
)

func (k Kind) String() string {
	switch k {
	case NoToken:
		return "NoToken"
	case StreamStart:
		return "StreamStart"
	case StreamEnd:
		return "StreamEnd"
	case VersionDirective:
		return "VersionDirective"
	case TagDirective:
		return "TagDirective"
	case DocumentStart:
		return "DocumentStart"
	case DocumentEnd:
		return "DocumentEnd"
	case BlockSequenceStart:
		return "BlockSequenceStart"
	case BlockMappingStart:
		return "BlockMappingStart"
	case BlockEnd:
		return "BlockEnd"
	case FlowSequenceStart:
		return "FlowSequenceStart"
	case FlowSequenceEnd:
		return "FlowSequenceEnd"
	case FlowMappingStart:
		return "FlowMappingStart"
	case FlowMappingEnd:
		return "FlowMappingEnd"
	case BlockEntry:
		return "BlockEntry"
	case FlowEntry:
		return "FlowEntry"
	case Key:
		return "Key"
	case Value:
		return "Value"
	case Alias:
		return "Alias"
	case Anchor:
		return "Anchor"
	case Tag:
		return "Tag"
	case Scalar:
		return "Scalar"
	case Comment:
		return "Comment"
	default:
		return "Kind(?)"
	}
}

// Token pairs a structural Kind with the source position it starts at and
// whatever payload that Kind carries.
type Token struct {
	Marker Marker
	Kind   Kind

	// Encoding is set for StreamStart.
	Encoding Encoding

	// Major, Minor are set for VersionDirective.
	Major, Minor int

	// Handle, Prefix are set for TagDirective. Handle, Suffix are set for
	// Tag. Only Handle is shared between the two; Tag never sets Prefix
	// and TagDirective never sets Suffix.
	Handle string
	Prefix string
	Suffix string

	// Name is set for Alias and Anchor.
	Name string

	// Style, Text are set for Scalar.
	Style ScalarStyle
	Text  string

	// Comment is set for Comment tokens (the text with every '#' and ' '
	// before its first other character already stripped).
	Comment string
}

func (t Token) String() string {
	switch t.Kind {
	case Scalar:
		return fmt.Sprintf("%s(%s,%q)", t.Kind, t.Style, t.Text)
	case Alias, Anchor:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Name)
	case Tag:
		return fmt.Sprintf("%s(%s,%s)", t.Kind, t.Handle, t.Suffix)
	case TagDirective:
		return fmt.Sprintf("%s(%s,%s)", t.Kind, t.Handle, t.Prefix)
	case VersionDirective:
		return fmt.Sprintf("%s(%d,%d)", t.Kind, t.Major, t.Minor)
	case Comment:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Comment)
	default:
		return t.Kind.String()
	}
}
