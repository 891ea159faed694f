// Package value holds the in-memory YAML tree that the emitter renders
// and that the (out-of-scope) loader builds from a tokenizer.Token
// stream.
//
// It is a leaf package (it imports nothing else from the module); the
// emitter and the yamlcorefmt command build on the Kind/Value vocabulary
// defined here.
package value

import "fmt"

// Kind discriminates the variant held by a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Real
	String
	Array
	Hash
	Comment
	Alias
	BadValue
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "Null"
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case Real:
		return "Real"
	case String:
		return "String"
	case Array:
		return "Array"
	case Hash:
		return "Hash"
	case Comment:
		return "Comment"
	case Alias:
		return "Alias"
	case BadValue:
		return "BadValue"
	default:
		return "Kind(?)"
	}
}

// Value is a tagged union mirroring a YAML node. Only the fields relevant
// to Kind are meaningful; the zero Value is Null.
//
// Real is kept as the original lexical text (never parsed to float64) so
// that re-emitting a loaded document never loses precision or an exponent
// form. Comment nodes are stored as ordinary elements of their
// surrounding Array/Hash so that their position relative to siblings is
// preserved; see the package-level invariants below.
type Value struct {
	kind Kind

	boolVal    bool
	intVal     int64
	realVal    string
	stringVal  string
	arrayVal   []Value
	hashVal    *Hash
	commentVal string
	inline     bool // Comment: same line as the preceding element.
	aliasVal   string
}

// Invariants enforced by callers constructing a tree (the loader) and
// relied on by the emitter:
//
//   - A Comment that is the first child of an Array or Hash belongs to the
//     parent container, not to this container; LeadingArrayComment and
//     LeadingHashComment (container.go) let callers detect and skip it.
//   - A Comment is never legal in hash *value* position; emitting one
//     there is a programmer error (see emitter.EmitError).

func NewNull() Value      { return Value{kind: Null} }
func NewBadValue() Value  { return Value{kind: BadValue} }
func NewBool(b bool) Value { return Value{kind: Bool, boolVal: b} }
func NewInt(i int64) Value { return Value{kind: Int, intVal: i} }

// NewReal stores s verbatim; s is expected to already be a valid YAML
// float/inf/nan literal but is never parsed or reformatted.
func NewReal(s string) Value { return Value{kind: Real, realVal: s} }

func NewString(s string) Value { return Value{kind: String, stringVal: s} }

func NewArray(items []Value) Value { return Value{kind: Array, arrayVal: items} }

func NewHash(h *Hash) Value { return Value{kind: Hash, hashVal: h} }

// NewComment builds a Comment element. inline marks that it shares a line
// with the preceding value in its container.
func NewComment(text string, inline bool) Value {
	return Value{kind: Comment, commentVal: text, inline: inline}
}

func NewAlias(id string) Value { return Value{kind: Alias, aliasVal: id} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool      { return v.kind == Null || v.kind == BadValue }
func (v Value) IsBadValue() bool  { return v.kind == BadValue }
func (v Value) IsComment() bool   { return v.kind == Comment }
func (v Value) IsAlias() bool     { return v.kind == Alias }
func (v Value) IsArray() bool     { return v.kind == Array }
func (v Value) IsHash() bool      { return v.kind == Hash }

// IsComplex reports whether v would require the explicit `? … : …` hash
// key form because it is itself a compound value.
func (v Value) IsComplex() bool { return v.kind == Array || v.kind == Hash }

func (v Value) Bool() (bool, bool) {
	return v.boolVal, v.kind == Bool
}

func (v Value) Int() (int64, bool) {
	return v.intVal, v.kind == Int
}

// Real returns the preserved lexical text of a real/float literal.
func (v Value) Real() (string, bool) {
	return v.realVal, v.kind == Real
}

func (v Value) String() (string, bool) {
	return v.stringVal, v.kind == String
}

func (v Value) Array() ([]Value, bool) {
	return v.arrayVal, v.kind == Array
}

func (v Value) Hash() (*Hash, bool) {
	return v.hashVal, v.kind == Hash
}

// Comment returns the comment text and whether it is inline.
func (v Value) Comment() (text string, inline bool, ok bool) {
	return v.commentVal, v.inline, v.kind == Comment
}

func (v Value) Alias() (string, bool) {
	return v.aliasVal, v.kind == Alias
}

func (v Value) GoString() string {
	switch v.kind {
	case Null, BadValue:
		return v.kind.String()
	case Bool:
		return fmt.Sprintf("Bool(%v)", v.boolVal)
	case Int:
		return fmt.Sprintf("Int(%d)", v.intVal)
	case Real:
		return fmt.Sprintf("Real(%s)", v.realVal)
	case String:
		return fmt.Sprintf("String(%q)", v.stringVal)
	case Array:
		return fmt.Sprintf("Array(%d items)", len(v.arrayVal))
	case Hash:
		return fmt.Sprintf("Hash(%d entries)", v.hashVal.Len())
	case Comment:
		return fmt.Sprintf("Comment(%q, inline=%v)", v.commentVal, v.inline)
	case Alias:
		return fmt.Sprintf("Alias(%s)", v.aliasVal)
	default:
		return "Value(?)"
	}
}
