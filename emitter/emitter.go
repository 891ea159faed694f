// Package emitter renders an in-memory value.Value tree back to YAML
// text: block style by default, 2-space indentation, minimal quoting,
// and comment placement that mirrors where comments sit in the tree.
//
// It is adapted from the YamlEmitter of alevinval/yaml-rust
// (original_source/src/emitter.rs) in the teacher's package-splitting
// and error-wrapping idiom (internal/emitter).
package emitter

import (
	"fmt"
	"io"

	"github.com/kvx-labs/yamlcore/scalar"
	"github.com/kvx-labs/yamlcore/value"
)

// Emitter renders value.Value trees to a text sink. It is not safe for
// concurrent use; each Dump call is a separate document write sharing
// the same indentation level counter.
type Emitter struct {
	w          io.Writer
	bestIndent int
	compact    bool
	level      int

	err error
}

// New returns an Emitter writing to w with compact-inline mode on and
// 2-space indentation, matching the teacher's default construction.
func New(w io.Writer) *Emitter {
	return &Emitter{w: w, bestIndent: 2, compact: true, level: -1}
}

// SetCompact toggles compact-inline notation for block sequences and
// mappings (see spec section 4.2).
func (e *Emitter) SetCompact(compact bool) { e.compact = compact }

// IsCompact reports whether compact-inline notation is enabled.
func (e *Emitter) IsCompact() bool { return e.compact }

// Dump writes one document: the "---" marker, the root's leading inline
// comment if it has one, then the rendered tree.
func (e *Emitter) Dump(doc value.Value) error {
	e.err = nil
	e.level = -1
	e.writeString("---")

	switch doc.Kind() {
	case value.Array:
		items, _ := doc.Array()
		comment, hasLeading, body := value.LeadingArrayComment(items)
		if hasLeading {
			e.writeLeadingComment(comment)
		}
		e.writeBreak()
		e.emitArrayItems(body)
	case value.Hash:
		h, _ := doc.Hash()
		comment, hasLeading, body := value.LeadingHashComment(h.Entries())
		if hasLeading {
			e.writeLeadingComment(comment)
		}
		e.writeBreak()
		e.emitHashEntries(body)
	default:
		e.writeBreak()
		e.emitNode(doc)
	}
	return e.err
}

func (e *Emitter) writeLeadingComment(comment value.Value) {
	text, _, _ := comment.Comment()
	e.writeString(fmt.Sprintf(" #%s", text))
}

// emitNode writes a single node in "as-is" position (not preceded by a
// key, dash, or forced space).
func (e *Emitter) emitNode(v value.Value) {
	if e.err != nil {
		return
	}
	switch v.Kind() {
	case value.Array:
		items, _ := v.Array()
		e.emitArrayItems(items)
	case value.Hash:
		h, _ := v.Hash()
		e.emitHashEntries(h.Entries())
	case value.String:
		s, _ := v.String()
		if scalar.NeedQuotes(s) {
			if err := scalar.EscapeString(e.w, s); err != nil {
				e.fail(newSinkError(err))
			}
		} else {
			e.writeString(s)
		}
	case value.Bool:
		b, _ := v.Bool()
		if b {
			e.writeString("true")
		} else {
			e.writeString("false")
		}
	case value.Int:
		i, _ := v.Int()
		e.writeString(fmt.Sprintf("%d", i))
	case value.Real:
		r, _ := v.Real()
		e.writeString(r)
	case value.Comment:
		text, inline, _ := v.Comment()
		if inline {
			e.writeString(fmt.Sprintf(" #%s", text))
		} else {
			e.writeString(fmt.Sprintf("#%s", text))
		}
	case value.Null, value.BadValue:
		e.writeString("~")
	case value.Alias:
		// Aliases are resolved by the loader; the emitter writes nothing,
		// matching the teacher's "silent" alias handling.
	}
}

func (e *Emitter) emitArrayItems(items []value.Value) {
	if e.err != nil {
		return
	}
	if len(items) == 0 {
		e.writeString("[]")
		return
	}

	e.level++
	shown := 0
	for i := 0; i < len(items); i++ {
		entry := items[i]
		if shown > 0 {
			e.emitLineBegin()
		}
		shown++

		if entry.IsComment() {
			e.emitNode(entry)
			continue
		}

		e.writeString("-")
		e.emitValue(true, entry)

		if i+1 < len(items) {
			if _, inline, ok := items[i+1].Comment(); ok && inline {
				e.emitNode(items[i+1])
				i++
			}
		}
	}
	e.level--
}

func (e *Emitter) emitHashEntries(entries []value.Entry) {
	if e.err != nil {
		return
	}
	if len(entries) == 0 {
		e.writeString("{}")
		return
	}

	e.level++
	shown := 0
	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if shown > 0 {
			e.emitLineBegin()
		}
		shown++

		key, val := entry.Key, entry.Value
		if key.IsComment() {
			e.emitNode(key)
			continue
		}

		if key.IsComplex() {
			e.writeString("?")
			e.emitValue(true, key)
			e.emitLineBegin()
			e.writeString(":")
			e.emitValue(true, val)
		} else {
			e.emitNode(key)
			e.writeString(":")
			e.emitValue(false, val)
		}

		if i+1 < len(entries) {
			if _, inline, ok := entries[i+1].Key.Comment(); ok && inline {
				e.emitNode(entries[i+1].Key)
				i++
			}
		}
	}
	e.level--
}

// emitValue renders v in value position: following a ":" or "-", either
// on the same line after a space or, for a nonempty nested container, on
// the next line at one deeper indent.
func (e *Emitter) emitValue(inline bool, v value.Value) {
	if e.err != nil {
		return
	}
	switch v.Kind() {
	case value.Array:
		items, _ := v.Array()
		comment, hasLeading, body := value.LeadingArrayComment(items)
		if hasLeading {
			e.writeLeadingComment(comment)
		}
		if (inline && e.compact) || len(body) == 0 {
			e.writeString(" ")
		} else {
			e.writeBreak()
			e.level++
			e.emitIndent()
			e.level--
		}
		e.emitArrayItems(body)
	case value.Hash:
		h, _ := v.Hash()
		comment, hasLeading, body := value.LeadingHashComment(h.Entries())
		if hasLeading {
			e.writeLeadingComment(comment)
		}
		if (inline && e.compact) || len(body) == 0 {
			e.writeString(" ")
		} else {
			e.writeBreak()
			e.level++
			e.emitIndent()
			e.level--
		}
		e.emitHashEntries(body)
	case value.Comment:
		e.fail(newEmitError("comment is not valid in value position"))
	default:
		e.writeString(" ")
		e.emitNode(v)
	}
}

func (e *Emitter) emitLineBegin() {
	e.writeBreak()
	e.emitIndent()
}

func (e *Emitter) emitIndent() {
	if e.err != nil {
		return
	}
	n := e.level * e.bestIndent
	for i := 0; i < n; i++ {
		e.writeString(" ")
	}
}

func (e *Emitter) writeString(s string) {
	if e.err != nil {
		return
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		e.fail(newSinkError(err))
	}
}

func (e *Emitter) writeBreak() { e.writeString("\n") }

func (e *Emitter) fail(err error) {
	if err != nil && e.err == nil {
		e.err = err
	}
}
