package tokenizer

import "github.com/kvx-labs/yamlcore/token"

// staleSimpleKeys ages out simple keys that can no longer become a key:
// the YAML 1.2 spec limits a simple key to a single line and 1024 code
// points of lookahead (spec section 4.1, "Simple-key mechanics").
func (t *Tokenizer) staleSimpleKeys() error {
	for i := range t.simpleKeys {
		sk := &t.simpleKeys[i]
		if sk.possible && (sk.mark.Line < t.mark.Line || sk.mark.Index+1024 < t.mark.Index) {
			if sk.required {
				return newScanError(t.mark, "could not find expected ':'")
			}
			sk.possible = false
		}
	}
	return nil
}

// saveSimpleKey records the current position as a possible simple key if
// the scanner is in a context where one may start here. A key is
// required (may not later be cancelled) only inside flow context at the
// current indentation column.
func (t *Tokenizer) saveSimpleKey() error {
	required := t.flowLevel > 0 && t.indent == t.mark.Col
	if t.simpleKeyAllowed {
		if err := t.removeSimpleKey(); err != nil {
			return err
		}
		t.simpleKeys[len(t.simpleKeys)-1] = simpleKey{
			possible:    true,
			required:    required,
			tokenNumber: t.tokensParsed + len(t.tokens),
			mark:        t.mark,
		}
	}
	return nil
}

// removeSimpleKey cancels the possible simple key at the current flow
// level; it is an error to cancel one that was required.
func (t *Tokenizer) removeSimpleKey() error {
	last := &t.simpleKeys[len(t.simpleKeys)-1]
	if last.possible && last.required {
		return newScanError(t.mark, "could not find expected ':'")
	}
	last.possible = false
	return nil
}

func (t *Tokenizer) increaseFlowLevel() error {
	t.simpleKeys = append(t.simpleKeys, simpleKey{})
	t.flowLevel++
	if t.flowLevel > maxFlowLevel {
		return newScanError(t.mark, "exceeded max flow depth of %d", maxFlowLevel)
	}
	return nil
}

func (t *Tokenizer) decreaseFlowLevel() {
	if t.flowLevel > 0 {
		t.flowLevel--
		t.simpleKeys = t.simpleKeys[:len(t.simpleKeys)-1]
	}
}

// rollIndent pushes the current indent and emits (or retroactively
// inserts, when number >= 0) a block-collection-start token if col is
// deeper than the current indentation. A no-op inside flow context,
// where indentation carries no meaning.
func (t *Tokenizer) rollIndent(col int, number int, kind token.Kind, mark token.Marker) error {
	if t.flowLevel > 0 {
		return nil
	}
	if t.indent < col {
		t.indents = append(t.indents, t.indent)
		t.indent = col
		if len(t.indents) > maxIndents {
			return newScanError(mark, "exceeded max indentation depth of %d", maxIndents)
		}
		tok := token.Token{Marker: mark, Kind: kind}
		if number >= 0 {
			t.insertToken(number-t.tokensParsed, tok)
		} else {
			t.pushToken(tok)
		}
	}
	return nil
}

// unrollIndent pops indentation levels deeper than col, emitting one
// BlockEnd per pop.
func (t *Tokenizer) unrollIndent(col int) {
	if t.flowLevel > 0 {
		return
	}
	for t.indent > col {
		t.pushToken(token.Token{Marker: t.mark, Kind: token.BlockEnd})
		t.indent = t.indents[len(t.indents)-1]
		t.indents = t.indents[:len(t.indents)-1]
	}
}
