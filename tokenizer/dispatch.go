package tokenizer

import "github.com/kvx-labs/yamlcore/token"

// fetchNextToken decides, from at most 4 characters of lookahead, which
// single token to fetch next and appends it to the queue. This is the
// main dispatch switch described in spec section 4.1 item 6.
func (t *Tokenizer) fetchNextToken() error {
	t.lookahead(1)

	if !t.streamStartProduced {
		t.fetchStreamStart()
		return nil
	}

	t.skipToNextToken()

	if err := t.staleSimpleKeys(); err != nil {
		return err
	}

	mark := t.mark
	t.unrollIndent(mark.Col)

	t.lookahead(4)

	if isZ(t.ch()) {
		return t.fetchStreamEnd()
	}

	if t.mark.Col == 0 && t.chIs('%') {
		return t.fetchDirective()
	}

	if t.mark.Col == 0 && t.chAt(0) == '-' && t.chAt(1) == '-' && t.chAt(2) == '-' && isBlankZ(t.chAt(3)) {
		return t.fetchDocumentIndicator(token.DocumentStart)
	}

	if t.mark.Col == 0 && t.chAt(0) == '.' && t.chAt(1) == '.' && t.chAt(2) == '.' && isBlankZ(t.chAt(3)) {
		return t.fetchDocumentIndicator(token.DocumentEnd)
	}

	c := t.chAt(0)
	nc := t.chAt(1)

	switch {
	case c == '[':
		return t.fetchFlowCollectionStart(token.FlowSequenceStart)
	case c == '{':
		return t.fetchFlowCollectionStart(token.FlowMappingStart)
	case c == ']':
		return t.fetchFlowCollectionEnd(token.FlowSequenceEnd)
	case c == '}':
		return t.fetchFlowCollectionEnd(token.FlowMappingEnd)
	case c == ',':
		return t.fetchFlowEntry()
	case c == '-' && isBlankZ(nc):
		return t.fetchBlockEntry()
	case c == '?' && isBlankZ(nc):
		return t.fetchKey()
	case c == ':' && (isBlankZ(nc) || (t.flowLevel > 0 && (isFlowIndicator(nc) || t.mark.Index == t.adjacentValueAllowedAt))):
		return t.fetchValue()
	case c == '*':
		return t.fetchAnchor(true)
	case c == '&':
		return t.fetchAnchor(false)
	case c == '!':
		return t.fetchTag()
	case c == '|' && t.flowLevel == 0:
		return t.fetchBlockScalar(true)
	case c == '>' && t.flowLevel == 0:
		return t.fetchBlockScalar(false)
	case c == '\'':
		return t.fetchFlowScalar(true)
	case c == '"':
		return t.fetchFlowScalar(false)
	case c == '-' && !isBlankZ(nc):
		return t.fetchPlainScalar()
	case (c == ':' || c == '?') && !isBlankZ(nc) && t.flowLevel == 0:
		return t.fetchPlainScalar()
	case c == '#' && t.withComments:
		return t.fetchComment()
	case c == '%' || c == '@' || c == '`':
		return newScanError(t.mark, "unexpected character: %q", c)
	default:
		return t.fetchPlainScalar()
	}
}

// skipToNextToken eats insignificant whitespace, line breaks, and (when
// comments are not surfaced) comment text, stopping right before the
// first character that can start a token.
func (t *Tokenizer) skipToNextToken() {
	for {
		t.lookahead(1)
		switch {
		case t.chIs(' '):
			t.skip()
		case t.chIs('\t') && (t.flowLevel > 0 || !t.simpleKeyAllowed):
			t.skip()
		case isBreak(t.ch()):
			t.lookahead(2)
			t.skipBreak()
			if t.flowLevel == 0 {
				t.allowSimpleKey()
			}
		case t.chIs('#') && !t.withComments:
			for !isBreakZ(t.ch()) {
				t.skip()
				t.lookahead(1)
			}
		default:
			return
		}
	}
}

func (t *Tokenizer) fetchStreamStart() {
	mark := t.mark
	t.indent = -1
	t.streamStartProduced = true
	t.allowSimpleKey()
	t.pushToken(token.Token{Marker: mark, Kind: token.StreamStart, Encoding: token.UTF8Encoding})
	t.simpleKeys = append(t.simpleKeys, simpleKey{})
}

func (t *Tokenizer) fetchStreamEnd() error {
	if t.mark.Col != 0 {
		t.mark.Col = 0
		t.mark.Line++
	}
	t.unrollIndent(-1)
	if err := t.removeSimpleKey(); err != nil {
		return err
	}
	t.disallowSimpleKey()
	t.pushToken(token.Token{Marker: t.mark, Kind: token.StreamEnd})
	return nil
}

func (t *Tokenizer) fetchDocumentIndicator(kind token.Kind) error {
	t.unrollIndent(-1)
	if err := t.removeSimpleKey(); err != nil {
		return err
	}
	t.disallowSimpleKey()

	mark := t.mark
	t.skip()
	t.skip()
	t.skip()

	t.pushToken(token.Token{Marker: mark, Kind: kind})
	return nil
}

func (t *Tokenizer) fetchFlowCollectionStart(kind token.Kind) error {
	if err := t.saveSimpleKey(); err != nil {
		return err
	}
	if err := t.increaseFlowLevel(); err != nil {
		return err
	}
	t.allowSimpleKey()

	mark := t.mark
	t.skip()
	t.pushToken(token.Token{Marker: mark, Kind: kind})
	return nil
}

func (t *Tokenizer) fetchFlowCollectionEnd(kind token.Kind) error {
	if err := t.removeSimpleKey(); err != nil {
		return err
	}
	t.decreaseFlowLevel()
	t.disallowSimpleKey()

	mark := t.mark
	t.skip()
	t.pushToken(token.Token{Marker: mark, Kind: kind})
	return nil
}

func (t *Tokenizer) fetchFlowEntry() error {
	if err := t.removeSimpleKey(); err != nil {
		return err
	}
	t.allowSimpleKey()

	mark := t.mark
	t.skip()
	t.pushToken(token.Token{Marker: mark, Kind: token.FlowEntry})
	return nil
}

func (t *Tokenizer) fetchBlockEntry() error {
	if t.flowLevel == 0 {
		if !t.simpleKeyAllowed {
			return newScanError(t.mark, "block sequence entries are not allowed in this context")
		}
		mark := t.mark
		if err := t.rollIndent(mark.Col, -1, token.BlockSequenceStart, mark); err != nil {
			return err
		}
	} else {
		return newScanError(t.mark, "\"-\" is only valid inside a block")
	}

	if err := t.removeSimpleKey(); err != nil {
		return err
	}
	t.allowSimpleKey()

	mark := t.mark
	t.skip()
	t.pushToken(token.Token{Marker: mark, Kind: token.BlockEntry})
	return nil
}

func (t *Tokenizer) fetchKey() error {
	mark := t.mark
	if t.flowLevel == 0 {
		if !t.simpleKeyAllowed {
			return newScanError(t.mark, "mapping keys are not allowed in this context")
		}
		if err := t.rollIndent(mark.Col, -1, token.BlockMappingStart, mark); err != nil {
			return err
		}
	}

	if err := t.removeSimpleKey(); err != nil {
		return err
	}

	if t.flowLevel == 0 {
		t.allowSimpleKey()
	} else {
		t.disallowSimpleKey()
	}

	t.skip()
	t.pushToken(token.Token{Marker: mark, Kind: token.Key})
	return nil
}

func (t *Tokenizer) fetchValue() error {
	sk := t.simpleKeys[len(t.simpleKeys)-1]
	mark := t.mark

	if sk.possible {
		tok := token.Token{Marker: sk.mark, Kind: token.Key}
		t.insertToken(sk.tokenNumber-t.tokensParsed, tok)

		if err := t.rollIndent(sk.mark.Col, sk.tokenNumber, token.BlockMappingStart, mark); err != nil {
			return err
		}

		t.simpleKeys[len(t.simpleKeys)-1].possible = false
		t.disallowSimpleKey()
	} else {
		if t.flowLevel == 0 {
			if !t.simpleKeyAllowed {
				return newScanError(mark, "mapping values are not allowed in this context")
			}
			if err := t.rollIndent(mark.Col, -1, token.BlockMappingStart, mark); err != nil {
				return err
			}
		}

		if t.flowLevel == 0 {
			t.allowSimpleKey()
		} else {
			t.disallowSimpleKey()
		}
	}

	t.skip()
	t.pushToken(token.Token{Marker: mark, Kind: token.Value})
	return nil
}
