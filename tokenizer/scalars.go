package tokenizer

import (
	"github.com/kvx-labs/yamlcore/scalar"
	"github.com/kvx-labs/yamlcore/token"
)

func (t *Tokenizer) fetchBlockScalar(literal bool) error {
	if err := t.saveSimpleKey(); err != nil {
		return err
	}
	t.allowSimpleKey()

	tok, err := t.scanBlockScalar(literal)
	if err != nil {
		return err
	}
	t.pushToken(tok)
	return nil
}

// scanBlockScalar implements the chomping- and indentation-indicator
// mechanics of a literal ('|') or folded ('>') block scalar (spec
// section 4.2, "Block scalars").
func (t *Tokenizer) scanBlockScalar(literal bool) (token.Token, error) {
	startMark := t.mark
	chomping := 0
	increment := 0
	indent := 0
	leadingBlank := false

	var s, leadingBreak, trailingBreaks []rune

	t.skip() // '|' or '>'
	t.lookahead(1)

	if t.ch() == '+' || t.ch() == '-' {
		if t.ch() == '+' {
			chomping = 1
		} else {
			chomping = -1
		}
		t.skip()
		t.lookahead(1)
		if isDigit(t.ch()) {
			if t.ch() == '0' {
				return token.Token{}, newScanError(startMark, "while scanning a block scalar, found an indentation indicator equal to 0")
			}
			increment = int(t.ch() - '0')
			t.skip()
		}
	} else if isDigit(t.ch()) {
		if t.ch() == '0' {
			return token.Token{}, newScanError(startMark, "while scanning a block scalar, found an indentation indicator equal to 0")
		}
		increment = int(t.ch() - '0')
		t.skip()
		t.lookahead(1)
		if t.ch() == '+' || t.ch() == '-' {
			if t.ch() == '+' {
				chomping = 1
			} else {
				chomping = -1
			}
			t.skip()
		}
	}

	t.lookahead(1)
	for isBlank(t.ch()) {
		t.skip()
		t.lookahead(1)
	}
	if t.ch() == '#' {
		for !isBreakZ(t.ch()) {
			t.skip()
			t.lookahead(1)
		}
	}

	if !isBreakZ(t.ch()) {
		return token.Token{}, newScanError(startMark, "while scanning a block scalar, did not find expected comment or line break")
	}

	if isBreak(t.ch()) {
		t.lookahead(2)
		t.skipBreak()
	}

	if increment > 0 {
		if t.indent >= 0 {
			indent = t.indent + increment
		} else {
			indent = increment
		}
	}

	if err := t.blockScalarBreaks(&indent, &trailingBreaks); err != nil {
		return token.Token{}, err
	}

	t.lookahead(1)
	startMark = t.mark

	for t.mark.Col == indent && !isZ(t.ch()) {
		trailingBlank := isBlank(t.ch())
		if !literal && len(leadingBreak) > 0 && !leadingBlank && !trailingBlank {
			if len(trailingBreaks) == 0 {
				s = append(s, ' ')
			}
			leadingBreak = leadingBreak[:0]
		} else {
			s = append(s, leadingBreak...)
			leadingBreak = leadingBreak[:0]
		}

		s = append(s, trailingBreaks...)
		trailingBreaks = trailingBreaks[:0]

		leadingBlank = isBlank(t.ch())

		for !isBreakZ(t.ch()) {
			s = append(s, t.ch())
			t.skip()
			t.lookahead(1)
		}
		if isZ(t.ch()) {
			break
		}

		t.lookahead(2)
		t.readBreak(&leadingBreak)

		if err := t.blockScalarBreaks(&indent, &trailingBreaks); err != nil {
			return token.Token{}, err
		}
	}

	if chomping != -1 {
		s = append(s, leadingBreak...)
	}
	if chomping == 1 {
		s = append(s, trailingBreaks...)
	}

	style := token.Literal
	if !literal {
		style = token.Folded
	}
	return token.Token{Marker: startMark, Kind: token.Scalar, Style: style, Text: string(s)}, nil
}

func (t *Tokenizer) blockScalarBreaks(indent *int, breaks *[]rune) error {
	maxIndent := 0
	for {
		t.lookahead(1)
		for (*indent == 0 || t.mark.Col < *indent) && t.chAt(0) == ' ' {
			t.skip()
			t.lookahead(1)
		}

		if t.mark.Col > maxIndent {
			maxIndent = t.mark.Col
		}

		if (*indent == 0 || t.mark.Col < *indent) && t.chAt(0) == '\t' {
			return newScanError(t.mark, "while scanning a block scalar, found a tab character where an indentation space is expected")
		}

		if !isBreak(t.ch()) {
			break
		}
		t.lookahead(2)
		t.readBreak(breaks)
	}

	if *indent == 0 {
		*indent = maxIndent
		if *indent < t.indent+1 {
			*indent = t.indent + 1
		}
		if *indent < 1 {
			*indent = 1
		}
	}
	return nil
}

func (t *Tokenizer) fetchFlowScalar(single bool) error {
	if err := t.saveSimpleKey(); err != nil {
		return err
	}
	t.disallowSimpleKey()

	tok, err := t.scanFlowScalar(single)
	if err != nil {
		return err
	}

	// A flow-scalar key may be followed immediately by ':' with no
	// space, per the JSON-compatibility carve-out (spec section 4.1).
	t.adjacentValueAllowedAt = t.mark.Index

	t.pushToken(tok)
	return nil
}

func (t *Tokenizer) scanFlowScalar(single bool) (token.Token, error) {
	startMark := t.mark

	var s, leadingBreak, trailingBreaks, whitespaces []rune

	t.skip() // left quote

	for {
		t.lookahead(4)

		if t.mark.Col == 0 &&
			((t.chAt(0) == '-' && t.chAt(1) == '-' && t.chAt(2) == '-') ||
				(t.chAt(0) == '.' && t.chAt(1) == '.' && t.chAt(2) == '.')) &&
			isBlankZ(t.chAt(3)) {
			return token.Token{}, newScanError(startMark, "while scanning a quoted scalar, found unexpected document indicator")
		}

		if isZ(t.ch()) {
			return token.Token{}, newScanError(startMark, "while scanning a quoted scalar, found unexpected end of stream")
		}

		t.lookahead(2)

		leadingBlanks := false

		for !isBlankZ(t.ch()) {
			switch {
			case t.chIs('\'') && t.chAt(1) == '\'' && single:
				s = append(s, '\'')
				t.skip()
				t.skip()
			case t.chIs('\'') && single:
				goto endRun
			case t.chIs('"') && !single:
				goto endRun
			case t.chIs('\\') && !single && isBreak(t.chAt(1)):
				t.lookahead(3)
				t.skip()
				t.skipBreak()
				leadingBlanks = true
				goto endRun
			case t.chIs('\\') && !single:
				codeLength := 0
				letter := byte(t.chAt(1))
				if letter == '\t' {
					s = append(s, '\t')
				} else if r, ok := scalar.DecodeNamedEscape(letter); ok {
					s = append(s, r)
				} else {
					switch letter {
					case 'x':
						codeLength = 2
					case 'u':
						codeLength = 4
					case 'U':
						codeLength = 8
					default:
						return token.Token{}, newScanError(startMark, "while parsing a quoted scalar, found unknown escape character")
					}
				}
				t.skip()
				t.skip()
				if codeLength > 0 {
					t.lookahead(codeLength)
					var value uint32
					for i := 0; i < codeLength; i++ {
						if !isHex(t.chAt(i)) {
							return token.Token{}, newScanError(startMark, "while parsing a quoted scalar, did not find expected hexadecimal number")
						}
						value = (value << 4) + asHex(t.chAt(i))
					}
					if !isValidUnicode(value) {
						return token.Token{}, newScanError(startMark, "while parsing a quoted scalar, found invalid Unicode character escape code")
					}
					s = append(s, rune(value))
					for i := 0; i < codeLength; i++ {
						t.skip()
					}
				}
			default:
				s = append(s, t.ch())
				t.skip()
			}
			t.lookahead(2)
		}
	endRun:

		t.lookahead(1)
		if (single && t.chIs('\'')) || (!single && t.chIs('"')) {
			break
		}

		for isBlank(t.ch()) || isBreak(t.ch()) {
			if isBlank(t.ch()) {
				if leadingBlanks {
					t.skip()
				} else {
					whitespaces = append(whitespaces, t.ch())
					t.skip()
				}
			} else {
				t.lookahead(2)
				if leadingBlanks {
					t.readBreak(&trailingBreaks)
				} else {
					whitespaces = whitespaces[:0]
					t.readBreak(&leadingBreak)
					leadingBlanks = true
				}
			}
			t.lookahead(1)
		}

		if leadingBlanks {
			if len(leadingBreak) == 0 {
				s = append(s, leadingBreak...)
				s = append(s, trailingBreaks...)
				trailingBreaks = trailingBreaks[:0]
				leadingBreak = leadingBreak[:0]
			} else {
				if len(trailingBreaks) == 0 {
					s = append(s, ' ')
				} else {
					s = append(s, trailingBreaks...)
					trailingBreaks = trailingBreaks[:0]
				}
				leadingBreak = leadingBreak[:0]
			}
		} else {
			s = append(s, whitespaces...)
			whitespaces = whitespaces[:0]
		}
	}

	t.skip() // right quote

	style := token.SingleQuoted
	if !single {
		style = token.DoubleQuoted
	}
	return token.Token{Marker: startMark, Kind: token.Scalar, Style: style, Text: string(s)}, nil
}

func (t *Tokenizer) fetchPlainScalar() error {
	if err := t.saveSimpleKey(); err != nil {
		return err
	}
	t.disallowSimpleKey()

	tok, err := t.scanPlainScalar()
	if err != nil {
		return err
	}
	t.pushToken(tok)
	return nil
}

func (t *Tokenizer) scanPlainScalar() (token.Token, error) {
	indent := t.indent + 1
	startMark := t.mark

	var s, leadingBreak, trailingBreaks, whitespaces []rune
	leadingBlanks := false

	for {
		t.lookahead(4)

		if t.mark.Col == 0 &&
			((t.chAt(0) == '-' && t.chAt(1) == '-' && t.chAt(2) == '-') ||
				(t.chAt(0) == '.' && t.chAt(1) == '.' && t.chAt(2) == '.')) &&
			isBlankZ(t.chAt(3)) {
			break
		}

		if t.chIs('#') {
			break
		}

		for !isBlankZ(t.ch()) {
			if t.chIs(':') && (isBlankZ(t.chAt(1)) || (t.flowLevel > 0 && isFlowIndicator(t.chAt(1)))) {
				break
			}
			if t.flowLevel > 0 {
				switch t.ch() {
				case ',', '[', ']', '{', '}':
					goto endLine
				}
			}

			if leadingBlanks || len(whitespaces) > 0 {
				if leadingBlanks {
					if len(leadingBreak) == 0 {
						s = append(s, leadingBreak...)
						s = append(s, trailingBreaks...)
						trailingBreaks = trailingBreaks[:0]
						leadingBreak = leadingBreak[:0]
					} else {
						if len(trailingBreaks) == 0 {
							s = append(s, ' ')
						} else {
							s = append(s, trailingBreaks...)
							trailingBreaks = trailingBreaks[:0]
						}
						leadingBreak = leadingBreak[:0]
					}
					leadingBlanks = false
				} else {
					s = append(s, whitespaces...)
					whitespaces = whitespaces[:0]
				}
			}

			s = append(s, t.ch())
			t.skip()
			t.lookahead(2)
		}
	endLine:

		if !(isBlank(t.ch()) || isBreak(t.ch())) {
			break
		}
		t.lookahead(1)

		for isBlank(t.ch()) || isBreak(t.ch()) {
			if isBlank(t.ch()) {
				if leadingBlanks && t.mark.Col < indent && t.chIs('\t') {
					return token.Token{}, newScanError(startMark, "while scanning a plain scalar, found a tab")
				}
				if leadingBlanks {
					t.skip()
				} else {
					whitespaces = append(whitespaces, t.ch())
					t.skip()
				}
			} else {
				t.lookahead(2)
				if leadingBlanks {
					t.readBreak(&trailingBreaks)
				} else {
					whitespaces = whitespaces[:0]
					t.readBreak(&leadingBreak)
					leadingBlanks = true
				}
			}
			t.lookahead(1)
		}

		if t.flowLevel == 0 && t.mark.Col < indent {
			break
		}
	}

	if leadingBlanks {
		t.allowSimpleKey()
	}

	return token.Token{Marker: startMark, Kind: token.Scalar, Style: token.Plain, Text: string(s)}, nil
}
