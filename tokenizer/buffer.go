package tokenizer

// lookahead ensures buf holds at least n code points, padding with '\0'
// once the source is exhausted (spec section 9).
func (t *Tokenizer) lookahead(n int) {
	for len(t.buf) < n {
		if t.srcExhausted {
			t.buf = append(t.buf, 0)
			continue
		}
		r, ok := t.src.ReadRune()
		if !ok {
			t.srcExhausted = true
			r = 0
		}
		t.buf = append(t.buf, r)
	}
}

// chAt returns the i'th lookahead character, assuming lookahead(i+1) was
// already called.
func (t *Tokenizer) chAt(i int) rune { return t.buf[i] }

func (t *Tokenizer) ch() rune { return t.buf[0] }

func (t *Tokenizer) chIs(r rune) bool { return t.buf[0] == r }

// skip consumes exactly one non-break code point, advancing the mark by
// one column. Breaks must go through skipBreak/readBreak instead so that
// \r, \n and \r\n all normalize to a single line advance (spec section
// 6); calling skip on a break character under-counts lines for lone \r,
// a latent bug in the libyaml-derived scanners this was adapted from.
func (t *Tokenizer) skip() {
	t.buf = t.buf[1:]
	t.mark.Index++
	t.mark.Col++
}

// skipBreak consumes one line break — "\n", "\r", or "\r\n" — as a
// single unit: the mark's line increments once and its column resets,
// regardless of which of the three forms was present.
func (t *Tokenizer) skipBreak() {
	n := 1
	if t.buf[0] == '\r' && t.buf[1] == '\n' {
		n = 2
	}
	t.buf = t.buf[n:]
	t.mark.Index += n
	t.mark.Line++
	t.mark.Col = 0
}

// readBreak consumes one line break like skipBreak and appends the
// normalized form ('\n') to sb.
func (t *Tokenizer) readBreak(sb *[]rune) {
	*sb = append(*sb, '\n')
	t.skipBreak()
}

func isZ(r rune) bool      { return r == 0 }
func isBreak(r rune) bool  { return r == '\n' || r == '\r' }
func isBreakZ(r rune) bool { return isBreak(r) || isZ(r) }
func isBlank(r rune) bool  { return r == ' ' || r == '\t' }
func isBlankZ(r rune) bool { return isBlank(r) || isBreakZ(r) }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isAlpha(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '-'
}
func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
func asHex(r rune) uint32 {
	switch {
	case r >= '0' && r <= '9':
		return uint32(r - '0')
	case r >= 'a' && r <= 'f':
		return uint32(r-'a') + 10
	default:
		return uint32(r-'A') + 10
	}
}
func isFlowIndicator(r rune) bool {
	switch r {
	case ',', '[', ']', '{', '}':
		return true
	default:
		return false
	}
}
