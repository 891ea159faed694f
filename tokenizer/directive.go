package tokenizer

import "github.com/kvx-labs/yamlcore/token"

func (t *Tokenizer) fetchDirective() error {
	t.unrollIndent(-1)
	if err := t.removeSimpleKey(); err != nil {
		return err
	}
	t.disallowSimpleKey()

	tok, err := t.scanDirective()
	if err != nil {
		return err
	}
	t.pushToken(tok)
	return nil
}

func (t *Tokenizer) scanDirective() (token.Token, error) {
	startMark := t.mark
	t.skip() // '%'

	name, err := t.scanDirectiveName()
	if err != nil {
		return token.Token{}, err
	}

	var tok token.Token
	switch name {
	case "YAML":
		tok, err = t.scanVersionDirectiveValue(startMark)
		if err != nil {
			return token.Token{}, err
		}
	case "TAG":
		tok, err = t.scanTagDirectiveValue(startMark)
		if err != nil {
			return token.Token{}, err
		}
	default:
		// Unknown directive: skip the rest of the line and emit an
		// empty tag directive rather than failing the whole document.
		t.lookahead(1)
		for !isBreakZ(t.ch()) {
			t.skip()
			t.lookahead(1)
		}
		tok = token.Token{Marker: startMark, Kind: token.TagDirective}
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
		return token.Token{}, newScanError(startMark, "while scanning a directive, did not find expected comment or line break")
	}

	if isBreak(t.ch()) {
		t.lookahead(2)
		t.skipBreak()
	}

	return tok, nil
}

func (t *Tokenizer) scanDirectiveName() (string, error) {
	startMark := t.mark
	var s []rune
	t.lookahead(1)
	for isAlpha(t.ch()) {
		s = append(s, t.ch())
		t.skip()
		t.lookahead(1)
	}

	if len(s) == 0 {
		return "", newScanError(startMark, "while scanning a directive, could not find expected directive name")
	}
	if !isBlankZ(t.ch()) {
		return "", newScanError(startMark, "while scanning a directive, found unexpected non-alphabetical character")
	}
	return string(s), nil
}

func (t *Tokenizer) scanVersionDirectiveValue(mark token.Marker) (token.Token, error) {
	t.lookahead(1)
	for isBlank(t.ch()) {
		t.skip()
		t.lookahead(1)
	}

	major, err := t.scanVersionDirectiveNumber(mark)
	if err != nil {
		return token.Token{}, err
	}

	if t.ch() != '.' {
		return token.Token{}, newScanError(mark, "while scanning a YAML directive, did not find expected digit or '.' character")
	}
	t.skip()

	minor, err := t.scanVersionDirectiveNumber(mark)
	if err != nil {
		return token.Token{}, err
	}

	return token.Token{Marker: mark, Kind: token.VersionDirective, Major: major, Minor: minor}, nil
}

func (t *Tokenizer) scanVersionDirectiveNumber(mark token.Marker) (int, error) {
	val := 0
	length := 0
	t.lookahead(1)
	for isDigit(t.ch()) {
		if length+1 > 9 {
			return 0, newScanError(mark, "while scanning a YAML directive, found extremely long version number")
		}
		length++
		val = val*10 + int(t.ch()-'0')
		t.skip()
		t.lookahead(1)
	}
	if length == 0 {
		return 0, newScanError(mark, "while scanning a YAML directive, did not find expected version number")
	}
	return val, nil
}

func (t *Tokenizer) scanTagDirectiveValue(mark token.Marker) (token.Token, error) {
	t.lookahead(1)
	for isBlank(t.ch()) {
		t.skip()
		t.lookahead(1)
	}

	handle, err := t.scanTagHandle(true, mark)
	if err != nil {
		return token.Token{}, err
	}

	t.lookahead(1)
	for isBlank(t.ch()) {
		t.skip()
		t.lookahead(1)
	}

	prefix, err := t.scanTagURI(true, "", mark)
	if err != nil {
		return token.Token{}, err
	}

	t.lookahead(1)
	if !isBlankZ(t.ch()) {
		return token.Token{}, newScanError(mark, "while scanning TAG, did not find expected whitespace or line break")
	}
	return token.Token{Marker: mark, Kind: token.TagDirective, Handle: handle, Prefix: prefix}, nil
}
