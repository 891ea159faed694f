package tokenizer

import "github.com/kvx-labs/yamlcore/token"

func (t *Tokenizer) fetchAnchor(alias bool) error {
	if err := t.saveSimpleKey(); err != nil {
		return err
	}
	t.disallowSimpleKey()

	tok, err := t.scanAnchor(alias)
	if err != nil {
		return err
	}
	t.pushToken(tok)
	return nil
}

func (t *Tokenizer) scanAnchor(alias bool) (token.Token, error) {
	startMark := t.mark
	var name []rune

	t.skip()
	t.lookahead(1)
	for isAlpha(t.ch()) {
		name = append(name, t.ch())
		t.skip()
		t.lookahead(1)
	}

	ok := len(name) > 0
	if ok {
		switch c := t.ch(); {
		case isBlankZ(c):
		case c == '?' || c == ':' || c == ',' || c == ']' || c == '}' || c == '%' || c == '@' || c == '`':
		default:
			ok = false
		}
	}
	if !ok {
		return token.Token{}, newScanError(startMark, "while scanning an anchor or alias, did not find expected alphabetic or numeric character")
	}

	kind := token.Anchor
	if alias {
		kind = token.Alias
	}
	return token.Token{Marker: startMark, Kind: kind, Name: string(name)}, nil
}

func (t *Tokenizer) fetchTag() error {
	if err := t.saveSimpleKey(); err != nil {
		return err
	}
	t.disallowSimpleKey()

	tok, err := t.scanTag()
	if err != nil {
		return err
	}
	t.pushToken(tok)
	return nil
}

func (t *Tokenizer) scanTag() (token.Token, error) {
	startMark := t.mark
	var handle string
	var suffix string
	var secondary bool

	t.lookahead(2)

	if t.chAt(1) == '<' {
		t.skip()
		t.skip()
		var err error
		suffix, err = t.scanTagURI(false, "", startMark)
		if err != nil {
			return token.Token{}, err
		}
		if t.ch() != '>' {
			return token.Token{}, newScanError(startMark, "while scanning a tag, did not find the expected '>'")
		}
		t.skip()
	} else {
		var err error
		handle, err = t.scanTagHandle(false, startMark)
		if err != nil {
			return token.Token{}, err
		}
		if len(handle) >= 2 && handle[0] == '!' && handle[len(handle)-1] == '!' {
			if handle == "!!" {
				secondary = true
			}
			suffix, err = t.scanTagURI(false, "", startMark)
			if err != nil {
				return token.Token{}, err
			}
			_ = secondary
		} else {
			suffix, err = t.scanTagURI(false, handle, startMark)
			if err != nil {
				return token.Token{}, err
			}
			handle = "!"
			if suffix == "" {
				handle = ""
				suffix = "!"
			}
		}
	}

	t.lookahead(1)
	if !isBlankZ(t.ch()) {
		return token.Token{}, newScanError(startMark, "while scanning a tag, did not find expected whitespace or line break")
	}
	return token.Token{Marker: startMark, Kind: token.Tag, Handle: handle, Suffix: suffix}, nil
}

func (t *Tokenizer) scanTagHandle(directive bool, mark token.Marker) (string, error) {
	var s []rune
	t.lookahead(1)
	if t.ch() != '!' {
		return "", newScanError(mark, "while scanning a tag, did not find expected '!'")
	}
	s = append(s, t.ch())
	t.skip()

	t.lookahead(1)
	for isAlpha(t.ch()) {
		s = append(s, t.ch())
		t.skip()
		t.lookahead(1)
	}

	if t.ch() == '!' {
		s = append(s, t.ch())
		t.skip()
	} else if directive && string(s) != "!" {
		return "", newScanError(mark, "while parsing a tag directive, did not find expected '!'")
	}
	return string(s), nil
}

// scanTagURI scans a tag suffix. head, when non-empty, is a misparsed
// handle whose characters (minus the leading '!') are actually the
// start of the suffix.
func (t *Tokenizer) scanTagURI(directive bool, head string, mark token.Marker) (string, error) {
	length := len(head)
	var s []rune
	if length > 1 {
		s = append(s, []rune(head)[1:]...)
	}

	t.lookahead(1)
	for isTagURIChar(t.ch()) {
		if t.ch() == '%' {
			r, err := t.scanURIEscapes(mark)
			if err != nil {
				return "", err
			}
			s = append(s, r)
		} else {
			s = append(s, t.ch())
			t.skip()
		}
		length++
		t.lookahead(1)
	}

	if length == 0 {
		return "", newScanError(mark, "while parsing a tag, did not find expected tag URI")
	}
	_ = directive
	return string(s), nil
}

func isTagURIChar(c rune) bool {
	switch c {
	case ';', '/', '?', ':', '@', '&', '=', '+', '$', ',', '.', '!', '~', '*', '\'', '(', ')', '[', ']', '%':
		return true
	default:
		return isAlpha(c)
	}
}

func (t *Tokenizer) scanURIEscapes(mark token.Marker) (rune, error) {
	width := 0
	var code uint32

	for {
		t.lookahead(3)
		if !(t.chIs('%') && isHex(t.chAt(1)) && isHex(t.chAt(2))) {
			return 0, newScanError(mark, "while parsing a tag, did not find URI escaped octet")
		}

		octet := (asHex(t.chAt(1)) << 4) + asHex(t.chAt(2))
		if width == 0 {
			switch {
			case octet&0x80 == 0x00:
				width = 1
			case octet&0xE0 == 0xC0:
				width = 2
			case octet&0xF0 == 0xE0:
				width = 3
			case octet&0xF8 == 0xF0:
				width = 4
			default:
				return 0, newScanError(mark, "while parsing a tag, found an incorrect leading UTF-8 octet")
			}
			code = octet
		} else {
			if octet&0xc0 != 0x80 {
				return 0, newScanError(mark, "while parsing a tag, found an incorrect trailing UTF-8 octet")
			}
			code = (code << 8) + octet
		}

		t.skip()
		t.skip()
		t.skip()

		width--
		if width == 0 {
			break
		}
	}

	if !isValidUnicode(code) {
		return 0, newScanError(mark, "while parsing a tag, found an invalid UTF-8 codepoint")
	}
	return rune(code), nil
}

func isValidUnicode(code uint32) bool {
	if code > 0x10FFFF {
		return false
	}
	if code >= 0xD800 && code <= 0xDFFF {
		return false
	}
	return true
}
