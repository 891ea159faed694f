package tokenizer

import (
	"bufio"
	"io"
)

// Source yields the code points the tokenizer consumes. ReadRune returns
// ok=false once the source is exhausted; the tokenizer then materializes
// further reads as '\0', per spec section 9 ("EOF is represented by
// returning '\0' from reads past end; this is safe because real '\0' is
// not valid YAML").
type Source interface {
	ReadRune() (r rune, ok bool)
}

// stringSource walks a string's runes.
type stringSource struct {
	runes []rune
	pos   int
}

// NewStringSource returns a Source over s's Unicode code points.
func NewStringSource(s string) Source {
	return &stringSource{runes: []rune(s)}
}

func (s *stringSource) ReadRune() (rune, bool) {
	if s.pos >= len(s.runes) {
		return 0, false
	}
	r := s.runes[s.pos]
	s.pos++
	return r, true
}

// readerSource adapts an io.Reader (assumed UTF-8) to Source.
type readerSource struct {
	r   *bufio.Reader
	err error
}

// NewReaderSource returns a Source decoding UTF-8 runes from r. A read
// error from r ends the source for good, just as io.EOF does; invalid
// UTF-8 bytes decode to U+FFFD rather than ending it. Callers that need to distinguish a read failure from a clean EOF should
// wrap r themselves and inspect it directly.
func NewReaderSource(r io.Reader) Source {
	return &readerSource{r: bufio.NewReader(r)}
}

func (s *readerSource) ReadRune() (rune, bool) {
	if s.err != nil {
		return 0, false
	}
	r, _, err := s.r.ReadRune()
	if err != nil {
		s.err = err
		return 0, false
	}
	return r, true
}
