package tokenizer

import "github.com/kvx-labs/yamlcore/token"

// fetchComment scans a '#' comment token. Leading '#' and ' ' characters
// are stripped until the first non-marker, non-space rune is seen, so
// that "### Comment C" yields "Comment C" while "#'comment e" keeps its
// apostrophe.
func (t *Tokenizer) fetchComment() error {
	mark := t.mark
	var text []rune
	started := false

	t.skip() // leading '#'
	t.lookahead(1)

	for !isBreakZ(t.ch()) {
		c := t.ch()
		if !started && (c == '#' || c == ' ') {
			t.skip()
			t.lookahead(1)
			continue
		}
		started = true
		text = append(text, c)
		t.skip()
		t.lookahead(1)
	}

	t.pushToken(token.Token{Marker: mark, Kind: token.Comment, Comment: string(text)})
	return nil
}
