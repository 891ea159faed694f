// Package tokenizer implements the streaming, pull-based YAML tokenizer
// described in spec.md section 4.1: a 4+ code point lookahead window, an
// indentation stack, a per-flow-level simple-key table, and a flow
// nesting counter, emitting token.Token values lazily as soon as they
// become decidable.
//
// It is adapted from the scanner algorithm of alevinval/yaml-rust
// (original_source/src/scanner.rs) in the naming and package-splitting
// idiom of the teacher's libyaml-derived Go port (internal/parserc).
package tokenizer

import (
	"github.com/kvx-labs/yamlcore/token"
)

const maxFlowLevel = 10000
const maxIndents = 10000

// simpleKey records where a still-pending simple-key token would be
// inserted, per flow level.
type simpleKey struct {
	possible    bool
	required    bool
	tokenNumber int
	mark        token.Marker
}

// Tokenizer pulls tokens out of a Source on demand. It is single
// threaded and not safe for concurrent use (spec section 5): all state
// mutation happens synchronously inside Next.
type Tokenizer struct {
	src          Source
	buf          []rune
	srcExhausted bool

	mark token.Marker

	tokens []token.Token

	withComments bool

	streamStartProduced bool
	streamEndProduced   bool

	adjacentValueAllowedAt int
	simpleKeyAllowed       bool
	simpleKeys             []simpleKey

	indent  int
	indents []int

	flowLevel int

	tokensParsed   int
	tokenAvailable bool

	err error
}

// New creates a tokenizer reading code points from src. withComments
// controls whether '#' lines are surfaced as Comment tokens (true) or
// silently skipped as insignificant whitespace (false).
func New(src Source, withComments bool) *Tokenizer {
	return &Tokenizer{
		src:          src,
		mark:         token.Marker{Index: 0, Line: 1, Col: 0},
		withComments: withComments,
		simpleKeyAllowed: true,
		indent:           -1,
	}
}

// Next pulls the next token, fetching and buffering internally as many
// characters and intermediate tokens as needed to commit it. It returns
// (zero, nil) once StreamEnd has been delivered, and returns the same
// sticky error forever once a scan fails.
func (t *Tokenizer) Next() (token.Token, error) {
	if t.err != nil {
		return token.Token{}, t.err
	}
	if t.streamEndProduced {
		return token.Token{}, nil
	}
	if !t.tokenAvailable {
		if err := t.fetchMoreTokens(); err != nil {
			t.err = err
			return token.Token{}, err
		}
	}
	tok := t.tokens[0]
	t.tokens = t.tokens[1:]
	t.tokenAvailable = false
	t.tokensParsed++

	if tok.Kind == token.StreamEnd {
		t.streamEndProduced = true
	}
	return tok, nil
}

// fetchMoreTokens runs fetchNextToken until the queue holds at least one
// deliverable token: it keeps fetching while the queue is empty or while
// a possible simple key is still pending at the next position to be
// delivered (a Key token may yet have to be inserted before it).
func (t *Tokenizer) fetchMoreTokens() error {
	for {
		needMore := false
		if len(t.tokens) == 0 {
			needMore = true
		} else {
			if err := t.staleSimpleKeys(); err != nil {
				return err
			}
			for _, sk := range t.simpleKeys {
				if sk.possible && sk.tokenNumber == t.tokensParsed {
					needMore = true
					break
				}
			}
		}
		if !needMore {
			break
		}
		if err := t.fetchNextToken(); err != nil {
			return err
		}
	}
	t.tokenAvailable = true
	return nil
}

func (t *Tokenizer) pushToken(tok token.Token) {
	t.tokens = append(t.tokens, tok)
}

// insertToken inserts tok at position pos within the not-yet-delivered
// queue (0 = next token to be delivered), used to retroactively inject a
// Key token once a pending simple key is confirmed by a following ':'.
func (t *Tokenizer) insertToken(pos int, tok token.Token) {
	t.tokens = append(t.tokens, token.Token{})
	copy(t.tokens[pos+1:], t.tokens[pos:len(t.tokens)-1])
	t.tokens[pos] = tok
}

func (t *Tokenizer) allowSimpleKey()    { t.simpleKeyAllowed = true }
func (t *Tokenizer) disallowSimpleKey() { t.simpleKeyAllowed = false }
