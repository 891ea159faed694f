package main

import (
	"fmt"

	"github.com/kvx-labs/yamlcore/token"
	"github.com/kvx-labs/yamlcore/tokenizer"
	"github.com/kvx-labs/yamlcore/value"
)

// compose is a deliberately minimal bridge from a token stream to a
// value.Value tree: just enough structure (block/flow mappings and
// sequences, scalars, comments) to exercise emitter.Dump end to end in
// this CLI. It is not a loader: aliases are carried through as
// unresolved value.Alias placeholders, and anchor and tag tokens are
// skipped (the node they decorate is composed without them), matching
// spec.md's scope.
type composer struct {
	tok  *tokenizer.Tokenizer
	peek *token.Token
}

func newComposer(tok *tokenizer.Tokenizer) *composer {
	return &composer{tok: tok}
}

func (c *composer) next() (token.Token, error) {
	if c.peek != nil {
		t := *c.peek
		c.peek = nil
		return t, nil
	}
	return c.tok.Next()
}

func (c *composer) peekToken() (token.Token, error) {
	if c.peek == nil {
		t, err := c.tok.Next()
		if err != nil {
			return token.Token{}, err
		}
		c.peek = &t
	}
	return *c.peek, nil
}

// composeDocument consumes StreamStart/DocumentStart and returns the
// root node of the first document, skipping directive tokens.
func (c *composer) composeDocument() (value.Value, error) {
	for {
		tk, err := c.peekToken()
		if err != nil {
			return value.Value{}, err
		}
		switch tk.Kind {
		case token.StreamStart, token.DocumentStart, token.VersionDirective, token.TagDirective:
			if _, err := c.next(); err != nil {
				return value.Value{}, err
			}
			continue
		}
		return c.composeNode()
	}
}

func (c *composer) composeNode() (value.Value, error) {
	tk, err := c.next()
	if err != nil {
		return value.Value{}, err
	}
	switch tk.Kind {
	case token.Scalar:
		return value.NewString(tk.Text), nil
	case token.Alias:
		return value.NewAlias(tk.Name), nil
	case token.Anchor, token.Tag:
		// Anchors/tags are recognized but not resolved; the node they
		// decorate follows immediately.
		return c.composeNode()
	case token.BlockSequenceStart, token.FlowSequenceStart:
		return c.composeSequence(tk.Kind)
	case token.BlockMappingStart, token.FlowMappingStart:
		return c.composeMapping(tk.Kind)
	case token.Comment:
		return value.NewComment(tk.Comment, false), nil
	case token.StreamEnd, token.DocumentEnd:
		return value.NewNull(), nil
	default:
		return value.Value{}, fmt.Errorf("yamlcorefmt: unexpected %s in value position", tk.Kind)
	}
}

func (c *composer) composeSequence(start token.Kind) (value.Value, error) {
	endKind := token.BlockEnd
	if start == token.FlowSequenceStart {
		endKind = token.FlowSequenceEnd
	}
	var items []value.Value
	for {
		tk, err := c.peekToken()
		if err != nil {
			return value.Value{}, err
		}
		switch tk.Kind {
		case endKind:
			c.next()
			return value.NewArray(items), nil
		case token.BlockEntry, token.FlowEntry:
			c.next()
			continue
		case token.Comment:
			c.next()
			items = append(items, value.NewComment(tk.Comment, len(items) > 0))
			continue
		default:
			v, err := c.composeNode()
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, v)
		}
	}
}

func (c *composer) composeMapping(start token.Kind) (value.Value, error) {
	endKind := token.BlockEnd
	if start == token.FlowMappingStart {
		endKind = token.FlowMappingEnd
	}
	h := value.NewHashEmpty()
	for {
		tk, err := c.peekToken()
		if err != nil {
			return value.Value{}, err
		}
		switch tk.Kind {
		case endKind:
			c.next()
			return value.NewHash(h), nil
		case token.Key:
			c.next()
			key, err := c.composeMappingKey()
			if err != nil {
				return value.Value{}, err
			}
			val, err := c.composeMappingValue()
			if err != nil {
				return value.Value{}, err
			}
			h.Set(key, val)
		case token.FlowEntry:
			c.next()
			continue
		case token.Comment:
			c.next()
			h.Set(value.NewComment(tk.Comment, h.Len() > 0), value.NewNull())
			continue
		default:
			return value.Value{}, fmt.Errorf("yamlcorefmt: unexpected %s in mapping", tk.Kind)
		}
	}
}

// composeMappingKey reads the key node, or value.NewNull() for an
// explicit "?" key with nothing before the matching ":".
func (c *composer) composeMappingKey() (value.Value, error) {
	tk, err := c.peekToken()
	if err != nil {
		return value.Value{}, err
	}
	if tk.Kind == token.Value {
		return value.NewNull(), nil
	}
	return c.composeNode()
}

func (c *composer) composeMappingValue() (value.Value, error) {
	tk, err := c.peekToken()
	if err != nil {
		return value.Value{}, err
	}
	if tk.Kind != token.Value {
		return value.NewNull(), nil
	}
	c.next()
	tk, err = c.peekToken()
	if err != nil {
		return value.Value{}, err
	}
	switch tk.Kind {
	case token.Key, token.BlockEnd, token.FlowMappingEnd, token.FlowEntry:
		return value.NewNull(), nil
	default:
		return c.composeNode()
	}
}
