package tokenizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvx-labs/yamlcore/token"
	"github.com/kvx-labs/yamlcore/tokenizer"
)

// scanAll drives a Tokenizer to completion, returning every token
// including the terminal StreamEnd.
func scanAll(t *testing.T, src string, withComments bool) []token.Token {
	t.Helper()
	tok := tokenizer.New(tokenizer.NewStringSource(src), withComments)
	var out []token.Token
	for {
		tk, err := tok.Next()
		require.NoError(t, err)
		out = append(out, tk)
		if tk.Kind == token.StreamEnd {
			return out
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, tk := range toks {
		ks[i] = tk.Kind
	}
	return ks
}

func requireKinds(t *testing.T, toks []token.Token, want ...token.Kind) {
	t.Helper()
	require.Equal(t, want, kinds(toks))
}

func TestEmpty(t *testing.T) {
	toks := scanAll(t, "", true)
	requireKinds(t, toks, token.StreamStart, token.StreamEnd)
}

func TestScalar(t *testing.T) {
	toks := scanAll(t, "a scalar", true)
	requireKinds(t, toks, token.StreamStart, token.Scalar, token.StreamEnd)
	require.Equal(t, token.Plain, toks[1].Style)
	require.Equal(t, "a scalar", toks[1].Text)
}

func TestExplicitScalar(t *testing.T) {
	toks := scanAll(t, "---\n'a scalar'\n...\n", true)
	requireKinds(t, toks,
		token.StreamStart, token.DocumentStart, token.Scalar, token.DocumentEnd, token.StreamEnd)
	require.Equal(t, token.SingleQuoted, toks[2].Style)
}

func TestFlowSequence(t *testing.T) {
	toks := scanAll(t, "[item 1, item 2, item 3]", true)
	requireKinds(t, toks,
		token.StreamStart, token.FlowSequenceStart,
		token.Scalar, token.FlowEntry,
		token.Scalar, token.FlowEntry,
		token.Scalar, token.FlowSequenceEnd, token.StreamEnd)
	require.Equal(t, "item 1", toks[2].Text)
}

func TestFlowMapping(t *testing.T) {
	src := "\n{\n    a simple key: a value, # Note that the KEY token is produced.\n    ? a complex key: another value,\n}\n"
	toks := scanAll(t, src, true)
	requireKinds(t, toks,
		token.StreamStart, token.FlowMappingStart,
		token.Key, token.Scalar, token.Value, token.Scalar, token.FlowEntry,
		token.Comment,
		token.Key, token.Scalar, token.Value, token.Scalar, token.FlowEntry,
		token.FlowMappingEnd, token.StreamEnd)
	require.Equal(t, "a complex key", toks[9].Text)
}

func TestBlockSequences(t *testing.T) {
	src := "\n- item 1\n- item 2\n-\n  - item 3.1\n  - item 3.2\n-\n  key 1: value 1\n  key 2: value 2\n"
	toks := scanAll(t, src, true)
	requireKinds(t, toks,
		token.StreamStart,
		token.BlockSequenceStart,
		token.BlockEntry, token.Scalar,
		token.BlockEntry, token.Scalar,
		token.BlockEntry,
		token.BlockSequenceStart,
		token.BlockEntry, token.Scalar,
		token.BlockEntry, token.Scalar,
		token.BlockEnd,
		token.BlockEntry,
		token.BlockMappingStart,
		token.Key, token.Scalar, token.Value, token.Scalar,
		token.Key, token.Scalar, token.Value, token.Scalar,
		token.BlockEnd,
		token.BlockEnd,
		token.StreamEnd)
}

func TestNoBlockSequenceStart(t *testing.T) {
	src := "\nkey:\n- item 1\n- item 2\n"
	toks := scanAll(t, src, true)
	requireKinds(t, toks,
		token.StreamStart,
		token.BlockMappingStart,
		token.Key, token.Scalar, token.Value,
		token.BlockEntry, token.Scalar,
		token.BlockEntry, token.Scalar,
		token.BlockEnd,
		token.StreamEnd)
}

func TestSpecEx73(t *testing.T) {
	src := "\n{\n    ? foo :,\n    : bar,\n}\n"
	toks := scanAll(t, src, true)
	requireKinds(t, toks,
		token.StreamStart, token.FlowMappingStart,
		token.Key, token.Scalar, token.Value, token.FlowEntry,
		token.Value, token.Scalar, token.FlowEntry,
		token.FlowMappingEnd, token.StreamEnd)
}

func TestPlainScalarStartingWithIndicatorsInFlow(t *testing.T) {
	toks := scanAll(t, "{a: :b}", true)
	requireKinds(t, toks,
		token.StreamStart, token.FlowMappingStart,
		token.Key, token.Scalar, token.Value, token.Scalar,
		token.FlowMappingEnd, token.StreamEnd)
	require.Equal(t, ":b", toks[5].Text)
}

func TestPlainScalarStartingWithIndicatorsInBlock(t *testing.T) {
	toks := scanAll(t, ":a", true)
	requireKinds(t, toks, token.StreamStart, token.Scalar, token.StreamEnd)
	require.Equal(t, ":a", toks[1].Text)
}

func TestPlainScalarContainingIndicatorsInBlock(t *testing.T) {
	toks := scanAll(t, "a:,b", true)
	requireKinds(t, toks, token.StreamStart, token.Scalar, token.StreamEnd)
	require.Equal(t, "a:,b", toks[1].Text)
}

func TestScannerCR(t *testing.T) {
	toks := scanAll(t, "---\r\n- tok1\r\n- tok2", true)
	requireKinds(t, toks,
		token.StreamStart, token.DocumentStart,
		token.BlockSequenceStart,
		token.BlockEntry, token.Scalar,
		token.BlockEntry, token.Scalar,
		token.BlockEnd, token.StreamEnd)
	require.Equal(t, "tok1", toks[4].Text)
	require.Equal(t, "tok2", toks[6].Text)
}

func TestScanComment(t *testing.T) {
	src := "--- #Comment Header\n" +
		"# Comment A\n" +
		"#Comment B\n" +
		"### Comment C\n" +
		"###Comment D\n" +
		"a0 bb: \"#trickyval\" #'comment e\n" +
		"- some value 1\n" +
		"# interleaved comment\n" +
		"- some value 2 # block-end-comment\n\n"
	toks := scanAll(t, src, true)
	requireKinds(t, toks,
		token.StreamStart, token.DocumentStart,
		token.Comment, token.Comment, token.Comment, token.Comment, token.Comment,
		token.BlockMappingStart,
		token.Key, token.Scalar, token.Value, token.Scalar, token.Comment,
		token.BlockEntry, token.Scalar, token.Comment,
		token.BlockEntry, token.Scalar, token.Comment,
		token.BlockEnd, token.StreamEnd)

	require.Equal(t, "Comment Header", toks[2].Comment)
	require.Equal(t, "Comment A", toks[3].Comment)
	require.Equal(t, "Comment B", toks[4].Comment)
	require.Equal(t, "Comment C", toks[5].Comment)
	require.Equal(t, "Comment D", toks[6].Comment)
	require.Equal(t, "#trickyval", toks[11].Text)
	require.Equal(t, "'comment e", toks[12].Comment)
	require.Equal(t, "interleaved comment", toks[15].Comment)
	require.Equal(t, "block-end-comment", toks[18].Comment)
}

func TestCommentsSuppressed(t *testing.T) {
	toks := scanAll(t, "a: b # trailing\n", false)
	requireKinds(t, toks,
		token.StreamStart, token.BlockMappingStart,
		token.Key, token.Scalar, token.Value, token.Scalar,
		token.BlockEnd, token.StreamEnd)
}

func TestBlockScalarLiteral(t *testing.T) {
	src := "a: |\n  one\n  two\n"
	toks := scanAll(t, src, true)
	requireKinds(t, toks,
		token.StreamStart, token.BlockMappingStart,
		token.Key, token.Scalar, token.Value, token.Scalar,
		token.BlockEnd, token.StreamEnd)
	require.Equal(t, token.Literal, toks[5].Style)
	require.Equal(t, "one\ntwo\n", toks[5].Text)
}

func TestBlockScalarFoldedStrip(t *testing.T) {
	src := "a: >-\n  one\n  two\n"
	toks := scanAll(t, src, true)
	require.Equal(t, token.Folded, toks[5].Style)
	require.Equal(t, "one two", toks[5].Text)
}

func TestQuotedScalarEscapes(t *testing.T) {
	toks := scanAll(t, `"a\tb\n\x41"`, true)
	requireKinds(t, toks, token.StreamStart, token.Scalar, token.StreamEnd)
	require.Equal(t, "a\tb\nA", toks[1].Text)
}

func TestSingleQuotedEscapedApostrophe(t *testing.T) {
	toks := scanAll(t, `'it''s fine'`, true)
	require.Equal(t, "it's fine", toks[1].Text)
}

func TestUnterminatedQuotedScalarErrors(t *testing.T) {
	tok := tokenizer.New(tokenizer.NewStringSource(`"unterminated`), true)
	var lastErr error
	for {
		tk, err := tok.Next()
		if err != nil {
			lastErr = err
			break
		}
		if tk.Kind == token.StreamEnd {
			break
		}
	}
	require.Error(t, lastErr)
}
