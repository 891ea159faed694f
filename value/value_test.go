package value_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvx-labs/yamlcore/value"
)

// valueCmp delegates structural comparison to value.Equal, since Value
// embeds unexported fields go-cmp cannot walk directly.
var valueCmp = cmp.Comparer(value.Equal)

func TestScalarAccessors(t *testing.T) {
	require.Equal(t, value.String, value.NewString("hi").Kind())
	s, ok := value.NewString("hi").String()
	assert.True(t, ok)
	assert.Equal(t, "hi", s)

	i, ok := value.NewInt(7).Int()
	assert.True(t, ok)
	assert.Equal(t, int64(7), i)

	b, ok := value.NewBool(true).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	r, ok := value.NewReal("1.50").Real()
	assert.True(t, ok)
	assert.Equal(t, "1.50", r, "lexical text is preserved, not renormalized")
}

func TestHashPreservesInsertionOrderAndUpdatesInPlace(t *testing.T) {
	h := value.NewHashEmpty()
	h.Set(value.NewString("b"), value.NewInt(2))
	h.Set(value.NewString("a"), value.NewInt(1))
	h.Set(value.NewString("b"), value.NewInt(20)) // update, not append

	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "b", mustString(t, entries[0].Key))
	assert.Equal(t, "a", mustString(t, entries[1].Key))

	v, ok := h.Get(value.NewString("b"))
	require.True(t, ok)
	n, _ := v.Int()
	assert.Equal(t, int64(20), n)
}

func TestHashComplexKeyLookup(t *testing.T) {
	h := value.NewHashEmpty()
	key := value.NewArray([]value.Value{value.NewInt(1), value.NewInt(2)})
	h.Set(key, value.NewString("pair"))

	got, ok := h.Get(value.NewArray([]value.Value{value.NewInt(1), value.NewInt(2)}))
	require.True(t, ok)
	s, _ := got.String()
	assert.Equal(t, "pair", s)

	_, ok = h.Get(value.NewArray([]value.Value{value.NewInt(2), value.NewInt(1)}))
	assert.False(t, ok)
}

func TestHashCommentKeysAreNeverIndexedOrMerged(t *testing.T) {
	h := value.NewHashEmpty()
	h.Set(value.NewComment("one", false), value.NewNull())
	h.Set(value.NewComment("one", false), value.NewNull())

	assert.Equal(t, 2, h.Len(), "two distinct standalone comments, not merged by canonical-key collision")
}

func TestEqualIsOrderSensitiveForHashes(t *testing.T) {
	a := value.NewHashEmpty()
	a.Set(value.NewString("x"), value.NewInt(1))
	a.Set(value.NewString("y"), value.NewInt(2))

	b := value.NewHashEmpty()
	b.Set(value.NewString("y"), value.NewInt(2))
	b.Set(value.NewString("x"), value.NewInt(1))

	if diff := cmp.Diff(value.NewHash(a), value.NewHash(b), valueCmp); diff == "" {
		t.Fatalf("expected a != b for differing insertion order, got no diff")
	}
}

func TestEqualRecursesIntoNestedContainers(t *testing.T) {
	build := func() value.Value {
		h := value.NewHashEmpty()
		h.Set(value.NewString("items"), value.NewArray([]value.Value{
			value.NewInt(1), value.NewString("two"),
		}))
		return value.NewHash(h)
	}

	if diff := cmp.Diff(build(), build(), valueCmp); diff != "" {
		t.Fatalf("expected equal trees, got diff: %s", diff)
	}
}

func TestLeadingArrayComment(t *testing.T) {
	items := []value.Value{
		value.NewComment("heads up", true),
		value.NewInt(1),
	}
	comment, hasLeading, body := value.LeadingArrayComment(items)
	require.True(t, hasLeading)
	text, inline, ok := comment.Comment()
	require.True(t, ok)
	assert.True(t, inline)
	assert.Equal(t, "heads up", text)
	require.Len(t, body, 1)

	_, hasLeading, body = value.LeadingArrayComment(body)
	assert.False(t, hasLeading)
	assert.Len(t, body, 1)
}

func TestLeadingHashCommentIgnoresStandaloneComment(t *testing.T) {
	h := value.NewHashEmpty()
	h.Set(value.NewComment("standalone, not leading-inline", false), value.NewNull())
	h.Set(value.NewString("a"), value.NewInt(1))

	_, hasLeading, body := value.LeadingHashComment(h.Entries())
	assert.False(t, hasLeading, "a standalone (non-inline) leading comment is an ordinary entry")
	assert.Len(t, body, 2)
}

func mustString(t *testing.T, v value.Value) string {
	t.Helper()
	s, ok := v.String()
	require.True(t, ok)
	return s
}
