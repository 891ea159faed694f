package emitter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvx-labs/yamlcore/emitter"
	"github.com/kvx-labs/yamlcore/value"
)

func dump(t *testing.T, v value.Value) string {
	t.Helper()
	var b strings.Builder
	e := emitter.New(&b)
	require.NoError(t, e.Dump(v))
	return b.String()
}

func TestEmitScalar(t *testing.T) {
	require.Equal(t, "---\nhello", dump(t, value.NewString("hello")))
}

func TestEmitQuotedScalar(t *testing.T) {
	require.Equal(t, "---\n\"true\"", dump(t, value.NewString("true")))
}

func TestEmitNull(t *testing.T) {
	require.Equal(t, "---\n~", dump(t, value.NewNull()))
}

func TestEmitFlatArray(t *testing.T) {
	got := dump(t, value.NewArray([]value.Value{
		value.NewInt(1), value.NewInt(2), value.NewInt(3),
	}))
	require.Equal(t, "---\n- 1\n- 2\n- 3", got)
}

func TestEmitEmptyArrayAndHash(t *testing.T) {
	require.Equal(t, "---\n[]", dump(t, value.NewArray(nil)))
	require.Equal(t, "---\n{}", dump(t, value.NewHash(value.NewHashEmpty())))
}

func TestEmitFlatHash(t *testing.T) {
	h := value.NewHashEmpty()
	h.Set(value.NewString("a"), value.NewInt(1))
	h.Set(value.NewString("b"), value.NewInt(2))
	require.Equal(t, "---\na: 1\nb: 2", dump(t, value.NewHash(h)))
}

func TestEmitNestedArrayUnderHashKey(t *testing.T) {
	h := value.NewHashEmpty()
	h.Set(value.NewString("a"), value.NewInt(1))
	h.Set(value.NewString("b"), value.NewArray([]value.Value{value.NewInt(2), value.NewInt(3)}))
	require.Equal(t, "---\na: 1\nb:\n  - 2\n  - 3", dump(t, value.NewHash(h)))
}

func TestEmitCompactArrayOfHash(t *testing.T) {
	inner := value.NewHashEmpty()
	inner.Set(value.NewString("a"), value.NewInt(1))
	inner.Set(value.NewString("b"), value.NewInt(2))
	got := dump(t, value.NewArray([]value.Value{value.NewHash(inner)}))
	require.Equal(t, "---\n- a: 1\n  b: 2", got)
}

func TestEmitNonCompactArrayOfHash(t *testing.T) {
	inner := value.NewHashEmpty()
	inner.Set(value.NewString("a"), value.NewInt(1))

	var b strings.Builder
	e := emitter.New(&b)
	e.SetCompact(false)
	require.NoError(t, e.Dump(value.NewArray([]value.Value{value.NewHash(inner)})))
	require.Equal(t, "---\n-\n  a: 1", b.String())
}

// A nested array in compact (default) mode rides on the same dash line
// as its parent entry, matching the teacher's test_nested_arrays shape
// ("- - c\n  - d").
func TestEmitNestedArrays(t *testing.T) {
	got := dump(t, value.NewArray([]value.Value{
		value.NewArray([]value.Value{value.NewInt(1), value.NewInt(2)}),
		value.NewInt(3),
	}))
	require.Equal(t, "---\n- - 1\n  - 2\n- 3", got)
}

// A complex (compound) key is itself emitted in compact-inline value
// position, so it rides on the same "?" line as its first element.
func TestEmitComplexKey(t *testing.T) {
	h := value.NewHashEmpty()
	complexKey := value.NewArray([]value.Value{value.NewInt(1), value.NewInt(2)})
	h.Set(complexKey, value.NewString("value"))
	require.Equal(t, "---\n? - 1\n  - 2\n: value", dump(t, value.NewHash(h)))
}

func TestEmitStandaloneComment(t *testing.T) {
	h := value.NewHashEmpty()
	h.Set(value.NewComment("header", false), value.NewNull())
	h.Set(value.NewString("a"), value.NewInt(1))
	require.Equal(t, "---\n#header\na: 1", dump(t, value.NewHash(h)))
}

func TestEmitInlineTrailingComment(t *testing.T) {
	h := value.NewHashEmpty()
	h.Set(value.NewString("a"), value.NewInt(1))
	h.Set(value.NewComment("trailing", true), value.NewNull())
	h.Set(value.NewString("b"), value.NewInt(2))
	require.Equal(t, "---\na: 1 #trailing\nb: 2", dump(t, value.NewHash(h)))
}

func TestEmitInlineTrailingCommentInArray(t *testing.T) {
	got := dump(t, value.NewArray([]value.Value{
		value.NewInt(1),
		value.NewComment("note", true),
		value.NewInt(2),
	}))
	require.Equal(t, "---\n- 1 #note\n- 2", got)
}

func TestEmitLeadingDocumentComment(t *testing.T) {
	got := dump(t, value.NewArray([]value.Value{
		value.NewComment("doc header", true),
		value.NewInt(1),
	}))
	require.Equal(t, "--- #doc header\n- 1", got)
}

func TestEmitCommentInValuePositionFails(t *testing.T) {
	h := value.NewHashEmpty()
	h.Set(value.NewString("a"), value.NewComment("oops", true))

	var b strings.Builder
	e := emitter.New(&b)
	err := e.Dump(value.NewHash(h))
	require.Error(t, err)

	var emitErr *emitter.EmitError
	require.ErrorAs(t, err, &emitErr)
	require.Equal(t, emitter.BadHashmapKey, emitErr.Kind)
}

// An alias resolves to nothing at emit time (resolution is the loader's
// job), so its entry is a bare dash with the space emit_value always
// writes before a scalar-position node.
func TestEmitAliasIsSilent(t *testing.T) {
	got := dump(t, value.NewArray([]value.Value{
		value.NewAlias("anchor1"),
		value.NewInt(1),
	}))
	require.Equal(t, "---\n- \n- 1", got)
}
