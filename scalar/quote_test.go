package scalar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeedQuotes(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"hello", false},
		{"hello world", false},
		{" leading", true},
		{"trailing ", true},
		{"yes", true},
		{"Yes", true},
		{"YES", true},
		{"true", true},
		{"True", true},
		{"null", true},
		{"~", true},
		{"4", true},
		{"2.6", true},
		{"12e7", true},
		{"field: value", true},
		{"a: b", true},
		{"a #b", true},
		{"#comment", true},
		{"-dash", true},
		{"x-y", false},
		{"[1,2,3,4]", true},
		{"{}", true},
		{"you're fine", false},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, NeedQuotes(c.in), "NeedQuotes(%q)", c.in)
	}
}

func TestEscapeStringRoundTripShape(t *testing.T) {
	var b strings.Builder
	require.NoError(t, EscapeString(&b, "a\tb\nc\"d\\e"))
	assert.Equal(t, `"a\tb\nc\"d\\e"`, b.String())
}

func TestEscapeStringHex(t *testing.T) {
	var b strings.Builder
	require.NoError(t, EscapeString(&b, "\x01"))
	assert.Equal(t, `"\x01"`, b.String())
}

func TestDecodeNamedEscape(t *testing.T) {
	r, ok := DecodeNamedEscape('n')
	require.True(t, ok)
	assert.Equal(t, '\n', r)

	_, ok = DecodeNamedEscape('q')
	assert.False(t, ok)
}
