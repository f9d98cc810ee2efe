package fixture

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func num(f float64) Value    { return Value{Kind: Number, Num: f} }
func str(s string) Value     { return Value{Kind: String, Str: s} }
func list(vs ...Value) Value { return Value{Kind: List, List: append([]Value{}, vs...)} }

func TestParseScalars(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"42", num(42)},
		{"-3.5", num(-3.5)},
		{"+.5", num(0.5)},
		{"1e3", num(1000)},
		{"2.5E-1", num(0.25)},
		{"  7 ", num(7)},
		{"'red'", str("red")},
		{`"blue"`, str("blue")},
		{`'it\'s'`, str("it's")},
		{`'a\tb'`, str("a\tb")},
		{"None", Value{Kind: None}},
		{"True", num(1)},
		{"False", num(0)},
	}
	for _, tc := range tests {
		got := Parse(tc.in)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestParseLists(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"[]", list()},
		{"[1, 2, 3]", list(num(1), num(2), num(3))},
		{"[1,2,3,]", list(num(1), num(2), num(3))},
		{"(4, 5)", list(num(4), num(5))},
		{"['a', 'b']", list(str("a"), str("b"))},
		{"[[1, 2], [3]]", list(list(num(1), num(2)), list(num(3)))},
		{"[1, 'two', [3]]", list(num(1), str("two"), list(num(3)))},
	}
	for _, tc := range tests {
		got := Parse(tc.in)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestParseMap(t *testing.T) {
	got := Parse("{'a': 1, 'b': [2, 3]}")
	assert.Equal(t, Map, got.Kind)
	assert.Equal(t, []string{"a", "b"}, got.Keys)
	if assert.Len(t, got.Vals, 2) {
		assert.Equal(t, num(1), got.Vals[0])
		assert.Equal(t, list(num(2), num(3)), got.Vals[1])
	}
}

// Anything the grammar does not cover must come back as the trimmed raw
// string, never as a failure.
func TestParseFallback(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"junk", "junk"},
		{"8x8", "8x8"},
		{"[1, 2", "[1, 2"},
		{"1 2", "1 2"},
		{"'unterminated", "'unterminated"},
		{"", ""},
		{"--3", "--3"},
		{"[1, oops]", "[1, oops]"},
	}
	for _, tc := range tests {
		got := Parse(tc.in)
		assert.Equal(t, str(tc.want), got, "Parse(%q)", tc.in)
	}
}

// The fixture table sometimes quotes a literal twice; one extra decode
// pass unwraps it.
func TestParseDoubleEncoded(t *testing.T) {
	got := Parse("'[1, 2, 3]'")
	if diff := cmp.Diff(list(num(1), num(2), num(3)), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got = Parse(`"{'a': 1}"`)
	assert.Equal(t, Map, got.Kind)

	// a string that merely looks nested stays a string
	got = Parse("'[not a list'")
	assert.Equal(t, str("[not a list"), got)
}
