package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{Unknown, "unknown"},
		{Whitespace, "whitespace"},
		{Identifier, "identifier"},
		{Integer, "integer"},
		{Keyword, "keyword"},
		{Comma, ","},
		{Semicolon, ";"},
		{Colon, ":"},
		{Equals, "="},
		{Minus, "-"},
		{GreaterThan, ">"},
		{LeftBrace, "{"},
		{RightBrace, "}"},
		{LeftParen, "("},
		{RightParen, ")"},
		{RightArrow, "->"},
		{PathSeparator, "::"},
		{Kind(999), "Kind(999)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.kind.String())
	}
}

func TestKeywordSpellings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spelling string
		keyword  KeywordKind
	}{
		{"module", KeywordModule},
		{"class", KeywordClass},
		{"let", KeywordField},
		{"function", KeywordFunction},
		{"constant", KeywordConstant},
		{"mutable", KeywordMutable},
	}
	for _, tc := range tests {
		keyword, ok := LookupKeyword(tc.spelling)
		require.True(t, ok, tc.spelling)
		assert.Equal(t, tc.keyword, keyword)
		assert.Equal(t, tc.spelling, keyword.String())
	}

	_, ok := LookupKeyword("modules")
	assert.False(t, ok)
	_, ok = LookupKeyword("Module")
	assert.False(t, ok)
}

func TestDecompose(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Kind{Minus, GreaterThan}, RightArrow.Decompose())
	assert.Equal(t, []Kind{Colon, Colon}, PathSeparator.Decompose())

	// Primitive kinds decompose to themselves.
	assert.Equal(t, []Kind{Identifier}, Identifier.Decompose())
	assert.Equal(t, []Kind{Minus}, Minus.Decompose())
}

func TestCombine(t *testing.T) {
	t.Parallel()

	const source = "->"

	minus := Token{Kind: Minus, StartOffset: 0, Length: 1, Text: "-"}
	greater := Token{Kind: GreaterThan, StartOffset: 1, Length: 1, Text: ">"}

	combined, ok := Combine(RightArrow, source, []Token{minus, greater})
	require.True(t, ok)
	assert.Equal(t, Token{Kind: RightArrow, StartOffset: 0, Length: 2, Text: "->"}, combined)
}

func TestCombineRejectsMismatches(t *testing.T) {
	t.Parallel()

	minus := Token{Kind: Minus, StartOffset: 0, Length: 1, Text: "-"}
	greater := Token{Kind: GreaterThan, StartOffset: 1, Length: 1, Text: ">"}
	gapGreater := Token{Kind: GreaterThan, StartOffset: 2, Length: 1, Text: ">"}

	tests := []struct {
		name   string
		kind   Kind
		source string
		parts  []Token
	}{
		{"empty parts", RightArrow, "->", nil},
		{"wrong length", RightArrow, "->", []Token{minus}},
		{"wrong order", RightArrow, ">-", []Token{
			{Kind: GreaterThan, StartOffset: 0, Length: 1, Text: ">"},
			{Kind: Minus, StartOffset: 1, Length: 1, Text: "-"},
		}},
		{"wrong kind", PathSeparator, "->", []Token{minus, greater}},
		{"not contiguous", RightArrow, "- >", []Token{minus, gapGreater}},
		{"too many parts", RightArrow, "->>", []Token{minus, greater, gapGreater}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, ok := Combine(tc.kind, tc.source, tc.parts)
			assert.False(t, ok)
		})
	}
}

func TestCombinePrimitiveKeepsKeyword(t *testing.T) {
	t.Parallel()

	// Combining through a primitive kind must reproduce the part exactly:
	// a Keyword part keeps spelling the same keyword.
	const source = "class"

	part := Token{Kind: Keyword, Keyword: KeywordClass, StartOffset: 0, Length: 5, Text: "class"}

	combined, ok := Combine(Keyword, source, []Token{part})
	require.True(t, ok)
	assert.Equal(t, part, combined)
}

func TestCombineReslicesFromSource(t *testing.T) {
	t.Parallel()

	// The combined text must come from the source buffer over the full
	// span, not from concatenating the part texts.
	const source = "x::y"

	first := Token{Kind: Colon, StartOffset: 1, Length: 1, Text: ":"}
	second := Token{Kind: Colon, StartOffset: 2, Length: 1, Text: ":"}

	combined, ok := Combine(PathSeparator, source, []Token{first, second})
	require.True(t, ok)
	assert.Equal(t, "::", combined.Text)
	assert.Equal(t, 1, combined.StartOffset)
	assert.Equal(t, 3, combined.EndOffset())
}

func TestTokenEndOffset(t *testing.T) {
	t.Parallel()

	token := Token{Kind: Identifier, StartOffset: 4, Length: 3, Text: "foo"}
	assert.Equal(t, 7, token.EndOffset())
}
