package lexer

import "fmt"

// Kind classifies a token. The set is closed: primitive kinds are produced
// directly by a single classification pass, compound kinds only by
// combining a contiguous run of primitives on request.
type Kind int

const (
	// Unknown is any codepoint the classifier does not recognize,
	// exactly one codepoint wide.
	Unknown Kind = iota

	// Whitespace is any run of Unicode whitespace.
	Whitespace
	// Identifier is a name: an ASCII letter or underscore followed by
	// ASCII letters, digits or underscores.
	Identifier
	// Integer is a decimal integer literal.
	Integer
	// Keyword is an identifier whose text exactly matches a keyword
	// spelling. Token.Keyword carries which one.
	Keyword

	Comma       // `,`
	Semicolon   // `;`
	Colon       // `:`
	Equals      // `=`
	Minus       // `-`
	GreaterThan // `>`
	LeftBrace   // `{`
	RightBrace  // `}`
	LeftParen   // `(`
	RightParen  // `)`

	// Compound kinds. The lexer never produces these on its own: whether
	// `-` followed by `>` means an arrow is a grammar decision, so they
	// only exist through NextKind, PeekKind and Combine.

	RightArrow    // `->`
	PathSeparator // `::`
)

// kindNames provides the canonical spelling of each kind for diagnostics.
var kindNames = map[Kind]string{
	Unknown:       "unknown",
	Whitespace:    "whitespace",
	Identifier:    "identifier",
	Integer:       "integer",
	Keyword:       "keyword",
	Comma:         ",",
	Semicolon:     ";",
	Colon:         ":",
	Equals:        "=",
	Minus:         "-",
	GreaterThan:   ">",
	LeftBrace:     "{",
	RightBrace:    "}",
	LeftParen:     "(",
	RightParen:    ")",
	RightArrow:    "->",
	PathSeparator: "::",
}

// String returns the canonical spelling of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// compounds declares each compound kind as the exact ordered sequence of
// primitive kinds it is built from. Keeping the mapping as data keeps
// Decompose and Combine free of per-kind control flow.
var compounds = map[Kind][]Kind{
	RightArrow:    {Minus, GreaterThan},
	PathSeparator: {Colon, Colon},
}

// Decompose returns the ordered primitive constituents of k: the declared
// sequence for a compound kind, k itself otherwise. The returned slice must
// not be modified.
func (k Kind) Decompose() []Kind {
	if parts, ok := compounds[k]; ok {
		return parts
	}

	return []Kind{k}
}

// KeywordKind identifies which keyword a Keyword token spells.
type KeywordKind int

const (
	KeywordModule KeywordKind = iota
	KeywordClass
	KeywordField
	KeywordFunction
	KeywordConstant
	KeywordMutable
)

// keywords maps keyword spellings to their kinds.
var keywords = map[string]KeywordKind{
	"module":   KeywordModule,
	"class":    KeywordClass,
	"let":      KeywordField,
	"function": KeywordFunction,
	"constant": KeywordConstant,
	"mutable":  KeywordMutable,
}

// keywordNames is the reverse of keywords: canonical spellings for
// diagnostics.
var keywordNames = map[KeywordKind]string{
	KeywordModule:   "module",
	KeywordClass:    "class",
	KeywordField:    "let",
	KeywordFunction: "function",
	KeywordConstant: "constant",
	KeywordMutable:  "mutable",
}

// String returns the canonical spelling of the keyword.
func (k KeywordKind) String() string {
	if name, ok := keywordNames[k]; ok {
		return name
	}

	return fmt.Sprintf("KeywordKind(%d)", int(k))
}

// LookupKeyword reports whether text is the exact spelling of a keyword.
func LookupKeyword(text string) (KeywordKind, bool) {
	keyword, ok := keywords[text]

	return keyword, ok
}

// Token is a classified, immutable span of source text. Text borrows from
// the source buffer rather than copying it, so a token is only valid as
// long as the buffer it was lexed from.
type Token struct {
	Kind        Kind
	Keyword     KeywordKind // meaningful only when Kind == Keyword
	StartOffset int
	Length      int
	Text        string
}

// EndOffset returns the byte offset one past the last byte of the token.
func (t Token) EndOffset() int {
	return t.StartOffset + t.Length
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Kind == Keyword {
		return fmt.Sprintf("{Kind: keyword(%s), Text: %q, Offset: %d}", t.Keyword, t.Text, t.StartOffset)
	}

	return fmt.Sprintf("{Kind: %s, Text: %q, Offset: %d}", t.Kind, t.Text, t.StartOffset)
}

// Combine builds a token of the given compound kind from parts. It succeeds
// only if parts is non-empty, every consecutive pair of parts is contiguous
// in the source, and the kind sequence of parts matches the decomposition
// of kind exactly, in length and order.
//
// The combined token's text is re-sliced from source over the full span
// rather than concatenated from the parts, so it always agrees with the
// original buffer. On any mismatch Combine reports false and has no effect.
func Combine(kind Kind, source string, parts []Token) (Token, bool) {
	want := kind.Decompose()
	if len(parts) == 0 || len(parts) != len(want) {
		return Token{}, false
	}

	for i, part := range parts {
		if part.Kind != want[i] {
			return Token{}, false
		}
		if i > 0 && parts[i-1].EndOffset() != part.StartOffset {
			return Token{}, false
		}
	}

	start := parts[0].StartOffset
	end := parts[len(parts)-1].EndOffset()

	token := Token{
		Kind:        kind,
		StartOffset: start,
		Length:      end - start,
		Text:        source[start:end],
	}
	// A primitive kind decomposes to itself, so combining must reproduce
	// the part exactly, including which keyword it spells.
	if len(want) == 1 {
		token.Keyword = parts[0].Keyword
	}

	return token, true
}
