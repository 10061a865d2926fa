// Package lexer implements the Kestrel lexical analyzer: a character
// cursor, a lexeme/token data model, and a lookahead-buffered token
// producer.
//
// The lexer will not return combined tokens on its own. A combined token
// (e.g. `->`) is built up of other tokens (`-` and `>`), and the lexer is
// not aware whether a combined token is expected; the parser requests one
// explicitly through NextKind or PeekKind.
package lexer

import (
	"iter"
	"unicode"
)

// Lexer converts source text into a finite, ordered stream of tokens with
// arbitrary-depth lookahead. A Lexer is not safe for concurrent use.
type Lexer struct {
	source string
	cursor *Cursor
	queue  []Token // produced but unconsumed tokens, oldest first
}

// New creates a lexer over source.
func New(source string) *Lexer {
	return &Lexer{
		source: source,
		cursor: NewCursor(source),
	}
}

// Next consumes and returns the next token. Once input is exhausted it
// reports false, idempotently.
func (l *Lexer) Next() (Token, bool) {
	if len(l.queue) > 0 {
		token := l.queue[0]
		l.queue = l.queue[1:]

		return token, true
	}

	return l.create()
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, bool) {
	return l.PeekAt(0)
}

// PeekAt returns the token at the given lookahead offset without consuming
// anything. Peeking past end of input reports false and never changes the
// tokens eventually produced by Next. A negative offset reports false.
func (l *Lexer) PeekAt(offset int) (Token, bool) {
	if offset < 0 || !l.fill(offset+1) {
		return Token{}, false
	}

	return l.queue[offset], true
}

// NextKind combines the upcoming tokens into a token of the given compound
// kind if they match its decomposition exactly and are contiguous. On
// success exactly those constituent tokens are consumed; on failure nothing
// is consumed. Combination is all-or-nothing.
func (l *Lexer) NextKind(kind Kind) (Token, bool) {
	token, ok := l.combineAt(kind, 0)
	if !ok {
		return Token{}, false
	}
	l.queue = l.queue[len(kind.Decompose()):]

	return token, true
}

// PeekKind performs the same check as NextKind without consuming anything.
func (l *Lexer) PeekKind(kind Kind) (Token, bool) {
	return l.PeekKindAt(kind, 0)
}

// PeekKindAt checks whether the tokens starting at the given lookahead
// offset combine into a token of the given compound kind, without consuming
// anything.
func (l *Lexer) PeekKindAt(kind Kind, offset int) (Token, bool) {
	return l.combineAt(kind, offset)
}

// All returns an iterator that drains the lexer through Next.
func (l *Lexer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			token, ok := l.Next()
			if !ok || !yield(token) {
				return
			}
		}
	}
}

// combineAt materializes enough tokens into the queue and attempts the
// combination at the given queue offset. The queue is left intact either
// way.
func (l *Lexer) combineAt(kind Kind, offset int) (Token, bool) {
	parts := kind.Decompose()
	if offset < 0 || !l.fill(offset+len(parts)) {
		return Token{}, false
	}

	return Combine(kind, l.source, l.queue[offset:offset+len(parts)])
}

// fill synthesizes tokens until the queue holds at least n, reporting
// whether it succeeded before input ran out.
func (l *Lexer) fill(n int) bool {
	for len(l.queue) < n {
		token, ok := l.create()
		if !ok {
			return false
		}
		l.queue = append(l.queue, token)
	}

	return true
}

// create scans one primitive token directly from the cursor.
//
// Each unrecognized codepoint becomes its own one-codepoint Unknown token.
// Multi-codepoint grapheme clusters (combining marks, joined emoji) are
// never merged into one token; this is a known limitation, not a defect.
func (l *Lexer) create() (Token, bool) {
	next, ok := l.cursor.Consume()
	if !ok {
		return Token{}, false
	}

	kind := Unknown
	var keyword KeywordKind
	switch {
	case isWhitespace(next):
		kind = l.whitespace()
	case isIdentifierStart(next):
		kind, keyword = l.identifier()
	case isInteger(next):
		kind = l.integer()
	default:
		if punct, ok := punctuation[next]; ok {
			kind = punct
		}
	}

	lexeme := l.cursor.Close()

	return Token{
		Kind:        kind,
		Keyword:     keyword,
		StartOffset: lexeme.StartOffset,
		Length:      lexeme.Length,
		Text:        lexeme.Text,
	}, true
}

func (l *Lexer) whitespace() Kind {
	l.cursor.ConsumeWhile(isWhitespace)

	return Whitespace
}

func (l *Lexer) identifier() (Kind, KeywordKind) {
	l.cursor.ConsumeWhile(isIdentifierContinue)
	if keyword, ok := LookupKeyword(l.cursor.Current().Text); ok {
		return Keyword, keyword
	}

	return Identifier, 0
}

func (l *Lexer) integer() Kind {
	l.cursor.ConsumeWhile(isInteger)

	return Integer
}

// punctuation maps each single-codepoint punctuation or delimiter to its
// kind.
var punctuation = map[rune]Kind{
	',': Comma,
	';': Semicolon,
	':': Colon,
	'=': Equals,
	'-': Minus,
	'>': GreaterThan,
	'{': LeftBrace,
	'}': RightBrace,
	'(': LeftParen,
	')': RightParen,
}

func isWhitespace(next rune) bool {
	return unicode.IsSpace(next)
}

func isIdentifierStart(next rune) bool {
	return next == '_' || ('a' <= next && next <= 'z') || ('A' <= next && next <= 'Z')
}

// Digits may follow but not start an identifier.
func isIdentifierContinue(next rune) bool {
	return isIdentifierStart(next) || isInteger(next)
}

func isInteger(next rune) bool {
	return '0' <= next && next <= '9'
}
