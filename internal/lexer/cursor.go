package lexer

// Lexeme is the raw span of source text accumulated by a Cursor, prior to
// kind classification. Offsets and lengths are in bytes.
type Lexeme struct {
	StartOffset int
	Length      int
	Text        string
}

// EndOffset returns the byte offset one past the last byte of the lexeme.
func (l Lexeme) EndOffset() int {
	return l.StartOffset + l.Length
}

// Cursor scans an immutable source text one codepoint at a time,
// accumulating the bounds of the open lexeme. It does not know the kind of
// lexeme being consumed.
//
// The codepoints are decoded once up front together with their byte
// offsets, so PeekAt costs O(1) regardless of lookahead depth.
type Cursor struct {
	text    string
	runes   []rune
	offsets []int // offsets[i] is the byte offset of runes[i]; offsets[len(runes)] == len(text)
	start   int   // rune index where the open lexeme begins
	next    int   // rune index of the next unconsumed codepoint
}

// NewCursor creates a cursor over text, positioned at its first codepoint
// with an empty open lexeme.
func NewCursor(text string) *Cursor {
	runes := make([]rune, 0, len(text))
	offsets := make([]int, 0, len(text)+1)
	for i, r := range text {
		runes = append(runes, r)
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))

	return &Cursor{
		text:    text,
		runes:   runes,
		offsets: offsets,
	}
}

// Consume advances past one codepoint, extending the open lexeme by that
// codepoint's encoded width. It reports false at end of input, with no
// state change.
func (c *Cursor) Consume() (rune, bool) {
	if c.next >= len(c.runes) {
		return 0, false
	}
	r := c.runes[c.next]
	c.next++

	return r, true
}

// ConsumeWhile consumes codepoints into the open lexeme as long as
// predicate holds on the next one. It returns the number consumed.
func (c *Cursor) ConsumeWhile(predicate func(rune) bool) int {
	consumed := 0
	for {
		next, ok := c.Peek()
		if !ok || !predicate(next) {
			return consumed
		}
		c.Consume()
		consumed++
	}
}

// Peek returns the next unconsumed codepoint without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	return c.PeekAt(0)
}

// PeekAt returns the codepoint n positions past the next unconsumed one.
// It never mutates the cursor. A negative n reports false.
func (c *Cursor) PeekAt(n int) (rune, bool) {
	if n < 0 || c.next+n >= len(c.runes) {
		return 0, false
	}

	return c.runes[c.next+n], true
}

// Current returns the open lexeme without closing it.
func (c *Cursor) Current() Lexeme {
	start := c.offsets[c.start]
	end := c.offsets[c.next]

	return Lexeme{
		StartOffset: start,
		Length:      end - start,
		Text:        c.text[start:end],
	}
}

// Close snapshots the open lexeme and starts accumulating a new one at the
// current offset. Closing with nothing accumulated yields a valid
// zero-length lexeme at the current offset.
func (c *Cursor) Close() Lexeme {
	current := c.Current()
	c.start = c.next

	return current
}
