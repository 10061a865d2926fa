// Package position provides source code position tracking for the Kestrel
// front end. Tokens carry byte offsets; this package converts them into the
// line/column form that error reporting wants.
package position

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// Position represents a single point in source code.
type Position struct {
	Filename string // Source file name
	Line     int    // 1-based line number
	Column   int    // 1-based column number, counted in codepoints
	Offset   int    // 0-based byte offset in source
}

// IsValid returns true if the position is valid.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0 && p.Offset >= 0
}

// String returns a string representation of the position.
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", filepath.Base(p.Filename), p.Line, p.Column)
	}

	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before returns true if this position comes before other.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// Span represents a range of source code between two positions. Start is
// inclusive, End exclusive.
type Span struct {
	Start Position
	End   Position
}

// IsValid returns true if the span is valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && s.Start.Offset <= s.End.Offset
}

// String returns a string representation of the span.
func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%s-%d", s.Start, s.End.Column)
	}

	return fmt.Sprintf("%s-%d:%d", s.Start, s.End.Line, s.End.Column)
}

// Length returns the length of the span in bytes.
func (s Span) Length() int {
	if !s.IsValid() {
		return 0
	}

	return s.End.Offset - s.Start.Offset
}

// SourceFile represents an immutable source buffer with position tracking.
// The line index is computed once, so offset conversion is O(log n).
type SourceFile struct {
	Filename string
	Content  string

	lineStarts []int // byte offset of the first byte of each line
}

// NewSourceFile creates a new source file from content.
func NewSourceFile(filename, content string) *SourceFile {
	lineStarts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}

	return &SourceFile{
		Filename:   filename,
		Content:    content,
		lineStarts: lineStarts,
	}
}

// NumLines returns the number of lines in the file.
func (sf *SourceFile) NumLines() int {
	return len(sf.lineStarts)
}

// Line returns the specified line (1-based) without its trailing newline,
// or the empty string if the line number is out of range.
func (sf *SourceFile) Line(lineNum int) string {
	if lineNum < 1 || lineNum > len(sf.lineStarts) {
		return ""
	}

	start := sf.lineStarts[lineNum-1]
	end := len(sf.Content)
	if lineNum < len(sf.lineStarts) {
		end = sf.lineStarts[lineNum] - 1
	}

	return strings.TrimSuffix(sf.Content[start:end], "\r")
}

// PositionFromOffset converts a byte offset to a Position. Offsets outside
// the buffer yield an invalid zero Position.
func (sf *SourceFile) PositionFromOffset(offset int) Position {
	if offset < 0 || offset > len(sf.Content) {
		return Position{}
	}

	// The line containing offset is the last line starting at or before it.
	line := sort.SearchInts(sf.lineStarts, offset+1)
	column := utf8.RuneCountInString(sf.Content[sf.lineStarts[line-1]:offset]) + 1

	return Position{
		Filename: sf.Filename,
		Line:     line,
		Column:   column,
		Offset:   offset,
	}
}

// SpanFor converts a byte offset range to a Span.
func (sf *SourceFile) SpanFor(startOffset, endOffset int) Span {
	return Span{
		Start: sf.PositionFromOffset(startOffset),
		End:   sf.PositionFromOffset(endOffset),
	}
}

// Text returns the text covered by the span.
func (sf *SourceFile) Text(span Span) string {
	if !span.IsValid() || span.End.Offset > len(sf.Content) {
		return ""
	}

	return sf.Content[span.Start.Offset:span.End.Offset]
}
