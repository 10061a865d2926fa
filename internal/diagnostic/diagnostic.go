// Package diagnostic collects and renders findings produced while scanning
// Kestrel source. Lexical conditions are never fatal: an unrecognized
// character becomes an Unknown token and a diagnostic, and scanning keeps
// going.
package diagnostic

import (
	"fmt"

	"github.com/kestrel-lang/kestrel/internal/lexer"
	"github.com/kestrel-lang/kestrel/internal/position"
)

// Severity represents the severity level of a diagnostic message.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single diagnostic message anchored to a source
// span.
type Diagnostic struct {
	Severity Severity
	Message  string
	Span     position.Span
}

// String renders the diagnostic as "file:line:col: severity: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Span.Start, d.Severity, d.Message)
}

// Reporter accumulates diagnostics against a single source file.
type Reporter struct {
	file  *position.SourceFile
	diags []Diagnostic
}

// NewReporter creates a reporter bound to the given source file.
func NewReporter(file *position.SourceFile) *Reporter {
	return &Reporter{file: file}
}

// Report records a diagnostic covering the given byte offset range.
func (r *Reporter) Report(severity Severity, startOffset, endOffset int, format string, args ...any) {
	r.diags = append(r.diags, Diagnostic{
		Severity: severity,
		Message:  fmt.Sprintf(format, args...),
		Span:     r.file.SpanFor(startOffset, endOffset),
	})
}

// ReportToken records a diagnostic covering a token's span.
func (r *Reporter) ReportToken(severity Severity, token lexer.Token, format string, args ...any) {
	r.Report(severity, token.StartOffset, token.EndOffset(), format, args...)
}

// ReportExpected records that a token of the given kind was expected at the
// offset, using the kind's canonical spelling in the message.
func (r *Reporter) ReportExpected(kind lexer.Kind, offset int) {
	r.Report(SeverityError, offset, offset, "expected %q", kind.String())
}

// Scan drains the lexer through Next, reporting a warning for every
// Unknown token, and returns the full token stream.
func (r *Reporter) Scan(l *lexer.Lexer) []lexer.Token {
	var tokens []lexer.Token
	for token := range l.All() {
		if token.Kind == lexer.Unknown {
			r.ReportToken(SeverityWarning, token, "unknown character %q", token.Text)
		}
		tokens = append(tokens, token)
	}

	return tokens
}

// Diagnostics returns the collected diagnostics in report order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diags
}

// Count returns the number of collected diagnostics.
func (r *Reporter) Count() int {
	return len(r.diags)
}

// HasErrors returns true if any collected diagnostic is an error.
func (r *Reporter) HasErrors() bool {
	for _, d := range r.diags {
		if d.Severity == SeverityError {
			return true
		}
	}

	return false
}
