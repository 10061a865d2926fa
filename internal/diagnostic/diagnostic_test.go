package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-lang/kestrel/internal/lexer"
	"github.com/kestrel-lang/kestrel/internal/position"
)

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "unknown", Severity(99).String())
}

func TestScanReportsUnknownCharacters(t *testing.T) {
	t.Parallel()

	const source = "let x = §\nlet y = 2"

	file := position.NewSourceFile("main.ks", source)
	reporter := NewReporter(file)

	tokens := reporter.Scan(lexer.New(source))

	// The stream itself is complete: unknown characters are data.
	var b []byte
	for _, token := range tokens {
		b = append(b, token.Text...)
	}
	assert.Equal(t, source, string(b))

	require.Equal(t, 1, reporter.Count())
	assert.False(t, reporter.HasErrors())

	d := reporter.Diagnostics()[0]
	assert.Equal(t, SeverityWarning, d.Severity)
	assert.Equal(t, `main.ks:1:9: warning: unknown character "§"`, d.String())
}

func TestScanCleanSource(t *testing.T) {
	t.Parallel()

	const source = "function foo() -> Integer { 1 }"

	reporter := NewReporter(position.NewSourceFile("main.ks", source))
	tokens := reporter.Scan(lexer.New(source))

	assert.NotEmpty(t, tokens)
	assert.Equal(t, 0, reporter.Count())
}

func TestReportExpected(t *testing.T) {
	t.Parallel()

	reporter := NewReporter(position.NewSourceFile("main.ks", "a b"))
	reporter.ReportExpected(lexer.RightArrow, 2)

	require.Equal(t, 1, reporter.Count())
	assert.True(t, reporter.HasErrors())
	assert.Equal(t, `main.ks:1:3: error: expected "->"`, reporter.Diagnostics()[0].String())
}
