// Package main provides the Kestrel token dump tool. It runs the lexical
// analyzer over a source file and prints the resulting token stream, either
// as an aligned debug table or as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kestrel-lang/kestrel/internal/cli"
	"github.com/kestrel-lang/kestrel/internal/diagnostic"
	"github.com/kestrel-lang/kestrel/internal/lexer"
	"github.com/kestrel-lang/kestrel/internal/position"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		jsonVersion = flag.Bool("json", false, "print version information as JSON")
		requireVer  = flag.String("require-version", "", "fail unless the tool version satisfies this semver constraint")
		configPath  = flag.String("config", "", "path to TOML configuration file")
		jsonTokens  = flag.Bool("json-tokens", false, "emit the token stream as JSON")
		combine     = flag.Bool("arrows", false, "combine '-' '>' into '->' and ':' ':' into '::'")
		watch       = flag.Bool("watch", false, "re-lex the input whenever it changes")
		verbose     = flag.Bool("verbose", false, "enable verbose output")
		debugMode   = flag.Bool("debug", false, "enable debug output")
	)

	flag.Usage = showUsage
	flag.Parse()

	if *showVersion {
		cli.PrintVersion("kestrel-lex", *jsonVersion)
		return
	}

	if *requireVer != "" {
		if err := cli.CheckVersion(*requireVer); err != nil {
			cli.ExitWithError("%v", err)
		}
	}

	config, err := cli.LoadConfig(*configPath)
	if err != nil {
		cli.ExitWithError("%v", err)
	}
	if *jsonTokens {
		config.Output = "json"
	}
	if *verbose {
		config.Verbose = true
	}
	if *debugMode {
		config.Debug = true
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No input file specified")
		showUsage()
		os.Exit(1)
	}

	inputFile := args[0]
	logger := cli.NewLogger(config.Verbose, config.Debug)

	relex := func() error {
		return lexFile(inputFile, config, *combine, logger)
	}

	if err := relex(); err != nil {
		cli.ExitWithError("%v", err)
	}

	if *watch {
		if err := watchAndLex(inputFile, relex, logger); err != nil {
			cli.ExitWithError("%v", err)
		}
	}
}

func showUsage() {
	fmt.Println("kestrel-lex - Kestrel token dump tool")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("    kestrel-lex [OPTIONS] <INPUT_FILE>")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("    --version          Show version information")
	fmt.Println("    --json             Print version information as JSON")
	fmt.Println("    --require-version  Fail unless the tool satisfies a semver constraint")
	fmt.Println("    --config           Path to TOML configuration file")
	fmt.Println("    --json-tokens      Emit the token stream as JSON")
	fmt.Println("    --arrows           Combine '-' '>' and ':' ':' into compound tokens")
	fmt.Println("    --watch            Re-lex the input whenever it changes")
	fmt.Println("    --verbose          Enable verbose output")
	fmt.Println("    --debug            Enable debug output")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("    kestrel-lex hello.ks")
	fmt.Println("    kestrel-lex --json-tokens hello.ks")
	fmt.Println("    kestrel-lex --arrows --watch hello.ks")
}

func lexFile(filename string, config *cli.Config, combine bool, logger *cli.Logger) error {
	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	file := position.NewSourceFile(filename, string(source))
	reporter := diagnostic.NewReporter(file)
	lx := lexer.New(string(source))

	var tokens []lexer.Token
	if combine {
		tokens = drainCombining(lx, reporter)
	} else {
		tokens = reporter.Scan(lx)
	}

	switch config.Output {
	case "json":
		if err := printJSON(os.Stdout, tokens); err != nil {
			return err
		}
	default:
		printTable(tokens, file)
	}

	for _, d := range reporter.Diagnostics() {
		fmt.Fprintln(os.Stderr, d)
	}
	logger.Info("lexed %d tokens (%d diagnostics)", len(tokens), reporter.Count())

	return nil
}

// drainCombining drains the lexer, preferring compound tokens wherever the
// upcoming primitives allow one. This is the decision a parser normally
// makes; the flag exists to exercise and demonstrate the compound path.
func drainCombining(lx *lexer.Lexer, reporter *diagnostic.Reporter) []lexer.Token {
	var tokens []lexer.Token
	for {
		token, ok := lx.NextKind(lexer.RightArrow)
		if !ok {
			token, ok = lx.NextKind(lexer.PathSeparator)
		}
		if !ok {
			token, ok = lx.Next()
		}
		if !ok {
			return tokens
		}
		if token.Kind == lexer.Unknown {
			reporter.ReportToken(diagnostic.SeverityWarning, token, "unknown character %q", token.Text)
		}
		tokens = append(tokens, token)
	}
}

// jsonToken is the wire shape of one token in --json-tokens output.
type jsonToken struct {
	Kind    string `json:"kind"`
	Keyword string `json:"keyword,omitempty"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Text    string `json:"text"`
}

func printJSON(w *os.File, tokens []lexer.Token) error {
	out := make([]jsonToken, len(tokens))
	for i, token := range tokens {
		out[i] = jsonToken{
			Kind:  token.Kind.String(),
			Start: token.StartOffset,
			End:   token.EndOffset(),
			Text:  token.Text,
		}
		if token.Kind == lexer.Keyword {
			out[i].Keyword = token.Keyword.String()
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode tokens: %w", err)
	}

	return nil
}

func printTable(tokens []lexer.Token, file *position.SourceFile) {
	for _, token := range tokens {
		kind := token.Kind.String()
		if token.Kind == lexer.Keyword {
			kind = fmt.Sprintf("keyword(%s)", token.Keyword)
		}
		fmt.Printf("Token: %-15s | Text: %-20q | Position: %s\n",
			kind, token.Text, file.PositionFromOffset(token.StartOffset))
	}
}
