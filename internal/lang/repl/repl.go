// Package repl implements the interactive read-lex-print loop: every line
// typed is echoed back as the token stream the lexer produced for it.
// Parsing and evaluation happen in later stages and are not wired here.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pacer/zuul/internal/lang/lexer"
)

const Prompt = "zuul>> "

// Start reads lines from in until end of input, tokenizes each line with a
// fresh Lexer, and writes every token to out. It returns the first I/O error
// encountered, or nil on a clean end of input.
func Start(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		if _, err := fmt.Fprint(out, Prompt); err != nil {
			return fmt.Errorf("repl: writing prompt: %w", err)
		}

		if !scanner.Scan() {
			break
		}

		// Tokens alias the scanner's buffer, which the next Scan call reuses.
		// They are fully written out before that happens.
		lex := lexer.New(scanner.Bytes())

		for tok := lex.NextToken(); tok.ID != lexer.Eof; tok = lex.NextToken() {
			if _, err := fmt.Fprintln(out, tok); err != nil {
				return fmt.Errorf("repl: writing token: %w", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("repl: reading input: %w", err)
	}

	return nil
}
