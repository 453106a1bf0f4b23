package lexer

import (
	"fmt"
	"strings"
)

func (t Token) String() string {
	return fmt.Sprintf("{ \"ID\": \"%s\", \"Value\": %q }", t.ID, t.Value)
}

// FormatTokens renders a token slice on a single line, for REPL echo and for
// readable test failures.
func FormatTokens(tokens []Token) string {
	if len(tokens) == 0 {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteString("[")

	for i, tok := range tokens {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(tok.String())
	}

	sb.WriteString("]")

	return sb.String()
}
