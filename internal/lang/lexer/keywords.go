package lexer

// Reserved words of the language. Matching is exact and case-sensitive,
// so 'Let' or 'LET' are ordinary identifiers.
const (
	KeywordLet      = "let"
	KeywordFunction = "func"
	KeywordTrue     = "true"
	KeywordFalse    = "false"
	KeywordIf       = "if"
	KeywordElse     = "else"
	KeywordReturn   = "return"
)

// keywords is built once at package init and never mutated afterwards, so it
// is shared by every Lexer without synchronization. New reserved words only
// need an entry here plus their Kind.
var keywords = map[string]Kind{
	KeywordLet:      Let,
	KeywordFunction: Function,
	KeywordTrue:     True,
	KeywordFalse:    False,
	KeywordIf:       If,
	KeywordElse:     Else,
	KeywordReturn:   Return,
}

// KeywordKind reports the keyword kind for spelling if it is a reserved word.
// Absence means the caller should treat the spelling as an identifier.
func KeywordKind(spelling []byte) (Kind, bool) {
	id, ok := keywords[string(spelling)]

	return id, ok
}
