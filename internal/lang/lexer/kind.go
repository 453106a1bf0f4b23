package lexer

// ----------
// Token Kind
// ----------

//go:generate stringer -type=Kind
type Kind int

const (
	Illegal Kind = iota
	Eof
	Ident
	Int
	Assign
	Plus
	Minus
	Asterisk
	Slash
	Bang
	Lt
	Gt
	Eq
	NotEq
	Comma
	Semicolon
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Function
	Let
	True
	False
	If
	Else
	Return
)
