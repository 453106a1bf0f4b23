package lexer

import "bytes"

// Token is one lexical unit: a kind plus the exact source text it was scanned
// from. Value is always a sub-slice of the lexer input, untouched (no
// case-folding, no escape processing). It is empty only for Eof.
type Token struct {
	ID    Kind
	Value []byte
}

func NewToken(id Kind, val []byte) Token {
	fresh := Token{
		ID:    id,
		Value: val,
	}

	return fresh
}

// Equal reports whether both tokens have the same kind and the same literal.
func (t Token) Equal(other Token) bool {
	return t.ID == other.ID && bytes.Equal(t.Value, other.Value)
}

// LookupIdent classifies an identifier-shaped spelling. Reserved words map to
// their keyword kind, every other spelling is a plain Ident.
func LookupIdent(spelling []byte) Kind {
	if id, ok := KeywordKind(spelling); ok {
		return id
	}

	return Ident
}
