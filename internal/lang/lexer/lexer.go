package lexer

// Lexer scans a source buffer one byte at a time and hands out tokens on
// demand. The cursor only moves forward; scanning the same input again takes
// a fresh Lexer. A Lexer must not be shared between goroutines.
type Lexer struct {
	input        []byte
	position     int  // index of the byte under examination
	readPosition int  // index of the next byte to read (one byte of lookahead)
	ch           byte // byte at position, 0 once the cursor passed the end of input
}

// New builds a Lexer over input and primes the cursor on its first byte.
// An empty input is valid: the first NextToken call yields Eof right away.
func New(input []byte) *Lexer {
	fresh := &Lexer{input: input}
	fresh.readChar()

	return fresh
}

// NextToken skips leading whitespace and returns the next token from the
// input. Once the input is exhausted it keeps returning Eof forever. An
// unrecognized byte is returned as an Illegal token rather than an error,
// and the cursor still advances past it.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	var tok Token

	switch l.ch {
	case 0:
		return NewToken(Eof, nil)
	case '=':
		if l.peekChar() == '=' {
			tok = l.twoByteToken(Eq)
		} else {
			tok = l.oneByteToken(Assign)
		}
	case '+':
		tok = l.oneByteToken(Plus)
	case '-':
		tok = l.oneByteToken(Minus)
	case '!':
		if l.peekChar() == '=' {
			tok = l.twoByteToken(NotEq)
		} else {
			tok = l.oneByteToken(Bang)
		}
	case '*':
		tok = l.oneByteToken(Asterisk)
	case '/':
		tok = l.oneByteToken(Slash)
	case '<':
		tok = l.oneByteToken(Lt)
	case '>':
		tok = l.oneByteToken(Gt)
	case ',':
		tok = l.oneByteToken(Comma)
	case ';':
		tok = l.oneByteToken(Semicolon)
	case '(':
		tok = l.oneByteToken(LeftParen)
	case ')':
		tok = l.oneByteToken(RightParen)
	case '{':
		tok = l.oneByteToken(LeftBrace)
	case '}':
		tok = l.oneByteToken(RightBrace)
	default:
		if isLetter(l.ch) {
			spelling := l.readIdentifier()
			return NewToken(LookupIdent(spelling), spelling)
		}

		if isDigit(l.ch) {
			return NewToken(Int, l.readNumber())
		}

		tok = l.oneByteToken(Illegal)
	}

	l.readChar()

	return tok
}

// Tokenize drains a fresh Lexer over input and returns every token up to and
// including the first Eof. The pull API above remains the contract; this is a
// convenience for callers that want the whole stream at once.
func Tokenize(input []byte) []Token {
	lex := New(input)

	var tokens []Token
	for {
		tok := lex.NextToken()
		tokens = append(tokens, tok)

		if tok.ID == Eof {
			return tokens
		}
	}
}

// oneByteToken builds a token for the byte under the cursor without consuming it.
// The caller advances the cursor afterwards.
func (l *Lexer) oneByteToken(id Kind) Token {
	return NewToken(id, l.input[l.position:l.readPosition])
}

// twoByteToken consumes the lookahead byte and builds a token spanning both
// bytes, for the '==' and '!=' operators.
func (l *Lexer) twoByteToken(id Kind) Token {
	start := l.position
	l.readChar()

	return NewToken(id, l.input[start:l.readPosition])
}

// readChar moves the cursor one byte forward. Past the end of input the
// current byte becomes the 0 sentinel and stays there.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++
}

// peekChar returns the next byte without consuming it.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}

	return l.input[l.readPosition]
}

// readIdentifier consumes the maximal letter/digit/underscore run starting at
// the cursor. The cursor lands on the first byte after the run.
func (l *Lexer) readIdentifier() []byte {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}

	return l.input[start:l.position]
}

// readNumber consumes the maximal digit run starting at the cursor. No sign,
// no fraction: a leading '-' is a separate Minus token for the parser to fold.
func (l *Lexer) readNumber() []byte {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}

	return l.input[start:l.position]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
