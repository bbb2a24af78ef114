package formula

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Literals
	IDENT // input identifiers, function names
	INT   // integers
	FLOAT // floating point numbers

	// Operators
	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /

	// Delimiters
	COMMA // ,

	LPAREN // (
	RPAREN // )
)

type Token struct {
	Type     TokenType
	Literal  string
	Position int
}

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	tok.Position = l.position

	switch l.ch {
	case '+':
		tok = newToken(PLUS, l.ch, l.position)
	case '-':
		tok = newToken(MINUS, l.ch, l.position)
	case '*':
		tok = newToken(ASTERISK, l.ch, l.position)
	case '/':
		tok = newToken(SLASH, l.ch, l.position)
	case ',':
		tok = newToken(COMMA, l.ch, l.position)
	case '(':
		tok = newToken(LPAREN, l.ch, l.position)
	case ')':
		tok = newToken(RPAREN, l.ch, l.position)
	case 0:
		tok.Literal = ""
		tok.Type = EOF
	default:
		if isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = IDENT
			return tok
		} else if isDigit(l.ch) {
			tok.Type, tok.Literal = l.readNumber()
			return tok
		}
		tok = newToken(ILLEGAL, l.ch, l.position)
	}

	l.readChar()
	return tok
}

func newToken(tokenType TokenType, ch byte, position int) Token {
	return Token{
		Type:     tokenType,
		Literal:  string(ch),
		Position: position,
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber reads an INT or FLOAT. A digit run that collides with a letter
// is re-read as an identifier, so sanitized inputs like 10K_Employees lex as
// a single IDENT.
func (l *Lexer) readNumber() (TokenType, string) {
	position := l.position
	tokenType := INT

	for isDigit(l.ch) {
		l.readChar()
	}

	if isLetter(l.ch) {
		for isLetter(l.ch) || isDigit(l.ch) {
			l.readChar()
		}
		return IDENT, l.input[position:l.position]
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		tokenType = FLOAT
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return tokenType, l.input[position:l.position]
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

func (t TokenType) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case INT:
		return "INT"
	case FLOAT:
		return "FLOAT"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case ASTERISK:
		return "*"
	case SLASH:
		return "/"
	case COMMA:
		return ","
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	default:
		return "UNKNOWN"
	}
}
