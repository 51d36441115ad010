package pdx

// Lexer produces Tokens from a fully buffered script source. Token text
// points into the input buffer; it is treated as transient by callers.
type Lexer struct {
	input []byte
	path  string
	pos   int
	line  int // line currently being scanned
	tok   int // line on which the last-lexed token started
}

func NewLexer(input []byte, path string) *Lexer {
	return &Lexer{
		input: input,
		path:  path,
		line:  1,
		tok:   1,
	}
}

func (l *Lexer) Path() string { return l.path }

// Line reports the line on which the most recently lexed token started.
func (l *Lexer) Line() int { return l.tok }

// Location reports the position of the most recently lexed token.
func (l *Lexer) Location() FileLocation {
	return FileLocation{Path: l.path, Line: l.tok}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
	}
	return ch
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

// NextToken lexes and returns the next token, ending with TokenEOF.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	l.tok = l.line

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF}
	}

	switch ch := l.peek(); ch {
	case '#':
		return l.scanComment()
	case '{':
		l.advance()
		return Token{Type: TokenOpen, Text: l.input[l.pos-1 : l.pos]}
	case '}':
		l.advance()
		return Token{Type: TokenClose, Text: l.input[l.pos-1 : l.pos]}
	case '=':
		l.advance()
		return Token{Type: TokenEQ, Text: l.input[l.pos-1 : l.pos]}
	case '"':
		return l.scanQuoted()
	default:
		return l.scanBare()
	}
}

func (l *Lexer) scanComment() Token {
	start := l.pos
	for l.peek() != 0 && l.peek() != '\n' {
		l.advance()
	}
	return Token{Type: TokenComment, Text: trimCR(l.input[start:l.pos])}
}

// scanQuoted lexes a double-quoted token. The surrounding quotes are
// stripped from the token text, as is a trailing carriage return.
func (l *Lexer) scanQuoted() Token {
	l.advance() // opening quote
	start := l.pos
	for {
		ch := l.peek()
		if ch == 0 || ch == '\n' {
			// unterminated
			return Token{Type: TokenFail, Text: l.input[start:l.pos]}
		}
		if ch == '"' {
			break
		}
		l.advance()
	}
	text := trimCR(l.input[start:l.pos])
	l.advance() // closing quote
	if isDateText(text) {
		return Token{Type: TokenQDate, Text: text}
	}
	return Token{Type: TokenQStr, Text: text}
}

func (l *Lexer) scanBare() Token {
	start := l.pos
	for isBareByte(l.peek()) {
		l.advance()
	}
	if l.pos == start {
		// a byte no token may contain, e.g. a stray control character
		l.advance()
		return Token{Type: TokenFail, Text: l.input[start:l.pos]}
	}
	text := l.input[start:l.pos]
	switch {
	case isDateText(text):
		return Token{Type: TokenDate, Text: text}
	case isIntegerText(text):
		return Token{Type: TokenInteger, Text: text}
	case isDecimalText(text):
		return Token{Type: TokenDecimal, Text: text}
	default:
		return Token{Type: TokenStr, Text: text}
	}
}

func trimCR(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\r' {
		return b[:n-1]
	}
	return b
}

// isBareByte reports whether ch may appear in an unquoted token.
func isBareByte(ch byte) bool {
	switch ch {
	case 0, '{', '}', '=', '"', '#':
		return false
	}
	return ch > ' '
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

// isDateText matches \d+\.\d+\.\d+
func isDateText(b []byte) bool {
	dots := 0
	digits := 0
	for _, ch := range b {
		switch {
		case isDigit(ch):
			digits++
		case ch == '.':
			if digits == 0 {
				return false
			}
			dots++
			digits = 0
		default:
			return false
		}
	}
	return dots == 2 && digits > 0
}

// isIntegerText matches -?\d+
func isIntegerText(b []byte) bool {
	if len(b) > 0 && b[0] == '-' {
		b = b[1:]
	}
	if len(b) == 0 {
		return false
	}
	for _, ch := range b {
		if !isDigit(ch) {
			return false
		}
	}
	return true
}

// isDecimalText matches -?\d+\.\d*
func isDecimalText(b []byte) bool {
	if len(b) > 0 && b[0] == '-' {
		b = b[1:]
	}
	digits := 0
	for i, ch := range b {
		if isDigit(ch) {
			digits++
			continue
		}
		if ch == '.' && digits > 0 {
			rest := b[i+1:]
			for _, fch := range rest {
				if !isDigit(fch) {
					return false
				}
			}
			return true
		}
		return false
	}
	return false
}
