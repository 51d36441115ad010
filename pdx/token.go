package pdx

// TokenType classifies a lexical unit of the script format.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenInteger
	TokenEQ
	TokenOpen
	TokenClose
	TokenStr
	TokenQStr
	TokenDate
	TokenQDate
	TokenComment
	TokenDecimal
	TokenFail
)

var tokenTypeNames = [...]string{
	TokenEOF:     "EOF",
	TokenInteger: "INTEGER",
	TokenEQ:      "EQ",
	TokenOpen:    "OPEN",
	TokenClose:   "CLOSE",
	TokenStr:     "STR",
	TokenQStr:    "QSTR",
	TokenDate:    "DATE",
	TokenQDate:   "QDATE",
	TokenComment: "COMMENT",
	TokenDecimal: "DECIMAL",
	TokenFail:    "FAIL",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token is a classified lexical unit. Text is borrowed from the lexer and
// only valid until the next fetch; consumers that keep it must copy it.
type Token struct {
	Type TokenType
	Text []byte
}
