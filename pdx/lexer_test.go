package pdx

import "testing"

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenType
	}{
		{"", []TokenType{TokenEOF}},
		{"   \t\r\n ", []TokenType{TokenEOF}},
		{"{ } =", []TokenType{TokenOpen, TokenClose, TokenEQ, TokenEOF}},
		{"count", []TokenType{TokenStr, TokenEOF}},
		{"c_holland", []TokenType{TokenStr, TokenEOF}},
		{"123", []TokenType{TokenInteger, TokenEOF}},
		{"-42", []TokenType{TokenInteger, TokenEOF}},
		{"0.5", []TokenType{TokenDecimal, TokenEOF}},
		{"-12.", []TokenType{TokenDecimal, TokenEOF}},
		{"1066.9.14", []TokenType{TokenDate, TokenEOF}},
		{`"some words"`, []TokenType{TokenQStr, TokenEOF}},
		{`"1066.9.14"`, []TokenType{TokenQDate, TokenEOF}},
		{"# a comment\nkey", []TokenType{TokenComment, TokenStr, TokenEOF}},
		{"a = 1", []TokenType{TokenStr, TokenEQ, TokenInteger, TokenEOF}},
		{"a=1", []TokenType{TokenStr, TokenEQ, TokenInteger, TokenEOF}},
		{"1.2.3.4", []TokenType{TokenStr, TokenEOF}},
		{"-1066.9.14", []TokenType{TokenStr, TokenEOF}},
		{"\x01", []TokenType{TokenFail, TokenEOF}},
		{`"unterminated`, []TokenType{TokenFail, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lex := NewLexer([]byte(tt.input), "test.txt")
			var got []TokenType
			for {
				tok := lex.NextToken()
				got = append(got, tok.Type)
				if tok.Type == TokenEOF {
					break
				}
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d tokens %v, want %d", len(got), got, len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexerTokenText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		typ   TokenType
		text  string
	}{
		{"quotes stripped", `"prestige gain"`, TokenQStr, "prestige gain"},
		{"quoted date", `"867.1.1"`, TokenQDate, "867.1.1"},
		{"trailing cr stripped", "name\r\n", TokenStr, "name"},
		{"cr inside quotes stripped", "\"name\r\"", TokenQStr, "name"},
		{"comment keeps body", "# note", TokenComment, "# note"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex := NewLexer([]byte(tt.input), "test.txt")
			tok := lex.NextToken()
			if tok.Type != tt.typ {
				t.Fatalf("got token %v, want %v", tok.Type, tt.typ)
			}
			if string(tok.Text) != tt.text {
				t.Errorf("got text %q, want %q", tok.Text, tt.text)
			}
		})
	}
}

func TestLexerLineTracking(t *testing.T) {
	lex := NewLexer([]byte("a = 1\nb = 2\n\nc = 3\n"), "test.txt")
	wantLines := []int{1, 1, 1, 2, 2, 2, 4, 4, 4}
	for i, want := range wantLines {
		tok := lex.NextToken()
		if tok.Type == TokenEOF {
			t.Fatalf("unexpected EOF at token %d", i)
		}
		if lex.Line() != want {
			t.Errorf("token %d: line %d, want %d", i, lex.Line(), want)
		}
	}
	if loc := lex.Location(); loc.Path != "test.txt" {
		t.Errorf("location path %q, want test.txt", loc.Path)
	}
}
