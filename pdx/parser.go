package pdx

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// DefaultPrecision is the fractional digit count used for decimal values
// unless overridden with WithPrecision.
const DefaultPrecision = 3

type Option func(*Parser)

// WithFile sets the path reported in locations and error messages.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.path = path
	}
}

// WithSave puts the parser in save-style mode: the root block opens with
// a bare header token, and a closing brace may terminate the root.
func WithSave() Option {
	return func(p *Parser) {
		p.save = true
	}
}

// WithErrorQueue directs recoverable diagnostics into a caller-owned
// queue instead of the parser's internal one.
func WithErrorQueue(q *ErrorQueue) Option {
	return func(p *Parser) {
		p.errs = q
	}
}

// WithPrecision sets the fractional digit count for decimal values.
func WithPrecision(prec int) Option {
	return func(p *Parser) {
		p.prec = prec
	}
}

// tokenState drives the 2-slot pushback buffer used by the block/list
// disambiguation lookahead.
type tokenState int

const (
	stateNormal  tokenState = iota // fetch fresh from the lexer
	stateReplay1                   // replay tok1, then tok2
	stateReplay2                   // replay tok2, then fetch fresh
)

// Parser consumes one token source to completion and owns the resulting
// tree together with the string pool backing its string objects. Both
// live as long as the parser. A Parser is single-use and not safe for
// concurrent use; distinct parsers are fully independent.
type Parser struct {
	path string
	save bool
	prec int
	errs *ErrorQueue

	lex        *Lexer
	state      tokenState
	tok1, tok2 Token

	pool Pool
	root *Block
}

// Parse reads r to end-of-input and parses it into a tree. A structural
// error aborts immediately and yields no partial tree; value-level
// diagnostics accumulate in the error queue and do not fail the parse.
func Parse(r io.Reader, opts ...Option) (*Parser, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return ParseBytes(input, opts...)
}

// ParseFile parses the file at path.
func ParseFile(path string, opts ...Option) (*Parser, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ParseBytes(input, append([]Option{WithFile(path)}, opts...)...)
}

// ParseBytes parses an in-memory script.
func ParseBytes(input []byte, opts ...Option) (*Parser, error) {
	p := &Parser{
		path: "<input>",
		prec: DefaultPrecision,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.errs == nil {
		p.errs = &ErrorQueue{}
	}
	p.lex = NewLexer(input, p.path)

	root, err := p.parseBlock(true, p.save)
	if err != nil {
		return nil, err
	}
	p.root = root
	return p, nil
}

// Root returns the parsed file's root block.
func (p *Parser) Root() *Block { return p.root }

// Errors returns the queue of recoverable diagnostics.
func (p *Parser) Errors() *ErrorQueue { return p.errs }

func (p *Parser) Path() string { return p.path }

// next returns the next significant token, replaying buffered lookahead
// tokens first. Comments are skipped transparently. End-of-input is fatal
// unless eofOK, which holds only while parsing the true file root.
func (p *Parser) next(eofOK bool) (Token, error) {
	for {
		var t Token
		switch p.state {
		case stateNormal:
			t = p.lex.NextToken()
		case stateReplay1:
			t = p.tok1
			p.state = stateReplay2
		case stateReplay2:
			t = p.tok2
			p.state = stateNormal
		}

		switch t.Type {
		case TokenEOF:
			if !eofOK {
				return t, p.errorf("unexpected end of input")
			}
			return t, nil
		case TokenFail:
			return t, p.errorf("unrecognized token")
		case TokenComment:
			continue
		}
		return t, nil
	}
}

func (p *Parser) nextExpected(typ TokenType) (Token, error) {
	t, err := p.next(false)
	if err != nil {
		return t, err
	}
	if t.Type != typ {
		return t, p.errorf("expected %s token but got %s", typ, t.Type)
	}
	return t, nil
}

func (p *Parser) unexpectedToken(t Token) error {
	return p.errorf("unexpected token %s", t.Type)
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Loc: p.lex.Location(), Msg: fmt.Sprintf(format, args...)}
}

// saveAndLookahead buffers the already-fetched t, fetches one more token,
// and arranges for both to replay in order on subsequent next calls. The
// second token is returned for inspection. This is the sole lookahead
// mechanism in the grammar and needs no pushback support from the lexer.
func (p *Parser) saveAndLookahead(t Token) (Token, error) {
	p.tok1 = ownToken(t)
	t2, err := p.next(false)
	if err != nil {
		return t2, err
	}
	p.tok2 = ownToken(t2)
	p.state = stateReplay1
	return t2, nil
}

// ownToken copies a token's transient text so it survives further fetches.
func ownToken(t Token) Token {
	return Token{Type: t.Type, Text: append([]byte(nil), t.Text...)}
}

func (p *Parser) intern(text []byte) (string, error) {
	s, err := p.pool.Intern(text)
	if err != nil {
		return "", &ParseError{
			Loc: p.lex.Location(),
			Msg: fmt.Sprintf("intern string: %v", err),
			Err: err,
		}
	}
	return s, nil
}

// parseInt32 decodes an INTEGER token; out-of-range values saturate.
func parseInt32(text []byte) int32 {
	v, _ := strconv.ParseInt(string(text), 10, 32)
	return int32(v)
}

func (p *Parser) parseBlock(isRoot, isSave bool) (*Block, error) {
	b := &Block{}

	if isRoot && isSave {
		// skip over the savegame header
		if _, err := p.nextExpected(TokenStr); err != nil {
			return nil, err
		}
	}

	for {
		tok, err := p.next(isRoot)
		if err != nil {
			return nil, err
		}

		if tok.Type == TokenEOF {
			return b, nil
		}
		if tok.Type == TokenClose {
			// closing braces are only bad at the true root; in save-style
			// mode one may terminate the synthetic root block
			if isRoot && !isSave {
				return nil, p.errorf("unmatched closing brace")
			}
			return b, nil
		}

		var key Object
		switch tok.Type {
		case TokenStr:
			s, err := p.intern(tok.Text)
			if err != nil {
				return nil, err
			}
			key = StringObject(s)
		case TokenDate:
			d, err := ParseDate(string(tok.Text), p.lex.Location())
			if err != nil {
				return nil, err
			}
			key = DateObject(d)
		case TokenInteger:
			key = IntegerObject(parseInt32(tok.Text))
		default:
			return nil, p.unexpectedToken(tok)
		}

		if _, err := p.nextExpected(TokenEQ); err != nil {
			return nil, err
		}

		tok, err = p.next(false)
		if err != nil {
			return nil, err
		}

		var val Object
		switch tok.Type {
		case TokenOpen:
			val, err = p.parseBlockOrList()
			if err != nil {
				return nil, err
			}
		case TokenStr, TokenQStr:
			s, err := p.intern(tok.Text)
			if err != nil {
				return nil, err
			}
			val = StringObject(s)
		case TokenDate, TokenQDate:
			// quoted dates appear in savegames; bare ones on either side
			d, err := ParseDate(string(tok.Text), p.lex.Location())
			if err != nil {
				return nil, err
			}
			val = DateObject(d)
		case TokenInteger:
			val = IntegerObject(parseInt32(tok.Text))
		case TokenDecimal:
			val = DecimalObject(ParseDecimal(string(tok.Text), p.prec, p.lex.Location(), p.errs))
		default:
			return nil, p.unexpectedToken(tok)
		}

		b.stmts = append(b.stmts, Statement{key: key, val: val})
	}
}

// parseBlockOrList resolves the ambiguity of an already-consumed opening
// brace, which may introduce either a nested block of statements or a
// flat list of values:
//
//  1. an immediate closing brace is an empty block (an empty block and an
//     empty list are observably interchangeable);
//  2. a second opening brace settles it as a list of blocks, since a
//     block's first token must be a key and can never be a brace;
//  3. otherwise two tokens of lookahead decide: key/value separator means
//     block, anything else means list.
//
// The buffered tokens then replay transparently into whichever
// constructor was chosen.
func (p *Parser) parseBlockOrList() (Object, error) {
	t, err := p.next(false)
	if err != nil {
		return Object{}, err
	}

	if t.Type == TokenClose {
		return BlockObject(&Block{}), nil
	}
	doubleOpen := t.Type == TokenOpen

	t2, err := p.saveAndLookahead(t)
	if err != nil {
		return Object{}, err
	}

	if t2.Type != TokenEQ || doubleOpen {
		l, err := p.parseList()
		if err != nil {
			return Object{}, err
		}
		return ListObject(l), nil
	}

	b, err := p.parseBlock(false, false)
	if err != nil {
		return Object{}, err
	}
	return BlockObject(b), nil
}

// parseList consumes list elements up to the closing brace. Inside a
// list an opening brace always introduces a nested block, so no further
// disambiguation is needed.
func (p *Parser) parseList() (*List, error) {
	l := &List{}
	for {
		t, err := p.next(false)
		if err != nil {
			return nil, err
		}

		switch t.Type {
		case TokenStr, TokenQStr:
			s, err := p.intern(t.Text)
			if err != nil {
				return nil, err
			}
			l.objs = append(l.objs, StringObject(s))
		case TokenInteger:
			l.objs = append(l.objs, IntegerObject(parseInt32(t.Text)))
		case TokenDecimal:
			l.objs = append(l.objs, DecimalObject(ParseDecimal(string(t.Text), p.prec, p.lex.Location(), p.errs)))
		case TokenOpen:
			b, err := p.parseBlock(false, false)
			if err != nil {
				return nil, err
			}
			l.objs = append(l.objs, BlockObject(b))
		case TokenClose:
			return l, nil
		default:
			return nil, p.unexpectedToken(t)
		}
	}
}
