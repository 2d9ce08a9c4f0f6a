package quaternion

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenGroup is the text between a pair of parentheses. Its pos is the
	// position of the open parenthesis.
	tokenGroup
	// tokenTerm is one signed term within a group, e.g. -8.4j.
	tokenTerm
)

var tokennames = [...]string{"None", "EOF", "Group", "Term"}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokennames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokennames[k]
}

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// rune is the position of the last rune read, counting from 1.
	rune   int
	strict bool
	eof    bool
}

func lex(src io.RuneScanner, strict bool) *lexer {
	return &lexer{src: src, strict: strict}
}

// lexAt creates a lexer for text that starts after position pos of some
// larger input, so that positions in tokens and errors refer to the larger
// input.
func lexAt(src io.RuneScanner, pos int, strict bool) *lexer {
	return &lexer{src: src, rune: pos, strict: strict}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// nextGroup scans the next parenthesized group from the input. Everything
// outside a group is skipped. The group ends at the first close parenthesis,
// so groups do not nest, and groups do not span lines. The first time EOF is
// encountered, the result is an EOF token with a nil error; subsequent calls
// return io.EOF.
//
// A group that is still open at a newline or EOF is dropped, and scanning
// continues after the newline. In strict mode, it is a *BracketError
// instead, as are parentheses that do not pair and any rune outside a group
// other than whitespace.
func (l *lexer) nextGroup() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
groups:
	for {
		for {
			r, err := l.readRune()
			if err != nil {
				return l.end(err)
			}
			if r == '(' {
				break
			}
			if !l.strict || unicode.IsSpace(r) {
				continue
			}
			if r == ')' {
				return lexToken{}, &BracketError{Col: l.rune, Right: ")"}
			}
			l.buf.WriteRune(r)
			return lexToken{}, l.error()
		}
		tok := lexToken{kind: tokenGroup, pos: l.rune}
		for {
			r, err := l.readRune()
			if err != nil {
				if errors.Is(err, io.EOF) && l.strict {
					l.eof = true
					return lexToken{}, &BracketError{Col: tok.pos, Left: "("}
				}
				return l.end(err)
			}
			switch r {
			case ')':
				tok.text = l.buf.String()
				return tok, nil
			case '(':
				if l.strict {
					return lexToken{}, &BracketError{Col: l.rune, Left: "(", Right: "("}
				}
			case '\n':
				if l.strict {
					return lexToken{}, &BracketError{Col: tok.pos, Left: "("}
				}
				l.buf.Reset()
				continue groups
			}
			l.buf.WriteRune(r)
		}
	}
}

// nextTerm scans the next term from a group's text. Runes which cannot start
// a term are skipped, or are a *LexError in strict mode if they are not
// whitespace. EOF is handled as in nextGroup.
func (l *lexer) nextTerm() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return l.end(err)
		}
		switch {
		case r == '+', r == '-', r == '.', isdigit(r), isletter(r):
			tok := lexToken{kind: tokenTerm, pos: l.rune}
			l.unreadRune()
			if err := l.scanTerm(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			return tok, nil
		case unicode.IsSpace(r), !l.strict:
			continue
		default:
			l.buf.WriteRune(r)
			return lexToken{}, l.error()
		}
	}
}

// scanTerm scans [+][-]{digit|.}[letter] into the buffer. nextTerm unreads
// the rune that decides term scanning before calling scanTerm, so the term
// always contains at least one rune.
func (l *lexer) scanTerm() error {
	// stage records the last part of the term that was scanned: 0 for
	// nothing, 1 for +, 2 for -, and 3 for magnitude.
	stage := 0
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case r == '+' && stage < 1:
			stage = 1
		case r == '-' && stage < 2:
			stage = 2
		case r == '.', isdigit(r):
			stage = 3
		case isletter(r):
			l.buf.WriteRune(r)
			return nil
		default:
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// end handles an error from the rune source, turning the first EOF into an
// EOF token.
func (l *lexer) end(err error) (lexToken, error) {
	if errors.Is(err, io.EOF) {
		l.eof = true
		return lexToken{kind: tokenEOF, pos: l.rune + 1}, nil
	}
	return lexToken{}, err
}

func isdigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isletter(r rune) bool {
	_, ok := BasisOf(r)
	return ok
}

func (l *lexer) error() error {
	return &LexError{
		Text: l.buf.String(),
		Col:  l.rune,
	}
}

// LexError indicates a rune that is not part of the expression grammar. It
// is only returned when parsing in strict mode. It implements InputError.
type LexError struct {
	// Text is the invalid rune.
	Text string
	// Col is the position of the invalid rune.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}
