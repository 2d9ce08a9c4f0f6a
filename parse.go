package quaternion

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Expr  = { junk | Group }
// Group = '(' { junk | Term } ')'
// Term  = [ '+' ] [ '-' ] { digit | '.' } [ 'i' | 'j' | 'k' ]
//
// junk is any rune that does not start a group or a term. It is skipped
// unless parsing in strict mode. A term with no letter is the real part. In
// a term with a letter, a magnitude that does not end in a digit has an
// implicit trailing 1: i is 1i, -j is -1j, .k is 0.1k, and 2.i is 2.1i.
// Quaternion.String produces only terms this grammar accepts.

// Parse parses an expression into one quaternion per parenthesized group, in
// order. A group must close on the line where it opens. Input containing no
// complete group parses to no quaternions without error. Components not
// mentioned in a group are zero. By default, when a group has several terms
// of the same basis, the last one wins; see OnDuplicate.
//
// If any term has an invalid coefficient, the error is a *NumberError and no
// quaternions are returned. The given options are applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) ([]Quaternion, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	scan := lex(src, p.strict)
	var qs []Quaternion
	for {
		tok, err := scan.nextGroup()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenEOF:
			return qs, nil
		case tokenGroup:
			q, err := parsegroup(tok, &p)
			if err != nil {
				return nil, err
			}
			qs = append(qs, q)
		default:
			panic("quaternion: unexpected token: " + tok.String())
		}
	}
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string, opts ...ParseOption) ([]Quaternion, error) {
	return Parse(strings.NewReader(src), opts...)
}

// parsegroup assembles the quaternion for a single group token.
func parsegroup(g lexToken, p *parsectx) (Quaternion, error) {
	scan := lexAt(strings.NewReader(g.text), g.pos, p.strict)
	var q Quaternion
	for {
		tok, err := scan.nextTerm()
		if err != nil {
			return Quaternion{}, err
		}
		switch tok.kind {
		case tokenEOF:
			return q, nil
		case tokenTerm:
			b, v, err := coefficient(tok)
			if err != nil {
				return Quaternion{}, err
			}
			switch p.dup {
			case LastWins:
				q[b] = v
			case Sum:
				q[b] += v
			default:
				panic("quaternion: invalid duplicate policy " + p.dup.String())
			}
		default:
			panic("quaternion: unexpected token: " + tok.String())
		}
	}
}

// coefficient resolves the basis and value of a term.
func coefficient(tok lexToken) (Basis, float64, error) {
	s := tok.text
	b := Real
	if n := len(s); n > 0 {
		if l, ok := BasisOf(rune(s[n-1])); ok {
			b = l
			s = s[:n-1]
		}
	}
	s = strings.TrimPrefix(s, "+")
	if b != Real && (s == "" || !isdigit(rune(s[len(s)-1]))) {
		// The magnitude of a lettered term ends in an implicit 1, so that
		// -j is -1j and 2.j is 2.1j.
		s += "1"
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Magnitudes too large for float64 become infinite rather than
		// failing; there is no syntax problem with them.
		if errors.Is(err, strconv.ErrRange) {
			return b, v, nil
		}
		return b, 0, &NumberError{Col: tok.pos, Term: tok.text, Err: err}
	}
	return b, v, nil
}
