package quaternion

import (
	"strconv"
	"strings"
)

// fmtorder is the order in which components appear in canonical form.
var fmtorder = [NumBasis]Basis{I, J, K, Real}

// String formats q in canonical form, the form that Parse reads back to q.
// Components appear in the order i, j, k, r, and zero components are left
// out. A coefficient of ±1 is written as only its sign and letter, except
// for the real part. The zero quaternion is "0".
//
// Numbers are written in plain decimal notation with the fewest digits that
// round-trip. Infinite and NaN components are written as strconv does and
// do not round-trip.
func (q Quaternion) String() string {
	var b strings.Builder
	for _, t := range fmtorder {
		v := q[t]
		if v == 0 {
			continue
		}
		s := term(v, t)
		if b.Len() > 0 && s[0] != '-' && s[0] != '+' {
			b.WriteByte('+')
		}
		b.WriteString(s)
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// Format is the same as q.String.
func Format(q Quaternion) string {
	return q.String()
}

// term formats a single nonzero term.
func term(v float64, t Basis) string {
	var s string
	switch v {
	case 1:
		s = t.Letter()
	case -1:
		s = "-" + t.Letter()
	default:
		return strconv.FormatFloat(v, 'f', -1, 64) + t.Letter()
	}
	if s == "" || s == "-" {
		// Only the real part can get here.
		s += "1"
	}
	return s
}
