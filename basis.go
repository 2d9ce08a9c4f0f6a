package quaternion

import "strconv"

// Basis is one of the four basis elements of the quaternions. It is used as
// an index into a Quaternion.
type Basis int8

const (
	// Real is the real unit 1.
	Real Basis = iota
	// I, J, and K are the imaginary units.
	I
	J
	K

	// NumBasis is the number of basis elements.
	NumBasis = 4
)

// BasisLetters contains the letters naming the imaginary units, in the order
// I, J, K. Both the parser and the formatter use these to map between bases
// and text; the real unit has no letter.
const BasisLetters = "ijk"

var basisnames = [NumBasis]string{"r", "i", "j", "k"}

func (b Basis) String() string {
	if b < 0 || b >= NumBasis {
		return "Basis(" + strconv.Itoa(int(b)) + ")"
	}
	return basisnames[b]
}

// Letter returns the suffix that marks a term of this basis in an expression.
// It is the empty string for Real.
func (b Basis) Letter() string {
	if b == Real {
		return ""
	}
	return b.String()
}

// BasisOf returns the basis named by an imaginary unit letter. The second
// result is false if r is not one of BasisLetters.
func BasisOf(r rune) (Basis, bool) {
	switch r {
	case 'i':
		return I, true
	case 'j':
		return J, true
	case 'k':
		return K, true
	default:
		return Real, false
	}
}

// SignedBasis is the product of two basis elements: a sign of +1 or -1 and
// the resulting basis.
type SignedBasis struct {
	Sign  int8
	Basis Basis
}

func (s SignedBasis) String() string {
	if s.Sign < 0 {
		return "-" + s.Basis.String()
	}
	return "+" + s.Basis.String()
}

// basistable[a][b] is a·b. Rows and columns are in order r, i, j, k.
var basistable = [NumBasis][NumBasis]SignedBasis{
	Real: {Real: {+1, Real}, I: {+1, I}, J: {+1, J}, K: {+1, K}},
	I:    {Real: {+1, I}, I: {-1, Real}, J: {+1, K}, K: {-1, J}},
	J:    {Real: {+1, J}, I: {-1, K}, J: {-1, Real}, K: {+1, I}},
	K:    {Real: {+1, K}, I: {+1, J}, J: {-1, I}, K: {-1, Real}},
}

// MulBasis returns the product a·b of two basis elements. The order matters:
// i·j = k but j·i = -k. Panics if either argument is not a valid Basis.
func MulBasis(a, b Basis) SignedBasis {
	if a < 0 || a >= NumBasis || b < 0 || b >= NumBasis {
		panic("quaternion: invalid basis " + a.String() + "·" + b.String())
	}
	return basistable[a][b]
}
