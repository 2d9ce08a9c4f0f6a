package quaternion

import (
	"errors"
	"io"
	"strings"
)

// ErrEmptyProduct is returned when asked for the product of no quaternions.
// There is no implicit identity factor.
var ErrEmptyProduct = errors.New("quaternion: product of no quaternions")

// Mul returns the Hamilton product x·y. Quaternion multiplication does not
// commute, so in general Mul(x, y) != Mul(y, x).
func Mul(x, y Quaternion) Quaternion {
	var r Quaternion
	for p := Real; p < NumBasis; p++ {
		for n := Real; n < NumBasis; n++ {
			s := MulBasis(p, n)
			r[s.Basis] += float64(s.Sign) * x[p] * y[n]
		}
	}
	return r
}

// Product multiplies qs in order, ((q1·q2)·q3)·…. Returns ErrEmptyProduct if
// qs is empty.
func Product(qs ...Quaternion) (Quaternion, error) {
	if len(qs) == 0 {
		return Quaternion{}, ErrEmptyProduct
	}
	r := qs[0]
	for _, q := range qs[1:] {
		r = Mul(r, q)
	}
	return r, nil
}

// Eval is a shortcut to parse an expression and return the product of its
// groups.
func Eval(src io.RuneScanner, opts ...ParseOption) (Quaternion, error) {
	qs, err := Parse(src, opts...)
	if err != nil {
		return Quaternion{}, err
	}
	return Product(qs...)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (Quaternion, error) {
	return Eval(strings.NewReader(src), opts...)
}
