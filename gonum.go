package quaternion

import "gonum.org/v1/gonum/num/quat"

// FromNumber converts a gonum quaternion.
func FromNumber(n quat.Number) Quaternion {
	return Quaternion{Real: n.Real, I: n.Imag, J: n.Jmag, K: n.Kmag}
}

// Number converts q to a gonum quaternion.
func (q Quaternion) Number() quat.Number {
	return quat.Number{Real: q[Real], Imag: q[I], Jmag: q[J], Kmag: q[K]}
}

// Abs returns the norm of q, sqrt(r²+i²+j²+k²).
func Abs(q Quaternion) float64 {
	return quat.Abs(q.Number())
}
