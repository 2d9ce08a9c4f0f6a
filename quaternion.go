package quaternion

// Quaternion is a quaternion r + i𝐢 + j𝐣 + k𝐤 with float64 components,
// indexed by Basis: q[Real], q[I], q[J], q[K]. Two quaternions are equal,
// under ==, exactly when all four components compare equal. The zero value
// is the zero quaternion.
type Quaternion [NumBasis]float64

// New creates a quaternion from its components.
func New(r, i, j, k float64) Quaternion {
	return Quaternion{Real: r, I: i, J: j, K: k}
}

// One is the multiplicative identity.
var One = Quaternion{Real: 1}

// Get returns the component of q along b.
func (q Quaternion) Get(b Basis) float64 {
	return q[b]
}

// Set returns a copy of q with the component along b replaced by v.
func (q Quaternion) Set(b Basis, v float64) Quaternion {
	q[b] = v
	return q
}

// IsZero reports whether every component of q is zero.
func (q Quaternion) IsZero() bool {
	return q == Quaternion{}
}
