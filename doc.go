// Package quaternion parses, multiplies, and formats quaternions written in
// a compact bracketed notation.
//
// An expression is a sequence of groups like "(9+i-j)(k-8.4j)". Each group
// is a quaternion written as a sum of terms, one per basis element, with the
// real part written as a bare number. The value of an expression is the
// Hamilton product of its groups from left to right. Since quaternion
// multiplication does not commute, the order of the groups matters:
// "(i)(j)" is k, but "(j)(i)" is -k.
//
// Quaternion.String writes a quaternion back in the same notation, so that
// parsing the formatted text of any quaternion with finite components gives
// the same quaternion.
//
package quaternion
