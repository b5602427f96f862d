// Package sharing implements the finite-field Shamir engine (Polynomial,
// Interpolator, Splitter, Recoverer) and the 296-bit share codec on top
// of internal/fieldmath. Grounded on the rememory codebase's
// internal/shamir package for structure and on the sssa-golang big.Int
// Lagrange pattern; the two-anchor scheme anchors the secret itself at
// X=0 and its SHA-256 hash at X=1, so recovery can self-verify without
// a separately distributed checksum.
package sharing

import "math/big"

// Point is a value type: an (X, Y) coordinate on the secret polynomial.
// X is a small non-negative integer; Y is a field element in [0, P).
type Point struct {
	X int
	Y *big.Int
}
