package sharing

import (
	"math/big"

	"github.com/halborn/keyshard/internal/fieldmath"
	"github.com/halborn/keyshard/internal/kerrors"
)

// Interpolate computes Y at X=atX via the standard Lagrange formula
// over the field with modulus P (fieldmath.P):
//
//	Y = Sum_j y_j * Product_{k!=j} ((atX - x_k) * (x_j - x_k)^-1) mod P
//
// Requires at least 2 points with non-negative X and Y; callers
// guarantee all X values are distinct — a duplicate X surfaces as a
// zero-denominator Inverse failure.
func Interpolate(points []Point, atX int) (*big.Int, error) {
	if len(points) < 2 {
		return nil, &kerrors.ValueError{Field: "sharing.Interpolate.points", Value: len(points), Why: "at least 2 points required"}
	}
	for _, p := range points {
		if p.X < 0 {
			return nil, &kerrors.ValueError{Field: "sharing.Interpolate.points[].X", Value: p.X, Why: "X must be non-negative"}
		}
		if !fieldmath.InRange(p.Y) {
			return nil, &kerrors.ValueError{Field: "sharing.Interpolate.points[].Y", Value: fieldmath.String(p.Y), Why: "Y must be in [0, P)"}
		}
	}

	atXBig := big.NewInt(int64(atX))
	sum := big.NewInt(0)

	for j, pj := range points {
		numerator := big.NewInt(1)
		denominator := big.NewInt(1)

		for k, pk := range points {
			if k == j {
				continue
			}
			xk := big.NewInt(int64(pk.X))
			xj := big.NewInt(int64(pj.X))

			numerator = fieldmath.Mul(numerator, fieldmath.Sub(atXBig, xk))
			denominator = fieldmath.Mul(denominator, fieldmath.Sub(xj, xk))
		}

		inv, err := fieldmath.Inverse(denominator)
		if err != nil {
			return nil, err
		}

		term := fieldmath.Mul(pj.Y, fieldmath.Mul(numerator, inv))
		sum = fieldmath.Add(sum, term)
	}

	return sum, nil
}
