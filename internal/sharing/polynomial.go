package sharing

import (
	"math/big"

	"github.com/halborn/keyshard/internal/fieldmath"
)

// Polynomial is an ordered sequence of coefficients c0..c_{t-1}. It is
// owned transiently by the Splitter and never persisted.
type Polynomial struct {
	coefficients []*big.Int
}

// NewPolynomial builds a polynomial from coefficients ordered low to
// high degree (c0 first).
func NewPolynomial(coefficients []*big.Int) *Polynomial {
	return &Polynomial{coefficients: coefficients}
}

// Evaluate returns Sum(c_i * x^i) mod P for a non-negative integer x.
// No special-casing of x == 0: the loop naturally returns c0 in that
// case since the running power starts at 1 (0^0 == 1) and is 0 for
// every i > 0.
func (p *Polynomial) Evaluate(x int) *big.Int {
	result := big.NewInt(0)
	xBig := big.NewInt(int64(x))
	xPow := big.NewInt(1)

	for _, c := range p.coefficients {
		term := fieldmath.Mul(c, xPow)
		result = fieldmath.Add(result, term)
		xPow = fieldmath.Mul(xPow, xBig)
	}

	return result
}
