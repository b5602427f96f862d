// Package fieldmath implements modular arithmetic over the secp256k1
// field prime P = 2^256 - 2^32 - 977, used as the modulus for the
// Shamir scheme's finite field. Grounded on the big.Int Shamir pattern
// in other_examples' sssa-golang (Prime-mod add/mul/sub and Fermat
// inverse via big.Int.Exp), generalized into a small set of functions
// over *big.Int.
package fieldmath

import (
	"fmt"
	"math/big"

	"github.com/halborn/keyshard/internal/config"
	"github.com/halborn/keyshard/internal/kerrors"
)

// P is the field modulus, 2^256 - 2^32 - 977.
var P = mustPrime()

func mustPrime() *big.Int {
	p, ok := new(big.Int).SetString(config.FieldPrimeDecimal, 10)
	if !ok {
		panic("fieldmath: invalid prime literal")
	}
	return p
}

// two is reused by Inverse's exponent computation.
var two = big.NewInt(2)

// Add returns (a + b) mod P.
func Add(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), P)
}

// Sub returns (a - b) mod P, always non-negative.
func Sub(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Sub(a, b), P)
}

// Mul returns (a * b) mod P.
func Mul(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), P)
}

// Pow returns (base^exp) mod P.
func Pow(base, exp *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, P)
}

// Inverse returns the modular multiplicative inverse of a mod P,
// computed as a^(P-2) mod P (Fermat's little theorem). Fails with a
// *kerrors.ValueError for a == 0, which never has an inverse; this
// never occurs in practice because Interpolator callers guarantee
// distinct share X-coordinates.
func Inverse(a *big.Int) (*big.Int, error) {
	if a.Sign() == 0 {
		return nil, &kerrors.ValueError{Field: "fieldmath.Inverse.a", Value: 0, Why: "zero has no multiplicative inverse"}
	}
	exp := new(big.Int).Sub(P, two)
	return Pow(a, exp), nil
}

// InRange reports whether 0 <= v < P.
func InRange(v *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(P) < 0
}

// String renders v as a decimal string, used only by error messages —
// never by anything that would write key material to a log.
func String(v *big.Int) string {
	return fmt.Sprintf("%d", v)
}
