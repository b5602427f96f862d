package sharing

import (
	"math/big"
	"testing"

	"github.com/halborn/keyshard/internal/fieldmath"
)

func TestPolynomialEvaluateConstant(t *testing.T) {
	p := NewPolynomial([]*big.Int{big.NewInt(42)})
	for _, x := range []int{0, 1, 5, 100} {
		got := p.Evaluate(x)
		if got.Cmp(big.NewInt(42)) != 0 {
			t.Fatalf("Evaluate(%d) = %v, want 42", x, got)
		}
	}
}

func TestPolynomialEvaluateLinear(t *testing.T) {
	// p(x) = 3 + 2x
	p := NewPolynomial([]*big.Int{big.NewInt(3), big.NewInt(2)})
	got := p.Evaluate(5)
	want := big.NewInt(13)
	if got.Cmp(want) != 0 {
		t.Fatalf("Evaluate(5) = %v, want %v", got, want)
	}
}

func TestPolynomialEvaluateWrapsModPrime(t *testing.T) {
	nearTop := new(big.Int).Sub(fieldmath.P, big.NewInt(1))
	p := NewPolynomial([]*big.Int{nearTop, big.NewInt(2)})
	got := p.Evaluate(1)
	want := new(big.Int).Mod(new(big.Int).Add(nearTop, big.NewInt(2)), fieldmath.P)
	if got.Cmp(want) != 0 {
		t.Fatalf("Evaluate(1) = %v, want %v", got, want)
	}
}
