package fieldmath

import (
	"math/big"
	"testing"
)

func TestAddSubRoundTrip(t *testing.T) {
	a := big.NewInt(12345)
	b := big.NewInt(98765)

	sum := Add(a, b)
	back := Sub(sum, b)

	if back.Cmp(a) != 0 {
		t.Errorf("Sub(Add(a,b),b) = %v, want %v", back, a)
	}
}

func TestMulByOne(t *testing.T) {
	a := big.NewInt(424242)
	one := big.NewInt(1)

	if got := Mul(a, one); got.Cmp(a) != 0 {
		t.Errorf("Mul(a,1) = %v, want %v", got, a)
	}
}

func TestInverse(t *testing.T) {
	a := big.NewInt(7)

	inv, err := Inverse(a)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}

	product := Mul(a, inv)
	if product.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("a * a^-1 = %v, want 1", product)
	}
}

func TestInverseZero(t *testing.T) {
	_, err := Inverse(big.NewInt(0))
	if err == nil {
		t.Fatal("expected error inverting zero")
	}
}

func TestInRange(t *testing.T) {
	if !InRange(big.NewInt(0)) {
		t.Error("0 should be in range")
	}
	if !InRange(new(big.Int).Sub(P, big.NewInt(1))) {
		t.Error("P-1 should be in range")
	}
	if InRange(P) {
		t.Error("P itself should not be in range")
	}
	if InRange(big.NewInt(-1)) {
		t.Error("-1 should not be in range")
	}
}

func TestPrimeValue(t *testing.T) {
	want := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(0))
	want.Sub(want, new(big.Int).Lsh(big.NewInt(1), 32))
	want.Sub(want, big.NewInt(977))

	if P.Cmp(want) != 0 {
		t.Errorf("P = %v, want %v", P, want)
	}
}
