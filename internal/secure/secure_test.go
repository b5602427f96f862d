package secure

import "testing"

func TestBytesDestroyZeroes(t *testing.T) {
	b := FromSlice([]byte{1, 2, 3, 4}, nil)
	if b.Len() != 4 {
		t.Fatalf("got len %d, want 4", b.Len())
	}

	data := b.Bytes()
	b.Destroy()

	for i, v := range data {
		if v != 0 {
			t.Errorf("byte %d not zeroed by Destroy: %d", i, v)
		}
	}
	if b.Len() != 0 {
		t.Errorf("destroyed buffer should report len 0, got %d", b.Len())
	}
	if b.Bytes() != nil {
		t.Errorf("destroyed buffer should return nil Bytes()")
	}

	// Idempotent.
	b.Destroy()
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	Wipe(b)
	for i, v := range b {
		if v != 0 {
			t.Errorf("byte %d not wiped: %d", i, v)
		}
	}
}

func TestRandomFieldBytes(t *testing.T) {
	a, err := RandomFieldBytes(32)
	if err != nil {
		t.Fatalf("RandomFieldBytes: %v", err)
	}
	if len(a) != 32 {
		t.Fatalf("got %d bytes, want 32", len(a))
	}

	b, err := RandomFieldBytes(32)
	if err != nil {
		t.Fatalf("RandomFieldBytes: %v", err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("two independent draws of 32 random bytes collided — RNG likely broken")
	}
}
