// Package secure holds sensitive byte buffers (seed bytes, key
// integers, random polynomial coefficients) for the minimum time
// needed and guarantees they are zeroed on every exit path. Grounded on
// mrz1836-sigil's internal/crypto/secure.go (SecureBytes + mlock), with
// the mlock platform split kept in mlock_unix.go / mlock_windows.go.
//
// A failed mlock never fails the caller's operation — best-effort
// hardening is reported to telemetry and otherwise ignored.
package secure

import (
	"context"
	"crypto/rand"
	"fmt"
	"runtime"
	"sync"

	"github.com/halborn/keyshard/internal/telemetry"
)

// Bytes wraps a sensitive []byte, best-effort mlocking it and zeroing
// it exactly once on Destroy. Safe for concurrent use.
type Bytes struct {
	mu     sync.Mutex
	data   []byte
	locked bool
}

// New allocates a zeroed Bytes of the given size and attempts to mlock
// it. log is optional; pass nil to discard diagnostics.
func New(size int, log *telemetry.Logger) *Bytes {
	data := make([]byte, size)
	b := &Bytes{data: data}
	b.locked = mlock(data)
	if !b.locked {
		log.Debug(context.Background(), "mlock unavailable for secure buffer")
	}
	runtime.SetFinalizer(b, func(b *Bytes) { b.Destroy() })
	return b
}

// FromSlice copies src into a new secure Bytes, leaving src untouched.
// Callers that own src and no longer need the plaintext copy should
// Wipe(src) themselves afterward.
func FromSlice(src []byte, log *telemetry.Logger) *Bytes {
	b := New(len(src), log)
	copy(b.data, src)
	return b
}

// Bytes returns the underlying slice. The caller must not retain it
// past a call to Destroy.
func (b *Bytes) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// Len reports the buffer length, or 0 if destroyed.
func (b *Bytes) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Destroy zeros and unlocks the buffer. Idempotent.
func (b *Bytes) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.data == nil {
		return
	}
	for i := range b.data {
		b.data[i] = 0
	}
	if b.locked {
		munlock(b.data)
		b.locked = false
	}
	b.data = nil
	runtime.SetFinalizer(b, nil)
}

// Wipe zeros an ad hoc buffer in place (a big.Int workspace, a
// one-shot coefficient slice) that isn't worth wrapping in a Bytes.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// RandomBytes draws n cryptographically random bytes directly into a
// newly mlocked Bytes buffer, so the plaintext is never held unlocked.
// The caller owns the result and must Destroy it.
func RandomBytes(n int, log *telemetry.Logger) (*Bytes, error) {
	b := New(n, log)
	if _, err := rand.Read(b.Bytes()); err != nil {
		b.Destroy()
		return nil, fmt.Errorf("secure: generating random bytes: %w", err)
	}
	return b, nil
}

// RandomFieldBytes returns n cryptographically random bytes as a plain
// slice, copied out of a locked buffer that is destroyed immediately
// after the copy. Prefer RandomBytes directly when the caller can hold
// the result for its full sensitive lifetime instead of copying out.
func RandomFieldBytes(n int) ([]byte, error) {
	b, err := RandomBytes(n, nil)
	if err != nil {
		return nil, err
	}
	defer b.Destroy()

	out := make([]byte, n)
	copy(out, b.Bytes())
	return out, nil
}
