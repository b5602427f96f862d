// Package mnemonic implements the 24-word BIP-39-style seed phrase:
// a 256-bit seed plus an 8-bit SHA-256 checksum, encoded as 11-bit word
// indices. The word-editing path clears a slot with AND-NOT and installs
// the new index (and, where needed, the recomputed checksum byte) with
// OR, never AND, since OR is the only one of the two that can turn bits
// on.
package mnemonic

import (
	"crypto/sha256"
	"math/big"

	"github.com/halborn/keyshard/internal/config"
	"github.com/halborn/keyshard/internal/kerrors"
	"github.com/halborn/keyshard/internal/secure"
	"github.com/halborn/keyshard/internal/wordlists"
)

const (
	wordMask    = (1 << config.WordBits) - 1
	totalBits   = config.MnemonicBytes * 8 // 264
	lastWordPos = config.MnemonicWords - 1 // 23
)

// Mnemonic is a 33-byte value: 32-byte seed followed by one checksum
// byte (the first byte of SHA256(seed)). SetWord is the only method that
// changes it.
type Mnemonic struct {
	value *big.Int // the 264-bit integer: seed(256) || checksum(8)
}

func checksumByte(seed []byte) byte {
	sum := sha256.Sum256(seed)
	return sum[0]
}

func fromSeedAndChecksum(seed []byte, checksum byte) *Mnemonic {
	v := new(big.Int).SetBytes(seed)
	v.Lsh(v, 8)
	v.Or(v, big.NewInt(int64(checksum)))
	return &Mnemonic{value: v}
}

// GenerateRandom draws 32 bytes from a cryptographic RNG and derives
// the checksum byte.
func GenerateRandom() (*Mnemonic, error) {
	seedBuf, err := secure.RandomBytes(config.SeedBytes, nil)
	if err != nil {
		return nil, err
	}
	defer seedBuf.Destroy()
	return fromSeedAndChecksum(seedBuf.Bytes(), checksumByte(seedBuf.Bytes())), nil
}

// FromBytes accepts either 32 bytes (checksum is computed) or 33 bytes
// (checksum is verified against the embedded byte). Any other length
// fails with a TypeError.
func FromBytes(b []byte) (*Mnemonic, error) {
	switch len(b) {
	case config.SeedBytes:
		return fromSeedAndChecksum(b, checksumByte(b)), nil
	case config.MnemonicBytes:
		seed := b[:config.SeedBytes]
		given := b[config.SeedBytes]
		want := checksumByte(seed)
		if given != want {
			return nil, &kerrors.ChecksumError{
				Kind:     kerrors.MnemonicByte,
				Expected: hexByte(want),
				Actual:   hexByte(given),
			}
		}
		return fromSeedAndChecksum(seed, given), nil
	default:
		return nil, &kerrors.TypeError{Field: "mnemonic.FromBytes.b", Want: "32 or 33 bytes", Got: len(b)}
	}
}

// FromPhrase concatenates the 11-bit index of each of the 24 words
// MSB-first into a 264-bit integer, splits it into seed and checksum,
// and verifies the checksum.
func FromPhrase(words [config.MnemonicWords]string, lang wordlists.Language, reg *wordlists.Registry) (*Mnemonic, error) {
	v := big.NewInt(0)
	for _, word := range words {
		idx, err := reg.IndexOf(lang, word)
		if err != nil {
			return nil, err
		}
		v.Lsh(v, config.WordBits)
		v.Or(v, big.NewInt(int64(idx)))
	}

	seed := seedBytes(v)
	given := byte(new(big.Int).And(v, big.NewInt(0xFF)).Uint64())
	want := checksumByte(seed)
	if given != want {
		return nil, &kerrors.ChecksumError{
			Kind:     kerrors.MnemonicByte,
			Expected: hexByte(want),
			Actual:   hexByte(given),
		}
	}
	return &Mnemonic{value: v}, nil
}

// seedBytes extracts the high 256 bits of v as a 32-byte big-endian slice.
func seedBytes(v *big.Int) []byte {
	seedInt := new(big.Int).Rsh(v, 8)
	out := make([]byte, config.SeedBytes)
	seedInt.FillBytes(out)
	return out
}

// Seed returns the 32-byte seed.
func (m *Mnemonic) Seed() []byte {
	return seedBytes(m.value)
}

// Checksum returns the trailing checksum byte.
func (m *Mnemonic) Checksum() byte {
	return byte(new(big.Int).And(m.value, big.NewInt(0xFF)).Uint64())
}

// Bytes returns the full 33-byte representation: seed || checksum.
func (m *Mnemonic) Bytes() []byte {
	out := make([]byte, config.MnemonicBytes)
	m.value.FillBytes(out)
	return out
}

// SeedInt returns the seed as an integer, for use as the Shamir key.
func (m *Mnemonic) SeedInt() *big.Int {
	return new(big.Int).Rsh(m.value, 8)
}

func wordShift(position int) uint {
	return uint((lastWordPos - position) * config.WordBits)
}

// WordAt resolves the word occupying position (0..23) under lang.
func (m *Mnemonic) WordAt(position int, lang wordlists.Language, reg *wordlists.Registry) (string, error) {
	if position < 0 || position > lastWordPos {
		return "", &kerrors.IndexError{Field: "mnemonic.WordAt.position", Index: position, Min: 0, Max: lastWordPos}
	}
	idx := new(big.Int).Rsh(m.value, wordShift(position))
	idx.And(idx, big.NewInt(wordMask))
	return reg.WordAt(lang, int(idx.Int64()))
}

// Phrase returns all 24 words under lang.
func (m *Mnemonic) Phrase(lang wordlists.Language, reg *wordlists.Registry) ([config.MnemonicWords]string, error) {
	var out [config.MnemonicWords]string
	for position := 0; position < config.MnemonicWords; position++ {
		word, err := m.WordAt(position, lang, reg)
		if err != nil {
			return out, err
		}
		out[position] = word
	}
	return out, nil
}

// SetWord replaces the word at position and, unless position is the
// last word (whose low byte IS the checksum), recomputes the checksum
// over the new seed. The clear step uses AND-NOT then the set step
// uses OR — installing the recomputed checksum with OR onto an
// already-cleared low byte, not AND, which would only ever turn bits
// off.
func (m *Mnemonic) SetWord(position int, newWord string, lang wordlists.Language, reg *wordlists.Registry) error {
	if position < 0 || position > lastWordPos {
		return &kerrors.IndexError{Field: "mnemonic.SetWord.position", Index: position, Min: 0, Max: lastWordPos}
	}
	idx, err := reg.IndexOf(lang, newWord)
	if err != nil {
		return err
	}

	shift := wordShift(position)
	slotMask := new(big.Int).Lsh(big.NewInt(wordMask), shift)
	cleared := new(big.Int).AndNot(m.value, slotMask)
	cleared.Or(cleared, new(big.Int).Lsh(big.NewInt(int64(idx)), shift))

	if position != lastWordPos {
		seed := seedBytes(cleared)
		newChecksum := checksumByte(seed)
		cleared.AndNot(cleared, big.NewInt(0xFF))
		cleared.Or(cleared, big.NewInt(int64(newChecksum)))
	}

	m.value = cleared
	return nil
}

// ValidatePhrase reports whether words is a well-formed 24-word phrase
// under lang: every word resolves and the trailing checksum matches.
func ValidatePhrase(words [config.MnemonicWords]string, lang wordlists.Language, reg *wordlists.Registry) bool {
	_, err := FromPhrase(words, lang, reg)
	return err == nil
}

func hexByte(b byte) string {
	const hexDigits = "0123456789abcdef"
	return string([]byte{hexDigits[b>>4], hexDigits[b&0xF]})
}
