package mnemonic

import (
	"testing"

	"github.com/halborn/keyshard/internal/wordlists"
)

func mustRegistry(t *testing.T) *wordlists.Registry {
	t.Helper()
	reg, err := wordlists.Load(nil)
	if err != nil {
		t.Fatalf("wordlists.Load: %v", err)
	}
	return reg
}

func TestGenerateRandomHasValidChecksum(t *testing.T) {
	m, err := GenerateRandom()
	if err != nil {
		t.Fatalf("GenerateRandom: %v", err)
	}
	if m.Checksum() != checksumByte(m.Seed()) {
		t.Fatal("generated mnemonic checksum does not match its seed")
	}
}

func TestFromBytesComputesChecksumFor32Bytes(t *testing.T) {
	seed := make([]byte, 32)
	seed[0] = 0x01
	m, err := FromBytes(seed)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if m.Checksum() != checksumByte(seed) {
		t.Fatal("checksum mismatch")
	}
}

func TestFromBytesVerifiesChecksumFor33Bytes(t *testing.T) {
	seed := make([]byte, 32)
	seed[0] = 0x01
	good := append(append([]byte{}, seed...), checksumByte(seed))
	if _, err := FromBytes(good); err != nil {
		t.Fatalf("FromBytes(good): %v", err)
	}

	bad := append(append([]byte{}, seed...), checksumByte(seed)^0xFF)
	if _, err := FromBytes(bad); err == nil {
		t.Fatal("expected ChecksumError for corrupted checksum byte")
	}
}

func TestFromBytesRejectsBadLength(t *testing.T) {
	if _, err := FromBytes(make([]byte, 10)); err == nil {
		t.Fatal("expected TypeError for invalid length")
	}
}

func TestPhraseRoundTrip(t *testing.T) {
	reg := mustRegistry(t)
	seed := make([]byte, 32)
	seed[5] = 0x42
	m, err := FromBytes(seed)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}

	phrase, err := m.Phrase(wordlists.English, reg)
	if err != nil {
		t.Fatalf("Phrase: %v", err)
	}

	recovered, err := FromPhrase(phrase, wordlists.English, reg)
	if err != nil {
		t.Fatalf("FromPhrase: %v", err)
	}
	if string(recovered.Seed()) != string(m.Seed()) {
		t.Fatal("round-tripped seed does not match")
	}
	if recovered.Checksum() != m.Checksum() {
		t.Fatal("round-tripped checksum does not match")
	}
}

func TestSetWordRecomputesChecksumExceptOnLastPosition(t *testing.T) {
	reg := mustRegistry(t)
	seed := make([]byte, 32)
	m, err := FromBytes(seed)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}

	before := m.Checksum()

	replacement, err := reg.WordAt(wordlists.English, 100)
	if err != nil {
		t.Fatalf("WordAt: %v", err)
	}
	if err := m.SetWord(0, replacement, wordlists.English, reg); err != nil {
		t.Fatalf("SetWord: %v", err)
	}

	if m.Checksum() != checksumByte(m.Seed()) {
		t.Fatal("checksum was not recomputed after editing a non-last word")
	}
	_ = before

	last, err := reg.WordAt(wordlists.English, 5)
	if err != nil {
		t.Fatalf("WordAt: %v", err)
	}
	if err := m.SetWord(23, last, wordlists.English, reg); err != nil {
		t.Fatalf("SetWord: %v", err)
	}
	if m.Checksum() != 5 {
		t.Fatalf("checksum after editing the last word = %d, want the word's low 8 bits (5)", m.Checksum())
	}
}

func TestSetWordNoOpWhenWordUnchanged(t *testing.T) {
	reg := mustRegistry(t)
	seed := make([]byte, 32)
	seed[10] = 0x09
	m, err := FromBytes(seed)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}

	before := m.Bytes()
	word, err := m.WordAt(3, wordlists.English, reg)
	if err != nil {
		t.Fatalf("WordAt: %v", err)
	}
	if err := m.SetWord(3, word, wordlists.English, reg); err != nil {
		t.Fatalf("SetWord: %v", err)
	}

	if string(m.Bytes()) != string(before) {
		t.Fatal("setting a word to its existing value changed the mnemonic")
	}
}

func TestValidatePhraseDetectsBadChecksum(t *testing.T) {
	reg := mustRegistry(t)
	seed := make([]byte, 32)
	m, err := FromBytes(seed)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	phrase, err := m.Phrase(wordlists.English, reg)
	if err != nil {
		t.Fatalf("Phrase: %v", err)
	}

	if !ValidatePhrase(phrase, wordlists.English, reg) {
		t.Fatal("expected valid phrase to validate")
	}

	other, err := reg.WordAt(wordlists.English, 999)
	if err != nil {
		t.Fatalf("WordAt: %v", err)
	}
	phrase[0] = other
	if ValidatePhrase(phrase, wordlists.English, reg) {
		t.Fatal("expected corrupted phrase to fail validation")
	}
}
