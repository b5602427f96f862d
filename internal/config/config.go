// Package config centralizes the compile-time constants shared across
// the field-math, sharing, and mnemonic packages. keyshard takes no
// environment variables, config files, or CLI flags — these values are
// the closed, documented parameters of the scheme itself.
package config

// CurrentVersion is the share format version emitted by this release of
// the Splitter. Future format revisions would increment this and teach
// the Recoverer to branch on it.
const CurrentVersion = 0

// Share metadata bit widths (version(5) || threshold_enc(4) || x_enc(7)).
const (
	VersionBits   = 5
	ThresholdBits = 4
	XBits         = 7

	MaxVersion = (1 << VersionBits) - 1
)

// Anchor X-coordinates: X=0 carries the secret key, X=1 carries its
// hash. Real shares occupy X in [MinShareX, MaxShareX]. x_enc = X-2 must
// fit in XBits (7) bits, which caps MaxShareX at MinShareX + 2^XBits - 1.
const (
	KeyAnchorX  = 0
	HashAnchorX = 1
	MinShareX   = 2
	MaxShareX   = MinShareX + (1 << XBits) - 1 // 129
)

// Threshold bounds, per the (k, n) scheme: 2 <= k <= 17, k <= n <= MaxShares.
// MaxShares is capped to MaxShareX-MinShareX+1 distinct share X-coordinates
// so every sharecount CreateShares accepts is representable in x_enc's 7
// bits without overflowing into the adjacent threshold field.
const (
	MinThreshold = 2
	MaxThreshold = 17
	MaxShares    = MaxShareX - MinShareX + 1 // 128
)

// FieldPrimeDecimal is P = 2^256 - 2^32 - 977, the secp256k1 field
// prime, expressed in base 10 for big.Int.SetString. Chosen because it
// is the smallest prime strictly greater than any 256-bit key, making
// the key-to-field-element map injective and uniform.
const FieldPrimeDecimal = "115792089237316195423570985008687907853269984665640564039457584007908834671663"

// SeedBytes is the length of a BIP-39 256-bit seed.
const SeedBytes = 32

// MnemonicBytes is SeedBytes plus the 1-byte checksum.
const MnemonicBytes = SeedBytes + 1

// MnemonicWords is the number of words in a 24-word mnemonic phrase.
const MnemonicWords = 24

// ShareBytes is the 37-byte (296-bit) packed share layout.
const ShareBytes = 37

// SharePhraseWords is the 27-word rendering of a share: 297 bits, the
// 296 share bits plus one extra bit (the top bit of the third share-hash
// byte).
const SharePhraseWords = 27

// WordBits is the bit width of a single BIP-39 word index.
const WordBits = 11

// WordlistSize is the fixed size of every BIP-39 word list.
const WordlistSize = 2048
