package sharing

import (
	"crypto/sha256"

	"github.com/halborn/keyshard/internal/config"
	"github.com/halborn/keyshard/internal/kerrors"
	"github.com/halborn/keyshard/internal/mnemonic"
	"github.com/halborn/keyshard/internal/secure"
)

// Recoverer reconstructs a Mnemonic from a threshold-sized group of
// Shares, self-verifying the result against the hash anchor before
// returning it.
type Recoverer struct{}

// RecoverMnemonic validates, interpolates, and self-verifies shares
// into the original Mnemonic.
func (Recoverer) RecoverMnemonic(shares []Share) (*mnemonic.Mnemonic, error) {
	if len(shares) == 0 {
		return nil, &kerrors.ThresholdError{Required: config.MinThreshold, Actual: 0}
	}
	required := shares[0].Threshold
	if len(shares) < required {
		return nil, &kerrors.ThresholdError{Required: required, Actual: len(shares)}
	}

	seedChecksum := shares[0].SeedChecksum
	for _, s := range shares[1:] {
		if s.SeedChecksum != seedChecksum {
			return nil, &kerrors.ChecksumError{
				Kind:     kerrors.ShareGroup,
				Expected: hexBytes([]byte{seedChecksum}),
				Actual:   hexBytes([]byte{s.SeedChecksum}),
			}
		}
	}

	points := make([]Point, len(shares))
	for i, s := range shares {
		points[i] = s.Point
	}

	keyInt, err := Interpolate(points, config.KeyAnchorX)
	if err != nil {
		return nil, err
	}
	expectedHashInt, err := Interpolate(points, config.HashAnchorX)
	if err != nil {
		return nil, err
	}

	keyBuf := secure.New(config.SeedBytes, nil)
	defer keyBuf.Destroy()
	keyInt.FillBytes(keyBuf.Bytes())
	actualHash := sha256.Sum256(keyBuf.Bytes())

	expectedHashBuf := secure.New(config.SeedBytes, nil)
	defer expectedHashBuf.Destroy()
	expectedHashInt.FillBytes(expectedHashBuf.Bytes())

	if string(expectedHashBuf.Bytes()) != string(actualHash[:]) {
		return nil, &kerrors.ChecksumError{
			Kind:     kerrors.KeyValue,
			Expected: hexBytes(expectedHashBuf.Bytes()),
			Actual:   hexBytes(actualHash[:]),
		}
	}

	// mnemonic.FromBytes copies the seed into its own big.Int storage, so
	// seedWithChecksum, the one unlocked plaintext copy made here, is
	// wiped as soon as the call returns (before keyBuf is destroyed).
	seedWithChecksum := make([]byte, 0, config.MnemonicBytes)
	seedWithChecksum = append(seedWithChecksum, keyBuf.Bytes()...)
	seedWithChecksum = append(seedWithChecksum, actualHash[0])
	defer secure.Wipe(seedWithChecksum)
	return mnemonic.FromBytes(seedWithChecksum)
}
