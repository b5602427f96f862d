package sharing

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/halborn/keyshard/internal/config"
	"github.com/halborn/keyshard/internal/kerrors"
)

// Share is one immutable point on the splitting polynomial, plus the
// group metadata needed to recombine it with its siblings. Binary
// layout is 37 bytes; see Encode/DecodeShare and EncodeWords/DecodeWords.
type Share struct {
	Point        Point
	Threshold    int
	SeedChecksum byte
	Version      int
}

// metadataPlain packs version(5) || threshold_enc(4) || x_enc(7) into
// a 16-bit value, MSB-first.
func (s Share) metadataPlain() uint16 {
	thresholdEnc := uint16(s.Threshold - config.MinThreshold)
	xEnc := uint16(s.Point.X - config.MinShareX)
	return uint16(s.Version)<<11 | thresholdEnc<<7 | xEnc
}

func shareChecksum(yBytes []byte, seedChecksum byte, metadataPlain uint16) [2]byte {
	h := sha256.New()
	h.Write(yBytes)
	h.Write([]byte{seedChecksum})
	h.Write([]byte{byte(metadataPlain >> 8), byte(metadataPlain)})
	sum := h.Sum(nil)
	return [2]byte{sum[0], sum[1]}
}

func thirdHashByte(yBytes []byte, seedChecksum byte, metadataPlain uint16) byte {
	h := sha256.New()
	h.Write(yBytes)
	h.Write([]byte{seedChecksum})
	h.Write([]byte{byte(metadataPlain >> 8), byte(metadataPlain)})
	sum := h.Sum(nil)
	return sum[2]
}

// Encode serializes the share to its 37-byte wire form: Y(32) ||
// seed_checksum(1) || metadata_cipher(2) || share_checksum(2).
func (s Share) Encode() ([]byte, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	yBytes := make([]byte, config.SeedBytes)
	s.Point.Y.FillBytes(yBytes)

	metaPlain := s.metadataPlain()
	checksum := shareChecksum(yBytes, s.SeedChecksum, metaPlain)
	metaCipher := metaPlain ^ uint16(checksum[0])<<8 ^ uint16(checksum[1])

	out := make([]byte, 0, config.ShareBytes)
	out = append(out, yBytes...)
	out = append(out, s.SeedChecksum)
	out = append(out, byte(metaCipher>>8), byte(metaCipher))
	out = append(out, checksum[0], checksum[1])
	return out, nil
}

func (s Share) validate() error {
	if s.Threshold < config.MinThreshold || s.Threshold > config.MaxThreshold {
		return &kerrors.ValueError{
			Field: "Share.Threshold", Value: s.Threshold,
			Why: fmt.Sprintf("must be in [%d,%d]", config.MinThreshold, config.MaxThreshold),
		}
	}
	if s.Point.X < config.MinShareX || s.Point.X > config.MaxShareX {
		return &kerrors.ValueError{
			Field: "Share.Point.X", Value: s.Point.X,
			Why: fmt.Sprintf("must be in [%d,%d]", config.MinShareX, config.MaxShareX),
		}
	}
	if s.Version < 0 || s.Version > config.MaxVersion {
		return &kerrors.ValueError{
			Field: "Share.Version", Value: s.Version,
			Why: fmt.Sprintf("must be in [0,%d]", config.MaxVersion),
		}
	}
	return nil
}

// DecodeShare parses a 37-byte wire form back into a Share, verifying
// its internal checksum.
func DecodeShare(b []byte) (Share, error) {
	if len(b) != config.ShareBytes {
		return Share{}, &kerrors.TypeError{Field: "sharing.DecodeShare.b", Want: "37 bytes", Got: len(b)}
	}

	yBytes := b[0:32]
	seedChecksum := b[32]
	metaCipher := uint16(b[33])<<8 | uint16(b[34])
	gotChecksum := [2]byte{b[35], b[36]}

	metaPlain := metaCipher ^ uint16(gotChecksum[0])<<8 ^ uint16(gotChecksum[1])

	wantChecksum := shareChecksum(yBytes, seedChecksum, metaPlain)
	if wantChecksum != gotChecksum {
		return Share{}, &kerrors.ChecksumError{
			Kind:     kerrors.ShareKey,
			Expected: hexBytes(wantChecksum[:]),
			Actual:   hexBytes(gotChecksum[:]),
		}
	}

	version := int(metaPlain >> 11)
	thresholdEnc := int((metaPlain >> 7) & 0xF)
	xEnc := int(metaPlain & 0x7F)

	return Share{
		Point:        Point{X: xEnc + config.MinShareX, Y: new(big.Int).SetBytes(yBytes)},
		Threshold:    thresholdEnc + config.MinThreshold,
		SeedChecksum: seedChecksum,
		Version:      version,
	}, nil
}

func hexBytes(b []byte) string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, 0, len(b)*2)
	for _, c := range b {
		out = append(out, hexDigits[c>>4], hexDigits[c&0xF])
	}
	return string(out)
}
