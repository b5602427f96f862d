package sharing

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/halborn/keyshard/internal/config"
	"github.com/halborn/keyshard/internal/fieldmath"
	"github.com/halborn/keyshard/internal/kerrors"
	"github.com/halborn/keyshard/internal/mnemonic"
	"github.com/halborn/keyshard/internal/secure"
)

// Splitter builds a k-of-n group of Shares from a Mnemonic, anchored by
// the key itself (X=0) and the key's SHA-256 hash (X=1).
type Splitter struct{}

// CreateShares builds sharecount Shares requiring threshold of them to
// recover, anchored to m. threshold must be in [MinThreshold,MaxThreshold];
// sharecount must be in [threshold,MaxShares].
func (Splitter) CreateShares(threshold, sharecount int, m *mnemonic.Mnemonic) ([]Share, error) {
	if threshold < config.MinThreshold || threshold > config.MaxThreshold {
		return nil, &kerrors.ValueError{
			Field: "Splitter.CreateShares.threshold", Value: threshold,
			Why: fmt.Sprintf("must be in [%d,%d]", config.MinThreshold, config.MaxThreshold),
		}
	}
	if sharecount < threshold || sharecount > config.MaxShares {
		return nil, &kerrors.ValueError{
			Field: "Splitter.CreateShares.sharecount", Value: sharecount,
			Why: fmt.Sprintf("must be in [threshold,%d]", config.MaxShares),
		}
	}

	key := m.SeedInt()
	anchorA := Point{X: config.KeyAnchorX, Y: key}

	keyBuf := secure.New(config.SeedBytes, nil)
	defer keyBuf.Destroy()
	key.FillBytes(keyBuf.Bytes())
	hashSum := sha256.Sum256(keyBuf.Bytes())
	hashInt := new(big.Int).SetBytes(hashSum[:])
	anchorB := Point{X: config.HashAnchorX, Y: hashInt}

	points := make([]Point, 0, sharecount+2)
	points = append(points, anchorA, anchorB)

	randomCount := threshold - 2
	for i := 0; i < randomCount; i++ {
		y, err := randomFieldValue()
		if err != nil {
			return nil, err
		}
		points = append(points, Point{X: config.MinShareX + i, Y: y})
	}

	calculatedCount := sharecount - randomCount
	for i := 0; i < calculatedCount; i++ {
		x := threshold + i
		y, err := Interpolate(points[:threshold], x)
		if err != nil {
			return nil, err
		}
		points = append(points, Point{X: x, Y: y})
	}

	shares := make([]Share, 0, sharecount)
	for _, p := range points[2:] {
		shares = append(shares, Share{
			Point:        p,
			Threshold:    threshold,
			SeedChecksum: m.Checksum(),
			Version:      config.CurrentVersion,
		})
	}
	return shares, nil
}

// randomFieldValue draws a 32-byte candidate into a locked buffer and
// rejection-samples until it lands in (0, P).
func randomFieldValue() (*big.Int, error) {
	for {
		buf, err := secure.RandomBytes(config.SeedBytes, nil)
		if err != nil {
			return nil, err
		}
		y := new(big.Int).SetBytes(buf.Bytes())
		buf.Destroy()
		if y.Sign() != 0 && fieldmath.InRange(y) {
			return y, nil
		}
	}
}
