package sharing

import (
	"math/big"

	"github.com/halborn/keyshard/internal/config"
	"github.com/halborn/keyshard/internal/kerrors"
	"github.com/halborn/keyshard/internal/wordlists"
)

const sharePhraseBits = config.SharePhraseWords * config.WordBits // 297

// EncodeWords renders the share as 27 BIP-39 words under lang. Appends
// the third SHA-256 byte as an integrity byte, shifts the resulting
// 304-bit value right by 7 bits to land on a 297-bit boundary, and
// slices that into 27 MSB-first 11-bit indices.
func (s Share) EncodeWords(lang wordlists.Language, reg *wordlists.Registry) ([config.SharePhraseWords]string, error) {
	var out [config.SharePhraseWords]string

	raw, err := s.Encode()
	if err != nil {
		return out, err
	}

	yBytes := raw[0:32]
	seedChecksum := raw[32]
	metaCipher := uint16(raw[33])<<8 | uint16(raw[34])
	checksum := [2]byte{raw[35], raw[36]}
	metaPlain := metaCipher ^ uint16(checksum[0])<<8 ^ uint16(checksum[1])
	extra := thirdHashByte(yBytes, seedChecksum, metaPlain)

	full := new(big.Int).SetBytes(append(append([]byte{}, raw...), extra))
	shifted := new(big.Int).Rsh(full, 7)

	for i := config.SharePhraseWords - 1; i >= 0; i-- {
		idx := new(big.Int).And(shifted, big.NewInt((1<<config.WordBits)-1))
		word, err := reg.WordAt(lang, int(idx.Int64()))
		if err != nil {
			return out, err
		}
		out[i] = word
		shifted.Rsh(shifted, config.WordBits)
	}
	return out, nil
}

// DecodeWords parses a 27-word phrase back into a Share. The 7 low
// bits discarded by EncodeWords's right shift are not reconstructible
// and are not required for acceptance; only the embedded 16-bit
// share_checksum (verified inside DecodeShare) gates validity.
func DecodeWords(words [config.SharePhraseWords]string, lang wordlists.Language, reg *wordlists.Registry) (Share, error) {
	v := big.NewInt(0)
	for _, word := range words {
		idx, err := reg.IndexOf(lang, word)
		if err != nil {
			return Share{}, err
		}
		v.Lsh(v, config.WordBits)
		v.Or(v, big.NewInt(int64(idx)))
	}

	if v.BitLen() > sharePhraseBits {
		return Share{}, &kerrors.ValueError{Field: "sharing.DecodeWords.words", Value: v.BitLen(), Why: "decoded value exceeds 297 bits"}
	}

	shifted := new(big.Int).Lsh(v, 7)
	full := make([]byte, 38)
	shifted.FillBytes(full)

	return DecodeShare(full[:config.ShareBytes])
}
