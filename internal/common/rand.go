package common

import (
	"crypto/rand"
	"math/big"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// MakeRandBase36String generates a random base36 string of the given length.
// It is used for the short human-facing suffixes of order and message IDs,
// where global uniqueness is not required.
//
// It returns an error if the random number generator fails.
func MakeRandBase36String(length int) (string, error) {
	max := big.NewInt(int64(len(base36Alphabet)))

	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = base36Alphabet[n.Int64()]
	}

	return string(b), nil
}
