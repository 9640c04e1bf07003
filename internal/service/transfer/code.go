package transfer

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// unambiguous upper-case alphabet: no 0/O, 1/I/L
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// RandomCodes generates codes from crypto/rand.
type RandomCodes struct {
	length int
}

// NewRandomCodes returns a generator of codes with the given length.
func NewRandomCodes(length int) *RandomCodes {
	if length <= 0 {
		length = 6
	}
	return &RandomCodes{length: length}
}

// Generate returns a fresh random code.
func (g *RandomCodes) Generate() (string, error) {
	max := big.NewInt(int64(len(codeAlphabet)))
	buf := make([]byte, g.length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf), nil
}
