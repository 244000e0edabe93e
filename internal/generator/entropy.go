package generator

import (
	"math/big"
	"strconv"

	"github.com/dmitrijs2005/gophpass/internal/cryptox"
)

// deriveKey is a test seam for the KDF.
var deriveKey = cryptox.DeriveKey

// Entropy is a depletable 256-bit randomness source. Every Draw replaces the
// value with the quotient, so an Entropy must serve a single derivation only.
type Entropy struct {
	v *big.Int
}

// NewEntropy reads b as a big-endian unsigned integer.
func NewEntropy(b []byte) *Entropy {
	return &Entropy{v: new(big.Int).SetBytes(b)}
}

// Draw returns the current value modulo n and keeps the quotient.
// n must be positive.
func (e *Entropy) Draw(n int) int {
	if n <= 0 {
		panic("generator: entropy draw with non-positive divisor")
	}
	r := new(big.Int)
	e.v.QuoRem(e.v, big.NewInt(int64(n)), r)
	return int(r.Int64())
}

// Int returns a copy of the remaining value.
func (e *Entropy) Int() *big.Int {
	return new(big.Int).Set(e.v)
}

// Salt builds the KDF salt: site, then login, then counter in lowercase hex
// without prefix or padding.
func Salt(site, login string, counter uint64) []byte {
	salt := make([]byte, 0, len(site)+len(login)+16)
	salt = append(salt, site...)
	salt = append(salt, login...)
	return strconv.AppendUint(salt, counter, 16)
}

// DeriveEntropy stretches secret into a fresh Entropy for one derivation.
// Empty inputs are accepted.
func DeriveEntropy(site, login string, counter uint64, secret []byte) *Entropy {
	return NewEntropy(deriveKey(secret, Salt(site, login, counter)))
}
