package cryptox

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// PBKDF2Iterations is the fixed work factor of the entropy KDF.
	PBKDF2Iterations = 100_000
	// DerivedKeyLength is the KDF output size in bytes (256 bits).
	DerivedKeyLength = 32
)

// DeriveKey stretches password with salt using PBKDF2-HMAC-SHA256.
//
// The result is always DerivedKeyLength bytes and depends only on the inputs:
// the same password and salt give the same key on every call.
//
// Example:
//
//	key := DeriveKey([]byte("password"), []byte("example.orgcontact@example.org1"))
//	fmt.Printf("%x\n", key)
func DeriveKey(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, PBKDF2Iterations, DerivedKeyLength, sha256.New)
}
