package cryptox

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referencePBKDF2 is a straight single-block PBKDF2 used to cross-check DeriveKey.
func referencePBKDF2(password, salt []byte, iter int) []byte {
	prf := hmac.New(sha256.New, password)
	var block [4]byte
	binary.BigEndian.PutUint32(block[:], 1)
	prf.Write(salt)
	prf.Write(block[:])
	u := prf.Sum(nil)
	out := append([]byte(nil), u...)
	for i := 1; i < iter; i++ {
		prf.Reset()
		prf.Write(u)
		u = prf.Sum(nil)
		for j := range out {
			out[j] ^= u[j]
		}
	}
	return out
}

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("password")
	salt := []byte("example.orgcontact@example.org1")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	require.Len(t, key1, DerivedKeyLength)
	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
}

func TestDeriveKey_MatchesReference(t *testing.T) {
	password := []byte("password")
	salt := []byte("example.orgcontact@example.org1")

	assert.Equal(t, referencePBKDF2(password, salt, PBKDF2Iterations), DeriveKey(password, salt))
}

func TestDeriveKey_DifferentInputs(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveKey(password, []byte("salt-1"))
	key2 := DeriveKey(password, []byte("salt-2"))
	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}

	key3 := DeriveKey([]byte("other-password"), []byte("salt-1"))
	if bytes.Equal(key1, key3) {
		t.Errorf("expected different results for different passwords, got same")
	}
}

func TestDeriveKey_EmptyInputs(t *testing.T) {
	key := DeriveKey(nil, nil)
	assert.Len(t, key, DerivedKeyLength)
}
