package common

// WipeByteArray overwrites the contents of b with zeros. It is used to drop
// the master secret from memory once a derivation is done.
//
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
