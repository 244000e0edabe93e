// Package generator derives site passwords from a master secret without
// storing any state.
//
// A derivation runs in two steps:
//
//  1. DeriveEntropy stretches the master secret with a salt built from the
//     site, the login and the counter (PBKDF2-HMAC-SHA256, 100 000 rounds)
//     and reads the 32 byte result as a big-endian 256-bit integer.
//  2. DerivePassword consumes that integer by repeated division: each
//     remainder picks a character or an insertion position and the quotient
//     becomes the new entropy value.
//
// The output is bit-exact: the same Profile and secret always give the same
// password. Generate is the entry point combining both steps.
//
// Example:
//
//	p := generator.NewProfile("example.org", "contact@example.org")
//	pass, err := generator.Generate(p, []byte("password"))
//	// pass == "WHLpUL)e00[iHR+w"
package generator
