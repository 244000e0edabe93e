package generator

import "github.com/dmitrijs2005/gophpass/internal/common"

const (
	// DefaultLength is the password length used when none is given.
	DefaultLength uint8 = 16
	// DefaultCounter is the counter used when none is given.
	DefaultCounter uint64 = 1
)

// Profile describes one derivation request. It never holds the secret.
type Profile struct {
	Site    string
	Login   string
	Length  uint8
	Counter uint64
	Policy  Policy
}

// NewProfile returns a Profile for site and login with default length,
// counter and policy.
func NewProfile(site, login string) Profile {
	return Profile{
		Site:    site,
		Login:   login,
		Length:  DefaultLength,
		Counter: DefaultCounter,
		Policy:  DefaultPolicy,
	}
}

// Validate checks the request contract without doing any KDF work.
func (p Profile) Validate() error {
	if p.Length < MinLength {
		return common.ErrLengthTooShort
	}
	if p.Policy.Count() == 0 {
		return common.ErrNoCharacterClasses
	}
	return nil
}

// Generate derives the password for p from secret.
//
// Invalid profiles are rejected before the KDF runs. On error the returned
// string is always empty.
func Generate(p Profile, secret []byte) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	e := DeriveEntropy(p.Site, p.Login, p.Counter, secret)
	return DerivePassword(e, p.Policy, p.Length)
}
