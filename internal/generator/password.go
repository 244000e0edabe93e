package generator

import (
	"slices"

	"github.com/dmitrijs2005/gophpass/internal/common"
)

// MinLength is the smallest password length a policy can always satisfy.
const MinLength = 4

// DerivePassword turns e into a password of exactly length characters.
//
// Free positions are drawn from the joined alphabet of every enabled class,
// then one character per enabled class is drawn and inserted at a position
// also taken from e. The result therefore holds at least one character of
// every enabled class and none of a disabled one.
//
// e is consumed. Contract errors are returned before e is touched.
func DerivePassword(e *Entropy, policy Policy, length uint8) (string, error) {
	if length < MinLength {
		return "", common.ErrLengthTooShort
	}
	classes := policy.Classes()
	if len(classes) == 0 {
		return "", common.ErrNoCharacterClasses
	}

	pool := policy.candidates()
	out := make([]byte, 0, length)
	for i := 0; i < int(length)-len(classes); i++ {
		out = append(out, pool[e.Draw(len(pool))])
	}

	required := make([]byte, 0, len(classes))
	for _, c := range classes {
		a := alphabets[c]
		required = append(required, a[e.Draw(len(a))])
	}

	for _, ch := range required {
		// len(out) is at least 1 here: with MinLength 4 and at most four
		// classes the fill stage never leaves out empty.
		out = slices.Insert(out, e.Draw(len(out)), ch)
	}

	return string(out), nil
}
