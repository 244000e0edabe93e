package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_Toggles(t *testing.T) {
	p := DefaultPolicy
	assert.Equal(t, Policy(0b1111), p)
	assert.Equal(t, Policy(0b1110), p.WithoutLowercase())
	assert.Equal(t, Policy(0b1101), p.WithoutUppercase())
	assert.Equal(t, Policy(0b1011), p.WithoutDigits())
	assert.Equal(t, Policy(0b0111), p.WithoutSymbols())

	// toggling twice restores the class
	assert.Equal(t, p, p.WithoutDigits().WithoutDigits())

	// disabling twice does not
	assert.Equal(t, p.WithoutDigits(), p.Disable(Digits).Disable(Digits))

	assert.Equal(t, p, p.Disable(Symbols).Enable(Symbols))
	assert.Equal(t, p, p.Enable(Symbols))
}

func TestPolicy_Classes(t *testing.T) {
	p := DefaultPolicy.WithoutUppercase()

	assert.Equal(t, []Class{Lowercase, Digits, Symbols}, p.Classes())
	assert.Equal(t, 3, p.Count())
	assert.False(t, p.Enabled(Uppercase))
	assert.False(t, p.Enabled(Class(7)))
	assert.Equal(t, 0, Policy(0xF0).Count())
}

func TestPolicy_CandidatesOrder(t *testing.T) {
	assert.Equal(t, lowercaseChars+uppercaseChars+digitChars+symbolChars, DefaultPolicy.candidates())
	assert.Equal(t, digitChars+symbolChars, DefaultPolicy.WithoutLowercase().WithoutUppercase().candidates())
	assert.Empty(t, Policy(0).candidates())
}

func TestAlphabets(t *testing.T) {
	assert.Len(t, Lowercase.Alphabet(), 26)
	assert.Len(t, Uppercase.Alphabet(), 26)
	assert.Len(t, Digits.Alphabet(), 10)
	assert.Len(t, Symbols.Alphabet(), 32)
	assert.Empty(t, Class(9).Alphabet())
	assert.Equal(t, "symbols", Symbols.String())

	for c := Class(0); c < numClasses; c++ {
		for _, r := range c.Alphabet() {
			assert.True(t, r > ' ' && r < 0x7f, "%q is not printable ASCII", r)
		}
	}
}
