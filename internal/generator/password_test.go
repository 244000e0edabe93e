package generator

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophpass/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivePassword_ZeroEntropy(t *testing.T) {
	// With zero entropy every draw is 0: fills take the first pool
	// character, required characters are the first of each alphabet and
	// each one is inserted at the front.
	got, err := DerivePassword(NewEntropy(nil), DefaultPolicy, 8)
	require.NoError(t, err)
	assert.Equal(t, "!0Aaaaaa", got)
}

func TestDerivePassword_DrawOrder(t *testing.T) {
	// Digits only, length 4: three fill draws, one required draw and one
	// insertion draw over a sequence of length 3.
	e := &Entropy{v: big.NewInt(73)}
	got, err := DerivePassword(e, DefaultPolicy.WithoutLowercase().WithoutUppercase().WithoutSymbols(), 4)
	require.NoError(t, err)
	// fill: 73%10=3 -> "3", q=7; 7%10=7 -> "37", q=0; 0 -> "370", q=0
	// required: 0%10=0 -> '0'; insert at 0%3=0 -> "0370"
	assert.Equal(t, "0370", got)
}

func TestDerivePassword_Contract(t *testing.T) {
	e := NewEntropy(bytes.Repeat([]byte{0xff}, 32))
	before := e.Int()

	_, err := DerivePassword(e, DefaultPolicy, 3)
	require.ErrorIs(t, err, common.ErrLengthTooShort)

	_, err = DerivePassword(e, 0, 16)
	require.ErrorIs(t, err, common.ErrNoCharacterClasses)

	assert.Zero(t, before.Cmp(e.Int()), "entropy must be untouched on contract errors")
}

func TestDerivePassword_AlphabetClosure(t *testing.T) {
	e := NewEntropy(bytes.Repeat([]byte{0xa5}, 32))
	policy := DefaultPolicy.WithoutUppercase()

	got, err := DerivePassword(e, policy, 32)
	require.NoError(t, err)

	pool := policy.candidates()
	for _, r := range got {
		assert.True(t, strings.ContainsRune(pool, r), "unexpected %q in %q", r, got)
	}
}
