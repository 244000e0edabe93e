package profiles

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophpass/internal/common"
	"github.com/dmitrijs2005/gophpass/internal/generator"
	"github.com/go-playground/validator/v10"
)

// Entry is the on-disk form of a generator.Profile.
type Entry struct {
	Site        string `yaml:"site"`
	Login       string `yaml:"login"`
	Length      uint8  `yaml:"length" validate:"min=4"`
	Counter     uint64 `yaml:"counter"`
	NoLowercase bool   `yaml:"no_lowercase,omitempty"`
	NoUppercase bool   `yaml:"no_uppercase,omitempty"`
	NoDigits    bool   `yaml:"no_digits,omitempty"`
	NoSymbols   bool   `yaml:"no_symbols,omitempty"`
}

var validate = validator.New()

// FromProfile converts p into an Entry.
func FromProfile(p generator.Profile) Entry {
	return Entry{
		Site:        p.Site,
		Login:       p.Login,
		Length:      p.Length,
		Counter:     p.Counter,
		NoLowercase: !p.Policy.Enabled(generator.Lowercase),
		NoUppercase: !p.Policy.Enabled(generator.Uppercase),
		NoDigits:    !p.Policy.Enabled(generator.Digits),
		NoSymbols:   !p.Policy.Enabled(generator.Symbols),
	}
}

// Policy rebuilds the character policy from the disabled-class switches.
func (e Entry) Policy() generator.Policy {
	p := generator.DefaultPolicy
	if e.NoLowercase {
		p = p.WithoutLowercase()
	}
	if e.NoUppercase {
		p = p.WithoutUppercase()
	}
	if e.NoDigits {
		p = p.WithoutDigits()
	}
	if e.NoSymbols {
		p = p.WithoutSymbols()
	}
	return p
}

// Profile returns the derivation request described by e.
func (e Entry) Profile() generator.Profile {
	return generator.Profile{
		Site:    e.Site,
		Login:   e.Login,
		Length:  e.Length,
		Counter: e.Counter,
		Policy:  e.Policy(),
	}
}

// Validate reports whether e can be used for a derivation.
func (e Entry) Validate() error {
	if err := validate.Struct(e); err != nil {
		var msgs []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s (got: %v)", strings.ToLower(fe.Field()), fe.Tag(), fe.Param(), fe.Value()))
			}
		} else {
			msgs = append(msgs, err.Error())
		}
		return fmt.Errorf("%w: %s", common.ErrInvalidProfile, strings.Join(msgs, "; "))
	}
	if err := e.Profile().Validate(); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidProfile, err)
	}
	return nil
}
