package generator

import "math/bits"

// Class identifies one character class. The value is the bit index of the
// class in a Policy and also fixes the order in which alphabets are joined.
type Class uint8

const (
	Lowercase Class = iota
	Uppercase
	Digits
	Symbols

	numClasses = 4
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var alphabets = [numClasses]string{lowercaseChars, uppercaseChars, digitChars, symbolChars}

// Alphabet returns the characters of class c. Unknown classes yield "".
func (c Class) Alphabet() string {
	if c >= numClasses {
		return ""
	}
	return alphabets[c]
}

func (c Class) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	default:
		return "unknown"
	}
}

// Policy is a bit set of enabled character classes, one bit per Class.
// Only the low four bits are meaningful; the rest are ignored.
type Policy uint8

const (
	policyMask Policy = 1<<numClasses - 1

	// DefaultPolicy enables every class.
	DefaultPolicy = policyMask
)

func (p Policy) toggle(c Class) Policy { return p ^ (1 << c) }

// WithoutLowercase flips the lowercase bit.
func (p Policy) WithoutLowercase() Policy { return p.toggle(Lowercase) }

// WithoutUppercase flips the uppercase bit.
func (p Policy) WithoutUppercase() Policy { return p.toggle(Uppercase) }

// WithoutDigits flips the digits bit.
func (p Policy) WithoutDigits() Policy { return p.toggle(Digits) }

// WithoutSymbols flips the symbols bit.
func (p Policy) WithoutSymbols() Policy { return p.toggle(Symbols) }

// Disable clears the bit of class c. Unlike the Without* toggles it is
// idempotent.
func (p Policy) Disable(c Class) Policy { return p &^ (1 << c) }

// Enable sets the bit of class c.
func (p Policy) Enable(c Class) Policy { return p | (1 << c) }

// Enabled reports whether class c takes part in derivation.
func (p Policy) Enabled(c Class) bool {
	return c < numClasses && p&(1<<c) != 0
}

// Count returns the number of enabled classes.
func (p Policy) Count() int {
	return bits.OnesCount8(uint8(p & policyMask))
}

// Classes returns the enabled classes in bit order.
func (p Policy) Classes() []Class {
	classes := make([]Class, 0, numClasses)
	for c := Class(0); c < numClasses; c++ {
		if p.Enabled(c) {
			classes = append(classes, c)
		}
	}
	return classes
}

// candidates joins the alphabets of all enabled classes in bit order.
func (p Policy) candidates() string {
	var pool []byte
	for _, c := range p.Classes() {
		pool = append(pool, alphabets[c]...)
	}
	return string(pool)
}
