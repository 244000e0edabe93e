// Package common defines sentinel errors and small helpers shared by the
// generator, the profile store and the CLI. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrContractViolation marks caller-input errors rejected before any
	// key derivation work starts.
	ErrContractViolation = errors.New("contract violation")

	// Derivation request errors. Both wrap ErrContractViolation.
	ErrLengthTooShort     = fmt.Errorf("%w: password length must be at least 4", ErrContractViolation)
	ErrNoCharacterClasses = fmt.Errorf("%w: at least one character class must be enabled", ErrContractViolation)

	// Profile store errors.
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidProfile  = errors.New("invalid profile")
)
