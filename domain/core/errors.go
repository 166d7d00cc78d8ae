package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrDomain reports an input outside the mathematically valid
	// domain of a conversion formula.
	ErrDomain = errors.New("input outside valid domain")
)

// NewDomainError wraps ErrDomain with the offending argument and the
// constraint it violated.
func NewDomainError(name string, value float64, constraint string) error {
	return fmt.Errorf("%w: %s = %v, want %s", ErrDomain, name, value, constraint)
}

// Error checking helpers
func IsDomainError(err error) bool {
	return errors.Is(err, ErrDomain)
}
