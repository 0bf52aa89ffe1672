package security

import (
	"crypto/subtle"
	"fmt"
	"strings"
)

// SecretVerifier checks a caller-supplied shared secret for destructive and
// administrative operations.
type SecretVerifier interface {
	Verify(candidate string) bool
}

type pinVerifier struct {
	secret []byte
}

// NewPinVerifier builds a SecretVerifier around the configured master PIN.
// Comparison is constant time; the legacy system used plain equality.
func NewPinVerifier(secret string) (SecretVerifier, error) {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return nil, fmt.Errorf("master pin cannot be empty")
	}
	return &pinVerifier{secret: []byte(trimmed)}, nil
}

func (v *pinVerifier) Verify(candidate string) bool {
	return subtle.ConstantTimeCompare(v.secret, []byte(candidate)) == 1
}
