package security_test

import (
	"testing"

	"github.com/washdesk/washdesk-backend/pkg/security"
)

func TestPinVerifier(t *testing.T) {
	verifier, err := security.NewPinVerifier("4217")
	if err != nil {
		t.Fatalf("NewPinVerifier returned error: %v", err)
	}

	if !verifier.Verify("4217") {
		t.Fatal("expected the correct pin to verify")
	}
	if verifier.Verify("0000") {
		t.Fatal("expected a wrong pin to fail")
	}
	if verifier.Verify("") {
		t.Fatal("expected an empty pin to fail")
	}
}

func TestPinVerifierEmptySecret(t *testing.T) {
	if _, err := security.NewPinVerifier("   "); err == nil {
		t.Fatal("expected error for blank secret")
	}
}
