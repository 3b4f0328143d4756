package security

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordAndVerifySuccess(t *testing.T) {
	password := "correct horse battery staple"

	encoded, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if encoded == "" {
		t.Fatal("HashPassword returned empty string")
	}

	if !strings.HasPrefix(encoded, "$2") {
		t.Fatalf("unexpected hash format: %q", encoded)
	}

	cost, err := bcrypt.Cost([]byte(encoded))
	if err != nil {
		t.Fatalf("failed to read bcrypt cost: %v", err)
	}
	if cost != bcryptCost {
		t.Fatalf("expected cost %d, got %d", bcryptCost, cost)
	}

	if !VerifyPassword(password, encoded) {
		t.Fatal("VerifyPassword returned false for correct password")
	}
}

func TestVerifyPasswordIncorrectPassword(t *testing.T) {
	encoded, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if VerifyPassword("Tr0ub4dor&3", encoded) {
		t.Fatal("VerifyPassword returned true for incorrect password")
	}
}

func TestVerifyPasswordInvalidFormat(t *testing.T) {
	if VerifyPassword("password", "invalid-format") {
		t.Fatal("VerifyPassword returned true for malformed hash")
	}
}

func TestVerifyPasswordEmptyInputs(t *testing.T) {
	if VerifyPassword("", "") {
		t.Fatal("VerifyPassword should return false for empty inputs")
	}
}
