package utils

import (
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if hash == "Secret123" || strings.Contains(hash, "Secret123") {
		t.Fatal("hash must not contain the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}

	if !CheckPasswordHash("Secret123", hash) {
		t.Fatal("correct password must verify")
	}
	if CheckPasswordHash("secret123", hash) {
		t.Fatal("password check must be case-sensitive")
	}
	if CheckPasswordHash("WrongPass", hash) {
		t.Fatal("wrong password must not verify")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if first == second {
		t.Fatal("two hashes of the same password must differ")
	}
}

func TestCheckPasswordHashCorruptHash(t *testing.T) {
	// A corrupt stored hash reads as a plain mismatch.
	if CheckPasswordHash("Secret123", "not-a-bcrypt-hash") {
		t.Fatal("corrupt hash must not verify")
	}
}
