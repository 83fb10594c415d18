package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost keeps brute force expensive while hashing stays well under a
// second on commodity hardware.
const bcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether the password matches the stored hash.
// Any failure, including a corrupt hash, reads as a mismatch so callers
// cannot leak which case occurred.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
