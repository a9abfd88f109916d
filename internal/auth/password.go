package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the 10 rounds the rest of the platform uses.
const bcryptCost = 10

var ErrInvalidPassword = errors.New("invalid password input")

// HashPassword hashes a plaintext password with bcrypt. It fails only on
// invalid input: empty passwords or ones beyond bcrypt's 72-byte limit.
func HashPassword(password string) (string, error) {
	if password == "" || len(password) > 72 {
		return "", ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
// Comparison is constant-time; any mismatch or malformed hash is false.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
