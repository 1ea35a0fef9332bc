// Package auth implements password hashing and JWT issuance/verification for
// the authentication core.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the fixed work factor for password hashing.
const BcryptCost = 12

// HashPassword produces a salted bcrypt digest of the plaintext password.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored bcrypt digest.
// A malformed stored hash also yields false; that situation indicates a
// corrupted credential record, not bad user input.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
