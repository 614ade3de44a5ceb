// Package cryptox hashes account passwords with argon2id.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16
	keySize  = 32
)

// NewSalt returns a random salt for HashPassword.
func NewSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("read random salt: %w", err)
	}
	return salt, nil
}

// HashPassword derives a fixed-size key from password and salt.
func HashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, keySize)
}

// VerifyPassword reports whether password hashes to want under salt. The
// comparison takes constant time.
func VerifyPassword(password, salt, want []byte) bool {
	return subtle.ConstantTimeCompare(HashPassword(password, salt), want) == 1
}
