// Package auth provides the password-hashing and session-token primitives
// used by the user service and the request middleware.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 101101
	pbkdf2KeyLen     = 32
	pbkdf2SaltLen    = 16
)

// Credential is the stored form of a password: the PBKDF2-HMAC-SHA256
// derived key and the random salt it was derived with, both hex encoded.
type Credential struct {
	DerivedKey string
	Salt       string
}

type PasswordHasher struct{}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

// Hash derives a credential from password with a fresh random salt.
func (h *PasswordHasher) Hash(password string) (Credential, error) {
	salt := make([]byte, pbkdf2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return Credential{}, fmt.Errorf("generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)

	return Credential{
		DerivedKey: hex.EncodeToString(key),
		Salt:       hex.EncodeToString(salt),
	}, nil
}

// Verify re-derives a key from password and the stored salt and compares
// it to the stored derived key in constant time. Malformed hex in either
// stored field is a verification failure, not an error.
func (h *PasswordHasher) Verify(password, saltHex, derivedKeyHex string) bool {
	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) != pbkdf2SaltLen {
		return false
	}
	want, err := hex.DecodeString(derivedKeyHex)
	if err != nil || len(want) != pbkdf2KeyLen {
		return false
	}

	got := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}
