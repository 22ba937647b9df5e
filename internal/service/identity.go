package service

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
)

// Hasher derives the digests the session contract and the password store
// depend on. Both digests must stay deterministic: the session digest
// recomputes on every request, and login looks users up by password
// digest.
//
// The password digest is unsalted SHA-512. Login looks the user up by
// this digest, so any change to the scheme invalidates every stored
// credential.
type Hasher struct {
	salt string
}

// NewHasher creates a Hasher bound to the process-wide secret salt.
func NewHasher(salt string) (*Hasher, error) {
	if salt == "" {
		return nil, fmt.Errorf("cookie salt cannot be empty")
	}
	return &Hasher{salt: salt}, nil
}

// UserIDDigest returns the hex SHA-512 digest of "{id}-{salt}". This is
// the loggedInHash cookie value asserting "this session belongs to id".
func (h *Hasher) UserIDDigest(userID uint) string {
	sum := sha512.Sum512([]byte(fmt.Sprintf("%d-%s", userID, h.salt)))
	return hex.EncodeToString(sum[:])
}

// PasswordDigest returns the hex SHA-512 digest of the password.
func (h *Hasher) PasswordDigest(password string) string {
	sum := sha512.Sum512([]byte(password))
	return hex.EncodeToString(sum[:])
}
