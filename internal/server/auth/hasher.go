package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// PasswordHasher turns a plaintext password into the digest stored on the
// user record. Hash must be deterministic: digests are compared, not verified.
type PasswordHasher interface {
	Hash(password string) string
}

// SHA256Hasher produces lower-case hex SHA-256 digests.
type SHA256Hasher struct{}

func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

func (h *SHA256Hasher) Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
