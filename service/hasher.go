package service

import (
	"crypto/sha256"
	"encoding/hex"
	"go-auth-api/logger"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past this many bytes.
const bcryptMaxInput = 72

// SecretHasher hashes and verifies passwords and security answers.
type SecretHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, digest string) bool
}

// Hasher is a bcrypt SecretHasher.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// reduce pre-hashes secrets longer than bcrypt's input limit into a 64 byte hex digest.
// Hash and Verify must both go through it.
func reduce(secret string) []byte {
	if len(secret) <= bcryptMaxInput {
		return []byte(secret)
	}
	sum := sha256.Sum256([]byte(secret))
	return []byte(hex.EncodeToString(sum[:]))
}

func (h *Hasher) Hash(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(reduce(secret), h.cost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash secret")
		return "", err
	}
	return string(bytes), nil
}

func (h *Hasher) Verify(secret, digest string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(digest), reduce(secret))
	return err == nil
}

// NormalizeAnswer makes security answers case and surrounding-whitespace insensitive.
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
