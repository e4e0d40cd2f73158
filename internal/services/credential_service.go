package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost pins the work factor at 10 rounds.
const bcryptCost = 10

// ErrCorruptDigest signals that a stored password digest could not be
// parsed. A plain mismatch is not an error.
var ErrCorruptDigest = errors.New("corrupt password digest")

// CredentialService hashes and verifies passwords. Digests are one-way and
// salted; the plaintext is never stored.
type CredentialService struct{}

func NewCredentialService() *CredentialService {
	return &CredentialService{}
}

// Hash derives a salted bcrypt digest from the plaintext password.
func (s *CredentialService) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(digest), nil
}

// Verify checks the plaintext against a stored digest. A wrong password
// returns (false, nil); only a malformed digest produces an error.
func (s *CredentialService) Verify(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrCorruptDigest, err)
	}
}
