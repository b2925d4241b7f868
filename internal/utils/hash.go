package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor applied to every new digest.
// Changing it only affects newly created hashes; verification reads the
// cost embedded in each digest.
const passwordHashCost = 10

// HashPassword produces a salted bcrypt digest of the given plaintext.
//
// bcrypt generates a fresh random salt on every call, so hashing the same
// password twice yields two different digests. The salt and work factor are
// encoded inside the returned string; no external key material is involved.
//
// Returns an error only if bcrypt itself fails (e.g. the plaintext exceeds
// bcrypt's 72-byte limit).
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether plaintext matches the given bcrypt digest.
//
// Any failure — wrong password, malformed or truncated digest, unknown
// algorithm prefix — yields false. The function never panics and never
// surfaces an error, so callers cannot distinguish "bad password" from
// "bad digest".
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
