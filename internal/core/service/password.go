package service

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is the work factor applied when none is configured.
const DefaultBcryptCost = 10

// BcryptHasher hashes credentials with bcrypt. Safe for concurrent use; the
// cost is read-only after construction.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost. Costs outside the
// bcrypt-supported range fall back to DefaultBcryptCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns a salted one-way hash of plaintext. Hashing the same plaintext
// twice yields different strings; both verify against the original.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether plaintext matches hash. bcrypt's comparison is
// constant-time; a malformed hash is reported as a non-match.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
