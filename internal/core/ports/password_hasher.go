package ports

// PasswordHasher provides one-way salted hashing of credentials.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. A malformed hash is a
	// non-match, never an error.
	Verify(plaintext, hash string) bool
}
