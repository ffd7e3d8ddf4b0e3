package internal

import "math/rand/v2"

// ChainID returns a random identity tag for a chain. Tags only need to be
// distinct between chains alive in the same process.
func ChainID() string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const n = 12
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rand.IntN(len(charset))]
	}
	return string(b)
}
