package bytex

import (
	"golang.org/x/exp/rand"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomBytes returns length random printable bytes for test payloads.
func RandomBytes(length int) []byte {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return b
}

// PatternBytes returns length bytes counting up from seed, so a truncated
// or shifted read is visible in the payload itself.
func PatternBytes(seed byte, length int) []byte {
	b := make([]byte, length)
	for i := range b {
		b[i] = seed + byte(i)
	}
	return b
}
