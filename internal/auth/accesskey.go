package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"strings"
)

const (
	// AccessKeyLength is the number of characters in a ticket access key.
	AccessKeyLength = 8

	accessKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// Largest multiple of len(alphabet) that fits in a byte; bytes at or
	// above it are discarded so every character is equally likely.
	accessKeyByteLimit = 256 - 256%len(accessKeyAlphabet)
)

// GenerateAccessKey returns a random uppercase alphanumeric ticket key
// read from crypto/rand.
func GenerateAccessKey() (string, error) {
	var sb strings.Builder
	sb.Grow(AccessKeyLength)

	buf := make([]byte, AccessKeyLength*2)
	for sb.Len() < AccessKeyLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("generate access key: %w", err)
		}
		for _, b := range buf {
			if int(b) >= accessKeyByteLimit {
				continue
			}
			sb.WriteByte(accessKeyAlphabet[int(b)%len(accessKeyAlphabet)])
			if sb.Len() == AccessKeyLength {
				break
			}
		}
	}
	return sb.String(), nil
}

// VerifyAccessKey reports whether presented matches the stored key.
// A ticket without a stored key never matches, and neither does an empty
// presented key.
func VerifyAccessKey(stored *string, presented string) bool {
	if stored == nil || *stored == "" {
		return false
	}
	presented = strings.TrimSpace(presented)
	if presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(*stored), []byte(presented)) == 1
}
