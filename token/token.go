// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package token

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Length is the number of characters in a night token. It matches the
// invite links the frontend was built around, so it cannot change without
// breaking stored links.
const Length = 5

// alphabet is base62: URL-friendly, no special characters
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Generate creates a random alphanumeric night token.
//
// With 62^5 (~916M) possible tokens, collisions are unlikely but not
// impossible; the store is responsible for retrying on collision rather
// than trusting uniqueness.
func Generate() (string, error) {
	max := big.NewInt(int64(len(alphabet)))

	b := make([]byte, Length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate token: %w", err)
		}
		b[i] = alphabet[n.Int64()]
	}

	return string(b), nil
}

// Valid reports whether s has the shape of a generated token: exactly
// Length characters from the token alphabet.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return true
}
