// Copyright (c) 2026 Boardgate Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidToken = errors.New("invalid session token")

// GenerateSessionToken creates a random secure token for a logged-in member.
// The token is the only credential after login; there is no password.
func GenerateSessionToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// TokenEqual compares two tokens in constant time.
func TokenEqual(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
