package auth

import (
	"strings"
	"testing"
)

func TestGenerateSessionToken(t *testing.T) {
	token, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("Expected token, got error: %v", err)
	}
	if token == "" {
		t.Fatal("Expected non-empty token")
	}
	if strings.ContainsAny(token, "+/=") {
		t.Errorf("Expected URL-safe unpadded token, got %q", token)
	}
	// 24 bytes in unpadded base64 is 32 characters
	if len(token) != 32 {
		t.Errorf("Expected 32-character token, got %d", len(token))
	}
}

func TestGenerateSessionTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateSessionToken()
		if err != nil {
			t.Fatalf("Expected token, got error: %v", err)
		}
		if seen[token] {
			t.Fatalf("Duplicate token generated: %s", token)
		}
		seen[token] = true
	}
}

func TestTokenEqual(t *testing.T) {
	if !TokenEqual("abc", "abc") {
		t.Error("Expected equal tokens to match")
	}
	if TokenEqual("abc", "abd") {
		t.Error("Expected different tokens not to match")
	}
	if TokenEqual("abc", "") {
		t.Error("Expected empty token not to match")
	}
}
