package auth_test

import (
	"testing"

	appauth "github.com/gotrabandhus/gotrabandhus/application/auth"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	digest1, err := appauth.HashPassword("secret1", bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	digest2, err := appauth.HashPassword("secret1", bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	// Salted: hashing the same input twice yields different digests
	if digest1 == digest2 {
		t.Fatal("HashPassword() produced identical digests for two calls")
	}

	// and both still verify the original plaintext
	if !appauth.VerifyPassword("secret1", digest1) {
		t.Fatal("VerifyPassword() = false for first digest")
	}
	if !appauth.VerifyPassword("secret1", digest2) {
		t.Fatal("VerifyPassword() = false for second digest")
	}
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	digest, err := appauth.HashPassword("secret1", 99)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !appauth.VerifyPassword("secret1", digest) {
		t.Fatal("VerifyPassword() = false for digest hashed with fallback cost")
	}
}

func TestVerifyPassword(t *testing.T) {
	digest, err := appauth.HashPassword("password123", bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	tests := []struct {
		name      string
		plaintext string
		digest    string
		want      bool
	}{
		{
			name:      "correct password",
			plaintext: "password123",
			digest:    digest,
			want:      true,
		},
		{
			name:      "wrong password",
			plaintext: "password124",
			digest:    digest,
			want:      false,
		},
		{
			name:      "empty password",
			plaintext: "",
			digest:    digest,
			want:      false,
		},
		{
			name:      "malformed digest",
			plaintext: "password123",
			digest:    "not-a-bcrypt-digest",
			want:      false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := appauth.VerifyPassword(tt.plaintext, tt.digest); got != tt.want {
				t.Fatalf("VerifyPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}
