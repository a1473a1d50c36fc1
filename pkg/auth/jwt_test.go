package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 7*24*time.Hour)

	token, err := m.GenerateToken("user-123", "jane", "jane@example.com")
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() failed: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q, want user-123", claims.UserID)
	}
	if claims.Username != "jane" {
		t.Errorf("Username = %q, want jane", claims.Username)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("Email = %q, want jane@example.com", claims.Email)
	}
}

func TestJWTManager_RefreshTokenCarriesOnlyUserID(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 7*24*time.Hour)

	token, err := m.GenerateRefreshToken("user-123")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() failed: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() failed: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q, want user-123", claims.UserID)
	}
	if claims.Username != "" || claims.Email != "" {
		t.Errorf("refresh token carries identity fields: %+v", claims)
	}
}

func TestJWTManager_RejectsTamperedToken(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 7*24*time.Hour)

	token, _ := m.GenerateToken("user-123", "jane", "jane@example.com")
	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + ".invalid-signature"

	if _, err := m.ValidateToken(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken(tampered) error = %v, want ErrInvalidToken", err)
	}
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("secret-a", time.Hour, 7*24*time.Hour)
	other := NewJWTManager("secret-b", time.Hour, 7*24*time.Hour)

	token, _ := m.GenerateToken("user-123", "jane", "jane@example.com")
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken() with wrong secret error = %v, want ErrInvalidToken", err)
	}
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute, 7*24*time.Hour)

	token, _ := m.GenerateToken("user-123", "jane", "jane@example.com")
	if _, err := m.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken(expired) error = %v, want ErrExpiredToken", err)
	}
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 7*24*time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b"} {
		if _, err := m.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ValidateToken(%q) error = %v, want ErrInvalidToken", token, err)
		}
	}
}
