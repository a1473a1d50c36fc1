package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	password := "my-secure-password"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() failed: %v", err)
	}
	if hash == "" {
		t.Fatal("HashPassword() returned empty hash")
	}
	if hash == password {
		t.Fatal("HashPassword() returned plaintext password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		t.Errorf("HashPassword() produced invalid bcrypt hash: %v", err)
	}
}

func TestHashPassword_SaltsEachHash(t *testing.T) {
	password := "same-password"
	hash1, _ := HashPassword(password)
	hash2, _ := HashPassword(password)

	if hash1 == hash2 {
		t.Error("HashPassword() produced identical hashes for same password")
	}
}

func TestCheckPasswordHash(t *testing.T) {
	hash, _ := HashPassword("correct-password")

	if !CheckPasswordHash("correct-password", hash) {
		t.Error("CheckPasswordHash() rejected the correct password")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("CheckPasswordHash() accepted a wrong password")
	}
	if CheckPasswordHash("correct-password", "not-a-hash") {
		t.Error("CheckPasswordHash() accepted an invalid hash")
	}
}
