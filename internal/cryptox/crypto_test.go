package cryptox

import (
	"bytes"
	"testing"
)

func TestHashPassword_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := HashPassword(password, salt)
	key2 := HashPassword(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	if len(key1) != keySize {
		t.Errorf("expected %d bytes, got %d", keySize, len(key1))
	}
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	key1 := HashPassword(password, []byte("salt-1"))
	key2 := HashPassword(password, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestVerifyPassword(t *testing.T) {
	salt, err := NewSalt()
	if err != nil {
		t.Fatal(err)
	}
	if len(salt) != saltSize {
		t.Fatalf("salt size = %d", len(salt))
	}

	hash := HashPassword([]byte("x"), salt)
	if !VerifyPassword([]byte("x"), salt, hash) {
		t.Error("correct password rejected")
	}
	if VerifyPassword([]byte("y"), salt, hash) {
		t.Error("wrong password accepted")
	}
}

func TestNewSalt_Random(t *testing.T) {
	a, _ := NewSalt()
	b, _ := NewSalt()
	if bytes.Equal(a, b) {
		t.Error("two salts must differ")
	}
}
