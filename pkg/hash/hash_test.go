package hash

import (
	"testing"
)

func TestSHA256Hex(t *testing.T) {
	// Known SHA256 of "hello"
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	got := SHA256Hex("hello")
	if got != want {
		t.Errorf("SHA256Hex(\"hello\") = %s, want %s", got, want)
	}
}

func TestSHA256Hex_Empty(t *testing.T) {
	// SHA256 of empty string
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	got := SHA256Hex("")
	if got != want {
		t.Errorf("SHA256Hex(\"\") = %s, want %s", got, want)
	}
}

func TestShortHex(t *testing.T) {
	fullHash := SHA256Hex("192.168.1.1")

	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{"12 char prefix", "192.168.1.1", 12, fullHash[:12]},
		{"8 char prefix", "192.168.1.1", 8, fullHash[:8]},
		{"full hash if n too long", "192.168.1.1", 100, fullHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShortHex(tt.input, tt.n)
			if got != tt.want {
				t.Errorf("ShortHex(%q, %d) = %s, want %s", tt.input, tt.n, got, tt.want)
			}
		})
	}
}

func TestSaltedHex(t *testing.T) {
	ip := "192.168.1.1"
	salt := "random-salt-value"
	hash := SaltedHex(ip, salt)

	// Should be 64 hex chars
	if len(hash) != 64 {
		t.Errorf("SaltedHex length = %d, want 64", len(hash))
	}

	// Deterministic
	if hash != SaltedHex(ip, salt) {
		t.Error("SaltedHex should be deterministic")
	}

	// Different salt should produce different hash
	if hash == SaltedHex(ip, "different-salt") {
		t.Error("different salts should produce different hashes")
	}

	// Different input should produce different hash
	if hash == SaltedHex("10.0.0.1", salt) {
		t.Error("different IPs should produce different hashes")
	}
}
