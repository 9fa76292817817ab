package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the hex-encoded SHA256 hash of the input string.
func SHA256Hex(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// ShortHex returns the first n characters of SHA256(input). Used for
// irreversible log correlation of IPs without storing raw PII.
func ShortHex(input string, n int) string {
	full := SHA256Hex(input)
	if n > len(full) {
		return full
	}
	return full[:n]
}

// SaltedHex returns the hex-encoded SHA256 hash of salt+input.
// Used for abuse-tracking IP hashes at rest.
func SaltedHex(input, salt string) string {
	return SHA256Hex(salt + input)
}
