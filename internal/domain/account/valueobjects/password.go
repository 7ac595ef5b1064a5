package valueobjects

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Password length bounds, applied to the raw password before hashing.
const (
	PasswordMinLength = 6
	PasswordMaxLength = 64
)

// HashPassword digests a plaintext password to lowercase hex SHA-256.
//
// Known weakness, preserved deliberately: the digest is unsalted, so equal
// passwords produce equal digests and rainbow-table attacks apply. Changing
// the scheme would break verification of every already-stored record, so an
// upgrade has to come with a credential migration.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether a plaintext password matches a stored digest.
func VerifyPassword(password string, passwordHash string) bool {
	computed := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(passwordHash)) == 1
}
