// Package cryptox implements the salted password hashing used by the
// credential store.
//
// A password is hashed as the lowercase hex SHA-256 digest of the password
// bytes immediately followed by the salt. The scheme is a single fast hash,
// not a key derivation function.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/dmitrijs2005/userkeep/internal/common"
)

// SaltLength is the number of characters in a generated salt.
const SaltLength = 32

// GenerateSalt returns a fresh SaltLength-character salt made of ASCII
// letters and digits. It fails only if the system random source fails.
func GenerateSalt() (string, error) {
	return common.MakeRandString(SaltLength, common.AlphaNumeric)
}

// HashPassword returns hex(SHA-256(password || salt)), always 64 lowercase
// hex characters.
func HashPassword(password []byte, salt string) string {
	h := sha256.New()
	h.Write(password)
	h.Write([]byte(salt))
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyPassword recomputes the hash of password with salt and compares it
// with hash in constant time.
func VerifyPassword(password []byte, salt, hash string) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(hash)) == 1
}
