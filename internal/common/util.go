package common

import (
	"crypto/rand"
	"errors"
)

// AlphaNumeric is the alphabet used for generated salts.
const AlphaNumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// MakeRandString returns a string of n symbols drawn uniformly from alphabet
// using crypto/rand. Bytes that would bias the distribution are rejected.
//
// It returns an error if alphabet is empty or longer than 256 symbols, or if
// the random source fails.
func MakeRandString(n int, alphabet string) (string, error) {
	if len(alphabet) == 0 || len(alphabet) > 256 {
		return "", errors.New("alphabet must contain 1..256 symbols")
	}

	// largest multiple of len(alphabet) that fits in a byte
	limit := 256 - 256%len(alphabet)

	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == n {
				break
			}
		}
	}

	return string(out), nil
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Use it to drop plaintext passwords from memory after hashing.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
