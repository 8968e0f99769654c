package usecase

import (
	"crypto/sha256"
	"encoding/base64"
)

// prehash reduces a secret of any length to a fixed 44-byte string so it fits
// bcrypt's 72-byte input limit. Every byte of the secret affects the result.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
