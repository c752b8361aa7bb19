// Package utils holds small helpers shared by the demo service and its request generator.
package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// CalculateHash returns the hex SHA-256 of body followed by key.
func CalculateHash(body []byte, key string) string {
	h := sha256.New()
	h.Write(body)
	h.Write([]byte(key))
	return hex.EncodeToString(h.Sum(nil))
}
