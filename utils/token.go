package utils

import (
	"crypto/rand"
	"math/big"
)

// GenerateRandomToken returns a short alphanumeric code, used for password
// resets. Drawn from crypto/rand: the code gates a credential change, and
// the source is safe under concurrent requests.
func GenerateRandomToken(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	token := make([]byte, length)
	for i := range token {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			panic("crypto/rand unavailable: " + err.Error())
		}
		token[i] = charset[n.Int64()]
	}
	return string(token)
}
