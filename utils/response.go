// utils/response.go
package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/gin-gonic/gin"
)

// RespondWithError aborts the request with a JSON error body.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

const randomChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateRandomString returns n random characters from an unambiguous
// alphabet, used for invoice number suffixes.
func GenerateRandomString(n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(randomChars)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the system source is broken
			panic("failed to read random source: " + err.Error())
		}
		out[i] = randomChars[idx.Int64()]
	}
	return string(out)
}
