package registrations

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// TokenNumber generates the human-readable registration token:
// BYP-<unix millis>-<4 random digits>.
func TokenNumber() string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	suffix := int64(0)
	if err == nil {
		suffix = n.Int64()
	}
	return fmt.Sprintf("BYP-%d-%04d", time.Now().UnixMilli(), suffix)
}
