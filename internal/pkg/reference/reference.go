// Package reference generates the correlation identifiers sent to the payment
// gateway. Uniqueness is best-effort via timestamp plus entropy; there is no
// central allocator.
package reference

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewTransactionRef returns a transaction reference of the form
// T<unix-millis><4 random base-36 chars>. Sequential calls within the same
// millisecond still differ in the random suffix.
func NewTransactionRef() string {
	return fmt.Sprintf("T%d%s", time.Now().UnixMilli(), randBase36(4))
}

// NewThirdPartyRef returns a 12-character random base-36 reference.
func NewThirdPartyRef() string {
	return randBase36(12)
}

func randBase36(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(base36Alphabet)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken.
			panic(fmt.Sprintf("reference: read entropy: %v", err))
		}
		b[i] = base36Alphabet[idx.Int64()]
	}
	return string(b)
}
