package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// OrderPrefix is prepended to every order id so ids are recognizable in logs
// and downstream systems.
const OrderPrefix = "ORD-"

// New generates a new ULID string. ULIDs are lexicographically sortable
// by creation time and safe for use as DynamoDB partition keys.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// NewOrderID generates a time-ordered order id with the ORD- prefix.
func NewOrderID() string {
	return OrderPrefix + New()
}
