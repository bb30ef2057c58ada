package utils

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// GeneratePNR returns a 10-digit reservation code. Uniqueness is enforced
// at the storage layer; the ledger retries on collision.
func GeneratePNR() string {
	var sb strings.Builder
	for i := 0; i < 10; i++ {
		sb.WriteByte(byte('0' + rand.Intn(10)))
	}
	return sb.String()
}

// GenerateTicketNumber returns "T" followed by 6 digits.
func GenerateTicketNumber() string {
	var sb strings.Builder
	sb.WriteByte('T')
	for i := 0; i < 6; i++ {
		sb.WriteByte(byte('0' + rand.Intn(10)))
	}
	return sb.String()
}

// GenerateTransactionID returns a payment transaction reference.
func GenerateTransactionID() string {
	return "TXN-" + uuid.NewString()
}
