package models

import "time"

// Payment is written once by the settlement worker and never mutated.
type Payment struct {
	PNR           string    `json:"pnr"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	ProcessedAt   time.Time `json:"processed_at"`
}
