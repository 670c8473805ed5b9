package domain

import "time"

// PaymentStatus represents the lifecycle state of a rent payment record.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// Payment is a rent ledger entry for one resident and one billing month.
// This is bookkeeping only; no money moves through this system.
type Payment struct {
	ID         string        `json:"id" bson:"_id,omitempty"`
	PGID       string        `json:"pg_id" bson:"pg_id"`
	ResidentID string        `json:"resident_id" bson:"resident_id"`
	Amount     float64       `json:"amount" bson:"amount"`
	Currency   string        `json:"currency" bson:"currency"`
	Month      string        `json:"month" bson:"month"` // YYYY-MM
	Method     string        `json:"method,omitempty" bson:"method,omitempty"`
	Status     PaymentStatus `json:"status" bson:"status"`
	PaidAt     *time.Time    `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
}
