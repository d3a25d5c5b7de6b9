package domain

import (
	"strings"
	"time"
)

// PaymentStatus classifies the upstream state of a payment.
type PaymentStatus string

const (
	StatusSuccessful PaymentStatus = "Successful"
	StatusFailed     PaymentStatus = "Failed"
	StatusPending    PaymentStatus = "Pending"
	StatusOther      PaymentStatus = "Other"
)

// ParsePaymentStatus maps an upstream status string onto the known set.
// Anything unrecognized collapses to StatusOther.
func ParsePaymentStatus(s string) PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "success", "successful", "completed", "settled":
		return StatusSuccessful
	case "failed", "failure", "declined":
		return StatusFailed
	case "pending", "processing", "inprogress", "in_progress":
		return StatusPending
	default:
		return StatusOther
	}
}

// Amount is a monetary value as reported by the payment platform.
type Amount struct {
	Value    float64
	Currency string
}

// PaymentRecord is a normalized, read-only payment from the upstream API.
type PaymentRecord struct {
	ID        string
	Amount    Amount
	PayerName string
	CreatedAt time.Time
	Status    PaymentStatus
	FundName  string
	Reference string
}

// PaymentPage is one page of payments as returned by the upstream API,
// in upstream order.
type PaymentPage struct {
	Items      []PaymentRecord
	TotalCount int
	Page       int
	TotalPages int
}
