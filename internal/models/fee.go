package models

import "time"

// FeeStatus is a server-computed enum; the client never derives it.
type FeeStatus string

const (
	FeePaid    FeeStatus = "paid"
	FeePending FeeStatus = "pending"
	FeeOverdue FeeStatus = "overdue"
)

// FeeRecord is one billing period for one student.
type FeeRecord struct {
	ID          string     `json:"_id"`
	StudentID   string     `json:"studentId"`
	Student     *UserRef   `json:"student,omitempty"`
	Month       string     `json:"month"`
	Year        int        `json:"year"`
	Amount      float64    `json:"amount"`
	Status      FeeStatus  `json:"status"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// FeeStats is the aggregate view the fee-management section renders.
type FeeStats struct {
	TotalCollected float64 `json:"totalCollected"`
	TotalPending   float64 `json:"totalPending"`
	PaidCount      int     `json:"paidCount"`
	PendingCount   int     `json:"pendingCount"`
	OverdueCount   int     `json:"overdueCount"`
}
