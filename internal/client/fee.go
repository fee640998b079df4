package client

import (
	"context"
	"net/http"

	"github.com/disamze/eduplatform-frontend/internal/models"
)

// CreateFeeRequest registers one billing period for one student. Status is
// set server-side, never here.
type CreateFeeRequest struct {
	StudentID string  `json:"studentId"`
	Month     string  `json:"month"`
	Year      int     `json:"year"`
	Amount    float64 `json:"amount"`
	Notes     string  `json:"notes,omitempty"`
}

// Fees lists all fee records (teacher view).
func (c *Client) Fees(ctx context.Context) ([]models.FeeRecord, error) {
	var fees []models.FeeRecord
	if err := c.doJSON(ctx, http.MethodGet, "/fees", nil, &fees); err != nil {
		return nil, err
	}
	return fees, nil
}

// CreateFee records a billing period.
func (c *Client) CreateFee(ctx context.Context, req CreateFeeRequest) (*models.FeeRecord, error) {
	var fee models.FeeRecord
	if err := c.doJSON(ctx, http.MethodPost, "/fees", req, &fee); err != nil {
		return nil, err
	}
	return &fee, nil
}

// FeeStatus returns the calling student's own fee records.
func (c *Client) FeeStatus(ctx context.Context) ([]models.FeeRecord, error) {
	var fees []models.FeeRecord
	if err := c.doJSON(ctx, http.MethodGet, "/fees/status", nil, &fees); err != nil {
		return nil, err
	}
	return fees, nil
}

// FeeStats returns the aggregate counters for the fee-management view.
func (c *Client) FeeStats(ctx context.Context) (*models.FeeStats, error) {
	var stats models.FeeStats
	if err := c.doJSON(ctx, http.MethodGet, "/fees/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
