package client

import (
	"context"
	"net/http"

	"github.com/disamze/eduplatform-frontend/internal/models"
)

// ResultRequest carries the exam-result form fields. Percentage and grade
// are computed by the backend.
type ResultRequest struct {
	StudentID     string  `json:"studentId"`
	ExamName      string  `json:"examName"`
	Subject       string  `json:"subject"`
	Class         string  `json:"class"`
	ExamDate      string  `json:"examDate"`
	TotalMarks    float64 `json:"totalMarks"`
	MarksObtained float64 `json:"marksObtained"`
	Remarks       string  `json:"remarks,omitempty"`
}

// Results lists exam results.
func (c *Client) Results(ctx context.Context) ([]models.Result, error) {
	var results []models.Result
	if err := c.doJSON(ctx, http.MethodGet, "/results", nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// CreateResult records an exam outcome.
func (c *Client) CreateResult(ctx context.Context, req ResultRequest) (*models.Result, error) {
	var result models.Result
	if err := c.doJSON(ctx, http.MethodPost, "/results", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateResult edits an existing exam outcome.
func (c *Client) UpdateResult(ctx context.Context, id string, req ResultRequest) (*models.Result, error) {
	var result models.Result
	if err := c.doJSON(ctx, http.MethodPut, "/results/"+id, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteResult removes an exam outcome by id.
func (c *Client) DeleteResult(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/results/"+id, nil, nil)
}

// Leaderboard returns the derived ranking (teacher-only view).
func (c *Client) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	if err := c.doJSON(ctx, http.MethodGet, "/results/leaderboard", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
