package client

import (
	"context"
	"net/http"

	"github.com/disamze/eduplatform-frontend/internal/models"
)

// CreateScheduleRequest carries the class-schedule form fields.
type CreateScheduleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	MeetingLink string `json:"meetingLink,omitempty"`
	Password    string `json:"password,omitempty"`
}

// Schedules lists all class schedules.
func (c *Client) Schedules(ctx context.Context) ([]models.Schedule, error) {
	var schedules []models.Schedule
	if err := c.doJSON(ctx, http.MethodGet, "/schedules", nil, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// CreateSchedule registers a new class schedule.
func (c *Client) CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := c.doJSON(ctx, http.MethodPost, "/schedules", req, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// DeleteSchedule removes a schedule by id.
func (c *Client) DeleteSchedule(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/schedules/"+id, nil, nil)
}
