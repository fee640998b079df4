package client

import (
	"context"
	"net/http"

	"github.com/disamze/eduplatform-frontend/internal/models"
)

// AnnouncementRequest carries the announcement form fields.
type AnnouncementRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
}

type unreadCountResponse struct {
	Count int `json:"count"`
}

// Announcements lists all announcements.
func (c *Client) Announcements(ctx context.Context) ([]models.Announcement, error) {
	var announcements []models.Announcement
	if err := c.doJSON(ctx, http.MethodGet, "/announcements", nil, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

// CreateAnnouncement publishes a new announcement.
func (c *Client) CreateAnnouncement(ctx context.Context, req AnnouncementRequest) (*models.Announcement, error) {
	var announcement models.Announcement
	if err := c.doJSON(ctx, http.MethodPost, "/announcements", req, &announcement); err != nil {
		return nil, err
	}
	return &announcement, nil
}

// UpdateAnnouncement edits an existing announcement.
func (c *Client) UpdateAnnouncement(ctx context.Context, id string, req AnnouncementRequest) (*models.Announcement, error) {
	var announcement models.Announcement
	if err := c.doJSON(ctx, http.MethodPut, "/announcements/"+id, req, &announcement); err != nil {
		return nil, err
	}
	return &announcement, nil
}

// DeleteAnnouncement removes an announcement by id.
func (c *Client) DeleteAnnouncement(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/announcements/"+id, nil, nil)
}

// MarkAnnouncementRead records the current user in the announcement's read
// set.
func (c *Client) MarkAnnouncementRead(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPost, "/announcements/"+id+"/read", nil, nil)
}

// UnreadAnnouncementCount asks the dedicated endpoint; the client never
// derives the count from the full list.
func (c *Client) UnreadAnnouncementCount(ctx context.Context) (int, error) {
	var resp unreadCountResponse
	if err := c.doJSON(ctx, http.MethodGet, "/announcements/unread/count", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}
