package client

import (
	"context"
	"io"
	"net/http"

	"github.com/disamze/eduplatform-frontend/internal/models"
)

// ProfileUpdate carries the partial profile fields a user may edit.
type ProfileUpdate struct {
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

// Profile fetches the current user. It doubles as the auto-login probe at
// startup.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodGet, "/user/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial profile edit and returns the updated user.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodPut, "/user/profile", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// profileImageResponse wraps the upload result.
type profileImageResponse struct {
	User         models.User `json:"user"`
	ProfileImage string      `json:"profileImage"`
}

// UploadProfileImage sends a new avatar as multipart and returns the updated
// user snapshot.
func (c *Client) UploadProfileImage(ctx context.Context, filename string, image io.Reader) (*models.User, error) {
	form := NewMultipartForm().File("image", filename, image)
	var resp profileImageResponse
	if err := c.doMultipart(ctx, http.MethodPost, "/user/profile/image", form, &resp); err != nil {
		return nil, err
	}
	if resp.ProfileImage != "" {
		resp.User.ProfileImage = resp.ProfileImage
	}
	return &resp.User, nil
}

// DashboardStats fetches the role-dependent aggregate counts.
func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
