package client

import (
	"context"
	"io"
	"net/http"

	"github.com/disamze/eduplatform-frontend/internal/models"
)

// CreateStudentRequest is the teacher-managed roster creation payload,
// distinct from self-registration.
type CreateStudentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Students lists the roster.
func (c *Client) Students(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := c.doJSON(ctx, http.MethodGet, "/students", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// CreateStudent adds a student to the roster.
func (c *Client) CreateStudent(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	var student models.Student
	if err := c.doJSON(ctx, http.MethodPost, "/students", req, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// DeleteStudent removes a student by id.
func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/students/"+id, nil, nil)
}

// UpdateStudentProfile edits the teacher-managed profile fields of a student.
func (c *Client) UpdateStudentProfile(ctx context.Context, id string, update ProfileUpdate) (*models.Student, error) {
	var student models.Student
	if err := c.doJSON(ctx, http.MethodPut, "/students/"+id+"/profile", update, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// UploadStudentImage sets a student's profile image.
func (c *Client) UploadStudentImage(ctx context.Context, id, filename string, image io.Reader) (*models.Student, error) {
	form := NewMultipartForm().File("image", filename, image)
	var student models.Student
	if err := c.doMultipart(ctx, http.MethodPost, "/students/"+id+"/profile/image", form, &student); err != nil {
		return nil, err
	}
	return &student, nil
}
