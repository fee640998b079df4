package models

import "time"

// UserRole gates which UI sections and endpoints are reachable.
type UserRole string

const (
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// User is the server-owned account record. The client only ever holds a
// transient snapshot of it.
type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         UserRole  `json:"role"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	DateOfBirth  string    `json:"dateOfBirth,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// IsTeacher reports whether the user carries the teacher role.
func (u *User) IsTeacher() bool {
	return u != nil && u.Role == RoleTeacher
}

// UserRef is the embedded shape the backend uses for createdBy/uploadedBy.
type UserRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// DisplayName tolerates records whose owner was deleted server-side.
func (r *UserRef) DisplayName() string {
	if r == nil || r.Name == "" {
		return "Unknown"
	}
	return r.Name
}
