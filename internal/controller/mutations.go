package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/disamze/eduplatform-frontend/internal/client"
	"github.com/disamze/eduplatform-frontend/internal/models"
	"github.com/disamze/eduplatform-frontend/internal/view"
	apperrors "github.com/disamze/eduplatform-frontend/pkg/errors"
)

// Every mutation follows the same contract: validate, call the backend, and
// report the outcome as a one-shot notification. The caller re-renders the
// affected section afterwards; nothing here mutates view state in place.

// ResourceForm carries a teacher upload. File metadata is filled from the
// multipart part, not the form fields.
type ResourceForm struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
	Type        string `form:"type" validate:"required,oneof=note question book"`
	FileName    string `validate:"required"`
	File        io.Reader
}

type ScheduleForm struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
	Date        string `form:"date" validate:"required"`
	Time        string `form:"time" validate:"required"`
	MeetingLink string `form:"meetingLink" validate:"omitempty,url"`
	Password    string `form:"password"`
}

type StudentForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

type FeeForm struct {
	StudentID string  `form:"studentId" validate:"required"`
	Month     string  `form:"month" validate:"required"`
	Year      int     `form:"year" validate:"required,gte=2000"`
	Amount    float64 `form:"amount" validate:"required,gt=0"`
	Notes     string  `form:"notes"`
}

type ResultForm struct {
	StudentID     string  `form:"studentId" validate:"required"`
	ExamName      string  `form:"examName" validate:"required"`
	Subject       string  `form:"subject" validate:"required"`
	Class         string  `form:"class" validate:"required"`
	ExamDate      string  `form:"examDate" validate:"required"`
	TotalMarks    float64 `form:"totalMarks" validate:"required,gt=0"`
	MarksObtained float64 `form:"marksObtained" validate:"gte=0,ltefield=TotalMarks"`
	Remarks       string  `form:"remarks"`
}

type AnnouncementForm struct {
	Title    string `form:"title" validate:"required"`
	Content  string `form:"content" validate:"required"`
	Priority string `form:"priority" validate:"required,oneof=low normal high"`
}

type ProfileForm struct {
	Name        string `form:"name" validate:"required"`
	Phone       string `form:"phone"`
	DateOfBirth string `form:"dateOfBirth"`
	Bio         string `form:"bio" validate:"max=500"`
}

func (c *Controller) CreateResource(ctx context.Context, form ResourceForm) (view.Notification, error) {
	return c.teacherMutation("Resource added successfully!", func() error {
		if err := c.validateForm(form); err != nil {
			return err
		}
		_, err := c.api.CreateResource(ctx, client.CreateResourceRequest{
			Title:       form.Title,
			Description: form.Description,
			Type:        models.ResourceType(form.Type),
			FileName:    form.FileName,
			File:        form.File,
		})
		return err
	})
}

func (c *Controller) DeleteResource(ctx context.Context, id string) (view.Notification, error) {
	return c.teacherMutation("Resource deleted successfully!", func() error {
		return c.api.DeleteResource(ctx, id)
	})
}

func (c *Controller) CreateSchedule(ctx context.Context, form ScheduleForm) (view.Notification, error) {
	return c.teacherMutation("Schedule created successfully!", func() error {
		if err := c.validateForm(form); err != nil {
			return err
		}
		_, err := c.api.CreateSchedule(ctx, client.CreateScheduleRequest{
			Title:       form.Title,
			Description: form.Description,
			Date:        form.Date,
			Time:        form.Time,
			MeetingLink: form.MeetingLink,
			Password:    form.Password,
		})
		return err
	})
}

func (c *Controller) DeleteSchedule(ctx context.Context, id string) (view.Notification, error) {
	return c.teacherMutation("Schedule deleted successfully!", func() error {
		return c.api.DeleteSchedule(ctx, id)
	})
}

func (c *Controller) CreateStudent(ctx context.Context, form StudentForm) (view.Notification, error) {
	return c.teacherMutation("Student added successfully!", func() error {
		if err := c.validateForm(form); err != nil {
			return err
		}
		_, err := c.api.CreateStudent(ctx, client.CreateStudentRequest{
			Name:     form.Name,
			Email:    form.Email,
			Password: form.Password,
		})
		return err
	})
}

func (c *Controller) DeleteStudent(ctx context.Context, id string) (view.Notification, error) {
	return c.teacherMutation("Student removed successfully!", func() error {
		return c.api.DeleteStudent(ctx, id)
	})
}

func (c *Controller) CreateFee(ctx context.Context, form FeeForm) (view.Notification, error) {
	return c.teacherMutation("Fee record added successfully!", func() error {
		if err := c.validateForm(form); err != nil {
			return err
		}
		_, err := c.api.CreateFee(ctx, client.CreateFeeRequest{
			StudentID: form.StudentID,
			Month:     form.Month,
			Year:      form.Year,
			Amount:    form.Amount,
			Notes:     form.Notes,
		})
		return err
	})
}

func (c *Controller) CreateResult(ctx context.Context, form ResultForm) (view.Notification, error) {
	return c.teacherMutation("Result added successfully!", func() error {
		if err := c.validateForm(form); err != nil {
			return err
		}
		_, err := c.api.CreateResult(ctx, client.ResultRequest{
			StudentID:     form.StudentID,
			ExamName:      form.ExamName,
			Subject:       form.Subject,
			Class:         form.Class,
			ExamDate:      form.ExamDate,
			TotalMarks:    form.TotalMarks,
			MarksObtained: form.MarksObtained,
			Remarks:       form.Remarks,
		})
		return err
	})
}

func (c *Controller) DeleteResult(ctx context.Context, id string) (view.Notification, error) {
	return c.teacherMutation("Result deleted successfully!", func() error {
		return c.api.DeleteResult(ctx, id)
	})
}

func (c *Controller) CreateAnnouncement(ctx context.Context, form AnnouncementForm) (view.Notification, error) {
	return c.teacherMutation("Announcement created successfully!", func() error {
		if err := c.validateForm(form); err != nil {
			return err
		}
		_, err := c.api.CreateAnnouncement(ctx, client.AnnouncementRequest{
			Title:    form.Title,
			Content:  form.Content,
			Priority: form.Priority,
		})
		return err
	})
}

func (c *Controller) DeleteAnnouncement(ctx context.Context, id string) (view.Notification, error) {
	return c.teacherMutation("Announcement deleted successfully!", func() error {
		return c.api.DeleteAnnouncement(ctx, id)
	})
}

// UpdateProfile is open to both roles; the refreshed user replaces the
// session snapshot so the topbar shows the new name immediately.
func (c *Controller) UpdateProfile(ctx context.Context, form ProfileForm) (view.Notification, error) {
	return c.mutation("Profile updated successfully!", func() error {
		if err := c.validateForm(form); err != nil {
			return err
		}
		user, err := c.api.UpdateProfile(ctx, client.ProfileUpdate{
			Name:        form.Name,
			Phone:       form.Phone,
			DateOfBirth: form.DateOfBirth,
			Bio:         form.Bio,
		})
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.user = user
		c.mu.Unlock()
		return nil
	})
}

func (c *Controller) UploadProfileImage(ctx context.Context, filename string, image io.Reader) (view.Notification, error) {
	return c.mutation("Profile image updated successfully!", func() error {
		if filename == "" || image == nil {
			return apperrors.Clone(apperrors.ErrValidation, "An image file is required")
		}
		user, err := c.api.UploadProfileImage(ctx, filename, image)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.user = user
		c.mu.Unlock()
		return nil
	})
}

func (c *Controller) mutation(success string, fn func() error) (view.Notification, error) {
	if err := fn(); err != nil {
		return view.Notification{Level: "error", Message: apperrors.FromError(err).Message}, err
	}
	return view.Notification{Level: "success", Message: success}, nil
}

func (c *Controller) teacherMutation(success string, fn func() error) (view.Notification, error) {
	if !c.CurrentUser().IsTeacher() {
		err := apperrors.New(apperrors.CodeValidation, 403, "Only teachers can perform this action")
		return view.Notification{Level: "error", Message: err.Message}, err
	}
	return c.mutation(success, fn)
}

func (c *Controller) validateForm(form interface{}) error {
	err := c.validate.Struct(form)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return apperrors.FromError(err)
	}
	return apperrors.Clone(apperrors.ErrValidation, fieldMessage(ve[0]))
}

func fieldMessage(fe validator.FieldError) string {
	field := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", field, fe.Param())
	case "ltefield":
		return fmt.Sprintf("%s cannot exceed %s", field, humanize(fe.Param()))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// humanize splits a CamelCase struct field into words for user-facing
// validation messages.
func humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
