package controller

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/disamze/eduplatform-frontend/pkg/errors"
)

func TestCreateScheduleSuccessNotification(t *testing.T) {
	api := &fakeTransport{}
	c := newTestController(api, Options{})
	t.Cleanup(c.Logout)
	loginAs(t, c, api, teacherUser)

	note, err := c.CreateSchedule(context.Background(), ScheduleForm{
		Title: "Math revision",
		Date:  "2026-09-07",
		Time:  "10:00",
	})
	require.NoError(t, err)
	require.Equal(t, "success", note.Level)
	require.Equal(t, "Schedule created successfully!", note.Message)
	require.Len(t, api.createdSchedules, 1)
	require.Equal(t, "Math revision", api.createdSchedules[0].Title)
}

func TestCreateScheduleValidation(t *testing.T) {
	api := &fakeTransport{}
	c := newTestController(api, Options{})
	t.Cleanup(c.Logout)
	loginAs(t, c, api, teacherUser)

	note, err := c.CreateSchedule(context.Background(), ScheduleForm{Title: "No date"})
	require.Error(t, err)
	require.True(t, apperrors.Is(err, apperrors.CodeValidation))
	require.Equal(t, "error", note.Level)
	require.Equal(t, "Date is required", note.Message)
	require.Empty(t, api.createdSchedules, "nothing may reach the backend on validation failure")
}

func TestCreateStudentValidatesEmailAndPassword(t *testing.T) {
	api := &fakeTransport{}
	c := newTestController(api, Options{})
	t.Cleanup(c.Logout)
	loginAs(t, c, api, teacherUser)

	_, err := c.CreateStudent(context.Background(), StudentForm{Name: "X", Email: "not-an-email", Password: "longenough"})
	require.Error(t, err)
	require.Contains(t, apperrors.FromError(err).Message, "valid email")

	_, err = c.CreateStudent(context.Background(), StudentForm{Name: "X", Email: "x@y.z", Password: "short"})
	require.Error(t, err)
	require.Contains(t, apperrors.FromError(err).Message, "at least 6")

	note, err := c.CreateStudent(context.Background(), StudentForm{Name: "X", Email: "x@y.z", Password: "longenough"})
	require.NoError(t, err)
	require.Equal(t, "Student added successfully!", note.Message)
}

func TestCreateResultRejectsMarksAboveTotal(t *testing.T) {
	api := &fakeTransport{}
	c := newTestController(api, Options{})
	t.Cleanup(c.Logout)
	loginAs(t, c, api, teacherUser)

	form := ResultForm{
		StudentID:     "s1",
		ExamName:      "Midterm",
		Subject:       "Math",
		Class:         "10A",
		ExamDate:      "2026-06-01",
		TotalMarks:    100,
		MarksObtained: 110,
	}
	note, err := c.CreateResult(context.Background(), form)
	require.Error(t, err)
	require.Equal(t, "error", note.Level)
	require.Empty(t, api.createdResults)

	form.MarksObtained = 92
	note, err = c.CreateResult(context.Background(), form)
	require.NoError(t, err)
	require.Equal(t, "Result added successfully!", note.Message)
	require.Len(t, api.createdResults, 1)
}

func TestCreateFeeValidation(t *testing.T) {
	api := &fakeTransport{}
	c := newTestController(api, Options{})
	t.Cleanup(c.Logout)
	loginAs(t, c, api, teacherUser)

	_, err := c.CreateFee(context.Background(), FeeForm{StudentID: "s1", Month: "March", Year: 2026})
	require.Error(t, err, "amount must be positive")

	note, err := c.CreateFee(context.Background(), FeeForm{StudentID: "s1", Month: "March", Year: 2026, Amount: 150})
	require.NoError(t, err)
	require.Equal(t, "Fee record added successfully!", note.Message)
}

func TestCreateAnnouncementValidatesPriority(t *testing.T) {
	api := &fakeTransport{}
	c := newTestController(api, Options{})
	t.Cleanup(c.Logout)
	loginAs(t, c, api, teacherUser)

	_, err := c.CreateAnnouncement(context.Background(), AnnouncementForm{Title: "T", Content: "C", Priority: "urgent"})
	require.Error(t, err)

	note, err := c.CreateAnnouncement(context.Background(), AnnouncementForm{Title: "T", Content: "C", Priority: "high"})
	require.NoError(t, err)
	require.Equal(t, "Announcement created successfully!", note.Message)
}

func TestDeleteResourceReportsBackendError(t *testing.T) {
	api := &fakeTransport{deleteErr: apperrors.RequestFailed(404, "Resource not found")}
	c := newTestController(api, Options{})
	t.Cleanup(c.Logout)
	loginAs(t, c, api, teacherUser)

	note, err := c.DeleteResource(context.Background(), "gone")
	require.Error(t, err)
	require.Equal(t, "error", note.Level)
	require.Equal(t, "Resource not found", note.Message)
}

func TestDeleteResourceSuccess(t *testing.T) {
	api := &fakeTransport{}
	c := newTestController(api, Options{})
	t.Cleanup(c.Logout)
	loginAs(t, c, api, teacherUser)

	note, err := c.DeleteResource(context.Background(), "r1")
	require.NoError(t, err)
	require.Equal(t, "Resource deleted successfully!", note.Message)
	require.Equal(t, []string{"r1"}, api.deletedResources)
}

func TestStudentsCannotRunTeacherMutations(t *testing.T) {
	api := &fakeTransport{}
	c := newTestController(api, Options{PollInterval: time.Hour})
	t.Cleanup(c.Logout)
	loginAs(t, c, api, studentUser)

	note, err := c.DeleteResource(context.Background(), "r1")
	require.Error(t, err)
	require.Equal(t, "error", note.Level)
	require.Empty(t, api.deletedResources)

	_, err = c.CreateAnnouncement(context.Background(), AnnouncementForm{Title: "T", Content: "C", Priority: "low"})
	require.Error(t, err)
	require.Empty(t, api.createdAnnouncements)
}

func TestUpdateProfileRefreshesSessionUser(t *testing.T) {
	api := &fakeTransport{}
	c := newTestController(api, Options{})
	t.Cleanup(c.Logout)
	loginAs(t, c, api, teacherUser)

	note, err := c.UpdateProfile(context.Background(), ProfileForm{Name: "Renamed", Bio: "hello"})
	require.NoError(t, err)
	require.Equal(t, "Profile updated successfully!", note.Message)
	require.Equal(t, "Renamed", c.CurrentUser().Name)
	require.Len(t, api.profileUpdates, 1)
}

func TestUpdateProfileRejectsOversizedBio(t *testing.T) {
	api := &fakeTransport{}
	c := newTestController(api, Options{})
	t.Cleanup(c.Logout)
	loginAs(t, c, api, teacherUser)

	_, err := c.UpdateProfile(context.Background(), ProfileForm{Name: "N", Bio: strings.Repeat("x", 501)})
	require.Error(t, err)
	require.True(t, apperrors.Is(err, apperrors.CodeValidation))
}

func TestUploadProfileImageRequiresFile(t *testing.T) {
	api := &fakeTransport{}
	c := newTestController(api, Options{})
	t.Cleanup(c.Logout)
	loginAs(t, c, api, teacherUser)

	note, err := c.UploadProfileImage(context.Background(), "", nil)
	require.Error(t, err)
	require.Equal(t, "An image file is required", note.Message)

	note, err = c.UploadProfileImage(context.Background(), "me.png", strings.NewReader("png"))
	require.NoError(t, err)
	require.Equal(t, "Profile image updated successfully!", note.Message)
	require.Contains(t, c.CurrentUser().ProfileImage, "me.png")
}

func TestCreateResourceRequiresFile(t *testing.T) {
	api := &fakeTransport{}
	c := newTestController(api, Options{})
	t.Cleanup(c.Logout)
	loginAs(t, c, api, teacherUser)

	note, err := c.CreateResource(context.Background(), ResourceForm{Title: "T", Type: "note"})
	require.Error(t, err)
	require.Equal(t, "File name is required", note.Message)

	note, err = c.CreateResource(context.Background(), ResourceForm{
		Title:    "T",
		Type:     "note",
		FileName: "t.pdf",
		File:     strings.NewReader("pdf"),
	})
	require.NoError(t, err)
	require.Equal(t, "Resource added successfully!", note.Message)
}
