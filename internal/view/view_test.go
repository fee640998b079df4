package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/disamze/eduplatform-frontend/internal/models"
)

var (
	teacher = &models.User{ID: "t1", Name: "Amina", Email: "amina@school.test", Role: models.RoleTeacher}
	student = &models.User{ID: "s1", Name: "Bilal", Email: "bilal@school.test", Role: models.RoleStudent}
)

func render(t *testing.T, p *Page) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, p))
	return buf.String()
}

func teacherNav(active string) []NavItem {
	return []NavItem{
		{Section: "dashboard", Label: "Dashboard", Active: active == "dashboard"},
		{Section: "students", Label: "Students", Active: active == "students"},
	}
}

func TestTeacherDashboardRendersStatsGrid(t *testing.T) {
	html := render(t, &Page{
		Section: "dashboard",
		Title:   "Dashboard",
		User:    teacher,
		Theme:   "light",
		Nav:     teacherNav("dashboard"),
		Data: DashboardData{
			Stats: &models.DashboardStats{Notes: 12, Questions: 8, Books: 3, Students: 25, Schedules: 4},
		},
	})

	require.Contains(t, html, "Welcome back, Amina!")
	require.Contains(t, html, "<h3>25</h3><p>Students</p>")
	require.Contains(t, html, "Add Note")
	require.NotContains(t, html, "overdue fee")
}

func TestResultsHideTeacherControlsFromStudents(t *testing.T) {
	page := &Page{
		Section: "results",
		Title:   "Results",
		User:    student,
		Theme:   "light",
		Data: ResultsData{
			Results: []models.Result{{
				ID:       "r1",
				ExamName: "Midterm",
				Subject:  "Math",
				Student:  &models.UserRef{Name: "Bilal"},
			}},
		},
	}
	html := render(t, page)

	require.Contains(t, html, "Midterm")
	require.NotContains(t, html, "Leaderboard")
	require.NotContains(t, html, "Save Result")
	require.NotContains(t, html, "Export CSV")

	page.User = teacher
	page.Data = ResultsData{
		Results:     []models.Result{{ID: "r1", ExamName: "Midterm", Student: &models.UserRef{Name: "Bilal"}}},
		Leaderboard: []models.LeaderboardEntry{{Rank: 1, Name: "Bilal", Email: "bilal@school.test"}},
	}
	html = render(t, page)

	require.Contains(t, html, "Leaderboard")
	require.Contains(t, html, "Save Result")
	require.Contains(t, html, "Export CSV")
}

func TestStudentDashboardShowsSingleOverdueAlert(t *testing.T) {
	html := render(t, &Page{
		Section: "dashboard",
		Title:   "Dashboard",
		User:    student,
		Theme:   "light",
		Data: DashboardData{
			Stats:        &models.DashboardStats{TotalResources: 30, UpcomingSchedules: 2},
			OverdueCount: 2,
		},
	})

	require.Equal(t, 1, strings.Count(html, "alert--danger"), "exactly one consolidated alert")
	require.Contains(t, html, "2 overdue fee")
	require.NotContains(t, html, "Add Note", "teacher quick actions must not render for students")
}

func TestStudentDashboardWithoutOverdueHasNoAlert(t *testing.T) {
	html := render(t, &Page{
		Section: "dashboard",
		User:    student,
		Data:    DashboardData{Stats: &models.DashboardStats{TotalResources: 30}},
	})
	require.NotContains(t, html, "alert--danger")
}

func TestResourceTitlesAreEscaped(t *testing.T) {
	html := render(t, &Page{
		Section: "notes",
		Title:   "Notes",
		User:    student,
		Data: ResourcesData{
			Type:      models.ResourceNote,
			TypeTitle: "Notes",
			Resources: []models.Resource{
				{ID: "r1", Title: `<script>alert("x")</script>`, FileName: "x.pdf", FileSize: 2048},
			},
		},
	})

	require.NotContains(t, html, `<script>alert`)
	require.Contains(t, html, "&lt;script&gt;")
	require.Contains(t, html, "2.00 KB")
}

func TestTeacherSeesUploadFormAndDeleteStudentDoesNot(t *testing.T) {
	data := ResourcesData{
		Type:      models.ResourceNote,
		TypeTitle: "Notes",
		Resources: []models.Resource{{ID: "r1", Title: "Algebra", FileName: "a.pdf"}},
	}

	teacherHTML := render(t, &Page{Section: "notes", User: teacher, Data: data})
	require.Contains(t, teacherHTML, `action="/app/resources"`)
	require.Contains(t, teacherHTML, "/app/resources/r1/delete")

	studentHTML := render(t, &Page{Section: "notes", User: student, Data: data})
	require.NotContains(t, studentHTML, `action="/app/resources"`)
	require.NotContains(t, studentHTML, "/app/resources/r1/delete")
	require.Contains(t, studentHTML, "/app/resources/r1/download")
}

func TestUnknownSectionRendersNotFoundPanel(t *testing.T) {
	html := render(t, &Page{Section: "bogus", User: teacher})
	require.Contains(t, html, "Section Not Found")
}

func TestErrorPanelReplacesContent(t *testing.T) {
	html := render(t, &Page{
		Section: "dashboard",
		User:    teacher,
		Error:   &ErrorPanel{Title: "Something Went Wrong", Message: "network failure", Reload: true},
	})
	require.Contains(t, html, "Something Went Wrong")
	require.Contains(t, html, "network failure")
	require.Contains(t, html, `href="/app/dashboard"`)
	require.NotContains(t, html, "Welcome back")
}

func TestNavBadgeRendersOnlyWhenPositive(t *testing.T) {
	page := &Page{
		Section: "dashboard",
		User:    student,
		Nav: []NavItem{
			{Section: "notices", Label: "Notice Board", Badge: 3},
			{Section: "dashboard", Label: "Dashboard"},
		},
		Data: DashboardData{Stats: &models.DashboardStats{}},
	}
	html := render(t, page)
	require.Contains(t, html, `<span class="nav-badge">3</span>`)

	page.Nav[0].Badge = 0
	html = render(t, page)
	require.NotContains(t, html, "nav-badge")
}

func TestFlashNotificationsRender(t *testing.T) {
	html := render(t, &Page{
		Section: "schedule",
		User:    teacher,
		Flash:   []Notification{{Level: "success", Message: "Schedule created successfully!"}},
		Data:    SchedulesData{},
	})
	require.Contains(t, html, "notification--success")
	require.Contains(t, html, "Schedule created successfully!")
}

func TestNoticesMarkUnreadStyling(t *testing.T) {
	html := render(t, &Page{
		Section: "notices",
		User:    student,
		Data: NoticesData{
			UserID: student.ID,
			Announcements: []models.Announcement{
				{ID: "a1", Title: "Unseen", Priority: models.AnnouncementHigh, CreatedAt: time.Now()},
				{ID: "a2", Title: "Seen", Priority: models.AnnouncementLow, CreatedAt: time.Now(), ReadBy: []string{student.ID}},
			},
		},
	})
	require.Equal(t, 1, strings.Count(html, ` unread"`))
	require.Contains(t, html, "priority-badge--high")
}

func TestLoginPageEchoesEmailAndError(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Login(&buf, LoginData{Theme: "dark", Email: "a@b.c", Error: "Invalid credentials"}))

	html := buf.String()
	require.Contains(t, html, `value="a@b.c"`)
	require.Contains(t, html, "Invalid credentials")
	require.Contains(t, html, `data-theme="dark"`)
}

func TestSearchInputCarriesDebounceAttribute(t *testing.T) {
	html := render(t, &Page{
		Section:    "notes",
		User:       student,
		Searchable: true,
		Query:      "algebra",
		Data:       ResourcesData{TypeTitle: "Notes"},
	})
	require.Contains(t, html, `data-debounce="300"`)
	require.Contains(t, html, `value="algebra"`)
	require.Contains(t, html, `name="section" value="notes"`)
}

func TestFormatFileSize(t *testing.T) {
	require.Equal(t, "0 Bytes", formatFileSize(0))
	require.Equal(t, "512 Bytes", formatFileSize(512))
	require.Equal(t, "1.00 KB", formatFileSize(1024))
	require.Equal(t, "1.50 MB", formatFileSize(1572864))
}

func TestFormatDateToleratesMixedShapes(t *testing.T) {
	require.Equal(t, "Sep 7, 2026", formatDate("2026-09-07"))
	require.Equal(t, "Sep 7, 2026", formatDate("2026-09-07T10:00:00Z"))
	require.Equal(t, "next friday", formatDate("next friday"))
	require.Equal(t, "", formatDate(""))
}

func TestFormatTimeHandlesOptionalTimestamps(t *testing.T) {
	ts := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "Mar 5, 2026", formatTime(ts))
	require.Equal(t, "Mar 5, 2026", formatTime(&ts))
	require.Equal(t, "", formatTime((*time.Time)(nil)))
}
