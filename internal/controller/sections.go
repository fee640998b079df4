package controller

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/disamze/eduplatform-frontend/internal/models"
	"github.com/disamze/eduplatform-frontend/internal/view"
	apperrors "github.com/disamze/eduplatform-frontend/pkg/errors"
)

// ErrStale marks a section load that was superseded by later navigation. The
// caller drops the result silently.
var ErrStale = errors.New("section load superseded")

// ErrLoggedOut is returned when a section is requested without a session.
var ErrLoggedOut = errors.New("no active session")

type sectionPayload struct {
	title      string
	searchable bool
	data       interface{}
}

type sectionLoader func(ctx context.Context, user *models.User, query string) (*sectionPayload, error)

func (c *Controller) loaders() map[string]sectionLoader {
	return map[string]sectionLoader{
		"dashboard":     c.loadDashboard,
		"notes":         c.resourceLoader(models.ResourceNote, "Notes"),
		"questions":     c.resourceLoader(models.ResourceQuestion, "Questions"),
		"books":         c.resourceLoader(models.ResourceBook, "Books"),
		"schedule":      c.loadSchedule,
		"students":      c.loadStudents,
		"fees":          c.loadFees,
		"results":       c.loadResults,
		"announcements": c.loadAnnouncements,
		"notices":       c.loadNotices,
		"profile":       c.loadProfile,
		"settings":      c.loadSettings,
	}
}

// teacherSections are never served to students, and notices is never served
// to teachers. The gate mirrors the sidebar so a hand-typed URL cannot reach
// a section the navigation would not offer.
var teacherSections = map[string]bool{
	"students":      true,
	"fees":          true,
	"announcements": true,
}

func sectionAllowed(section string, user *models.User) bool {
	if teacherSections[section] {
		return user.IsTeacher()
	}
	if section == "notices" {
		return !user.IsTeacher()
	}
	return true
}

// LoadSection fetches everything the named section needs and assembles the
// full page state. Each call invalidates any load still in flight; a load
// that finishes after being superseded returns ErrStale and must not be
// rendered.
func (c *Controller) LoadSection(ctx context.Context, section, query string) (*view.Page, error) {
	c.mu.Lock()
	user := c.user
	c.mu.Unlock()
	if user == nil {
		return nil, ErrLoggedOut
	}

	gen := c.gen.Add(1)

	page := &view.Page{
		Section: section,
		User:    user,
		Theme:   c.prefs.Theme(),
		Query:   query,
	}

	loader, ok := c.loaders()[section]
	if !ok || !sectionAllowed(section, user) {
		page.Title = "Not Found"
		page.Nav = c.nav(section)
		page.Unread = c.UnreadCount()
		page.Error = &view.ErrorPanel{
			Title:   "Section Not Found",
			Message: "The requested section could not be found.",
		}
		return page, nil
	}

	payload, err := loader(ctx, user, query)
	if c.gen.Load() != gen {
		return nil, ErrStale
	}
	// Nav and badge are read after the load so a notices visit that marked
	// announcements read shows the refreshed count.
	page.Nav = c.nav(section)
	page.Unread = c.UnreadCount()
	if err != nil {
		c.log.Error("section load failed", zap.String("section", section), zap.Error(err))
		page.Title = "Something Went Wrong"
		page.Error = &view.ErrorPanel{
			Title:   "Something Went Wrong",
			Message: apperrors.FromError(err).Message,
			Reload:  true,
		}
		return page, nil
	}

	page.Title = payload.title
	page.Searchable = payload.searchable
	page.Data = payload.data
	return page, nil
}

func (c *Controller) loadDashboard(ctx context.Context, user *models.User, _ string) (*sectionPayload, error) {
	stats, err := c.api.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}
	data := view.DashboardData{Stats: stats}
	if !user.IsTeacher() {
		records, err := c.api.FeeStatus(ctx)
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			if rec.Status == models.FeeOverdue {
				data.OverdueCount++
				data.FeeAlerts = append(data.FeeAlerts, rec)
			}
		}
	}
	return &sectionPayload{title: "Dashboard", data: data}, nil
}

func (c *Controller) resourceLoader(typ models.ResourceType, title string) sectionLoader {
	return func(ctx context.Context, _ *models.User, query string) (*sectionPayload, error) {
		resources, err := c.api.Resources(ctx, typ, query)
		if err != nil {
			return nil, err
		}
		return &sectionPayload{
			title:      title,
			searchable: true,
			data:       view.ResourcesData{Type: typ, TypeTitle: title, Resources: resources},
		}, nil
	}
}

func (c *Controller) loadSchedule(ctx context.Context, _ *models.User, _ string) (*sectionPayload, error) {
	schedules, err := c.api.Schedules(ctx)
	if err != nil {
		return nil, err
	}
	return &sectionPayload{title: "Class Schedule", data: view.SchedulesData{Schedules: schedules}}, nil
}

func (c *Controller) loadStudents(ctx context.Context, _ *models.User, _ string) (*sectionPayload, error) {
	students, err := c.api.Students(ctx)
	if err != nil {
		return nil, err
	}
	return &sectionPayload{title: "Students", data: view.StudentsData{Students: students}}, nil
}

func (c *Controller) loadFees(ctx context.Context, _ *models.User, _ string) (*sectionPayload, error) {
	records, err := c.api.Fees(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := c.api.FeeStats(ctx)
	if err != nil {
		return nil, err
	}
	students, err := c.api.Students(ctx)
	if err != nil {
		return nil, err
	}
	return &sectionPayload{
		title: "Fee Management",
		data:  view.FeesData{Records: records, Stats: stats, Students: students},
	}, nil
}

func (c *Controller) loadResults(ctx context.Context, user *models.User, _ string) (*sectionPayload, error) {
	results, err := c.api.Results(ctx)
	if err != nil {
		return nil, err
	}
	data := view.ResultsData{Results: results}
	// The leaderboard endpoint is teacher-only.
	if user.IsTeacher() {
		leaderboard, err := c.api.Leaderboard(ctx)
		if err != nil {
			return nil, err
		}
		students, err := c.api.Students(ctx)
		if err != nil {
			return nil, err
		}
		data.Leaderboard = leaderboard
		data.Students = students
	}
	return &sectionPayload{title: "Results", data: data}, nil
}

func (c *Controller) loadAnnouncements(ctx context.Context, _ *models.User, _ string) (*sectionPayload, error) {
	announcements, err := c.api.Announcements(ctx)
	if err != nil {
		return nil, err
	}
	return &sectionPayload{title: "Announcements", data: view.AnnouncementsData{Announcements: announcements}}, nil
}

// loadNotices renders the student notice board. Visiting it marks every
// unread announcement read, one call per announcement, then refreshes the
// badge from the dedicated count endpoint.
func (c *Controller) loadNotices(ctx context.Context, user *models.User, _ string) (*sectionPayload, error) {
	announcements, err := c.api.Announcements(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range announcements {
		if a.ReadByUser(user.ID) {
			continue
		}
		if err := c.api.MarkAnnouncementRead(ctx, a.ID); err != nil {
			c.log.Warn("mark announcement read failed", zap.String("id", a.ID), zap.Error(err))
		}
	}
	c.refreshUnread(ctx)
	return &sectionPayload{
		title: "Notice Board",
		data:  view.NoticesData{Announcements: announcements, UserID: user.ID},
	}, nil
}

func (c *Controller) loadProfile(ctx context.Context, user *models.User, _ string) (*sectionPayload, error) {
	fresh, err := c.api.Profile(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.user = fresh
	c.mu.Unlock()
	return &sectionPayload{title: "Profile", data: view.ProfileData{User: fresh}}, nil
}

func (c *Controller) loadSettings(_ context.Context, _ *models.User, _ string) (*sectionPayload, error) {
	return &sectionPayload{title: "Settings", data: view.SettingsData{Theme: c.prefs.Theme()}}, nil
}
