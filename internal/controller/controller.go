// Package controller drives one browser-facing session: login state, section
// navigation, mutations and the unread-announcement poll. It owns no data of
// record; every read goes to the backend and every screen is rebuilt from the
// response.
package controller

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/disamze/eduplatform-frontend/internal/client"
	"github.com/disamze/eduplatform-frontend/internal/models"
	"github.com/disamze/eduplatform-frontend/internal/view"
	apperrors "github.com/disamze/eduplatform-frontend/pkg/errors"
)

// Transport is the backend surface the controller needs. *client.Client
// satisfies it; tests substitute a fake.
type Transport interface {
	Login(ctx context.Context, email, password string) (*client.LoginResponse, error)
	Register(ctx context.Context, req client.RegisterRequest) (*models.User, error)
	SetToken(token string) error
	ClearToken() error
	HasToken() bool

	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, update client.ProfileUpdate) (*models.User, error)
	UploadProfileImage(ctx context.Context, filename string, image io.Reader) (*models.User, error)
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)

	Resources(ctx context.Context, typ models.ResourceType, search string) ([]models.Resource, error)
	CreateResource(ctx context.Context, req client.CreateResourceRequest) (*models.Resource, error)
	DeleteResource(ctx context.Context, id string) error
	DownloadResource(ctx context.Context, id, fallbackName string) (*client.Download, error)

	Schedules(ctx context.Context) ([]models.Schedule, error)
	CreateSchedule(ctx context.Context, req client.CreateScheduleRequest) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error

	Students(ctx context.Context) ([]models.Student, error)
	CreateStudent(ctx context.Context, req client.CreateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error

	Fees(ctx context.Context) ([]models.FeeRecord, error)
	CreateFee(ctx context.Context, req client.CreateFeeRequest) (*models.FeeRecord, error)
	FeeStatus(ctx context.Context) ([]models.FeeRecord, error)
	FeeStats(ctx context.Context) (*models.FeeStats, error)

	Results(ctx context.Context) ([]models.Result, error)
	CreateResult(ctx context.Context, req client.ResultRequest) (*models.Result, error)
	DeleteResult(ctx context.Context, id string) error
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)

	Announcements(ctx context.Context) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, req client.AnnouncementRequest) (*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error
	MarkAnnouncementRead(ctx context.Context, id string) error
	UnreadAnnouncementCount(ctx context.Context) (int, error)
}

// Preferences persists the values that survive restarts.
type Preferences interface {
	Theme() string
	SaveTheme(theme string) error
}

// Options tunes session behavior; zero values fall back to defaults.
type Options struct {
	PollInterval time.Duration
}

const defaultPollInterval = 30 * time.Second

// Controller is safe for concurrent use by the HTTP handlers.
type Controller struct {
	api      Transport
	prefs    Preferences
	log      *zap.Logger
	validate *validator.Validate

	pollInterval time.Duration

	// gen invalidates in-flight section loads: navigating bumps it, and a
	// load whose snapshot no longer matches is discarded instead of
	// overwriting the newer screen.
	gen atomic.Uint64

	mu         sync.Mutex
	user       *models.User
	unread     int
	pollCancel context.CancelFunc
	pollDone   chan struct{}
}

func New(api Transport, prefs Preferences, log *zap.Logger, opts Options) *Controller {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Controller{
		api:          api,
		prefs:        prefs,
		log:          log,
		validate:     validator.New(),
		pollInterval: interval,
	}
}

// Bootstrap restores a previous session. With a stored token it makes exactly
// one profile probe; any failure clears the token and leaves the session
// logged out. It never retries.
func (c *Controller) Bootstrap(ctx context.Context) {
	if !c.api.HasToken() {
		return
	}
	user, err := c.api.Profile(ctx)
	if err != nil {
		c.log.Info("stored session rejected, clearing token", zap.Error(err))
		if err := c.api.ClearToken(); err != nil {
			c.log.Warn("failed to clear stored token", zap.Error(err))
		}
		return
	}
	c.establishSession(user)
	c.log.Info("session restored", zap.String("user", user.Email), zap.String("role", string(user.Role)))
}

// Login authenticates and, on success, enters the main application state.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return apperrors.Clone(apperrors.ErrValidation, "Email and password are required")
	}
	resp, err := c.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := c.api.SetToken(resp.Token); err != nil {
		c.log.Warn("failed to persist token", zap.Error(err))
	}
	c.establishSession(resp.User)
	c.log.Info("login", zap.String("user", resp.User.Email), zap.String("role", string(resp.User.Role)))
	return nil
}

// Logout tears the session down: token gone, user gone, poll stopped.
func (c *Controller) Logout() {
	c.stopPolling()
	if err := c.api.ClearToken(); err != nil {
		c.log.Warn("failed to clear token", zap.Error(err))
	}
	c.mu.Lock()
	c.user = nil
	c.unread = 0
	c.mu.Unlock()
	c.gen.Add(1)
	c.log.Info("logout")
}

func (c *Controller) establishSession(user *models.User) {
	c.mu.Lock()
	c.user = user
	c.unread = 0
	c.mu.Unlock()
	if user.Role == models.RoleStudent {
		c.startPolling()
	}
}

// LoggedIn reports whether a user session is active.
func (c *Controller) LoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user != nil
}

// CurrentUser returns the session's user snapshot, nil when logged out.
func (c *Controller) CurrentUser() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// Theme returns the persisted theme preference.
func (c *Controller) Theme() string {
	return c.prefs.Theme()
}

// ToggleTheme flips between light and dark and persists the result.
func (c *Controller) ToggleTheme() string {
	next := "dark"
	if c.prefs.Theme() == "dark" {
		next = "light"
	}
	if err := c.prefs.SaveTheme(next); err != nil {
		c.log.Warn("failed to persist theme", zap.Error(err))
	}
	return next
}

// Download streams a resource file. Role-agnostic: both roles may download.
func (c *Controller) Download(ctx context.Context, id, fallbackName string) (*client.Download, error) {
	return c.api.DownloadResource(ctx, id, fallbackName)
}

// nav builds the role-gated sidebar. Teacher-only entries never appear for
// students and the notices board never appears for teachers.
func (c *Controller) nav(active string) []view.NavItem {
	c.mu.Lock()
	user := c.user
	unread := c.unread
	c.mu.Unlock()

	type entry struct {
		section string
		label   string
		badge   int
	}
	var entries []entry
	if user.IsTeacher() {
		entries = []entry{
			{"dashboard", "Dashboard", 0},
			{"notes", "Notes", 0},
			{"questions", "Questions", 0},
			{"books", "Books", 0},
			{"schedule", "Schedule", 0},
			{"students", "Students", 0},
			{"fees", "Fee Management", 0},
			{"results", "Results", 0},
			{"announcements", "Announcements", 0},
			{"profile", "Profile", 0},
			{"settings", "Settings", 0},
		}
	} else {
		entries = []entry{
			{"dashboard", "Dashboard", 0},
			{"notes", "Notes", 0},
			{"questions", "Questions", 0},
			{"books", "Books", 0},
			{"schedule", "Schedule", 0},
			{"results", "Results", 0},
			{"notices", "Notice Board", unread},
			{"profile", "Profile", 0},
			{"settings", "Settings", 0},
		}
	}

	items := make([]view.NavItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, view.NavItem{
			Section: e.section,
			Label:   e.label,
			Badge:   e.badge,
			Active:  e.section == active,
		})
	}
	return items
}
