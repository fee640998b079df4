// Package view renders application state into HTML. All interpolated values
// go through html/template escaping; markup is never assembled by string
// concatenation. The stylesheet is a static asset served once at startup.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/disamze/eduplatform-frontend/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Notification is a transient banner shown once after a mutation.
type Notification struct {
	Level   string // success | error | info
	Message string
}

// NavItem is one sidebar entry; Badge > 0 renders a count bubble.
type NavItem struct {
	Section string
	Label   string
	Badge   int
	Active  bool
}

// ErrorPanel replaces the content region when a section load fails. No
// partial rendering of stale data happens around it.
type ErrorPanel struct {
	Title   string
	Message string
	Reload  bool
}

// Page is the full view state for one rendered screen.
type Page struct {
	Section    string
	Title      string
	User       *models.User
	Theme      string
	Nav        []NavItem
	Unread     int
	Query      string
	Searchable bool
	Flash      []Notification
	Error      *ErrorPanel
	Data       interface{}
}

// LoginData is the view state for the logged-out screen.
type LoginData struct {
	Theme string
	Email string
	Error string
}

// Per-section view models.
type (
	DashboardData struct {
		Stats        *models.DashboardStats
		FeeAlerts    []models.FeeRecord
		OverdueCount int
	}

	ResourcesData struct {
		Type      models.ResourceType
		TypeTitle string
		Resources []models.Resource
	}

	SchedulesData struct {
		Schedules []models.Schedule
	}

	StudentsData struct {
		Students []models.Student
	}

	FeesData struct {
		Records  []models.FeeRecord
		Stats    *models.FeeStats
		Students []models.Student
	}

	ResultsData struct {
		Results     []models.Result
		Leaderboard []models.LeaderboardEntry
		Students    []models.Student
	}

	AnnouncementsData struct {
		Announcements []models.Announcement
	}

	NoticesData struct {
		Announcements []models.Announcement
		UserID        string
	}

	ProfileData struct {
		User *models.User
	}

	SettingsData struct {
		Theme string
	}
)

// Renderer holds the parsed template set.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcMap()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page renders a full screen: the section template (or error panel) inside
// the layout shell.
func (r *Renderer) Page(w io.Writer, p *Page) error {
	var content bytes.Buffer
	switch {
	case p.Error != nil:
		if err := r.tmpl.ExecuteTemplate(&content, "error_panel", p); err != nil {
			return err
		}
	default:
		name := "section:" + p.Section
		if r.tmpl.Lookup(name) == nil {
			missing := *p
			missing.Error = &ErrorPanel{Title: "Section Not Found", Message: "The requested section could not be found."}
			if err := r.tmpl.ExecuteTemplate(&content, "error_panel", &missing); err != nil {
				return err
			}
			break
		}
		if err := r.tmpl.ExecuteTemplate(&content, name, p); err != nil {
			return err
		}
	}

	payload := struct {
		*Page
		Content template.HTML
	}{Page: p, Content: template.HTML(content.String())}
	return r.tmpl.ExecuteTemplate(w, "layout", payload)
}

// Login renders the logged-out screen.
func (r *Renderer) Login(w io.Writer, d LoginData) error {
	return r.tmpl.ExecuteTemplate(w, "login", d)
}

// ResourceGrid renders just the resource card grid, used by the live search
// to swap the filtered result set in place.
func (r *Renderer) ResourceGrid(w io.Writer, p *Page) error {
	return r.tmpl.ExecuteTemplate(w, "resource_grid", p)
}

// Static exposes the embedded stylesheet and assets.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// embed guarantees the directory exists
		panic(err)
	}
	return http.FS(sub)
}
