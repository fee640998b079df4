// Package handler exposes the server-rendered UI over gin. Every screen is a
// full page render; mutations follow a post-redirect-get flow with one-shot
// flash notifications.
package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/disamze/eduplatform-frontend/internal/controller"
	"github.com/disamze/eduplatform-frontend/internal/middleware"
	"github.com/disamze/eduplatform-frontend/internal/view"
)

// UIHandler wires HTTP routes to the session controller and the renderer.
type UIHandler struct {
	ctrl     *controller.Controller
	renderer *view.Renderer
	store    *sessions.CookieStore
	metrics  *middleware.Metrics
	log      *zap.Logger

	exportsEnabled bool
}

// Options configures the handler surface.
type Options struct {
	SessionSecret  string
	ExportsEnabled bool
}

// New builds the UI handler. The session cookie only carries one-shot flash
// notifications; authentication state lives in the controller.
func New(ctrl *controller.Controller, renderer *view.Renderer, metrics *middleware.Metrics, log *zap.Logger, opts Options) *UIHandler {
	store := sessions.NewCookieStore([]byte(opts.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &UIHandler{
		ctrl:           ctrl,
		renderer:       renderer,
		store:          store,
		metrics:        metrics,
		log:            log,
		exportsEnabled: opts.ExportsEnabled,
	}
}

// Routes registers every UI route on the engine.
func (h *UIHandler) Routes(r *gin.Engine) {
	r.StaticFS("/static", view.Static())
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(h.metrics.Handler()))

	r.GET("/", h.Root)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	app := r.Group("/app", h.RequireSession)
	app.GET("/:section", h.Section)
	app.GET("/search", h.Search)
	app.POST("/settings/theme", h.ToggleTheme)

	app.POST("/resources", h.CreateResource)
	app.POST("/resources/:id/delete", h.DeleteResource)
	app.GET("/resources/:id/download", h.DownloadResource)

	app.POST("/schedules", h.CreateSchedule)
	app.POST("/schedules/:id/delete", h.DeleteSchedule)

	app.POST("/students", h.CreateStudent)
	app.POST("/students/:id/delete", h.DeleteStudent)

	app.POST("/fees", h.CreateFee)

	app.POST("/results", h.CreateResult)
	app.POST("/results/:id/delete", h.DeleteResult)

	app.POST("/announcements", h.CreateAnnouncement)
	app.POST("/announcements/:id/delete", h.DeleteAnnouncement)

	app.POST("/profile", h.UpdateProfile)
	app.POST("/profile/image", h.UploadProfileImage)

	if h.exportsEnabled {
		app.GET("/export/results.csv", h.ExportResultsCSV)
		app.GET("/export/leaderboard.pdf", h.ExportLeaderboardPDF)
	}
}

// RequireSession redirects logged-out requests to the login screen.
func (h *UIHandler) RequireSession(c *gin.Context) {
	if !h.ctrl.LoggedIn() {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}

// Root sends the visitor wherever their session state belongs.
func (h *UIHandler) Root(c *gin.Context) {
	if h.ctrl.LoggedIn() {
		c.Redirect(http.StatusFound, "/app/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// Health reports liveness.
func (h *UIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
}

// renderPage executes the layout into a buffer first so a template failure
// produces a clean 500 instead of a half-written body.
func (h *UIHandler) renderPage(c *gin.Context, status int, page *view.Page) {
	page.Flash = h.takeFlashes(c)

	start := time.Now()
	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, page); err != nil {
		h.log.Error("page render failed", zap.String("section", page.Section), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	h.metrics.ObserveRender(time.Since(start))

	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// redirectBack returns to the page the form was submitted from.
func redirectBack(c *gin.Context, fallback string) {
	target := c.GetHeader("Referer")
	if target == "" {
		target = fallback
	}
	c.Redirect(http.StatusSeeOther, target)
}
