package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/disamze/eduplatform-frontend/internal/controller"
)

// Section renders one full application screen.
func (h *UIHandler) Section(c *gin.Context) {
	section := c.Param("section")
	page, err := h.ctrl.LoadSection(c.Request.Context(), section, "")
	if err != nil {
		h.sectionError(c, section, err)
		return
	}
	h.renderPage(c, http.StatusOK, page)
}

// searchable limits the live search to the resource sections it is scoped to.
var searchable = map[string]bool{
	"notes":     true,
	"questions": true,
	"books":     true,
}

// Search re-renders the active resource section filtered by the query. An
// empty query is an unfiltered reload. Requests marked as XMLHttpRequest get
// just the card grid so the client can swap it in place.
func (h *UIHandler) Search(c *gin.Context) {
	section := c.Query("section")
	if !searchable[section] {
		c.Redirect(http.StatusFound, "/app/dashboard")
		return
	}
	query := c.Query("q")

	page, err := h.ctrl.LoadSection(c.Request.Context(), section, query)
	if err != nil {
		h.sectionError(c, section, err)
		return
	}

	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		var buf bytes.Buffer
		if err := h.renderer.ResourceGrid(&buf, page); err != nil {
			h.log.Error("fragment render failed", zap.String("section", section), zap.Error(err))
			c.String(http.StatusInternalServerError, "internal error")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
		return
	}
	h.renderPage(c, http.StatusOK, page)
}

// ToggleTheme flips the persisted theme and returns to the submitting page.
func (h *UIHandler) ToggleTheme(c *gin.Context) {
	h.ctrl.ToggleTheme()
	redirectBack(c, "/app/settings")
}

func (h *UIHandler) sectionError(c *gin.Context, section string, err error) {
	switch {
	case errors.Is(err, controller.ErrStale):
		// A newer navigation superseded this load; the result is dropped.
		c.Status(http.StatusNoContent)
	case errors.Is(err, controller.ErrLoggedOut):
		c.Redirect(http.StatusFound, "/login")
	default:
		h.log.Error("section failed", zap.String("section", section), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
	}
}
