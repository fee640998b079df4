package handler

import (
	"encoding/gob"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/disamze/eduplatform-frontend/internal/view"
)

const sessionName = "eduplatform"

func init() {
	// Flash payloads ride the cookie via gob.
	gob.Register(view.Notification{})
}

// addFlash queues a one-shot notification for the next rendered page.
func (h *UIHandler) addFlash(c *gin.Context, n view.Notification) {
	session, err := h.store.Get(c.Request, sessionName)
	if err != nil {
		// A stale or tampered cookie decodes into a fresh session; only a
		// save failure is worth logging.
		h.log.Debug("session decode failed", zap.Error(err))
	}
	session.AddFlash(n)
	if err := session.Save(c.Request, c.Writer); err != nil {
		h.log.Warn("failed to save flash", zap.Error(err))
	}
}

// takeFlashes drains the queued notifications.
func (h *UIHandler) takeFlashes(c *gin.Context) []view.Notification {
	session, _ := h.store.Get(c.Request, sessionName)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(c.Request, c.Writer); err != nil {
		h.log.Warn("failed to clear flashes", zap.Error(err))
	}
	out := make([]view.Notification, 0, len(raw))
	for _, f := range raw {
		if n, ok := f.(view.Notification); ok {
			out = append(out, n)
		}
	}
	return out
}

// flashAndRedirect completes the post-redirect-get cycle for a mutation.
func (h *UIHandler) flashAndRedirect(c *gin.Context, n view.Notification, target string) {
	h.addFlash(c, n)
	c.Redirect(http.StatusSeeOther, target)
}
