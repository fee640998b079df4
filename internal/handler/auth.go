package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/disamze/eduplatform-frontend/internal/view"
	apperrors "github.com/disamze/eduplatform-frontend/pkg/errors"
)

// ShowLogin renders the logged-out screen. A live session skips straight to
// the dashboard.
func (h *UIHandler) ShowLogin(c *gin.Context) {
	if h.ctrl.LoggedIn() {
		c.Redirect(http.StatusFound, "/app/dashboard")
		return
	}
	h.renderLogin(c, http.StatusOK, view.LoginData{Theme: h.ctrl.Theme()})
}

// Login authenticates the submitted credentials. Failure re-renders the form
// with the email echoed back so only the password must be retyped.
func (h *UIHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if err := h.ctrl.Login(c.Request.Context(), email, password); err != nil {
		appErr := apperrors.FromError(err)
		h.renderLogin(c, appErr.Status, view.LoginData{
			Theme: h.ctrl.Theme(),
			Email: email,
			Error: appErr.Message,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/app/dashboard")
}

// Logout ends the session and returns to the login screen.
func (h *UIHandler) Logout(c *gin.Context) {
	h.ctrl.Logout()
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *UIHandler) renderLogin(c *gin.Context, status int, data view.LoginData) {
	var buf bytes.Buffer
	if err := h.renderer.Login(&buf, data); err != nil {
		h.log.Error("login render failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
