package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/disamze/eduplatform-frontend/internal/view"
	apperrors "github.com/disamze/eduplatform-frontend/pkg/errors"
)

// DownloadResource streams a resource file to the browser with its resolved
// filename and content type passed through.
func (h *UIHandler) DownloadResource(c *gin.Context) {
	id := c.Param("id")
	dl, err := h.ctrl.Download(c.Request.Context(), id, c.Query("name"))
	if err != nil {
		appErr := apperrors.FromError(err)
		h.log.Warn("download failed", zap.String("id", id), zap.Error(err))
		h.addFlash(c, view.Notification{Level: "error", Message: appErr.Message})
		redirectBack(c, "/app/notes")
		return
	}

	contentType := dl.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dl.Filename))
	c.Data(http.StatusOK, contentType, dl.Data)
}

// ExportResultsCSV serves the teacher's result export.
func (h *UIHandler) ExportResultsCSV(c *gin.Context) {
	data, err := h.ctrl.ResultsCSV(c.Request.Context())
	if err != nil {
		h.exportError(c, "results export", err, "/app/results")
		return
	}
	filename := fmt.Sprintf("results-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

// ExportLeaderboardPDF serves the teacher's leaderboard export.
func (h *UIHandler) ExportLeaderboardPDF(c *gin.Context) {
	data, err := h.ctrl.LeaderboardPDF(c.Request.Context())
	if err != nil {
		h.exportError(c, "leaderboard export", err, "/app/results")
		return
	}
	filename := fmt.Sprintf("leaderboard-%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *UIHandler) exportError(c *gin.Context, what string, err error, fallback string) {
	h.log.Warn(what+" failed", zap.Error(err))
	h.addFlash(c, view.Notification{Level: "error", Message: apperrors.FromError(err).Message})
	redirectBack(c, fallback)
}
