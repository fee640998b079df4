package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/disamze/eduplatform-frontend/internal/controller"
	"github.com/disamze/eduplatform-frontend/internal/view"
)

func invalidForm() view.Notification {
	return view.Notification{Level: "error", Message: "Invalid form submission"}
}

// CreateResource handles the teacher upload form. The file part supplies the
// upload name; the rest binds from the form fields.
func (h *UIHandler) CreateResource(c *gin.Context) {
	form := controller.ResourceForm{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Type:        c.PostForm("type"),
	}
	target := resourceSection(form.Type)

	file, header, err := c.Request.FormFile("file")
	if err == nil {
		defer file.Close() //nolint:errcheck
		form.FileName = header.Filename
		form.File = file
	}

	note, _ := h.ctrl.CreateResource(c.Request.Context(), form)
	h.flashAndRedirect(c, note, target)
}

func (h *UIHandler) DeleteResource(c *gin.Context) {
	note, _ := h.ctrl.DeleteResource(c.Request.Context(), c.Param("id"))
	h.addFlash(c, note)
	redirectBack(c, "/app/notes")
}

func (h *UIHandler) CreateSchedule(c *gin.Context) {
	var form controller.ScheduleForm
	if err := c.ShouldBind(&form); err != nil {
		h.flashAndRedirect(c, invalidForm(), "/app/schedule")
		return
	}
	note, _ := h.ctrl.CreateSchedule(c.Request.Context(), form)
	h.flashAndRedirect(c, note, "/app/schedule")
}

func (h *UIHandler) DeleteSchedule(c *gin.Context) {
	note, _ := h.ctrl.DeleteSchedule(c.Request.Context(), c.Param("id"))
	h.flashAndRedirect(c, note, "/app/schedule")
}

func (h *UIHandler) CreateStudent(c *gin.Context) {
	var form controller.StudentForm
	if err := c.ShouldBind(&form); err != nil {
		h.flashAndRedirect(c, invalidForm(), "/app/students")
		return
	}
	note, _ := h.ctrl.CreateStudent(c.Request.Context(), form)
	h.flashAndRedirect(c, note, "/app/students")
}

func (h *UIHandler) DeleteStudent(c *gin.Context) {
	note, _ := h.ctrl.DeleteStudent(c.Request.Context(), c.Param("id"))
	h.flashAndRedirect(c, note, "/app/students")
}

func (h *UIHandler) CreateFee(c *gin.Context) {
	var form controller.FeeForm
	if err := c.ShouldBind(&form); err != nil {
		h.flashAndRedirect(c, invalidForm(), "/app/fees")
		return
	}
	note, _ := h.ctrl.CreateFee(c.Request.Context(), form)
	h.flashAndRedirect(c, note, "/app/fees")
}

func (h *UIHandler) CreateResult(c *gin.Context) {
	var form controller.ResultForm
	if err := c.ShouldBind(&form); err != nil {
		h.flashAndRedirect(c, invalidForm(), "/app/results")
		return
	}
	note, _ := h.ctrl.CreateResult(c.Request.Context(), form)
	h.flashAndRedirect(c, note, "/app/results")
}

func (h *UIHandler) DeleteResult(c *gin.Context) {
	note, _ := h.ctrl.DeleteResult(c.Request.Context(), c.Param("id"))
	h.flashAndRedirect(c, note, "/app/results")
}

func (h *UIHandler) CreateAnnouncement(c *gin.Context) {
	var form controller.AnnouncementForm
	if err := c.ShouldBind(&form); err != nil {
		h.flashAndRedirect(c, invalidForm(), "/app/announcements")
		return
	}
	note, _ := h.ctrl.CreateAnnouncement(c.Request.Context(), form)
	h.flashAndRedirect(c, note, "/app/announcements")
}

func (h *UIHandler) DeleteAnnouncement(c *gin.Context) {
	note, _ := h.ctrl.DeleteAnnouncement(c.Request.Context(), c.Param("id"))
	h.flashAndRedirect(c, note, "/app/announcements")
}

func (h *UIHandler) UpdateProfile(c *gin.Context) {
	var form controller.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		h.flashAndRedirect(c, invalidForm(), "/app/profile")
		return
	}
	note, _ := h.ctrl.UpdateProfile(c.Request.Context(), form)
	h.flashAndRedirect(c, note, "/app/profile")
}

func (h *UIHandler) UploadProfileImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		h.flashAndRedirect(c, view.Notification{Level: "error", Message: "An image file is required"}, "/app/profile")
		return
	}
	defer file.Close() //nolint:errcheck

	note, _ := h.ctrl.UploadProfileImage(c.Request.Context(), header.Filename, file)
	h.flashAndRedirect(c, note, "/app/profile")
}

func resourceSection(typ string) string {
	switch typ {
	case "question":
		return "/app/questions"
	case "book":
		return "/app/books"
	default:
		return "/app/notes"
	}
}
