package handlers

import (
	"net/http"

	"dormlife/internal/content"
	"dormlife/internal/middleware"
	"dormlife/internal/models"
	"dormlife/internal/utils"

	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	content *content.Service
}

func NewAnnouncementHandler(svc *content.Service) *AnnouncementHandler {
	return &AnnouncementHandler{content: svc}
}

type announcementRequest struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	IsPinned *bool   `json:"is_pinned"`
}

// List is public; pinned announcements come first.
func (h *AnnouncementHandler) List(c *gin.Context) {
	views, err := h.content.List(models.KindAnnouncement, content.ListFilter{})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"announcements": views})
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	student, _ := middleware.CurrentStudent(c)

	var req announcementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.content.Create(student, models.KindAnnouncement, content.Fields{
		Title:    req.Title,
		Body:     req.Body,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *AnnouncementHandler) Edit(c *gin.Context) {
	student, _ := middleware.CurrentStudent(c)
	id := utils.StringToUint(c.Param("id"))

	var req announcementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.content.Edit(student, models.KindAnnouncement, id, content.Fields{
		Title:    req.Title,
		Body:     req.Body,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *AnnouncementHandler) Delete(c *gin.Context) {
	student, _ := middleware.CurrentStudent(c)
	id := utils.StringToUint(c.Param("id"))

	if err := h.content.Remove(student, models.KindAnnouncement, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
