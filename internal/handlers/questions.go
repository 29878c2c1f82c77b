package handlers

import (
	"net/http"

	"dormlife/internal/content"
	"dormlife/internal/middleware"
	"dormlife/internal/models"
	"dormlife/internal/utils"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	content *content.Service
}

func NewQuestionHandler(svc *content.Service) *QuestionHandler {
	return &QuestionHandler{content: svc}
}

type questionRequest struct {
	Title       *string `json:"title"`
	DormID      *uint   `json:"dorm"`
	IsAnonymous *bool   `json:"is_anonymous"`
}

// List returns current questions. With ?dorm= it lists that dorm's
// questions; without it, only general questions (no dorm attached).
func (h *QuestionHandler) List(c *gin.Context) {
	filter := content.ListFilter{Search: c.Query("search")}
	if dorm := c.Query("dorm"); dorm != "" {
		dormID := utils.StringToUint(dorm)
		filter.DormID = &dormID
	} else {
		filter.GeneralOnly = true
	}

	views, err := h.content.List(models.KindQuestion, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": views})
}

func (h *QuestionHandler) Create(c *gin.Context) {
	student, _ := middleware.CurrentStudent(c)

	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.content.Create(student, models.KindQuestion, content.Fields{
		Title:       req.Title,
		DormID:      req.DormID,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *QuestionHandler) Edit(c *gin.Context) {
	student, _ := middleware.CurrentStudent(c)
	id := utils.StringToUint(c.Param("id"))

	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.content.Edit(student, models.KindQuestion, id, content.Fields{
		Title:       req.Title,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *QuestionHandler) Delete(c *gin.Context) {
	student, _ := middleware.CurrentStudent(c)
	id := utils.StringToUint(c.Param("id"))

	if err := h.content.Remove(student, models.KindQuestion, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuestionHandler) Vote(c *gin.Context) {
	student, _ := middleware.CurrentStudent(c)
	id := utils.StringToUint(c.Param("id"))

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.content.Vote(student, models.KindQuestion, id, req.direction()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
