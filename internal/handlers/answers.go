package handlers

import (
	"net/http"

	"dormlife/internal/content"
	"dormlife/internal/middleware"
	"dormlife/internal/models"
	"dormlife/internal/utils"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	content *content.Service
}

func NewAnswerHandler(svc *content.Service) *AnswerHandler {
	return &AnswerHandler{content: svc}
}

type answerRequest struct {
	Message *string `json:"message"`
}

// List returns the current answers of one question.
func (h *AnswerHandler) List(c *gin.Context) {
	questionID := utils.StringToUint(c.Param("id"))
	views, err := h.content.List(models.KindAnswer, content.ListFilter{
		QuestionID: &questionID,
		Search:     c.Query("search"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answers": views})
}

func (h *AnswerHandler) Create(c *gin.Context) {
	student, _ := middleware.CurrentStudent(c)
	questionID := utils.StringToUint(c.Param("id"))

	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.content.Create(student, models.KindAnswer, content.Fields{
		Body:       req.Message,
		QuestionID: &questionID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *AnswerHandler) Edit(c *gin.Context) {
	student, _ := middleware.CurrentStudent(c)
	id := utils.StringToUint(c.Param("id"))

	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.content.Edit(student, models.KindAnswer, id, content.Fields{
		Body: req.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *AnswerHandler) Delete(c *gin.Context) {
	student, _ := middleware.CurrentStudent(c)
	id := utils.StringToUint(c.Param("id"))

	if err := h.content.Remove(student, models.KindAnswer, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AnswerHandler) Vote(c *gin.Context) {
	student, _ := middleware.CurrentStudent(c)
	id := utils.StringToUint(c.Param("id"))

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.content.Vote(student, models.KindAnswer, id, req.direction()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
