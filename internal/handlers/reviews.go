package handlers

import (
	"net/http"

	"dormlife/internal/content"
	"dormlife/internal/middleware"
	"dormlife/internal/models"
	"dormlife/internal/ratings"
	"dormlife/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	content *content.Service
}

func NewReviewHandler(svc *content.Service) *ReviewHandler {
	return &ReviewHandler{content: svc}
}

type reviewRequest struct {
	Title       *string `json:"title"`
	Body        *string `json:"body"`
	IsAnonymous *bool   `json:"is_anonymous"`
}

// List returns the current reviews for one dorm, with scores and edit
// history attached. Supports ?search= over title and body.
func (h *ReviewHandler) List(c *gin.Context) {
	dormID := utils.StringToUint(c.Param("id"))
	views, err := h.content.List(models.KindReview, content.ListFilter{
		DormID: &dormID,
		Search: c.Query("search"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": views})
}

func (h *ReviewHandler) Create(c *gin.Context) {
	student, _ := middleware.CurrentStudent(c)
	dormID := utils.StringToUint(c.Param("id"))

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.content.Create(student, models.KindReview, content.Fields{
		Title:       req.Title,
		Body:        req.Body,
		DormID:      &dormID,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ReviewHandler) Edit(c *gin.Context) {
	student, _ := middleware.CurrentStudent(c)
	id := utils.StringToUint(c.Param("id"))

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.content.Edit(student, models.KindReview, id, content.Fields{
		Title:       req.Title,
		Body:        req.Body,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	student, _ := middleware.CurrentStudent(c)
	id := utils.StringToUint(c.Param("id"))

	if err := h.content.Remove(student, models.KindReview, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReviewHandler) Vote(c *gin.Context) {
	student, _ := middleware.CurrentStudent(c)
	id := utils.StringToUint(c.Param("id"))

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.content.Vote(student, models.KindReview, id, req.direction()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// voteRequest is shared by every voting endpoint. A missing value means
// a neutral (retracted) vote, matching the permissive original API.
type voteRequest struct {
	Value string `json:"value"`
}

func (r voteRequest) direction() ratings.Direction {
	if r.Value == "" {
		return ratings.Neutral
	}
	return ratings.Direction(r.Value)
}
