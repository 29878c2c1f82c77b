package handlers

import (
	"net/http"

	"dormlife/internal/dorms"
	"dormlife/internal/middleware"
	"dormlife/internal/utils"

	"github.com/gin-gonic/gin"
)

type DormHandler struct {
	dorms *dorms.Service
}

func NewDormHandler(svc *dorms.Service) *DormHandler {
	return &DormHandler{dorms: svc}
}

// List is public: all dorms with aggregate scores, ?search= by name.
func (h *DormHandler) List(c *gin.Context) {
	list, err := h.dorms.List(c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dorms": list})
}

// Create accepts either a building key to scrape or manual attributes.
func (h *DormHandler) Create(c *gin.Context) {
	var req dorms.Values
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var err error
	if req.Key != nil && *req.Key != "" {
		_, err = h.dorms.CreateFromKey(c.Request.Context(), *req.Key)
	} else {
		_, err = h.dorms.Create(req)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *DormHandler) Update(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var req dorms.Values
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	dorm, err := h.dorms.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dorm)
}

func (h *DormHandler) Delete(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	if err := h.dorms.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DormHandler) Refresh(c *gin.Context) {
	if err := h.dorms.RefreshAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *DormHandler) Vote(c *gin.Context) {
	student, _ := middleware.CurrentStudent(c)
	id := utils.StringToUint(c.Param("id"))

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.dorms.Vote(student, id, req.direction()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
