package handlers

import (
	"net/http"

	"dormlife/internal/courses"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courses *courses.Service
}

func NewCourseHandler(svc *courses.Service) *CourseHandler {
	return &CourseHandler{courses: svc}
}

// Import pulls the registrar timetable for ?term= and replaces the
// term's stored sections.
func (h *CourseHandler) Import(c *gin.Context) {
	count, err := h.courses.Import(c.Request.Context(), c.Query("term"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": count})
}

func (h *CourseHandler) List(c *gin.Context) {
	sections, err := h.courses.List(c.Query("term"), c.Query("subject"), c.Query("course"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}
