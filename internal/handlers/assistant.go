package handlers

import (
	"net/http"

	"dormlife/internal/services"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	assistant *services.AssistantService
}

func NewAssistantHandler(svc *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: svc}
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *AssistantHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, h.assistant.Handle(req.Message))
}
