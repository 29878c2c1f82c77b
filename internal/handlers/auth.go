package handlers

import (
	"net/http"
	"strings"

	"dormlife/internal/middleware"
	"dormlife/internal/models"
	"dormlife/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{db: db}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	GradYear int    `json:"grad_year"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	parts := strings.Split(req.Email, "@")
	if len(parts) != 2 || parts[0] == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email address"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 6 characters"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	student := models.Student{
		Username: parts[0],
		Email:    req.Email,
		Password: hash,
		Name:     req.Name,
		GradYear: req.GradYear,
	}
	if err := h.db.Create(&student).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email or username already registered"})
		return
	}

	session := sessions.Default(c)
	session.Set("student_id", student.ID)
	session.Save()

	c.JSON(http.StatusCreated, student)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var student models.Student
	if err := h.db.Where("email = ?", req.Email).First(&student).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if !utils.CheckPasswordHash(req.Password, student.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	session := sessions.Default(c)
	session.Set("student_id", student.ID)
	session.Save()

	c.JSON(http.StatusOK, student)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	student, ok := middleware.CurrentStudent(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "must be logged in"})
		return
	}
	c.JSON(http.StatusOK, student)
}
