package middleware

import (
	"net/http"

	"dormlife/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const CheckUserKey = "user"

// LoadUser resolves the session into a student and attaches it to the
// request context. It never rejects; the Required middlewares do that.
func LoadUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		studentID := session.Get("student_id")

		if studentID != nil {
			var student models.Student
			if err := db.First(&student, studentID).Error; err == nil {
				c.Set(CheckUserKey, &student)
			}
		}
		c.Next()
	}
}

// AuthRequired rejects requests with no logged-in student.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "must be logged in"})
			return
		}
		c.Next()
	}
}

// AdminRequired rejects requests unless the student is an admin.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		student, ok := CurrentStudent(c)
		if !ok || !student.Admin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "must be logged in as an admin"})
			return
		}
		c.Next()
	}
}

// CurrentStudent returns the student attached by LoadUser, if any.
func CurrentStudent(c *gin.Context) (*models.Student, bool) {
	v, exists := c.Get(CheckUserKey)
	if !exists {
		return nil, false
	}
	student, ok := v.(*models.Student)
	return student, ok
}
