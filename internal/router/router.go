package router

import (
	"dormlife/internal/handlers"
	"dormlife/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Deps carries the constructed handlers into route registration so the
// router stays free of storage concerns.
type Deps struct {
	Auth          *handlers.AuthHandler
	Dorms         *handlers.DormHandler
	Reviews       *handlers.ReviewHandler
	Questions     *handlers.QuestionHandler
	Answers       *handlers.AnswerHandler
	Announcements *handlers.AnnouncementHandler
	Courses       *handlers.CourseHandler
	Assistant     *handlers.AssistantHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")

	// Public routes
	api.POST("/auth/signup", d.Auth.Signup)
	api.POST("/auth/login", d.Auth.Login)
	api.POST("/auth/logout", d.Auth.Logout)
	api.GET("/auth/me", d.Auth.Me)

	api.GET("/dorms", d.Dorms.List)
	api.GET("/dorms/:id/reviews", d.Reviews.List)
	api.GET("/questions", d.Questions.List)
	api.GET("/questions/:id/answers", d.Answers.List)
	api.GET("/announcements", d.Announcements.List)
	api.GET("/courses/sections", d.Courses.List)
	api.POST("/assistant/chat", d.Assistant.Chat)

	// Routes for logged-in students
	authed := api.Group("/")
	authed.Use(middleware.AuthRequired())
	{
		authed.POST("/dorms/vote/:id", d.Dorms.Vote)

		authed.POST("/dorms/:id/reviews", d.Reviews.Create)
		authed.PATCH("/reviews/:id", d.Reviews.Edit)
		authed.DELETE("/reviews/:id", d.Reviews.Delete)
		authed.POST("/reviews/vote/:id", d.Reviews.Vote)

		authed.POST("/questions", d.Questions.Create)
		authed.PATCH("/questions/:id", d.Questions.Edit)
		authed.DELETE("/questions/:id", d.Questions.Delete)
		authed.POST("/questions/vote/:id", d.Questions.Vote)

		authed.POST("/questions/:id/answers", d.Answers.Create)
		authed.PATCH("/answers/:id", d.Answers.Edit)
		authed.DELETE("/answers/:id", d.Answers.Delete)
		authed.POST("/answers/vote/:id", d.Answers.Vote)
	}

	// Admin-only routes
	admin := api.Group("/")
	admin.Use(middleware.AdminRequired())
	{
		admin.POST("/dorms", d.Dorms.Create)
		admin.PUT("/dorms/:id", d.Dorms.Update)
		admin.DELETE("/dorms/:id", d.Dorms.Delete)
		admin.GET("/dorms/refresh", d.Dorms.Refresh)

		admin.POST("/announcements", d.Announcements.Create)
		admin.PATCH("/announcements/:id", d.Announcements.Edit)
		admin.DELETE("/announcements/:id", d.Announcements.Delete)

		admin.POST("/courses/import", d.Courses.Import)
	}
}
