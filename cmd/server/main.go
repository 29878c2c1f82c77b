package main

import (
	"log"

	"dormlife/internal/config"
	"dormlife/internal/content"
	"dormlife/internal/courses"
	"dormlife/internal/db"
	"dormlife/internal/dorms"
	"dormlife/internal/handlers"
	"dormlife/internal/middleware"
	"dormlife/internal/router"
	"dormlife/internal/scraper"
	"dormlife/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	gdb, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Services
	contentSvc := content.NewService(gdb)
	dormSvc := dorms.NewService(gdb, scraper.New(cfg.SLLBaseURL))
	courseSvc := courses.NewService(gdb, cfg.SISBaseURL)
	assistantSvc := services.NewAssistantService()

	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("dormlife_session", store))
	r.Use(middleware.LoadUser(gdb))

	router.RegisterRoutes(r, router.Deps{
		Auth:          handlers.NewAuthHandler(gdb),
		Dorms:         handlers.NewDormHandler(dormSvc),
		Reviews:       handlers.NewReviewHandler(contentSvc),
		Questions:     handlers.NewQuestionHandler(contentSvc),
		Answers:       handlers.NewAnswerHandler(contentSvc),
		Announcements: handlers.NewAnnouncementHandler(contentSvc),
		Courses:       handlers.NewCourseHandler(courseSvc),
		Assistant:     handlers.NewAssistantHandler(assistantSvc),
	})

	log.Printf("dormlife server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
