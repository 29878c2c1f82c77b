package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string
	SLLBaseURL    string // student-living building pages, overridable for tests
	SISBaseURL    string // registrar timetable pages
}

// Load reads .env if present and falls back to sane local defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=dormlife port=5432 sslmode=disable"),
		SessionSecret: getEnv("SESSION_SECRET", "secret_key_change_me"),
		SLLBaseURL:    getEnv("SLL_BASE_URL", "https://sll.rpi.edu/buildings/"),
		SISBaseURL:    getEnv("SIS_BASE_URL", "https://sis.rpi.edu/reg/"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
