package main

import (
	"log"
	"log/slog"
	"os"

	"sinanews/internal/handler"
	"sinanews/pkg/news"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var client news.NewsClient = news.NewSinaClient()
	if baseURL := os.Getenv("SINA_BASE_URL"); baseURL != "" {
		origin := os.Getenv("SINA_ORIGIN")
		if origin == "" {
			origin = baseURL
		}
		client = news.NewSinaClientWithBaseURL(baseURL, origin)
		slog.Info("using custom news source base URL", "base_url", baseURL, "origin", origin)
	}

	slog.Info("news source configured", "source", client.Name())

	newsHandler := handler.NewNewsHandler(client)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/", newsHandler.GetLanding)
	r.GET("/health", newsHandler.GetHealth)
	r.GET("/news", newsHandler.GetNews)
	r.POST("/news", newsHandler.PostNews)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	err := r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
