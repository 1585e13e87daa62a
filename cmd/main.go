package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"newshub/database"
	"newshub/internal/controllers"
	"newshub/internal/middleware"
	"newshub/internal/repository"
	"newshub/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load("../.env"); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Initialize repositories
	checker := repository.NewExistenceChecker(database.DB)
	topicRepo := repository.NewTopicRepository(database.DB)
	articleRepo := repository.NewArticleRepository(database.DB, checker)
	commentRepo := repository.NewCommentRepository(database.DB, checker)
	userRepo := repository.NewUserRepository(database.DB)

	// Initialize controllers
	topicController := controllers.NewTopicController(topicRepo)
	articleController := controllers.NewArticleController(articleRepo, commentRepo)
	commentController := controllers.NewCommentController(commentRepo)
	userController := controllers.NewUserController(userRepo)
	apiController := controllers.NewApiController()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	routes.RegisterTopicRoutes(router, topicController)
	routes.RegisterArticleRoutes(router, articleController)
	routes.RegisterCommentRoutes(router, commentController)
	routes.RegisterUserRoutes(router, userController)
	routes.RegisterApiRoutes(router, apiController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("NewsHub API listening on port %s", port)
	log.Printf("Endpoint catalog: http://localhost:%s/api", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
