package main

import (
	"classboard/internal/database"
	"classboard/internal/handlers"
	"classboard/internal/middleware"
	"classboard/internal/utils"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Refuse to start without a real signing secret.
	if err := utils.EnsureJWTReady(); err != nil {
		log.Fatal("JWT configuration error: ", err)
	}

	database.InitDB()
	defer database.CloseDB()
	database.CreateTables()

	router := gin.Default()
	router.Use(middleware.RequestIDMiddleware())

	router.GET("/health", handlers.HealthCheck)
	router.GET("/api/status", handlers.Status)

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	posts := router.Group("/api/posts")
	{
		posts.GET("", handlers.ListPosts)
		posts.GET("/:id", handlers.GetPost)
		posts.POST("", middleware.AuthMiddleware(), handlers.CreatePost)
		posts.PUT("/:id", middleware.AuthMiddleware(), handlers.UpdatePost)
		posts.DELETE("/:id", middleware.AuthMiddleware(), handlers.DeletePost)
	}

	classes := router.Group("/api/classes")
	{
		classes.GET("", handlers.ListClasses)
		classes.GET("/:id", handlers.GetClass)
		classes.POST("", middleware.AuthMiddleware(), handlers.CreateClass)
		classes.PUT("/:id", middleware.AuthMiddleware(), handlers.UpdateClass)
		classes.DELETE("/:id", middleware.AuthMiddleware(), handlers.DeleteClass)
		classes.POST("/:id/join", middleware.AuthMiddleware(), handlers.JoinClass)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Classboard API starting on :" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
