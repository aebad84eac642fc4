// File: /routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sportsbuddy-api/controllers"
	"sportsbuddy-api/middleware"
)

type Controllers struct {
	Auth   *controllers.AuthController
	Events *controllers.EventController
}

func SetupRoutes(r *gin.Engine, ctrl Controllers, tokens middleware.TokenParser) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")
	v1.Use(middleware.ValidateJSON())

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		protected.GET("/auth/me", ctrl.Auth.Me)

		events := protected.Group("/events")
		{
			events.GET("", ctrl.Events.GetEvents)
			events.GET("/all", ctrl.Events.GetAllEvents)
			events.GET("/joined", ctrl.Events.GetJoinedEvents)
			events.POST("", ctrl.Events.CreateEvent)
			events.GET("/:id", ctrl.Events.GetEvent)
			events.PATCH("/:id", ctrl.Events.UpdateEvent)
			events.DELETE("/:id", ctrl.Events.DeleteEvent)
			events.POST("/:id/complete", ctrl.Events.CompleteEvent)
			events.POST("/:id/join", ctrl.Events.JoinEvent)
			events.DELETE("/:id/leave", ctrl.Events.LeaveEvent)
		}
	}
}

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
