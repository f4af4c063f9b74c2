package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillsphere/skillsphere/internal/app/controllers"
	"github.com/skillsphere/skillsphere/internal/app/models/dto"
	"github.com/skillsphere/skillsphere/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	analyticsController *controllers.AnalyticsController,
	userController *controllers.UserController,
	notificationController *controllers.NotificationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Health endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "SkillSphere API is running"})
	})

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		// Tokens are stateless; logout needs no valid token to acknowledge
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.ListCourses)
			courses.POST("", courseController.CreateCourse)
			courses.GET("/:id", courseController.GetCourse)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
			courses.PATCH("/:id/complete", courseController.MarkCompleted)
		}

		analytics := authenticated.Group("/analytics")
		{
			analytics.GET("", analyticsController.GetAnalytics)
			analytics.GET("/dashboard", analyticsController.GetDashboardStats)
		}

		users := authenticated.Group("/user")
		{
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
		}

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.ListNotifications)
			notifications.PATCH("/:id/read", notificationController.MarkRead)
		}
	}

	// Unknown routes get a uniform JSON body instead of gin's default 404
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Route not found"))
	})
}
