package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/certivo/certivo/internal/app/controllers"
	"github.com/certivo/certivo/internal/app/models/dto"
	"github.com/certivo/certivo/internal/middleware"
	"github.com/certivo/certivo/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	participantController *controllers.ParticipantController,
	courseController *controllers.CourseController,
	credentialController *controllers.CredentialController,
	jwtService *auth.JWTService,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
	}

	// Public verification endpoint used by certificate QR codes
	v1.GET("/validate/:credentialId", credentialController.ValidateCredential)

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(middleware.JWTAuthMiddleware(jwtService))
	{
		authenticated.GET("/auth/me", authController.Me)

		participants := authenticated.Group("/participants")
		{
			participants.POST("", participantController.CreateParticipant)
			participants.GET("", participantController.GetAllParticipants)
			participants.GET("/:id", participantController.GetParticipantByID)
			participants.PUT("/:id", participantController.UpdateParticipant)
			participants.DELETE("/:id", participantController.DeleteParticipant)
		}

		courses := authenticated.Group("/courses")
		{
			courses.POST("", courseController.CreateCourse)
			courses.GET("", courseController.GetAllCourses)
			courses.GET("/:id", courseController.GetCourseByID)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}

		credentials := authenticated.Group("/credentials")
		{
			credentials.POST("", credentialController.IssueCredential)
			credentials.GET("", credentialController.GetAllCredentials)
			credentials.GET("/:id", credentialController.GetCredentialByID)
			credentials.GET("/:id/certificate", credentialController.GenerateCertificate)
			credentials.DELETE("/:id", credentialController.DeleteCredential)
		}
	}
}
