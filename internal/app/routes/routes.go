package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kerem/clubsphere/internal/app/controllers"
	"github.com/kerem/clubsphere/internal/app/models"
	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	universityController *controllers.UniversityController,
	userController *controllers.UserController,
	clubController *controllers.ClubController,
	eventController *controllers.EventController,
	clubRequestController *controllers.ClubRequestController,
	announcementController *controllers.AnnouncementController,
	recruitmentController *controllers.RecruitmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	universities := v1.Group("/universities")
	{
		universities.GET("", universityController.GetAllUniversities)
		universities.GET("/:id", universityController.GetUniversityByID)
	}

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile routes
		me := authenticated.Group("/users/me")
		{
			me.GET("", userController.GetMyProfile)
			me.PUT("", userController.UpdateMyProfile)
			me.PUT("/password", userController.ChangePassword)
		}

		// Club routes
		clubs := authenticated.Group("/clubs")
		{
			clubs.GET("", clubController.GetAllClubs)
			clubs.GET("/:id", clubController.GetClubByID)
			clubs.PUT("/:id", clubController.UpdateClub)

			// Membership management
			clubs.POST("/:id/members", clubController.JoinClub)
			clubs.DELETE("/:id/members", clubController.LeaveClub)
			clubs.PUT("/:id/members/:memberId/role", clubController.UpdateMemberRole)

			// Club-scoped creation endpoints
			clubs.POST("/:id/events", eventController.CreateEvent)
			clubs.POST("/:id/announcements", announcementController.CreateAnnouncement)
		}

		// Event routes
		events := authenticated.Group("/events")
		{
			events.GET("", eventController.GetAllEvents)
			events.GET("/:id", eventController.GetEventByID)
			events.PUT("/:id", eventController.UpdateEvent)
			events.DELETE("/:id", eventController.DeleteEvent)

			// Registration
			events.POST("/:id/attendees", eventController.Register)
			events.DELETE("/:id/attendees", eventController.Unregister)

			// Team recruitment under events
			events.POST("/:id/recruitment", recruitmentController.CreatePost)
			events.GET("/:id/recruitment", recruitmentController.GetPostsByEvent)
		}

		// Announcement routes
		announcements := authenticated.Group("/announcements")
		{
			announcements.GET("", announcementController.GetAllAnnouncements)
			announcements.GET("/:id", announcementController.GetAnnouncementByID)
			announcements.PUT("/:id", announcementController.UpdateAnnouncement)
			announcements.DELETE("/:id", announcementController.DeleteAnnouncement)
			announcements.POST("/:id/likes", announcementController.Like)
			announcements.DELETE("/:id/likes", announcementController.Unlike)
			announcements.POST("/:id/comments", announcementController.AddComment)
		}

		// Recruitment post routes
		recruitment := authenticated.Group("/recruitment")
		{
			recruitment.GET("/:id", recruitmentController.GetPostByID)
			recruitment.POST("/:id/applications", recruitmentController.Apply)
			recruitment.PATCH("/applications/:id", recruitmentController.ReviewApplication)
		}

		// Club-creation request routes. Any authenticated user can submit;
		// listing and reviewing are administrator-only.
		clubRequests := authenticated.Group("/club-requests")
		{
			clubRequests.POST("", clubRequestController.CreateRequest)

			clubRequestsAdmin := clubRequests.Group("")
			clubRequestsAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdministrator)))
			{
				clubRequestsAdmin.GET("", clubRequestController.GetAllRequests)
				clubRequestsAdmin.GET("/:id", clubRequestController.GetRequestByID)
				clubRequestsAdmin.PATCH("/:id/review", clubRequestController.ReviewRequest)
				clubRequestsAdmin.POST("/bulk-approve", clubRequestController.BulkApprove)
			}
		}

		// Administrator routes
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdministrator)))
		{
			admin.GET("/users", userController.GetAllUsers)
			admin.PUT("/users/:id/blocked", userController.SetBlocked)
			admin.PUT("/users/:id/role", userController.SetRole)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
