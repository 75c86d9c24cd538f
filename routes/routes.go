package routes

import (
	"net/http"
	"time"

	"wastewise/handlers"
	"wastewise/middleware"
	"wastewise/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers staff registration, login, and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterAdminHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/profile", hb.Auth.GetProfileHandler)
		api.PUT("/profile", hb.Auth.UpdateProfileHandler)
		api.DELETE("/logout", hb.Auth.LogoutHandler)
	}
}

// RegisterScheduleRoutes registers the collection-calendar endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedules")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.AdminOnlyMiddleware())
		api.GET("", hb.Schedule.GetEntriesHandler)
		api.GET("/day", hb.Schedule.GetDayStatusHandler)
		api.GET("/waste-types", hb.Schedule.GetWasteTypesHandler)
		api.POST("/select", hb.Schedule.SelectDateHandler)
		api.POST("", hb.Schedule.ConfirmAssignmentHandler)
		api.POST("/refresh", hb.Schedule.RefreshHandler)
		api.PUT("/:id", hb.Schedule.EditEntryHandler)
		api.DELETE("/:id", hb.Schedule.DeleteEntryHandler)
	}
}

// RegisterRoadRoutes registers road and time-slot endpoints.
func RegisterRoadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/roads")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.AdminOnlyMiddleware())
		api.GET("", hb.Roads.GetRoadsHandler)
		api.GET("/time-slots", hb.Roads.GetTimeSlotsHandler)
		api.POST("", hb.Roads.AddRoadHandler)
		api.PUT("/:name/time-slot", hb.Roads.AssignTimeSlotHandler)
		api.DELETE("/:name", hb.Roads.DeleteRoadHandler)
	}
}

// RegisterResidentRoutes registers the residents directory.
func RegisterResidentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/residents")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.AdminOnlyMiddleware())
		api.GET("", hb.Residents.GetResidentsHandler)
	}
}

// RegisterBinRoutes registers bin and bin-request endpoints.
func RegisterBinRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bins")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.AdminOnlyMiddleware())
		api.GET("/homes", hb.Bins.GetHomeNumbersHandler)
		api.GET("/homes/:homeNumber", hb.Bins.GetBinsForHomeHandler)
		api.PUT("/:id/activate", hb.Bins.ActivateBinHandler)
		api.GET("/requests", hb.Bins.GetBinRequestsHandler)
		api.POST("/requests/:id/approve", hb.Bins.ApproveBinRequestHandler)
		api.PUT("/requests/:id/confirm", hb.Bins.ConfirmBinRequestHandler)
	}
}

// RegisterPickupRoutes registers immediate-pickup endpoints.
func RegisterPickupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pickups")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.AdminOnlyMiddleware())
		api.GET("", hb.Pickups.GetPickupsHandler)
		api.GET("/drivers", hb.Pickups.GetDriversHandler)
		api.PUT("/:id/confirm", hb.Pickups.ConfirmPickupHandler)
		api.PUT("/:id/driver", hb.Pickups.AssignDriverHandler)
		api.PUT("/:id/status", hb.Pickups.UpdatePickupStatusHandler)
		api.PUT("/:id/instruction", hb.Pickups.UpdateInstructionHandler)
	}
}

// RegisterIssueRoutes registers reported-issue endpoints.
func RegisterIssueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/issues")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Issues.GetIssuesHandler)
		api.POST("", hb.Issues.ReportIssueHandler)
		api.PUT("/:id/response", middleware.AdminOnlyMiddleware(), hb.Issues.RespondToIssueHandler)
	}
}

// RegisterCommunityRoutes registers sharing-hub and awareness endpoints.
func RegisterCommunityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/community")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/items", hb.Community.GetSharedItemsHandler)
		api.GET("/items/:id", hb.Community.GetSharedItemHandler)
		api.POST("/items", hb.Community.ShareItemHandler)
		api.POST("/items/:id/photo", hb.Community.UploadItemPhotoHandler)
		api.DELETE("/items/:id", middleware.AdminOnlyMiddleware(), hb.Community.RemoveSharedItemHandler)

		api.GET("/awareness", hb.Community.GetAwarenessHandler)
		api.POST("/awareness", middleware.AdminOnlyMiddleware(), hb.Community.AddAwarenessDetailHandler)
	}
}

// RegisterRecyclingRoutes registers recycling-info endpoints.
func RegisterRecyclingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/recycling")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Recycling.GetRecyclingInfoHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminOnlyMiddleware())
		admin.POST("/categories", hb.Recycling.AddCategoryHandler)
		admin.POST("/segregation", hb.Recycling.AddSegregationHandler)
		admin.POST("/motivations", hb.Recycling.AddMotivationHandler)
		admin.POST("/centers", hb.Recycling.AddCenterHandler)
	}
}

// RegisterOverviewRoutes registers the dashboard overview endpoint.
func RegisterOverviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/overview")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.AdminOnlyMiddleware())
		api.GET("", hb.Overview.GetStatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterRoadRoutes(r, hb)
	RegisterResidentRoutes(r, hb)
	RegisterBinRoutes(r, hb)
	RegisterPickupRoutes(r, hb)
	RegisterIssueRoutes(r, hb)
	RegisterCommunityRoutes(r, hb)
	RegisterRecyclingRoutes(r, hb)
	RegisterOverviewRoutes(r, hb)
	RegisterHealthRoute(r)
}
