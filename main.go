// File: wastewise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wastewise/config"
	"wastewise/cron"
	"wastewise/database"
	binRepoPkg "wastewise/database/repository/bin"
	communityRepoPkg "wastewise/database/repository/community"
	issueRepoPkg "wastewise/database/repository/issue"
	pickupRepoPkg "wastewise/database/repository/pickup"
	recyclingRepoPkg "wastewise/database/repository/recycling"
	roadRepoPkg "wastewise/database/repository/road"
	scheduleRepoPkg "wastewise/database/repository/schedule"
	userRepoPkg "wastewise/database/repository/user"
	"wastewise/handlers"
	"wastewise/middleware"
	"wastewise/routes"
	binSvc "wastewise/services/bin"
	communitySvc "wastewise/services/community"
	issueSvc "wastewise/services/issue"
	"wastewise/services/overview"
	pickupSvc "wastewise/services/pickup"
	"wastewise/services/schedule"
	userSvc "wastewise/services/user"
	"wastewise/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: photo storage disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	roadRepo := roadRepoPkg.NewMongoRoadRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	binRepo := binRepoPkg.NewMongoBinRepo()
	pickupRepo := pickupRepoPkg.NewMongoPickupRepo()
	issueRepo := issueRepoPkg.NewMongoIssueRepo()
	communityRepo := communityRepoPkg.NewMongoCommunityRepo()
	recyclingRepo := recyclingRepoPkg.NewMongoRecyclingRepo()

	// services.
	schedulingEngine, err := schedule.NewSchedulingEngine(scheduleRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load schedules: %v", err)
	}
	roadService, err := schedule.NewRoadService(roadRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load roads: %v", err)
	}
	userService := &userSvc.DefaultUserService{Repo: userRepo}
	binService := &binSvc.DefaultBinService{Repo: binRepo}
	pickupService := &pickupSvc.DefaultPickupService{Repo: pickupRepo, Users: userRepo}
	issueService := &issueSvc.DefaultIssueService{Repo: issueRepo}
	communityService := &communitySvc.DefaultCommunityService{
		Repo:    communityRepo,
		Storage: storageService,
	}
	recyclingService := &communitySvc.DefaultRecyclingService{Repo: recyclingRepo}
	overviewService := &overview.DefaultOverviewService{
		Users:     userRepo,
		Bins:      binRepo,
		Pickups:   pickupRepo,
		Issues:    issueRepo,
		Schedules: scheduleRepo,
		Roads:     roadRepo,
		Cache:     utils.GetCacheClient(),
	}

	// Reminder queue and worker.
	reminderScheduler := cron.NewReminderScheduler()
	cron.InitReminderWorker(userRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:  userRepo,
		Schedule:  handlers.NewScheduleHandler(schedulingEngine, reminderScheduler),
		Roads:     handlers.NewRoadHandler(roadService),
		Auth:      handlers.NewAuthHandler(userService),
		Residents: handlers.NewResidentHandler(userService),
		Bins:      handlers.NewBinHandler(binService),
		Pickups:   handlers.NewPickupHandler(pickupService),
		Issues:    handlers.NewIssueHandler(issueService),
		Community: handlers.NewCommunityHandler(communityService),
		Recycling: handlers.NewRecyclingHandler(recyclingService),
		Overview:  handlers.NewOverviewHandler(overviewService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		map[string]*redis.Client{
			"cache":         utils.CacheClient,
			"auth":          utils.AuthCacheClient,
			"reminderQueue": utils.GetReminderQueueClient(),
		},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
