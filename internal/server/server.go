package server

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/thomasnguyen/corgi-quest-sub001/internal/agent"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/agent/agents"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/config"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/handler"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/middleware"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/repository"
	"github.com/thomasnguyen/corgi-quest-sub001/internal/service"
	"github.com/thomasnguyen/corgi-quest-sub001/pkg/storage"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
	scheduler   *agent.Scheduler
	llm         service.SuggestionClient
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	dogRepo := repository.NewDogRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	recRepo := repository.NewRecommendationRepository(db)
	itemRepo := repository.NewItemRepository(db)
	waitlistRepo := repository.NewWaitlistRepository(db)

	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Printf("⚠️ Cloudinary storage unavailable, photo uploads disabled: %v", err)
	}

	// Initialize Meilisearch
	meiliHost := cfg.MeiliSearchHost
	if !strings.HasPrefix(meiliHost, "http") {
		meiliHost = "http://" + meiliHost + ":7700"
	}
	meiliClient := meilisearch.New(meiliHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	searchSvc := service.NewSearchService(meiliClient)

	var llm service.SuggestionClient
	if cfg.GeminiAPIKey != "" {
		llm, err = service.NewLLMClient(context.Background())
		if err != nil {
			log.Printf("⚠️ Gemini client unavailable, recommendations disabled: %v", err)
		}
	} else {
		log.Println("⚠️ GEMINI_API_KEY not set, recommendations disabled")
	}

	authSvc := service.NewAuthService(userRepo)
	authHandler := handler.NewAuthHandler(authSvc)

	dogSvc := service.NewDogService(dogRepo, goalRepo, imageStorage, cfg.CloudinaryUploadFolder)
	dogHandler := handler.NewDogHandler(dogSvc, userRepo, dogRepo)

	activitySvc := service.NewActivityService(db, searchSvc)
	activityHandler := handler.NewActivityHandler(activitySvc, searchSvc, userRepo, dogRepo, redisClient, cfg.RateLimitActivity)

	recSvc := service.NewRecommendationService(recRepo, activityRepo, dogRepo, llm)
	recHandler := handler.NewRecommendationHandler(recSvc, userRepo, dogRepo)

	itemSvc := service.NewItemService(itemRepo, dogRepo)
	itemHandler := handler.NewItemHandler(itemSvc, userRepo, dogRepo)

	tipSvc := service.NewTipService(recRepo, cfg.TipFeedURL)
	tipHandler := handler.NewTipHandler(tipSvc)

	waitlistSvc := service.NewWaitlistService(waitlistRepo)
	waitlistHandler := handler.NewWaitlistHandler(waitlistSvc)

	paymentSvc := service.NewPaymentService(cfg.PaymentMode, cfg.CheckoutBaseURL)
	paymentHandler := handler.NewPaymentHandler(paymentSvc)

	presenceSvc := service.NewPresenceService(redisClient)
	presenceHandler := handler.NewPresenceHandler(presenceSvc, userRepo)

	resetSvc := service.NewResetService(dogRepo, goalRepo)

	// Background agents
	scheduler := agent.NewScheduler()
	scheduler.RegisterAgent(agents.NewDailyResetAgent(resetSvc, cfg.DailyResetSchedule))
	scheduler.RegisterAgent(agents.NewTipRefreshAgent(tipSvc, cfg.TipTopics, cfg.TipRefreshSchedule))
	scheduler.Start()

	adminHandler := handler.NewAdminHandler(resetSvc, scheduler)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/presence/ws"},
	}))

	authMiddleware := middleware.NewAuthMiddleware(userRepo)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	api.POST("/waitlist", waitlistHandler.Signup)
	api.POST("/newsletter/subscribe", waitlistHandler.Subscribe)
	api.GET("/tips", tipHandler.GetTip)

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// Admin routes
		adminGroup := protected.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAdmin())
		{
			adminGroup.POST("/reset/run", adminHandler.RunDailyReset)
			adminGroup.GET("/agents", adminHandler.ListAgents)
			adminGroup.POST("/agents/:name/run", adminHandler.RunAgent)
		}

		protected.GET("/auth/me", authHandler.Me)

		// Dog routes
		protected.POST("/dogs", dogHandler.CreateDog)
		protected.GET("/dogs/me", dogHandler.GetMyDog)
		protected.GET("/dogs/:dog_id/profile", dogHandler.GetDogProfile)
		protected.POST("/dogs/:dog_id/photo", dogHandler.UploadPhoto)

		// Activity routes
		protected.POST("/dogs/:dog_id/activities", activityHandler.LogActivity)
		protected.GET("/dogs/:dog_id/activities", activityHandler.GetRecent)
		protected.GET("/dogs/:dog_id/activities/search", activityHandler.SearchActivities)
		protected.POST("/dogs/:dog_id/moods", activityHandler.LogMood)
		protected.GET("/dogs/:dog_id/moods", activityHandler.GetMoods)

		// Recommendation routes
		protected.GET("/dogs/:dog_id/recommendations", recHandler.GetRecommendations)

		// Cosmetic item routes
		protected.GET("/items", itemHandler.GetCatalog)
		protected.GET("/dogs/:dog_id/unlocks", itemHandler.GetUnlocks)
		protected.GET("/dogs/:dog_id/unlocks/unseen", itemHandler.GetUnseenUnlocks)
		protected.PUT("/dogs/:dog_id/unlocks/ack", itemHandler.AcknowledgeUnlocks)
		protected.GET("/dogs/:dog_id/equipment", itemHandler.GetEquipped)
		protected.PUT("/dogs/:dog_id/equipment", itemHandler.Equip)
		protected.DELETE("/dogs/:dog_id/equipment/:slot", itemHandler.Unequip)

		// Presence routes
		protected.GET("/presence/online", presenceHandler.GetOnlineMembers)
		protected.GET("/presence/ws", presenceHandler.HandleWebSocket)

		// Payment routes
		protected.POST("/payments/checkout", paymentHandler.Checkout)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
		scheduler:   scheduler,
		llm:         llm,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Shutdown stops the cron scheduler and releases the LLM client.
func (s *Server) Shutdown() {
	s.scheduler.Stop()
	if s.llm != nil {
		s.llm.Close()
	}
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
