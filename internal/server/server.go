package server

import (
	"context"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"anoa.com/makanlist/internal/agent"
	"anoa.com/makanlist/internal/config"
	"anoa.com/makanlist/internal/handler"
	"anoa.com/makanlist/internal/middleware"
	"anoa.com/makanlist/internal/places"
	"anoa.com/makanlist/internal/service"
	"anoa.com/makanlist/internal/store"
	"anoa.com/makanlist/pkg/logger"
	"anoa.com/makanlist/pkg/storage"
)

type Server struct {
	engine      *gin.Engine
	store       *store.Store
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, st *store.Store, redisClient *redis.Client) *Server {
	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		zap.L().Warn("cloudinary storage unavailable, photo upload disabled", zap.Error(err))
		imageStorage = nil
	}

	var meiliClient meilisearch.ServiceManager
	if cfg.MeiliSearchHost != "" {
		host := cfg.MeiliSearchHost
		if !strings.HasPrefix(host, "http") {
			host = "http://" + host + ":7700"
		}
		meiliClient = meilisearch.New(host, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	}
	searchSvc := service.NewSearchService(meiliClient)

	var llm service.LLMProvider
	geminiProvider, err := service.NewGeminiProvider(context.Background(), cfg.GeminiModel)
	if err != nil {
		zap.L().Warn("gemini unavailable, AI features disabled", zap.Error(err))
	} else {
		llm = geminiProvider
	}

	placeLookup := places.NewHTTPLookup(cfg.PlacesBaseURL, cfg.PlacesAPIKey)

	// Live feed fan-out: the store pushes every new activity through
	// the feed service onto redis.
	feedSvc := service.NewFeedService(redisClient)
	feedSvc.Attach(st)

	authSvc := service.NewAuthService(st, cfg)
	authHandler := handler.NewAuthHandler(authSvc)

	userHandler := handler.NewUserHandler(st)
	friendHandler := handler.NewFriendHandler(st)
	listHandler := handler.NewListHandler(st)

	restaurantSvc := service.NewRestaurantService(st, placeLookup, searchSvc)
	restaurantHandler := handler.NewRestaurantHandler(restaurantSvc, st)

	visitSvc := service.NewVisitService(st, llm, imageStorage, redisClient, cfg.RateLimitAISummary)
	visitHandler := handler.NewVisitHandler(visitSvc)

	activityHandler := handler.NewActivityHandler(st, redisClient)

	// Daily dining suggestions
	suggestionAgent := agent.NewSuggestionAgent(st, llm, cfg.SuggestionSchedule)
	suggestionAgent.Start()

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(logger.GinRecovery())
	router.Use(logger.GinLogger())

	authMiddleware := middleware.NewAuthMiddleware(st, cfg.JWTSecret)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.GET("/google/login", authHandler.GoogleLogin)
		auth.GET("/google/callback", authHandler.GoogleCallback)
	}

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// User routes
		protected.GET("/users/me", userHandler.Me)
		protected.GET("/users/me/stats", userHandler.Stats)
		protected.GET("/users/search", userHandler.Search)

		// Friend routes
		protected.POST("/friends/requests", friendHandler.SendRequest)
		protected.GET("/friends/requests", friendHandler.ListRequests)
		protected.PUT("/friends/requests/:id/accept", friendHandler.AcceptRequest)
		protected.DELETE("/friends/requests/:id", friendHandler.RejectRequest)
		protected.GET("/friends", friendHandler.ListFriends)

		// List routes
		protected.POST("/lists", listHandler.CreateList)
		protected.GET("/lists", listHandler.GetLists)
		protected.GET("/lists/shared", listHandler.GetSharedLists)
		protected.GET("/lists/:id", listHandler.GetList)
		protected.PUT("/lists/:id", listHandler.UpdateList)
		protected.DELETE("/lists/:id", listHandler.DeleteList)
		protected.POST("/lists/:id/share", listHandler.ShareList)
		protected.GET("/lists/:id/restaurants", listHandler.GetListRestaurants)
		protected.POST("/lists/:id/restaurants", listHandler.AddRestaurant)
		protected.DELETE("/lists/:id/restaurants/:restaurantId", listHandler.RemoveRestaurant)
		protected.PUT("/lists/:id/reorder", listHandler.Reorder)

		// Restaurant routes
		protected.POST("/restaurants", restaurantHandler.AddRestaurant)
		protected.GET("/restaurants", restaurantHandler.GetRestaurants)
		protected.GET("/restaurants/:id", restaurantHandler.GetRestaurant)
		protected.GET("/restaurants/:id/visits", restaurantHandler.GetVisits)

		// Visit routes
		protected.POST("/visits", visitHandler.CreateVisit)
		protected.GET("/visits/:id", visitHandler.GetVisit)
		protected.POST("/visits/:id/summary", visitHandler.GenerateSummary)
		protected.POST("/visits/:id/notes", visitHandler.AddNote)
		protected.POST("/visits/:id/photos", visitHandler.AddPhoto)

		// Activity routes
		protected.GET("/activities", activityHandler.GetFeed)
		protected.GET("/activities/ws", activityHandler.HandleWebSocket)
	}

	return &Server{
		engine:      router,
		store:       st,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
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
