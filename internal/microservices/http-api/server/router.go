package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"hostelhub/internal/cache"
	"hostelhub/internal/config"
	"hostelhub/internal/microservices/http-api/handler"
	"hostelhub/internal/microservices/http-api/middleware"
	"hostelhub/internal/microservices/http-api/repository"
	"hostelhub/internal/microservices/http-api/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type Options struct {
	Config *config.Config
	DB     *gorm.DB
	// Cache is optional; without it published menus are read from the database.
	Cache  *cache.MenuRedisCache
	Logger *slog.Logger
}

// NewRouter wires repositories, services and handlers into a gin engine.
func NewRouter(opts Options) (*gin.Engine, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sqlDB, err := opts.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql handle: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger, "/healthz", "/metrics"))
	r.Use(middleware.Metrics())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	// ───────────────────────── INFRA ─────────────────────────
	var (
		menuCache service.MenuCache
		probe     handler.CacheProbe
	)
	if opts.Cache != nil {
		menuCache = opts.Cache
		probe = opts.Cache
	}

	r.GET("/healthz", handler.NewHealthHandler(sqlDB, probe).Health)
	if cfg.PrometheusEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := repository.NewUserRepository(opts.DB)
	dishRepo := repository.NewDishRepository(opts.DB)
	windowRepo := repository.NewVotingWindowRepository(opts.DB)
	voteRepo := repository.NewVoteRepository(opts.DB)
	reviewRepo := repository.NewMealReviewRepository(opts.DB)
	recRepo := repository.NewRecommendationRepository(opts.DB)
	menuRepo := repository.NewMessMenuRepository(opts.DB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := service.NewAuthService(userRepo, cfg)
	votingService := service.NewVotingService(windowRepo, voteRepo, dishRepo)
	voteService := service.NewVoteService(voteRepo, dishRepo, cfg.VotesPerMealMin)
	recService := service.NewRecommendationService(dishRepo, reviewRepo, recRepo, cfg.HostelScopedRecommendations())
	builder := service.NewMenuBuilder(recService, menuRepo, service.PositionalAllocator{SlotSize: cfg.MenuSlotSize})
	menuService := service.NewMenuService(windowRepo, menuRepo, recService, builder, menuCache)
	dishService := service.NewDishService(dishRepo, cfg.DishSuggestionsPerWeek)
	reviewService := service.NewReviewService(reviewRepo, dishRepo)

	// ───────────────────────── ROUTES ─────────────────────────
	limiter := middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	api := r.Group("/api", limiter.GinMiddleware())

	handler.NewAuthHandler(authService).RegisterRoutes(api)

	protected := api.Group("", middleware.AuthMiddleware(authService))
	handler.NewVotingHandler(votingService).RegisterRoutes(protected)
	handler.NewVoteHandler(voteService, votingService).RegisterRoutes(protected)
	handler.NewMenuHandler(menuService, recService).RegisterRoutes(protected)
	handler.NewDishHandler(dishService).RegisterRoutes(protected)
	handler.NewReviewHandler(reviewService).RegisterRoutes(protected)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
