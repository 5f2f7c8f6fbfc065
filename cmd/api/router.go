package main

import (
	"net/http"

	"findmygym/internal/config"
	"findmygym/internal/domain/auth"
	"findmygym/internal/domain/booking"
	"findmygym/internal/domain/catalog"
	"findmygym/internal/domain/deal"
	"findmygym/internal/domain/favorite"
	"findmygym/internal/domain/profile"
	"findmygym/internal/domain/recent"
	"findmygym/internal/domain/review"
	"findmygym/internal/metrics"
	"findmygym/internal/middleware"
	"findmygym/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// newRouter wires every feature package. redisClient may be nil: the featured list is
// then read from the store on every request and recently viewed is not mounted.
func newRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger *zerolog.Logger) *gin.Engine {
	tokens := jwt.New(cfg.Auth.JWTSecret, cfg.Auth.JWTAccessTTL)

	var recentStore *recent.RedisStore
	catalogOpts := []catalog.Option{catalog.WithLocation(cfg.Location)}
	if redisClient != nil {
		recentStore = recent.NewRedisStore(redisClient, cfg.Cache.RecentTTL)
		catalogOpts = append(catalogOpts,
			catalog.WithFeaturedCache(catalog.NewRedisFeaturedCache(redisClient, cfg.Cache.FeaturedTTL)),
			catalog.WithViewTracker(recentStore),
		)
	}
	catalogService := catalog.NewService(catalog.NewGymRepository(db), catalogOpts...)

	catalogHandler := catalog.NewHandler(catalogService, logger)
	reviewHandler := review.NewHandler(review.NewService(review.NewReviewRepository(db)), logger)
	bookingHandler := booking.NewHandler(booking.NewService(booking.NewBookingRepository(db)), logger)
	favoriteHandler := favorite.NewHandler(favorite.NewService(favorite.NewFavoriteRepository(db), catalogService), logger)
	dealHandler := deal.NewHandler(deal.NewService(deal.NewDealRepository(db), nil), logger)
	profileHandler := profile.NewHandler(profile.NewService(profile.NewProfileRepository(db)), logger)
	authHandler := auth.NewHandler(auth.NewService(auth.NewUserRepository(db), tokens), logger)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(metrics.Middleware())
	r.Use(middleware.CORS(cfg.HTTP.AllowedOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	authLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	mutationLimiter := middleware.NewRateLimiter(cfg.RateLimit)

	api := r.Group("/api")
	api.Use(middleware.OptionalJWTAuth(tokens))
	{
		authHandler.RegisterRoutes(api, authLimiter.Limit())
		catalogHandler.RegisterRoutes(api)
		dealHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(tokens), mutationLimiter.LimitMutations())

		reviewHandler.RegisterRoutes(api, protected)
		bookingHandler.RegisterRoutes(protected)
		favoriteHandler.RegisterRoutes(protected)
		profileHandler.RegisterRoutes(protected)

		if recentStore != nil {
			recent.NewHandler(recent.NewService(recentStore, catalogService), logger).RegisterRoutes(protected)
		}
	}

	return r
}
