// Package router assembles the HTTP API: repositories, services, handlers
// and the middleware chain around them.
package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"creatorhub/internal/config"
	"creatorhub/internal/microservices/http-api/dto"
	"creatorhub/internal/microservices/http-api/handler"
	"creatorhub/internal/microservices/http-api/middleware"
	"creatorhub/internal/microservices/http-api/repository"
	"creatorhub/internal/microservices/http-api/service"
	"creatorhub/internal/social"
	"creatorhub/pkg/apperrors"
	"creatorhub/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

// Services is every service the handlers call. Build them with NewServices
// or swap individual ones in tests.
type Services struct {
	Auth         service.AuthService
	Creators     service.CreatorService
	Brands       service.BrandService
	Requirements service.RequirementService
	Feedback     service.FeedbackService
	Campaigns    service.CampaignService
}

// NewServices wires the gorm repositories into the services.
func NewServices(db *gorm.DB, cfg *config.Config) *Services {
	userRepo := repository.NewUserRepository(db)
	creatorRepo := repository.NewCreatorProfileRepository(db)
	brandRepo := repository.NewBrandProfileRepository(db)
	requirementRepo := repository.NewRequirementRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)

	return &Services{
		Auth:         service.NewAuthService(userRepo, cfg),
		Creators:     service.NewCreatorService(creatorRepo),
		Brands:       service.NewBrandService(brandRepo),
		Requirements: service.NewRequirementService(requirementRepo),
		Feedback:     service.NewFeedbackService(userRepo, ratingRepo, reviewRepo),
		Campaigns:    service.NewCampaignService(userRepo, campaignRepo),
	}
}

// Server owns the gin engine and the background pieces of its middleware.
type Server struct {
	engine  *gin.Engine
	limiter *middleware.RateLimiter
	metrics *middleware.Metrics
}

// New builds the engine. fetcher serves /social lookups.
func New(cfg *config.Config, db *gorm.DB, svcs *Services, fetcher social.Fetcher) (*Server, error) {
	if err := dto.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		engine:  gin.New(),
		limiter: middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}
	r := s.engine

	r.Use(logger.GinRecovery())
	r.Use(logger.GinLogger())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.MetricsEnabled {
		s.metrics = middleware.NewMetrics()
		s.limiter.OnReject(s.metrics.RateLimitHits.Inc)
		r.Use(s.metrics.Middleware())
	}
	r.Use(middleware.ErrorHandler())

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.NotFound("route not found"))
	})
	r.GET("/health", healthCheck(db))
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	requireAuth := middleware.AuthMiddleware(svcs.Auth)
	api := &r.RouterGroup

	handler.NewAuthHandler(svcs.Auth).RegisterRoutes(api, requireAuth, s.limiter.Middleware())
	handler.NewCreatorHandler(svcs.Creators).RegisterRoutes(api, requireAuth)
	handler.NewBrandHandler(svcs.Brands).RegisterRoutes(api, requireAuth)
	handler.NewRequirementHandler(svcs.Requirements).RegisterRoutes(api, requireAuth)
	handler.NewFeedbackHandler(svcs.Feedback).RegisterRoutes(api, requireAuth)
	handler.NewCampaignHandler(svcs.Campaigns).RegisterRoutes(api, requireAuth)
	handler.NewSocialHandler(fetcher).RegisterRoutes(api)

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Close stops the rate limiter's cleanup loop.
func (s *Server) Close() {
	s.limiter.Stop()
}

// GET /health
func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			logger.Warn().Err(err).Msg("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	}
}
