package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"catalog-orders/internal/config"
	"catalog-orders/internal/database"
	custommiddleware "catalog-orders/internal/middleware"
	"catalog-orders/internal/repository"
	"catalog-orders/internal/service"
	"catalog-orders/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthChecker reports the state of a backing store
type HealthChecker interface {
	Health(ctx context.Context) map[string]string
}

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *database.Service
	redis  *redis.Client
}

// NewServer wires the repositories, services and handlers on top of the
// connected stores. redisClient may be nil when rate limiting is disabled.
func NewServer(cfg *config.Config, logger *zap.Logger, db *database.Service, redisClient *redis.Client) *Server {
	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      NewRouter(cfg, logger, db.DB(), db, redisClient),
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}

	return server
}

// NewRouter builds the HTTP handler tree
func NewRouter(cfg *config.Config, logger *zap.Logger, db *mongo.Database, health HealthChecker, redisClient *redis.Client) http.Handler {
	router := chi.NewRouter()

	router.Use(custommiddleware.DefaultMiddlewareStack()...)
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	if cfg.RateLimit.Enabled && redisClient != nil {
		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.Requests,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         "rate_limit",
		}, logger))
	}

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		mongoHealth := health.Health(r.Context())
		if mongoHealth["status"] != "up" {
			custommiddleware.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
				"status": "degraded",
				"mongo":  mongoHealth,
			})
			return
		}

		custommiddleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"status": "ok",
			"mongo":  mongoHealth,
		})
	})

	location, err := time.LoadLocation(cfg.Dashboard.Timezone)
	if err != nil {
		logger.Warn("Unknown timezone, reading order dates in UTC",
			zap.String("timezone", cfg.Dashboard.Timezone),
			zap.Error(err),
		)
		location = time.UTC
	}

	// Repositories
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// Services
	links := service.NewRelationshipMaintainer(productRepo, categoryRepo, logger)
	productService := service.NewProductService(productRepo, categoryRepo, links)
	categoryService := service.NewCategoryService(categoryRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, links)
	dashboardService := service.NewDashboardService(dashboardRepo, cfg.Dashboard.Timezone)

	// Routes
	transport.NewProductHandler(productService, logger).RegisterRoutes(router)
	transport.NewCategoryHandler(categoryService, logger).RegisterRoutes(router)
	transport.NewOrderHandler(orderService, location, logger).RegisterRoutes(router)
	transport.NewDashboardHandler(dashboardService, logger).RegisterRoutes(router)

	return router
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.db != nil {
		if err := s.db.Close(ctx); err != nil {
			s.logger.Error("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close Redis client", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
