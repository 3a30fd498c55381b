package di

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"estate-service/cmd/api/infrastructure"
	"estate-service/internal/adapter/cache"
	"estate-service/internal/adapter/db/postgres"
	"estate-service/internal/adapter/gin/handler"
	"estate-service/internal/adapter/gin/middleware"
	"estate-service/internal/adapter/gin/router"
	"estate-service/internal/config"
	"estate-service/internal/usecase/auth"
	"estate-service/internal/usecase/enquiry"
	"estate-service/internal/usecase/property"
	"estate-service/internal/usecase/user"
	"estate-service/pkg/redisclient"
	"estate-service/pkg/token"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	Tokens      token.Service
	AuthUC      *auth.Usecase
	Handlers    router.Handlers
	RateLimit   middleware.RateLimiterConfig
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize database
	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis client
	rdb, err := redisclient.NewClient(context.Background(), redisclient.Config{
		Host:        cfg.Redis.Host,
		Port:        cfg.Redis.Port,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		MaxRetries:  cfg.Redis.MaxRetries,
		PoolSize:    cfg.Redis.PoolSize,
		MinIdleConn: cfg.Redis.MinIdleConn,
	}, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	// Initialize cache layer
	principalCache := cache.NewRedisPrincipalCache(
		rdb.Client,
		time.Duration(cfg.Redis.CacheTTLSeconds)*time.Second,
		l,
	)

	// Initialize repositories
	userRepo := postgres.NewUserRepoPG(db, l)
	propertyRepo := postgres.NewPropertyRepoPG(db, l)
	enquiryRepo := postgres.NewEnquiryRepoPG(db, l)

	// Initialize token service
	tokens, err := token.NewService(cfg.Auth.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	// Initialize use cases
	tokenTTL := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	authUC := auth.New(userRepo, principalCache, tokens, tokenTTL, l)
	userUC := user.New(userRepo, principalCache, l)
	propertyUC := property.New(propertyRepo, l)
	enquiryUC := enquiry.New(enquiryRepo, propertyRepo, l)

	// Initialize handlers
	handlers := router.Handlers{
		Auth:     handler.NewAuthHandler(authUC, l),
		User:     handler.NewUserHandler(userUC, l),
		Property: handler.NewPropertyHandler(propertyUC, l),
		Enquiry:  handler.NewEnquiryHandler(enquiryUC, l),
	}

	rateLimit := middleware.RateLimiterConfig{
		Enabled:           cfg.RateLimit.Enabled,
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstCapacity:     cfg.RateLimit.BurstCapacity,
	}

	return &Container{
		Config:      cfg,
		Logger:      l,
		DB:          db,
		RedisClient: rdb,
		Tokens:      tokens,
		AuthUC:      authUC,
		Handlers:    handlers,
		RateLimit:   rateLimit,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
