package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"estate-service/internal/adapter/gin/handler"
	"estate-service/internal/adapter/gin/middleware"
	"estate-service/internal/adapter/gin/pipeline"
	"estate-service/internal/domain/principal"
	redisclient "estate-service/pkg/redisclient"
	"estate-service/pkg/token"
)

// Handlers groups the resource handlers the router wires up.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Property *handler.PropertyHandler
	Enquiry  *handler.EnquiryHandler
}

// SetupRouter configures and returns a Gin router with all routes and
// middleware. Every route's step order comes from the pipeline builder, not
// from the declaration order below.
func SetupRouter(
	h Handlers,
	tokens token.Service,
	resolver middleware.PrincipalResolver,
	rateCfg middleware.RateLimiterConfig,
	redisClient *redisclient.Client,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(cors.Default())
	if redisClient != nil {
		router.Use(middleware.RateLimiter(rateCfg, redisClient.Client, log))
	}

	// Health check endpoint. Reports degraded when the Redis pool stops
	// responding; the service itself keeps serving.
	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		if redisClient != nil {
			if err := redisClient.Ping(c.Request.Context()); err != nil {
				status = "degraded"
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  status,
			"service": "estate-service",
		})
	})

	authn := middleware.Authenticate(tokens, resolver, log)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", pipeline.New().
				Body(middleware.ValidateBody(handler.RegisterSchema)).
				Handle(h.Auth.Register).
				Build()...)
			auth.POST("/login", pipeline.New().
				Body(middleware.ValidateBody(handler.LoginSchema)).
				Handle(h.Auth.Login).
				Build()...)
			auth.GET("/me", pipeline.New().
				Authenticate(authn).
				Handle(h.Auth.Me).
				Build()...)
		}

		users := v1.Group("/users")
		{
			users.GET("", pipeline.New().
				Authenticate(authn).
				Guard(middleware.RequireRole(principal.RoleAdmin)).
				Handle(h.User.List).
				Build()...)
			users.GET("/:id", pipeline.New().
				Authenticate(authn).
				Guard(middleware.RequireRole(principal.RoleAdmin)).
				IDGuard(middleware.ValidID("id")).
				Handle(h.User.Get).
				Build()...)
			users.DELETE("/:id", pipeline.New().
				Authenticate(authn).
				Guard(middleware.RequireRole(principal.RoleAdmin)).
				IDGuard(middleware.ValidID("id")).
				Handle(h.User.Delete).
				Build()...)
		}

		properties := v1.Group("/properties")
		{
			properties.GET("", pipeline.New().
				Handle(h.Property.List).
				Build()...)
			properties.GET("/mine", pipeline.New().
				Authenticate(authn).
				Guard(middleware.RequireVendor()).
				Handle(h.Property.Mine).
				Build()...)
			properties.GET("/:id", pipeline.New().
				IDGuard(middleware.ValidID("id")).
				Handle(h.Property.Get).
				Build()...)
			properties.POST("", pipeline.New().
				Authenticate(authn).
				Guard(middleware.RequireVerifiedVendor()).
				Body(middleware.ValidateBody(handler.CreatePropertySchema)).
				Handle(h.Property.Create).
				Build()...)
			properties.PATCH("/:id", pipeline.New().
				Authenticate(authn).
				Guard(middleware.RequireAnyRole(principal.RoleVendor, principal.RoleAdmin)).
				IDGuard(middleware.ValidID("id")).
				Body(middleware.ValidateBody(handler.UpdatePropertySchema)).
				Handle(h.Property.Update).
				Build()...)
			properties.DELETE("/:id", pipeline.New().
				Authenticate(authn).
				Guard(middleware.RequireAnyRole(principal.RoleVendor, principal.RoleAdmin)).
				IDGuard(middleware.ValidID("id")).
				Handle(h.Property.Delete).
				Build()...)
		}

		enquiries := v1.Group("/enquiries")
		{
			enquiries.POST("", pipeline.New().
				Authenticate(authn).
				Guard(middleware.RequireRole(principal.RoleUser)).
				Body(middleware.ValidateBody(handler.CreateEnquirySchema)).
				Handle(h.Enquiry.Create).
				Build()...)
			enquiries.GET("", pipeline.New().
				Authenticate(authn).
				Guard(middleware.RequireAnyRole(principal.RoleVendor, principal.RoleAdmin)).
				Handle(h.Enquiry.List).
				Build()...)
		}
	}

	return router
}
