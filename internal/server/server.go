package server

import (
	"context"
	"net/http"

	_ "github.com/cofipei/chart-api/docs"
	"github.com/cofipei/chart-api/internal/auth"
	awsclient "github.com/cofipei/chart-api/internal/client/aws"
	"github.com/cofipei/chart-api/internal/chart"
	"github.com/cofipei/chart-api/internal/config"
	"github.com/cofipei/chart-api/internal/constants"
	"github.com/cofipei/chart-api/internal/handlers"
	"github.com/cofipei/chart-api/internal/interfaces"
	"github.com/cofipei/chart-api/internal/logger"
	"github.com/cofipei/chart-api/internal/middleware"
	"github.com/cofipei/chart-api/internal/report"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies is everything the routes need
type Dependencies struct {
	Config        *config.Config
	Verifier      interfaces.APIKeyVerifier
	ChartRenderer interfaces.ChartRenderer
	ReportService interfaces.ReportService
	RateLimiter   *middleware.RateLimiter
}

// Close releases background resources
func (d *Dependencies) Close() {
	if d.RateLimiter != nil {
		d.RateLimiter.Stop()
	}
}

// Handler Definitions
var (
	deps          *Dependencies
	chartHandler  *handlers.ChartHandler
	reportHandler *handlers.ReportHandler
	healthHandler *handlers.HealthHandler
)

// NewDependencies builds the verifier, renderers and services for cfg.
// Secrets Manager is only contacted when an API key ARN is configured.
func NewDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	var secrets auth.SecretSource
	if cfg.APIKeyARN != "" && cfg.APIKeyHash == "" {
		client, err := awsclient.NewSecretsManagerClient(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create secrets manager client")
		}
		secrets = client
	}

	verifier, err := auth.NewVerifierFromConfig(ctx, cfg, secrets)
	if err != nil {
		return nil, errors.Wrap(err, "failed to configure API key verifier")
	}

	return &Dependencies{
		Config:        cfg,
		Verifier:      verifier,
		ChartRenderer: chart.NewRenderer(chart.ChartProfile(cfg.ChartDPI), logger.Log),
		ReportService: report.NewService(
			chart.NewRenderer(chart.ReportProfile(cfg.ReportDPI), logger.Log),
			logger.Log,
		),
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, middleware.WithAuthCheck(auth.IsAuthenticated)),
	}, nil
}

// InitializeHandlers wires the package level handlers from cfg
func InitializeHandlers(ctx context.Context, cfg *config.Config) {
	d, err := NewDependencies(ctx, cfg)
	if err != nil {
		logger.Fatal("Unable to initialize handlers", zap.Error(err))
	}
	setHandlers(d)
}

func setHandlers(d *Dependencies) {
	deps = d
	chartHandler = handlers.NewChartHandler(d.ChartRenderer, d.Verifier)
	reportHandler = handlers.NewReportHandler(d.ReportService)
	healthHandler = handlers.NewHealthHandler()
}

// InitializeRoutes registers middleware and routes on router. InitializeHandlers must run first.
func InitializeRoutes(router *gin.Engine) {
	cfg := deps.Config

	router.Use(middleware.CorrelationIDMiddleware())
	if cfg.IsProduction() {
		router.Use(middleware.RequestLoggingMiddleware())
	} else {
		router.Use(middleware.EnhancedLoggingMiddleware(true))
	}
	router.Use(configureCORS(cfg.CORSAllowedOrigins))

	// The limiter runs after the API key gate so that only verified keys
	// get their own bucket.
	var limit gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if deps.RateLimiter != nil {
		limit = deps.RateLimiter.Middleware()
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", healthHandler.Health)

	router.POST("/generate-chart", auth.EnsureValidAPIKey(deps.Verifier), limit, chartHandler.GenerateChart)
	if cfg.APIKeyEndpointEnabled() {
		logger.Warn("GET /get-api-key is enabled; it hands out the API key to any caller")
		router.GET("/get-api-key", limit, chartHandler.GetAPIKey)
	}

	router.POST("/relatorio-financeiro", limit, reportHandler.GenerateReport)

	router.NoRoute(limit, func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found", "correlation_id": middleware.GetCorrelationID(c)})
	})
}

// NewRouter builds a gin engine serving every route for d
func NewRouter(d *Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	setHandlers(d)
	InitializeRoutes(router)
	return router
}

// configureCORS returns a configured CORS middleware. No origins means every
// origin is allowed.
func configureCORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if len(origins) == 0 {
		logger.Warn("CORS allows every origin; set CORS_ALLOWED_ORIGINS to restrict it")
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", constants.APIKeyHeader, constants.CorrelationIDHeader}
	corsConfig.ExposeHeaders = []string{constants.CorrelationIDHeader, "Retry-After"}

	return cors.New(corsConfig)
}
