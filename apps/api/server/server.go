package server

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/swiftline/swiftline-api/apps/api/handlers"
	awsclient "github.com/swiftline/swiftline-api/libs/go/client/aws"
	"github.com/swiftline/swiftline-api/libs/go/client/cargoone"
	"github.com/swiftline/swiftline-api/libs/go/client/postnova"
	"github.com/swiftline/swiftline-api/libs/go/client/shipex"
	"github.com/swiftline/swiftline-api/libs/go/constants"
	"github.com/swiftline/swiftline-api/libs/go/db"
	"github.com/swiftline/swiftline-api/libs/go/helpers"
	"github.com/swiftline/swiftline-api/libs/go/interfaces"
	"github.com/swiftline/swiftline-api/libs/go/logger"
	"github.com/swiftline/swiftline-api/libs/go/middleware"
	"github.com/swiftline/swiftline-api/libs/go/services"
)

// Handler Definitions
var (
	quoteHandler  *handlers.QuoteHandler
	dutyHandler   *handlers.DutyHandler
	healthHandler *handlers.HealthHandler

	// Database
	dbQueries *db.Queries

	// Services
	commonServices *handlers.CommonServices
)

// InitializeHandlers wires configuration, clients and services. It is
// called once at startup by both the local and the Lambda entrypoint.
func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	// --- Determine and Validate Stage ---
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	// --- Initialize Logger (AFTER stage validation) ---
	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	// --- Database ---
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Fatal("Unable to create database pool", zap.Error(err))
	}
	dbQueries = db.New(pool)

	// --- Carrier provider clients ---
	providers := buildProviders(ctx)
	if len(providers) == 0 {
		logger.Warn("No quote providers enabled; combined quotes will always be unavailable")
	}

	// --- Quote audit sink ---
	var publisher services.AuditPublisher
	if queueURL := os.Getenv("QUOTE_AUDIT_QUEUE_URL"); queueURL != "" {
		sqsPublisher, err := awsclient.NewSQSPublisher(ctx, queueURL)
		if err != nil {
			logger.Warn("Quote audit queue disabled", zap.Error(err))
		} else {
			publisher = sqsPublisher
		}
	}
	auditService := services.NewQuoteAuditService(dbQueries, publisher)

	// --- Services ---
	quoteService := services.NewQuoteService(dbQueries, providers, auditService)
	dutyService := services.NewDutyService(dbQueries)

	commonServices = handlers.NewCommonServices(handlers.CommonServicesConfig{
		DB:           dbQueries,
		Logger:       logger.Log,
		QuoteService: quoteService,
		DutyService:  dutyService,
	})

	quoteHandler = handlers.NewQuoteHandler(commonServices, quoteService)
	dutyHandler = handlers.NewDutyHandler(commonServices, dutyService)
	healthHandler = handlers.NewHealthHandler(commonServices)
}

// buildProviders constructs the enabled provider set. QUOTE_PROVIDERS is a
// comma-separated list; disabling a provider is a configuration change, not
// a code change.
func buildProviders(ctx context.Context) []interfaces.QuoteProvider {
	enabled := strings.Split(getEnvWithDefault("QUOTE_PROVIDERS",
		strings.Join([]string{constants.CargoOneProvider, constants.ShipExProvider, constants.PostNovaProvider}, ",")), ",")

	secrets, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Warn("Secrets Manager unavailable, relying on env-var credentials", zap.Error(err))
	}

	var providers []interfaces.QuoteProvider
	for _, name := range enabled {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case constants.CargoOneProvider:
			id := resolveSecret(ctx, secrets, "CARGOONE_CLIENT_ID_ARN", "CARGOONE_CLIENT_ID")
			secret := resolveSecret(ctx, secrets, "CARGOONE_CLIENT_SECRET_ARN", "CARGOONE_CLIENT_SECRET")
			if id == "" || secret == "" {
				logger.Warn("CargoOne credentials missing, provider disabled")
				continue
			}
			providers = append(providers, cargoone.NewClient(id, secret))
		case constants.ShipExProvider:
			id := resolveSecret(ctx, secrets, "SHIPEX_CLIENT_ID_ARN", "SHIPEX_CLIENT_ID")
			secret := resolveSecret(ctx, secrets, "SHIPEX_CLIENT_SECRET_ARN", "SHIPEX_CLIENT_SECRET")
			if id == "" || secret == "" {
				logger.Warn("ShipEx credentials missing, provider disabled")
				continue
			}
			providers = append(providers, shipex.NewClient(id, secret))
		case constants.PostNovaProvider:
			apiKey := resolveSecret(ctx, secrets, "POSTNOVA_API_KEY_ARN", "POSTNOVA_API_KEY")
			if apiKey == "" {
				logger.Warn("PostNova API key missing, provider disabled")
				continue
			}
			providers = append(providers, postnova.NewClient(apiKey))
		case "":
		default:
			logger.Warn("Unknown quote provider in QUOTE_PROVIDERS", zap.String("provider", name))
		}
	}

	return providers
}

func resolveSecret(ctx context.Context, secrets *awsclient.SecretsManagerClient, arnEnvVar, fallbackEnvVar string) string {
	if secrets != nil {
		value, err := secrets.GetSecretString(ctx, arnEnvVar, fallbackEnvVar)
		if err == nil {
			return value
		}
		logger.Debug("Secret not resolved", zap.String("envVar", fallbackEnvVar), zap.Error(err))
		return ""
	}
	return os.Getenv(fallbackEnvVar)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// InitializeRoutes registers all HTTP routes on the router.
func InitializeRoutes(router *gin.Engine) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, middleware.CorrelationIDHeader)
	router.Use(cors.New(corsConfig))
	router.Use(middleware.CorrelationIDMiddleware())

	// Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", healthHandler.Check)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/quotes", quoteHandler.GetCombinedQuote)
		v1.GET("/duty-estimates", dutyHandler.GetDutyEstimate)
	}
}
