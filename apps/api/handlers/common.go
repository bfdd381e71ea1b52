package handlers

import (
	"go.uber.org/zap"

	"github.com/swiftline/swiftline-api/libs/go/db"
	"github.com/swiftline/swiftline-api/libs/go/interfaces"
	"github.com/swiftline/swiftline-api/libs/go/logger"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	db           db.Querier
	logger       *zap.Logger
	QuoteService interfaces.QuoteService
	DutyService  interfaces.DutyService
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	DB           db.Querier
	Logger       *zap.Logger
	QuoteService interfaces.QuoteService
	DutyService  interfaces.DutyService
}

// NewCommonServices creates a new instance of CommonServices with interface dependencies
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}

	return &CommonServices{
		db:           config.DB,
		logger:       config.Logger,
		QuoteService: config.QuoteService,
		DutyService:  config.DutyService,
	}
}
