package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/swiftline/swiftline-api/libs/go/interfaces"
	"github.com/swiftline/swiftline-api/libs/go/logger"
	"github.com/swiftline/swiftline-api/libs/go/types/api/params"
)

type QuoteHandler struct {
	common       *CommonServices
	quoteService interfaces.QuoteService
}

// NewQuoteHandler creates a handler with interface dependencies
func NewQuoteHandler(common *CommonServices, quoteService interfaces.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		common:       common,
		quoteService: quoteService,
	}
}

// CombinedQuoteRequest represents a combined quote request body.
// Dimensions are centimeters, weight is kilograms.
type CombinedQuoteRequest struct {
	LengthCm           float64 `json:"length_cm" binding:"required"`
	WidthCm            float64 `json:"width_cm" binding:"required"`
	HeightCm           float64 `json:"height_cm" binding:"required"`
	WeightKg           float64 `json:"weight_kg" binding:"required"`
	DestinationCountry string  `json:"destination_country" binding:"required"`
	BaseMultiplier     float64 `json:"base_multiplier"`
	SkipRules          bool    `json:"skip_rules"`
	UserID             *string `json:"user_id,omitempty"`
}

// GetCombinedQuote returns the ranked carrier options for a package
// @Summary Get combined carrier quote
// @Description Fans out to all configured carrier pricing providers and returns the deduplicated, ranked option set
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body CombinedQuoteRequest true "Package and pricing context"
// @Success 200 {object} responses.CombinedQuoteResult
// @Failure 400 {object} ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) GetCombinedQuote(c *gin.Context) {
	var req CombinedQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	p := params.QuoteParams{
		LengthCm:           req.LengthCm,
		WidthCm:            req.WidthCm,
		HeightCm:           req.HeightCm,
		WeightKg:           req.WeightKg,
		DestinationCountry: req.DestinationCountry,
		BaseMultiplier:     req.BaseMultiplier,
		SkipRules:          req.SkipRules,
	}
	if p.BaseMultiplier == 0 {
		p.BaseMultiplier = 1.0
	}

	if req.UserID != nil {
		userID, err := uuid.Parse(*req.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user_id"})
			return
		}
		p.UserID = &userID
	}

	result, err := h.quoteService.GetCombinedQuote(c.Request.Context(), p)
	if err != nil {
		logger.Log.Warn("Rejected combined quote request",
			zap.String("destination", req.DestinationCountry),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	// "No provider could quote" is a valid outcome, not an HTTP error;
	// the route layer reports it with Success=false.
	c.JSON(http.StatusOK, result)
}
