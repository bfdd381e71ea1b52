package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swiftline/swiftline-api/libs/go/interfaces"
	"github.com/swiftline/swiftline-api/libs/go/logger"
	"github.com/swiftline/swiftline-api/libs/go/types/api/params"
)

type DutyHandler struct {
	common      *CommonServices
	dutyService interfaces.DutyService
}

// NewDutyHandler creates a handler with interface dependencies
func NewDutyHandler(common *CommonServices, dutyService interfaces.DutyService) *DutyHandler {
	return &DutyHandler{
		common:      common,
		dutyService: dutyService,
	}
}

// GetDutyEstimate returns the customs duty estimate for a commodity
// @Summary Get customs duty estimate
// @Description Resolves the base duty rate for an HS/commodity code and applies the tariff surcharge
// @Tags duties
// @Accept json
// @Produce json
// @Param commodity_code query string true "HS/commodity code, dotted or plain"
// @Param customs_value query number true "Declared customs value in major currency units"
// @Success 200 {object} business.DutyEstimate
// @Failure 400 {object} ErrorResponse
// @Router /duty-estimates [get]
func (h *DutyHandler) GetDutyEstimate(c *gin.Context) {
	commodityCode := c.Query("commodity_code")
	if commodityCode == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "commodity_code is required"})
		return
	}

	customsValue, err := strconv.ParseFloat(c.Query("customs_value"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "customs_value must be a number"})
		return
	}

	estimate, err := h.dutyService.Estimate(c.Request.Context(), params.DutyEstimateParams{
		CommodityCode: commodityCode,
		CustomsValue:  customsValue,
	})
	if err != nil {
		logger.Log.Warn("Rejected duty estimate request",
			zap.String("commodity_code", commodityCode),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, estimate)
}
