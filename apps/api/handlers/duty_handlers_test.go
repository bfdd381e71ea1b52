package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/swiftline/swiftline-api/apps/api/handlers"
	"github.com/swiftline/swiftline-api/libs/go/mocks"
	"github.com/swiftline/swiftline-api/libs/go/types/api/params"
	"github.com/swiftline/swiftline-api/libs/go/types/business"
)

func setupDutyRouter(dutyService *mocks.MockDutyService) *gin.Engine {
	common := handlers.NewCommonServices(handlers.CommonServicesConfig{
		DutyService: dutyService,
	})
	handler := handlers.NewDutyHandler(common, dutyService)

	router := gin.New()
	router.GET("/api/v1/duty-estimates", handler.GetDutyEstimate)
	return router
}

func getDutyEstimate(router *gin.Engine, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/duty-estimates"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDutyHandler_GetDutyEstimate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	baseRate := 3.9
	mockService := mocks.NewMockDutyService(ctrl)
	mockService.EXPECT().
		Estimate(gomock.Any(), params.DutyEstimateParams{
			CommodityCode: "8528.72.52",
			CustomsValue:  100,
		}).
		Return(&business.DutyEstimate{
			CommodityCode:        "8528.72.52",
			NormalizedCode:       "85287252",
			BaseRatePercent:      &baseRate,
			BaseDutyAmount:       3.90,
			SurchargeRatePercent: 15,
			SurchargeAmount:      15.00,
			TotalDutyAmount:      18.90,
		}, nil)

	router := setupDutyRouter(mockService)
	w := getDutyEstimate(router, "?commodity_code=8528.72.52&customs_value=100")

	assert.Equal(t, http.StatusOK, w.Code)

	var estimate business.DutyEstimate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &estimate))
	assert.Equal(t, "85287252", estimate.NormalizedCode)
	require.NotNil(t, estimate.BaseRatePercent)
	assert.Equal(t, 3.9, *estimate.BaseRatePercent)
	assert.Equal(t, 18.90, estimate.TotalDutyAmount)
}

func TestDutyHandler_GetDutyEstimate_MissingCommodityCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockDutyService(ctrl)

	router := setupDutyRouter(mockService)
	w := getDutyEstimate(router, "?customs_value=100")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDutyHandler_GetDutyEstimate_InvalidCustomsValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockDutyService(ctrl)

	router := setupDutyRouter(mockService)
	w := getDutyEstimate(router, "?commodity_code=85287252&customs_value=lots")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDutyHandler_GetDutyEstimate_ServiceRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockDutyService(ctrl)
	mockService.EXPECT().
		Estimate(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	router := setupDutyRouter(mockService)
	w := getDutyEstimate(router, "?commodity_code=85287252&customs_value=-5")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
