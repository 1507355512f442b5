package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fulfillment-service/internal/domain/dto"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/mocks"
	"github.com/guttosm/fulfillment-service/internal/service"
)

func setupHandlerTest(t *testing.T, optimizer service.FulfillmentOptimizer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewHandler(optimizer)
	router.POST("/optimize", handler.Optimize)
	router.POST("/shipping", handler.CalculateShipping)
	return router
}

func TestHandler_Optimize(t *testing.T) {
	successResult := &dto.OptimizationResult{
		Success: true,
		Options: []model.RankedAllocationOption{{Rank: 1}},
	}

	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockFulfillmentOptimizer)
		expectedStatus int
		validate       func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful optimization",
			body: `{"demands": {"P1": 2}, "postcode": "560001", "cod": false}`,
			setupMock: func(m *mocks.MockFulfillmentOptimizer) {
				m.On("Optimize", mock.Anything, mock.Anything).Return(successResult, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotNil(t, resp.Data)
			},
		},
		{
			name:           "malformed JSON",
			body:           `{"demands": invalid}`,
			setupMock:      func(m *mocks.MockFulfillmentOptimizer) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "validation error maps to 400",
			body: `{"demands": {"P1": 2}, "postcode": "x"}`,
			setupMock: func(m *mocks.MockFulfillmentOptimizer) {
				m.On("Optimize", mock.Anything, mock.Anything).Return(nil, dto.ErrInvalidPostcode)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "stock source unavailable maps to 503",
			body: `{"demands": {"P1": 2}, "postcode": "560001"}`,
			setupMock: func(m *mocks.MockFulfillmentOptimizer) {
				wrapped := errors.Join(service.ErrStockSourceUnavailable)
				m.On("Optimize", mock.Anything, mock.Anything).Return(nil, wrapped)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "unexpected error maps to 500",
			body: `{"demands": {"P1": 2}, "postcode": "560001"}`,
			setupMock: func(m *mocks.MockFulfillmentOptimizer) {
				m.On("Optimize", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "infeasible order still returns 200",
			body: `{"demands": {"P1": 99}, "postcode": "560001"}`,
			setupMock: func(m *mocks.MockFulfillmentOptimizer) {
				m.On("Optimize", mock.Anything, mock.Anything).Return(&dto.OptimizationResult{
					Success: false,
					Reason:  dto.ReasonStockShortfall,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data, err := json.Marshal(resp.Data)
				require.NoError(t, err)
				var result dto.OptimizationResult
				require.NoError(t, json.Unmarshal(data, &result))
				assert.False(t, result.Success)
				assert.Equal(t, dto.ReasonStockShortfall, result.Reason)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			optimizer := new(mocks.MockFulfillmentOptimizer)
			tt.setupMock(optimizer)
			router := setupHandlerTest(t, optimizer)

			req := httptest.NewRequest(http.MethodPost, "/optimize", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validate != nil {
				tt.validate(t, w)
			}
			optimizer.AssertExpectations(t)
		})
	}
}

func TestHandler_CalculateShipping(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockFulfillmentOptimizer)
		expectedStatus int
	}{
		{
			name: "successful quote",
			body: `{"postcode": "560001", "shipments": [{"location_id": "WH-BLR", "weight": 5}]}`,
			setupMock: func(m *mocks.MockFulfillmentOptimizer) {
				m.On("CalculateShipping", mock.Anything, mock.Anything).Return(&dto.ShippingResult{
					Locations: []dto.LocationQuotes{{LocationID: "WH-BLR", Quotes: []model.CourierQuote{}}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed JSON",
			body:           `not json`,
			setupMock:      func(m *mocks.MockFulfillmentOptimizer) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "validation error maps to 400",
			body: `{"postcode": "560001", "shipments": [{"location_id": "WH-BLR", "weight": 5}]}`,
			setupMock: func(m *mocks.MockFulfillmentOptimizer) {
				m.On("CalculateShipping", mock.Anything, mock.Anything).Return(nil, &dto.ValidationError{
					Field: "shipments", Message: "weight must be positive",
				})
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "all lookups failed maps to 500",
			body: `{"postcode": "560001", "shipments": [{"location_id": "WH-BLR", "weight": 5}]}`,
			setupMock: func(m *mocks.MockFulfillmentOptimizer) {
				m.On("CalculateShipping", mock.Anything, mock.Anything).Return(nil, errors.New("rate lookup failed for every location"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			optimizer := new(mocks.MockFulfillmentOptimizer)
			tt.setupMock(optimizer)
			router := setupHandlerTest(t, optimizer)

			req := httptest.NewRequest(http.MethodPost, "/shipping", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			optimizer.AssertExpectations(t)
		})
	}
}
