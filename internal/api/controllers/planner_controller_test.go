package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wadi/internal/api/controllers"
	"wadi/internal/models/response_models"
	"wadi/internal/services"
	"wadi/pkg/utils"
)

type mockPlannerService struct {
	generatePlan func(ctx context.Context, days int, budget string, interests []string) (response_models.ItineraryResult, error)
}

func (m *mockPlannerService) GeneratePlan(ctx context.Context, days int, budget string, interests []string) (response_models.ItineraryResult, error) {
	return m.generatePlan(ctx, days, budget, interests)
}

var _ services.PlannerServiceInterface = (*mockPlannerService)(nil)

func newPlannerRouter(svc services.PlannerServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/attractions/generate-plan", controllers.NewPlannerController(svc).GeneratePlan)
	return r
}

func TestGeneratePlan_200(t *testing.T) {
	svc := &mockPlannerService{
		generatePlan: func(_ context.Context, days int, budget string, interests []string) (response_models.ItineraryResult, error) {
			assert.Equal(t, 2, days)
			assert.Equal(t, "low", budget)
			assert.Equal(t, []string{"historical"}, interests)
			return response_models.ItineraryResult{
				Itinerary:          []response_models.ItineraryDay{{Day: 1}, {Day: 2}},
				TotalEstimatedCost: 1170,
			}, nil
		},
	}
	r := newPlannerRouter(svc)

	body := `{"days": 2, "budget": "low", "interests": ["historical"]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/attractions/generate-plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string                          `json:"status"`
		Data   response_models.ItineraryResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Len(t, resp.Data.Itinerary, 2)
	assert.Equal(t, 1170.0, resp.Data.TotalEstimatedCost)
}

func TestGeneratePlan_InvalidDays_400(t *testing.T) {
	svc := &mockPlannerService{
		generatePlan: func(_ context.Context, _ int, _ string, _ []string) (response_models.ItineraryResult, error) {
			return response_models.ItineraryResult{}, utils.ErrInvalidDays
		},
	}
	r := newPlannerRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/attractions/generate-plan", strings.NewReader(`{"days": 0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratePlan_MalformedBody_400(t *testing.T) {
	svc := &mockPlannerService{}
	r := newPlannerRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/attractions/generate-plan", strings.NewReader(`{"days": "two"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
