package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/fundpulse/internal/batch"
	"github.com/guttosm/fundpulse/internal/domain/dto"
	"github.com/guttosm/fundpulse/internal/domain/models"
	"github.com/guttosm/fundpulse/internal/service"
)

// mockFundService resolves each code to a canned outcome.
type mockFundService struct {
	resp map[string]models.FundResult
	errs map[string]error
}

func (m *mockFundService) GetFund(_ context.Context, code string) (models.FundResult, error) {
	if err, ok := m.errs[code]; ok {
		return models.FundResult{}, err
	}
	if r, ok := m.resp[code]; ok {
		return r, nil
	}
	if !models.ValidFundCode(code) {
		return models.FundResult{}, &service.ValidationError{
			Kind:    service.ValidationBadCode,
			Message: "fund code must be exactly 6 digits",
		}
	}
	return models.FundResult{}, &service.AggregationError{Kind: service.AggregationNotFound, Code: code}
}

var _ service.FundService = (*mockFundService)(nil)

func sampleResult(code string) models.FundResult {
	now := time.Date(2025, 6, 2, 14, 30, 5, 0, time.UTC)
	growth := 1.23
	return models.FundResult{
		Code:      code,
		Name:      "Example Growth Fund",
		QueryTime: now,
		Estimate: &models.EstimateRecord{
			GrowthPercent: growth,
			AsOf:          now.Add(-5 * time.Second),
			NetAssetValue: "1.2345",
			HasData:       true,
		},
		DayGrowth: &models.DayGrowthRecord{GrowthPercent: -0.51, NetValueDate: now.AddDate(0, 0, -1)},
		Trend: &models.TrendSummary{
			UpDays: 2, DownDays: 1, TotalDays: 3,
			TotalGrowthPercent: 0.49, ConsecutiveDownDays: 1,
			LatestTrend:  models.TrendDown,
			RecentWindow: []models.DailyGrowthPoint{},
		},
	}
}

func setupRouterWithMock(svc service.FundService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc, batch.NewOrchestrator(svc, 20, 5))
	r := gin.New()
	fund := r.Group("/api/fund")
	fund.GET("/:code", h.GetFund)
	fund.GET("/estimate/:code", h.GetEstimate)
	fund.POST("/batch", h.BatchQuery)
	return r
}

func TestGetFund_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockFundService
		path   string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "malformed code",
			svc:    &mockFundService{},
			path:   "/api/fund/12AB56",
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown fund",
			svc:    &mockFundService{},
			path:   "/api/fund/999999",
			status: http.StatusNotFound,
		},
		{
			name: "upstream down",
			svc: &mockFundService{errs: map[string]error{
				"110011": &service.AggregationError{Kind: service.AggregationUnavailable, Code: "110011"},
			}},
			path:   "/api/fund/110011",
			status: http.StatusBadGateway,
		},
		{
			name: "unexpected error",
			svc: &mockFundService{errs: map[string]error{
				"110011": errors.New("boom"),
			}},
			path:   "/api/fund/110011",
			status: http.StatusInternalServerError,
		},
		{
			name:   "success",
			svc:    &mockFundService{resp: map[string]models.FundResult{"110011": sampleResult("110011")}},
			path:   "/api/fund/110011",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.FundResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if !out.Success || out.FundCode != "110011" || out.FundName != "Example Growth Fund" {
					t.Fatalf("unexpected body: %+v", out)
				}
				if out.Estimate == nil || !out.Estimate.HasData || out.Estimate.GrowthStr != "+1.23%" {
					t.Fatalf("unexpected estimate: %+v", out.Estimate)
				}
				if out.DayGrowth == nil || out.DayGrowth.Growth != -0.51 {
					t.Fatalf("unexpected day growth: %+v", out.DayGrowth)
				}
				if out.Trend == nil || out.Trend.LatestTrend != "down" {
					t.Fatalf("unexpected trend: %+v", out.Trend)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (body: %s)", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestGetEstimate(t *testing.T) {
	t.Run("live estimate", func(t *testing.T) {
		svc := &mockFundService{resp: map[string]models.FundResult{"110011": sampleResult("110011")}}
		r := setupRouterWithMock(svc)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/fund/estimate/110011", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out dto.EstimateResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if !out.HasEstimate || out.EstimateGrowth == nil || *out.EstimateGrowth != 1.23 {
			t.Fatalf("unexpected estimate: %+v", out)
		}
	})

	t.Run("off hours", func(t *testing.T) {
		res := sampleResult("110011")
		res.Estimate = &models.EstimateRecord{HasData: false}
		svc := &mockFundService{resp: map[string]models.FundResult{"110011": res}}
		r := setupRouterWithMock(svc)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/fund/estimate/110011", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("off-hours must still be 200, got %d", w.Code)
		}
		var out dto.EstimateResponse
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if out.HasEstimate || out.EstimateGrowth != nil {
			t.Fatalf("expected has_estimate=false with no growth: %+v", out)
		}
	})
}

func TestBatchQuery_TableDriven(t *testing.T) {
	okSvc := &mockFundService{resp: map[string]models.FundResult{
		"110011": sampleResult("110011"),
		"161725": sampleResult("161725"),
	}}

	cases := []struct {
		name   string
		body   string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "invalid body",
			body:   `{"codes": "not-an-array"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "empty codes",
			body:   `{"codes": []}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "over cap",
			body:   batchBody(21),
			status: http.StatusBadRequest,
		},
		{
			name:   "malformed code in batch",
			body:   `{"codes": ["110011", "12AB56"]}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "mixed outcomes still 200",
			body:   `{"codes": ["110011", "999999", "161725"]}`,
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.BatchResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if !out.Success || out.Count != 2 || len(out.Data) != 2 {
					t.Fatalf("unexpected batch body: %+v", out)
				}
				if out.Errors == nil || out.Errors["999999"] == "" {
					t.Fatalf("expected error entry for 999999: %+v", out.Errors)
				}
			},
		},
		{
			name:   "all success has null errors",
			body:   `{"codes": ["110011", "161725"]}`,
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var raw map[string]json.RawMessage
				if err := json.Unmarshal(body, &raw); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if string(raw["errors"]) != "null" {
					t.Fatalf("errors should be null, got %s", raw["errors"])
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(okSvc)
			req := httptest.NewRequest(http.MethodPost, "/api/fund/batch", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (body: %s)", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

// batchBody builds a JSON body with n distinct valid codes.
func batchBody(n int) string {
	codes := make([]string, 0, n)
	for i := 0; i < n; i++ {
		codes = append(codes, fmt.Sprintf("%q", fmt.Sprintf("%06d", i+1)))
	}
	return `{"codes": [` + strings.Join(codes, ",") + `]}`
}
