package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/fundpulse/internal/domain/models"
	"github.com/guttosm/fundpulse/internal/upstream"
)

type stubClient struct {
	est     upstream.Estimate
	estErr  error
	day     upstream.DayGrowth
	dayErr  error
	hist    upstream.History
	histErr error
}

func (s *stubClient) FetchEstimate(_ context.Context, _ string) (upstream.Estimate, error) {
	return s.est, s.estErr
}
func (s *stubClient) FetchDayGrowth(_ context.Context, _ string) (upstream.DayGrowth, error) {
	return s.day, s.dayErr
}
func (s *stubClient) FetchHistory(_ context.Context, _ string, _ int) (upstream.History, error) {
	return s.hist, s.histErr
}
func (s *stubClient) Ping(_ context.Context) error { return nil }

var _ upstream.Client = (*stubClient)(nil)

func fullStub() *stubClient {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	return &stubClient{
		est: upstream.Estimate{
			FundName: "Example Growth Fund",
			Record: models.EstimateRecord{
				GrowthPercent: 1.23,
				AsOf:          date.Add(14*time.Hour + 30*time.Minute),
				NetAssetValue: "1.2345",
				HasData:       true,
			},
		},
		day: upstream.DayGrowth{
			FundName: "Example Growth Fund",
			Record:   models.DayGrowthRecord{GrowthPercent: -0.51, NetValueDate: date.AddDate(0, 0, -1)},
		},
		hist: upstream.History{
			FundName: "Example Growth Fund",
			Points: []models.DailyGrowthPoint{
				{Date: date.AddDate(0, 0, -1), GrowthPercent: -0.51},
				{Date: date.AddDate(0, 0, -2), GrowthPercent: 0.8},
				{Date: date.AddDate(0, 0, -3), GrowthPercent: 0.2},
			},
		},
	}
}

func TestGetFund_AllSourcesPopulated(t *testing.T) {
	svc := NewFundService(fullStub(), 30, 10)

	before := time.Now()
	out, err := svc.GetFund(context.Background(), "110011")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Code != "110011" || out.Name != "Example Growth Fund" {
		t.Fatalf("unexpected identity: %+v", out)
	}
	if out.Estimate == nil || out.DayGrowth == nil || out.Trend == nil {
		t.Fatalf("expected all sub-fields populated: %+v", out)
	}
	if out.QueryTime.Before(before) || time.Since(out.QueryTime) > time.Second {
		t.Fatalf("query time not set to call time: %v", out.QueryTime)
	}
	if out.Trend.TotalDays != 3 || out.Trend.UpDays != 2 || out.Trend.DownDays != 1 {
		t.Fatalf("unexpected trend: %+v", out.Trend)
	}
	// Most recent day is down.
	if out.Trend.LatestTrend != models.TrendDown || out.Trend.ConsecutiveDownDays != 1 {
		t.Fatalf("unexpected streaks: %+v", out.Trend)
	}
}

func TestGetFund_BadCodeRejectedBeforeFetch(t *testing.T) {
	cases := []string{"12AB56", "12345", "1234567", ""}
	for _, code := range cases {
		t.Run(code, func(t *testing.T) {
			// A nil client proves validation fires before any fetch: a call
			// reaching the client would panic.
			svc := NewFundService(nil, 30, 10)
			_, err := svc.GetFund(context.Background(), code)

			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Kind != ValidationBadCode {
				t.Fatalf("expected bad_code validation error, got %v", err)
			}
		})
	}
}

func TestGetFund_PartialSuccess(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*stubClient)
		check  func(t *testing.T, out models.FundResult)
	}{
		{
			name:   "estimate down, trend and day growth survive",
			mutate: func(s *stubClient) { s.estErr = upstream.NewUnavailableError("timeout", nil) },
			check: func(t *testing.T, out models.FundResult) {
				if out.Estimate != nil {
					t.Fatalf("estimate should be absent")
				}
				if out.DayGrowth == nil || out.Trend == nil {
					t.Fatalf("day growth and trend should survive: %+v", out)
				}
				if out.Name == "" {
					t.Fatalf("name should come from a surviving fetch")
				}
			},
		},
		{
			name:   "history down, estimate survives",
			mutate: func(s *stubClient) { s.histErr = upstream.NewParseError("garbled", nil) },
			check: func(t *testing.T, out models.FundResult) {
				if out.Trend != nil {
					t.Fatalf("trend should be absent")
				}
				if out.Estimate == nil || out.DayGrowth == nil {
					t.Fatalf("estimate and day growth should survive: %+v", out)
				}
			},
		},
		{
			name: "off-hours estimate still reported with has_data false",
			mutate: func(s *stubClient) {
				s.est = upstream.Estimate{FundName: "Example Growth Fund", Record: models.EstimateRecord{HasData: false}}
			},
			check: func(t *testing.T, out models.FundResult) {
				if out.Estimate == nil || out.Estimate.HasData {
					t.Fatalf("expected estimate record with has_data=false: %+v", out.Estimate)
				}
				if out.DayGrowth == nil || out.Trend == nil {
					t.Fatalf("trend and day growth should be populated: %+v", out)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := fullStub()
			tc.mutate(stub)
			svc := NewFundService(stub, 30, 10)
			out, err := svc.GetFund(context.Background(), "110011")
			if err != nil {
				t.Fatalf("partial failure must not fail the call: %v", err)
			}
			tc.check(t, out)
		})
	}
}

func TestGetFund_AllSourcesFailed(t *testing.T) {
	cases := []struct {
		name string
		errs [3]error
		want AggregationKind
	}{
		{
			name: "all unavailable",
			errs: [3]error{
				upstream.NewUnavailableError("down", nil),
				upstream.NewUnavailableError("down", nil),
				upstream.NewUnavailableError("down", nil),
			},
			want: AggregationUnavailable,
		},
		{
			name: "one not found wins",
			errs: [3]error{
				upstream.NewUnavailableError("down", nil),
				upstream.NewNotFoundError("999999"),
				upstream.NewParseError("garbled", nil),
			},
			want: AggregationNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubClient{estErr: tc.errs[0], dayErr: tc.errs[1], histErr: tc.errs[2]}
			svc := NewFundService(stub, 30, 10)
			_, err := svc.GetFund(context.Background(), "999999")

			var aerr *AggregationError
			if !errors.As(err, &aerr) {
				t.Fatalf("expected AggregationError, got %v", err)
			}
			if aerr.Kind != tc.want || aerr.Code != "999999" {
				t.Fatalf("got %+v, want kind %q", aerr, tc.want)
			}
		})
	}
}
