package service

import (
	"context"
	"sync"
	"time"

	"github.com/guttosm/fundpulse/internal/analytics"
	"github.com/guttosm/fundpulse/internal/domain/models"
	"github.com/guttosm/fundpulse/internal/logger"
	"github.com/guttosm/fundpulse/internal/upstream"
)

// FundService defines the per-fund aggregation logic.
// This decouples HTTP handlers from the upstream client and the analytics.
type FundService interface {
	GetFund(ctx context.Context, code string) (models.FundResult, error)
}

type fundService struct {
	client       upstream.Client
	trendDays    int
	recentWindow int
}

// NewFundService builds a FundService that fetches trendDays of history and
// echoes back recentWindow points in each trend summary.
func NewFundService(client upstream.Client, trendDays, recentWindow int) FundService {
	if trendDays <= 0 {
		trendDays = 30
	}
	if recentWindow <= 0 {
		recentWindow = analytics.DefaultRecentWindow
	}
	return &fundService{client: client, trendDays: trendDays, recentWindow: recentWindow}
}

// GetFund aggregates one fund's estimate, settled day growth, and trend
// summary into a single FundResult.
//
// The three sub-fetches are independent reads and run concurrently. A
// failure in one leaves its field nil while the call still succeeds; only
// when all three fail does GetFund return an AggregationError, with
// KindNotFound when any failure indicates an unknown code.
func (s *fundService) GetFund(ctx context.Context, code string) (models.FundResult, error) {
	if !models.ValidFundCode(code) {
		return models.FundResult{}, &ValidationError{
			Kind:    ValidationBadCode,
			Message: "fund code must be exactly 6 digits",
		}
	}

	var (
		wg sync.WaitGroup

		est    upstream.Estimate
		estErr error

		day    upstream.DayGrowth
		dayErr error

		hist    upstream.History
		histErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		est, estErr = s.client.FetchEstimate(ctx, code)
	}()
	go func() {
		defer wg.Done()
		day, dayErr = s.client.FetchDayGrowth(ctx, code)
	}()
	go func() {
		defer wg.Done()
		hist, histErr = s.client.FetchHistory(ctx, code, s.trendDays)
	}()
	wg.Wait()

	if estErr != nil && dayErr != nil && histErr != nil {
		kind := AggregationUnavailable
		cause := estErr
		for _, err := range []error{estErr, dayErr, histErr} {
			if upstream.IsNotFound(err) {
				kind = AggregationNotFound
				cause = err
				break
			}
		}
		return models.FundResult{}, &AggregationError{Kind: kind, Code: code, Cause: cause}
	}

	result := models.FundResult{
		Code:      code,
		QueryTime: time.Now(),
	}

	if estErr == nil {
		result.Name = est.FundName
		record := est.Record
		result.Estimate = &record
	} else {
		logger.L().Warn().Str("fund", code).Err(estErr).Msg("estimate fetch failed")
	}

	if dayErr == nil {
		if result.Name == "" {
			result.Name = day.FundName
		}
		record := day.Record
		result.DayGrowth = &record
	} else {
		logger.L().Warn().Str("fund", code).Err(dayErr).Msg("day growth fetch failed")
	}

	if histErr == nil {
		if result.Name == "" {
			result.Name = hist.FundName
		}
		trend := analytics.SummarizeWindow(hist.Points, s.recentWindow)
		result.Trend = &trend
	} else {
		logger.L().Warn().Str("fund", code).Err(histErr).Msg("history fetch failed")
	}

	return result, nil
}
