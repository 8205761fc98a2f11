package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"resty.dev/v3"

	"github.com/guttosm/fundpulse/internal/domain/models"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Estimate is a live valuation estimate as fetched from the provider,
// together with the fund's display name.
type Estimate struct {
	FundName string
	Record   models.EstimateRecord
}

// DayGrowth is the settled day-over-day change as fetched from the provider.
type DayGrowth struct {
	FundName string
	Record   models.DayGrowthRecord
}

// History is a fund's recent daily growth series, ordered most-recent-first
// as delivered by the provider.
type History struct {
	FundName string
	Points   []models.DailyGrowthPoint
}

// Client defines read access to the upstream fund-data provider.
//
// Implementations must not retry: retry policy, if any, belongs to the
// caller. The code argument is assumed to be an already-validated 6-digit
// fund code.
type Client interface {
	FetchEstimate(ctx context.Context, code string) (Estimate, error)
	FetchDayGrowth(ctx context.Context, code string) (DayGrowth, error)
	FetchHistory(ctx context.Context, code string, days int) (History, error)
	Ping(ctx context.Context) error
}

// HTTPClient implements Client against the provider's JSON REST API.
//
// The underlying resty client pools connections and is safe for concurrent
// use; each request carries the caller's context plus a fixed timeout.
type HTTPClient struct {
	http *resty.Client
}

// NewHTTPClient builds an HTTPClient for the given provider base URL.
// Retries stay disabled; retry policy belongs to the caller.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &HTTPClient{http: c}
}

// Close releases the pooled connections held by the client.
func (c *HTTPClient) Close() error {
	return c.http.Close()
}

// estimatePayload mirrors GET /api/v1/funds/{code}/estimate.
//
// Growth and Time are null outside trading hours; that is an expected
// "no live estimate" state, not an error.
type estimatePayload struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Growth *string `json:"growth"`
	NAV    string  `json:"nav"`
	Time   *string `json:"time"`
}

// dayGrowthPayload mirrors GET /api/v1/funds/{code}/daily.
type dayGrowthPayload struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	Growth string `json:"growth"`
}

// historyPayload mirrors GET /api/v1/funds/{code}/history.
type historyPayload struct {
	Code  string        `json:"code"`
	Name  string        `json:"name"`
	Items []historyItem `json:"items"`
}

type historyItem struct {
	Date   string `json:"date"`
	Growth string `json:"growth"`
}

// FetchEstimate retrieves the live intraday estimate for a fund.
func (c *HTTPClient) FetchEstimate(ctx context.Context, code string) (Estimate, error) {
	body, err := c.get(ctx, fmt.Sprintf("/api/v1/funds/%s/estimate", code), code)
	if err != nil {
		return Estimate{}, err
	}

	var p estimatePayload
	if err := json.Unmarshal(body, &p); err != nil {
		return Estimate{}, NewParseError("decode estimate payload", err)
	}
	if p.Code == "" || p.Name == "" {
		return Estimate{}, NewParseError("estimate payload missing code or name", nil)
	}

	// Both null: no live estimate right now (e.g., outside trading hours).
	if p.Growth == nil && p.Time == nil {
		return Estimate{FundName: p.Name, Record: models.EstimateRecord{HasData: false}}, nil
	}
	if p.Growth == nil || p.Time == nil {
		return Estimate{}, NewParseError("estimate payload has partial live fields", nil)
	}

	growth, err := strconv.ParseFloat(*p.Growth, 64)
	if err != nil {
		return Estimate{}, NewParseError("invalid estimate growth "+*p.Growth, err)
	}
	asOf, err := time.Parse(dateTimeLayout, *p.Time)
	if err != nil {
		return Estimate{}, NewParseError("invalid estimate time "+*p.Time, err)
	}

	return Estimate{
		FundName: p.Name,
		Record: models.EstimateRecord{
			GrowthPercent: growth,
			AsOf:          asOf,
			NetAssetValue: p.NAV,
			HasData:       true,
		},
	}, nil
}

// FetchDayGrowth retrieves the settled change of the last closed trading day.
func (c *HTTPClient) FetchDayGrowth(ctx context.Context, code string) (DayGrowth, error) {
	body, err := c.get(ctx, fmt.Sprintf("/api/v1/funds/%s/daily", code), code)
	if err != nil {
		return DayGrowth{}, err
	}

	var p dayGrowthPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return DayGrowth{}, NewParseError("decode day growth payload", err)
	}
	if p.Code == "" || p.Name == "" || p.Date == "" || p.Growth == "" {
		return DayGrowth{}, NewParseError("day growth payload missing fields", nil)
	}

	date, err := time.Parse(dateLayout, p.Date)
	if err != nil {
		return DayGrowth{}, NewParseError("invalid day growth date "+p.Date, err)
	}
	growth, err := strconv.ParseFloat(p.Growth, 64)
	if err != nil {
		return DayGrowth{}, NewParseError("invalid day growth value "+p.Growth, err)
	}

	return DayGrowth{
		FundName: p.Name,
		Record: models.DayGrowthRecord{
			GrowthPercent: growth,
			NetValueDate:  date,
		},
	}, nil
}

// FetchHistory retrieves up to days recent daily growth points,
// most-recent-first. Duplicate dates in the provider payload are rejected
// rather than silently collapsed.
func (c *HTTPClient) FetchHistory(ctx context.Context, code string, days int) (History, error) {
	body, err := c.get(ctx, fmt.Sprintf("/api/v1/funds/%s/history?days=%d", code, days), code)
	if err != nil {
		return History{}, err
	}

	var p historyPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return History{}, NewParseError("decode history payload", err)
	}
	if p.Code == "" || p.Name == "" {
		return History{}, NewParseError("history payload missing code or name", nil)
	}

	points := make([]models.DailyGrowthPoint, 0, len(p.Items))
	seen := make(map[string]struct{}, len(p.Items))
	for _, it := range p.Items {
		if _, dup := seen[it.Date]; dup {
			return History{}, NewParseError("duplicate history date "+it.Date, nil)
		}
		seen[it.Date] = struct{}{}

		date, err := time.Parse(dateLayout, it.Date)
		if err != nil {
			return History{}, NewParseError("invalid history date "+it.Date, err)
		}
		growth, err := strconv.ParseFloat(it.Growth, 64)
		if err != nil {
			return History{}, NewParseError("invalid history growth "+it.Growth, err)
		}
		points = append(points, models.DailyGrowthPoint{Date: date, GrowthPercent: growth})
	}

	return History{FundName: p.Name, Points: points}, nil
}

// Ping checks basic reachability of the provider. Any HTTP answer counts as
// reachable; only transport-level failures are reported.
func (c *HTTPClient) Ping(ctx context.Context) error {
	if _, err := c.http.R().SetContext(ctx).Get("/"); err != nil {
		return NewUnavailableError("provider unreachable", err)
	}
	return nil
}

// get performs a single GET and classifies transport and status failures.
func (c *HTTPClient) get(ctx context.Context, path, code string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		// Covers connection failures, DNS errors, and timeouts (including
		// context deadline exceeded).
		return nil, NewUnavailableError("request failed", err)
	}

	switch {
	case resp.StatusCode() == 404:
		return nil, NewNotFoundError(code)
	case !resp.IsSuccess():
		return nil, &FetchError{
			Kind:       KindUnavailable,
			StatusCode: resp.StatusCode(),
			Message:    "unexpected upstream status",
		}
	}

	return resp.Bytes(), nil
}
