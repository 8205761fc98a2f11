package models

import (
	"regexp"
	"time"
)

// fundCodePattern matches exactly six ASCII digits.
var fundCodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// ValidFundCode reports whether code is a well-formed 6-digit fund identifier.
//
// Validation happens before any upstream fetch is attempted; malformed codes
// never reach the data-source client.
func ValidFundCode(code string) bool {
	return fundCodePattern.MatchString(code)
}

// EstimateRecord is the live intraday valuation estimate for a fund.
//
// HasData is false when the provider returns no live estimate (e.g., outside
// trading hours). In that case the remaining fields are zero values and must
// not be interpreted as an actual estimate of zero.
type EstimateRecord struct {
	GrowthPercent float64   `json:"growth_percent"`
	AsOf          time.Time `json:"as_of"`
	NetAssetValue string    `json:"net_asset_value"`
	HasData       bool      `json:"has_data"`
}

// DayGrowthRecord is the realized (settled) day-over-day change for the most
// recently closed trading day, distinct from the live intraday estimate.
type DayGrowthRecord struct {
	GrowthPercent float64   `json:"growth_percent"`
	NetValueDate  time.Time `json:"net_value_date"`
}

// DailyGrowthPoint is one trading day's growth percentage. Date is the
// natural key of the series; a well-formed series never repeats a date.
type DailyGrowthPoint struct {
	Date          time.Time `json:"date"`
	GrowthPercent float64   `json:"growth_percent"`
}

// Trend is the direction of the most recent trading day.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// TrendSummary holds the derived statistics over a fund's recent daily
// growth window. It is immutable once computed.
//
// TotalGrowthPercent is the simple sum of the daily growth percentages over
// the window, rounded to two decimal places (not compounded).
// ConsecutiveUpDays and ConsecutiveDownDays are the streak lengths ending at
// the most recent day; a zero-growth day breaks both streaks.
// RecentWindow lists the most recent points ordered most-recent-first.
type TrendSummary struct {
	UpDays              int                `json:"up_days"`
	DownDays            int                `json:"down_days"`
	TotalDays           int                `json:"total_days"`
	TotalGrowthPercent  float64            `json:"total_growth_percent"`
	ConsecutiveUpDays   int                `json:"consecutive_up_days"`
	ConsecutiveDownDays int                `json:"consecutive_down_days"`
	LatestTrend         Trend              `json:"latest_trend"`
	RecentWindow        []DailyGrowthPoint `json:"recent_window"`
}

// FundResult is the complete per-fund aggregation outcome.
//
// Any of the three sub-records may be nil when its source data was
// unavailable; absence is not an error for the whole result.
type FundResult struct {
	Code      string           `json:"code"`
	Name      string           `json:"name"`
	QueryTime time.Time        `json:"query_time"`
	Estimate  *EstimateRecord  `json:"estimate,omitempty"`
	DayGrowth *DayGrowthRecord `json:"day_growth,omitempty"`
	Trend     *TrendSummary    `json:"trend,omitempty"`
}

// BatchResult collects the outcome of a batch query. A code appears either
// in Successes or in Errors, never in both.
type BatchResult struct {
	Successes []FundResult      `json:"successes"`
	Errors    map[string]string `json:"errors"`
}
