package dto

import (
	"fmt"

	"github.com/guttosm/fundpulse/internal/domain/models"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// EstimateDTO is the wire form of a live valuation estimate.
//
// When HasData is false the numeric fields are omitted entirely so clients
// cannot mistake an absent estimate for a zero one.
type EstimateDTO struct {
	Growth    *float64 `json:"growth,omitempty" example:"1.23"`
	GrowthStr string   `json:"growth_str,omitempty" example:"+1.23%"`
	Time      string   `json:"time,omitempty" example:"2025-06-02 14:30:00"`
	NAV       string   `json:"nav,omitempty" example:"1.2345"`
	HasData   bool     `json:"has_data"`
}

// DayGrowthDTO is the wire form of the settled day-over-day change.
type DayGrowthDTO struct {
	Growth float64 `json:"growth" example:"-0.51"`
	Date   string  `json:"date" example:"2025-06-01"`
}

// GrowthPointDTO is one trading day inside the trend's recent window.
type GrowthPointDTO struct {
	Date   string  `json:"date" example:"2025-06-01"`
	Growth float64 `json:"growth" example:"0.42"`
}

// TrendDTO is the wire form of the derived trend statistics.
type TrendDTO struct {
	UpDays              int              `json:"up_days" example:"17"`
	DownDays            int              `json:"down_days" example:"11"`
	TotalDays           int              `json:"total_days" example:"30"`
	TotalGrowth         float64          `json:"total_growth" example:"2.54"`
	ConsecutiveUpDays   int              `json:"consecutive_up_days" example:"3"`
	ConsecutiveDownDays int              `json:"consecutive_down_days" example:"0"`
	LatestTrend         string           `json:"latest_trend" example:"up"`
	Recent              []GrowthPointDTO `json:"recent"`
}

// FundResponse represents the JSON structure returned by the
// GET /api/fund/{code} endpoint and each entry of the batch response.
//
// Fields match the API contract and may differ from internal domain models.
// Any of the three sub-objects may be null when its source data was
// unavailable for this query.
type FundResponse struct {
	Success   bool          `json:"success" example:"true"`
	FundCode  string        `json:"fund_code" example:"110011"`
	FundName  string        `json:"fund_name" example:"Example Growth Fund"`
	QueryTime string        `json:"query_time" example:"2025-06-02 14:30:05"`
	Estimate  *EstimateDTO  `json:"estimate"`
	DayGrowth *DayGrowthDTO `json:"day_growth"`
	Trend     *TrendDTO     `json:"trend"`
}

// EstimateResponse is the trimmed payload of GET /api/fund/estimate/{code}.
type EstimateResponse struct {
	Success        bool     `json:"success" example:"true"`
	FundCode       string   `json:"fund_code" example:"110011"`
	FundName       string   `json:"fund_name" example:"Example Growth Fund"`
	EstimateGrowth *float64 `json:"estimate_growth,omitempty" example:"1.23"`
	GrowthStr      string   `json:"estimate_growth_str,omitempty" example:"+1.23%"`
	EstimateTime   string   `json:"estimate_time,omitempty" example:"2025-06-02 14:30:00"`
	EstimateNAV    string   `json:"estimate_nav,omitempty" example:"1.2345"`
	HasEstimate    bool     `json:"has_estimate"`
}

// BatchResponse represents the JSON structure returned by POST /api/fund/batch.
//
// Errors is null when every requested code succeeded; otherwise it maps
// fund codes to their failure reasons. The endpoint itself answers 200 even
// when some codes failed, since the batch is best-effort.
type BatchResponse struct {
	Success bool              `json:"success" example:"true"`
	Count   int               `json:"count" example:"2"`
	Data    []FundResponse    `json:"data"`
	Errors  map[string]string `json:"errors"`
}

// signedPercent renders a growth value the way the original dashboard did,
// with an explicit sign ("+1.23%", "-0.51%", "0.00%").
func signedPercent(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}

// NewFundResponse converts a domain FundResult into its wire representation.
func NewFundResponse(r models.FundResult) FundResponse {
	resp := FundResponse{
		Success:   true,
		FundCode:  r.Code,
		FundName:  r.Name,
		QueryTime: r.QueryTime.Format(dateTimeLayout),
	}

	if e := r.Estimate; e != nil {
		dto := &EstimateDTO{HasData: e.HasData}
		if e.HasData {
			g := e.GrowthPercent
			dto.Growth = &g
			dto.GrowthStr = signedPercent(g)
			dto.Time = e.AsOf.Format(dateTimeLayout)
			dto.NAV = e.NetAssetValue
		}
		resp.Estimate = dto
	}

	if d := r.DayGrowth; d != nil {
		resp.DayGrowth = &DayGrowthDTO{
			Growth: d.GrowthPercent,
			Date:   d.NetValueDate.Format(dateLayout),
		}
	}

	if tr := r.Trend; tr != nil {
		recent := make([]GrowthPointDTO, 0, len(tr.RecentWindow))
		for _, p := range tr.RecentWindow {
			recent = append(recent, GrowthPointDTO{
				Date:   p.Date.Format(dateLayout),
				Growth: p.GrowthPercent,
			})
		}
		resp.Trend = &TrendDTO{
			UpDays:              tr.UpDays,
			DownDays:            tr.DownDays,
			TotalDays:           tr.TotalDays,
			TotalGrowth:         tr.TotalGrowthPercent,
			ConsecutiveUpDays:   tr.ConsecutiveUpDays,
			ConsecutiveDownDays: tr.ConsecutiveDownDays,
			LatestTrend:         string(tr.LatestTrend),
			Recent:              recent,
		}
	}

	return resp
}

// NewEstimateResponse converts a domain FundResult into the estimate-only
// subset returned by the fast endpoint.
func NewEstimateResponse(r models.FundResult) EstimateResponse {
	resp := EstimateResponse{
		Success:  true,
		FundCode: r.Code,
		FundName: r.Name,
	}
	if e := r.Estimate; e != nil && e.HasData {
		g := e.GrowthPercent
		resp.EstimateGrowth = &g
		resp.GrowthStr = signedPercent(g)
		resp.EstimateTime = e.AsOf.Format(dateTimeLayout)
		resp.EstimateNAV = e.NetAssetValue
		resp.HasEstimate = true
	}
	return resp
}

// NewBatchResponse converts a domain BatchResult into its wire
// representation. Errors stays null when the map is empty.
func NewBatchResponse(r models.BatchResult) BatchResponse {
	data := make([]FundResponse, 0, len(r.Successes))
	for _, fr := range r.Successes {
		data = append(data, NewFundResponse(fr))
	}
	resp := BatchResponse{
		Success: true,
		Count:   len(data),
		Data:    data,
	}
	if len(r.Errors) > 0 {
		resp.Errors = r.Errors
	}
	return resp
}
