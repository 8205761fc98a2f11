package analytics

import (
	"math"
	"sort"

	"github.com/guttosm/fundpulse/internal/domain/models"
)

// DefaultRecentWindow is how many of the most recent points are echoed back
// in a TrendSummary when the caller has no explicit preference.
const DefaultRecentWindow = 10

// Summarize computes the derived trend statistics for a fund's daily growth
// series using the default recent-window size.
//
// It is a pure function: no I/O, no hidden state, identical output for
// identical input. It never fails; an empty series degrades to an all-zero
// summary with a flat latest trend, since partial trend data is still useful
// to a caller.
func Summarize(points []models.DailyGrowthPoint) models.TrendSummary {
	return SummarizeWindow(points, DefaultRecentWindow)
}

// SummarizeWindow is Summarize with an explicit recent-window size.
//
// The input order does not matter: the series is re-sorted ascending by date
// before any streak computation, even though the provider delivers it
// most-recent-first.
func SummarizeWindow(points []models.DailyGrowthPoint, recent int) models.TrendSummary {
	if recent <= 0 {
		recent = DefaultRecentWindow
	}

	summary := models.TrendSummary{
		LatestTrend:  models.TrendFlat,
		RecentWindow: []models.DailyGrowthPoint{},
	}
	if len(points) == 0 {
		return summary
	}

	// Copy before sorting; the caller's slice is left untouched.
	asc := make([]models.DailyGrowthPoint, len(points))
	copy(asc, points)
	sort.Slice(asc, func(i, j int) bool { return asc[i].Date.Before(asc[j].Date) })

	total := 0.0
	for _, p := range asc {
		total += p.GrowthPercent
		switch {
		case p.GrowthPercent > 0:
			summary.UpDays++
		case p.GrowthPercent < 0:
			summary.DownDays++
		}
	}
	summary.TotalDays = len(asc)
	summary.TotalGrowthPercent = round2(total)

	// Streaks run backward from the most recent day. A zero-growth day
	// breaks both, so at most one of the two counters is non-zero.
	last := asc[len(asc)-1].GrowthPercent
	switch {
	case last > 0:
		summary.LatestTrend = models.TrendUp
		for i := len(asc) - 1; i >= 0 && asc[i].GrowthPercent > 0; i-- {
			summary.ConsecutiveUpDays++
		}
	case last < 0:
		summary.LatestTrend = models.TrendDown
		for i := len(asc) - 1; i >= 0 && asc[i].GrowthPercent < 0; i-- {
			summary.ConsecutiveDownDays++
		}
	}

	// Most recent points first, for display.
	n := recent
	if n > len(asc) {
		n = len(asc)
	}
	window := make([]models.DailyGrowthPoint, 0, n)
	for i := len(asc) - 1; i >= len(asc)-n; i-- {
		window = append(window, asc[i])
	}
	summary.RecentWindow = window

	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
