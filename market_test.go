package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMarket(seed int64) *MarketEngine {
	e := NewMarketEngine(rand.New(rand.NewSource(seed)))
	e.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }
	return e
}

func TestSnapshotDefaultShape(t *testing.T) {
	t.Parallel()
	e := testMarket(1)

	// Two consecutive calls may disagree on values but never on shape.
	for i := 0; i < 2; i++ {
		snap := e.Snapshot("", "")
		assert.Len(t, snap.CurrentPrices, 15, "top-5 crops × top-3 markets")
		assert.Len(t, snap.PriceTrends, 31)
		assert.Len(t, snap.PriceForecast, 7)
		assert.Len(t, snap.TradingOpportunities, 3)
		assert.Len(t, snap.MarketInsights.KeyInsights, 3)
	}
}

func TestCurrentPriceRiceBounds(t *testing.T) {
	t.Parallel()
	e := testMarket(2)

	for i := 0; i < 100; i++ {
		snap := e.Snapshot("rice", "Delhi")
		require.Len(t, snap.CurrentPrices, 1)

		p := snap.CurrentPrices[0]
		assert.Equal(t, "rice", p.Crop)
		assert.Equal(t, "Delhi", p.Market)
		assert.Equal(t, "quintal", p.Unit)
		assert.GreaterOrEqual(t, p.Price, 2250)
		assert.LessOrEqual(t, p.Price, 2750)
		assert.GreaterOrEqual(t, p.Change, -100)
		assert.LessOrEqual(t, p.Change, 100)
		assert.GreaterOrEqual(t, p.ChangePercent, -10.0)
		assert.LessOrEqual(t, p.ChangePercent, 10.0)
	}
}

func TestUnknownCropUsesFallbackBasePrice(t *testing.T) {
	t.Parallel()
	e := testMarket(3)

	snap := e.Snapshot("quinoa", "Delhi")
	p := snap.CurrentPrices[0]
	assert.GreaterOrEqual(t, p.Price, 1800) // 2000 × 0.9
	assert.LessOrEqual(t, p.Price, 2200)    // 2000 × 1.1
}

func TestPriceTrendsSpanAndOrder(t *testing.T) {
	t.Parallel()
	e := testMarket(4)

	trends := e.Snapshot("rice", "").PriceTrends
	require.Len(t, trends, 31)
	assert.Equal(t, "2026-02-13", trends[0].Date)
	assert.Equal(t, "2026-03-15", trends[30].Date)

	for i := 1; i < len(trends); i++ {
		assert.Greater(t, trends[i].Date, trends[i-1].Date, "dates must ascend")
	}
	for _, p := range trends {
		assert.GreaterOrEqual(t, p.Volume, 500)
		assert.LessOrEqual(t, p.Volume, 1500)
		// base 2500 with at most ±12.5% combined drift
		assert.GreaterOrEqual(t, p.Price, 2187)
		assert.LessOrEqual(t, p.Price, 2813)
	}
}

func TestPriceForecastSpanAndBounds(t *testing.T) {
	t.Parallel()
	e := testMarket(5)

	forecast := e.Snapshot("rice", "").PriceForecast
	require.Len(t, forecast, 7)
	assert.Equal(t, "2026-03-16", forecast[0].Date)
	assert.Equal(t, "2026-03-22", forecast[6].Date)

	for i, f := range forecast {
		if i > 0 {
			assert.Greater(t, f.Date, forecast[i-1].Date)
		}
		assert.GreaterOrEqual(t, f.Confidence, 80)
		assert.LessOrEqual(t, f.Confidence, 95)
		assert.Contains(t, forecastFactors, f.Factors)
	}
}

func TestMarketInsights(t *testing.T) {
	t.Parallel()
	e := testMarket(6)

	insights := e.Snapshot("", "").MarketInsights
	assert.Equal(t, marketInsightPool[:3], insights.KeyInsights)
	assert.Contains(t, marketSentiments, insights.MarketSentiment)
	assert.NotEmpty(t, insights.SupplyDemandBalance)
	assert.NotEmpty(t, insights.SeasonalFactors)
	assert.NotEmpty(t, insights.GovernmentPolicies)
}

func TestTradingOpportunitiesAreStaticDefaults(t *testing.T) {
	t.Parallel()
	e := testMarket(7)

	// Stub data by design: the same three records regardless of query.
	for _, crop := range []string{"", "rice", "onion"} {
		snap := e.Snapshot(crop, "")
		assert.Equal(t, defaultOpportunities, snap.TradingOpportunities)
	}
}
