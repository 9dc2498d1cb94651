package main

import (
	"math"
	"time"
)

// ══════════════════════════════════════════════
//  MARKET SYNTHESIS ENGINE
// ══════════════════════════════════════════════

// MarketEngine synthesizes mandi price data: a current price grid, a
// 31-day trend, a 7-day forecast and commentary. Prices wobble around
// the reference base price; repeated calls return different numbers but
// always the same shapes and bounds.
type MarketEngine struct {
	rng randSource
	now func() time.Time
}

func NewMarketEngine(rng randSource) *MarketEngine {
	return &MarketEngine{rng: rng, now: time.Now}
}

// Snapshot builds the full market payload. An empty crop widens the
// query to the top five crops, an empty location to the top three
// markets.
func (e *MarketEngine) Snapshot(crop, location string) MarketSnapshot {
	targetCrops := marketCrops[:5]
	if crop != "" {
		targetCrops = []string{crop}
	}
	targetMarkets := marketCities[:3]
	if location != "" {
		targetMarkets = []string{location}
	}

	return MarketSnapshot{
		CurrentPrices:        e.currentPrices(targetCrops, targetMarkets),
		PriceTrends:          e.priceTrends(targetCrops[0]),
		MarketInsights:       e.insights(),
		PriceForecast:        e.priceForecast(targetCrops[0]),
		TradingOpportunities: defaultOpportunities,
	}
}

// ── Current prices ──────────────────────────

func (e *MarketEngine) currentPrices(crops, markets []string) []PricePoint {
	prices := make([]PricePoint, 0, len(crops)*len(markets))
	for _, cropName := range crops {
		for _, market := range markets {
			base := float64(basePriceFor(cropName))
			variation := (e.rng.Float64() - 0.5) * 0.2 // ±10%
			prices = append(prices, PricePoint{
				Crop:          cropName,
				Market:        market,
				Price:         int(math.Round(base * (1 + variation))),
				Unit:          "quintal",
				Change:        int(math.Round((e.rng.Float64() - 0.5) * 200)),
				ChangePercent: math.Round((e.rng.Float64()-0.5)*20*100) / 100,
			})
		}
	}
	return prices
}

// ── Historical trend ────────────────────────

// priceTrends walks from 30 days ago through today, ascending. The
// sinusoid gives a smooth non-monotonic drift, the noise term keeps it
// from looking machine-drawn.
func (e *MarketEngine) priceTrends(crop string) []TrendPoint {
	base := float64(basePriceFor(crop))
	now := e.now()

	trends := make([]TrendPoint, 0, 31)
	for i := 30; i >= 0; i-- {
		variation := math.Sin(float64(i)*0.2)*0.1 + (e.rng.Float64()-0.5)*0.05
		trends = append(trends, TrendPoint{
			Date:   now.AddDate(0, 0, -i).Format("2006-01-02"),
			Price:  int(math.Round(base * (1 + variation))),
			Volume: int(math.Round(e.rng.Float64()*1000 + 500)),
		})
	}
	return trends
}

// ── Forecast ────────────────────────────────

func (e *MarketEngine) priceForecast(crop string) []ForecastPoint {
	base := float64(basePriceFor(crop))
	now := e.now()

	forecast := make([]ForecastPoint, 0, 7)
	for i := 1; i <= 7; i++ {
		trend := math.Sin(float64(i)*0.3)*0.05 + (e.rng.Float64()-0.5)*0.03
		forecast = append(forecast, ForecastPoint{
			Date:           now.AddDate(0, 0, i).Format("2006-01-02"),
			PredictedPrice: int(math.Round(base * (1 + trend))),
			Confidence:     int(math.Round((0.8 + e.rng.Float64()*0.15) * 100)),
			Factors:        forecastFactors[e.rng.Intn(len(forecastFactors))],
		})
	}
	return forecast
}

var forecastFactors = []string{"weather", "demand", "supply", "policy"}

// ── Commentary ──────────────────────────────

var marketInsightPool = []string{
	"Onion prices expected to rise due to reduced supply from major producing states",
	"Wheat prices stable with good harvest expectations",
	"Cotton prices showing upward trend due to export demand",
	"Rice prices may fluctuate based on monsoon patterns",
	"Vegetable prices volatile due to weather conditions",
}

var marketSentiments = []string{"bullish", "bearish", "neutral"}

func (e *MarketEngine) insights() InsightSummary {
	return InsightSummary{
		KeyInsights:         marketInsightPool[:3],
		MarketSentiment:     marketSentiments[e.rng.Intn(len(marketSentiments))],
		SupplyDemandBalance: "Balanced supply with moderate demand",
		SeasonalFactors:     "Post-harvest season affecting prices",
		GovernmentPolicies:  "MSP announcements may impact grain prices",
	}
}

// defaultOpportunities is static stub data regardless of the query.
// Pending product clarification on whether these should derive from the
// generated prices; until then they are swappable defaults, not logic.
var defaultOpportunities = []Opportunity{
	{
		Type:       "buy",
		Crop:       "onion",
		Reason:     "Prices expected to rise by 15% in next month",
		Confidence: "high",
		Timeframe:  "1 month",
	},
	{
		Type:       "sell",
		Crop:       "potato",
		Reason:     "Current prices above seasonal average",
		Confidence: "medium",
		Timeframe:  "2 weeks",
	},
	{
		Type:       "hold",
		Crop:       "wheat",
		Reason:     "Stable prices with no major changes expected",
		Confidence: "high",
		Timeframe:  "3 months",
	},
}
