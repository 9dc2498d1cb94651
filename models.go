package main

import (
	"time"
)

// ---------- Prediction API Models ----------

// Prediction kinds accepted by the predict endpoint.
const (
	PredictCropRecommendation       = "crop_recommendation"
	PredictYieldPrediction          = "yield_prediction"
	PredictDiseaseDetection         = "disease_detection"
	PredictFertilizerRecommendation = "fertilizer_recommendation"
)

// PredictionRequest is the body of POST /api/v1/predict.
type PredictionRequest struct {
	PredictionType string          `json:"predictionType"`
	InputData      PredictionInput `json:"inputData"`
	UserID         string          `json:"userId"`
}

// PredictionInput carries the union of fields the four prediction kinds
// read. Missing fields degrade via reference-table fallbacks, they never
// fail a request.
type PredictionInput struct {
	SoilType         string  `json:"soilType,omitempty"`
	Climate          string  `json:"climate,omitempty"`
	Season           string  `json:"season,omitempty"`
	Rainfall         float64 `json:"rainfall,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
	CropType         string  `json:"cropType,omitempty"`
	Area             float64 `json:"area,omitempty"`
	SoilHealth       string  `json:"soilHealth,omitempty"`
	FarmingPractices string  `json:"farmingPractices,omitempty"`
	GrowthStage      string  `json:"growthStage,omitempty"`
	SoilTest         string  `json:"soilTest,omitempty"`
	Symptoms         string  `json:"symptoms,omitempty"`
	ImageData        string  `json:"imageData,omitempty"`
}

// Prediction is the tagged union of the four result payloads. Each kind
// returns its own struct, so callers cannot read fields that don't apply
// to the returned kind.
type Prediction interface {
	predictionKind() string
}

// CropRecommendation is the payload for crop_recommendation.
type CropRecommendation struct {
	RecommendedCrops []string `json:"recommended_crops"`
	Reasons          []string `json:"reasons"`
	PlantingTips     []string `json:"planting_tips"`
	ExpectedYield    string   `json:"expected_yield"`
}

// YieldPrediction is the payload for yield_prediction.
type YieldPrediction struct {
	PredictedYield  int      `json:"predicted_yield"`
	Unit            string   `json:"unit"`
	FactorsAffected []string `json:"factors_affecting"`
	Recommendations []string `json:"recommendations"`
	RiskFactors     []string `json:"risk_factors"`
}

// DiseaseDetection is the payload for disease_detection.
type DiseaseDetection struct {
	DetectedDisease    string   `json:"detected_disease"`
	Severity           string   `json:"severity"`
	Treatments         []string `json:"treatment_recommendations"`
	Preventions        []string `json:"prevention_measures"`
	EstimatedYieldLoss string   `json:"estimated_yield_loss"`
}

// FertilizerDose is a single fertilizer quantity within a stage.
type FertilizerDose struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// FertilizerStage groups doses by application stage (basal, top dressing).
type FertilizerStage struct {
	Stage       string           `json:"stage"`
	Fertilizers []FertilizerDose `json:"fertilizers"`
}

// FertilizerRecommendation is the payload for fertilizer_recommendation.
type FertilizerRecommendation struct {
	Schedule            []FertilizerStage `json:"fertilizer_schedule"`
	OrganicAlternatives []string          `json:"organic_alternatives"`
	ApplicationTips     []string          `json:"application_tips"`
	EstimatedCost       string            `json:"estimated_cost"`
}

func (CropRecommendation) predictionKind() string       { return PredictCropRecommendation }
func (YieldPrediction) predictionKind() string          { return PredictYieldPrediction }
func (DiseaseDetection) predictionKind() string         { return PredictDiseaseDetection }
func (FertilizerRecommendation) predictionKind() string { return PredictFertilizerRecommendation }

// PredictionResponse is the top-level payload returned by the predict
// endpoint. Confidence is synthesized in [0.85, 0.95).
type PredictionResponse struct {
	Prediction Prediction `json:"prediction"`
	Confidence float64    `json:"confidence"`
}

// ---------- Market API Models ----------

// PricePoint is one crop/market cell of the current price grid.
type PricePoint struct {
	Crop          string  `json:"crop"`
	Market        string  `json:"market"`
	Price         int     `json:"price"`
	Unit          string  `json:"unit"`
	Change        int     `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

// TrendPoint is one day of the 31-day historical price series.
type TrendPoint struct {
	Date   string `json:"date"`
	Price  int    `json:"price"`
	Volume int    `json:"volume"`
}

// ForecastPoint is one day of the 7-day price forecast.
type ForecastPoint struct {
	Date           string `json:"date"`
	PredictedPrice int    `json:"predicted_price"`
	Confidence     int    `json:"confidence"`
	Factors        string `json:"factors"`
}

// InsightSummary is the market commentary block.
type InsightSummary struct {
	KeyInsights         []string `json:"key_insights"`
	MarketSentiment     string   `json:"market_sentiment"`
	SupplyDemandBalance string   `json:"supply_demand_balance"`
	SeasonalFactors     string   `json:"seasonal_factors"`
	GovernmentPolicies  string   `json:"government_policies"`
}

// Opportunity is a buy/sell/hold suggestion.
type Opportunity struct {
	Type       string `json:"type"`
	Crop       string `json:"crop"`
	Reason     string `json:"reason"`
	Confidence string `json:"confidence"`
	Timeframe  string `json:"timeframe"`
}

// MarketSnapshot is the top-level payload of GET /api/v1/market.
type MarketSnapshot struct {
	CurrentPrices        []PricePoint    `json:"current_prices"`
	PriceTrends          []TrendPoint    `json:"price_trends"`
	MarketInsights       InsightSummary  `json:"market_insights"`
	PriceForecast        []ForecastPoint `json:"price_forecast"`
	TradingOpportunities []Opportunity   `json:"trading_opportunities"`
}

// ---------- Weather API Models ----------

// WeatherRequest is the body of POST /api/v1/weather.
type WeatherRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Location  string  `json:"location,omitempty"`
}

// CurrentConditions holds the synthesized present-moment weather.
type CurrentConditions struct {
	Temperature      int    `json:"temperature"`
	Humidity         int    `json:"humidity"`
	Rainfall         int    `json:"rainfall"`
	WindSpeed        int    `json:"wind_speed"`
	Pressure         int    `json:"pressure"`
	WeatherCondition string `json:"weather_condition"`
	UVIndex          int    `json:"uv_index"`
	Visibility       int    `json:"visibility"`
}

// ForecastDay is one day of the 7-day weather forecast.
type ForecastDay struct {
	Date                string `json:"date"`
	MaxTemp             int    `json:"max_temp"`
	MinTemp             int    `json:"min_temp"`
	Humidity            int    `json:"humidity"`
	RainfallProbability int    `json:"rainfall_probability"`
	WindSpeed           int    `json:"wind_speed"`
	Condition           string `json:"condition"`
}

// WeatherAlert is an advisory warning valid for the next 24 hours.
type WeatherAlert struct {
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	Severity   string    `json:"severity"`
	ValidUntil time.Time `json:"valid_until"`
}

// AgriInsights is the fixed-shape advisory bundle attached to every
// weather response.
type AgriInsights struct {
	IrrigationRecommendation string `json:"irrigation_recommendation"`
	PlantingAdvice           string `json:"planting_advice"`
	HarvestTiming            string `json:"harvest_timing"`
	PestRisk                 string `json:"pest_risk"`
	DiseaseRisk              string `json:"disease_risk"`
}

// WeatherSnapshot is the top-level payload of POST /api/v1/weather.
type WeatherSnapshot struct {
	Current              CurrentConditions `json:"current"`
	Forecast             []ForecastDay     `json:"forecast"`
	Alerts               []WeatherAlert    `json:"alerts"`
	AgriculturalInsights AgriInsights      `json:"agricultural_insights"`
}
