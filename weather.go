package main

import (
	"math"
	"time"
)

// ══════════════════════════════════════════════
//  WEATHER SYNTHESIS ENGINE
// ══════════════════════════════════════════════

// WeatherEngine synthesizes current conditions, a 7-day forecast, 0-2
// alerts and a fixed advisory bundle. In production this would sit in
// front of Open-Meteo or similar; the bounds below are the contract the
// frontend is built against.
type WeatherEngine struct {
	rng randSource
	now func() time.Time
}

func NewWeatherEngine(rng randSource) *WeatherEngine {
	return &WeatherEngine{rng: rng, now: time.Now}
}

// Snapshot builds the full weather payload. Coordinates only matter to
// the persistence layer; generation is location-independent.
func (e *WeatherEngine) Snapshot() WeatherSnapshot {
	return WeatherSnapshot{
		Current:              e.current(),
		Forecast:             e.forecast(),
		Alerts:               e.alerts(),
		AgriculturalInsights: defaultAgriInsights,
	}
}

// ── Current conditions ──────────────────────

func (e *WeatherEngine) current() CurrentConditions {
	return CurrentConditions{
		Temperature:      e.roundRange(20, 15),   // 15-35°C
		Humidity:         e.roundRange(40, 40),   // 40-80%
		Rainfall:         e.roundRange(10, 0),    // 0-10mm
		WindSpeed:        e.roundRange(15, 5),    // 5-20 km/h
		Pressure:         e.roundRange(50, 1000), // 1000-1050 hPa
		WeatherCondition: e.condition(),
		UVIndex:          e.roundRange(10, 0),
		Visibility:       e.roundRange(10, 5), // 5-15 km
	}
}

// roundRange rounds a uniform draw over [offset, offset+span].
func (e *WeatherEngine) roundRange(span, offset float64) int {
	return int(math.Round(e.rng.Float64()*span + offset))
}

var weatherConditions = []string{"sunny", "partly_cloudy", "cloudy", "rainy", "stormy", "foggy"}

func (e *WeatherEngine) condition() string {
	return weatherConditions[e.rng.Intn(len(weatherConditions))]
}

// ── Forecast ────────────────────────────────

func (e *WeatherEngine) forecast() []ForecastDay {
	now := e.now()
	days := make([]ForecastDay, 0, 7)
	for i := 1; i <= 7; i++ {
		days = append(days, ForecastDay{
			Date:                now.AddDate(0, 0, i).Format("2006-01-02"),
			MaxTemp:             e.roundRange(15, 20),
			MinTemp:             e.roundRange(10, 10),
			Humidity:            e.roundRange(40, 40),
			RainfallProbability: e.roundRange(100, 0),
			WindSpeed:           e.roundRange(15, 5),
			Condition:           e.condition(),
		})
	}
	return days
}

// ── Alerts ──────────────────────────────────

type alertTemplate struct {
	Type    string
	Message string
}

var alertTemplates = []alertTemplate{
	{"heat_wave", "Heat wave warning: Temperatures may exceed 40°C. Ensure adequate irrigation."},
	{"heavy_rain", "Heavy rainfall expected: Risk of waterlogging. Prepare drainage systems."},
	{"frost", "Frost warning: Protect sensitive crops from low temperatures."},
	{"drought", "Drought conditions: Conserve water and consider drought-resistant crops."},
}

// alerts draws 0, 1 or 2 alerts, each from a random template, valid for
// the next 24 hours.
func (e *WeatherEngine) alerts() []WeatherAlert {
	count := e.rng.Intn(3)
	alerts := make([]WeatherAlert, 0, count)
	for i := 0; i < count; i++ {
		tpl := alertTemplates[e.rng.Intn(len(alertTemplates))]
		alerts = append(alerts, WeatherAlert{
			Type:       tpl.Type,
			Message:    tpl.Message,
			Severity:   severityLevels[e.rng.Intn(len(severityLevels))],
			ValidUntil: e.now().Add(24 * time.Hour),
		})
	}
	return alerts
}

// defaultAgriInsights is static advisory text regardless of the
// synthesized conditions. Pending product clarification on whether it
// should derive from the generated weather; kept as swappable defaults.
var defaultAgriInsights = AgriInsights{
	IrrigationRecommendation: "Based on current weather conditions, moderate irrigation is recommended.",
	PlantingAdvice:           "Good conditions for planting heat-tolerant crops.",
	HarvestTiming:            "Consider harvesting mature crops before expected rainfall.",
	PestRisk:                 "Medium risk of pest activity due to current humidity levels.",
	DiseaseRisk:              "Low risk of fungal diseases with current weather patterns.",
}
