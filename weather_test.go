package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeather(seed int64) *WeatherEngine {
	e := NewWeatherEngine(rand.New(rand.NewSource(seed)))
	e.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }
	return e
}

func TestCurrentConditionsBounds(t *testing.T) {
	t.Parallel()
	e := testWeather(1)

	for i := 0; i < 200; i++ {
		c := e.Snapshot().Current
		assert.GreaterOrEqual(t, c.Temperature, 15)
		assert.LessOrEqual(t, c.Temperature, 35)
		assert.GreaterOrEqual(t, c.Humidity, 40)
		assert.LessOrEqual(t, c.Humidity, 80)
		assert.GreaterOrEqual(t, c.Rainfall, 0)
		assert.LessOrEqual(t, c.Rainfall, 10)
		assert.GreaterOrEqual(t, c.WindSpeed, 5)
		assert.LessOrEqual(t, c.WindSpeed, 20)
		assert.GreaterOrEqual(t, c.Pressure, 1000)
		assert.LessOrEqual(t, c.Pressure, 1050)
		assert.GreaterOrEqual(t, c.UVIndex, 0)
		assert.LessOrEqual(t, c.UVIndex, 10)
		assert.GreaterOrEqual(t, c.Visibility, 5)
		assert.LessOrEqual(t, c.Visibility, 15)
		assert.Contains(t, weatherConditions, c.WeatherCondition)
	}
}

func TestForecastSevenAscendingDays(t *testing.T) {
	t.Parallel()
	e := testWeather(2)

	forecast := e.Snapshot().Forecast
	require.Len(t, forecast, 7)
	assert.Equal(t, "2026-03-16", forecast[0].Date)
	assert.Equal(t, "2026-03-22", forecast[6].Date)

	for i, day := range forecast {
		if i > 0 {
			assert.Greater(t, day.Date, forecast[i-1].Date)
		}
		assert.GreaterOrEqual(t, day.MaxTemp, 20)
		assert.LessOrEqual(t, day.MaxTemp, 35)
		assert.GreaterOrEqual(t, day.MinTemp, 10)
		assert.LessOrEqual(t, day.MinTemp, 20)
		assert.GreaterOrEqual(t, day.RainfallProbability, 0)
		assert.LessOrEqual(t, day.RainfallProbability, 100)
		assert.Contains(t, weatherConditions, day.Condition)
	}
}

func TestAlertsNeverExceedTwo(t *testing.T) {
	t.Parallel()
	e := testWeather(3)

	validUntil := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 200; i++ {
		alerts := e.Snapshot().Alerts
		assert.LessOrEqual(t, len(alerts), 2)

		for _, a := range alerts {
			assert.Contains(t, []string{"heat_wave", "heavy_rain", "frost", "drought"}, a.Type)
			assert.Contains(t, severityLevels, a.Severity)
			assert.NotEmpty(t, a.Message)
			assert.Equal(t, validUntil, a.ValidUntil)
		}
	}
}

func TestAgriculturalInsightsAreStaticDefaults(t *testing.T) {
	t.Parallel()
	e := testWeather(4)

	// Stub data by design: advice text does not derive from conditions.
	assert.Equal(t, defaultAgriInsights, e.Snapshot().AgriculturalInsights)
	assert.Equal(t, defaultAgriInsights, e.Snapshot().AgriculturalInsights)
}
