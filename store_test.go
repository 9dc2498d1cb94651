package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without a database the store must no-op rather than fail, so requests
// still succeed in demo mode.
func TestStoreDemoModeNoOps(t *testing.T) {
	t.Parallel()
	s := NewStore(nil)

	assert.False(t, s.Enabled())

	req := PredictionRequest{
		PredictionType: PredictYieldPrediction,
		InputData:      PredictionInput{CropType: "rice", Area: 2},
		UserID:         "u1",
	}
	resp := PredictionResponse{Prediction: YieldPrediction{PredictedYield: 90, Unit: "quintals"}, Confidence: 0.9}
	require.NoError(t, s.SavePrediction(req.UserID, req, resp))

	require.NoError(t, s.SaveMarketPrice(PricePoint{Crop: "rice", Market: "Delhi", Price: 2500, Unit: "quintal"}))
	require.NoError(t, s.SaveWeather(28.61, 77.21, "Delhi", CurrentConditions{Temperature: 30}))
}
