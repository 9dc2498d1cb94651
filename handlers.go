package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// server wires the three synthesis engines to gin and to the store.
type server struct {
	advisory *AdvisoryEngine
	market   *MarketEngine
	weather  *WeatherEngine
	store    *Store
	log      *zap.SugaredLogger
}

// ══════════════════════════════════════════════
//  PREDICTION HANDLER
// ══════════════════════════════════════════════

func (s *server) handlePredict(c *gin.Context) {
	var req PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := s.advisory.Predict(req)
	if err != nil {
		if eris.Is(err, ErrInvalidPredictionType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Best effort: a failed write never blocks the computed result.
	if err := s.store.SavePrediction(req.UserID, req, resp); err != nil {
		s.log.Warnf("⚠ Persist prediction failed: %v", err)
	}

	c.JSON(http.StatusOK, resp)
}

// ══════════════════════════════════════════════
//  MARKET HANDLER
// ══════════════════════════════════════════════

func (s *server) handleMarketData(c *gin.Context) {
	crop := c.Query("crop")
	location := c.Query("location")

	snapshot := s.market.Snapshot(crop, location)

	for _, price := range snapshot.CurrentPrices {
		if err := s.store.SaveMarketPrice(price); err != nil {
			s.log.Warnf("⚠ Persist market price failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, snapshot)
}

// ══════════════════════════════════════════════
//  WEATHER HANDLER
// ══════════════════════════════════════════════

func (s *server) handleWeather(c *gin.Context) {
	var req WeatherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snapshot := s.weather.Snapshot()

	if err := s.store.SaveWeather(req.Latitude, req.Longitude, req.Location, snapshot.Current); err != nil {
		s.log.Warnf("⚠ Persist weather data failed: %v", err)
	}

	c.JSON(http.StatusOK, snapshot)
}

// ── Health ──────────────────────────────────

func (s *server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now()})
}
