package main

import (
	"time"

	"go.uber.org/zap"
)

// Delhi, the default dashboard location when no user has asked yet.
const (
	defaultLat      = 28.6139
	defaultLon      = 77.2090
	defaultLocation = "Delhi"
)

// startSnapshotWorkers spawns background workers that periodically
// synthesize and persist a default market snapshot and default-location
// weather, so dashboards have rows to chart even without live traffic.
func startSnapshotWorkers(store *Store, market *MarketEngine, weather *WeatherEngine, log *zap.SugaredLogger) {
	if !store.Enabled() {
		log.Info("Snapshot workers disabled: database connection is nil.")
		return
	}

	log.Info("Starting background snapshot workers...")

	// Market prices refresh every 12 hours.
	marketTicker := time.NewTicker(12 * time.Hour)
	go func() {
		// Run once immediately
		persistMarketSnapshot(store, market, log)
		for range marketTicker.C {
			persistMarketSnapshot(store, market, log)
		}
	}()

	// Weather refreshes hourly.
	weatherTicker := time.NewTicker(1 * time.Hour)
	go func() {
		persistWeatherSnapshot(store, weather, log)
		for range weatherTicker.C {
			persistWeatherSnapshot(store, weather, log)
		}
	}()
}

func persistMarketSnapshot(store *Store, market *MarketEngine, log *zap.SugaredLogger) {
	log.Info("[worker] Generating default market snapshot...")
	snapshot := market.Snapshot("", "")
	for _, price := range snapshot.CurrentPrices {
		if err := store.SaveMarketPrice(price); err != nil {
			log.Warnf("[worker] Failed to persist price for %s at %s: %v", price.Crop, price.Market, err)
		}
	}
	log.Info("[worker] Completed market snapshot cycle.")
}

func persistWeatherSnapshot(store *Store, weather *WeatherEngine, log *zap.SugaredLogger) {
	log.Info("[worker] Generating default-location weather...")
	snapshot := weather.Snapshot()
	if err := store.SaveWeather(defaultLat, defaultLon, defaultLocation, snapshot.Current); err != nil {
		log.Warnf("[worker] Weather persistence failed: %v", err)
	}
}
