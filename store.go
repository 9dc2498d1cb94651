package main

import (
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// openDB connects to PostgreSQL and applies schema.sql when readable.
// A failed connection is not fatal: the service keeps running in demo
// mode with persistence disabled, so local development needs no database.
func openDB(dsn string, log *zap.SugaredLogger) *sqlx.DB {
	conn, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Warnf("⚠ Could not connect to PostgreSQL (%v). Running in demo mode without persistence.", err)
		return nil
	}

	// Apply schema if present. For production, use migrations.
	if schema, readErr := os.ReadFile("schema.sql"); readErr == nil {
		conn.MustExec(string(schema))
		log.Info("Applied schema.sql successfully.")
	} else {
		log.Warnf("Could not read schema.sql: %v", readErr)
	}

	log.Info("PostgreSQL connected successfully.")
	return conn
}

// Store performs insert-only writes of synthesized records. All writes
// are best effort: a nil db turns every save into a no-op, and callers
// log failures instead of failing the request, since no computation ever
// depends on a write succeeding.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Enabled reports whether a database connection is available.
func (s *Store) Enabled() bool {
	return s.db != nil
}

// SavePrediction records one prediction request/result pair.
func (s *Store) SavePrediction(userID string, req PredictionRequest, resp PredictionResponse) error {
	if s.db == nil {
		return nil
	}

	input, err := json.Marshal(req.InputData)
	if err != nil {
		return eris.Wrap(err, "store: marshal prediction input")
	}
	result, err := json.Marshal(resp.Prediction)
	if err != nil {
		return eris.Wrap(err, "store: marshal prediction result")
	}

	_, err = s.db.Exec(`
		INSERT INTO predictions (id, user_id, prediction_type, input_data, prediction_result, confidence_score)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.NewString(), userID, req.PredictionType, input, result, resp.Confidence,
	)
	if err != nil {
		return eris.Wrap(err, "store: insert prediction")
	}
	return nil
}

// SaveMarketPrice records one cell of the current price grid.
func (s *Store) SaveMarketPrice(p PricePoint) error {
	if s.db == nil {
		return nil
	}

	_, err := s.db.Exec(`
		INSERT INTO market_prices (id, crop_name, market_location, price_per_unit, unit, price_date, source)
		VALUES ($1, $2, $3, $4, $5, CURRENT_DATE, 'api_simulation')`,
		uuid.NewString(), p.Crop, p.Market, p.Price, p.Unit,
	)
	if err != nil {
		return eris.Wrapf(err, "store: insert market price %s/%s", p.Crop, p.Market)
	}
	return nil
}

// SaveWeather records the current conditions for a location.
func (s *Store) SaveWeather(lat, lon float64, location string, c CurrentConditions) error {
	if s.db == nil {
		return nil
	}

	_, err := s.db.Exec(`
		INSERT INTO weather_data (id, latitude, longitude, location_name, temperature, humidity, rainfall, wind_speed, pressure, weather_condition, forecast_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, CURRENT_DATE)`,
		uuid.NewString(), lat, lon, location,
		c.Temperature, c.Humidity, c.Rainfall, c.WindSpeed, c.Pressure, c.WeatherCondition,
	)
	if err != nil {
		return eris.Wrap(err, "store: insert weather data")
	}
	return nil
}
