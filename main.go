package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ──────────────────────────────────────────────
// main – bootstrap logger, DB, engines + router
// ──────────────────────────────────────────────

func main() {
	cfg := loadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	db := openDB(cfg.DatabaseURL, sugar)
	// We continue with db == nil – the store no-ops and handlers still
	// serve synthesized data.

	rng := newLockedSource(cfg.RandomSeed)
	srv := &server{
		advisory: NewAdvisoryEngine(rng),
		market:   NewMarketEngine(rng),
		weather:  NewWeatherEngine(rng),
		store:    NewStore(db),
		log:      sugar,
	}

	if cfg.WorkersEnabled {
		startSnapshotWorkers(srv.store, srv.market, srv.weather, sugar)
	}

	r := setupRouter(srv)

	sugar.Infof("🚀 AgriSense API listening on 0.0.0.0:%s", cfg.Port)
	if err := r.Run("0.0.0.0:" + cfg.Port); err != nil {
		sugar.Fatalf("server failed: %v", err)
	}
}

// setupRouter registers the middleware and the four API routes.
func setupRouter(srv *server) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	r.GET("/api/v1/health", srv.handleHealth)
	r.POST("/api/v1/predict", srv.handlePredict)
	r.GET("/api/v1/market", srv.handleMarketData)
	r.POST("/api/v1/weather", srv.handleWeather)

	return r
}

// corsMiddleware mirrors the permissive headers the web dashboard
// expects, including the OPTIONS preflight short-circuit.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
