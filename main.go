package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Lavender333/Aeraapp-sub001/config"
	"github.com/Lavender333/Aeraapp-sub001/database"
	"github.com/Lavender333/Aeraapp-sub001/handlers"
	"github.com/Lavender333/Aeraapp-sub001/i18n"
	"github.com/Lavender333/Aeraapp-sub001/search"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	if err := database.Init(cfg.DBPath); err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}

	tr, err := i18n.Load(cfg.LocalesDir, cfg.Language)
	if err != nil {
		logger.Warn("falling back to built-in translations", zap.Error(err))
		tr = i18n.Default()
	}

	provider := search.NewGemini(search.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.Model,
		Timeout: cfg.SearchTimeout,
	}, logger)

	alerts := handlers.NewAlertsHandler(provider, logger)
	gap := handlers.NewGapHandler(tr)
	recovery := handlers.NewRecoveryHandler()
	pages := handlers.NewPagesHandler(tr, gap, recovery)

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.Static("/static", "./static")
	r.LoadHTMLGlob("templates/*")

	r.GET("/", func(c *gin.Context) {
		c.Redirect(302, "/alerts")
	})

	// Screens
	r.GET("/alerts", pages.Alerts)
	r.GET("/gap", pages.Gap)
	r.GET("/recovery", pages.Recovery)

	// API
	api := r.Group("/api")
	{
		api.POST("/alerts/search", alerts.Search)
		api.GET("/alerts/topics", alerts.Topics)
		api.GET("/alerts/latest", alerts.Latest)
		api.GET("/alerts/recent", alerts.Recent)
		api.GET("/alerts/stats", alerts.Stats)
		api.GET("/gap/tabs", gap.Tabs)
		api.GET("/gap/tabs/:tab", gap.TabByID)
		api.GET("/recovery/teams", recovery.Teams)
	}

	logger.Info("🚀 Starting AERA Relief Companion on :" + cfg.Port)
	logger.Info("📡 Alerts: http://localhost:" + cfg.Port + "/alerts")

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
