package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Lavender333/Aeraapp-sub001/database"
	"github.com/Lavender333/Aeraapp-sub001/models"
	"github.com/Lavender333/Aeraapp-sub001/search"
)

// QuickTopics are the fixed one-tap search shortcuts on the alerts screen.
// They run through the same search path as free-text queries.
var QuickTopics = []string{
	"Shelter locations near me",
	"Power restoration updates",
	"Road closures and detours",
	"FEMA assistance deadlines",
}

// AlertsHandler serves the alerts screen: grounded search, quick topics,
// the latest-result cache, and the persisted search history.
type AlertsHandler struct {
	provider search.Provider
	log      *zap.Logger

	// Latest-result cache. Each accepted submit takes a generation under
	// the mutex; only the newest generation may store its outcome, so a
	// superseded in-flight call cannot overwrite a newer result.
	mu        sync.Mutex
	gen       uint64
	inFlight  int
	latest    *models.SearchResult
	latestGen uint64
}

func NewAlertsHandler(provider search.Provider, log *zap.Logger) *AlertsHandler {
	return &AlertsHandler{provider: provider, log: log}
}

type searchRequest struct {
	Query string `json:"query"`
}

// Search handles POST /api/alerts/search.
func (h *AlertsHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Empty or whitespace-only queries never reach the provider.
	query := strings.TrimSpace(req.Query)
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query must not be empty"})
		return
	}

	gen := h.beginSearch()
	start := time.Now()

	result, err := h.provider.Search(c.Request.Context(), query)
	failed := err != nil
	if failed {
		// Any provider failure degrades to the fixed fallback; the cause
		// is logged and goes no further.
		h.log.Warn("search failed", zap.String("query", query), zap.Error(err))
		result = models.SearchResult{
			Summary: search.FallbackMessage,
			Sources: []models.SourceRef{},
		}
	}

	h.finishSearch(gen, result)
	h.recordSearch(query, result, time.Since(start), failed)

	c.JSON(http.StatusOK, result)
}

func (h *AlertsHandler) beginSearch() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.gen++
	h.inFlight++
	// The prior result is cleared before the request goes out.
	h.latest = nil
	return h.gen
}

func (h *AlertsHandler) finishSearch(gen uint64, result models.SearchResult) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.inFlight--
	if gen < h.gen {
		// A newer search started while this one was in flight.
		return
	}
	h.latest = &result
	h.latestGen = gen
}

// Latest handles GET /api/alerts/latest.
func (h *AlertsHandler) Latest(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{
		"loading":    h.inFlight > 0,
		"generation": h.latestGen,
		"result":     h.latest,
	})
}

// Topics handles GET /api/alerts/topics.
func (h *AlertsHandler) Topics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"topics": QuickTopics})
}

func (h *AlertsHandler) recordSearch(query string, result models.SearchResult, dur time.Duration, failed bool) {
	db := database.GetDB()
	if db == nil {
		return
	}

	rec := models.NewSearchRecord(query)
	rec.Summary = result.Summary
	rec.SourceCount = len(result.Sources)
	rec.DurationMs = dur.Milliseconds()
	rec.Failed = failed

	if err := db.Create(&rec).Error; err != nil {
		h.log.Warn("failed to save search record", zap.Error(err))
	}
}

// Recent handles GET /api/alerts/recent.
func (h *AlertsHandler) Recent(c *gin.Context) {
	db := database.GetDB()
	if db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History not available"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var records []models.SearchRecord
	if err := db.Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// Stats handles GET /api/alerts/stats.
func (h *AlertsHandler) Stats(c *gin.Context) {
	db := database.GetDB()
	if db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History not available"})
		return
	}

	var total int64
	var failedCount int64
	var avgDuration float64

	if err := db.Model(&models.SearchRecord{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := db.Model(&models.SearchRecord{}).Where("failed = ?", true).Count(&failedCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// COALESCE keeps an empty history from scanning NULL.
	if err := db.Model(&models.SearchRecord{}).Select("COALESCE(AVG(duration_ms), 0)").Scan(&avgDuration).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":           total,
		"failed":          failedCount,
		"avg_duration_ms": avgDuration,
	})
}
