package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"sinanews/pkg/news"

	"github.com/gin-gonic/gin"
)

type NewsProvider interface {
	FetchNews(ctx context.Context, symbol news.Symbol, limit int) (*news.Result, error)
}

type NewsHandler struct {
	provider NewsProvider
}

func NewNewsHandler(provider NewsProvider) *NewsHandler {
	return &NewsHandler{provider: provider}
}

// GetNews handles GET /news?symbol=sh600000&limit=5.
func (h *NewsHandler) GetNews(c *gin.Context) {
	symbol := c.Query("symbol")
	limit := getQueryLimit(c)

	h.lookup(c, symbol, limit)
}

type newsRequest struct {
	Symbol string `json:"symbol"`
	Limit  *int   `json:"limit"`
}

// PostNews handles POST /news with body {"symbol": "sh600000", "limit": 5}.
func (h *NewsHandler) PostNews(c *gin.Context) {
	var req newsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	limit := news.DefaultLimit
	if req.Limit != nil {
		limit = clampLimit(*req.Limit)
	}

	h.lookup(c, req.Symbol, limit)
}

func (h *NewsHandler) lookup(c *gin.Context, rawSymbol string, limit int) {
	symbol, err := news.ParseSymbol(rawSymbol)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid symbol format, expected sh600000 (Shanghai) or sz000001 (Shenzhen)",
		})
		return
	}

	res, err := h.provider.FetchNews(c.Request.Context(), symbol, limit)
	if err != nil {
		if errors.Is(err, news.ErrNoNews) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": fmt.Sprintf("no news found for symbol %s", symbol),
			})
			return
		}

		slog.Error("error fetching news", "symbol", symbol.String(), "limit", limit, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news from source"})
		return
	}

	c.JSON(http.StatusOK, toNewsResponse(res))
}

// GetHealth handles GET /health. The service holds no connections to
// check, so reachability is the whole story.
func (h *NewsHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	return clampLimit(getQueryInt("limit", news.DefaultLimit, c))
}

func clampLimit(limit int) int {
	if limit < 1 {
		slog.Warn("invalid limit, using default", "value", limit, "default", news.DefaultLimit)
		return news.DefaultLimit
	}

	if limit > news.MaxLimit {
		slog.Warn("limit exceeds max, clamping", "value", limit, "max", news.MaxLimit)
		return news.MaxLimit
	}

	return limit
}
