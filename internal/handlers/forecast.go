package handlers

import (
	"errors"
	"net/http"

	"stockcast/internal/mlclient"
	"stockcast/internal/models"
	"stockcast/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	contentTypeJSON = "application/json"

	errMsgUpstream        = "ML service error"
	errMsgUpstreamInvalid = "ML service returned invalid response"
	errInvalidBodyPref    = "invalid body: "
)

// CompareRequest is the multi-ticker comparison payload.
type CompareRequest struct {
	Tickers    []string `json:"tickers" example:"AAPL,MSFT"`
	TargetDate string   `json:"target_date" example:"2024-01-15"`
}

type analysisRequest struct {
	Ticker string `json:"ticker" binding:"required"`
}

// writeUpstreamError logs and converts an ML-call failure into the wire
// contract: relayed status/body for structured upstream errors, 502 for
// non-JSON replies, 500 for transport failures. The raw cause never
// crosses the boundary.
func (h *Handler) writeUpstreamError(c *gin.Context, logKey string, err error) {
	if h.log != nil {
		h.log.Errorw(logKey, "err", err)
	}

	var se *mlclient.StatusError
	switch {
	case errors.As(err, &se):
		if se.Body != nil {
			c.Data(se.Code, contentTypeJSON, se.Body)
			return
		}
		c.JSON(se.Code, gin.H{"error": errMsgUpstream})
	case errors.Is(err, mlclient.ErrInvalidResponse):
		c.JSON(http.StatusBadGateway, gin.H{"error": errMsgUpstreamInvalid})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		// ErrUnavailable and anything unclassified
		c.JSON(http.StatusInternalServerError, gin.H{"error": errMsgUpstream})
	}
}

// @Summary      Forecast a ticker price
// @Description  Forwards {ticker, target_date} to the ML service and relays its response verbatim.
// @Tags         forecast
// @Accept       json
// @Produce      json
// @Param        body  body  models.ForecastRequest  true  "Forecast request"
// @Success      200  {object}  models.ForecastResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/forecast [post]
// @Security     BearerAuth
func (h *Handler) forecast(c *gin.Context) {
	var req models.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	raw, err := h.services.Forecast(c.Request.Context(), currentUsername(c), req)
	if err != nil {
		h.writeUpstreamError(c, "forecast_failed", err)
		return
	}
	c.Data(http.StatusOK, contentTypeJSON, raw)
}

// @Summary      Technical analysis for a ticker
// @Tags         forecast
// @Accept       json
// @Produce      json
// @Param        body  body  analysisRequest  true  "Analysis request"
// @Success      200  {object}  models.AnalysisResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/analysis [post]
// @Security     BearerAuth
func (h *Handler) analysis(c *gin.Context) {
	var req analysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	raw, err := h.services.Analysis(c.Request.Context(), currentUsername(c), req.Ticker)
	if err != nil {
		h.writeUpstreamError(c, "analysis_failed", err)
		return
	}
	c.Data(http.StatusOK, contentTypeJSON, raw)
}

// @Summary      Compare forecasts for several tickers
// @Description  Issues one upstream forecast per ticker in parallel; a single failed sub-request fails the whole comparison.
// @Tags         forecast
// @Accept       json
// @Produce      json
// @Param        body  body  CompareRequest  true  "Compare request"
// @Success      200  {object}  map[string]interface{}  "target_date, results"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/compare [post]
// @Security     BearerAuth
func (h *Handler) compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	results, err := h.services.Compare(c.Request.Context(), currentUsername(c), req.Tickers, req.TargetDate)
	if err != nil {
		h.writeUpstreamError(c, "compare_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"target_date": req.TargetDate,
		"results":     results,
	})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	upstream := "down"
	if h.services.Probe != nil && h.services.Up() {
		upstream = "up"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"upstream": upstream,
	})
}
