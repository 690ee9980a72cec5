// README: Fare handler for trip estimates.
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fairgadi/internal/modules/fare"
)

type FareHandler struct {
	fare   *fare.Service
	logger *zap.Logger
}

func NewFareHandler(svc *fare.Service, logger *zap.Logger) *FareHandler {
	return &FareHandler{fare: svc, logger: logger}
}

type estimateRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

type estimateResponse struct {
	Distance       string       `json:"distance"`
	Duration       string       `json:"duration"`
	Fares          []fare.Quote `json:"fares"`
	Recommendation fare.Quote   `json:"recommendation"`
}

// Estimate handles POST /fare/estimate. Validation happens before the
// resolver is ever invoked, so a bad request costs no external call.
func (h *FareHandler) Estimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Source) == "" || strings.TrimSpace(req.Destination) == "" {
		writeError(c, http.StatusBadRequest, "source and destination are required")
		return
	}

	report, err := h.fare.EstimateTrip(c.Request.Context(), req.Source, req.Destination)
	if err != nil {
		if errors.Is(err, fare.ErrUpstream) {
			h.logger.Warn("distance lookup failed",
				zap.String("source", req.Source),
				zap.String("destination", req.Destination),
				zap.Error(err))
			writeErrorDetails(c, http.StatusInternalServerError,
				"could not estimate fare right now", err.Error())
			return
		}
		h.logger.Error("fare estimation failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	// Display strings are fixed to two decimals with unit suffixes; this is
	// presentation only, the report keeps exact values.
	writeJSON(c, http.StatusOK, estimateResponse{
		Distance:       fmt.Sprintf("%.2f km", report.Metrics.DistanceKm),
		Duration:       fmt.Sprintf("%.2f mins", report.Metrics.DurationMin),
		Fares:          report.Quotes,
		Recommendation: report.Recommendation,
	})
}
