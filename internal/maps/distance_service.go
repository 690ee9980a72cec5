package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"fairgadi/internal/modules/fare"
)

// DistanceService handles interactions with the Google Distance Matrix API.
type DistanceService struct {
	client  *maps.Client
	timeout time.Duration
}

// NewDistanceService creates a new DistanceService with the given API key.
// timeout bounds each outbound call; zero falls back to 10s.
func NewDistanceService(apiKey string, timeout time.Duration) (*DistanceService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return newDistanceService(client, timeout), nil
}

func newDistanceService(client *maps.Client, timeout time.Duration) *DistanceService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DistanceService{client: client, timeout: timeout}
}

// Resolve issues one distance-matrix query for the source/destination pair
// and returns normalized metrics (km, minutes). The addresses are passed
// through as opaque strings; geocoding is the provider's problem.
//
// Exactly one origin and one destination are submitted, so only the [0][0]
// matrix cell is read. Any transport failure, timeout, missing cell, or
// non-OK cell status surfaces as fare.ErrUpstream; no fallback value is ever
// fabricated. One network call per invocation, no retries, no caching.
func (s *DistanceService) Resolve(ctx context.Context, source, destination string) (fare.TravelMetrics, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	r := &maps.DistanceMatrixRequest{
		Origins:      []string{source},
		Destinations: []string{destination},
		Mode:         maps.TravelModeDriving,
	}

	resp, err := s.client.DistanceMatrix(ctx, r)
	if err != nil {
		return fare.TravelMetrics{}, fmt.Errorf("%w: distance matrix request: %v", fare.ErrUpstream, err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return fare.TravelMetrics{}, fmt.Errorf("%w: empty distance matrix", fare.ErrUpstream)
	}

	elem := resp.Rows[0].Elements[0]
	if elem.Status != "OK" {
		return fare.TravelMetrics{}, fmt.Errorf("%w: element status %q", fare.ErrUpstream, elem.Status)
	}

	// Exact unit conversion; rounding happens downstream at quote time.
	return fare.TravelMetrics{
		DistanceKm:  float64(elem.Distance.Meters) / 1000,
		DurationMin: elem.Duration.Minutes(),
	}, nil
}
