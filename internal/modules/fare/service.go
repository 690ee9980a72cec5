// README: Fare service computes ranked per-provider quotes from trip metrics.
package fare

import (
	"context"
	"errors"
	"math"
	"sort"
)

// ErrUpstream marks failures of the external distance provider: unreachable,
// timed out, or a response with no usable route. Callers map it to a generic
// "could not estimate fare" failure.
var ErrUpstream = errors.New("upstream distance data unavailable")

// DistanceResolver turns two free-form addresses into travel metrics.
// Implementations either return fully valid metrics or fail; there is no
// partial success.
type DistanceResolver interface {
	Resolve(ctx context.Context, source, destination string) (TravelMetrics, error)
}

type Service struct {
	resolver DistanceResolver
	catalog  []ProviderProfile
}

// NewService builds a fare service over the given resolver and catalog.
// A nil or empty catalog falls back to DefaultCatalog.
func NewService(resolver DistanceResolver, catalog []ProviderProfile) *Service {
	if len(catalog) == 0 {
		catalog = DefaultCatalog()
	}
	return &Service{resolver: resolver, catalog: catalog}
}

// Estimate prices the trip against every catalog entry and ranks the quotes
// by fare ascending. The sort is stable, so equal fares keep catalog order.
// Pure: no I/O, deterministic for fixed metrics.
func (s *Service) Estimate(m TravelMetrics) Report {
	quotes := make([]Quote, 0, len(s.catalog))
	for _, p := range s.catalog {
		amount := p.BaseFare + m.DistanceKm*p.PerKmRate + m.DurationMin*p.PerMinRate
		quotes = append(quotes, Quote{
			Provider: p.Provider,
			Vehicle:  p.Vehicle,
			Fare:     roundFare(amount),
		})
	}
	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].Fare < quotes[j].Fare })
	return Report{Metrics: m, Quotes: quotes, Recommendation: quotes[0]}
}

// EstimateTrip resolves metrics for the address pair and prices them.
// Resolver failures pass through unchanged; no partial quote list is
// returned when the upstream call fails.
func (s *Service) EstimateTrip(ctx context.Context, source, destination string) (Report, error) {
	m, err := s.resolver.Resolve(ctx, source, destination)
	if err != nil {
		return Report{}, err
	}
	return s.Estimate(m), nil
}

// roundFare rounds to two decimals, half away from zero.
func roundFare(v float64) float64 {
	return math.Round(v*100) / 100
}
