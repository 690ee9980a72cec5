// README: Fare quote and trip metric definitions.
package fare

type VehicleType string

const (
	VehicleAuto  VehicleType = "Auto"
	VehicleBike  VehicleType = "Bike"
	VehicleSedan VehicleType = "Sedan"
)

// TravelMetrics is the normalized distance/duration pair for one trip.
// Both values come from a single successful provider response; they are
// never computed independently of each other.
type TravelMetrics struct {
	DistanceKm  float64
	DurationMin float64
}

// ProviderProfile is a static catalog entry describing one provider's
// pricing model. Profiles are fixed at wiring time and never mutated.
type ProviderProfile struct {
	Provider   string
	Vehicle    VehicleType
	BaseFare   float64
	PerKmRate  float64
	PerMinRate float64
}

// Quote is one provider's computed fare for a trip, rounded to two decimals.
type Quote struct {
	Provider string      `json:"provider"`
	Vehicle  VehicleType `json:"type"`
	Fare     float64     `json:"fare"`
}

// Report is the ranked result for one trip. Quotes are sorted by fare
// ascending and Recommendation is always the first (cheapest) quote.
type Report struct {
	Metrics        TravelMetrics
	Quotes         []Quote
	Recommendation Quote
}
