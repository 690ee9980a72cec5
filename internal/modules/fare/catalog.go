// README: Canonical provider pricing catalog.
package fare

// DefaultCatalog returns the canonical provider pricing table. It returns a
// fresh slice on every call so callers can never mutate shared state.
func DefaultCatalog() []ProviderProfile {
	return []ProviderProfile{
		{Provider: "Uber", Vehicle: VehicleAuto, BaseFare: 30, PerKmRate: 9.0, PerMinRate: 1.5},
		{Provider: "Ola", Vehicle: VehicleSedan, BaseFare: 50, PerKmRate: 10.0, PerMinRate: 2.0},
		{Provider: "Rapido", Vehicle: VehicleBike, BaseFare: 20, PerKmRate: 8.0, PerMinRate: 1.0},
		{Provider: "Namma Yatri", Vehicle: VehicleAuto, BaseFare: 25, PerKmRate: 7.5, PerMinRate: 1.2},
	}
}
