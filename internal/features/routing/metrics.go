package routing

// AverageSpeed is the assumed fleet speed used for delivery time estimates.
const AverageSpeed = 35.0

// DefaultFuelCost is the fuel cost per distance unit when none is configured.
const DefaultFuelCost = 0.15

// Metrics summarizes what one algorithm is expected to deliver.
type Metrics struct {
	Algorithm     string
	RouteLength   float64 // the algorithm's average route length
	CostSavings   float64 // percent
	DeliveryHours float64
	FuelCost      float64
	TourLength    float64 // length of the planned tour, 0 without a plan
}

// Estimate derives route metrics from an algorithm profile. A non-positive
// fuelCost falls back to DefaultFuelCost.
func Estimate(p AlgorithmProfile, fuelCost float64, plan *RoutePlan) Metrics {
	if fuelCost <= 0 {
		fuelCost = DefaultFuelCost
	}
	m := Metrics{
		Algorithm:     p.Record.Name,
		RouteLength:   p.Record.AvgRouteLengthKm,
		CostSavings:   p.Record.CostSavingsPct,
		DeliveryHours: p.Record.AvgRouteLengthKm / AverageSpeed,
		FuelCost:      p.Record.AvgRouteLengthKm * fuelCost,
	}
	if plan != nil {
		m.TourLength = plan.Length
	}
	return m
}
