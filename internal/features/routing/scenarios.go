package routing

import (
	"fmt"
	"sort"
)

// LocationKind separates depots from delivery points.
type LocationKind string

const (
	KindDepot    LocationKind = "depot"
	KindDelivery LocationKind = "delivery"
)

// Location is a point on the scenario plane. Coordinates are abstract map units.
type Location struct {
	ID     int          `json:"id"`
	Name   string       `json:"name"`
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	Kind   LocationKind `json:"type"`
	Demand int          `json:"demand"`
}

type Scenario struct {
	Key       string
	Name      string
	Locations []Location
}

var scenarios = map[string]Scenario{
	"urban": {
		Key:  "urban",
		Name: "Urban Delivery",
		Locations: []Location{
			{ID: 1, Name: "Warehouse", X: 100, Y: 100, Kind: KindDepot},
			{ID: 2, Name: "Store A", X: 250, Y: 80, Kind: KindDelivery, Demand: 15},
			{ID: 3, Name: "Store B", X: 180, Y: 200, Kind: KindDelivery, Demand: 22},
			{ID: 4, Name: "Store C", X: 320, Y: 150, Kind: KindDelivery, Demand: 18},
			{ID: 5, Name: "Store D", X: 150, Y: 300, Kind: KindDelivery, Demand: 12},
			{ID: 6, Name: "Store E", X: 400, Y: 120, Kind: KindDelivery, Demand: 25},
		},
	},
	"rural": {
		Key:  "rural",
		Name: "Rural Routes",
		Locations: []Location{
			{ID: 1, Name: "Distribution Center", X: 150, Y: 200, Kind: KindDepot},
			{ID: 2, Name: "Town A", X: 80, Y: 60, Kind: KindDelivery, Demand: 35},
			{ID: 3, Name: "Town B", X: 400, Y: 80, Kind: KindDelivery, Demand: 28},
			{ID: 4, Name: "Town C", X: 320, Y: 300, Kind: KindDelivery, Demand: 42},
			{ID: 5, Name: "Town D", X: 50, Y: 350, Kind: KindDelivery, Demand: 18},
		},
	},
	"multi-depot": {
		Key:  "multi-depot",
		Name: "Multi-Depot System",
		Locations: []Location{
			{ID: 1, Name: "Depot North", X: 100, Y: 80, Kind: KindDepot},
			{ID: 2, Name: "Depot South", X: 400, Y: 320, Kind: KindDepot},
			{ID: 3, Name: "Store A", X: 150, Y: 150, Kind: KindDelivery, Demand: 20},
			{ID: 4, Name: "Store B", X: 250, Y: 100, Kind: KindDelivery, Demand: 15},
			{ID: 5, Name: "Store C", X: 350, Y: 200, Kind: KindDelivery, Demand: 30},
			{ID: 6, Name: "Store D", X: 300, Y: 280, Kind: KindDelivery, Demand: 25},
			{ID: 7, Name: "Store E", X: 200, Y: 250, Kind: KindDelivery, Demand: 18},
		},
	},
}

// LookupScenario returns a copy of the named scenario.
func LookupScenario(key string) (Scenario, error) {
	s, ok := scenarios[key]
	if !ok {
		return Scenario{}, fmt.Errorf("unknown scenario %q (known: %v)", key, ScenarioKeys())
	}
	s.Locations = append([]Location(nil), s.Locations...)
	return s, nil
}

func ScenarioKeys() []string {
	keys := make([]string, 0, len(scenarios))
	for k := range scenarios {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TotalDemand sums the demand of every delivery point.
func (s Scenario) TotalDemand() int {
	total := 0
	for _, l := range s.Locations {
		if l.Kind == KindDelivery {
			total += l.Demand
		}
	}
	return total
}
