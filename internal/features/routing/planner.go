package routing

import (
	"errors"
	"math"
)

var (
	ErrNoDepot    = errors.New("plan route: scenario has no depot")
	ErrNoDelivery = errors.New("plan route: scenario has no delivery point")
)

// RoutePlan is a closed tour starting and ending at one depot.
type RoutePlan struct {
	Scenario string
	DepotID  int
	Tour     []int // location IDs, depot first and last
	Length   float64
}

// Distance is the straight line distance between two locations.
func Distance(a, b Location) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// NearestNeighbor plans a tour from the first depot, always moving to the
// closest unvisited delivery point, then returning to the depot.
// Equal distances resolve to the lower location ID so the result is stable.
// Additional depots are ignored.
func NearestNeighbor(s Scenario) (*RoutePlan, error) {
	var depot *Location
	var pending []Location
	for i, l := range s.Locations {
		switch l.Kind {
		case KindDepot:
			if depot == nil {
				depot = &s.Locations[i]
			}
		case KindDelivery:
			pending = append(pending, l)
		}
	}
	if depot == nil {
		return nil, ErrNoDepot
	}
	if len(pending) == 0 {
		return nil, ErrNoDelivery
	}

	plan := &RoutePlan{Scenario: s.Key, DepotID: depot.ID, Tour: []int{depot.ID}}
	current := *depot

	for len(pending) > 0 {
		best := 0
		bestDist := Distance(current, pending[0])
		for i := 1; i < len(pending); i++ {
			d := Distance(current, pending[i])
			if d < bestDist || (d == bestDist && pending[i].ID < pending[best].ID) {
				best, bestDist = i, d
			}
		}

		next := pending[best]
		plan.Tour = append(plan.Tour, next.ID)
		plan.Length += bestDist
		current = next
		pending = append(pending[:best], pending[best+1:]...)
	}

	plan.Length += Distance(current, *depot)
	plan.Tour = append(plan.Tour, depot.ID)
	return plan, nil
}
