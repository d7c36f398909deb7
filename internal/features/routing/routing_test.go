package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestNeighborScenarios(t *testing.T) {
	tests := []struct {
		scenario string
		tour     []int
		length   float64
	}{
		{"urban", []int{1, 3, 5, 4, 6, 2, 1}, 851.1904747328463},
		{"rural", []int{1, 2, 5, 4, 3, 1}, 1234.0654482138034},
		{"multi-depot", []int{1, 3, 4, 5, 6, 7, 1}, 735.221713425557},
	}

	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			s, err := LookupScenario(tt.scenario)
			require.NoError(t, err)

			plan, err := NearestNeighbor(s)
			require.NoError(t, err)
			assert.Equal(t, tt.tour, plan.Tour)
			assert.Equal(t, 1, plan.DepotID)
			assert.InDelta(t, tt.length, plan.Length, 1e-6)
		})
	}
}

func TestNearestNeighborTieBreaksOnID(t *testing.T) {
	s := Scenario{Key: "tie", Locations: []Location{
		{ID: 1, Kind: KindDepot},
		{ID: 7, X: 10, Kind: KindDelivery},
		{ID: 4, X: -10, Kind: KindDelivery},
	}}

	plan, err := NearestNeighbor(s)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 7, 1}, plan.Tour)
	assert.InDelta(t, 40, plan.Length, 1e-9)
}

func TestNearestNeighborErrors(t *testing.T) {
	_, err := NearestNeighbor(Scenario{Locations: []Location{{ID: 1, Kind: KindDelivery}}})
	assert.ErrorIs(t, err, ErrNoDepot)

	_, err = NearestNeighbor(Scenario{Locations: []Location{{ID: 1, Kind: KindDepot}}})
	assert.ErrorIs(t, err, ErrNoDelivery)
}

func TestLookupScenarioReturnsCopy(t *testing.T) {
	s, err := LookupScenario("urban")
	require.NoError(t, err)
	s.Locations[0].X = 999

	again, _ := LookupScenario("urban")
	assert.Equal(t, 100.0, again.Locations[0].X)
	assert.Equal(t, 92, again.TotalDemand())

	_, err = LookupScenario("lunar")
	assert.Error(t, err)
	assert.Equal(t, []string{"multi-depot", "rural", "urban"}, ScenarioKeys())
}

func TestEstimate(t *testing.T) {
	p, err := LookupProfile("dijkstra")
	require.NoError(t, err)
	assert.Equal(t, "O((V + E) log V)", p.Notation)

	m := Estimate(p, 0, nil)
	assert.Equal(t, "Dijkstra", m.Algorithm)
	assert.Equal(t, 245.0, m.RouteLength)
	assert.Equal(t, 15.0, m.CostSavings)
	assert.InDelta(t, 7.0, m.DeliveryHours, 1e-9)
	assert.InDelta(t, 36.75, m.FuelCost, 1e-9)
	assert.Zero(t, m.TourLength)

	plan := &RoutePlan{Length: 123.4}
	m = Estimate(p, 0.2, plan)
	assert.InDelta(t, 49.0, m.FuelCost, 1e-9)
	assert.Equal(t, 123.4, m.TourLength)
}

func TestLookupProfileUnknown(t *testing.T) {
	_, err := LookupProfile("simplex")
	assert.Error(t, err)

	for _, key := range ProfileKeys() {
		_, err := LookupProfile(key)
		assert.NoError(t, err, key)
	}
}
