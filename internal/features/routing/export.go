package routing

import (
	"fmt"
	"strconv"
	"time"

	"supply-chain-insights/internal/datasets"
	"supply-chain-insights/internal/infra/fs"
)

// ExportFile is the default name of the route CSV export.
const ExportFile = "route_optimization_data.csv"

const routeSectionTitle = "Optimized Route:"

// LocationTable lists every location of s as Location,Type,X,Y,Demand.
func LocationTable(s Scenario) datasets.Table {
	t := datasets.Table{
		Name:    ExportFile,
		Columns: []string{"Location", "Type", "X", "Y", "Demand"},
		Rows:    make([][]string, 0, len(s.Locations)),
	}
	for _, l := range s.Locations {
		t.Rows = append(t.Rows, []string{
			l.Name,
			string(l.Kind),
			datasets.FormatNumber(l.X),
			datasets.FormatNumber(l.Y),
			strconv.Itoa(l.Demand),
		})
	}
	return t
}

// RouteTable lists the stops of plan as Step,Location, numbered from 1.
func RouteTable(s Scenario, plan *RoutePlan) datasets.Table {
	names := make(map[int]string, len(s.Locations))
	for _, l := range s.Locations {
		names[l.ID] = l.Name
	}

	t := datasets.Table{Name: ExportFile, Columns: []string{"Step", "Location"}}
	for i, id := range plan.Tour {
		name, ok := names[id]
		if !ok {
			name = "Unknown"
		}
		t.Rows = append(t.Rows, []string{strconv.Itoa(i + 1), name})
	}
	return t
}

// ExportCSV writes the locations of s and, when plan is set, the route below
// them under an "Optimized Route:" line.
func ExportCSV(path string, s Scenario, plan *RoutePlan) error {
	sections := []fs.Section{{Table: LocationTable(s)}}
	if plan != nil && len(plan.Tour) > 0 {
		sections = append(sections, fs.Section{Title: routeSectionTitle, Table: RouteTable(s, plan)})
	}
	if err := fs.WriteCSVSections(path, sections...); err != nil {
		return fmt.Errorf("export route: %w", err)
	}
	return nil
}

// SavedScenario is a snapshot of one planning run.
type SavedScenario struct {
	Name      string       `json:"name"`
	Scenario  string       `json:"scenario"`
	Algorithm string       `json:"algorithm"`
	Locations []Location   `json:"locations"`
	Route     []int        `json:"route"`
	Metrics   SavedMetrics `json:"metrics"`
	Timestamp time.Time    `json:"timestamp"`
}

type SavedMetrics struct {
	RouteLengthKm  float64 `json:"route_length_km"`
	CostSavingsPct float64 `json:"cost_savings_pct"`
	DeliveryHours  float64 `json:"delivery_hours"`
	FuelCost       float64 `json:"fuel_cost"`
	TourLength     float64 `json:"tour_length"`
}

// NewSavedScenario captures a run. The name gets a " - Custom" suffix.
func NewSavedScenario(s Scenario, p AlgorithmProfile, plan *RoutePlan, m Metrics, now time.Time) SavedScenario {
	saved := SavedScenario{
		Name:      s.Name + " - Custom",
		Scenario:  s.Key,
		Algorithm: p.Key,
		Locations: append([]Location(nil), s.Locations...),
		Metrics: SavedMetrics{
			RouteLengthKm:  m.RouteLength,
			CostSavingsPct: m.CostSavings,
			DeliveryHours:  m.DeliveryHours,
			FuelCost:       m.FuelCost,
			TourLength:     m.TourLength,
		},
		Timestamp: now.UTC(),
	}
	if plan != nil {
		saved.Route = append([]int(nil), plan.Tour...)
	}
	return saved
}

// SaveScenario writes saved as JSON to path.
func SaveScenario(path string, saved SavedScenario) error {
	if err := fs.SaveJSON(path, saved); err != nil {
		return fmt.Errorf("save scenario: %w", err)
	}
	return nil
}

// LoadScenario reads a snapshot written by SaveScenario.
func LoadScenario(path string) (SavedScenario, error) {
	var saved SavedScenario
	if err := fs.LoadJSON(path, &saved); err != nil {
		return SavedScenario{}, fmt.Errorf("load scenario: %w", err)
	}
	return saved, nil
}
