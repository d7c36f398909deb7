package routing

import (
	"fmt"
	"sort"

	"supply-chain-insights/internal/datasets"
)

// AlgorithmProfile adds the descriptive fields of a routing algorithm to its
// comparison record.
type AlgorithmProfile struct {
	Key         string
	Description string
	Notation    string // asymptotic cost
	BestFor     string
	Record      datasets.AlgorithmRecord
}

var profiles = []struct {
	key, name, description, notation, bestFor string
}{
	{"dijkstra", "Dijkstra", "Classic shortest path algorithm, guaranteed optimal for single-source shortest paths", "O((V + E) log V)", "Simple point-to-point routing with fixed costs"},
	{"genetic", "Genetic Algorithm", "Evolutionary algorithm that mimics natural selection for route optimization", "O(g × p × n²)", "Complex multi-objective optimization with many constraints"},
	{"ant-colony", "Ant Colony Optimization", "Bio-inspired algorithm that simulates ant foraging behavior", "O(n² × m × t)", "Dynamic routing with real-time traffic adaptation"},
	{"reinforcement", "Reinforcement Learning", "AI agent learns optimal routes through trial and error", "O(episodes × actions)", "Adaptive routing in uncertain environments"},
	{"ml-hybrid", "Machine Learning Hybrid", "Combines multiple ML techniques for optimal performance", "Varies by model", "Enterprise-scale optimization with predictive capabilities"},
}

// LookupProfile resolves an algorithm by its short key (e.g. "ant-colony").
func LookupProfile(key string) (AlgorithmProfile, error) {
	for _, p := range profiles {
		if p.key != key {
			continue
		}
		rec, ok := datasets.AlgorithmByName(p.name)
		if !ok {
			return AlgorithmProfile{}, fmt.Errorf("algorithm %q has no comparison record", p.name)
		}
		return AlgorithmProfile{
			Key:         p.key,
			Description: p.description,
			Notation:    p.notation,
			BestFor:     p.bestFor,
			Record:      rec,
		}, nil
	}
	return AlgorithmProfile{}, fmt.Errorf("unknown algorithm %q (known: %v)", key, ProfileKeys())
}

func ProfileKeys() []string {
	keys := make([]string, 0, len(profiles))
	for _, p := range profiles {
		keys = append(keys, p.key)
	}
	sort.Strings(keys)
	return keys
}
