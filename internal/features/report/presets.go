package report

import (
	"fmt"
	"sort"

	"supply-chain-insights/internal/datasets"
)

// Metric is one numeric column drawn as a series.
type Metric struct {
	Column string
	Name   string
	Color  string
}

// Preset describes how one dataset file becomes a grouped bar chart.
type Preset struct {
	Key            string
	File           string
	CategoryColumn string
	// Categories restricts rows to these category values. Nil keeps all rows.
	Categories []string
	Metrics    []Metric
	Title      string
	XLabel     string
	YLabel     string
	Output     string
}

// CaseStudyCompanies is the company selection applied before charting case studies.
var CaseStudyCompanies = []string{"Amazon", "Walmart", "UPS ORION", "DHL", "FedEx"}

var presets = map[string]Preset{
	"case-studies": {
		Key:            "case-studies",
		File:           datasets.CaseStudiesFile,
		CategoryColumn: datasets.ColCompany,
		Categories:     CaseStudyCompanies,
		Metrics: []Metric{
			{Column: datasets.ColCostReductionPct, Name: "Cost Reduction", Color: "#1FB8CD"},
			{Column: datasets.ColDeliveryTimeImprovement, Name: "Delivery Time", Color: "#DB4545"},
			{Column: datasets.ColFuelSavingsPct, Name: "Fuel Savings", Color: "#2E8B57"},
		},
		Title:  "Supply Chain Optimization Results",
		XLabel: "% Improvement",
		YLabel: "Companies",
		Output: "supply_chain_optimization_chart.png",
	},
	"cost-factors": {
		Key:            "cost-factors",
		File:           datasets.CostFactorsFile,
		CategoryColumn: datasets.ColCostFactor,
		Metrics: []Metric{
			{Column: datasets.ColTraditionalPct, Name: "Traditional", Color: "#DB4545"},
			{Column: datasets.ColAIOptimizedPct, Name: "AI Optimized", Color: "#1FB8CD"},
		},
		Title:  "Transportation Cost Breakdown",
		XLabel: "% of Total Cost",
		YLabel: "Cost Factors",
		Output: "cost_factors_chart.png",
	},
	"algorithms": {
		Key:            "algorithms",
		File:           datasets.AlgorithmsFile,
		CategoryColumn: datasets.ColAlgorithm,
		Metrics: []Metric{
			{Column: datasets.ColCostSavingsPct, Name: "Cost Savings", Color: "#2E8B57"},
		},
		Title:  "Routing Algorithm Cost Savings",
		XLabel: "% Cost Savings",
		YLabel: "Algorithms",
		Output: "algorithm_savings_chart.png",
	},
}

// LookupPreset returns the preset registered under key.
func LookupPreset(key string) (Preset, error) {
	p, ok := presets[key]
	if !ok {
		return Preset{}, fmt.Errorf("unknown dataset %q (known: %v)", key, PresetKeys())
	}
	return p, nil
}

// PresetKeys lists registered presets in name order.
func PresetKeys() []string {
	keys := make([]string, 0, len(presets))
	for k := range presets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
