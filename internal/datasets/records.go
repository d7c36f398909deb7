package datasets

import (
	"fmt"
)

// Output file names written by the generator.
const (
	AlgorithmsFile  = "algorithm_comparison.csv"
	CaseStudiesFile = "case_studies_performance.csv"
	CostFactorsFile = "cost_factors_analysis.csv"
)

// Algorithm comparison columns.
const (
	ColAlgorithm        = "Algorithm"
	ColAvgRouteLengthKm = "Average_Route_Length_km"
	ColComputationTimeS = "Computation_Time_seconds"
	ColCostSavingsPct   = "Cost_Savings_Percentage"
	ColComplexityLevel  = "Complexity_Level"
)

// Case study columns.
const (
	ColCompany                 = "Company"
	ColCostReductionPct        = "Cost_Reduction_Percentage"
	ColDeliveryTimeImprovement = "Delivery_Time_Improvement_Percentage"
	ColFuelSavingsPct          = "Fuel_Savings_Percentage"
	ColTechnologyUsed          = "Technology_Used"
)

// Cost factor columns.
const (
	ColCostFactor     = "Cost_Factor"
	ColTraditionalPct = "Traditional_Percentage"
	ColAIOptimizedPct = "AI_Optimized_Percentage"
)

var (
	AlgorithmColumns  = []string{ColAlgorithm, ColAvgRouteLengthKm, ColComputationTimeS, ColCostSavingsPct, ColComplexityLevel}
	CaseStudyColumns  = []string{ColCompany, ColCostReductionPct, ColDeliveryTimeImprovement, ColFuelSavingsPct, ColTechnologyUsed}
	CostFactorColumns = []string{ColCostFactor, ColTraditionalPct, ColAIOptimizedPct}
)

// Complexity is the coarse cost class of a routing algorithm.
type Complexity string

const (
	ComplexityLow    Complexity = "Low"
	ComplexityMedium Complexity = "Medium"
	ComplexityHigh   Complexity = "High"
)

// ParseComplexity accepts exactly Low, Medium or High.
func ParseComplexity(s string) (Complexity, error) {
	switch c := Complexity(s); c {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
		return c, nil
	default:
		return "", fmt.Errorf("unknown complexity level %q", s)
	}
}

type AlgorithmRecord struct {
	Name             string
	AvgRouteLengthKm float64
	ComputationTimeS float64
	CostSavingsPct   float64
	Complexity       Complexity
}

type CaseStudyRecord struct {
	Company                    string
	CostReductionPct           float64
	DeliveryTimeImprovementPct float64
	FuelSavingsPct             float64
	TechnologyUsed             string
}

type CostFactorRecord struct {
	Factor         string
	TraditionalPct float64
	AIOptimizedPct float64
}

// AlgorithmTable shapes algorithm records into a table in the CSV column order.
func AlgorithmTable(records []AlgorithmRecord) Table {
	t := Table{Name: AlgorithmsFile, Columns: append([]string(nil), AlgorithmColumns...)}
	for _, r := range records {
		t.Rows = append(t.Rows, []string{
			r.Name,
			FormatNumber(r.AvgRouteLengthKm),
			FormatNumber(r.ComputationTimeS),
			FormatNumber(r.CostSavingsPct),
			string(r.Complexity),
		})
	}
	return t
}

func CaseStudyTable(records []CaseStudyRecord) Table {
	t := Table{Name: CaseStudiesFile, Columns: append([]string(nil), CaseStudyColumns...)}
	for _, r := range records {
		t.Rows = append(t.Rows, []string{
			r.Company,
			FormatNumber(r.CostReductionPct),
			FormatNumber(r.DeliveryTimeImprovementPct),
			FormatNumber(r.FuelSavingsPct),
			r.TechnologyUsed,
		})
	}
	return t
}

func CostFactorTable(records []CostFactorRecord) Table {
	t := Table{Name: CostFactorsFile, Columns: append([]string(nil), CostFactorColumns...)}
	for _, r := range records {
		t.Rows = append(t.Rows, []string{
			r.Factor,
			FormatNumber(r.TraditionalPct),
			FormatNumber(r.AIOptimizedPct),
		})
	}
	return t
}

// rowReader resolves named cells of a table by header position.
type rowReader struct {
	table Table
	index map[string]int
}

func newRowReader(t Table, required []string) (*rowReader, error) {
	idx := make(map[string]int, len(required))
	for _, col := range required {
		i := t.ColumnIndex(col)
		if i < 0 {
			return nil, fmt.Errorf("%s: missing column %q", t.Name, col)
		}
		idx[col] = i
	}
	return &rowReader{table: t, index: idx}, nil
}

func (r *rowReader) text(row int, col string) string {
	cells := r.table.Rows[row]
	i := r.index[col]
	if i >= len(cells) {
		return ""
	}
	return cells[i]
}

func (r *rowReader) number(row int, col string) (float64, error) {
	return parseNumber(r.table.Name, row+1, col, r.text(row, col))
}

// ParseAlgorithms reads algorithm records back from a table.
func ParseAlgorithms(t Table) ([]AlgorithmRecord, error) {
	rr, err := newRowReader(t, AlgorithmColumns)
	if err != nil {
		return nil, err
	}
	out := make([]AlgorithmRecord, 0, t.Len())
	for i := range t.Rows {
		var rec AlgorithmRecord
		rec.Name = rr.text(i, ColAlgorithm)
		if rec.AvgRouteLengthKm, err = rr.number(i, ColAvgRouteLengthKm); err != nil {
			return nil, err
		}
		if rec.ComputationTimeS, err = rr.number(i, ColComputationTimeS); err != nil {
			return nil, err
		}
		if rec.CostSavingsPct, err = rr.number(i, ColCostSavingsPct); err != nil {
			return nil, err
		}
		if rec.Complexity, err = ParseComplexity(rr.text(i, ColComplexityLevel)); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", t.Name, i+1, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// ParseCaseStudies reads case study records back from a table.
func ParseCaseStudies(t Table) ([]CaseStudyRecord, error) {
	rr, err := newRowReader(t, CaseStudyColumns)
	if err != nil {
		return nil, err
	}
	out := make([]CaseStudyRecord, 0, t.Len())
	for i := range t.Rows {
		var rec CaseStudyRecord
		rec.Company = rr.text(i, ColCompany)
		rec.TechnologyUsed = rr.text(i, ColTechnologyUsed)
		if rec.CostReductionPct, err = rr.number(i, ColCostReductionPct); err != nil {
			return nil, err
		}
		if rec.DeliveryTimeImprovementPct, err = rr.number(i, ColDeliveryTimeImprovement); err != nil {
			return nil, err
		}
		if rec.FuelSavingsPct, err = rr.number(i, ColFuelSavingsPct); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// ParseCostFactors reads cost factor records back from a table.
func ParseCostFactors(t Table) ([]CostFactorRecord, error) {
	rr, err := newRowReader(t, CostFactorColumns)
	if err != nil {
		return nil, err
	}
	out := make([]CostFactorRecord, 0, t.Len())
	for i := range t.Rows {
		var rec CostFactorRecord
		rec.Factor = rr.text(i, ColCostFactor)
		if rec.TraditionalPct, err = rr.number(i, ColTraditionalPct); err != nil {
			return nil, err
		}
		if rec.AIOptimizedPct, err = rr.number(i, ColAIOptimizedPct); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
