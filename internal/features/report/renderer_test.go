package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"supply-chain-insights/internal/datasets"
	"supply-chain-insights/internal/features/charts"
	"supply-chain-insights/internal/infra/fs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCaseStudies(t *testing.T, tbl datasets.Table) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), datasets.CaseStudiesFile)
	require.NoError(t, fs.WriteCSV(path, tbl))
	return path
}

func dropColumn(tbl datasets.Table, column string) datasets.Table {
	idx := tbl.ColumnIndex(column)
	out := datasets.Table{Name: tbl.Name}
	out.Columns = append(append([]string{}, tbl.Columns[:idx]...), tbl.Columns[idx+1:]...)
	for _, row := range tbl.Rows {
		out.Rows = append(out.Rows, append(append([]string{}, row[:idx]...), row[idx+1:]...))
	}
	return out
}

func TestRenderCaseStudies(t *testing.T) {
	input := writeCaseStudies(t, datasets.CaseStudyTable(datasets.CaseStudies()))
	output := filepath.Join(t.TempDir(), "supply_chain_optimization_chart.png")

	p, err := LookupPreset("case-studies")
	require.NoError(t, err)

	chart, err := Render(input, output, p, Options{Width: 1000, Height: 700})
	require.NoError(t, err)

	assert.Equal(t, "Supply Chain Optimization Results", chart.Title)
	assert.Equal(t, "% Improvement", chart.XLabel)
	assert.Equal(t, "Companies", chart.YLabel)
	assert.Equal(t, CaseStudyCompanies, chart.Categories)

	bars, err := chart.Bars()
	require.NoError(t, err)
	require.Len(t, bars, 15)

	source := datasets.CaseStudies()
	for i, b := range bars {
		rec := source[i/3]
		want := []float64{rec.CostReductionPct, rec.DeliveryTimeImprovementPct, rec.FuelSavingsPct}[i%3]
		assert.Equal(t, rec.Company, b.Category)
		assert.Equal(t, want, b.Value)
		assert.Equal(t, datasets.FormatNumber(want)+"%", b.Label)
		assert.True(t, strings.HasSuffix(b.Label, "%"))
	}

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestBuildChartSkipsMissingColumn(t *testing.T) {
	tbl := dropColumn(datasets.CaseStudyTable(datasets.CaseStudies()), datasets.ColDeliveryTimeImprovement)
	p, _ := LookupPreset("case-studies")

	chart, err := BuildChart(tbl, p, Options{})
	require.NoError(t, err)

	require.Len(t, chart.Series, 2)
	assert.Equal(t, "Cost Reduction", chart.Series[0].Name)
	assert.Equal(t, "Fuel Savings", chart.Series[1].Name)

	bars, err := chart.Bars()
	require.NoError(t, err)
	assert.Len(t, bars, 10)
}

func TestRenderMissingColumnStillWritesChart(t *testing.T) {
	tbl := dropColumn(datasets.CaseStudyTable(datasets.CaseStudies()), datasets.ColFuelSavingsPct)
	input := writeCaseStudies(t, tbl)
	output := filepath.Join(t.TempDir(), "chart.png")

	p, _ := LookupPreset("case-studies")
	chart, err := Render(input, output, p, Options{})
	require.NoError(t, err)
	assert.Len(t, chart.Series, 2)
	assert.FileExists(t, output)
}

func TestBuildChartFiltersCompanies(t *testing.T) {
	tbl := datasets.CaseStudyTable(append(datasets.CaseStudies(), datasets.CaseStudyRecord{
		Company: "Maersk", CostReductionPct: 9, DeliveryTimeImprovementPct: 9, FuelSavingsPct: 9, TechnologyUsed: "IoT",
	}))
	p, _ := LookupPreset("case-studies")

	chart, err := BuildChart(tbl, p, Options{})
	require.NoError(t, err)
	assert.Equal(t, CaseStudyCompanies, chart.Categories)
	assert.Len(t, chart.Series[0].Values, 5)
}

func TestBuildChartBadNumber(t *testing.T) {
	tbl := datasets.CaseStudyTable(datasets.CaseStudies())
	tbl.Rows[2][1] = "n/a"
	p, _ := LookupPreset("case-studies")

	_, err := BuildChart(tbl, p, Options{})
	assert.Error(t, err)
}

func TestBuildChartLabelsKeepCellText(t *testing.T) {
	csv := "Company,Cost_Reduction_Percentage,Delivery_Time_Improvement_Percentage,Fuel_Savings_Percentage,Technology_Used\n" +
		"Amazon,25.0,30.5,1e1,AI + Robotics\n" +
		"DHL, 12 ,15,8,Predictive Analytics\n"
	tbl, err := fs.DecodeCSV(strings.NewReader(csv), datasets.CaseStudiesFile)
	require.NoError(t, err)
	p, _ := LookupPreset("case-studies")

	chart, err := BuildChart(tbl, p, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"25.0%", "12%"}, chart.Series[0].Labels)
	assert.Equal(t, []string{"30.5%", "15%"}, chart.Series[1].Labels)
	assert.Equal(t, []string{"1e1%", "8%"}, chart.Series[2].Labels)
	assert.Equal(t, []float64{25, 12}, chart.Series[0].Values)
	assert.Equal(t, []float64{10, 8}, chart.Series[2].Values)
}

func TestBuildChartNoMetricsLeft(t *testing.T) {
	tbl := datasets.Table{Name: "x.csv", Columns: []string{datasets.ColCompany}, Rows: [][]string{{"Amazon"}}}
	p, _ := LookupPreset("case-studies")

	chart, err := BuildChart(tbl, p, Options{})
	require.NoError(t, err)
	_, err = chart.Bars()
	assert.ErrorIs(t, err, charts.ErrEmptyChart)
}

func TestRenderMissingInput(t *testing.T) {
	p, _ := LookupPreset("case-studies")
	_, err := Render(filepath.Join(t.TempDir(), "absent.csv"), filepath.Join(t.TempDir(), "x.png"), p, Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOtherPresets(t *testing.T) {
	p, err := LookupPreset("cost-factors")
	require.NoError(t, err)
	chart, err := BuildChart(datasets.CostFactorTable(datasets.CostFactors()), p, Options{})
	require.NoError(t, err)
	bars, err := chart.Bars()
	require.NoError(t, err)
	assert.Len(t, bars, 10)
	assert.Equal(t, "35%", bars[0].Label)

	p, err = LookupPreset("algorithms")
	require.NoError(t, err)
	chart, err = BuildChart(datasets.AlgorithmTable(datasets.Algorithms()), p, Options{})
	require.NoError(t, err)
	assert.Len(t, chart.Series, 1)

	_, err = LookupPreset("weather")
	assert.Error(t, err)
	assert.Equal(t, []string{"algorithms", "case-studies", "cost-factors"}, PresetKeys())
}
