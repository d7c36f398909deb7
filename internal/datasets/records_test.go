package datasets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralRowCounts(t *testing.T) {
	assert.Len(t, Algorithms(), 5)
	assert.Len(t, CaseStudies(), 5)
	assert.Len(t, CostFactors(), 5)
}

func TestAlgorithmTableRows(t *testing.T) {
	tbl := AlgorithmTable(Algorithms())

	assert.Equal(t, AlgorithmColumns, tbl.Columns)
	assert.Equal(t, "Dijkstra,245,0.8,15,Low", strings.Join(tbl.Rows[0], ","))
	assert.Equal(t, "Reinforcement Learning,175,120,35,High", strings.Join(tbl.Rows[3], ","))
}

func TestCaseStudyTableRows(t *testing.T) {
	tbl := CaseStudyTable(CaseStudies())

	assert.Equal(t, CaseStudyColumns, tbl.Columns)
	assert.Equal(t, "Amazon,25,30,20,AI + Robotics", strings.Join(tbl.Rows[0], ","))
}

func TestParseRoundTrip(t *testing.T) {
	algs, err := ParseAlgorithms(AlgorithmTable(Algorithms()))
	require.NoError(t, err)
	assert.Equal(t, Algorithms(), algs)

	cases, err := ParseCaseStudies(CaseStudyTable(CaseStudies()))
	require.NoError(t, err)
	assert.Equal(t, CaseStudies(), cases)

	factors, err := ParseCostFactors(CostFactorTable(CostFactors()))
	require.NoError(t, err)
	assert.Equal(t, CostFactors(), factors)
}

func TestParseAlgorithmsRejectsBadComplexity(t *testing.T) {
	tbl := AlgorithmTable(Algorithms())
	tbl.Rows[1][4] = "Extreme"

	_, err := ParseAlgorithms(tbl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Extreme")
}

func TestParseCaseStudiesMissingColumn(t *testing.T) {
	tbl := CaseStudyTable(CaseStudies())
	tbl.Columns[3] = "Something_Else"

	_, err := ParseCaseStudies(tbl)
	assert.Error(t, err)
}

func TestAlgorithmByName(t *testing.T) {
	a, ok := AlgorithmByName("Genetic Algorithm")
	require.True(t, ok)
	assert.Equal(t, 198.0, a.AvgRouteLengthKm)

	_, ok = AlgorithmByName("Simulated Annealing")
	assert.False(t, ok)
}
