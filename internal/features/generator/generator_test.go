package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"supply-chain-insights/internal/datasets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWritesDatasets(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	res, err := Generate(Options{Dir: dir, Out: &out})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, datasets.AlgorithmsFile),
		filepath.Join(dir, datasets.CaseStudiesFile),
		filepath.Join(dir, datasets.CostFactorsFile),
	}, res.Files)
	assert.Empty(t, res.Workbook)

	for _, path := range res.Files {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 6, strings.Count(string(data), "\n"), path)
	}

	printed := out.String()
	for _, title := range titles {
		assert.Contains(t, printed, title)
	}
	assert.Contains(t, printed, "Ant Colony Optimization")
}

func TestGenerateIsByteIdentical(t *testing.T) {
	dir := t.TempDir()

	first, err := Generate(Options{Dir: dir})
	require.NoError(t, err)
	before := make([][]byte, len(first.Files))
	for i, p := range first.Files {
		before[i], err = os.ReadFile(p)
		require.NoError(t, err)
	}

	second, err := Generate(Options{Dir: dir})
	require.NoError(t, err)
	for i, p := range second.Files {
		after, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, before[i], after, p)
	}
}

func TestGenerateWorkbook(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "supply_chain_datasets.xlsx")

	res, err := Generate(Options{Dir: dir, XLSX: xlsx})
	require.NoError(t, err)
	assert.Equal(t, xlsx, res.Workbook)
	assert.FileExists(t, xlsx)
}

func TestGenerateUnwritableDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := Generate(Options{Dir: filepath.Join(blocker, "sub")})
	assert.Error(t, err)
}
