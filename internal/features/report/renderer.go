package report

import (
	"fmt"
	"strings"
	"time"

	"supply-chain-insights/internal/datasets"
	"supply-chain-insights/internal/features/charts"
	"supply-chain-insights/internal/infra/fs"
	logging "supply-chain-insights/internal/infra/log"

	"go.uber.org/zap"
)

// PercentLabel formats a bar label as "<value>%".
func PercentLabel(v float64) string {
	return datasets.FormatNumber(v) + "%"
}

// cellLabel keeps the cell text as written, so "25.0" labels as "25.0%".
func cellLabel(cell string) string {
	return strings.TrimSpace(cell) + "%"
}

// Options tune chart geometry and fonts.
type Options struct {
	Width     int
	Height    int
	FontPaths []string
}

// BuildChart turns a loaded table into a chart using preset p.
// Rows are first narrowed to p.Categories. A metric column missing from the
// table is skipped with a warning; the other series still render.
func BuildChart(t datasets.Table, p Preset, opts Options) (*charts.GroupedBarChart, error) {
	if p.Categories != nil {
		filtered, err := t.FilterIn(p.CategoryColumn, p.Categories)
		if err != nil {
			return nil, err
		}
		t = filtered
	}

	categories, ok := t.Column(p.CategoryColumn)
	if !ok {
		return nil, fmt.Errorf("%s: missing category column %q", t.Name, p.CategoryColumn)
	}

	chart := &charts.GroupedBarChart{
		Title:      p.Title,
		XLabel:     p.XLabel,
		YLabel:     p.YLabel,
		Categories: categories,
		Width:      opts.Width,
		Height:     opts.Height,
		FontPaths:  opts.FontPaths,
	}

	for _, m := range p.Metrics {
		values, present, err := t.FloatColumn(m.Column)
		if !present {
			logging.LogWarn("Metric column not found, series skipped",
				zap.String("file", t.Name),
				zap.String("column", m.Column))
			continue
		}
		if err != nil {
			return nil, err
		}

		cells, _ := t.Column(m.Column)
		labels := make([]string, len(cells))
		for i, cell := range cells {
			labels[i] = cellLabel(cell)
		}
		if err := chart.AddSeries(charts.Series{Name: m.Name, Color: m.Color, Values: values, Labels: labels}); err != nil {
			return nil, err
		}
	}

	return chart, nil
}

// Render loads the CSV at input, builds the preset chart and writes a PNG to output.
func Render(input, output string, p Preset, opts Options) (*charts.GroupedBarChart, error) {
	start := time.Now()

	t, err := fs.ReadCSV(input)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	logging.LogInfo("Dataset loaded",
		zap.String("file", input),
		zap.Strings("columns", t.Columns),
		zap.Int("rows", t.Len()))

	chart, err := BuildChart(t, p, opts)
	if err != nil {
		return nil, err
	}

	size, err := chart.SavePNG(output)
	if err != nil {
		return nil, err
	}

	logging.LogSuccess("Chart generated",
		zap.String("filename", output),
		zap.Int64("fileSize", size),
		zap.Int("series", len(chart.Series)),
		zap.Int("categories", len(chart.Categories)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return chart, nil
}
