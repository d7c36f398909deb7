package generator

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"supply-chain-insights/internal/datasets"
	"supply-chain-insights/internal/infra/console"
	"supply-chain-insights/internal/infra/fs"
	logging "supply-chain-insights/internal/infra/log"

	"go.uber.org/zap"
)

// Titles printed above each table, in write order.
var titles = []string{
	"Algorithm Comparison Data:",
	"Case Studies Performance Data:",
	"Cost Factors Analysis Data:",
}

type Options struct {
	Dir  string    // output directory for the CSV files
	XLSX string    // optional workbook path
	Out  io.Writer // table printout, nil disables it
}

// Result lists what was written.
type Result struct {
	Files    []string
	Workbook string
}

// Generate writes the three datasets as CSV files and prints them.
func Generate(opts Options) (*Result, error) {
	start := time.Now()
	tables := datasets.All()

	files, err := fs.SaveTables(opts.Dir, tables)
	if err != nil {
		return nil, fmt.Errorf("failed to save datasets: %w", err)
	}
	for i, path := range files {
		logging.LogInfo("Dataset written",
			zap.String("file", path),
			zap.Int("rows", tables[i].Len()))
	}

	res := &Result{Files: files}

	if opts.XLSX != "" {
		if err := fs.ExportWorkbook(opts.XLSX, tables); err != nil {
			return nil, fmt.Errorf("failed to export workbook: %w", err)
		}
		res.Workbook = opts.XLSX
		logging.LogInfo("Workbook written", zap.String("file", opts.XLSX))
	}

	if opts.Out != nil {
		for i, t := range tables {
			if i > 0 {
				fmt.Fprintln(opts.Out)
			}
			if err := console.PrintTable(opts.Out, titles[i], t); err != nil {
				return nil, fmt.Errorf("failed to print %s: %w", t.Name, err)
			}
		}
	}

	logging.LogSuccess("Datasets generated",
		zap.String("dir", filepath.Clean(opts.Dir)),
		zap.Int("files", len(files)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return res, nil
}
