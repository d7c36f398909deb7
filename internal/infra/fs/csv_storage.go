package fs

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"supply-chain-insights/internal/datasets"
)

// EncodeCSV writes the header and rows of t as comma separated text with "\n" line endings.
func EncodeCSV(w io.Writer, t datasets.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", t.Name, err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, t.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV saves t to path. The file is written to a temp sibling first and
// renamed into place, so readers never see a half written table.
func WriteCSV(path string, t datasets.Table) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := EncodeCSV(&buf, t); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}

// Section is one titled block of a multi-table CSV export.
type Section struct {
	Title string // written on its own line above the header, skipped when empty
	Table datasets.Table
}

// WriteCSVSections writes several tables into one file, separated by a blank
// line, each preceded by its title line.
func WriteCSVSections(path string, sections ...Section) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	var buf bytes.Buffer
	for i, sec := range sections {
		if i > 0 {
			buf.WriteString("\n")
		}
		if sec.Title != "" {
			buf.WriteString(sec.Title + "\n")
		}
		if err := EncodeCSV(&buf, sec.Table); err != nil {
			return err
		}
	}
	return writeFileAtomic(path, buf.Bytes())
}

func writeFileAtomic(path string, data []byte) error {
	tempFilePath := path + ".tmp"
	if err := os.WriteFile(tempFilePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file for %s: %w", path, err)
	}
	if err := os.Rename(tempFilePath, path); err != nil {
		_ = os.Remove(tempFilePath)
		return fmt.Errorf("failed to rename temporary file to %s: %w", path, err)
	}
	return nil
}

// SaveTables writes each table into dir under its Name and returns the paths in order.
func SaveTables(dir string, tables []datasets.Table) ([]string, error) {
	paths := make([]string, 0, len(tables))
	for _, t := range tables {
		path := filepath.Join(dir, t.Name)
		if err := WriteCSV(path, t); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// DecodeCSV reads a header row followed by data rows. Every row must have as
// many fields as the header.
func DecodeCSV(r io.Reader, name string) (datasets.Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return datasets.Table{}, fmt.Errorf("%s: empty file, header row expected", name)
	}
	if err != nil {
		return datasets.Table{}, fmt.Errorf("%s: failed to read header: %w", name, err)
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return datasets.Table{}, fmt.Errorf("%s: failed to read rows: %w", name, err)
	}

	return datasets.Table{Name: name, Columns: header, Rows: rows}, nil
}

// ReadCSV loads a table from path. A missing file is an error.
func ReadCSV(path string) (datasets.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return datasets.Table{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return DecodeCSV(f, filepath.Base(path))
}
