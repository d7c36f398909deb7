package console

import (
	"fmt"
	"io"

	"supply-chain-insights/internal/datasets"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// FormatTable renders t as a bordered table with a leading index column.
func FormatTable(t datasets.Table) string {
	headers := append([]string{""}, t.Columns...)
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = append([]string{fmt.Sprint(i)}, row...)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

// PrintTable writes a titled table for manual inspection.
func PrintTable(w io.Writer, title string, t datasets.Table) error {
	if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, FormatTable(t))
	return err
}
