package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxSheet     = "Sheet1"
	xlsxHeaderRow = 5
)

// XLSX writes d as a workbook: the result on top, the percentage table
// below with each row shaded in its bar color, and a column chart of the
// table next to it.
func XLSX(w io.Writer, d Document) error {
	f := excelize.NewFile()
	defer f.Close()

	cells := map[string]any{
		"A1": d.Title,
		"A2": d.Subtitle,
		"A3": "Estimated 1RM",
		"B3": d.Result,
	}
	if d.Note != "" {
		cells["A4"] = d.Note
	}
	for cell, v := range cells {
		if err := f.SetCellValue(xlsxSheet, cell, v); err != nil {
			return fmt.Errorf("xlsx: set %s: %w", cell, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return fmt.Errorf("xlsx: title style: %w", err)
	}
	if err := f.SetCellStyle(xlsxSheet, "A1", "A1", titleStyle); err != nil {
		return fmt.Errorf("xlsx: style title: %w", err)
	}

	if len(d.Chart.Bars) == 0 {
		return f.Write(w)
	}

	header := []any{"Percentage", "Weight (" + d.Chart.Options.DataLabels.Unit + ")"}
	if err := f.SetSheetRow(xlsxSheet, fmt.Sprintf("A%d", xlsxHeaderRow), &header); err != nil {
		return fmt.Errorf("xlsx: header: %w", err)
	}

	numFmt := `0.0 "` + d.Chart.Options.DataLabels.Unit + `"`
	for i, b := range d.Chart.Bars {
		row := xlsxHeaderRow + 1 + i
		values := []any{b.Label, b.Value}
		if err := f.SetSheetRow(xlsxSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("xlsx: row %d: %w", row, err)
		}

		style, err := f.NewStyle(&excelize.Style{
			Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{b.Color.Hex()}},
			Font:         &excelize.Font{Color: "FFFFFF", Bold: true},
			CustomNumFmt: &numFmt,
		})
		if err != nil {
			return fmt.Errorf("xlsx: row style: %w", err)
		}
		if err := f.SetCellStyle(xlsxSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), style); err != nil {
			return fmt.Errorf("xlsx: style row %d: %w", row, err)
		}
	}

	first, last := xlsxHeaderRow+1, xlsxHeaderRow+len(d.Chart.Bars)
	if err := f.AddChart(xlsxSheet, "D5", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$%d", xlsxSheet, xlsxHeaderRow),
			Categories: fmt.Sprintf("%s!$A$%d:$A$%d", xlsxSheet, first, last),
			Values:     fmt.Sprintf("%s!$B$%d:$B$%d", xlsxSheet, first, last),
		}},
		Title:    []excelize.RichTextRun{{Text: d.Chart.Title}},
		Legend:   excelize.ChartLegend{Position: "none"},
		PlotArea: excelize.ChartPlotArea{ShowVal: d.Chart.Options.DataLabels.Display},
	}); err != nil {
		return fmt.Errorf("xlsx: chart: %w", err)
	}

	return f.Write(w)
}
