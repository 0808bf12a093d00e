package render

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
)

// Chart area on an A4 portrait page, in millimetres.
const (
	pdfChartLeft   = 20.0
	pdfChartWidth  = 170.0
	pdfChartHeight = 100.0
)

// PDF writes d as a single A4 page with the result and a vertical bar chart.
func PDF(w io.Writer, d Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(d.Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, d.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, d.Subtitle)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.Cell(0, 14, d.Result)
	pdf.Ln(18)

	if d.Note != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(185, 28, 28)
		pdf.MultiCell(0, 5, d.Note, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	if err := drawBars(pdf, d); err != nil {
		return err
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: output: %w", err)
	}
	return nil
}

func drawBars(pdf *gofpdf.Fpdf, d Document) error {
	bars := d.Chart.Bars
	peak := d.Chart.Max()
	if len(bars) == 0 || peak <= 0 {
		return nil
	}

	top := pdf.GetY() + 8
	base := top + pdfChartHeight
	slot := pdfChartWidth / float64(len(bars))
	barWidth := slot * 0.7

	pdf.SetFont("Helvetica", "", 8)
	for i, b := range bars {
		r, g, bl, err := b.Color.RGB()
		if err != nil {
			return fmt.Errorf("pdf: bar %s: %w", b.Label, err)
		}
		h := b.Value / peak * pdfChartHeight
		x := pdfChartLeft + float64(i)*slot + (slot-barWidth)/2

		pdf.SetFillColor(int(r), int(g), int(bl))
		pdf.Rect(x, base-h, barWidth, h, "F")

		if d.Chart.Options.DataLabels.Display {
			pdf.SetXY(x-2, base-h-5)
			pdf.CellFormat(barWidth+4, 4, d.Chart.Options.FormatValue(b.Value), "", 0, "C", false, 0, "")
		}
		pdf.SetXY(x, base+1)
		pdf.CellFormat(barWidth, 4, b.Label, "", 0, "C", false, 0, "")
	}

	pdf.SetDrawColor(156, 163, 175)
	pdf.Line(pdfChartLeft, base, pdfChartLeft+pdfChartWidth, base)
	return pdf.Error()
}
