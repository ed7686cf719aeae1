package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rgehrsitz/mcfolio/internal/domain"
)

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders an A4 report with the summary and the yearly band table
type PDFFormatter struct {
	Currency string
}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	// Core fonts are cp1252; translate so currency symbols survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 22)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 12, "Portfolio Forecast", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(pdfContentWidth, 8, fmt.Sprintf("%.0f%% equity over %d years, %d simulated paths (seed %d)",
		result.Input.EquityPercentage, result.Input.HorizonYears, result.NumSimulations, result.Seed), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	p.sectionHeader(pdf, "Summary")
	pdf.SetFillColor(245, 247, 250)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(50, 50, 50)
	rows := [][2]string{
		{"Initial investment", FormatAmount(result.Input.InitialInvestment, p.Currency)},
		{"Monthly contribution", FormatAmount(result.Input.MonthlyContribution, p.Currency)},
		{"Total investment", FormatAmount(result.Summary.TotalInvestment, p.Currency)},
		{"Median final value", FormatAmount(result.Summary.FinalValue, p.Currency)},
		{"Total return", FormatAmount(result.Summary.TotalReturn, p.Currency)},
		{"Expected yield", FormatPercent(result.Summary.ExpectedYield)},
	}
	for _, row := range rows {
		pdf.CellFormat(pdfContentWidth*0.6, 7, tr(row[0]), "1", 0, "L", true, 0, "")
		pdf.CellFormat(pdfContentWidth*0.4, 7, tr(row[1]), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	p.sectionHeader(pdf, "Projected value by year (millions)")
	colW := pdfContentWidth / 4
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 236, 245)
	for _, h := range []string{"Year", "Worst (10th)", "Median (50th)", "Best (90th)"} {
		pdf.CellFormat(colW, 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for i, year := range result.Chart.Years {
		pdf.CellFormat(colW, 6, fmt.Sprintf("%d", year), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW, 6, FormatMillions(result.Chart.WorstCase[i]), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW, 6, FormatMillions(result.Chart.MiddleCase[i]), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW, 6, FormatMillions(result.Chart.BestCase[i]), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	p.sectionHeader(pdf, "Assumptions")
	pdf.SetFont("Arial", "", 9)
	for _, a := range ResultAssumptions(result) {
		pdf.MultiCell(pdfContentWidth, 4.5, tr("- "+a), "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.MultiCell(pdfContentWidth, 4,
		"This document is for informational purposes only and does not constitute financial advice. "+
			"Simulated outcomes are not a guarantee of future returns.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (p PDFFormatter) sectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 9, title, "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetTextColor(50, 50, 50)
}
