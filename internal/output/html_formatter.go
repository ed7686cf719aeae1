package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/mcfolio/internal/domain"
)

// HTMLFormatter produces a standalone HTML report
type HTMLFormatter struct {
	Currency string
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":     FormatAmount,
	"pct":      FormatPercent,
	"millions": FormatMillions,
}).Parse(htmlTemplateSource))

type htmlRow struct {
	Year                int
	Worst, Middle, Best float64
}

func (h HTMLFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	rows := make([]htmlRow, len(result.Chart.Years))
	for i, year := range result.Chart.Years {
		rows[i] = htmlRow{
			Year:   year,
			Worst:  result.Chart.WorstCase[i],
			Middle: result.Chart.MiddleCase[i],
			Best:   result.Chart.BestCase[i],
		}
	}
	data := struct {
		*domain.SimulationResult
		Currency    string
		Rows        []htmlRow
		Assumptions []string
	}{result, h.Currency, rows, ResultAssumptions(result)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
