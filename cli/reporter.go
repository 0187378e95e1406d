package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"interest-calculator/service"
)

const breakdownTemplate = `Compound Interest ({{.Input.CompoundsPerYear.Label}} compounding, {{.Input.Currency}})

Future Value:         {{.Breakdown.FutureValue}}
Total Interest:       {{.Breakdown.TotalInterest}}
Total Contributions:  {{.Breakdown.TotalContributions}}

Initial Principal:    {{.Breakdown.Principal}}
Monthly Additions:    {{.Breakdown.TotalMonthlyAdditions}}
Interest Earned:      {{.Breakdown.TotalInterest}}
Total Amount:         {{.Breakdown.FutureValue}}

Your money will grow by {{.Breakdown.Growth}}
{{- if .Breakdown.Projection}}

{{printf "%-8s %20s %20s %20s" "Year" "Balance" "Contributions" "Interest"}}
{{- range .Breakdown.Projection}}
{{printf "%-8g %20s %20s %20s" .Year .Balance .Contributions .Interest}}
{{- end}}
{{- end}}
`

type Reporter struct {
	writer io.Writer
	tmpl   *template.Template
}

func NewReporter(writer io.Writer) *Reporter {
	return &Reporter{
		writer: writer,
		tmpl:   template.Must(template.New("breakdown").Parse(breakdownTemplate)),
	}
}

func (r *Reporter) Text(calc service.Calculation) error {
	if err := r.tmpl.Execute(r.writer, calc); err != nil {
		return fmt.Errorf("failed to render breakdown: %w", err)
	}
	return nil
}

func (r *Reporter) JSON(calc service.Calculation) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(calc)
}
