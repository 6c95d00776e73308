package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/wdm0006/shelter/pkg/report"
)

// TextRenderer prints the report as a bordered console table.
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer { return &TextRenderer{} }

func (r *TextRenderer) Extension() string { return ".txt" }

func (r *TextRenderer) Render(w io.Writer, rep report.Report) error {
	avg := rep.Summary.AverageText()
	if rep.Summary.HasData() {
		avg += " years"
	}
	if _, err := fmt.Fprintf(w, "%s\n\nDate: %s\nTotal Beneficiaries: %d\nAverage Age: %s\n\n",
		rep.Title, rep.Date.Format("2006-01-02"), rep.Summary.TotalCount, avg); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(tableHeader)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})
	for i := range rep.Rows {
		table.Append(tableRow(rep, i))
	}
	table.Render()
	return nil
}
