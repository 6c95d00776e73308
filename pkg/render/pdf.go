package render

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/wdm0006/shelter/pkg/report"
)

const (
	rowHeight    = 10.0
	bottomMargin = 15.0
)

// column widths in mm for ID, Full Name, Age, Status.
var pdfWidths = []float64{40, 80, 30, 40}

// PDFRenderer lays the report out on A4 pages with a repeated title and a
// page-numbered footer.
type PDFRenderer struct {
	FontFamily string
}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{FontFamily: "Arial"}
}

func (r *PDFRenderer) Extension() string { return ".pdf" }

func (r *PDFRenderer) Render(w io.Writer, rep report.Report) error {
	font := r.FontFamily
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, bottomMargin)
	pdf.SetHeaderFunc(func() {
		pdf.SetFont(font, "B", 12)
		pdf.CellFormat(0, 10, tr(rep.Title), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(font, "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(font, "B", 10)
	pdf.CellFormat(0, 10, "Date: "+rep.Date.Format("2006-01-02"), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("Total Beneficiaries: %d", rep.Summary.TotalCount), "", 1, "", false, 0, "")
	avg := rep.Summary.AverageText()
	if rep.Summary.HasData() {
		avg += " years"
	}
	pdf.CellFormat(0, 10, "Average Age: "+avg, "", 1, "", false, 0, "")
	pdf.Ln(10)

	header := func() {
		pdf.SetFont(font, "B", 10)
		pdf.SetFillColor(200, 220, 255)
		for i, h := range tableHeader {
			ln := 0
			if i == len(tableHeader)-1 {
				ln = 1
			}
			pdf.CellFormat(pdfWidths[i], rowHeight, h, "1", ln, "C", true, 0, "")
		}
		pdf.SetFont(font, "", 9)
	}
	header()

	_, pageH := pdf.GetPageSize()
	aligns := []string{"", "", "C", "C"}
	for i := range rep.Rows {
		if pdf.GetY()+rowHeight > pageH-bottomMargin {
			pdf.AddPage()
			header()
		}
		for c, cell := range tableRow(rep, i) {
			ln := 0
			if c == len(aligns)-1 {
				ln = 1
			}
			pdf.CellFormat(pdfWidths[c], rowHeight, tr(cell), "1", ln, aligns[c], false, 0, "")
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
