// Package render turns a report.Report into printable output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/wdm0006/shelter/pkg/report"
)

// Renderer writes a report in one output format.
type Renderer interface {
	Render(w io.Writer, rep report.Report) error
	// Extension returns the file extension for this renderer (e.g. ".pdf").
	Extension() string
}

// Table columns shared by every renderer.
var tableHeader = []string{"ID", "Full Name", "Age", "Status"}

func tableRow(rep report.Report, i int) []string {
	r := rep.Rows[i]
	return []string{r.ID, r.Name, fmt.Sprint(r.Age), string(r.Status)}
}

// ForFormat returns the renderer registered under name.
func ForFormat(name string) (Renderer, error) {
	switch strings.ToLower(name) {
	case "", "pdf":
		return NewPDFRenderer(), nil
	case "text", "txt":
		return NewTextRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown report format %q (want pdf or text)", name)
	}
}
