// PDF renderer. Lays out a transcript with gofpdf: one heading per term, then each
// definition's bold title, body text and source link.

package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/glosswalk/core"
)

// PDFRenderer renders a transcript as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the transcript into PDF bytes.
func (r *PDFRenderer) Render(t core.Transcript) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; translate so accented terms survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, tr("Glossary walk: "+t.Source), "", "L", false)
	if t.GeneratedAt != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, "Generated "+t.GeneratedAt, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(6)

	for _, entry := range t.Entries {
		pdf.SetFont("Helvetica", "B", 15)
		pdf.MultiCell(0, 9, tr(fmt.Sprintf("%s (%d/%d)", entry.Term, entry.Index, entry.Total)), "", "L", false)
		pdf.Ln(2)

		if len(entry.Definitions) == 0 {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 5, "No glossary definitions found.", "", "L", false)
			pdf.Ln(4)
			continue
		}

		for _, def := range entry.Definitions {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(0, 6, tr(def.Title+":"), "", "L", false)
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(def.Text), "", "L", false)
			if def.Source != "" {
				pdf.SetFont("Helvetica", "I", 8)
				pdf.SetTextColor(100, 100, 100)
				pdf.MultiCell(0, 4, tr(def.Source), "", "L", false)
				pdf.SetTextColor(0, 0, 0)
			}
			pdf.Ln(3)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
