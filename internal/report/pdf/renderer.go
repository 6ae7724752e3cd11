// Package pdf renders report documents to PDF bytes. It is the only
// package that talks to the typesetting library; the document model stays
// layout-neutral.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/example/extension-assistant/internal/report"
)

const (
	pageMargin   = 20.0
	lineHeight   = 6.0
	labelWidth   = 45.0
	signatureGap = 18.0
)

// Renderer converts document models into A4 portrait PDFs.
type Renderer struct{}

// NewRenderer returns a ready renderer; it holds no state between calls.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render walks the document blocks in order and returns the PDF bytes.
func (r *Renderer) Render(doc report.Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pageMargin

	for _, block := range doc.Blocks {
		switch b := block.(type) {
		case report.Header:
			pdf.SetFont("Helvetica", "B", 14)
			for i, line := range b.Lines {
				if i > 0 {
					pdf.SetFont("Helvetica", "B", 12)
				}
				pdf.CellFormat(contentWidth, lineHeight+2, translate(line), "", 1, "C", false, 0, "")
			}
			pdf.Ln(lineHeight)

		case report.TitleTable:
			for _, row := range b.Rows {
				pdf.SetFont("Helvetica", "B", 10)
				pdf.CellFormat(labelWidth, lineHeight+1, translate(row[0]), "1", 0, "L", false, 0, "")
				pdf.SetFont("Helvetica", "", 10)
				pdf.CellFormat(contentWidth-labelWidth, lineHeight+1, translate(row[1]), "1", 1, "L", false, 0, "")
			}
			pdf.Ln(lineHeight)

		case report.BodyTable:
			for _, section := range b.Sections {
				pdf.SetFont("Helvetica", "B", 11)
				pdf.CellFormat(contentWidth, lineHeight+1, translate(section.Heading), "", 1, "L", false, 0, "")
				pdf.SetFont("Helvetica", "", 10)
				for _, paragraph := range section.Paragraphs {
					pdf.MultiCell(contentWidth, lineHeight, translate(paragraph), "", "L", false)
				}
				pdf.Ln(lineHeight / 2)
			}

		case report.Paragraph:
			switch b.Style {
			case report.StyleNote:
				pdf.SetFont("Helvetica", "I", 9)
			default:
				pdf.SetFont("Helvetica", "", 11)
			}
			pdf.MultiCell(contentWidth, lineHeight, translate(b.Text), "", "J", false)
			pdf.Ln(lineHeight / 2)

		case report.SignatureBlock:
			pdf.Ln(signatureGap)
			pdf.SetFont("Helvetica", "", 10)
			for _, label := range b.Labels {
				pdf.CellFormat(contentWidth, lineHeight, "_________________________________", "", 1, "C", false, 0, "")
				pdf.CellFormat(contentWidth, lineHeight, translate(label), "", 1, "C", false, 0, "")
				pdf.Ln(lineHeight)
			}

		default:
			return nil, fmt.Errorf("pdf: unsupported block type %T", block)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render %s: %w", doc.Filename, err)
	}
	return buf.Bytes(), nil
}
