// pkg/invoice/pdf.go

package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfFont       = "Arial"
	pdfFontSize   = 12
	pdfTitleSize  = 16
	pdfLineHeight = 8
)

// RenderPDF lays the invoice text out on a single A4 page.
//
// Text is set in the Arial core font, which only covers cp1252. Characters
// outside it, such as CJK pub or beer names, are not rendered faithfully in
// the PDF; the text invoice is unaffected.
func RenderPDF(inv Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(inv.Title(), true)
	pdf.AddPage()

	// core fonts are cp1252, which is where the euro glyph lives
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(pdfFont, "B", pdfTitleSize)
	pdf.CellFormat(0, pdfLineHeight*1.5, tr(inv.Title()), "", 1, "L", false, 0, "")

	pdf.SetFont(pdfFont, "", pdfFontSize)
	for _, order := range inv.Orders().Orders() {
		pdf.CellFormat(0, pdfLineHeight, tr(order.String()), "", 1, "L", false, 0, "")
	}

	pdf.SetFont(pdfFont, "B", pdfFontSize)
	pdf.CellFormat(0, pdfLineHeight, tr(inv.TotalLine()), "T", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error while rendering invoice pdf: %w", err)
	}

	return buf.Bytes(), nil
}
