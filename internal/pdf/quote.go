// Package pdf renders quote documents for email delivery.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"quimica_commerce/internal/common"
)

// CompanyInfo is the letterhead printed on every quote.
type CompanyInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// QuoteLine is one product row of the quote table.
type QuoteLine struct {
	Product      string
	Presentation string
	Quantity     int
	Unit         string
	Frequency    string
}

// QuoteDocument carries everything the renderer needs. The quote service
// maps its model into this struct.
type QuoteDocument struct {
	Number       string // quote id in hex
	Date         time.Time
	ClientName   string
	ClientDNI    string
	ClientEmail  string
	ClientPhone  string
	Company      string
	RUC          string
	Lines        []QuoteLine
	Observations string
}

// Renderer renders quote PDFs. now is injectable so rendered bytes are
// deterministic under test.
type Renderer struct {
	company CompanyInfo
	now     func() time.Time
}

// NewRenderer creates a Renderer for the given company letterhead.
func NewRenderer(company CompanyInfo) *Renderer {
	return &Renderer{
		company: company,
		now:     time.Now,
	}
}

// WithClock overrides the renderer clock.
func (r *Renderer) WithClock(now func() time.Time) *Renderer {
	r.now = now
	return r
}

// RenderQuote renders the quote document and returns the PDF bytes.
func (r *Renderer) RenderQuote(doc QuoteDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Quote text is Spanish, the core fonts are CP1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Fixed creation/modification dates keep the bytes deterministic
	pdf.SetCreationDate(r.now())
	pdf.SetModificationDate(r.now())

	pdf.AddPage()

	// Company header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, tr(r.company.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr(r.company.Address), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("%s | %s", r.company.Email, r.company.Phone)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Title and identification
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr("COTIZACIÓN"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Número: %s", doc.Number)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Fecha: %s", doc.Date.Format("02/01/2006"))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Client block
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, tr("DATOS DEL CLIENTE"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Cliente: %s", doc.ClientName)), "", 1, "L", false, 0, "")
	if doc.ClientDNI != "" {
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("DNI: %s", doc.ClientDNI)), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Email: %s", doc.ClientEmail)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Teléfono: %s", doc.ClientPhone)), "", 1, "L", false, 0, "")
	if doc.Company != "" {
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Empresa: %s", doc.Company)), "", 1, "L", false, 0, "")
	}
	if doc.RUC != "" {
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("RUC: %s", doc.RUC)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Product table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(70, 7, tr("Producto"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 7, tr("Presentación"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 7, tr("Cantidad"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, tr("Frecuencia"), "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range doc.Lines {
		pdf.CellFormat(70, 7, tr(line.Product), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, tr(line.Presentation), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, tr(fmt.Sprintf("%d %s", line.Quantity, line.Unit)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 7, tr(line.Frequency), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	// Observations
	if doc.Observations != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, tr("OBSERVACIONES"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(doc.Observations), "", "L", false)
		pdf.Ln(4)
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, tr("Gracias por su preferencia"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, common.NewError(
			common.ErrCodeInternalServer,
			"Failed to render quote PDF",
			common.StatusInternalServerError,
			err,
		)
	}
	return buf.Bytes(), nil
}
