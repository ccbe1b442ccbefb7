package notification

import (
	"fmt"
	"html"
	"strings"
)

// CompanyQuoteData feeds the internal notification sent to the company inbox.
type CompanyQuoteData struct {
	QuoteNumber   string
	ClientName    string
	ClientEmail   string
	ClientPhone   string
	SiteName      string
	ContactMethod string
	ProductCount  int
}

// ClientQuoteData feeds the confirmation sent to the client.
type ClientQuoteData struct {
	QuoteNumber string
	ClientName  string
	CompanyName string
	SiteName    string
}

// CompanyQuoteSubject is the subject line of the internal notification.
func CompanyQuoteSubject(clientName string) string {
	return fmt.Sprintf("Nueva Cotización - %s", clientName)
}

// ClientQuoteSubject is the subject line of the client confirmation.
func ClientQuoteSubject(quoteNumber string) string {
	return fmt.Sprintf("Confirmación de Cotización %s", quoteNumber)
}

// CompanyQuoteBody builds the HTML body of the internal notification.
func CompanyQuoteBody(data CompanyQuoteData) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">`)
	b.WriteString(`<h2 style="color:#1a5276;">Nueva solicitud de cotización</h2>`)
	b.WriteString(fmt.Sprintf(`<p>Se recibió una nueva cotización <strong>%s</strong> desde <strong>%s</strong>.</p>`,
		html.EscapeString(data.QuoteNumber), html.EscapeString(data.SiteName)))
	b.WriteString(`<table style="border-collapse:collapse;width:100%;">`)
	row := func(label, value string) {
		b.WriteString(fmt.Sprintf(
			`<tr><td style="padding:6px;border:1px solid #ddd;font-weight:bold;">%s</td><td style="padding:6px;border:1px solid #ddd;">%s</td></tr>`,
			label, html.EscapeString(value)))
	}
	row("Cliente", data.ClientName)
	row("Email", data.ClientEmail)
	row("Teléfono", data.ClientPhone)
	row("Método de contacto", data.ContactMethod)
	row("Productos", fmt.Sprintf("%d", data.ProductCount))
	b.WriteString(`</table>`)
	b.WriteString(`<p>El detalle completo está en el PDF adjunto.</p>`)
	b.WriteString(`</div>`)
	return b.String()
}

// ClientQuoteBody builds the HTML body of the client confirmation.
func ClientQuoteBody(data ClientQuoteData) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">`)
	b.WriteString(fmt.Sprintf(`<h2 style="color:#1a5276;">Hola %s,</h2>`, html.EscapeString(data.ClientName)))
	b.WriteString(fmt.Sprintf(
		`<p>Hemos recibido su solicitud de cotización <strong>%s</strong> a través de <strong>%s</strong>.</p>`,
		html.EscapeString(data.QuoteNumber), html.EscapeString(data.SiteName)))
	b.WriteString(`<p>Nuestro equipo la revisará y se pondrá en contacto con usted a la brevedad. Adjuntamos una copia en PDF para su referencia.</p>`)
	b.WriteString(fmt.Sprintf(`<p>Atentamente,<br>%s</p>`, html.EscapeString(data.CompanyName)))
	b.WriteString(`</div>`)
	return b.String()
}
