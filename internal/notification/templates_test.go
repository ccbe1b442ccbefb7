package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteSubjects(t *testing.T) {
	assert.Equal(t, "Nueva Cotización - María", CompanyQuoteSubject("María"))
	assert.Equal(t, "Confirmación de Cotización 64a1f2e8", ClientQuoteSubject("64a1f2e8"))
}

func TestCompanyQuoteBody(t *testing.T) {
	body := CompanyQuoteBody(CompanyQuoteData{
		QuoteNumber:   "64a1f2e8c9b4d1a2b3c4d5e6",
		ClientName:    "María García",
		ClientEmail:   "maria@example.com",
		ClientPhone:   "+51 999 888 777",
		SiteName:      "Química Lima",
		ContactMethod: "whatsapp",
		ProductCount:  3,
	})

	assert.Contains(t, body, "64a1f2e8c9b4d1a2b3c4d5e6")
	assert.Contains(t, body, "María García")
	assert.Contains(t, body, "maria@example.com")
	assert.Contains(t, body, "whatsapp")
	assert.Contains(t, body, ">3<")
}

func TestCompanyQuoteBody_EscapesHTML(t *testing.T) {
	body := CompanyQuoteBody(CompanyQuoteData{
		ClientName: `<script>alert("x")</script>`,
		SiteName:   "a & b",
	})

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "a &amp; b")
}

func TestClientQuoteBody(t *testing.T) {
	body := ClientQuoteBody(ClientQuoteData{
		QuoteNumber: "64a1f2e8c9b4d1a2b3c4d5e6",
		ClientName:  "María",
		CompanyName: "Química Industrial Perú",
		SiteName:    "Química Lima",
	})

	assert.Contains(t, body, "Hola María")
	assert.Contains(t, body, "64a1f2e8c9b4d1a2b3c4d5e6")
	assert.Contains(t, body, "Química Industrial Perú")
	assert.Contains(t, body, "Química Lima")
}
