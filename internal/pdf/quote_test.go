package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCompany() CompanyInfo {
	return CompanyInfo{
		Name:    "Química Industrial Perú",
		Email:   "ventas@quimicaindustrial.pe",
		Phone:   "+51 1 555 0100",
		Address: "Av. Argentina 2020, Lima",
	}
}

func testDocument() QuoteDocument {
	return QuoteDocument{
		Number:      "64a1f2e8c9b4d1a2b3c4d5e6",
		Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		ClientName:  "María García",
		ClientDNI:   "45678912",
		ClientEmail: "maria@example.com",
		ClientPhone: "+51 999 888 777",
		Company:     "Textiles García SAC",
		RUC:         "20123456789",
		Lines: []QuoteLine{
			{Product: "Soda Cáustica", Presentation: "Saco 25kg", Quantity: 10, Unit: "kg", Frequency: "mensual"},
			{Product: "Ácido Cítrico", Presentation: "Bolsa 1kg", Quantity: 5, Unit: "kg", Frequency: "unica"},
		},
		Observations: "Entrega en planta, horario de mañana.",
	}
}

func TestRenderQuote_ProducesPDF(t *testing.T) {
	r := NewRenderer(testCompany())

	out, err := r.RenderQuote(testDocument())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderQuote_DeterministicWithFixedClock(t *testing.T) {
	fixed := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	clock := func() time.Time { return fixed }

	first, err := NewRenderer(testCompany()).WithClock(clock).RenderQuote(testDocument())
	require.NoError(t, err)
	second, err := NewRenderer(testCompany()).WithClock(clock).RenderQuote(testDocument())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderQuote_OptionalFieldsOmitted(t *testing.T) {
	doc := testDocument()
	doc.ClientDNI = ""
	doc.Company = ""
	doc.RUC = ""
	doc.Observations = ""

	out, err := NewRenderer(testCompany()).RenderQuote(doc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderQuote_EmptyLines(t *testing.T) {
	doc := testDocument()
	doc.Lines = nil

	out, err := NewRenderer(testCompany()).RenderQuote(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
