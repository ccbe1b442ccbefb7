package quotedto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quotemodels "quimica_commerce/internal/api/quote/models"
	"quimica_commerce/internal/global"
	"quimica_commerce/internal/sites"
)

func validInput() QuoteCreateInput {
	return QuoteCreateInput{
		Site: QuoteSiteInput{
			ID:      "site2",
			Name:    "Química Lima",
			Address: "Av. Argentina 2020",
		},
		Client: QuoteClientInput{
			Name:     "María",
			LastName: "García",
			Email:    "maria@example.com",
			Phone:    "+51 999 888 777",
		},
		Products: []QuoteProductInput{
			{
				ID:       "64a1f2e8c9b4d1a2b3c4d5e6",
				Name:     "Soda Cáustica",
				Quantity: 10,
				Unit:     "kg",
			},
		},
		ContactMethod: "email",
	}
}

func TestQuoteCreateInput_Validation(t *testing.T) {
	global.InitValidator()

	require.NoError(t, global.Validate.Struct(validInput()))

	missingEmail := validInput()
	missingEmail.Client.Email = ""
	assert.Error(t, global.Validate.Struct(missingEmail))

	badEmail := validInput()
	badEmail.Client.Email = "not-an-email"
	assert.Error(t, global.Validate.Struct(badEmail))

	badSite := validInput()
	badSite.Site.ID = "site9"
	assert.Error(t, global.Validate.Struct(badSite))

	noProducts := validInput()
	noProducts.Products = nil
	assert.Error(t, global.Validate.Struct(noProducts))

	zeroQuantity := validInput()
	zeroQuantity.Products[0].Quantity = 0
	assert.Error(t, global.Validate.Struct(zeroQuantity))

	badUnit := validInput()
	badUnit.Products[0].Unit = "toneladas"
	assert.Error(t, global.Validate.Struct(badUnit))

	badContact := validInput()
	badContact.ContactMethod = "paloma"
	assert.Error(t, global.Validate.Struct(badContact))
}

func TestQuoteCreateInput_ToModel(t *testing.T) {
	metadata := quotemodels.QuoteMetadata{IP: "190.42.1.1", UserAgent: "test-agent", Language: "es-PE"}

	quote, err := validInput().ToModel(metadata)
	require.NoError(t, err)

	assert.Equal(t, sites.Site2, quote.Site.ID)
	assert.Equal(t, "María", quote.Client.Name)
	assert.Equal(t, quotemodels.StatusPending, quote.Status)
	assert.Equal(t, quotemodels.NotificationPending, quote.NotificationStatus)
	assert.Equal(t, metadata, quote.Metadata)
	require.Len(t, quote.Products, 1)
	assert.Equal(t, "64a1f2e8c9b4d1a2b3c4d5e6", quote.Products[0].ID.Hex())
}

func TestQuoteCreateInput_ToModelBadProductID(t *testing.T) {
	in := validInput()
	in.Products[0].ID = "not-hex"

	_, err := in.ToModel(quotemodels.QuoteMetadata{})
	assert.Error(t, err)
}
