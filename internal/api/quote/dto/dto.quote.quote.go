// Package quotedto contains the typed request inputs of the quote domain.
package quotedto

import (
	quotemodels "quimica_commerce/internal/api/quote/models"
	"quimica_commerce/internal/sites"
	"quimica_commerce/internal/utility"
)

// QuoteSiteInput is the site block of a quote submission.
type QuoteSiteInput struct {
	ID         string `json:"id" validate:"required,site"`   // Site identifier
	Name       string `json:"name" validate:"required"`      // Site display name
	Address    string `json:"address" validate:"required"`   // Street address
	District   string `json:"district,omitempty"`            // District
	City       string `json:"city,omitempty"`                // City
	Department string `json:"department,omitempty"`          // Department
}

// QuoteClientInput is the client block of a quote submission.
type QuoteClientInput struct {
	Name     string `json:"name" validate:"required"`        // First name
	LastName string `json:"lastName" validate:"required"`    // Last name
	DNI      string `json:"dni,omitempty"`                   // National ID
	Email    string `json:"email" validate:"required,email"` // Contact email
	Phone    string `json:"phone" validate:"required"`       // Contact phone
	Company  string `json:"company,omitempty"`               // Company name
	RUC      string `json:"ruc,omitempty"`                   // Tax ID
}

// QuoteProductInput is one product line of a quote submission.
type QuoteProductInput struct {
	ID           string `json:"id" validate:"required"`                                                   // Referenced product ID (hex)
	Name         string `json:"name" validate:"required"`                                                 // Product name
	Presentation string `json:"presentation,omitempty"`                                                   // Presentation name
	Quantity     int    `json:"quantity" validate:"required,min=1"`                                       // Quantity
	Unit         string `json:"unit" validate:"required,oneof=kg g l ml unidades galones"`                // Quantity unit
	Frequency    string `json:"frequency,omitempty" validate:"omitempty,oneof=unica semanal quincenal mensual trimestral"` // Order frequency
}

// QuoteCreateInput is the body of a quote submission.
type QuoteCreateInput struct {
	Site          QuoteSiteInput      `json:"site" validate:"required"`
	Client        QuoteClientInput    `json:"client" validate:"required"`
	Products      []QuoteProductInput `json:"products" validate:"required,min=1,dive"`
	Observations  string              `json:"observations,omitempty"`
	ContactMethod string              `json:"contactMethod" validate:"required,oneof=email whatsapp llamada"`
}

// ToModel builds the Quote document for the pipeline. The quote starts
// pending on both status fields.
func (in QuoteCreateInput) ToModel(metadata quotemodels.QuoteMetadata) (quotemodels.Quote, error) {
	var zero quotemodels.Quote

	site, err := sites.Parse(in.Site.ID)
	if err != nil {
		return zero, err
	}

	products := make([]quotemodels.QuoteProduct, 0, len(in.Products))
	for _, p := range in.Products {
		productID, err := utility.String2ObjectID(p.ID)
		if err != nil {
			return zero, err
		}
		products = append(products, quotemodels.QuoteProduct{
			ID:           productID,
			Name:         p.Name,
			Presentation: p.Presentation,
			Quantity:     p.Quantity,
			Unit:         p.Unit,
			Frequency:    p.Frequency,
		})
	}

	return quotemodels.Quote{
		Site: quotemodels.QuoteSite{
			ID:         site,
			Name:       in.Site.Name,
			Address:    in.Site.Address,
			District:   in.Site.District,
			City:       in.Site.City,
			Department: in.Site.Department,
		},
		Client: quotemodels.QuoteClient{
			Name:     in.Client.Name,
			LastName: in.Client.LastName,
			DNI:      in.Client.DNI,
			Email:    in.Client.Email,
			Phone:    in.Client.Phone,
			Company:  in.Client.Company,
			RUC:      in.Client.RUC,
		},
		Products:           products,
		Observations:       in.Observations,
		ContactMethod:      in.ContactMethod,
		Status:             quotemodels.StatusPending,
		NotificationStatus: quotemodels.NotificationPending,
		Metadata:           metadata,
	}, nil
}

// QuoteStatusUpdateInput is the body of a status transition.
type QuoteStatusUpdateInput struct {
	Status string `json:"status" validate:"required"`
}
