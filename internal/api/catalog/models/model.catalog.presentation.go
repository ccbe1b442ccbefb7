package catalogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"quimica_commerce/internal/sites"
)

// Presentation physical forms.
const (
	PresentationTypeSolido    = "solido"
	PresentationTypeLiquido   = "liquido"
	PresentationTypePolvo     = "polvo"
	PresentationTypeGranulado = "granulado"
)

// PresentationTypes lists the accepted presentation forms.
var PresentationTypes = []string{
	PresentationTypeSolido,
	PresentationTypeLiquido,
	PresentationTypePolvo,
	PresentationTypeGranulado,
}

// Presentation is a physical form a product is sold in. Name is unique at
// the store level.
type Presentation struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // Document ID

	Name      string       `json:"name" bson:"name"`                       // Presentation name (unique)
	Type      string       `json:"type" bson:"type"`                       // Physical form (solido/liquido/polvo/granulado)
	Measure   string       `json:"measure,omitempty" bson:"measure,omitempty"` // Unit of measure, free text
	Frontends []sites.Site `json:"frontends" bson:"frontends"`             // Sites where the presentation appears

	// Per-site content
	Descriptions sites.PerSite[string] `json:"descriptions,omitempty" bson:"descriptions,omitempty"` // Description per site
	Images       sites.PerSite[string] `json:"images,omitempty" bson:"images,omitempty"`             // Image URL per site

	// Image generation inputs, stored as data only
	PromptText    string `json:"promptText,omitempty" bson:"promptText,omitempty"`
	TemplateImage string `json:"templateImage,omitempty" bson:"templateImage,omitempty"`

	// Timestamps (UnixMilli)
	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
