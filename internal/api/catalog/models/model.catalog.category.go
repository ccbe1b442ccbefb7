package catalogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"quimica_commerce/internal/sites"
)

// Category groups products. Name is unique at the store level.
type Category struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // Document ID

	Name      string       `json:"name" bson:"name"`           // Category name (unique)
	Frontends []sites.Site `json:"frontends" bson:"frontends"` // Sites where the category appears

	// Per-site content
	Descriptions sites.PerSite[string] `json:"descriptions,omitempty" bson:"descriptions,omitempty"` // Description per site
	Images       sites.PerSite[string] `json:"images,omitempty" bson:"images,omitempty"`             // Image URL per site

	// Timestamps (UnixMilli)
	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
