package catalogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Site views are the flattened shapes a single storefront receives. Absent
// per-site values flatten to empty strings and empty objects, never null,
// so the response shape stays stable for the frontends.

// ProductSiteView is a product flattened for one site.
type ProductSiteView struct {
	ID            primitive.ObjectID   `json:"id"`
	Name          string               `json:"name"`
	Presentations []primitive.ObjectID `json:"presentations"`
	Categories    []primitive.ObjectID `json:"categories"`
	Description   string               `json:"description"`
	Uses          string               `json:"uses"`
	Image         string               `json:"image"`
	Price         *float64             `json:"price,omitempty"`
	Seo           Seo                  `json:"seo"`
	CreatedAt     int64                `json:"createdAt"`
	UpdatedAt     int64                `json:"updatedAt"`
}

// CategorySiteView is a category flattened for one site.
type CategorySiteView struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
	CreatedAt   int64              `json:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt"`
}

// PresentationSiteView is a presentation flattened for one site.
type PresentationSiteView struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Type        string             `json:"type"`
	Measure     string             `json:"measure"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
	CreatedAt   int64              `json:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt"`
}
