// Package catalogmodels contains the catalog entities: products, categories,
// presentations and banners, all scoped per site.
package catalogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"quimica_commerce/internal/sites"
)

// Seo holds the search engine metadata of one site's product page.
type Seo struct {
	Title       string   `json:"title,omitempty" bson:"title,omitempty"`             // Page title
	Description string   `json:"description,omitempty" bson:"description,omitempty"` // Meta description
	Keywords    []string `json:"keywords,omitempty" bson:"keywords,omitempty"`       // Meta keywords
}

// Product is a catalog product published on one or more sites. Frontends is
// authoritative for visibility: per-site data may exist for a site that is
// not listed, but that site never sees the product.
type Product struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // Document ID

	// Identity
	Name          string               `json:"name" bson:"name"`                                       // Product name
	Presentations []primitive.ObjectID `json:"presentations,omitempty" bson:"presentations,omitempty"` // Referenced presentation IDs
	Categories    []primitive.ObjectID `json:"categories,omitempty" bson:"categories,omitempty"`       // Referenced category IDs
	Frontends     []sites.Site         `json:"frontends" bson:"frontends"`                             // Sites where the product is published

	// Per-site content
	Descriptions sites.PerSite[string]   `json:"descriptions,omitempty" bson:"descriptions,omitempty"` // Description per site
	Uses         sites.PerSite[string]   `json:"uses,omitempty" bson:"uses,omitempty"`                 // Usage text per site
	Images       sites.PerSite[string]   `json:"images,omitempty" bson:"images,omitempty"`             // Image URL per site
	Prices       sites.PerSite[*float64] `json:"prices,omitempty" bson:"prices,omitempty"`             // Price per site, absent when unpriced
	Seo          sites.PerSite[Seo]      `json:"seo,omitempty" bson:"seo,omitempty"`                   // SEO metadata per site

	// Timestamps (UnixMilli)
	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// PublishedOn reports whether the product is published on site s.
func (p Product) PublishedOn(s sites.Site) bool {
	for _, f := range p.Frontends {
		if f == s {
			return true
		}
	}
	return false
}

// HasSiteData reports whether any of the three content fields carries data
// for site s.
func (p Product) HasSiteData(s sites.Site) bool {
	return p.Descriptions.Get(s) != "" || p.Uses.Get(s) != "" || p.Images.Get(s) != ""
}
