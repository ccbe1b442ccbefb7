package catalogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"quimica_commerce/internal/sites"
)

// Banner is a promotional image shown on exactly one site.
type Banner struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // Document ID

	Name     string     `json:"name" bson:"name"`                           // Banner name
	Site     sites.Site `json:"site" bson:"site"`                           // Site the banner belongs to
	ImageURL string     `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"` // Public image URL

	// Timestamps (UnixMilli)
	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
