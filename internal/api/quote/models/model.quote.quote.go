// Package quotemodels contains the quote request entity and its enums.
package quotemodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"quimica_commerce/internal/sites"
)

// Quote statuses. A quote starts pending and only ever changes status, it
// is never deleted.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

// Statuses lists the accepted quote statuses.
var Statuses = []string{StatusPending, StatusApproved, StatusRejected, StatusCompleted}

// ValidStatus reports whether s is an accepted quote status.
func ValidStatus(s string) bool {
	for _, status := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Notification outcomes of the quote email step.
const (
	NotificationPending = "pending"
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
)

// Contact methods a client can ask for.
const (
	ContactEmail    = "email"
	ContactWhatsapp = "whatsapp"
	ContactLlamada  = "llamada"
)

// Quantity units of a product line.
var Units = []string{"kg", "g", "l", "ml", "unidades", "galones"}

// Order frequencies of a product line.
var Frequencies = []string{"unica", "semanal", "quincenal", "mensual", "trimestral"}

// QuoteSite is the denormalized site block captured on submission.
type QuoteSite struct {
	ID         sites.Site `json:"id" bson:"id"`                                     // Site identifier
	Name       string     `json:"name" bson:"name"`                                 // Site display name
	Address    string     `json:"address" bson:"address"`                           // Street address
	District   string     `json:"district,omitempty" bson:"district,omitempty"`     // District
	City       string     `json:"city,omitempty" bson:"city,omitempty"`             // City
	Department string     `json:"department,omitempty" bson:"department,omitempty"` // Department
}

// QuoteClient is the client block of a quote.
type QuoteClient struct {
	Name     string `json:"name" bson:"name"`                             // First name
	LastName string `json:"lastName,omitempty" bson:"lastName,omitempty"` // Last name
	DNI      string `json:"dni,omitempty" bson:"dni,omitempty"`           // National ID
	Email    string `json:"email" bson:"email"`                           // Contact email
	Phone    string `json:"phone" bson:"phone"`                           // Contact phone
	Company  string `json:"company,omitempty" bson:"company,omitempty"`   // Company name
	RUC      string `json:"ruc,omitempty" bson:"ruc,omitempty"`           // Tax ID
}

// QuoteProduct is one product line of a quote.
type QuoteProduct struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"id,omitempty"`                     // Referenced product ID
	Name         string             `json:"name" bson:"name"`                                     // Product name at submission time
	Presentation string             `json:"presentation,omitempty" bson:"presentation,omitempty"` // Presentation name
	Quantity     int                `json:"quantity" bson:"quantity"`                             // Quantity, at least 1
	Unit         string             `json:"unit" bson:"unit"`                                     // Quantity unit
	Frequency    string             `json:"frequency,omitempty" bson:"frequency,omitempty"`       // Order frequency
}

// QuoteMetadata is request provenance, captured for audit only.
type QuoteMetadata struct {
	IP        string `json:"ip,omitempty" bson:"ip,omitempty"`
	UserAgent string `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
	Language  string `json:"language,omitempty" bson:"language,omitempty"`
}

// Quote is a quote request submitted from one storefront.
type Quote struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // Document ID

	Site          QuoteSite      `json:"site" bson:"site"`                                 // Originating site
	Client        QuoteClient    `json:"client" bson:"client"`                             // Client block
	Products      []QuoteProduct `json:"products" bson:"products"`                         // Ordered product lines
	Observations  string         `json:"observations,omitempty" bson:"observations,omitempty"` // Free text
	ContactMethod string         `json:"contactMethod" bson:"contactMethod"`               // Preferred contact method

	Status             string        `json:"status" bson:"status"`                         // pending/approved/rejected/completed
	NotificationStatus string        `json:"notificationStatus" bson:"notificationStatus"` // pending/sent/failed
	Metadata           QuoteMetadata `json:"metadata,omitempty" bson:"metadata,omitempty"` // Request provenance

	// Timestamps (UnixMilli)
	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
