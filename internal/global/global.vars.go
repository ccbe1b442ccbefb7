package global

import (
	"quimica_commerce/config"
	"quimica_commerce/internal/registry"
	"quimica_commerce/internal/sites"

	validator "github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName holds the collection names used by the application.
type MongoDB_CollectionName struct {
	Products      string // Collection for catalog products
	Categories    string // Collection for catalog categories
	Presentations string // Collection for product presentations
	Banners       string // Collection for site banners
	Quotes        string // Collection for quote requests
}

// Process-wide singletons, initialized by cmd/server.
var Validate *validator.Validate                                       // Input validation instance
var MongoDB_Session *mongo.Client                                      // MongoDB client session
var ServerConfig *config.Configuration                                 // Server configuration
var MongoDB_ColNames MongoDB_CollectionName = MongoDB_CollectionName{} // Collection names
var ActiveSites []sites.Site                                           // Sites served by this deployment

// RegistryCollections holds the MongoDB collections by name.
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()

// SiteActive reports whether s is served by this deployment.
func SiteActive(s sites.Site) bool {
	for _, active := range ActiveSites {
		if active == s {
			return true
		}
	}
	return false
}
