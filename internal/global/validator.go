package global

import (
	"quimica_commerce/internal/sites"

	"github.com/go-playground/validator/v10"
)

// InitValidator initializes the validator and registers custom validations.
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("site", validateSite)
	_ = Validate.RegisterValidation("active_site", validateActiveSite)
}

// validateSite checks that the value is one of the known site identifiers.
func validateSite(fl validator.FieldLevel) bool {
	return sites.Site(fl.Field().String()).Valid()
}

// validateActiveSite checks that the value names a site this deployment
// actually serves (SITE_IDS config).
func validateActiveSite(fl validator.FieldLevel) bool {
	s := sites.Site(fl.Field().String())
	if !s.Valid() {
		return false
	}
	// Before ActiveSites is initialized, fall back to the full enum
	if len(ActiveSites) == 0 {
		return true
	}
	return SiteActive(s)
}
