// Package catalogdto contains the typed request inputs of the catalog
// domain. Create and update requests arrive as multipart forms: a "data"
// field with the JSON document plus optional images[siteN] file parts.
package catalogdto

import (
	"encoding/json"
	"mime/multipart"

	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogmodels "quimica_commerce/internal/api/catalog/models"
	"quimica_commerce/internal/common"
	"quimica_commerce/internal/sites"
	"quimica_commerce/internal/utility"
)

// ParseMultipartData decodes the "data" field of a multipart form into input.
func ParseMultipartData(form *multipart.Form, input interface{}) error {
	values := form.Value["data"]
	if len(values) == 0 {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Multipart form is missing the 'data' field",
			common.StatusBadRequest,
			nil,
		)
	}
	if err := json.Unmarshal([]byte(values[0]), input); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			"The 'data' field is not valid JSON",
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}

// ParseObjectIDs converts a list of hex strings into ObjectIDs. An empty
// input yields an empty slice, not nil.
func ParseObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	result := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := utility.String2ObjectID(id)
		if err != nil {
			return nil, err
		}
		result = append(result, objID)
	}
	return result, nil
}

// ParseFrontends converts raw site identifiers into Sites.
func ParseFrontends(raw []string) ([]sites.Site, error) {
	result := make([]sites.Site, 0, len(raw))
	for _, r := range raw {
		s, err := sites.Parse(r)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

// ValidatePrices rejects negative per-site prices.
func ValidatePrices(prices sites.PerSite[*float64]) error {
	var bad sites.Site
	prices.ForEach(func(s sites.Site, price *float64) {
		if price != nil && *price < 0 && bad == "" {
			bad = s
		}
	})
	if bad != "" {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Price for "+bad.String()+" must not be negative",
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}

// ProductCreateInput is the input to create a product.
type ProductCreateInput struct {
	Name          string                     `json:"name" validate:"required"`                   // Product name
	Presentations []string                   `json:"presentations,omitempty"`                    // Presentation IDs (hex)
	Categories    []string                   `json:"categories,omitempty"`                       // Category IDs (hex)
	Frontends     []string                   `json:"frontends" validate:"required,min=1,dive,site"` // Sites where published
	Descriptions  sites.PerSite[string]      `json:"descriptions,omitempty"`                     // Description per site
	Uses          sites.PerSite[string]      `json:"uses,omitempty"`                             // Usage text per site
	Prices        sites.PerSite[*float64]    `json:"prices,omitempty"`                           // Price per site
	Seo           sites.PerSite[catalogmodels.Seo] `json:"seo,omitempty"`                        // SEO metadata per site
}

// ToModel builds the Product document from the input. Images come from the
// upload pipeline, not the JSON body.
func (in ProductCreateInput) ToModel() (catalogmodels.Product, error) {
	var zero catalogmodels.Product

	presentations, err := ParseObjectIDs(in.Presentations)
	if err != nil {
		return zero, err
	}
	categories, err := ParseObjectIDs(in.Categories)
	if err != nil {
		return zero, err
	}
	frontends, err := ParseFrontends(in.Frontends)
	if err != nil {
		return zero, err
	}
	if err := ValidatePrices(in.Prices); err != nil {
		return zero, err
	}

	return catalogmodels.Product{
		Name:          in.Name,
		Presentations: presentations,
		Categories:    categories,
		Frontends:     frontends,
		Descriptions:  in.Descriptions,
		Uses:          in.Uses,
		Prices:        in.Prices,
		Seo:           in.Seo,
	}, nil
}

// ProductUpdateInput is the input to update a product. Only the fields
// present in the JSON are written.
type ProductUpdateInput struct {
	Name          *string                     `json:"name,omitempty"`
	Presentations *[]string                   `json:"presentations,omitempty"`
	Categories    *[]string                   `json:"categories,omitempty"`
	Frontends     *[]string                   `json:"frontends,omitempty" validate:"omitempty,min=1,dive,site"`
	Descriptions  *sites.PerSite[string]      `json:"descriptions,omitempty"`
	Uses          *sites.PerSite[string]      `json:"uses,omitempty"`
	Prices        *sites.PerSite[*float64]    `json:"prices,omitempty"`
	Seo           *sites.PerSite[catalogmodels.Seo] `json:"seo,omitempty"`
}

// ToSet builds the $set map from the fields present in the input.
func (in ProductUpdateInput) ToSet() (map[string]interface{}, error) {
	set := map[string]interface{}{}

	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Presentations != nil {
		ids, err := ParseObjectIDs(*in.Presentations)
		if err != nil {
			return nil, err
		}
		set["presentations"] = ids
	}
	if in.Categories != nil {
		ids, err := ParseObjectIDs(*in.Categories)
		if err != nil {
			return nil, err
		}
		set["categories"] = ids
	}
	if in.Frontends != nil {
		frontends, err := ParseFrontends(*in.Frontends)
		if err != nil {
			return nil, err
		}
		set["frontends"] = frontends
	}
	if in.Descriptions != nil {
		set["descriptions"] = *in.Descriptions
	}
	if in.Uses != nil {
		set["uses"] = *in.Uses
	}
	if in.Prices != nil {
		if err := ValidatePrices(*in.Prices); err != nil {
			return nil, err
		}
		set["prices"] = *in.Prices
	}
	if in.Seo != nil {
		set["seo"] = *in.Seo
	}

	return set, nil
}
