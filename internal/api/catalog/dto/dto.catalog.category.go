package catalogdto

import (
	catalogmodels "quimica_commerce/internal/api/catalog/models"
	"quimica_commerce/internal/sites"
)

// CategoryCreateInput is the input to create a category.
type CategoryCreateInput struct {
	Name         string                `json:"name" validate:"required"`                      // Category name (unique)
	Frontends    []string              `json:"frontends" validate:"required,min=1,dive,site"` // Sites where the category appears
	Descriptions sites.PerSite[string] `json:"descriptions,omitempty"`                        // Description per site
}

// ToModel builds the Category document from the input.
func (in CategoryCreateInput) ToModel() (catalogmodels.Category, error) {
	frontends, err := ParseFrontends(in.Frontends)
	if err != nil {
		return catalogmodels.Category{}, err
	}
	return catalogmodels.Category{
		Name:         in.Name,
		Frontends:    frontends,
		Descriptions: in.Descriptions,
	}, nil
}

// CategoryUpdateInput is the input to update a category.
type CategoryUpdateInput struct {
	Name         *string                `json:"name,omitempty"`
	Frontends    *[]string              `json:"frontends,omitempty" validate:"omitempty,min=1,dive,site"`
	Descriptions *sites.PerSite[string] `json:"descriptions,omitempty"`
}

// ToSet builds the $set map from the fields present in the input.
func (in CategoryUpdateInput) ToSet() (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if in.Name != nil {
		set["name"] = *in.Name
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
	return set, nil
}
