package catalogdto

import (
	catalogmodels "quimica_commerce/internal/api/catalog/models"
	"quimica_commerce/internal/sites"
)

// PresentationCreateInput is the input to create a presentation.
type PresentationCreateInput struct {
	Name         string                `json:"name" validate:"required"`                                   // Presentation name (unique)
	Type         string                `json:"type" validate:"required,oneof=solido liquido polvo granulado"` // Physical form
	Measure      string                `json:"measure,omitempty"`                                          // Unit of measure
	Frontends    []string              `json:"frontends" validate:"required,min=1,dive,site"`              // Sites where the presentation appears
	Descriptions sites.PerSite[string] `json:"descriptions,omitempty"`                                     // Description per site

	// Image generation inputs, persisted as data only
	PromptText    string `json:"promptText,omitempty"`
	TemplateImage string `json:"templateImage,omitempty"`
}

// ToModel builds the Presentation document from the input.
func (in PresentationCreateInput) ToModel() (catalogmodels.Presentation, error) {
	frontends, err := ParseFrontends(in.Frontends)
	if err != nil {
		return catalogmodels.Presentation{}, err
	}
	return catalogmodels.Presentation{
		Name:          in.Name,
		Type:          in.Type,
		Measure:       in.Measure,
		Frontends:     frontends,
		Descriptions:  in.Descriptions,
		PromptText:    in.PromptText,
		TemplateImage: in.TemplateImage,
	}, nil
}

// PresentationUpdateInput is the input to update a presentation.
type PresentationUpdateInput struct {
	Name          *string                `json:"name,omitempty"`
	Type          *string                `json:"type,omitempty" validate:"omitempty,oneof=solido liquido polvo granulado"`
	Measure       *string                `json:"measure,omitempty"`
	Frontends     *[]string              `json:"frontends,omitempty" validate:"omitempty,min=1,dive,site"`
	Descriptions  *sites.PerSite[string] `json:"descriptions,omitempty"`
	PromptText    *string                `json:"promptText,omitempty"`
	TemplateImage *string                `json:"templateImage,omitempty"`
}

// ToSet builds the $set map from the fields present in the input.
func (in PresentationUpdateInput) ToSet() (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Type != nil {
		set["type"] = *in.Type
	}
	if in.Measure != nil {
		set["measure"] = *in.Measure
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
	if in.PromptText != nil {
		set["promptText"] = *in.PromptText
	}
	if in.TemplateImage != nil {
		set["templateImage"] = *in.TemplateImage
	}
	return set, nil
}
