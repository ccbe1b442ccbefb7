package catalogdto

import (
	catalogmodels "quimica_commerce/internal/api/catalog/models"
	"quimica_commerce/internal/sites"
)

// BannerCreateInput is the input to create a banner. The image itself comes
// from the upload pipeline or an already public URL.
type BannerCreateInput struct {
	Name     string `json:"name" validate:"required"`          // Banner name
	Site     string `json:"site" validate:"required,site"`     // Site the banner belongs to
	ImageURL string `json:"imageUrl,omitempty" validate:"omitempty,url"` // Pre-existing image URL
}

// ToModel builds the Banner document from the input.
func (in BannerCreateInput) ToModel() (catalogmodels.Banner, error) {
	site, err := sites.Parse(in.Site)
	if err != nil {
		return catalogmodels.Banner{}, err
	}
	return catalogmodels.Banner{
		Name:     in.Name,
		Site:     site,
		ImageURL: in.ImageURL,
	}, nil
}

// BannerUpdateInput is the input to update a banner.
type BannerUpdateInput struct {
	Name     *string `json:"name,omitempty"`
	Site     *string `json:"site,omitempty" validate:"omitempty,site"`
	ImageURL *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// ToSet builds the $set map from the fields present in the input.
func (in BannerUpdateInput) ToSet() (map[string]interface{}, error) {
	set := map[string]interface{}{}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Site != nil {
		site, err := sites.Parse(*in.Site)
		if err != nil {
			return nil, err
		}
		set["site"] = site
	}
	if in.ImageURL != nil {
		set["imageUrl"] = *in.ImageURL
	}
	return set, nil
}
