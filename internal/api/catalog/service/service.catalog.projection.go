// Package catalogsvc contains the catalog domain services and the site
// projection applied to catalog entities before they reach a storefront.
package catalogsvc

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogmodels "quimica_commerce/internal/api/catalog/models"
	"quimica_commerce/internal/common"
	"quimica_commerce/internal/sites"
)

// Projection is a pure read-side transform: it flattens the per-site fields
// of a stored entity into the shape one storefront sees and never mutates
// the stored document. Missing values flatten to their zero shape (empty
// string, empty object, absent price) so the response stays stable.

// ProjectProduct flattens a product for one site without any visibility
// check. Listing and detail lookups apply their policy on top.
func ProjectProduct(p catalogmodels.Product, site sites.Site) catalogmodels.ProductSiteView {
	presentations := p.Presentations
	if presentations == nil {
		presentations = []primitive.ObjectID{}
	}
	categories := p.Categories
	if categories == nil {
		categories = []primitive.ObjectID{}
	}

	return catalogmodels.ProductSiteView{
		ID:            p.ID,
		Name:          p.Name,
		Presentations: presentations,
		Categories:    categories,
		Description:   p.Descriptions.Get(site),
		Uses:          p.Uses.Get(site),
		Image:         p.Images.Get(site),
		Price:         p.Prices.Get(site),
		Seo:           p.Seo.Get(site),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ProjectProductList flattens a product list for one site. Products whose
// frontends do not include the site are dropped entirely, even when
// per-site data happens to exist for it.
func ProjectProductList(products []catalogmodels.Product, site sites.Site) []catalogmodels.ProductSiteView {
	views := make([]catalogmodels.ProductSiteView, 0, len(products))
	for _, p := range products {
		if !p.PublishedOn(site) {
			continue
		}
		views = append(views, ProjectProduct(p, site))
	}
	return views
}

// ProjectProductDetail flattens a single product for one site. Both failure
// outcomes are not-found to the caller but carry distinct messages for
// diagnostics: not published on the site at all, or published but with no
// content for it.
func ProjectProductDetail(p catalogmodels.Product, site sites.Site) (catalogmodels.ProductSiteView, error) {
	var zero catalogmodels.ProductSiteView

	if !p.PublishedOn(site) {
		return zero, common.NewError(
			common.ErrCodeDatabaseQuery,
			"Product is not published for this site",
			common.StatusNotFound,
			nil,
		)
	}
	if !p.HasSiteData(site) {
		return zero, common.NewError(
			common.ErrCodeDatabaseQuery,
			"Product has no data for this site",
			common.StatusNotFound,
			nil,
		)
	}

	return ProjectProduct(p, site), nil
}

// ProjectCategory flattens a category for one site.
func ProjectCategory(c catalogmodels.Category, site sites.Site) catalogmodels.CategorySiteView {
	return catalogmodels.CategorySiteView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Descriptions.Get(site),
		Image:       c.Images.Get(site),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ProjectCategoryList flattens a category list for one site.
func ProjectCategoryList(categories []catalogmodels.Category, site sites.Site) []catalogmodels.CategorySiteView {
	views := make([]catalogmodels.CategorySiteView, 0, len(categories))
	for _, c := range categories {
		views = append(views, ProjectCategory(c, site))
	}
	return views
}

// ProjectPresentation flattens a presentation for one site.
func ProjectPresentation(p catalogmodels.Presentation, site sites.Site) catalogmodels.PresentationSiteView {
	return catalogmodels.PresentationSiteView{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Measure:     p.Measure,
		Description: p.Descriptions.Get(site),
		Image:       p.Images.Get(site),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProjectPresentationList flattens a presentation list for one site.
func ProjectPresentationList(presentations []catalogmodels.Presentation, site sites.Site) []catalogmodels.PresentationSiteView {
	views := make([]catalogmodels.PresentationSiteView, 0, len(presentations))
	for _, p := range presentations {
		views = append(views, ProjectPresentation(p, site))
	}
	return views
}

// FilterBannersBySite keeps only the banners of one site.
func FilterBannersBySite(banners []catalogmodels.Banner, site sites.Site) []catalogmodels.Banner {
	result := make([]catalogmodels.Banner, 0, len(banners))
	for _, b := range banners {
		if b.Site == site {
			result = append(result, b)
		}
	}
	return result
}
