package catalogsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogmodels "quimica_commerce/internal/api/catalog/models"
	"quimica_commerce/internal/common"
	"quimica_commerce/internal/sites"
)

func price(v float64) *float64 { return &v }

func sampleProduct() catalogmodels.Product {
	return catalogmodels.Product{
		ID:        primitive.NewObjectID(),
		Name:      "Soda Cáustica",
		Frontends: []sites.Site{sites.Site1, sites.Site3},
		Descriptions: sites.PerSite[string]{
			Site1: "Descripción para site1",
		},
		Uses: sites.PerSite[string]{
			Site1: "Limpieza industrial",
		},
		Images: sites.PerSite[string]{
			Site1: "https://storage.example.com/products/soda/site1/soda_site1.jpg",
		},
		Prices: sites.PerSite[*float64]{
			Site1: price(25.50),
		},
		Seo: sites.PerSite[catalogmodels.Seo]{
			Site1: catalogmodels.Seo{Title: "Soda Cáustica", Keywords: []string{"soda"}},
		},
	}
}

func TestProjectProduct_FlattensSiteFields(t *testing.T) {
	p := sampleProduct()

	view := ProjectProduct(p, sites.Site1)
	assert.Equal(t, p.ID, view.ID)
	assert.Equal(t, "Soda Cáustica", view.Name)
	assert.Equal(t, "Descripción para site1", view.Description)
	assert.Equal(t, "Limpieza industrial", view.Uses)
	require.NotNil(t, view.Price)
	assert.Equal(t, 25.50, *view.Price)
	assert.Equal(t, "Soda Cáustica", view.Seo.Title)
}

func TestProjectProduct_MissingSiteDataDefaults(t *testing.T) {
	p := sampleProduct()

	// site3 is published but carries no content: zero shapes, not nils
	view := ProjectProduct(p, sites.Site3)
	assert.Equal(t, "", view.Description)
	assert.Equal(t, "", view.Uses)
	assert.Equal(t, "", view.Image)
	assert.Nil(t, view.Price)
	assert.Equal(t, catalogmodels.Seo{}, view.Seo)
	assert.NotNil(t, view.Presentations)
	assert.NotNil(t, view.Categories)
}

func TestProjectProduct_DoesNotMutateSource(t *testing.T) {
	p := sampleProduct()
	before := p

	_ = ProjectProduct(p, sites.Site2)
	_ = ProjectProduct(p, sites.Site1)
	assert.Equal(t, before, p)
}

func TestProjectProductList_DropsUnpublished(t *testing.T) {
	published := sampleProduct()
	hidden := sampleProduct()
	hidden.Frontends = []sites.Site{sites.Site2}
	// hidden has site1 content but is not published there
	hidden.Descriptions.Set(sites.Site1, "should never appear")

	views := ProjectProductList([]catalogmodels.Product{published, hidden}, sites.Site1)
	require.Len(t, views, 1)
	assert.Equal(t, published.ID, views[0].ID)
}

func TestProjectProductList_EmptyInput(t *testing.T) {
	views := ProjectProductList(nil, sites.Site1)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestProjectProductDetail_NotPublished(t *testing.T) {
	p := sampleProduct()

	_, err := ProjectProductDetail(p, sites.Site2)
	require.Error(t, err)

	appErr, ok := err.(*common.Error)
	require.True(t, ok)
	assert.Equal(t, common.StatusNotFound, appErr.StatusCode)
	assert.Equal(t, "Product is not published for this site", appErr.Message)
}

func TestProjectProductDetail_NoSiteData(t *testing.T) {
	p := sampleProduct()

	// site3 is in frontends but has no content at all
	_, err := ProjectProductDetail(p, sites.Site3)
	require.Error(t, err)

	appErr, ok := err.(*common.Error)
	require.True(t, ok)
	assert.Equal(t, common.StatusNotFound, appErr.StatusCode)
	assert.Equal(t, "Product has no data for this site", appErr.Message)
}

func TestProjectProductDetail_Published(t *testing.T) {
	p := sampleProduct()

	view, err := ProjectProductDetail(p, sites.Site1)
	require.NoError(t, err)
	assert.Equal(t, p.ID, view.ID)

	// an image alone counts as site data
	p.Descriptions = sites.PerSite[string]{}
	p.Uses = sites.PerSite[string]{}
	_, err = ProjectProductDetail(p, sites.Site1)
	assert.NoError(t, err)
}

func TestProjectCategoryList(t *testing.T) {
	categories := []catalogmodels.Category{
		{
			ID:   primitive.NewObjectID(),
			Name: "Ácidos",
			Descriptions: sites.PerSite[string]{
				Site2: "Ácidos industriales",
			},
		},
	}

	views := ProjectCategoryList(categories, sites.Site2)
	require.Len(t, views, 1)
	assert.Equal(t, "Ácidos", views[0].Name)
	assert.Equal(t, "Ácidos industriales", views[0].Description)

	views = ProjectCategoryList(categories, sites.Site1)
	require.Len(t, views, 1)
	assert.Equal(t, "", views[0].Description)
}

func TestProjectPresentationList(t *testing.T) {
	presentations := []catalogmodels.Presentation{
		{
			ID:      primitive.NewObjectID(),
			Name:    "Bidón 20L",
			Type:    catalogmodels.PresentationTypeLiquido,
			Measure: "20L",
		},
	}

	views := ProjectPresentationList(presentations, sites.Site4)
	require.Len(t, views, 1)
	assert.Equal(t, "Bidón 20L", views[0].Name)
	assert.Equal(t, catalogmodels.PresentationTypeLiquido, views[0].Type)
	assert.Equal(t, "20L", views[0].Measure)
}

func TestFilterBannersBySite(t *testing.T) {
	banners := []catalogmodels.Banner{
		{Name: "Promo site1", Site: sites.Site1},
		{Name: "Promo site2", Site: sites.Site2},
		{Name: "Promo site1 b", Site: sites.Site1},
	}

	filtered := FilterBannersBySite(banners, sites.Site1)
	require.Len(t, filtered, 2)
	for _, b := range filtered {
		assert.Equal(t, sites.Site1, b.Site)
	}

	filtered = FilterBannersBySite(banners, sites.Site5)
	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}
