package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quimica_commerce/internal/sites"
)

func TestParseSiteImageField(t *testing.T) {
	site, ok := ParseSiteImageField("images[site1]")
	require.True(t, ok)
	assert.Equal(t, sites.Site1, site)

	site, ok = ParseSiteImageField("images[site5]")
	require.True(t, ok)
	assert.Equal(t, sites.Site5, site)

	for _, field := range []string{
		"images[site6]",
		"images[site]",
		"images",
		"image[site1]",
		"images[site1",
		"xximages[site1]",
		"images[site1]yy",
		"data",
	} {
		_, ok := ParseSiteImageField(field)
		assert.False(t, ok, "field %q must not parse", field)
	}
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "soda_caustica", SanitizeName("Soda Caustica"))
	assert.Equal(t, "cido_ntrico_68", SanitizeName("Ácido Nítrico 68%"))
	assert.Equal(t, "cloro", SanitizeName("  Cloro  "))
	assert.Equal(t, "a_b", SanitizeName("a\tb"))
	assert.Equal(t, "", SanitizeName("¡¿!?"))
}

func TestObjectPath(t *testing.T) {
	path := ObjectPath("products", "Soda Caustica", sites.Site2)
	assert.Equal(t, "products/soda_caustica/site2/soda_caustica_site2.jpg", path)

	// Same entity and site always maps to the same blob
	again := ObjectPath("products", "Soda Caustica", sites.Site2)
	assert.Equal(t, path, again)

	other := ObjectPath("banners", "Promo Verano", sites.Site4)
	assert.Equal(t, "banners/promo_verano/site4/promo_verano_site4.jpg", other)
}
