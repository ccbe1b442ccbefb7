package catalogdto

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quimica_commerce/internal/sites"
)

func TestParseMultipartData(t *testing.T) {
	form := &multipart.Form{
		Value: map[string][]string{
			"data": {`{"name":"Soda Cáustica","frontends":["site1"]}`},
		},
	}

	var input ProductCreateInput
	require.NoError(t, ParseMultipartData(form, &input))
	assert.Equal(t, "Soda Cáustica", input.Name)
	assert.Equal(t, []string{"site1"}, input.Frontends)

	// Missing data field
	err := ParseMultipartData(&multipart.Form{Value: map[string][]string{}}, &input)
	assert.Error(t, err)

	// Malformed JSON
	bad := &multipart.Form{Value: map[string][]string{"data": {"{not json"}}}
	err = ParseMultipartData(bad, &input)
	assert.Error(t, err)
}

func TestParseObjectIDs(t *testing.T) {
	ids, err := ParseObjectIDs([]string{"64a1f2e8c9b4d1a2b3c4d5e6"})
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, "64a1f2e8c9b4d1a2b3c4d5e6", ids[0].Hex())

	ids, err = ParseObjectIDs(nil)
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)

	_, err = ParseObjectIDs([]string{"zzz"})
	assert.Error(t, err)
}

func TestValidatePrices(t *testing.T) {
	positive := 25.50
	zero := 0.0
	negative := -1.0

	assert.NoError(t, ValidatePrices(sites.PerSite[*float64]{Site1: &positive, Site3: &zero}))
	assert.NoError(t, ValidatePrices(sites.PerSite[*float64]{}))
	assert.Error(t, ValidatePrices(sites.PerSite[*float64]{Site2: &negative}))
}

func TestProductCreateInputToModel(t *testing.T) {
	price := 25.50
	in := ProductCreateInput{
		Name:      "Soda Cáustica",
		Frontends: []string{"site1", "site3"},
		Descriptions: sites.PerSite[string]{
			Site1: "Descripción",
		},
		Prices: sites.PerSite[*float64]{Site1: &price},
	}

	p, err := in.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "Soda Cáustica", p.Name)
	assert.Equal(t, []sites.Site{sites.Site1, sites.Site3}, p.Frontends)
	assert.NotNil(t, p.Presentations)
	assert.NotNil(t, p.Categories)
	// Images never come from the JSON body
	assert.Equal(t, sites.PerSite[string]{}, p.Images)

	in.Frontends = []string{"site7"}
	_, err = in.ToModel()
	assert.Error(t, err)
}

func TestProductUpdateInputToSet(t *testing.T) {
	name := "Nuevo nombre"
	frontends := []string{"site2"}
	in := ProductUpdateInput{
		Name:      &name,
		Frontends: &frontends,
	}

	set, err := in.ToSet()
	require.NoError(t, err)
	assert.Equal(t, "Nuevo nombre", set["name"])
	assert.Equal(t, []sites.Site{sites.Site2}, set["frontends"])
	assert.NotContains(t, set, "descriptions")
	assert.NotContains(t, set, "prices")

	// Empty input writes nothing
	set, err = ProductUpdateInput{}.ToSet()
	require.NoError(t, err)
	assert.Empty(t, set)

	negative := -5.0
	bad := ProductUpdateInput{Prices: &sites.PerSite[*float64]{Site1: &negative}}
	_, err = bad.ToSet()
	assert.Error(t, err)
}
