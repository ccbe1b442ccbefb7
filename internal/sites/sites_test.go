package sites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	s, err := Parse("site3")
	require.NoError(t, err)
	assert.Equal(t, Site3, s)

	// Parse normalizes case and whitespace
	s, err = Parse("  SITE1 ")
	require.NoError(t, err)
	assert.Equal(t, Site1, s)

	_, err = Parse("site6")
	assert.Error(t, err)

	_, err = Parse("")
	assert.Error(t, err)
}

func TestParseList(t *testing.T) {
	list, err := ParseList("site1, site2,site5")
	require.NoError(t, err)
	assert.Equal(t, []Site{Site1, Site2, Site5}, list)

	// Empty segments are skipped
	list, err = ParseList("site1,,site2,")
	require.NoError(t, err)
	assert.Equal(t, []Site{Site1, Site2}, list)

	_, err = ParseList("site1,sitex")
	assert.Error(t, err)

	_, err = ParseList(",,")
	assert.Error(t, err)
}

func TestPerSiteGetSet(t *testing.T) {
	var p PerSite[string]
	p.Set(Site2, "hola")
	p.Set(Site4, "mundo")

	assert.Equal(t, "hola", p.Get(Site2))
	assert.Equal(t, "mundo", p.Get(Site4))
	assert.Equal(t, "", p.Get(Site1))

	// Unknown site is ignored on Set and zero on Get
	p.Set(Site("site9"), "nope")
	assert.Equal(t, "", p.Get(Site("site9")))
}

func TestPerSiteForEachOrder(t *testing.T) {
	p := PerSite[int]{Site1: 1, Site2: 2, Site3: 3, Site4: 4, Site5: 5}

	var seen []Site
	var values []int
	p.ForEach(func(s Site, v int) {
		seen = append(seen, s)
		values = append(values, v)
	})

	assert.Equal(t, All(), seen)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, values)
}

func TestPerSiteMerge(t *testing.T) {
	base := PerSite[string]{Site1: "a", Site2: "b"}
	incoming := PerSite[string]{Site2: "B", Site3: "C"}

	// keep=nil takes every incoming value, including zeroes
	merged := base.Merge(incoming, nil)
	assert.Equal(t, "", merged.Get(Site1))
	assert.Equal(t, "B", merged.Get(Site2))
	assert.Equal(t, "C", merged.Get(Site3))

	// keep filters: only non-empty incoming values replace
	merged = base.Merge(incoming, func(v string) bool { return v != "" })
	assert.Equal(t, "a", merged.Get(Site1))
	assert.Equal(t, "B", merged.Get(Site2))
	assert.Equal(t, "C", merged.Get(Site3))

	// the receiver is not mutated
	assert.Equal(t, "a", base.Get(Site1))
	assert.Equal(t, "b", base.Get(Site2))
}
