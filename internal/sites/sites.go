// Package sites defines the closed set of storefront sites served by the
// backend and a generic container for values that vary per site.
package sites

import (
	"fmt"
	"strings"

	"quimica_commerce/internal/common"
)

// Site identifies one of the five storefronts. The set is closed: adding a
// site is a compile-time change here, not a data migration.
type Site string

const (
	Site1 Site = "site1"
	Site2 Site = "site2"
	Site3 Site = "site3"
	Site4 Site = "site4"
	Site5 Site = "site5"
)

// All returns every site in declaration order.
func All() []Site {
	return []Site{Site1, Site2, Site3, Site4, Site5}
}

// Valid reports whether s is one of the known sites.
func (s Site) Valid() bool {
	switch s {
	case Site1, Site2, Site3, Site4, Site5:
		return true
	}
	return false
}

// String returns the site identifier (site1..site5).
func (s Site) String() string {
	return string(s)
}

// Parse converts a raw identifier into a Site.
func Parse(raw string) (Site, error) {
	s := Site(strings.TrimSpace(strings.ToLower(raw)))
	if !s.Valid() {
		return "", common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Unknown site '%s' (expected site1..site5)", raw),
			common.StatusBadRequest,
			nil,
		)
	}
	return s, nil
}

// ParseList parses a comma separated list of site identifiers.
func ParseList(raw string) ([]Site, error) {
	parts := strings.Split(raw, ",")
	result := make([]Site, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		s, err := Parse(p)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if len(result) == 0 {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Site list is empty",
			common.StatusBadRequest,
			nil,
		)
	}
	return result, nil
}

// PerSite holds one value of type T per site. Using a fixed struct instead of
// a map makes unknown site keys unrepresentable and keeps the BSON/JSON shape
// stable (site1..site5 fields).
type PerSite[T any] struct {
	Site1 T `json:"site1,omitempty" bson:"site1,omitempty"`
	Site2 T `json:"site2,omitempty" bson:"site2,omitempty"`
	Site3 T `json:"site3,omitempty" bson:"site3,omitempty"`
	Site4 T `json:"site4,omitempty" bson:"site4,omitempty"`
	Site5 T `json:"site5,omitempty" bson:"site5,omitempty"`
}

// Get returns the value stored for site s. Unknown sites yield the zero value.
func (p PerSite[T]) Get(s Site) T {
	switch s {
	case Site1:
		return p.Site1
	case Site2:
		return p.Site2
	case Site3:
		return p.Site3
	case Site4:
		return p.Site4
	case Site5:
		return p.Site5
	}
	var zero T
	return zero
}

// Set stores value for site s. Unknown sites are ignored.
func (p *PerSite[T]) Set(s Site, value T) {
	switch s {
	case Site1:
		p.Site1 = value
	case Site2:
		p.Site2 = value
	case Site3:
		p.Site3 = value
	case Site4:
		p.Site4 = value
	case Site5:
		p.Site5 = value
	}
}

// ForEach calls fn for every site in declaration order.
func (p PerSite[T]) ForEach(fn func(Site, T)) {
	for _, s := range All() {
		fn(s, p.Get(s))
	}
}

// Merge returns a copy of p where every site present in other (per keep)
// replaces the value in p. keep decides whether a value from other counts as
// present; a nil keep takes every value.
func (p PerSite[T]) Merge(other PerSite[T], keep func(T) bool) PerSite[T] {
	merged := p
	other.ForEach(func(s Site, v T) {
		if keep == nil || keep(v) {
			merged.Set(s, v)
		}
	})
	return merged
}
