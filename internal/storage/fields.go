// Package storage handles per-site product imagery: multipart field parsing,
// image normalization and upload to the Firebase storage bucket.
package storage

import (
	"fmt"
	"regexp"
	"strings"

	"quimica_commerce/internal/sites"
)

// siteFieldPattern matches multipart field names of the form images[siteN].
var siteFieldPattern = regexp.MustCompile(`^images\[(site[1-5])\]$`)

// ParseSiteImageField extracts the site tag from a multipart field name.
// Returns false for any field that is not a site image field.
func ParseSiteImageField(fieldName string) (sites.Site, bool) {
	matches := siteFieldPattern.FindStringSubmatch(fieldName)
	if matches == nil {
		return "", false
	}
	site, err := sites.Parse(matches[1])
	if err != nil {
		return "", false
	}
	return site, true
}

// SanitizeName normalizes an entity name for use in a storage object path:
// lowercase, whitespace becomes underscore, anything outside [a-z0-9_] is
// stripped.
func SanitizeName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '\t':
			b.WriteRune('_')
		}
	}
	return b.String()
}

// ObjectPath builds the deterministic storage path for an entity image.
// Retrying an upload overwrites the previous blob at the same path.
func ObjectPath(category, name string, site sites.Site) string {
	sanitized := SanitizeName(name)
	return fmt.Sprintf("%s/%s/%s/%s_%s.jpg", category, sanitized, site, sanitized, site)
}
