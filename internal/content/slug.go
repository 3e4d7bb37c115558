package content

import "regexp"

// slugPattern matches lowercase alphanumeric segments joined by single
// hyphens. Anything else is rejected before it can reach the filesystem,
// which is the path traversal defense for slug-keyed lookups.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

const maxSlugLen = 100

// ValidSlug reports whether s is a well-formed content slug.
func ValidSlug(s string) bool {
	if len(s) == 0 || len(s) > maxSlugLen {
		return false
	}
	return slugPattern.MatchString(s)
}
