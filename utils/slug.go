package utils

import "strings"

// Slug derives the URL-safe identifier used to name a customer catalog file.
// The rule is: trim, lowercase, collapse every run of whitespace to a single underscore.
// " Acme  Co " and "acme co" therefore map to the same slug; the catalog repository
// rejects a save whose slug collides with a record holding a different display name.
func Slug(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	return strings.Join(fields, "_")
}
