package services

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// makeSlug derives a URL-safe unique key from a title. The random
// suffix keeps two postings with the same title distinct.
func makeSlug(title string) string {
	return slug.Make(title) + "-" + uuid.NewString()[:8]
}
