package util

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/lithammer/shortuuid/v4"
)

// GenerateRandomSlug builds a URL slug from a product name with a short
// random suffix so two products with the same name stay distinguishable.
func GenerateRandomSlug(name string) string {
	baseSlug := slug.Make(name)
	shortID := shortuuid.New()[:8]

	return fmt.Sprintf("%s-%s", baseSlug, shortID)
}
