package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// generateSlug lowercases the input, collapses every run of non-alphanumeric
// characters into a single hyphen and trims leading/trailing hyphens.
func generateSlug(s string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// ensureUniqueSlug probes base, base-1, base-2, ... until exists reports a
// free slug.
func ensureUniqueSlug(ctx context.Context, base string, exists func(ctx context.Context, slug string) (bool, error)) (string, error) {
	slug := base
	for i := 1; ; i++ {
		taken, err := exists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// uniqueSlugFromList is the in-memory variant for small slug sets such as
// categories.
func uniqueSlugFromList(base string, existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		taken[s] = struct{}{}
	}
	slug := base
	for i := 1; ; i++ {
		if _, ok := taken[slug]; !ok {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
