package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Hello World!":        "hello-world",
		"Go, Gin & Postgres":  "go-gin-postgres",
		"  Spaced   Out  ":    "spaced-out",
		"already-a-slug":      "already-a-slug",
		"ÜBER":                "ber",
		"100% Test Coverage?": "100-test-coverage",
	}
	for input, want := range cases {
		assert.Equal(t, want, generateSlug(input), "input %q", input)
	}
}

func TestEnsureUniqueSlug(t *testing.T) {
	t.Run("Should keep the base slug when free", func(t *testing.T) {
		slug, err := ensureUniqueSlug(context.Background(), "hello-world", func(ctx context.Context, s string) (bool, error) {
			return false, nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "hello-world", slug)
	})

	t.Run("Should probe numeric suffixes until free", func(t *testing.T) {
		taken := map[string]bool{"hello-world": true, "hello-world-1": true}
		slug, err := ensureUniqueSlug(context.Background(), "hello-world", func(ctx context.Context, s string) (bool, error) {
			return taken[s], nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "hello-world-2", slug)
	})

	t.Run("Should surface lookup errors", func(t *testing.T) {
		_, err := ensureUniqueSlug(context.Background(), "hello-world", func(ctx context.Context, s string) (bool, error) {
			return false, assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestUniqueSlugFromList(t *testing.T) {
	assert.Equal(t, "backend", uniqueSlugFromList("backend", nil))
	assert.Equal(t, "backend-1", uniqueSlugFromList("backend", []string{"backend"}))
	assert.Equal(t, "backend-2", uniqueSlugFromList("backend", []string{"backend", "backend-1"}))
}
