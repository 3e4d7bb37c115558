package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidSlug(t *testing.T) {
	valid := []string{
		"a",
		"hello",
		"hello-world",
		"post-123",
		"2024-year-in-review",
		strings.Repeat("a", 100),
	}
	for _, slug := range valid {
		assert.True(t, ValidSlug(slug), "expected %q to be valid", slug)
	}

	invalid := []string{
		"",
		"../etc/passwd",
		"..",
		"hello world",
		"Hello",
		"hello_world",
		"-leading",
		"trailing-",
		"double--dash",
		"path/slug",
		"slug.mdx",
		strings.Repeat("a", 101),
	}
	for _, slug := range invalid {
		assert.False(t, ValidSlug(slug), "expected %q to be invalid", slug)
	}
}
