package sitemap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekkov/personal-website/internal/content/domain"
)

func TestBuildIncludesStaticAndContentRoutes(t *testing.T) {
	posts := []domain.BlogPost{
		{Slug: "hello-world", PublishedAt: "2024-01-10", UpdatedAt: "2024-02-01"},
	}
	projects := []domain.Project{
		{Slug: "shop-rebuild", PublishedAt: "2023-11-20"},
	}
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	set := Build("https://mysite.example/", posts, projects, now)

	require.Len(t, set.URLs, 8)

	root := set.URLs[0]
	assert.Equal(t, "https://mysite.example", root.Loc)
	assert.Equal(t, "1.0", root.Priority)
	assert.Equal(t, "2024-06-01", root.LastMod)

	post := set.URLs[6]
	assert.Equal(t, "https://mysite.example/blog/hello-world", post.Loc)
	assert.Equal(t, "2024-02-01", post.LastMod, "updatedAt wins when present")
	assert.Equal(t, "0.6", post.Priority)

	project := set.URLs[7]
	assert.Equal(t, "https://mysite.example/projects/shop-rebuild", project.Loc)
	assert.Equal(t, "2023-11-20", project.LastMod, "falls back to publishedAt")
	assert.Equal(t, "0.7", project.Priority)
}

func TestBuildStaticPriorities(t *testing.T) {
	set := Build("https://mysite.example", nil, nil, time.Now())

	require.Len(t, set.URLs, 6)
	byLoc := map[string]URL{}
	for _, u := range set.URLs {
		byLoc[u.Loc] = u
	}

	assert.Equal(t, "0.8", byLoc["https://mysite.example/projects"].Priority)
	assert.Equal(t, "0.8", byLoc["https://mysite.example/blog"].Priority)
	assert.Equal(t, "0.7", byLoc["https://mysite.example/experience"].Priority)
	assert.Equal(t, "0.7", byLoc["https://mysite.example/about"].Priority)
	assert.Equal(t, "0.6", byLoc["https://mysite.example/contact"].Priority)
	assert.Equal(t, "yearly", byLoc["https://mysite.example/contact"].ChangeFreq)
}

func TestEncode(t *testing.T) {
	set := Build("https://mysite.example", nil, nil, time.Now())

	body, err := Encode(set)
	require.NoError(t, err)

	assert.Contains(t, string(body), `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, string(body), `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, string(body), "<loc>https://mysite.example/blog</loc>")
}
