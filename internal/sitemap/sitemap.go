// Package sitemap derives the XML sitemap from the content store:
// fixed static routes plus one route per content item.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/dekkov/personal-website/internal/content/domain"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// staticRoute pairs a path with its crawl hints.
type staticRoute struct {
	path       string
	changeFreq string
	priority   string
}

var staticRoutes = []staticRoute{
	{"", "monthly", "1.0"},
	{"/projects", "weekly", "0.8"},
	{"/blog", "weekly", "0.8"},
	{"/experience", "monthly", "0.7"},
	{"/about", "monthly", "0.7"},
	{"/contact", "yearly", "0.6"},
}

// Build assembles the sitemap for the given content. now stamps the
// static routes; content routes use the item's update date, falling
// back to its publish date.
func Build(baseURL string, posts []domain.BlogPost, projects []domain.Project, now time.Time) URLSet {
	base := strings.TrimSuffix(baseURL, "/")
	today := now.UTC().Format("2006-01-02")

	urls := make([]URL, 0, len(staticRoutes)+len(posts)+len(projects))
	for _, route := range staticRoutes {
		urls = append(urls, URL{
			Loc:        base + route.path,
			LastMod:    today,
			ChangeFreq: route.changeFreq,
			Priority:   route.priority,
		})
	}

	for _, post := range posts {
		urls = append(urls, URL{
			Loc:        fmt.Sprintf("%s/blog/%s", base, post.Slug),
			LastMod:    lastMod(post.UpdatedAt, post.PublishedAt),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}

	for _, project := range projects {
		urls = append(urls, URL{
			Loc:        fmt.Sprintf("%s/projects/%s", base, project.Slug),
			LastMod:    lastMod(project.UpdatedAt, project.PublishedAt),
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	return URLSet{Xmlns: xmlns, URLs: urls}
}

// Encode serializes the sitemap with an XML declaration.
func Encode(set URLSet) ([]byte, error) {
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

func lastMod(updated, published string) string {
	if updated != "" {
		return updated
	}
	return published
}
