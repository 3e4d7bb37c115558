package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dekkov/personal-website/internal/content/domain"
)

const (
	blogDir     = "blog"
	projectsDir = "projects"
	dataDir     = "data"
)

// contentExts are the file extensions recognised as content items, in
// lookup preference order.
var contentExts = []string{".mdx", ".md"}

// Store reads typed content collections from a flat-file content root.
// The root holds blog/, projects/ and data/ subdirectories. The store
// never writes; all state lives on disk.
type Store struct {
	root string
}

// NewStore creates a store rooted at dir. The root is resolved to an
// absolute path once so slug lookups can be containment-checked
// against it.
func NewStore(dir string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("content root: %w", err)
	}
	return &Store{root: abs}, nil
}

// ListPosts returns all blog posts sorted by publish date descending.
// A missing blog directory yields an empty slice. A file whose header
// fails to parse is skipped and logged rather than failing the whole
// listing.
func (s *Store) ListPosts() ([]domain.BlogPost, error) {
	dir := filepath.Join(s.root, blogDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.BlogPost{}, nil
		}
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts := make([]domain.BlogPost, 0, len(entries))
	for _, entry := range entries {
		slug, ok := contentSlug(entry)
		if !ok {
			continue
		}

		post, err := s.readPost(filepath.Join(dir, entry.Name()), slug)
		if err != nil {
			log.Printf("[warn] operation=list_posts file=%s error=%v (skipped)", entry.Name(), err)
			continue
		}
		posts = append(posts, post)
	}

	sortByPublishDate(posts, func(p domain.BlogPost) string { return p.PublishedAt })
	return posts, nil
}

// ListProjects returns all projects sorted by publish date descending,
// with the same missing-directory and bad-file behavior as ListPosts.
func (s *Store) ListProjects() ([]domain.Project, error) {
	dir := filepath.Join(s.root, projectsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Project{}, nil
		}
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects := make([]domain.Project, 0, len(entries))
	for _, entry := range entries {
		slug, ok := contentSlug(entry)
		if !ok {
			continue
		}

		project, err := s.readProject(filepath.Join(dir, entry.Name()), slug)
		if err != nil {
			log.Printf("[warn] operation=list_projects file=%s error=%v (skipped)", entry.Name(), err)
			continue
		}
		projects = append(projects, project)
	}

	sortByPublishDate(projects, func(p domain.Project) string { return p.PublishedAt })
	return projects, nil
}

// FeaturedProjects returns the featured subset of ListProjects, order
// preserved.
func (s *Store) FeaturedProjects() ([]domain.Project, error) {
	projects, err := s.ListProjects()
	if err != nil {
		return nil, err
	}

	featured := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// PostsByTag returns posts carrying the given tag, order preserved.
func (s *Store) PostsByTag(tag string) ([]domain.BlogPost, error) {
	posts, err := s.ListPosts()
	if err != nil {
		return nil, err
	}

	matched := make([]domain.BlogPost, 0, len(posts))
	for _, p := range posts {
		for _, t := range p.Tags {
			if t == tag {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched, nil
}

// GetPost resolves a single post by slug. The slug is validated before
// any filesystem access and the resolved path must stay inside the
// blog directory; both checks fail closed with ErrNotFound.
func (s *Store) GetPost(slug string) (*domain.BlogPost, error) {
	path, err := s.resolve(blogDir, slug)
	if err != nil {
		return nil, err
	}

	post, err := s.readPost(path, slug)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetProject resolves a single project by slug with the same fail-closed
// slug and containment checks as GetPost.
func (s *Store) GetProject(slug string) (*domain.Project, error) {
	path, err := s.resolve(projectsDir, slug)
	if err != nil {
		return nil, err
	}

	project, err := s.readProject(path, slug)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Experience loads data/experience.json wholesale. A missing or
// malformed document is an error: this is required configuration, not
// optional content.
func (s *Store) Experience() ([]domain.Experience, error) {
	raw, err := os.ReadFile(filepath.Join(s.root, dataDir, "experience.json"))
	if err != nil {
		return nil, fmt.Errorf("experience data: %w", err)
	}

	var entries []domain.Experience
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("experience data: %w", err)
	}
	return entries, nil
}

// Skills loads data/skills.json wholesale, with the same strictness as
// Experience.
func (s *Store) Skills() (*domain.Skills, error) {
	raw, err := os.ReadFile(filepath.Join(s.root, dataDir, "skills.json"))
	if err != nil {
		return nil, fmt.Errorf("skills data: %w", err)
	}

	var skills domain.Skills
	if err := json.Unmarshal(raw, &skills); err != nil {
		return nil, fmt.Errorf("skills data: %w", err)
	}
	return &skills, nil
}

// Healthy reports whether the content root exists and is readable.
func (s *Store) Healthy() bool {
	info, err := os.Stat(s.root)
	return err == nil && info.IsDir()
}

// resolve maps a validated slug to an existing file inside section.
// Returns ErrNotFound for an invalid slug, a path escaping the section
// directory, or a missing file — indistinguishable by design.
func (s *Store) resolve(section, slug string) (string, error) {
	if !ValidSlug(slug) {
		return "", domain.ErrNotFound
	}

	dir := filepath.Join(s.root, section)
	for _, ext := range contentExts {
		path, err := filepath.Abs(filepath.Join(dir, slug+ext))
		if err != nil {
			return "", domain.ErrNotFound
		}
		if !strings.HasPrefix(path, dir+string(filepath.Separator)) {
			log.Printf("[warn] operation=resolve_slug slug=%q error=path escapes content root", slug)
			return "", domain.ErrNotFound
		}
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", domain.ErrNotFound
}

func (s *Store) readPost(path, slug string) (domain.BlogPost, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.BlogPost{}, domain.ErrNotFound
		}
		return domain.BlogPost{}, fmt.Errorf("read post: %w", err)
	}

	var post domain.BlogPost
	body, err := parseFrontMatter(raw, &post)
	if err != nil {
		return domain.BlogPost{}, err
	}

	post.Slug = slug
	post.Content = body
	post.ReadingTime = readingTime(body)
	return post, nil
}

func (s *Store) readProject(path, slug string) (domain.Project, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Project{}, domain.ErrNotFound
		}
		return domain.Project{}, fmt.Errorf("read project: %w", err)
	}

	var project domain.Project
	body, err := parseFrontMatter(raw, &project)
	if err != nil {
		return domain.Project{}, err
	}

	project.Slug = slug
	project.Content = body
	return project, nil
}

// contentSlug returns the filename stem of a content entry, or false
// for directories and files without a recognised extension.
func contentSlug(entry fs.DirEntry) (string, bool) {
	if entry.IsDir() {
		return "", false
	}
	name := entry.Name()
	for _, ext := range contentExts {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext), true
		}
	}
	return "", false
}

// dateLayouts are the accepted publishedAt formats, bare dates first.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

func parsePublishDate(value string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// sortByPublishDate orders items newest first. The sort is stable so
// items with equal dates keep their enumeration order.
func sortByPublishDate[T any](items []T, date func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return parsePublishDate(date(items[i])).After(parsePublishDate(date(items[j])))
	})
}
