package domain

// BlogPost is a published article loaded from the content store.
// Dates are kept verbatim as they appear in the source front matter;
// they are parsed only for ordering, never rewritten.
type BlogPost struct {
	Slug    string `json:"slug" yaml:"-"`
	Title   string `json:"title" yaml:"title"`
	Excerpt string `json:"excerpt" yaml:"excerpt"`

	// Content is the raw body markup. Rendered HTML is produced on
	// demand by the render package, not stored here.
	Content string `json:"content" yaml:"-"`

	PublishedAt string `json:"publishedAt" yaml:"publishedAt"`
	UpdatedAt   string `json:"updatedAt,omitempty" yaml:"updatedAt"`

	// ReadingTime is derived from the body word count, never authored.
	ReadingTime int `json:"readingTime" yaml:"-"`

	Tags     []string `json:"tags" yaml:"tags"`
	Category string   `json:"category" yaml:"category"`

	CoverImage string `json:"coverImage,omitempty" yaml:"coverImage"`

	Featured       bool   `json:"featured" yaml:"featured"`
	SeoTitle       string `json:"seoTitle,omitempty" yaml:"seoTitle"`
	SeoDescription string `json:"seoDescription,omitempty" yaml:"seoDescription"`
}

// Timeline brackets a project's lifetime. End is nil while ongoing.
type Timeline struct {
	Start string  `json:"start" yaml:"start"`
	End   *string `json:"end" yaml:"end"`
}

// Metric is a before/after measurement attached to a project.
type Metric struct {
	Label       string `json:"label" yaml:"label"`
	Before      string `json:"before" yaml:"before"`
	After       string `json:"after" yaml:"after"`
	Improvement string `json:"improvement" yaml:"improvement"`
}

// Project is a portfolio case study loaded from the content store.
// The slug is the filename stem, not a front matter field.
type Project struct {
	Slug        string `json:"slug" yaml:"-"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`

	Content string `json:"content" yaml:"-"`

	TLDR []string `json:"tldr" yaml:"tldr"`

	Role     string   `json:"role" yaml:"role"`
	TeamSize int      `json:"teamSize" yaml:"teamSize"`
	Duration string   `json:"duration" yaml:"duration"`
	Timeline Timeline `json:"timeline" yaml:"timeline"`

	Tags   []string `json:"tags" yaml:"tags"`
	Domain []string `json:"domain" yaml:"domain"`

	Metrics []Metric `json:"metrics" yaml:"metrics"`

	LiveURL      string `json:"liveUrl,omitempty" yaml:"liveUrl"`
	RepoURL      string `json:"repoUrl,omitempty" yaml:"repoUrl"`
	CaseStudyURL string `json:"caseStudyUrl,omitempty" yaml:"caseStudyUrl"`

	CoverImage string   `json:"coverImage" yaml:"coverImage"`
	Images     []string `json:"images" yaml:"images"`

	Featured    bool   `json:"featured" yaml:"featured"`
	PublishedAt string `json:"publishedAt" yaml:"publishedAt"`
	UpdatedAt   string `json:"updatedAt,omitempty" yaml:"updatedAt"`
}

// Experience is one employment entry from data/experience.json.
// Entries keep the order they have in the document.
type Experience struct {
	ID        string  `json:"id"`
	Company   string  `json:"company"`
	Role      string  `json:"role"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"` // nil while current
	Logo      string  `json:"logo,omitempty"`
	Location  string  `json:"location"`

	Bullets      []string `json:"bullets"`
	Technologies []string `json:"technologies"`

	// Projects holds slugs of related portfolio projects.
	Projects   []string `json:"projects,omitempty"`
	CompanyURL string   `json:"companyUrl,omitempty"`
}

// Skills groups skill names by category, loaded wholesale from
// data/skills.json.
type Skills struct {
	Languages []string `json:"languages"`
	Frontend  []string `json:"frontend"`
	Backend   []string `json:"backend"`
	Tools     []string `json:"tools"`
	Practices []string `json:"practices"`
}
