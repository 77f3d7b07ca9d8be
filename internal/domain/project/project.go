package project

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hostmail-io/hostmail/internal/shared/biztime"
)

type ProjectStatus string

const (
	StatusDraft     ProjectStatus = "draft"
	StatusPublished ProjectStatus = "published"
	StatusArchived  ProjectStatus = "archived"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

func (s ProjectStatus) String() string {
	return string(s)
}

const maxTitleLength = 200

var slugSanitizer = regexp.MustCompile(`[^a-z0-9]+`)

// Project is a portfolio entry shown on a website's public page. Content is
// stored as markdown and rendered to sanitized HTML on the public read path.
type Project struct {
	id          uint
	websiteID   uint
	title       string
	slug        string
	description string
	content     string
	demoURL     string
	githubURL   string
	status      ProjectStatus
	featured    bool
	order       int

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewProject creates a draft project. The slug is derived from the title when
// not given explicitly.
func NewProject(websiteID uint, title, slug, description, content string) (*Project, error) {
	if websiteID == 0 {
		return nil, fmt.Errorf("website ID is required")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title is too long")
	}
	if slug == "" {
		slug = Slugify(title)
	} else {
		slug = Slugify(slug)
	}
	if slug == "" {
		return nil, fmt.Errorf("slug cannot be derived from title")
	}

	now := biztime.NowUTC()
	return &Project{
		websiteID:   websiteID,
		title:       title,
		slug:        slug,
		description: strings.TrimSpace(description),
		content:     content,
		status:      StatusDraft,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructProject reconstructs a project from persistence.
func ReconstructProject(
	projectID, websiteID uint,
	title, slug, description, content, demoURL, githubURL string,
	status ProjectStatus,
	featured bool,
	order int,
	version int,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if websiteID == 0 {
		return nil, fmt.Errorf("website ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid project status: %s", status)
	}

	return &Project{
		id:          projectID,
		websiteID:   websiteID,
		title:       title,
		slug:        slug,
		description: description,
		content:     content,
		demoURL:     demoURL,
		githubURL:   githubURL,
		status:      status,
		featured:    featured,
		order:       order,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Project) ID() uint                 { return p.id }
func (p *Project) WebsiteID() uint          { return p.websiteID }
func (p *Project) Title() string            { return p.title }
func (p *Project) Slug() string             { return p.slug }
func (p *Project) Description() string      { return p.description }
func (p *Project) Content() string          { return p.content }
func (p *Project) DemoURL() string          { return p.demoURL }
func (p *Project) GithubURL() string        { return p.githubURL }
func (p *Project) Status() ProjectStatus    { return p.status }
func (p *Project) IsFeatured() bool         { return p.featured }
func (p *Project) Order() int               { return p.order }
func (p *Project) Version() int             { return p.version }
func (p *Project) CreatedAt() time.Time     { return p.createdAt }
func (p *Project) UpdatedAt() time.Time     { return p.updatedAt }
func (p *Project) IsPublished() bool        { return p.status == StatusPublished }

// SetID sets the project ID (only for persistence layer use)
func (p *Project) SetID(projectID uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if projectID == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = projectID
	return nil
}

func (p *Project) Update(title, description, content, demoURL, githubURL string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title is too long")
	}
	p.title = title
	p.description = strings.TrimSpace(description)
	p.content = content
	p.demoURL = strings.TrimSpace(demoURL)
	p.githubURL = strings.TrimSpace(githubURL)
	p.touch()
	return nil
}

func (p *Project) Publish() {
	p.status = StatusPublished
	p.touch()
}

func (p *Project) Archive() {
	p.status = StatusArchived
	p.touch()
}

func (p *Project) RevertToDraft() {
	p.status = StatusDraft
	p.touch()
}

func (p *Project) SetFeatured(featured bool) {
	p.featured = featured
	p.touch()
}

func (p *Project) SetOrder(order int) {
	p.order = order
	p.touch()
}

func (p *Project) touch() {
	p.updatedAt = biztime.NowUTC()
	p.version++
}

// Slugify lowercases and collapses non-alphanumeric runs into single hyphens.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugSanitizer.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
