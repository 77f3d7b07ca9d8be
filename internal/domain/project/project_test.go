package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProject(t *testing.T) *Project {
	t.Helper()
	p, err := NewProject(1, "My First App", "", "a demo", "# Hello")
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func TestNewProject_DerivesSlugFromTitle(t *testing.T) {
	p := newTestProject(t)

	assert.Equal(t, "my-first-app", p.Slug())
	assert.Equal(t, StatusDraft, p.Status())
	assert.False(t, p.IsPublished())
}

func TestNewProject_ExplicitSlugIsSanitized(t *testing.T) {
	p, err := NewProject(1, "Title", "My Cool Slug!!", "", "")
	require.NoError(t, err)

	assert.Equal(t, "my-cool-slug", p.Slug())
}

func TestNewProject_ZeroWebsiteID(t *testing.T) {
	p, err := NewProject(0, "Title", "", "", "")

	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestNewProject_UnsluggableTitle(t *testing.T) {
	p, err := NewProject(1, "!!!", "", "", "")

	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello, World!"))
	assert.Equal(t, "a-b-c", Slugify("  a  b  c  "))
	assert.Equal(t, "", Slugify("???"))
}

func TestPublishArchiveDraftCycle(t *testing.T) {
	p := newTestProject(t)

	p.Publish()
	assert.Equal(t, StatusPublished, p.Status())
	assert.True(t, p.IsPublished())

	p.Archive()
	assert.Equal(t, StatusArchived, p.Status())

	p.RevertToDraft()
	assert.Equal(t, StatusDraft, p.Status())
}

func TestUpdate_RejectsEmptyTitle(t *testing.T) {
	p := newTestProject(t)

	err := p.Update("  ", "", "", "", "")

	assert.Error(t, err)
	assert.Equal(t, "My First App", p.Title())
}

func TestUpdate_SetsFields(t *testing.T) {
	p := newTestProject(t)

	err := p.Update("New Title", "desc", "## body", "https://demo.example", "https://github.com/x/y")

	require.NoError(t, err)
	assert.Equal(t, "New Title", p.Title())
	assert.Equal(t, "## body", p.Content())
	assert.Equal(t, "https://demo.example", p.DemoURL())
	assert.Equal(t, "my-first-app", p.Slug(), "slug is stable across updates")
}

func TestFeaturedAndOrder(t *testing.T) {
	p := newTestProject(t)

	p.SetFeatured(true)
	p.SetOrder(3)

	assert.True(t, p.IsFeatured())
	assert.Equal(t, 3, p.Order())
}
