package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaharBarak/portfolio-v2-sub001/internal/domain"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator()
	require.NoError(t, err)
	return v
}

func TestValidProject(t *testing.T) {
	v := newValidator(t)
	err := v.Validate(domain.CollectionProjects, Project, domain.ProjectInput{
		NotionID: "n1",
		Title:    "Portfolio",
		Colors:   domain.Colors{Bg: "#000", Accent: "#fff", Text: "#eee"},
		Order:    1,
	})
	assert.NoError(t, err)
}

func TestRejectsEmptyExternalKey(t *testing.T) {
	v := newValidator(t)
	err := v.Validate(domain.CollectionProjects, Project, domain.ProjectInput{Title: "no key"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRejectsUnknownEnum(t *testing.T) {
	v := newValidator(t)

	err := v.Validate(domain.CollectionContributions, Contribution, domain.ContributionInput{
		NotionID: "c1",
		Name:     "pkg",
		Type:     "gem",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = v.Validate(domain.CollectionAvailability, Availability, domain.AvailabilityInput{
		Status: "Busy",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = v.Validate(domain.CollectionResearch, Research, domain.ResearchInput{
		NotionID: "r1",
		Status:   "draft",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGroupingKeysAreOpenStrings(t *testing.T) {
	v := newValidator(t)
	err := v.Validate(domain.CollectionNow, Now, domain.NowInput{
		NotionID: "n1",
		Section:  "Anything Goes",
		Title:    "Reading",
	})
	assert.NoError(t, err)
}

func TestRejectsUnknownFields(t *testing.T) {
	v := newValidator(t)
	err := v.Validate(domain.CollectionLinks, Link, map[string]any{
		"notionId": "l1",
		"category": "social",
		"name":     "github",
		"url":      "https://github.com",
		"color":    "red",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAboutAcceptsOmittedLists(t *testing.T) {
	v := newValidator(t)
	err := v.Validate(domain.CollectionAbout, About, domain.AboutInput{
		NotionID: "a1",
		Stack:    []domain.StackGroup{{Label: "Go", Items: []string{"echo"}}},
	})
	assert.NoError(t, err)
}

func TestLikeRequiresIdentity(t *testing.T) {
	v := newValidator(t)

	err := v.Validate(domain.CollectionLikes, Like, domain.LikeInput{Slug: "post", UserID: "u1", UserName: "Ada"})
	assert.NoError(t, err)

	err = v.Validate(domain.CollectionLikes, Like, domain.LikeInput{Slug: "post", UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = v.Validate(domain.CollectionLikes, LikeRef, map[string]string{"slug": "", "userId": "u1"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAvailabilitySyncAllowsMissingCalendly(t *testing.T) {
	v := newValidator(t)
	err := v.Validate(domain.CollectionAvailability, AvailabilitySync, domain.AvailabilitySyncInput{
		NotionID: "av",
		Status:   domain.StatusLimited,
	})
	assert.NoError(t, err)
}

func TestUnknownDefinition(t *testing.T) {
	v := newValidator(t)
	err := v.Validate("x", "#Nope", map[string]any{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

func TestBlogPost(t *testing.T) {
	v := newValidator(t)

	input := domain.BlogInput{NotionID: "b1", Title: "Hello", Slug: "hello", Date: "2024-01-02", Published: true}
	assert.NoError(t, v.Validate(domain.CollectionBlog, Blog, input))

	input.Tags = []string{"go"}
	assert.NoError(t, v.Validate(domain.CollectionBlog, Blog, input))

	input.Slug = ""
	assert.ErrorIs(t, v.Validate(domain.CollectionBlog, Blog, input), domain.ErrValidation)

	input.Slug = "hello"
	input.Date = "Jan 2"
	assert.ErrorIs(t, v.Validate(domain.CollectionBlog, Blog, input), domain.ErrValidation)
}
