// Copyright (c) 2026 Folio. All rights reserved.

/*
Package article manages news articles.

An article carries a denormalized author snapshot taken at publish time.
Editing the staff record later never rewrites published snapshots.
*/
package article

import (
	"time"

	"github.com/folioworks/folio/internal/platform/apperr"
	"github.com/folioworks/folio/pkg/locale"
	"github.com/folioworks/folio/pkg/slice"
)

// Article is a news entry as stored and returned by the raw API.
type Article struct {
	// ID is the 8-character public id. Immutable.
	ID          string      `json:"id"`
	Title       locale.Text `json:"title"`
	Summary     locale.Text `json:"summary"`
	Content     locale.Text `json:"content"` // Markdown
	BannerURL   *string     `json:"bannerUrl"`
	Tags        []string    `json:"tags"`
	Author      *Author     `json:"author"`
	PublishedAt time.Time   `json:"publishedAt"`
}

// Author is the author snapshot.
type Author struct {
	Endpoint  string      `json:"endpoint"`
	Name      locale.Text `json:"name"`
	AvatarURL *string     `json:"avatarUrl"`
}

func (a *Author) clone() *Author {
	if a == nil {
		return nil
	}
	out := *a
	out.Name = a.Name.Clone()
	if a.AvatarURL != nil {
		avatar := *a.AvatarURL
		out.AvatarURL = &avatar
	}
	return &out
}

func (a *Author) empty() bool {
	return a == nil || (a.Endpoint == "" && a.Name.IsEmpty() && a.AvatarURL == nil)
}

// Clone returns a deep copy.
func (a *Article) Clone() *Article {
	out := *a
	out.Title = a.Title.Clone()
	out.Summary = a.Summary.Clone()
	out.Content = a.Content.Clone()
	out.Tags = slice.Clone(a.Tags)
	out.Author = a.Author.clone()
	if a.BannerURL != nil {
		banner := *a.BannerURL
		out.BannerURL = &banner
	}
	return &out
}

// Draft is the create payload. PublishedAt stays a string so that a missing
// or unparsable value can fall back to the creation time.
type Draft struct {
	ID          string      `json:"id"`
	Title       locale.Text `json:"title"`
	Summary     locale.Text `json:"summary"`
	Content     locale.Text `json:"content"`
	BannerURL   *string     `json:"bannerUrl"`
	Tags        []string    `json:"tags"`
	Author      *Author     `json:"author"`
	PublishedAt string      `json:"publishedAt"`
}

// # Partial Update

// AuthorPatch carries the author keys present in an update payload.
type AuthorPatch struct {
	Endpoint  *string      `json:"endpoint"`
	Name      *locale.Text `json:"name"`
	AvatarURL *string      `json:"avatarUrl"`
}

// Patch is a partial update. Nil fields are absent from the payload.
// An empty BannerURL or AvatarURL clears the value.
type Patch struct {
	Title       *locale.Text `json:"title"`
	Summary     *locale.Text `json:"summary"`
	Content     *locale.Text `json:"content"`
	BannerURL   *string      `json:"bannerUrl"`
	Tags        *[]string    `json:"tags"`
	Author      *AuthorPatch `json:"author"`
	PublishedAt *string      `json:"publishedAt"`
}

// Apply returns a copy of a with every field except PublishedAt merged in.
// The caller parses and applies PublishedAt.
func (p Patch) Apply(a *Article) *Article {
	out := a.Clone()

	if p.Title != nil {
		out.Title = out.Title.Merge(*p.Title)
	}
	if p.Summary != nil {
		out.Summary = out.Summary.Merge(*p.Summary)
	}
	if p.Content != nil {
		out.Content = out.Content.Merge(*p.Content)
	}
	if p.BannerURL != nil {
		out.BannerURL = optional(*p.BannerURL)
	}
	if p.Tags != nil {
		out.Tags = slice.Clone(*p.Tags)
	}
	if p.Author != nil {
		out.Author = p.Author.apply(out.Author)
	}
	return out
}

func (p AuthorPatch) apply(current *Author) *Author {
	out := current.clone()
	if out == nil {
		out = &Author{}
	}

	if p.Endpoint != nil {
		out.Endpoint = *p.Endpoint
	}
	if p.Name != nil {
		out.Name = out.Name.Merge(*p.Name)
	}
	if p.AvatarURL != nil {
		out.AvatarURL = optional(*p.AvatarURL)
	}

	if out.empty() {
		return nil
	}
	return out
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// # Errors

var (
	ErrNotFound = apperr.NotFound("Article")
	ErrIDTaken  = apperr.Conflict("Article with this id already exists")
)

const (
	FieldTitle       = "title"
	FieldContent     = "content"
	FieldBannerURL   = "bannerUrl"
	FieldAvatarURL   = "author.avatarUrl"
	FieldAuthor      = "author.endpoint"
	FieldTags        = "tags"
	FieldPublishedAt = "publishedAt"
)
