// Copyright (c) 2026 Folio. All rights reserved.

package article

import (
	"time"

	"github.com/folioworks/folio/pkg/reltime"
	"github.com/folioworks/folio/pkg/slice"
)

// View is an article reduced to one locale.
type View struct {
	ID           string      `json:"id"`
	Locale       string      `json:"locale"`
	Title        string      `json:"title"`
	Summary      string      `json:"summary"`
	Content      string      `json:"content"`
	BannerURL    *string     `json:"bannerUrl"`
	Tags         []string    `json:"tags"`
	Author       *AuthorView `json:"author"`
	PublishedAt  time.Time   `json:"publishedAt"`
	PublishedAgo string      `json:"publishedAgo"`
}

type AuthorView struct {
	Endpoint  string  `json:"endpoint"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

// Localize resolves the article for the requested locale. The relative time
// is computed from formatter's clock on every call.
func Localize(a *Article, requested string, formatter reltime.Formatter) View {
	view := View{
		ID:           a.ID,
		Locale:       requested,
		Title:        a.Title.Resolve(requested),
		Summary:      a.Summary.Resolve(requested),
		Content:      a.Content.Resolve(requested),
		BannerURL:    a.BannerURL,
		Tags:         slice.OrEmpty(a.Tags),
		PublishedAt:  a.PublishedAt,
		PublishedAgo: formatter.FormatTime(a.PublishedAt, requested),
	}

	if a.Author != nil {
		view.Author = &AuthorView{
			Endpoint:  a.Author.Endpoint,
			Name:      a.Author.Name.Resolve(requested),
			AvatarURL: a.Author.AvatarURL,
		}
	}
	return view
}
