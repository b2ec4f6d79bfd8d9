// Copyright (c) 2026 Folio. All rights reserved.

package schema

// NewsTable represents the 'news' table (articles).
type NewsTable struct {
	Table           string
	ID              string
	TitleJSON       string
	SummaryJSON     string
	ContentJSON     string
	BannerURL       string
	TagsJSON        string
	AuthorEndpoint  string
	AuthorNameJSON  string
	AuthorAvatarURL string
	PublishedAt     string
	CreatedAt       string
	UpdatedAt       string

	PrimaryKey string
}

// News is the schema definition for news articles.
var News = NewsTable{
	Table:           "news",
	ID:              "id",
	TitleJSON:       "title_json",
	SummaryJSON:     "summary_json",
	ContentJSON:     "content_json",
	BannerURL:       "banner_url",
	TagsJSON:        "tags_json",
	AuthorEndpoint:  "author_endpoint",
	AuthorNameJSON:  "author_name_json",
	AuthorAvatarURL: "author_avatar_url",
	PublishedAt:     "published_at",
	CreatedAt:       "created_at",
	UpdatedAt:       "updated_at",

	PrimaryKey: "news_pkey",
}

func (t NewsTable) Columns() []string {
	return []string{
		t.ID, t.TitleJSON, t.SummaryJSON, t.ContentJSON, t.BannerURL, t.TagsJSON,
		t.AuthorEndpoint, t.AuthorNameJSON, t.AuthorAvatarURL, t.PublishedAt,
	}
}
