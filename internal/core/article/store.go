// Copyright (c) 2026 Folio. All rights reserved.

package article

import "context"

// Repository persists articles keyed by id.
type Repository interface {
	// ListArticles returns every article, newest publishedAt first.
	ListArticles(context context.Context) ([]*Article, error)
	GetArticle(context context.Context, id string) (*Article, error)
	// CreateArticle fails with [ErrIDTaken] on a duplicate id.
	CreateArticle(context context.Context, article *Article) error
	UpdateArticle(context context.Context, article *Article) error
	DeleteArticle(context context.Context, id string) error
}
