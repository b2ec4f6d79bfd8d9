// Copyright (c) 2026 Folio. All rights reserved.

package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/folioworks/folio/internal/platform/database/schema"
	"github.com/folioworks/folio/internal/platform/dberr"
	"github.com/folioworks/folio/pkg/blob"
	"github.com/folioworks/folio/pkg/locale"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectArticles = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.News.Columns(), ", "), schema.News.Table,
)

func (repository *PostgresRepository) ListArticles(context context.Context) ([]*Article, error) {
	query := selectArticles + fmt.Sprintf(` ORDER BY %s DESC, %s ASC`, schema.News.PublishedAt, schema.News.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_news")
	}
	defer rows.Close()

	articles := []*Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_news")
		}
		articles = append(articles, article)
	}

	return articles, dberr.Wrap(rows.Err(), "list_news")
}

func (repository *PostgresRepository) GetArticle(context context.Context, id string) (*Article, error) {
	query := selectArticles + fmt.Sprintf(` WHERE %s = $1`, schema.News.ID)

	article, err := scanArticle(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapNotFound(err, "get_news", ErrNotFound)
	}
	return article, nil
}

func (repository *PostgresRepository) CreateArticle(context context.Context, article *Article) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`,
		schema.News.Table, strings.Join(schema.News.Columns(), ", "),
		schema.News.CreatedAt, schema.News.UpdatedAt,
	)

	args, err := articleArgs(article)
	if err != nil {
		return dberr.Wrap(err, "encode_news")
	}

	_, err = repository.db.Exec(context, query, args...)
	if dberr.IsUniqueViolation(err) {
		return ErrIDTaken
	}
	return dberr.Wrap(err, "create_news")
}

func (repository *PostgresRepository) UpdateArticle(context context.Context, article *Article) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = NOW()
		WHERE %s = $1
	`,
		schema.News.Table,
		schema.News.TitleJSON, schema.News.SummaryJSON, schema.News.ContentJSON,
		schema.News.BannerURL, schema.News.TagsJSON, schema.News.AuthorEndpoint,
		schema.News.AuthorNameJSON, schema.News.AuthorAvatarURL, schema.News.PublishedAt,
		schema.News.UpdatedAt,
		schema.News.ID,
	)

	args, err := articleArgs(article)
	if err != nil {
		return dberr.Wrap(err, "encode_news")
	}

	cmd, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "update_news")
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteArticle(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.News.Table, schema.News.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_news")
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// articleArgs encodes an article in Columns() order. A missing author leaves
// the three author columns NULL.
func articleArgs(article *Article) ([]any, error) {
	tags, err := blob.Encode(article.Tags)
	if err != nil {
		return nil, err
	}

	var (
		authorEndpoint, authorName *string
		authorAvatar               *string
	)
	if article.Author != nil {
		name := article.Author.Name.Blob()
		authorEndpoint = &article.Author.Endpoint
		authorName = &name
		authorAvatar = article.Author.AvatarURL
	}

	return []any{
		article.ID, article.Title.Blob(), article.Summary.Blob(), article.Content.Blob(),
		article.BannerURL, tags, authorEndpoint, authorName, authorAvatar, article.PublishedAt,
	}, nil
}

func scanArticle(row pgx.Row) (*Article, error) {
	var (
		article                    Article
		title, summary, content    string
		tags                       string
		authorEndpoint, authorName *string
		authorAvatar               *string
		publishedAt                time.Time
	)

	if err := row.Scan(&article.ID, &title, &summary, &content, &article.BannerURL, &tags,
		&authorEndpoint, &authorName, &authorAvatar, &publishedAt); err != nil {
		return nil, err
	}

	article.ID = strings.TrimSpace(article.ID)
	article.Title = locale.ParseBlob(title)
	article.Summary = locale.ParseBlob(summary)
	article.Content = locale.ParseBlob(content)
	article.Tags = blob.Strings(tags)
	article.PublishedAt = publishedAt.UTC()

	if authorEndpoint != nil || authorName != nil {
		article.Author = &Author{AvatarURL: authorAvatar}
		if authorEndpoint != nil {
			article.Author.Endpoint = *authorEndpoint
		}
		if authorName != nil {
			article.Author.Name = locale.ParseBlob(*authorName)
		}
	}

	return &article, nil
}
