// Copyright (c) 2026 Folio. All rights reserved.

package article

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/folioworks/folio/internal/platform/validate"
	"github.com/folioworks/folio/pkg/pointer"
	"github.com/folioworks/folio/pkg/reltime"
	"github.com/folioworks/folio/pkg/shortid"
	"github.com/folioworks/folio/pkg/slice"
)

const maxTagLen = 64

type Service struct {
	repo   Repository
	logger *slog.Logger

	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		newID:  shortid.New,
	}
}

// Formatter returns a relative time formatter on the service clock.
func (service *Service) Formatter() reltime.Formatter {
	return reltime.Formatter{Now: service.now}
}

func (service *Service) ListArticles(context context.Context) ([]*Article, error) {
	return service.repo.ListArticles(context)
}

func (service *Service) GetArticle(context context.Context, id string) (*Article, error) {
	return service.repo.GetArticle(context, id)
}

/*
CreateArticle validates and stores a draft.

A caller id of exactly eight characters is kept verbatim; anything else is
replaced by a generated id. A missing or unparsable publishedAt becomes the
creation time.
*/
func (service *Service) CreateArticle(context context.Context, draft Draft) (*Article, error) {
	article := &Article{
		ID:        draft.ID,
		Title:     draft.Title,
		Summary:   draft.Summary,
		Content:   draft.Content,
		BannerURL: optional(strings.TrimSpace(pointer.Val(draft.BannerURL))),
		Tags:      slice.OrEmpty(draft.Tags),
		Author:    draft.Author,
	}

	if !shortid.Honored(article.ID) {
		article.ID = service.newID()
	}

	article.PublishedAt = service.now().UTC()
	if parsed, err := reltime.Parse(draft.PublishedAt); err == nil {
		article.PublishedAt = parsed.UTC()
	}

	if article.Author != nil {
		article.Author.Endpoint = strings.TrimSpace(article.Author.Endpoint)
		article.Author.AvatarURL = optional(strings.TrimSpace(pointer.Val(article.Author.AvatarURL)))
	}
	if article.Author.empty() {
		article.Author = nil
	}

	validator := &validate.Validator{}
	validator.Custom(FieldTitle, article.Title.IsEmpty(), "This field is required")
	validator.Custom(FieldContent, article.Content.IsEmpty(), "This field is required")

	if err := validateContent(validator, article).Err(); err != nil {
		return nil, err
	}

	if err := service.repo.CreateArticle(context, article); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "article_created",
		slog.String("id", article.ID),
		slog.Time("published_at", article.PublishedAt),
	)
	return article, nil
}

// UpdateArticle merges patch into the stored article. A supplied publishedAt
// must parse.
func (service *Service) UpdateArticle(context context.Context, id string, patch Patch) (*Article, error) {
	existing, err := service.repo.GetArticle(context, id)
	if err != nil {
		return nil, err
	}

	merged := patch.Apply(existing)

	validator := &validate.Validator{}
	if patch.PublishedAt != nil {
		parsed, err := reltime.Parse(*patch.PublishedAt)
		validator.Custom(FieldPublishedAt, err != nil, "Must be an ISO-8601 timestamp")
		if err == nil {
			merged.PublishedAt = parsed.UTC()
		}
	}

	if err := validateContent(validator, merged).Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateArticle(context, merged); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "article_updated", slog.String("id", id))
	return merged, nil
}

func (service *Service) DeleteArticle(context context.Context, id string) error {
	if err := service.repo.DeleteArticle(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, "article_deleted", slog.String("id", id))
	return nil
}

func validateContent(validator *validate.Validator, article *Article) *validate.Validator {
	if article.BannerURL != nil {
		validator.URL(FieldBannerURL, *article.BannerURL)
	}

	for _, tag := range article.Tags {
		validator.Required(FieldTags, tag).MaxLen(FieldTags, tag, maxTagLen)
	}

	if author := article.Author; author != nil {
		if author.Endpoint != "" {
			validator.Endpoint(FieldAuthor, author.Endpoint)
		}
		if author.AvatarURL != nil {
			validator.URL(FieldAvatarURL, *author.AvatarURL)
		}
	}
	return validator
}
