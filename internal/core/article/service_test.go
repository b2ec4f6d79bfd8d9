// Copyright (c) 2026 Folio. All rights reserved.

package article

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/folioworks/folio/internal/platform/apperr"
	"github.com/folioworks/folio/internal/platform/middleware"
	"github.com/folioworks/folio/pkg/locale"
	"github.com/folioworks/folio/pkg/pointer"
	"github.com/folioworks/folio/pkg/shortid"
)

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestService() *Service {
	service := NewService(NewMemoryRepository(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	service.now = func() time.Time { return fixedNow }
	return service
}

type ServiceSuite struct {
	suite.Suite

	ctx     context.Context
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.service = newTestService()
}

func (s *ServiceSuite) draft(id, publishedAt string) Draft {
	return Draft{
		ID:          id,
		Title:       locale.NewText("en", "Release", "ru", "Релиз"),
		Content:     locale.NewText("en", "# Notes"),
		PublishedAt: publishedAt,
	}
}

func (s *ServiceSuite) TestCreate_HonorsEightCharacterID() {
	created, err := s.service.CreateArticle(s.ctx, s.draft("abcd1234", ""))
	s.Require().NoError(err)
	s.Equal("abcd1234", created.ID)

	created, err = s.service.CreateArticle(s.ctx, s.draft("новости1", ""))
	s.Require().NoError(err)
	s.Equal("новости1", created.ID)
}

func (s *ServiceSuite) TestCreate_GeneratesOtherwise() {
	for _, id := range []string{"", "short", "waytoolongid", "ab/cd/ef", "éééé"} {
		created, err := s.service.CreateArticle(s.ctx, s.draft(id, ""))
		s.Require().NoError(err)
		s.Len(created.ID, shortid.Length)
		s.NotEqual(id, created.ID)
	}
}

func (s *ServiceSuite) TestCreate_PublishedAtDefaults() {
	created, err := s.service.CreateArticle(s.ctx, s.draft("", "not a date"))
	s.Require().NoError(err)
	s.True(fixedNow.Equal(created.PublishedAt))

	created, err = s.service.CreateArticle(s.ctx, s.draft("", "2025-01-02T03:04:05Z"))
	s.Require().NoError(err)
	s.Equal(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), created.PublishedAt)
}

func (s *ServiceSuite) TestCreate_Validation() {
	draft := s.draft("", "")
	draft.Title = locale.Text{}
	_, err := s.service.CreateArticle(s.ctx, draft)
	s.True(apperr.HasCode(err, apperr.CodeValidation))

	draft = s.draft("", "")
	draft.Content = locale.Text{}
	_, err = s.service.CreateArticle(s.ctx, draft)
	s.True(apperr.HasCode(err, apperr.CodeValidation))

	draft = s.draft("", "")
	draft.BannerURL = pointer.To("javascript:alert(1)")
	_, err = s.service.CreateArticle(s.ctx, draft)
	s.True(apperr.HasCode(err, apperr.CodeValidation))
}

func (s *ServiceSuite) TestCreate_EmptyAuthorDropped() {
	draft := s.draft("", "")
	draft.Author = &Author{AvatarURL: pointer.To(" ")}

	created, err := s.service.CreateArticle(s.ctx, draft)
	s.Require().NoError(err)
	s.Nil(created.Author)
}

func (s *ServiceSuite) TestCreate_Conflict() {
	_, err := s.service.CreateArticle(s.ctx, s.draft("abcd1234", ""))
	s.Require().NoError(err)

	_, err = s.service.CreateArticle(s.ctx, s.draft("abcd1234", ""))
	s.ErrorIs(err, ErrIDTaken)
}

func (s *ServiceSuite) TestList_NewestFirst() {
	for id, published := range map[string]string{
		"aaaaaaaa": "2024-01-01",
		"bbbbbbbb": "2026-01-01",
		"cccccccc": "2025-01-01",
	} {
		_, err := s.service.CreateArticle(s.ctx, s.draft(id, published))
		s.Require().NoError(err)
	}

	articles, err := s.service.ListArticles(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(articles, 3)
	s.Equal("bbbbbbbb", articles[0].ID)
	s.Equal("cccccccc", articles[1].ID)
	s.Equal("aaaaaaaa", articles[2].ID)
}

func (s *ServiceSuite) TestUpdate_MergesAuthorKeyByKey() {
	draft := s.draft("abcd1234", "")
	draft.Author = &Author{Endpoint: "alice", Name: locale.NewText("en", "Alice")}
	_, err := s.service.CreateArticle(s.ctx, draft)
	s.Require().NoError(err)

	var patch Patch
	s.Require().NoError(json.Unmarshal([]byte(`{
		"author": {"name": {"ru": "Алиса"}, "avatarUrl": "/api/v1/developers/alice/photo/1"},
		"summary": {"en": "Short"},
		"tags": ["release"]
	}`), &patch))

	updated, err := s.service.UpdateArticle(s.ctx, "abcd1234", patch)
	s.Require().NoError(err)

	s.Require().NotNil(updated.Author)
	s.Equal("alice", updated.Author.Endpoint)
	s.Equal([]string{"en", "ru"}, updated.Author.Name.Keys())
	s.Equal("/api/v1/developers/alice/photo/1", pointer.Val(updated.Author.AvatarURL))
	s.Equal("Short", updated.Summary.Resolve("en"))
	s.Equal("Релиз", updated.Title.Resolve("ru"))
	s.Equal([]string{"release"}, updated.Tags)
}

func (s *ServiceSuite) TestUpdate_PublishedAtMustParse() {
	_, err := s.service.CreateArticle(s.ctx, s.draft("abcd1234", ""))
	s.Require().NoError(err)

	_, err = s.service.UpdateArticle(s.ctx, "abcd1234", Patch{PublishedAt: pointer.To("yesterday")})
	s.True(apperr.HasCode(err, apperr.CodeValidation))

	updated, err := s.service.UpdateArticle(s.ctx, "abcd1234", Patch{PublishedAt: pointer.To("2026-03-10")})
	s.Require().NoError(err)
	s.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), updated.PublishedAt)
}

func (s *ServiceSuite) TestUpdate_ClearsBanner() {
	draft := s.draft("abcd1234", "")
	draft.BannerURL = pointer.To("https://cdn.example.com/b.png")
	_, err := s.service.CreateArticle(s.ctx, draft)
	s.Require().NoError(err)

	updated, err := s.service.UpdateArticle(s.ctx, "abcd1234", Patch{BannerURL: pointer.To("")})
	s.Require().NoError(err)
	s.Nil(updated.BannerURL)
}

func (s *ServiceSuite) TestUpdateDelete_NotFound() {
	_, err := s.service.UpdateArticle(s.ctx, "zzzzzzzz", Patch{})
	s.ErrorIs(err, ErrNotFound)
	s.ErrorIs(s.service.DeleteArticle(s.ctx, "zzzzzzzz"), ErrNotFound)
}

func TestLocalize_PublishedAgo(t *testing.T) {
	service := newTestService()
	article := &Article{
		ID:          "abcd1234",
		Title:       locale.NewText("en-EN", "Hello"),
		Content:     locale.NewText("ru", "Текст"),
		PublishedAt: fixedNow.Add(-3 * 24 * time.Hour),
		Author:      &Author{Endpoint: "alice", Name: locale.NewText("ru", "Алиса")},
	}

	view := Localize(article, "ru", service.Formatter())
	assert.Equal(t, "3д назад", view.PublishedAgo)
	assert.Equal(t, "Hello", view.Title)
	assert.Equal(t, "Текст", view.Content)
	assert.Equal(t, "", view.Summary)
	assert.Equal(t, "Алиса", view.Author.Name)
	assert.Equal(t, []string{}, view.Tags)

	view = Localize(article, "en", service.Formatter())
	assert.Equal(t, "3d ago", view.PublishedAgo)
}

func TestHandler_CreateAndList(t *testing.T) {
	service := newTestService()
	router := chi.NewRouter()
	router.Route("/news", NewHandler(service, middleware.RequireAPIKey("secret")).RegisterRoutes)

	body := `{"id": "abcd1234", "title": {"en": "A"}, "content": {"en": "B"}, "publishedAt": "2026-03-15T11:30:00Z"}`
	request := httptest.NewRequest(http.MethodPost, "/news", strings.NewReader(body))
	request.Header.Set("X-API-Key", "secret")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	request = httptest.NewRequest(http.MethodGet, "/news?lang=en", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var list struct {
		Data []View `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "1h ago", list.Data[0].PublishedAgo)

	request = httptest.NewRequest(http.MethodDelete, "/news/abcd1234", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
