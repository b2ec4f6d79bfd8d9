// Copyright (c) 2026 Folio. All rights reserved.

package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/folioworks/folio/internal/platform/request"
	"github.com/folioworks/folio/internal/platform/respond"
	"github.com/folioworks/folio/pkg/slice"
)

type Handler struct {
	service *Service
	guard   func(http.Handler) http.Handler
}

func NewHandler(service *Service, guard func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, guard: guard}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listArticles)
	router.Get("/{id}", handler.getArticle)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(handler.guard)

		writeRoute.Post("/", handler.createArticle)
		writeRoute.Put("/{id}", handler.updateArticle)
		writeRoute.Patch("/{id}", handler.updateArticle)
		writeRoute.Delete("/{id}", handler.deleteArticle)
	})
}

func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	articles, err := handler.service.ListArticles(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if lang := requestutil.Lang(request); lang != "" {
		formatter := handler.service.Formatter()
		respond.OK(writer, slice.Map(articles, func(article *Article) View {
			return Localize(article, lang, formatter)
		}))
		return
	}
	respond.OK(writer, articles)
}

func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	article, err := handler.service.GetArticle(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if lang := requestutil.Lang(request); lang != "" {
		respond.OK(writer, Localize(article, lang, handler.service.Formatter()))
		return
	}
	respond.OK(writer, article)
}

func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	var draft Draft
	if err := requestutil.DecodeJSON(writer, request, &draft); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateArticle(request.Context(), draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateArticle(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateArticle(request.Context(), requestutil.Param(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteArticle(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteArticle(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
