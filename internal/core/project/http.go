// Copyright (c) 2026 Folio. All rights reserved.

package project

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
	router.Get("/", handler.listProjects)
	router.Get("/{endpoint}", handler.getProject)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(handler.guard)

		writeRoute.Post("/", handler.createProject)
		writeRoute.Put("/{endpoint}", handler.updateProject)
		writeRoute.Patch("/{endpoint}", handler.updateProject)
		writeRoute.Delete("/{endpoint}", handler.deleteProject)
	})
}

func (handler *Handler) listProjects(writer http.ResponseWriter, request *http.Request) {
	projects, err := handler.service.ListProjects(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if lang := requestutil.Lang(request); lang != "" {
		respond.OK(writer, slice.Map(projects, func(project *Project) View {
			return Localize(project, lang)
		}))
		return
	}
	respond.OK(writer, projects)
}

func (handler *Handler) getProject(writer http.ResponseWriter, request *http.Request) {
	project, err := handler.service.GetProject(request.Context(), requestutil.Param(request, "endpoint"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if lang := requestutil.Lang(request); lang != "" {
		respond.OK(writer, Localize(project, lang))
		return
	}
	respond.OK(writer, project)
}

func (handler *Handler) createProject(writer http.ResponseWriter, request *http.Request) {
	var input Project
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateProject(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateProject(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateProject(request.Context(), requestutil.Param(request, "endpoint"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteProject(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteProject(request.Context(), requestutil.Param(request, "endpoint")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
