// Copyright (c) 2026 Folio. All rights reserved.

package team

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/folioworks/folio/internal/core/flag"
	"github.com/folioworks/folio/internal/core/project"
	"github.com/folioworks/folio/internal/core/staff"
	requestutil "github.com/folioworks/folio/internal/platform/request"
	"github.com/folioworks/folio/internal/platform/respond"
	"github.com/folioworks/folio/pkg/slice"
)

type Handler struct {
	service *Service
	flags   *flag.Table
}

func NewHandler(service *Service, flags *flag.Table) *Handler {
	return &Handler{service: service, flags: flags}
}

// RegisterStaffRoutes mounts relation reads under /developers.
func (handler *Handler) RegisterStaffRoutes(router chi.Router) {
	router.Get("/{endpoint}/projects", handler.projectsOf)
}

// RegisterProjectRoutes mounts relation reads under /projects.
func (handler *Handler) RegisterProjectRoutes(router chi.Router) {
	router.Get("/{endpoint}/developers", handler.developersOf)
}

func (handler *Handler) projectsOf(writer http.ResponseWriter, request *http.Request) {
	projects, err := handler.service.ProjectsOf(request.Context(), requestutil.Param(request, "endpoint"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if lang := requestutil.Lang(request); lang != "" {
		respond.OK(writer, slice.Map(projects, func(p *project.Project) project.View {
			return project.Localize(p, lang)
		}))
		return
	}
	respond.OK(writer, projects)
}

func (handler *Handler) developersOf(writer http.ResponseWriter, request *http.Request) {
	members, err := handler.service.DevelopersOf(request.Context(), requestutil.Param(request, "endpoint"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if lang := requestutil.Lang(request); lang != "" {
		respond.OK(writer, slice.Map(members, func(member *staff.Member) staff.View {
			return staff.Localize(member, lang, handler.flags)
		}))
		return
	}
	respond.OK(writer, members)
}
