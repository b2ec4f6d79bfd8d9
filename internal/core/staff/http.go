// Copyright (c) 2026 Folio. All rights reserved.

package staff

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/folioworks/folio/internal/core/flag"
	requestutil "github.com/folioworks/folio/internal/platform/request"
	"github.com/folioworks/folio/internal/platform/respond"
	"github.com/folioworks/folio/pkg/slice"
)

type Handler struct {
	service *Service
	flags   *flag.Table
	guard   func(http.Handler) http.Handler
}

// NewHandler builds the developer handler. guard protects every mutating route.
func NewHandler(service *Service, flags *flag.Table, guard func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, flags: flags, guard: guard}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listMembers)
	router.Get("/{endpoint}", handler.getMember)

	// Write credential required
	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(handler.guard)

		writeRoute.Post("/", handler.createMember)
		writeRoute.Put("/{endpoint}", handler.updateMember)
		writeRoute.Patch("/{endpoint}", handler.updateMember)
		writeRoute.Delete("/{endpoint}", handler.deleteMember)
	})
}

func (handler *Handler) listMembers(writer http.ResponseWriter, request *http.Request) {
	members, err := handler.service.ListMembers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if lang := requestutil.Lang(request); lang != "" {
		respond.OK(writer, slice.Map(members, func(member *Member) View {
			return Localize(member, lang, handler.flags)
		}))
		return
	}
	respond.OK(writer, members)
}

func (handler *Handler) getMember(writer http.ResponseWriter, request *http.Request) {
	member, err := handler.service.GetMember(request.Context(), requestutil.Param(request, "endpoint"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if lang := requestutil.Lang(request); lang != "" {
		respond.OK(writer, Localize(member, lang, handler.flags))
		return
	}
	respond.OK(writer, member)
}

func (handler *Handler) createMember(writer http.ResponseWriter, request *http.Request) {
	var input Member
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateMember(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateMember(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateMember(request.Context(), requestutil.Param(request, "endpoint"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteMember(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteMember(request.Context(), requestutil.Param(request, "endpoint")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
