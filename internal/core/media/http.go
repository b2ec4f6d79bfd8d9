// Copyright (c) 2026 Folio. All rights reserved.

package media

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/folioworks/folio/internal/platform/apperr"
	requestutil "github.com/folioworks/folio/internal/platform/request"
	"github.com/folioworks/folio/internal/platform/respond"
)

// multipartOverhead is the allowance for multipart framing on top of the file.
const multipartOverhead = 1 << 20

// fileFields are the accepted multipart field names.
var fileFields = map[string]bool{"file": true, "image": true, "photo": true}

var ErrMissingFile = apperr.ValidationError("No file uploaded",
	apperr.FieldError{Field: "file", Message: "This field is required"})

type Handler struct {
	service  *Service
	guard    func(http.Handler) http.Handler
	maxBytes int64
}

func NewHandler(service *Service, guard func(http.Handler) http.Handler, maxBytes int64) *Handler {
	return &Handler{service: service, guard: guard, maxBytes: maxBytes}
}

// RegisterStaffRoutes mounts photo routes under /developers.
func (handler *Handler) RegisterStaffRoutes(router chi.Router) {
	router.Get("/{endpoint}/photo/{slot}", handler.getPhoto)
	router.With(handler.guard).Post("/{endpoint}/photo/{slot}", handler.putPhoto)
}

// RegisterProjectRoutes mounts picture routes under /projects.
func (handler *Handler) RegisterProjectRoutes(router chi.Router) {
	router.Get("/{endpoint}/picture", handler.getPicture)
	router.With(handler.guard).Post("/{endpoint}/picture", handler.putPicture)
}

// RegisterUploadRoutes mounts the image upload and download routes at the API root.
func (handler *Handler) RegisterUploadRoutes(router chi.Router) {
	router.With(handler.guard).Post("/upload/image", handler.uploadImage)
	router.Get("/uploads/{name}", handler.getUpload)
}

func (handler *Handler) getPhoto(writer http.ResponseWriter, request *http.Request) {
	object, err := handler.service.OpenPhoto(request.Context(),
		requestutil.Param(request, "endpoint"), requestutil.Param(request, "slot"))
	handler.stream(writer, request, object, err)
}

func (handler *Handler) putPhoto(writer http.ResponseWriter, request *http.Request) {
	upload, err := handler.readUpload(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	stored, err := handler.service.PutPhoto(request.Context(),
		requestutil.Param(request, "endpoint"), requestutil.Param(request, "slot"), upload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, stored)
}

func (handler *Handler) getPicture(writer http.ResponseWriter, request *http.Request) {
	object, err := handler.service.OpenPicture(request.Context(), requestutil.Param(request, "endpoint"))
	handler.stream(writer, request, object, err)
}

func (handler *Handler) putPicture(writer http.ResponseWriter, request *http.Request) {
	upload, err := handler.readUpload(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	stored, err := handler.service.PutPicture(request.Context(), requestutil.Param(request, "endpoint"), upload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, stored)
}

func (handler *Handler) uploadImage(writer http.ResponseWriter, request *http.Request) {
	upload, err := handler.readUpload(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.SaveUpload(request.Context(), upload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, result)
}

func (handler *Handler) getUpload(writer http.ResponseWriter, request *http.Request) {
	object, err := handler.service.OpenUpload(request.Context(), requestutil.Param(request, "name"))
	handler.stream(writer, request, object, err)
}

func (handler *Handler) stream(writer http.ResponseWriter, request *http.Request, object *Object, err error) {
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer object.Body.Close()

	respond.Stream(writer, request, object.ContentType, object.Body)
}

// readUpload pulls the first file part of a multipart body, bounded by maxBytes.
func (handler *Handler) readUpload(writer http.ResponseWriter, request *http.Request) (Upload, error) {
	request.Body = http.MaxBytesReader(writer, request.Body, handler.maxBytes+multipartOverhead)

	reader, err := request.MultipartReader()
	if err != nil {
		return Upload{}, apperr.ValidationError("Expected a multipart/form-data body")
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return Upload{}, ErrMissingFile
		}
		if err != nil {
			return Upload{}, handler.readError(err)
		}

		if !fileFields[part.FormName()] {
			part.Close()
			continue
		}

		body, err := io.ReadAll(io.LimitReader(part, handler.maxBytes+1))
		part.Close()
		if err != nil {
			return Upload{}, handler.readError(err)
		}
		if int64(len(body)) > handler.maxBytes {
			return Upload{}, apperr.PayloadTooLarge(handler.maxBytes)
		}

		return Upload{Body: body, Filename: part.FileName()}, nil
	}
}

func (handler *Handler) readError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperr.PayloadTooLarge(handler.maxBytes)
	}
	return apperr.ValidationError("Malformed multipart body")
}
