// Copyright (c) 2026 Folio. All rights reserved.

package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioworks/folio/internal/platform/apperr"
	"github.com/folioworks/folio/internal/platform/middleware"
)

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)
	jpegBytes = append([]byte("\xff\xd8\xff\xe0"), bytes.Repeat([]byte{0}, 32)...)
)

type owners map[string]bool

func (o owners) Exists(_ context.Context, endpoint string) (bool, error) {
	return o[endpoint], nil
}

type fixture struct {
	dir      string
	store    *FSStore
	registry *MemoryRegistry
	service  *Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	dir := t.TempDir()
	store, err := NewFSStore(dir)
	require.NoError(t, err)

	registry := NewMemoryRegistry()
	service := NewService(store, registry, owners{"alice": true}, owners{"folio": true}, "/api/v1",
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	service.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	service.newID = func() string { return "0190-test" }

	return fixture{dir: dir, store: store, registry: registry, service: service}
}

func readAll(t *testing.T, object *Object) []byte {
	t.Helper()
	defer object.Body.Close()

	body, err := io.ReadAll(object.Body)
	require.NoError(t, err)
	return body
}

func TestParseSlot(t *testing.T) {
	for _, raw := range []string{"1", "2", "3"} {
		_, err := ParseSlot(raw)
		assert.NoError(t, err, raw)
	}
	for _, raw := range []string{"0", "4", "-1", "one", ""} {
		_, err := ParseSlot(raw)
		assert.True(t, apperr.HasCode(err, apperr.CodeValidation), raw)
	}
}

func TestFSStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Put(ctx, "a/b/c.png", bytes.NewReader(pngBytes), int64(len(pngBytes)), "image/png"))

	exists, err := f.store.Exists(ctx, "a/b/c.png")
	require.NoError(t, err)
	assert.True(t, exists)

	object, err := f.store.Open(ctx, "a/b/c.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", object.ContentType)
	assert.Equal(t, pngBytes, readAll(t, object))

	_, err = f.store.Open(ctx, "a/b/missing.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	_, err = f.store.Open(ctx, "a/b")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	_, err = f.store.Open(ctx, "../escape")
	assert.Error(t, err)

	require.NoError(t, f.store.Delete(ctx, "a/b/c.png"))
	require.NoError(t, f.store.Delete(ctx, "a/b/c.png"))
}

func TestOpenPhoto_ProbesExtensionsInOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.OpenPhoto(ctx, "alice", "1")
	assert.ErrorIs(t, err, ErrPhotoUnresolved)
	assert.True(t, apperr.HasCode(err, apperr.CodeUnresolved))

	dir := filepath.Join(f.dir, "staff", "alice")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.webp"), []byte("webp"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.png"), []byte("png"), 0o644))

	object, err := f.service.OpenPhoto(ctx, "alice", "1")
	require.NoError(t, err)
	assert.Equal(t, "png", string(readAll(t, object)))

	_, err = f.service.OpenPhoto(ctx, "alice", "4")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

func TestPutPhoto_ReplacesOtherVariants(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.PutPhoto(ctx, "alice", "2", Upload{Body: pngBytes})
	require.NoError(t, err)

	stored, err := f.service.PutPhoto(ctx, "alice", "2", Upload{Body: jpegBytes})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/developers/alice/photo/2", stored.URL)
	assert.Equal(t, "image/jpeg", stored.MimeType)

	_, err = os.Stat(filepath.Join(f.dir, "staff", "alice", "2.png"))
	assert.True(t, os.IsNotExist(err))

	object, err := f.service.OpenPhoto(ctx, "alice", "2")
	require.NoError(t, err)
	assert.Equal(t, jpegBytes, readAll(t, object))
}

// fullStore refuses every write.
type fullStore struct {
	ObjectStore
}

func (fullStore) Put(context.Context, string, io.Reader, int64, string) error {
	return errors.New("disk full")
}

func TestPutPhoto_FailedWriteKeepsPrevious(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.PutPhoto(ctx, "alice", "1", Upload{Body: pngBytes})
	require.NoError(t, err)

	f.service.store = fullStore{ObjectStore: f.store}

	_, err = f.service.PutPhoto(ctx, "alice", "1", Upload{Body: jpegBytes})
	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))

	object, err := f.service.OpenPhoto(ctx, "alice", "1")
	require.NoError(t, err)
	assert.Equal(t, pngBytes, readAll(t, object))
}

func TestPutPhoto_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.PutPhoto(ctx, "ghost", "1", Upload{Body: pngBytes})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	_, err = f.service.PutPhoto(ctx, "alice", "1", Upload{Body: []byte("plain text")})
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = f.service.PutPhoto(ctx, "alice", "1", Upload{})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

func TestPicture(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.OpenPicture(ctx, "folio")
	assert.ErrorIs(t, err, ErrPictureUnresolved)

	stored, err := f.service.PutPicture(ctx, "folio", Upload{Body: pngBytes})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/projects/folio/picture", stored.URL)

	_, err = os.Stat(filepath.Join(f.dir, "projects", "pictures", "folio.png"))
	assert.NoError(t, err)

	_, err = f.service.PutPicture(ctx, "ghost", Upload{Body: pngBytes})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestSaveUpload_Records(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.service.SaveUpload(ctx, Upload{Body: pngBytes, Filename: "banner.png"})
	require.NoError(t, err)
	assert.Equal(t, &UploadResult{
		URL:          "/api/v1/uploads/0190-test.png",
		OriginalName: "banner.png",
		Size:         int64(len(pngBytes)),
		MimeType:     "image/png",
	}, result)

	records, err := f.registry.ListUploads(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, UploadTypeImage, records[0].Type)

	object, err := f.service.OpenUpload(ctx, "0190-test.png")
	require.NoError(t, err)
	assert.Equal(t, pngBytes, readAll(t, object))

	_, err = f.service.OpenUpload(ctx, "../secret.png")
	assert.ErrorIs(t, err, ErrUploadUnresolved)
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("note", "ignored"))

	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestHandler_Upload(t *testing.T) {
	f := newFixture(t)
	handler := NewHandler(f.service, middleware.RequireAPIKey("secret"), 64)

	router := chi.NewRouter()
	handler.RegisterUploadRoutes(router)
	router.Route("/developers", handler.RegisterStaffRoutes)

	send := func(path string, field string, content []byte) *httptest.ResponseRecorder {
		body, contentType := multipartBody(t, field, "x.png", content)
		request := httptest.NewRequest(http.MethodPost, path, body)
		request.Header.Set("Content-Type", contentType)
		request.Header.Set("X-API-Key", "secret")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder
	}

	recorder := send("/upload/image", "file", pngBytes)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var created struct {
		Data UploadResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, "x.png", created.Data.OriginalName)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/uploads/0190-test.png", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, pngBytes, recorder.Body.Bytes())

	recorder = send("/upload/image", "file", bytes.Repeat([]byte{1}, 65))
	assert.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)

	recorder = send("/upload/image", "other", pngBytes)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = send("/developers/alice/photo/1", "photo", jpegBytes)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/developers/alice/photo/1", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/developers/alice/photo/3", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), apperr.CodeUnresolved)
}
