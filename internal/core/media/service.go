// Copyright (c) 2026 Folio. All rights reserved.

package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"regexp"
	"strconv"
	"time"

	"github.com/folioworks/folio/internal/platform/apperr"
	"github.com/folioworks/folio/internal/platform/validate"
	"github.com/folioworks/folio/pkg/uuid"
)

// Slots bound the staff photo positions.
const (
	MinSlot = 1
	MaxSlot = 3
)

// Extensions are probed in order when resolving a photo or picture.
// The first existing object wins.
var Extensions = []string{".jpg", ".png", ".jpeg", ".webp"}

// imageTypes maps accepted sniffed content types to stored extensions.
var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var uploadNameRegex = regexp.MustCompile(`^[A-Za-z0-9-]+\.[a-z]+$`)

var (
	ErrPhotoUnresolved   = apperr.Unresolved("Photo")
	ErrPictureUnresolved = apperr.Unresolved("Picture")
	ErrUploadUnresolved  = apperr.Unresolved("Upload")
	ErrUnsupportedImage  = apperr.ValidationError("Unsupported image type",
		apperr.FieldError{Field: "file", Message: "Must be a JPEG, PNG or WebP image"})
)

// Owners reports whether the entity owning a resource exists.
type Owners interface {
	Exists(ctx context.Context, endpoint string) (bool, error)
}

// Upload is a received file, already bounded in size.
type Upload struct {
	Body     []byte
	Filename string
}

// Stored describes a written photo or picture.
type Stored struct {
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

// UploadResult is returned by the image upload endpoint.
type UploadResult struct {
	URL          string `json:"url"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimeType"`
}

type Service struct {
	store    ObjectStore
	registry Registry
	staff    Owners
	projects Owners
	logger   *slog.Logger

	// publicPrefix is prepended to returned URLs, e.g. "/api/v1".
	publicPrefix string

	now   func() time.Time
	newID func() string
}

func NewService(store ObjectStore, registry Registry, staff, projects Owners, publicPrefix string, logger *slog.Logger) *Service {
	return &Service{
		store:        store,
		registry:     registry,
		staff:        staff,
		projects:     projects,
		logger:       logger,
		publicPrefix: publicPrefix,
		now:          time.Now,
		newID:        uuid.New,
	}
}

// ParseSlot validates a photo slot path segment.
func ParseSlot(raw string) (int, error) {
	slot, err := strconv.Atoi(raw)
	if err != nil || slot < MinSlot || slot > MaxSlot {
		return 0, apperr.ValidationError("Invalid photo slot", apperr.FieldError{
			Field:   "slot",
			Message: fmt.Sprintf("Must be between %d and %d", MinSlot, MaxSlot),
		})
	}
	return slot, nil
}

func photoBase(endpoint string, slot int) string {
	return path.Join("staff", endpoint, strconv.Itoa(slot))
}

func pictureBase(endpoint string) string {
	return path.Join("projects", "pictures", endpoint)
}

// # Staff Photos

// OpenPhoto resolves the photo in slot for a staff member.
func (service *Service) OpenPhoto(ctx context.Context, endpoint, rawSlot string) (*Object, error) {
	slot, err := ParseSlot(rawSlot)
	if err != nil {
		return nil, err
	}
	if err := checkEndpoint(endpoint); err != nil {
		return nil, err
	}
	return service.probe(ctx, photoBase(endpoint, slot), ErrPhotoUnresolved)
}

// PutPhoto replaces the photo in slot. The staff member must exist.
func (service *Service) PutPhoto(ctx context.Context, endpoint, rawSlot string, upload Upload) (*Stored, error) {
	slot, err := ParseSlot(rawSlot)
	if err != nil {
		return nil, err
	}
	if err := service.requireOwner(ctx, service.staff, endpoint, "Developer"); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/developers/%s/photo/%d", service.publicPrefix, endpoint, slot)
	stored, err := service.replace(ctx, photoBase(endpoint, slot), url, upload)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "photo_stored",
		slog.String("endpoint", endpoint),
		slog.Int("slot", slot),
		slog.Int64("size", stored.Size),
	)
	return stored, nil
}

// # Project Pictures

func (service *Service) OpenPicture(ctx context.Context, endpoint string) (*Object, error) {
	if err := checkEndpoint(endpoint); err != nil {
		return nil, err
	}
	return service.probe(ctx, pictureBase(endpoint), ErrPictureUnresolved)
}

// PutPicture replaces the picture of a project. The project must exist.
func (service *Service) PutPicture(ctx context.Context, endpoint string, upload Upload) (*Stored, error) {
	if err := service.requireOwner(ctx, service.projects, endpoint, "Project"); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/projects/%s/picture", service.publicPrefix, endpoint)
	stored, err := service.replace(ctx, pictureBase(endpoint), url, upload)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "picture_stored",
		slog.String("endpoint", endpoint),
		slog.Int64("size", stored.Size),
	)
	return stored, nil
}

// # Uploads

// SaveUpload stores an image under a fresh name and records it.
func (service *Service) SaveUpload(ctx context.Context, upload Upload) (*UploadResult, error) {
	mimeType, ext, err := sniff(upload.Body)
	if err != nil {
		return nil, err
	}

	id := service.newID()
	name := id + ext
	size := int64(len(upload.Body))

	if err := service.store.Put(ctx, path.Join("uploads", name), bytes.NewReader(upload.Body), size, mimeType); err != nil {
		return nil, apperr.Internal(err)
	}

	record := &UploadRecord{
		ID:           id,
		Type:         UploadTypeImage,
		URL:          fmt.Sprintf("%s/uploads/%s", service.publicPrefix, name),
		OriginalName: upload.Filename,
		Size:         size,
		MimeType:     mimeType,
		CreatedAt:    service.now().UTC(),
	}
	if err := service.registry.RecordUpload(ctx, record); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "image_uploaded",
		slog.String("id", id),
		slog.String("mime_type", mimeType),
		slog.Int64("size", size),
	)

	return &UploadResult{
		URL:          record.URL,
		OriginalName: record.OriginalName,
		Size:         record.Size,
		MimeType:     record.MimeType,
	}, nil
}

// OpenUpload opens an uploaded file by its stored name.
func (service *Service) OpenUpload(ctx context.Context, name string) (*Object, error) {
	if !uploadNameRegex.MatchString(name) {
		return nil, ErrUploadUnresolved
	}

	object, err := service.store.Open(ctx, path.Join("uploads", name))
	if errors.Is(err, ErrObjectNotFound) {
		return nil, ErrUploadUnresolved
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return object, nil
}

// # Helpers

// probe opens base+ext for each of [Extensions] in order.
func (service *Service) probe(ctx context.Context, base string, unresolved error) (*Object, error) {
	for _, ext := range Extensions {
		object, err := service.store.Open(ctx, base+ext)
		if errors.Is(err, ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return nil, apperr.Internal(err)
		}
		return object, nil
	}
	return nil, unresolved
}

// replace writes the upload as base+ext, then removes the other extension
// variants so probing finds the new object. A failed write leaves the
// previous object in place.
func (service *Service) replace(ctx context.Context, base, url string, upload Upload) (*Stored, error) {
	mimeType, ext, err := sniff(upload.Body)
	if err != nil {
		return nil, err
	}

	size := int64(len(upload.Body))
	if err := service.store.Put(ctx, base+ext, bytes.NewReader(upload.Body), size, mimeType); err != nil {
		return nil, apperr.Internal(err)
	}

	for _, other := range Extensions {
		if other == ext {
			continue
		}

		exists, err := service.store.Exists(ctx, base+other)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if !exists {
			continue
		}

		if err := service.store.Delete(ctx, base+other); err != nil {
			return nil, apperr.Internal(err)
		}
		service.logger.DebugContext(ctx, "media_variant_removed", slog.String("key", base+other))
	}

	return &Stored{URL: url, MimeType: mimeType, Size: size}, nil
}

func (service *Service) requireOwner(ctx context.Context, owners Owners, endpoint, resource string) error {
	if err := checkEndpoint(endpoint); err != nil {
		return err
	}

	exists, err := owners.Exists(ctx, endpoint)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound(resource)
	}
	return nil
}

func checkEndpoint(endpoint string) error {
	return (&validate.Validator{}).Endpoint("endpoint", endpoint).Err()
}

// sniff detects the image type from content, ignoring the client's claim.
func sniff(body []byte) (string, string, error) {
	if len(body) == 0 {
		return "", "", apperr.ValidationError("File is empty",
			apperr.FieldError{Field: "file", Message: "This field is required"})
	}

	mimeType := http.DetectContentType(body)
	ext, ok := imageTypes[mimeType]
	if !ok {
		return "", "", ErrUnsupportedImage
	}
	return mimeType, ext, nil
}
