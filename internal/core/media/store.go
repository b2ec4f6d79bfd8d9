// Copyright (c) 2026 Folio. All rights reserved.

/*
Package media stores the binary resources of the site: staff photos, project
pictures and uploaded images.

Objects are addressed by slash-separated keys:

	staff/<endpoint>/<slot><ext>
	projects/pictures/<endpoint><ext>
	uploads/<uuid><ext>

Two [ObjectStore] backends exist: a local directory tree and an S3 bucket.
*/
package media

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by an [ObjectStore] for a missing key.
var ErrObjectNotFound = errors.New("media: object not found")

// Object is an open stored object. The caller closes Body.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// ObjectStore is the byte storage behind the media service.
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	// Open fails with [ErrObjectNotFound] when key is absent.
	Open(ctx context.Context, key string) (*Object, error)
	Exists(ctx context.Context, key string) (bool, error)
	// Delete is a no-op for an absent key.
	Delete(ctx context.Context, key string) error
}
