// Copyright (c) 2026 Folio. All rights reserved.

package media

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/folioworks/folio/internal/platform/database/schema"
	"github.com/folioworks/folio/internal/platform/dberr"
)

// UploadTypeImage is the only upload type the API accepts.
const UploadTypeImage = "image"

// UploadRecord is one entry of the uploads registry.
type UploadRecord struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	URL          string    `json:"url"`
	OriginalName string    `json:"originalName"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mimeType"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Registry records uploads.
type Registry interface {
	RecordUpload(ctx context.Context, record *UploadRecord) error
	ListUploads(ctx context.Context) ([]*UploadRecord, error)
}

// # Postgres

type PostgresRegistry struct {
	db *pgxpool.Pool
}

func NewPostgresRegistry(db *pgxpool.Pool) *PostgresRegistry {
	return &PostgresRegistry{db: db}
}

func (registry *PostgresRegistry) RecordUpload(ctx context.Context, record *UploadRecord) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		schema.Uploads.Table, strings.Join(schema.Uploads.Columns(), ", "),
	)

	_, err := registry.db.Exec(ctx, query,
		record.ID, record.Type, record.URL, record.OriginalName,
		record.Size, record.MimeType, record.CreatedAt,
	)
	return dberr.Wrap(err, "record_upload")
}

func (registry *PostgresRegistry) ListUploads(ctx context.Context) ([]*UploadRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC`,
		strings.Join(schema.Uploads.Columns(), ", "), schema.Uploads.Table, schema.Uploads.CreatedAt,
	)

	rows, err := registry.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_uploads")
	}
	defer rows.Close()

	records := []*UploadRecord{}
	for rows.Next() {
		var record UploadRecord
		if err := rows.Scan(&record.ID, &record.Type, &record.URL, &record.OriginalName,
			&record.Size, &record.MimeType, &record.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_upload")
		}
		records = append(records, &record)
	}

	return records, dberr.Wrap(rows.Err(), "list_uploads")
}

// # Memory

type MemoryRegistry struct {
	mu      sync.Mutex
	records []*UploadRecord
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{}
}

func (registry *MemoryRegistry) RecordUpload(_ context.Context, record *UploadRecord) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	stored := *record
	registry.records = append(registry.records, &stored)
	return nil
}

// ListUploads returns the newest upload first.
func (registry *MemoryRegistry) ListUploads(_ context.Context) ([]*UploadRecord, error) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	records := make([]*UploadRecord, 0, len(registry.records))
	for i := len(registry.records) - 1; i >= 0; i-- {
		stored := *registry.records[i]
		records = append(records, &stored)
	}
	return records, nil
}
