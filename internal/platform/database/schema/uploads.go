// Copyright (c) 2026 Folio. All rights reserved.

package schema

// UploadsTable represents the 'uploads' table, the registry of uploaded images.
type UploadsTable struct {
	Table        string
	ID           string
	Type         string
	URL          string
	OriginalName string
	SizeBytes    string
	MimeType     string
	CreatedAt    string
}

// Uploads is the schema definition for uploads.
var Uploads = UploadsTable{
	Table:        "uploads",
	ID:           "id",
	Type:         "type",
	URL:          "url",
	OriginalName: "original_name",
	SizeBytes:    "size_bytes",
	MimeType:     "mime_type",
	CreatedAt:    "created_at",
}

func (t UploadsTable) Columns() []string {
	return []string{t.ID, t.Type, t.URL, t.OriginalName, t.SizeBytes, t.MimeType, t.CreatedAt}
}
