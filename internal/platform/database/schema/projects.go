// Copyright (c) 2026 Folio. All rights reserved.

package schema

// ProjectsTable represents the 'projects' table.
type ProjectsTable struct {
	Table           string
	Endpoint        string
	Name            string
	DescriptionJSON string
	TagsJSON        string
	DevelopersJSON  string
	CreatedAt       string
	UpdatedAt       string

	PrimaryKey string
}

// Projects is the schema definition for projects.
var Projects = ProjectsTable{
	Table:           "projects",
	Endpoint:        "endpoint",
	Name:            "name",
	DescriptionJSON: "description_json",
	TagsJSON:        "tags_json",
	DevelopersJSON:  "developers_json",
	CreatedAt:       "created_at",
	UpdatedAt:       "updated_at",

	PrimaryKey: "projects_pkey",
}

func (t ProjectsTable) Columns() []string {
	return []string{t.Endpoint, t.Name, t.DescriptionJSON, t.TagsJSON, t.DevelopersJSON}
}
