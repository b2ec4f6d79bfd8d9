// Copyright (c) 2026 Folio. All rights reserved.

// Package schema names the tables, columns and constraints of the content
// database so stores never spell identifiers inline.
package schema

// DevelopersTable represents the 'developers' table.
type DevelopersTable struct {
	Table           string
	ID              string
	Endpoint        string
	NameJSON        string
	NicknamesJSON   string
	Age             string
	Country         string
	LanguagesJSON   string
	Post            string
	DescriptionJSON string
	ContactsJSON    string
	CreatedAt       string
	UpdatedAt       string

	// Constraints
	PrimaryKey  string
	EndpointKey string
}

// Developers is the schema definition for developers (staff members).
var Developers = DevelopersTable{
	Table:           "developers",
	ID:              "id",
	Endpoint:        "endpoint",
	NameJSON:        "name_json",
	NicknamesJSON:   "nicknames_json",
	Age:             "age",
	Country:         "country",
	LanguagesJSON:   "languages_json",
	Post:            "post",
	DescriptionJSON: "description_json",
	ContactsJSON:    "contacts_json",
	CreatedAt:       "created_at",
	UpdatedAt:       "updated_at",

	PrimaryKey:  "developers_pkey",
	EndpointKey: "developers_endpoint_key",
}

// Columns lists the columns read by every developer query, in scan order.
func (t DevelopersTable) Columns() []string {
	return []string{
		t.ID, t.Endpoint, t.NameJSON, t.NicknamesJSON, t.Age, t.Country,
		t.LanguagesJSON, t.Post, t.DescriptionJSON, t.ContactsJSON,
	}
}
