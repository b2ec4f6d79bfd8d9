// Copyright (c) 2026 Folio. All rights reserved.

/*
Package project manages portfolio projects.

A project's Developers list is the authoritative side of the staff and project
relation. Entries may point at staff that no longer exist; readers filter them.
*/
package project

import (
	"github.com/folioworks/folio/internal/platform/apperr"
	"github.com/folioworks/folio/pkg/locale"
	"github.com/folioworks/folio/pkg/slice"
)

// Project is a portfolio project as stored and returned by the raw API.
type Project struct {
	// Endpoint is the primary key and the picture name. Immutable.
	Endpoint    string      `json:"endpoint"`
	Name        string      `json:"name"`
	Tags        []string    `json:"tags"`
	Description locale.Text `json:"description"`
	// Developers lists staff endpoints in display order.
	Developers []string `json:"developers"`
}

// Clone returns a deep copy.
func (p *Project) Clone() *Project {
	out := *p
	out.Tags = slice.Clone(p.Tags)
	out.Developers = slice.Clone(p.Developers)
	out.Description = p.Description.Clone()
	return &out
}

// HasDeveloper reports whether endpoint is listed as a developer.
func (p *Project) HasDeveloper(endpoint string) bool {
	for _, developer := range p.Developers {
		if developer == endpoint {
			return true
		}
	}
	return false
}

// Patch is a partial update. Nil fields are absent from the payload.
type Patch struct {
	Name        *string      `json:"name"`
	Tags        *[]string    `json:"tags"`
	Description *locale.Text `json:"description"`
	Developers  *[]string    `json:"developers"`
}

// Apply returns a copy of p with the patch merged in.
func (patch Patch) Apply(p *Project) *Project {
	out := p.Clone()

	if patch.Name != nil {
		out.Name = *patch.Name
	}
	if patch.Tags != nil {
		out.Tags = slice.Clone(*patch.Tags)
	}
	if patch.Description != nil {
		out.Description = out.Description.Merge(*patch.Description)
	}
	if patch.Developers != nil {
		out.Developers = slice.Clone(*patch.Developers)
	}
	return out
}

// View is a project reduced to one locale.
type View struct {
	Endpoint    string   `json:"endpoint"`
	Locale      string   `json:"locale"`
	Name        string   `json:"name"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Developers  []string `json:"developers"`
}

// Localize resolves the project description for the requested locale.
func Localize(p *Project, requested string) View {
	return View{
		Endpoint:    p.Endpoint,
		Locale:      requested,
		Name:        p.Name,
		Tags:        slice.OrEmpty(p.Tags),
		Description: p.Description.Resolve(requested),
		Developers:  slice.OrEmpty(p.Developers),
	}
}

var (
	ErrNotFound      = apperr.NotFound("Project")
	ErrEndpointTaken = apperr.Conflict("Project with this endpoint already exists")
)

const (
	FieldEndpoint   = "endpoint"
	FieldName       = "name"
	FieldTags       = "tags"
	FieldDevelopers = "developers"
)
