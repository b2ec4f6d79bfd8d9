// Copyright (c) 2026 Folio. All rights reserved.

package project

import "context"

// Repository persists projects keyed by endpoint.
type Repository interface {
	// ListProjects returns every project ordered by endpoint ascending.
	ListProjects(context context.Context) ([]*Project, error)
	GetProject(context context.Context, endpoint string) (*Project, error)
	// CreateProject fails with [ErrEndpointTaken] on a duplicate endpoint.
	CreateProject(context context.Context, project *Project) error
	UpdateProject(context context.Context, project *Project) error
	DeleteProject(context context.Context, endpoint string) error
}
