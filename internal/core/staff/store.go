// Copyright (c) 2026 Folio. All rights reserved.

package staff

import "context"

// Repository persists staff members. Implementations never fill Projects.
type Repository interface {
	// ListMembers returns every member ordered by endpoint ascending.
	ListMembers(context context.Context) ([]*Member, error)
	// GetMember returns [ErrNotFound] when the endpoint is unknown.
	GetMember(context context.Context, endpoint string) (*Member, error)
	// CreateMember returns [ErrEndpointTaken] or [ErrIDTaken] on collision.
	CreateMember(context context.Context, member *Member) error
	// UpdateMember overwrites the mutable fields of the member with the same endpoint.
	UpdateMember(context context.Context, member *Member) error
	// DeleteMember returns [ErrNotFound] when the endpoint is unknown.
	DeleteMember(context context.Context, endpoint string) error
}

// MembershipIndex maps staff endpoints to the endpoints of the projects that
// list them, in project order.
type MembershipIndex interface {
	DeveloperIndex(context context.Context) (map[string][]string, error)
}
