// Copyright (c) 2026 Folio. All rights reserved.

/*
Package team answers the relational questions between staff and projects.

Project developer lists are the single source of truth. Staff membership is
derived by scanning them, and project developer lists are joined against the
staff store with dangling endpoints skipped.
*/
package team

import (
	"context"
	"log/slog"

	"github.com/folioworks/folio/internal/core/project"
	"github.com/folioworks/folio/internal/core/staff"
	"github.com/folioworks/folio/pkg/slice"
)

type Service struct {
	staff    *staff.Service
	projects *project.Service
	logger   *slog.Logger
}

func NewService(members *staff.Service, projects *project.Service, logger *slog.Logger) *Service {
	return &Service{staff: members, projects: projects, logger: logger}
}

// ProjectsOf returns the projects listing endpoint as a developer, ordered by
// project endpoint. Unknown or deleted staff have none, even while projects
// still list their endpoint.
func (service *Service) ProjectsOf(context context.Context, endpoint string) ([]*project.Project, error) {
	exists, err := service.staff.Exists(context, endpoint)
	if err != nil {
		return nil, err
	}
	if !exists {
		return []*project.Project{}, nil
	}

	projects, err := service.projects.ListProjects(context)
	if err != nil {
		return nil, err
	}

	return slice.OrEmpty(slice.Filter(projects, func(candidate *project.Project) bool {
		return candidate.HasDeveloper(endpoint)
	})), nil
}

// DevelopersOf returns the staff listed by the project, in list order.
// Endpoints without a staff record are skipped.
func (service *Service) DevelopersOf(context context.Context, endpoint string) ([]*staff.Member, error) {
	target, err := service.projects.GetProject(context, endpoint)
	if err != nil {
		return nil, err
	}

	members := []*staff.Member{}
	seen := make(map[string]struct{}, len(target.Developers))

	for _, developer := range target.Developers {
		if _, dup := seen[developer]; dup {
			continue
		}
		seen[developer] = struct{}{}

		member, err := service.staff.GetMember(context, developer)
		if err == staff.ErrNotFound {
			service.logger.DebugContext(context, "dangling_developer_skipped",
				slog.String("project", endpoint),
				slog.String("developer", developer),
			)
			continue
		}
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}
