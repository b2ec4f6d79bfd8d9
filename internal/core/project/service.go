// Copyright (c) 2026 Folio. All rights reserved.

package project

import (
	"context"
	"log/slog"
	"strings"

	"github.com/folioworks/folio/internal/platform/validate"
	"github.com/folioworks/folio/pkg/slice"
)

const (
	maxNameLen = 200
	maxTagLen  = 64
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListProjects(context context.Context) ([]*Project, error) {
	return service.repo.ListProjects(context)
}

func (service *Service) GetProject(context context.Context, endpoint string) (*Project, error) {
	return service.repo.GetProject(context, endpoint)
}

func (service *Service) CreateProject(context context.Context, project *Project) (*Project, error) {
	if err := Prepare(project); err != nil {
		return nil, err
	}

	if err := service.repo.CreateProject(context, project); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "project_created",
		slog.String("endpoint", project.Endpoint),
		slog.Int("developers", len(project.Developers)),
	)
	return project, nil
}

// Prepare normalizes a complete project record in place and validates it.
func Prepare(project *Project) error {
	project.Endpoint = strings.TrimSpace(project.Endpoint)
	project.Name = strings.TrimSpace(project.Name)
	project.Tags = slice.OrEmpty(project.Tags)
	project.Developers = slice.OrEmpty(project.Developers)

	validator := &validate.Validator{}
	validator.Required(FieldEndpoint, project.Endpoint)
	if project.Endpoint != "" {
		validator.Endpoint(FieldEndpoint, project.Endpoint)
	}
	validator.Required(FieldName, project.Name)

	return validateContent(validator, project).Err()
}

// UpdateProject merges patch into the stored project.
func (service *Service) UpdateProject(context context.Context, endpoint string, patch Patch) (*Project, error) {
	existing, err := service.repo.GetProject(context, endpoint)
	if err != nil {
		return nil, err
	}

	merged := patch.Apply(existing)

	validator := &validate.Validator{}
	if patch.Name != nil {
		validator.Required(FieldName, merged.Name)
	}
	if err := validateContent(validator, merged).Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateProject(context, merged); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "project_updated", slog.String("endpoint", endpoint))
	return merged, nil
}

func (service *Service) DeleteProject(context context.Context, endpoint string) error {
	if err := service.repo.DeleteProject(context, endpoint); err != nil {
		return err
	}

	service.logger.WarnContext(context, "project_deleted", slog.String("endpoint", endpoint))
	return nil
}

// Exists reports whether a project with endpoint is stored.
func (service *Service) Exists(context context.Context, endpoint string) (bool, error) {
	_, err := service.repo.GetProject(context, endpoint)
	if err == ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

// DeveloperIndex maps each staff endpoint to the projects listing it, in
// project endpoint order. A project listing the same developer twice counts once.
func (service *Service) DeveloperIndex(context context.Context) (map[string][]string, error) {
	projects, err := service.repo.ListProjects(context)
	if err != nil {
		return nil, err
	}

	index := make(map[string][]string)
	for _, project := range projects {
		seen := make(map[string]struct{}, len(project.Developers))
		for _, developer := range project.Developers {
			if _, dup := seen[developer]; dup {
				continue
			}
			seen[developer] = struct{}{}
			index[developer] = append(index[developer], project.Endpoint)
		}
	}
	return index, nil
}

func validateContent(validator *validate.Validator, project *Project) *validate.Validator {
	validator.MaxLen(FieldName, project.Name, maxNameLen)

	for _, tag := range project.Tags {
		validator.Required(FieldTags, tag).MaxLen(FieldTags, tag, maxTagLen)
	}
	for _, developer := range project.Developers {
		validator.Endpoint(FieldDevelopers, developer)
	}
	return validator
}
