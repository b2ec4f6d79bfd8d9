// Copyright (c) 2026 Folio. All rights reserved.

package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/folioworks/folio/internal/platform/database/schema"
	"github.com/folioworks/folio/internal/platform/dberr"
	"github.com/folioworks/folio/pkg/blob"
	"github.com/folioworks/folio/pkg/locale"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectProjects = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.Projects.Columns(), ", "), schema.Projects.Table,
)

func (repository *PostgresRepository) ListProjects(context context.Context) ([]*Project, error) {
	query := selectProjects + fmt.Sprintf(` ORDER BY %s ASC`, schema.Projects.Endpoint)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_projects")
	}
	defer rows.Close()

	projects := []*Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_project")
		}
		projects = append(projects, project)
	}

	return projects, dberr.Wrap(rows.Err(), "list_projects")
}

func (repository *PostgresRepository) GetProject(context context.Context, endpoint string) (*Project, error) {
	query := selectProjects + fmt.Sprintf(` WHERE %s = $1`, schema.Projects.Endpoint)

	project, err := scanProject(repository.db.QueryRow(context, query, endpoint))
	if err != nil {
		return nil, dberr.WrapNotFound(err, "get_project", ErrNotFound)
	}
	return project, nil
}

func (repository *PostgresRepository) CreateProject(context context.Context, project *Project) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`,
		schema.Projects.Table, strings.Join(schema.Projects.Columns(), ", "),
		schema.Projects.CreatedAt, schema.Projects.UpdatedAt,
	)

	args, err := projectArgs(project)
	if err != nil {
		return dberr.Wrap(err, "encode_project")
	}

	_, err = repository.db.Exec(context, query, args...)
	if dberr.IsUniqueViolation(err) {
		return ErrEndpointTaken
	}
	return dberr.Wrap(err, "create_project")
}

func (repository *PostgresRepository) UpdateProject(context context.Context, project *Project) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
	`,
		schema.Projects.Table,
		schema.Projects.Name, schema.Projects.DescriptionJSON, schema.Projects.TagsJSON,
		schema.Projects.DevelopersJSON, schema.Projects.UpdatedAt,
		schema.Projects.Endpoint,
	)

	args, err := projectArgs(project)
	if err != nil {
		return dberr.Wrap(err, "encode_project")
	}

	cmd, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "update_project")
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteProject(context context.Context, endpoint string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Projects.Table, schema.Projects.Endpoint)

	cmd, err := repository.db.Exec(context, query, endpoint)
	if err != nil {
		return dberr.Wrap(err, "delete_project")
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// projectArgs encodes a project in Columns() order.
func projectArgs(project *Project) ([]any, error) {
	tags, err := blob.Encode(project.Tags)
	if err != nil {
		return nil, err
	}
	developers, err := blob.Encode(project.Developers)
	if err != nil {
		return nil, err
	}

	return []any{project.Endpoint, project.Name, project.Description.Blob(), tags, developers}, nil
}

func scanProject(row pgx.Row) (*Project, error) {
	var (
		project                       Project
		description, tags, developers string
	)

	if err := row.Scan(&project.Endpoint, &project.Name, &description, &tags, &developers); err != nil {
		return nil, err
	}

	project.Description = locale.ParseBlob(description)
	project.Tags = blob.Strings(tags)
	project.Developers = blob.Strings(developers)
	return &project, nil
}
