// Copyright (c) 2026 Folio. All rights reserved.

package staff

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

// PostgresRepository stores members in the developers table. Structured
// fields are JSON text blobs decoded leniently on read.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectMembers = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.Developers.Columns(), ", "), schema.Developers.Table,
)

func (repository *PostgresRepository) ListMembers(context context.Context) ([]*Member, error) {
	query := selectMembers + fmt.Sprintf(` ORDER BY %s ASC`, schema.Developers.Endpoint)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_developers")
	}
	defer rows.Close()

	members := []*Member{}
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_developer")
		}
		members = append(members, member)
	}

	return members, dberr.Wrap(rows.Err(), "list_developers")
}

func (repository *PostgresRepository) GetMember(context context.Context, endpoint string) (*Member, error) {
	query := selectMembers + fmt.Sprintf(` WHERE %s = $1`, schema.Developers.Endpoint)

	member, err := scanMember(repository.db.QueryRow(context, query, endpoint))
	if err != nil {
		return nil, dberr.WrapNotFound(err, "get_developer", ErrNotFound)
	}
	return member, nil
}

func (repository *PostgresRepository) CreateMember(context context.Context, member *Member) error {
	columns := schema.Developers.Columns()
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`,
		schema.Developers.Table, strings.Join(columns, ", "),
		schema.Developers.CreatedAt, schema.Developers.UpdatedAt,
	)

	args, err := memberArgs(member)
	if err != nil {
		return dberr.Wrap(err, "encode_developer")
	}

	_, err = repository.db.Exec(context, query, append([]any{string(member.ID), member.Endpoint}, args...)...)
	if constraint, ok := dberr.UniqueConstraint(err); ok {
		if constraint == schema.Developers.PrimaryKey {
			return ErrIDTaken
		}
		return ErrEndpointTaken
	}
	return dberr.Wrap(err, "create_developer")
}

func (repository *PostgresRepository) UpdateMember(context context.Context, member *Member) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1
	`,
		schema.Developers.Table,
		schema.Developers.NameJSON, schema.Developers.NicknamesJSON, schema.Developers.Age,
		schema.Developers.Country, schema.Developers.LanguagesJSON, schema.Developers.Post,
		schema.Developers.DescriptionJSON, schema.Developers.ContactsJSON, schema.Developers.UpdatedAt,
		schema.Developers.Endpoint,
	)

	args, err := memberArgs(member)
	if err != nil {
		return dberr.Wrap(err, "encode_developer")
	}

	cmd, err := repository.db.Exec(context, query, append([]any{member.Endpoint}, args...)...)
	if err != nil {
		return dberr.Wrap(err, "update_developer")
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteMember(context context.Context, endpoint string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Developers.Table, schema.Developers.Endpoint)

	cmd, err := repository.db.Exec(context, query, endpoint)
	if err != nil {
		return dberr.Wrap(err, "delete_developer")
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// memberArgs encodes the mutable columns in Columns() order, after id and endpoint.
func memberArgs(member *Member) ([]any, error) {
	nicknames, err := blob.Encode(member.Nicknames)
	if err != nil {
		return nil, err
	}
	languages, err := blob.Encode(member.Languages)
	if err != nil {
		return nil, err
	}
	contacts, err := blob.Encode(member.Contacts)
	if err != nil {
		return nil, err
	}

	return []any{
		member.Name.Blob(), nicknames, member.Age, member.Country,
		languages, member.Post, member.Description.Blob(), contacts,
	}, nil
}

func scanMember(row pgx.Row) (*Member, error) {
	var (
		member                                  Member
		id                                      string
		name, nicknames, languages, description string
		contacts                                string
		age                                     *int
		country, post                           *string
	)

	if err := row.Scan(&id, &member.Endpoint, &name, &nicknames, &age, &country,
		&languages, &post, &description, &contacts); err != nil {
		return nil, err
	}

	member.ID = ExternalID(id)
	member.Name = locale.ParseBlob(name)
	member.Nicknames = blob.Strings(nicknames)
	member.Languages = blob.Strings(languages)
	member.Description = locale.ParseBlob(description)
	blob.Decode(contacts, &member.Contacts)

	if age != nil {
		member.Age = *age
	}
	if country != nil {
		member.Country = *country
	}
	if post != nil {
		member.Post = *post
	}

	return &member, nil
}
