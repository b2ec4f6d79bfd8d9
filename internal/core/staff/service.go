// Copyright (c) 2026 Folio. All rights reserved.

package staff

import (
	"context"
	"log/slog"
	"strings"

	"github.com/folioworks/folio/internal/platform/validate"
	"github.com/folioworks/folio/pkg/slice"
)

const (
	maxNameLen     = 200
	maxPostLen     = 200
	maxNicknameLen = 64

	maxDescriptionLen = 4000
)

type Service struct {
	repo   Repository
	index  MembershipIndex
	logger *slog.Logger
}

// NewService wires the staff service. index may be nil, in which case every
// member reports no projects.
func NewService(repo Repository, index MembershipIndex, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		index:  index,
		logger: logger,
	}
}

// ListMembers returns every member ordered by endpoint, with projects derived.
func (service *Service) ListMembers(context context.Context) ([]*Member, error) {
	members, err := service.repo.ListMembers(context)
	if err != nil {
		return nil, err
	}

	index, err := service.membership(context)
	if err != nil {
		return nil, err
	}

	for _, member := range members {
		member.Projects = slice.OrEmpty(index[member.Endpoint])
	}
	return members, nil
}

// GetMember returns one member with projects derived.
func (service *Service) GetMember(context context.Context, endpoint string) (*Member, error) {
	member, err := service.repo.GetMember(context, endpoint)
	if err != nil {
		return nil, err
	}

	index, err := service.membership(context)
	if err != nil {
		return nil, err
	}

	member.Projects = slice.OrEmpty(index[member.Endpoint])
	return member, nil
}

// CreateMember validates and stores a new member. Any Projects in the input
// are ignored: membership belongs to projects.
func (service *Service) CreateMember(context context.Context, member *Member) (*Member, error) {
	if err := Prepare(member); err != nil {
		return nil, err
	}

	if err := service.repo.CreateMember(context, member); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "developer_created",
		slog.String("endpoint", member.Endpoint),
		slog.String("id", string(member.ID)),
	)

	return service.GetMember(context, member.Endpoint)
}

// Prepare normalizes a complete member record in place and checks every rule
// a newly stored member must satisfy.
func Prepare(member *Member) error {
	member.ID = ExternalID(strings.TrimSpace(string(member.ID)))
	member.Endpoint = strings.TrimSpace(member.Endpoint)
	member.Nicknames = slice.OrEmpty(member.Nicknames)
	member.Languages = slice.OrEmpty(member.Languages)
	member.Projects = nil

	validator := &validate.Validator{}
	validator.Required(FieldEndpoint, member.Endpoint)
	if member.Endpoint != "" {
		validator.Endpoint(FieldEndpoint, member.Endpoint)
	}
	validator.Custom(FieldName, member.Name.IsEmpty(), "This field is required")
	validator.Required(FieldID, string(member.ID))

	return validateContent(validator, member).Err()
}

// UpdateMember merges patch into the stored member. Endpoint and id never change.
func (service *Service) UpdateMember(context context.Context, endpoint string, patch Patch) (*Member, error) {
	existing, err := service.repo.GetMember(context, endpoint)
	if err != nil {
		return nil, err
	}

	merged := patch.Apply(existing)

	if err := validateContent(&validate.Validator{}, merged).Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateMember(context, merged); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "developer_updated", slog.String("endpoint", endpoint))

	return service.GetMember(context, endpoint)
}

// DeleteMember removes the member. Projects still listing the endpoint keep
// the dangling reference.
func (service *Service) DeleteMember(context context.Context, endpoint string) error {
	if err := service.repo.DeleteMember(context, endpoint); err != nil {
		return err
	}

	service.logger.WarnContext(context, "developer_deleted", slog.String("endpoint", endpoint))
	return nil
}

// Exists reports whether a member with endpoint is stored.
func (service *Service) Exists(context context.Context, endpoint string) (bool, error) {
	_, err := service.repo.GetMember(context, endpoint)
	if err == ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (service *Service) membership(context context.Context) (map[string][]string, error) {
	if service.index == nil {
		return map[string][]string{}, nil
	}
	return service.index.DeveloperIndex(context)
}

// validateContent checks the rules shared by create and update.
func validateContent(validator *validate.Validator, member *Member) *validate.Validator {
	for _, key := range member.Name.Keys() {
		value, _ := member.Name.Get(key)
		validator.MaxLen(FieldName, value, maxNameLen)
	}
	for _, key := range member.Description.Keys() {
		value, _ := member.Description.Get(key)
		validator.MaxLen(FieldDescription, value, maxDescriptionLen)
	}
	for _, nickname := range member.Nicknames {
		validator.MaxLen(FieldNickname, nickname, maxNicknameLen)
	}

	validator.NonNegative(FieldAge, member.Age).MaxLen("post", member.Post, maxPostLen)

	if member.Contacts.Email != "" {
		validator.Email(FieldEmail, member.Contacts.Email)
	}
	return validator
}
