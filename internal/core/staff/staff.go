// Copyright (c) 2026 Folio. All rights reserved.

/*
Package staff manages the developer (staff member) records of the site.

Project membership is never stored on a member. It is derived at read time
from the projects' developer lists through a [MembershipIndex].
*/
package staff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/folioworks/folio/internal/platform/apperr"
	"github.com/folioworks/folio/pkg/locale"
	"github.com/folioworks/folio/pkg/slice"
)

// Member is a staff member as stored and returned by the raw API.
type Member struct {
	// ID is the opaque external identifier (a messaging-platform id). Immutable.
	ID ExternalID `json:"id"`
	// Endpoint is the public key and the photo namespace. Immutable.
	Endpoint    string      `json:"endpoint"`
	Name        locale.Text `json:"name"`
	Nicknames   []string    `json:"nicknames"`
	Age         int         `json:"age"`
	Country     string      `json:"country"`
	Languages   []string    `json:"languages"`
	Post        string      `json:"post"`
	Description locale.Text `json:"description"`
	Contacts    Contacts    `json:"contacts"`

	// Projects is derived from project developer lists; never persisted.
	Projects []string `json:"projects"`
}

// Contacts holds the optional public contact handles of a member.
type Contacts struct {
	Email           string `json:"email,omitempty"`
	TelegramChannel string `json:"telegram_channel,omitempty"`
	GitHub          string `json:"github,omitempty"`
	X               string `json:"x,omitempty"`
}

// PrimaryNickname returns the first nickname, or "" when there is none.
func (m *Member) PrimaryNickname() string {
	if len(m.Nicknames) == 0 {
		return ""
	}
	return m.Nicknames[0]
}

// Clone returns a deep copy.
func (m *Member) Clone() *Member {
	out := *m
	out.Name = m.Name.Clone()
	out.Description = m.Description.Clone()
	out.Nicknames = slice.Clone(m.Nicknames)
	out.Languages = slice.Clone(m.Languages)
	out.Projects = slice.Clone(m.Projects)
	return &out
}

// # External Identifier

// ExternalID is an opaque identifier that clients may send as a JSON string
// or a JSON number. It is always stored and returned as a string.
type ExternalID string

// UnmarshalJSON accepts "123", 123 and null.
func (id *ExternalID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	if bytes.Equal(trimmed, []byte("null")) {
		*id = ""
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*id = ExternalID(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(trimmed, &number); err != nil {
		return fmt.Errorf("staff: id must be a string or a number")
	}
	if _, err := strconv.ParseInt(number.String(), 10, 64); err != nil {
		return fmt.Errorf("staff: numeric id must be an integer")
	}
	*id = ExternalID(number.String())
	return nil
}

// # Partial Update

// ContactsPatch carries the contact keys present in an update payload.
// A present empty string clears the handle.
type ContactsPatch struct {
	Email           *string `json:"email"`
	TelegramChannel *string `json:"telegram_channel"`
	GitHub          *string `json:"github"`
	X               *string `json:"x"`
}

// Patch is a partial update. Nil fields are absent from the payload.
//
// Merge policy: scalars replace; Name, Description and Contacts merge key by
// key; Nicknames and Languages replace wholesale when present.
type Patch struct {
	Name        *locale.Text   `json:"name"`
	Nicknames   *[]string      `json:"nicknames"`
	Age         *int           `json:"age"`
	Country     *string        `json:"country"`
	Languages   *[]string      `json:"languages"`
	Post        *string        `json:"post"`
	Description *locale.Text   `json:"description"`
	Contacts    *ContactsPatch `json:"contacts"`
}

// Apply returns a copy of m with the patch merged in. m is not modified.
func (p Patch) Apply(m *Member) *Member {
	out := m.Clone()

	if p.Name != nil {
		out.Name = out.Name.Merge(*p.Name)
	}
	if p.Description != nil {
		out.Description = out.Description.Merge(*p.Description)
	}
	if p.Nicknames != nil {
		out.Nicknames = slice.Clone(*p.Nicknames)
	}
	if p.Languages != nil {
		out.Languages = slice.Clone(*p.Languages)
	}
	if p.Age != nil {
		out.Age = *p.Age
	}
	if p.Country != nil {
		out.Country = *p.Country
	}
	if p.Post != nil {
		out.Post = *p.Post
	}
	if p.Contacts != nil {
		out.Contacts = p.Contacts.apply(out.Contacts)
	}

	return out
}

func (p ContactsPatch) apply(c Contacts) Contacts {
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.TelegramChannel != nil {
		c.TelegramChannel = *p.TelegramChannel
	}
	if p.GitHub != nil {
		c.GitHub = *p.GitHub
	}
	if p.X != nil {
		c.X = *p.X
	}
	return c
}

// # Errors

var (
	ErrNotFound      = apperr.NotFound("Developer")
	ErrEndpointTaken = apperr.Conflict("Developer with this endpoint already exists")
	ErrIDTaken       = apperr.Conflict("Developer with this id already exists")
)

// Field names for validation
const (
	FieldID          = "id"
	FieldEndpoint    = "endpoint"
	FieldName        = "name"
	FieldAge         = "age"
	FieldEmail       = "contacts.email"
	FieldNickname    = "nicknames"
	FieldDescription = "description"
)
