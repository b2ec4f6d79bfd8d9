// Copyright (c) 2026 Folio. All rights reserved.

package legacy

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioworks/folio/internal/core/project"
	"github.com/folioworks/folio/internal/core/staff"
	"github.com/folioworks/folio/pkg/locale"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func named(name string) locale.Text {
	return locale.NewText("en", name)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func legacyTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "staff", "alice", "values.json"), `{
		"endpoint": "alice",
		"name": {"en-EN": "Alice", "ru-RU": "Алиса"},
		"nicknames": ["al"],
		"age": 27,
		"country": "russia",
		"languages": ["Russian"],
		"post": "Engineer",
		"description": {"en-EN": "Backend"},
		"contacts": {"github": "https://github.com/alice"},
		"projects": ["stale"],
		"colors": {"color1": "#fff", "color2": "#000", "color_main": "#f00"}
	}`)
	writeFile(t, filepath.Join(dir, "staff", "bob marley", "values.json"), `{"name": {"en": "Bob"}}`)
	writeFile(t, filepath.Join(dir, "staff", "broken", "values.json"), `{not json`)
	writeFile(t, filepath.Join(dir, "staff", "README.md"), `ignored`)

	writeFile(t, filepath.Join(dir, "projects.json"), `{
		"project_endpoints": ["folio", "missing", "../escape"],
		"colors": {"color1": "#fff", "color2": "#000", "color_main": "#f00"}
	}`)
	writeFile(t, filepath.Join(dir, "projects", "values", "folio.json"), `{
		"endpoint": "ignored",
		"name": "Folio",
		"tags": ["web"],
		"description": {"en-EN": "Site"},
		"developers": ["alice", "bob"]
	}`)
	return dir
}

func TestLoad(t *testing.T) {
	snapshot, err := Load(legacyTree(t), discard)
	require.NoError(t, err)

	require.Len(t, snapshot.Members, 2)
	alice, bob := snapshot.Members[0], snapshot.Members[1]

	assert.Equal(t, "alice", alice.Endpoint)
	assert.Equal(t, staff.ExternalID("alice"), alice.ID)
	assert.Equal(t, "Alice", alice.Name.Resolve("en"))
	assert.Nil(t, alice.Projects)

	assert.Equal(t, "bob-marley", bob.Endpoint)
	assert.Equal(t, []string{}, bob.Nicknames)

	require.Len(t, snapshot.Projects, 1)
	assert.Equal(t, "folio", snapshot.Projects[0].Endpoint)
	assert.Equal(t, []string{"alice", "bob"}, snapshot.Projects[0].Developers)
}

func TestLoad_EmptyTree(t *testing.T) {
	snapshot, err := Load(t.TempDir(), discard)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Members)
	assert.Empty(t, snapshot.Projects)

	_, err = Load(filepath.Join(t.TempDir(), "absent"), discard)
	assert.Error(t, err)
}

func TestSeed_Upserts(t *testing.T) {
	ctx := context.Background()
	members := staff.NewMemoryRepository()
	projects := project.NewMemoryRepository()

	snapshot, err := Load(legacyTree(t), discard)
	require.NoError(t, err)

	report, err := Seed(ctx, snapshot, members, projects, discard)
	require.NoError(t, err)
	assert.Equal(t, Report{MembersCreated: 2, ProjectsCreated: 1}, report)

	snapshot.Members[0].Post = "Lead"
	report, err = Seed(ctx, snapshot, members, projects, discard)
	require.NoError(t, err)
	assert.Equal(t, Report{MembersUpdated: 2, ProjectsUpdated: 1}, report)

	alice, err := members.GetMember(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Lead", alice.Post)
}

func TestSeed_SkipsRejected(t *testing.T) {
	ctx := context.Background()
	members := staff.NewMemoryRepository()
	require.NoError(t, members.CreateMember(ctx, &staff.Member{ID: "alice", Endpoint: "someone-else", Name: named("Someone")}))

	snapshot := &Snapshot{Members: []*staff.Member{{ID: "alice", Endpoint: "alice", Name: named("Alice")}}}

	report, err := Seed(ctx, snapshot, members, project.NewMemoryRepository(), discard)
	require.NoError(t, err)
	assert.Equal(t, Report{Skipped: 1}, report)
}

func TestSeed_SkipsInvalid(t *testing.T) {
	ctx := context.Background()
	members := staff.NewMemoryRepository()
	projects := project.NewMemoryRepository()

	snapshot := &Snapshot{
		Members: []*staff.Member{
			{ID: "nameless", Endpoint: "nameless"},
			{ID: "bad", Endpoint: "Not A Slug", Name: named("Bad")},
			{ID: "carol", Endpoint: "carol", Name: named("Carol")},
		},
		Projects: []*project.Project{
			{Endpoint: "unnamed", Name: "  "},
			{Endpoint: "atlas", Name: "Atlas"},
		},
	}

	report, err := Seed(ctx, snapshot, members, projects, discard)
	require.NoError(t, err)
	assert.Equal(t, Report{MembersCreated: 1, ProjectsCreated: 1, Skipped: 3}, report)

	_, err = members.GetMember(ctx, "nameless")
	assert.ErrorIs(t, err, staff.ErrNotFound)
	_, err = projects.GetProject(ctx, "unnamed")
	assert.ErrorIs(t, err, project.ErrNotFound)
}

// idFirstRepository reports a duplicate id before a duplicate endpoint, the
// way a primary-key violation surfaces from Postgres.
type idFirstRepository struct {
	*staff.MemoryRepository
	ids map[staff.ExternalID]bool
}

func (repository idFirstRepository) CreateMember(ctx context.Context, member *staff.Member) error {
	if repository.ids[member.ID] {
		return staff.ErrIDTaken
	}
	if err := repository.MemoryRepository.CreateMember(ctx, member); err != nil {
		return err
	}
	repository.ids[member.ID] = true
	return nil
}

func TestSeed_SameRecordIDCollisionUpdates(t *testing.T) {
	ctx := context.Background()
	members := idFirstRepository{MemoryRepository: staff.NewMemoryRepository(), ids: map[staff.ExternalID]bool{}}

	member := &staff.Member{ID: "alice", Endpoint: "alice", Name: named("Alice"), Post: "Engineer"}
	report, err := Seed(ctx, &Snapshot{Members: []*staff.Member{member}}, members, project.NewMemoryRepository(), discard)
	require.NoError(t, err)
	assert.Equal(t, Report{MembersCreated: 1}, report)

	again := &staff.Member{ID: "alice", Endpoint: "alice", Name: named("Alice"), Post: "Lead"}
	report, err = Seed(ctx, &Snapshot{Members: []*staff.Member{again}}, members, project.NewMemoryRepository(), discard)
	require.NoError(t, err)
	assert.Equal(t, Report{MembersUpdated: 1}, report)

	stored, err := members.GetMember(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Lead", stored.Post)
}

func TestSeed_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snapshot := &Snapshot{Members: []*staff.Member{{ID: "a", Endpoint: "a", Name: named("A")}}}
	_, err := Seed(ctx, snapshot, staff.NewMemoryRepository(), project.NewMemoryRepository(), discard)
	assert.ErrorIs(t, err, context.Canceled)
}
