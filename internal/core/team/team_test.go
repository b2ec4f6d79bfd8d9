// Copyright (c) 2026 Folio. All rights reserved.

package team

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioworks/folio/internal/core/flag"
	"github.com/folioworks/folio/internal/core/project"
	"github.com/folioworks/folio/internal/core/staff"
	"github.com/folioworks/folio/pkg/locale"
)

type fixture struct {
	staff    *staff.Service
	projects *project.Service
	team     *Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	projects := project.NewService(project.NewMemoryRepository(), logger)
	members := staff.NewService(staff.NewMemoryRepository(), projects, logger)

	for _, endpoint := range []string{"alice", "bob"} {
		_, err := members.CreateMember(ctx, &staff.Member{
			ID:       staff.ExternalID("id-" + endpoint),
			Endpoint: endpoint,
			Name:     locale.NewText("en", endpoint),
		})
		require.NoError(t, err)
	}

	for endpoint, developers := range map[string][]string{
		"folio": {"bob", "alice", "ghost"},
		"atlas": {"alice"},
		"solo":  {},
	} {
		_, err := projects.CreateProject(ctx, &project.Project{Endpoint: endpoint, Name: endpoint, Developers: developers})
		require.NoError(t, err)
	}

	return fixture{staff: members, projects: projects, team: NewService(members, projects, logger)}
}

func endpoints[T any](items []T, key func(T) string) []string {
	out := []string{}
	for _, item := range items {
		out = append(out, key(item))
	}
	return out
}

func TestProjectsOf(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	projects, err := f.team.ProjectsOf(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"atlas", "folio"}, endpoints(projects, func(p *project.Project) string { return p.Endpoint }))

	projects, err = f.team.ProjectsOf(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, projects)
	assert.NotNil(t, projects)
}

func TestDevelopersOf_SkipsDangling(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	members, err := f.team.DevelopersOf(ctx, "folio")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "alice"}, endpoints(members, func(m *staff.Member) string { return m.Endpoint }))

	_, err = f.team.DevelopersOf(ctx, "missing")
	assert.ErrorIs(t, err, project.ErrNotFound)
}

func TestDeletedStaff_KeepsProjectReference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.staff.DeleteMember(ctx, "alice"))

	folio, err := f.projects.GetProject(ctx, "folio")
	require.NoError(t, err)
	assert.Contains(t, folio.Developers, "alice")

	members, err := f.team.DevelopersOf(ctx, "folio")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, endpoints(members, func(m *staff.Member) string { return m.Endpoint }))

	_, err = f.staff.GetMember(ctx, "alice")
	assert.ErrorIs(t, err, staff.ErrNotFound)

	projects, err := f.team.ProjectsOf(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, projects)
	assert.NotNil(t, projects)
}

func TestProjectsOf_DanglingEndpoint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	folio, err := f.projects.GetProject(ctx, "folio")
	require.NoError(t, err)
	require.Contains(t, folio.Developers, "ghost")

	projects, err := f.team.ProjectsOf(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestStaffProjectsDerived(t *testing.T) {
	f := newFixture(t)

	member, err := f.staff.GetMember(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"atlas", "folio"}, member.Projects)
}

func TestHandler_Routes(t *testing.T) {
	f := newFixture(t)
	handler := NewHandler(f.team, flag.Default())

	router := chi.NewRouter()
	router.Route("/developers", handler.RegisterStaffRoutes)
	router.Route("/projects", handler.RegisterProjectRoutes)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/developers/bob/projects?lang=en", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var projects struct {
		Data []project.View `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &projects))
	require.Len(t, projects.Data, 1)
	assert.Equal(t, "folio", projects.Data[0].Endpoint)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/projects/solo/developers", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data": []}`, recorder.Body.String())

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/projects/missing/developers", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
