// Copyright (c) 2026 Folio. All rights reserved.

package legacy

import (
	"context"
	"errors"
	"log/slog"

	"github.com/folioworks/folio/internal/core/project"
	"github.com/folioworks/folio/internal/core/staff"
)

// Report counts the outcome of a seed run.
type Report struct {
	MembersCreated  int `json:"membersCreated"`
	MembersUpdated  int `json:"membersUpdated"`
	ProjectsCreated int `json:"projectsCreated"`
	ProjectsUpdated int `json:"projectsUpdated"`
	Skipped         int `json:"skipped"`
}

// Seed upserts a snapshot: each record is created, or updated in place when
// its key already exists. Records that fail validation or are rejected by the
// store are logged and skipped. Only context cancellation aborts the run.
func Seed(ctx context.Context, snapshot *Snapshot, members staff.Repository, projects project.Repository, logger *slog.Logger) (Report, error) {
	var report Report

	for _, member := range snapshot.Members {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		updated, err := upsertMember(ctx, members, member)
		if err != nil {
			report.Skipped++
			logger.ErrorContext(ctx, "legacy_staff_rejected",
				slog.String("endpoint", member.Endpoint),
				slog.String("error", err.Error()),
			)
			continue
		}
		if updated {
			report.MembersUpdated++
		} else {
			report.MembersCreated++
		}
	}

	for _, entry := range snapshot.Projects {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		updated, err := upsertProject(ctx, projects, entry)
		if err != nil {
			report.Skipped++
			logger.ErrorContext(ctx, "legacy_project_rejected",
				slog.String("endpoint", entry.Endpoint),
				slog.String("error", err.Error()),
			)
			continue
		}
		if updated {
			report.ProjectsUpdated++
		} else {
			report.ProjectsCreated++
		}
	}

	logger.InfoContext(ctx, "legacy_seed_finished",
		slog.Int("members_created", report.MembersCreated),
		slog.Int("members_updated", report.MembersUpdated),
		slog.Int("projects_created", report.ProjectsCreated),
		slog.Int("projects_updated", report.ProjectsUpdated),
		slog.Int("skipped", report.Skipped),
	)
	return report, nil
}

// upsertMember reports whether an existing member was updated.
func upsertMember(ctx context.Context, members staff.Repository, member *staff.Member) (bool, error) {
	if err := staff.Prepare(member); err != nil {
		return false, err
	}

	err := members.CreateMember(ctx, member)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, staff.ErrEndpointTaken):
	case errors.Is(err, staff.ErrIDTaken):
		// Taken by the same record when both keys collide
		existing, getErr := members.GetMember(ctx, member.Endpoint)
		if getErr != nil || existing.ID != member.ID {
			return false, err
		}
	default:
		return false, err
	}

	if err := members.UpdateMember(ctx, member); err != nil {
		return false, err
	}
	return true, nil
}

// upsertProject reports whether an existing project was updated.
func upsertProject(ctx context.Context, projects project.Repository, entry *project.Project) (bool, error) {
	if err := project.Prepare(entry); err != nil {
		return false, err
	}

	err := projects.CreateProject(ctx, entry)
	if errors.Is(err, project.ErrEndpointTaken) {
		if err := projects.UpdateProject(ctx, entry); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, err
}
