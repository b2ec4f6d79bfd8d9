// Copyright (c) 2026 Folio. All rights reserved.

package api

import (
	"log/slog"

	"github.com/folioworks/folio/internal/core/article"
	"github.com/folioworks/folio/internal/core/flag"
	"github.com/folioworks/folio/internal/core/media"
	"github.com/folioworks/folio/internal/core/project"
	"github.com/folioworks/folio/internal/core/staff"
	"github.com/folioworks/folio/internal/core/team"
	"github.com/folioworks/folio/internal/platform/config"
	"github.com/folioworks/folio/internal/platform/middleware"
)

// Stores are the storage backends chosen by the storage and media drivers.
type Stores struct {
	Staff    staff.Repository
	Projects project.Repository
	Articles article.Repository
	Objects  media.ObjectStore
	Uploads  media.Registry

	// Checks run on /ready.
	Checks []Check
}

// NewHandlers wires services and handlers over the given stores.
func NewHandlers(cfg *config.Config, stores Stores, flags *flag.Table, log *slog.Logger) Handlers {
	guard := middleware.RequireAPIKey(cfg.APIKey)

	projectService := project.NewService(stores.Projects, log)
	staffService := staff.NewService(stores.Staff, projectService, log)
	articleService := article.NewService(stores.Articles, log)
	teamService := team.NewService(staffService, projectService, log)
	mediaService := media.NewService(stores.Objects, stores.Uploads, staffService, projectService, cfg.MediaPublicPrefix, log)

	liveness, readiness := NewHealthHandlers(stores.Checks, log)

	return Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		SiteConfig: NewSiteConfigHandler(cfg),
		Staff:      staff.NewHandler(staffService, flags, guard),
		Projects:   project.NewHandler(projectService, guard),
		Articles:   article.NewHandler(articleService, guard),
		Team:       team.NewHandler(teamService, flags),
		Media:      media.NewHandler(mediaService, guard, cfg.UploadMaxBytes),
		Guard:      guard,
	}
}
