// Copyright (c) 2026 Folio. All rights reserved.

package api

import (
	"net/http"

	"github.com/folioworks/folio/internal/platform/config"
	"github.com/folioworks/folio/internal/platform/respond"
)

// SiteConfig is the frontend's view of the deployment.
type SiteConfig struct {
	Subdomens bool `json:"subdomens"`
	Debug     bool `json:"debug"`
}

// NewSiteConfigHandler serves GET /config.
func NewSiteConfigHandler(cfg *config.Config) http.HandlerFunc {
	site := SiteConfig{Subdomens: cfg.Subdomens, Debug: cfg.Debug}
	return func(writer http.ResponseWriter, _ *http.Request) {
		respond.OK(writer, site)
	}
}
