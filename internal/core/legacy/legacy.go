// Copyright (c) 2026 Folio. All rights reserved.

/*
Package legacy reads the directory tree the site used before it had a
database, and seeds repositories from it.

Layout under the data directory:

	staff/<dir>/values.json            one staff member per directory
	projects.json                      {"project_endpoints": [...]}
	projects/values/<endpoint>.json    one project per listed endpoint

A broken entry is logged and skipped; it never aborts the scan.
*/
package legacy

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/folioworks/folio/internal/core/project"
	"github.com/folioworks/folio/internal/core/staff"
	"github.com/folioworks/folio/pkg/slice"
	"github.com/folioworks/folio/pkg/slug"
)

// Snapshot is everything read from a legacy tree.
type Snapshot struct {
	Members  []*staff.Member
	Projects []*project.Project
}

type projectsConfig struct {
	ProjectEndpoints []string `json:"project_endpoints"`
}

// Load scans dir. Missing sections are logged and yield empty lists.
func Load(dir string, logger *slog.Logger) (*Snapshot, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("legacy: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("legacy: %s is not a directory", dir)
	}

	return &Snapshot{
		Members:  loadStaff(dir, logger),
		Projects: loadProjects(dir, logger),
	}, nil
}

func loadStaff(dir string, logger *slog.Logger) []*staff.Member {
	root := filepath.Join(dir, "staff")

	entries, err := os.ReadDir(root)
	if err != nil {
		logger.Warn("legacy_staff_skipped", slog.String("path", root), slog.String("error", err.Error()))
		return []*staff.Member{}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	members := []*staff.Member{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(root, entry.Name(), "values.json")

		var member staff.Member
		if err := readJSON(path, &member); err != nil {
			logger.Error("legacy_staff_invalid", slog.String("path", path), slog.String("error", err.Error()))
			continue
		}

		member.Endpoint = strings.TrimSpace(member.Endpoint)
		if member.Endpoint == "" {
			member.Endpoint = slug.From(entry.Name())
		}
		// The legacy tree has no external ids
		if member.ID == "" {
			member.ID = staff.ExternalID(member.Endpoint)
		}
		member.Nicknames = slice.OrEmpty(member.Nicknames)
		member.Languages = slice.OrEmpty(member.Languages)
		member.Projects = nil

		members = append(members, &member)
	}
	return members
}

func loadProjects(dir string, logger *slog.Logger) []*project.Project {
	configPath := filepath.Join(dir, "projects.json")

	var config projectsConfig
	if err := readJSON(configPath, &config); err != nil {
		logger.Warn("legacy_projects_skipped", slog.String("path", configPath), slog.String("error", err.Error()))
		return []*project.Project{}
	}

	projects := []*project.Project{}
	for _, endpoint := range config.ProjectEndpoints {
		if endpoint == "" || strings.ContainsAny(endpoint, `/\`) {
			logger.Error("legacy_project_invalid", slog.String("endpoint", endpoint))
			continue
		}

		path := filepath.Join(dir, "projects", "values", endpoint+".json")

		var entry project.Project
		if err := readJSON(path, &entry); err != nil {
			logger.Error("legacy_project_invalid", slog.String("path", path), slog.String("error", err.Error()))
			continue
		}

		entry.Endpoint = endpoint
		entry.Tags = slice.OrEmpty(entry.Tags)
		entry.Developers = slice.OrEmpty(entry.Developers)
		projects = append(projects, &entry)
	}
	return projects
}

func readJSON(path string, target any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return errors.New("empty file")
	}
	return json.Unmarshal(raw, target)
}
