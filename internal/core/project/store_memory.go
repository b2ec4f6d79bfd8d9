// Copyright (c) 2026 Folio. All rights reserved.

package project

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository keeps projects in process memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	projects map[string]*Project
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{projects: make(map[string]*Project)}
}

func (repository *MemoryRepository) ListProjects(_ context.Context) ([]*Project, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	projects := make([]*Project, 0, len(repository.projects))
	for _, project := range repository.projects {
		projects = append(projects, project.Clone())
	}

	sort.Slice(projects, func(i, j int) bool { return projects[i].Endpoint < projects[j].Endpoint })
	return projects, nil
}

func (repository *MemoryRepository) GetProject(_ context.Context, endpoint string) (*Project, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	project, exists := repository.projects[endpoint]
	if !exists {
		return nil, ErrNotFound
	}
	return project.Clone(), nil
}

func (repository *MemoryRepository) CreateProject(_ context.Context, project *Project) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.projects[project.Endpoint]; exists {
		return ErrEndpointTaken
	}
	repository.projects[project.Endpoint] = project.Clone()
	return nil
}

func (repository *MemoryRepository) UpdateProject(_ context.Context, project *Project) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.projects[project.Endpoint]; !exists {
		return ErrNotFound
	}
	repository.projects[project.Endpoint] = project.Clone()
	return nil
}

func (repository *MemoryRepository) DeleteProject(_ context.Context, endpoint string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.projects[endpoint]; !exists {
		return ErrNotFound
	}
	delete(repository.projects, endpoint)
	return nil
}
