// Copyright (c) 2026 Folio. All rights reserved.

package staff

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository keeps members in process memory. Values are copied on the
// way in and out so callers never share state with the store.
type MemoryRepository struct {
	mu      sync.RWMutex
	members map[string]*Member // endpoint -> member
	ids     map[ExternalID]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		members: make(map[string]*Member),
		ids:     make(map[ExternalID]string),
	}
}

func (repository *MemoryRepository) ListMembers(_ context.Context) ([]*Member, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	members := make([]*Member, 0, len(repository.members))
	for _, member := range repository.members {
		members = append(members, member.Clone())
	}

	sort.Slice(members, func(i, j int) bool { return members[i].Endpoint < members[j].Endpoint })
	return members, nil
}

func (repository *MemoryRepository) GetMember(_ context.Context, endpoint string) (*Member, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	member, exists := repository.members[endpoint]
	if !exists {
		return nil, ErrNotFound
	}
	return member.Clone(), nil
}

func (repository *MemoryRepository) CreateMember(_ context.Context, member *Member) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.members[member.Endpoint]; exists {
		return ErrEndpointTaken
	}
	if _, exists := repository.ids[member.ID]; exists {
		return ErrIDTaken
	}

	stored := member.Clone()
	stored.Projects = nil
	repository.members[member.Endpoint] = stored
	repository.ids[member.ID] = member.Endpoint
	return nil
}

func (repository *MemoryRepository) UpdateMember(_ context.Context, member *Member) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, exists := repository.members[member.Endpoint]
	if !exists {
		return ErrNotFound
	}

	stored := member.Clone()
	stored.ID = existing.ID
	stored.Projects = nil
	repository.members[member.Endpoint] = stored
	return nil
}

func (repository *MemoryRepository) DeleteMember(_ context.Context, endpoint string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, exists := repository.members[endpoint]
	if !exists {
		return ErrNotFound
	}

	delete(repository.ids, existing.ID)
	delete(repository.members, endpoint)
	return nil
}
