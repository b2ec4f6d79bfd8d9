// Copyright (c) 2026 Folio. All rights reserved.

package article

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository keeps articles in process memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	articles map[string]*Article
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{articles: make(map[string]*Article)}
}

func (repository *MemoryRepository) ListArticles(_ context.Context) ([]*Article, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	articles := make([]*Article, 0, len(repository.articles))
	for _, article := range repository.articles {
		articles = append(articles, article.Clone())
	}

	sortNewestFirst(articles)
	return articles, nil
}

func (repository *MemoryRepository) GetArticle(_ context.Context, id string) (*Article, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	article, exists := repository.articles[id]
	if !exists {
		return nil, ErrNotFound
	}
	return article.Clone(), nil
}

func (repository *MemoryRepository) CreateArticle(_ context.Context, article *Article) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.articles[article.ID]; exists {
		return ErrIDTaken
	}
	repository.articles[article.ID] = article.Clone()
	return nil
}

func (repository *MemoryRepository) UpdateArticle(_ context.Context, article *Article) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.articles[article.ID]; !exists {
		return ErrNotFound
	}
	repository.articles[article.ID] = article.Clone()
	return nil
}

func (repository *MemoryRepository) DeleteArticle(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.articles[id]; !exists {
		return ErrNotFound
	}
	delete(repository.articles, id)
	return nil
}

// sortNewestFirst orders by publishedAt descending, then id ascending.
func sortNewestFirst(articles []*Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		if !articles[i].PublishedAt.Equal(articles[j].PublishedAt) {
			return articles[i].PublishedAt.After(articles[j].PublishedAt)
		}
		return articles[i].ID < articles[j].ID
	})
}
