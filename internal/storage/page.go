package storage

import (
	"fmt"
	"sort"
	"sync"

	"sitebuilder/internal/domain"
)

// PageStore implements domain.PageStore in memory.
type PageStore struct {
	mu    sync.RWMutex
	pages map[int]*domain.Page
}

func NewPageStore() *PageStore {
	return &PageStore{pages: make(map[int]*domain.Page)}
}

func (s *PageStore) CreatePage(p *domain.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.pages[p.ID]; exists {
		return fmt.Errorf("create page %d: %w", p.ID, domain.ErrDuplicateID)
	}
	stored := p.Clone()
	s.pages[p.ID] = &stored
	return nil
}

func (s *PageStore) GetPage(id int) (*domain.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pages[id]
	if !ok {
		return nil, fmt.Errorf("get page %d: %w", id, domain.ErrPageNotFound)
	}
	out := p.Clone()
	return &out, nil
}

// ListPages returns all pages ordered by id.
func (s *PageStore) ListPages() []domain.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Page, 0, len(s.pages))
	for _, p := range s.pages {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *PageStore) UpdatePage(p *domain.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pages[p.ID]; !ok {
		return fmt.Errorf("update page %d: %w", p.ID, domain.ErrPageNotFound)
	}
	stored := p.Clone()
	s.pages[p.ID] = &stored
	return nil
}

func (s *PageStore) CountPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pages)
}
