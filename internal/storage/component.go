package storage

import (
	"fmt"
	"sync"

	"sitebuilder/internal/domain"
)

// ComponentStore implements domain.ComponentStore in memory. Components are
// kept in insertion order; callers always receive copies.
type ComponentStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*domain.PlacedComponent
}

func NewComponentStore() *ComponentStore {
	return &ComponentStore{byID: make(map[string]*domain.PlacedComponent)}
}

func (s *ComponentStore) CreateComponent(c *domain.PlacedComponent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		return fmt.Errorf("create component: empty id")
	}
	if _, exists := s.byID[c.ID]; exists {
		return fmt.Errorf("create component %s: %w", c.ID, domain.ErrDuplicateID)
	}
	stored := c.Clone()
	s.byID[c.ID] = &stored
	s.order = append(s.order, c.ID)
	return nil
}

func (s *ComponentStore) GetComponent(id string) (*domain.PlacedComponent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("get component %s: %w", id, domain.ErrComponentNotFound)
	}
	out := c.Clone()
	return &out, nil
}

func (s *ComponentStore) ListComponents() []domain.PlacedComponent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.PlacedComponent, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].Clone())
	}
	return out
}

func (s *ComponentStore) UpdateComponent(c *domain.PlacedComponent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[c.ID]; !ok {
		return fmt.Errorf("update component %s: %w", c.ID, domain.ErrComponentNotFound)
	}
	stored := c.Clone()
	s.byID[c.ID] = &stored
	return nil
}

func (s *ComponentStore) DeleteComponent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return fmt.Errorf("delete component %s: %w", id, domain.ErrComponentNotFound)
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
