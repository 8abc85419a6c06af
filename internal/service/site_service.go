package service

import (
	"context"
	"fmt"
	"sync"

	"sitebuilder/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Site Service — site settings and the builder's page list
// ─────────────────────────────────────────────────────────────

// DefaultBuilderPages are the pages listed in the builder before the user
// adds any.
var DefaultBuilderPages = []string{"Home", "About", "Contact"}

// SiteService holds the settings of the site being built and the page names
// shown in the builder's page menu. Everything lives in memory.
type SiteService struct {
	mu       sync.Mutex
	settings domain.SiteSettings
	pages    []string
	next     int
	emitter  EventEmitter
}

// NewSiteService creates a SiteService with default settings.
func NewSiteService(emitter EventEmitter) *SiteService {
	if emitter == nil {
		panic("site service: nil event emitter")
	}
	return &SiteService{
		settings: domain.SiteSettings{Theme: domain.ThemeSystem},
		pages:    append([]string(nil), DefaultBuilderPages...),
		next:     len(DefaultBuilderPages) + 1,
		emitter:  emitter,
	}
}

// Settings returns the current site settings.
func (s *SiteService) Settings() domain.SiteSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings applies patch. An unknown theme rejects the whole patch.
func (s *SiteService) UpdateSettings(ctx context.Context, patch domain.SiteSettingsPatch) (domain.SiteSettings, error) {
	if patch.Theme != nil && !patch.Theme.Valid() {
		return s.Settings(), fmt.Errorf("update settings: theme %q: %w", *patch.Theme, domain.ErrInvalidTheme)
	}
	s.mu.Lock()
	if patch.Title != nil {
		s.settings.Title = *patch.Title
	}
	if patch.Description != nil {
		s.settings.Description = *patch.Description
	}
	if patch.Theme != nil {
		s.settings.Theme = *patch.Theme
	}
	out := s.settings
	s.mu.Unlock()

	s.emitter.Emit(ctx, EventSettingsChanged, out)
	return out, nil
}

// ListPages returns the builder page names in menu order.
func (s *SiteService) ListPages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.pages...)
}

// AddPage appends "Page N", N counting up from one past the default pages.
func (s *SiteService) AddPage(ctx context.Context) string {
	s.mu.Lock()
	name := fmt.Sprintf("Page %d", s.next)
	s.pages = append(s.pages, name)
	s.next++
	s.mu.Unlock()

	s.emitter.Emit(ctx, EventSettingsChanged, map[string]string{"pageAdded": name})
	return name
}
