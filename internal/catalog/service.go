package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/logger"
	"github.com/eon-online/eon-server/internal/repository"
)

// Service defines the interface for item catalog operations.
// Definitions are immutable once loaded; Lookup and List hand out copies.
type Service interface {
	Seed(ctx context.Context) error
	Reload(ctx context.Context) error
	Lookup(itemID string) (*domain.ItemDefinition, error)
	List() []domain.ItemDefinition
}

type service struct {
	repo repository.Item

	mu   sync.RWMutex
	defs map[string]domain.ItemDefinition
}

// NewService creates a new catalog service
func NewService(repo repository.Item) Service {
	return &service{
		repo: repo,
		defs: make(map[string]domain.ItemDefinition),
	}
}

// Seed inserts the default item definitions. Idempotent: a non-empty
// definitions table means the catalog was already seeded and nothing happens.
func (s *service) Seed(ctx context.Context) error {
	log := logger.FromContext(ctx)

	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count item definitions: %w", err)
	}
	if count > 0 {
		log.Info(LogMsgCatalogAlreadySeeded, "definitions", count)
		return nil
	}

	for _, def := range DefaultDefinitions() {
		if err := s.repo.Insert(ctx, def); err != nil {
			return fmt.Errorf("failed to seed item definition %s: %w", def.ID, err)
		}
	}

	log.Info(LogMsgCatalogSeeded, "definitions", len(DefaultDefinitions()))
	return nil
}

// Reload replaces the in-memory catalog with the database contents
func (s *service) Reload(ctx context.Context) error {
	defs, err := s.repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load item definitions: %w", err)
	}

	byID := make(map[string]domain.ItemDefinition, len(defs))
	for _, def := range defs {
		byID[def.ID] = def
	}

	s.mu.Lock()
	s.defs = byID
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "definitions", len(byID))
	return nil
}

// Lookup returns a copy of the definition for the item id
func (s *service) Lookup(itemID string) (*domain.ItemDefinition, error) {
	s.mu.RLock()
	def, ok := s.defs[itemID]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	return &def, nil
}

// List returns all definitions sorted by item id
func (s *service) List() []domain.ItemDefinition {
	s.mu.RLock()
	defs := make([]domain.ItemDefinition, 0, len(s.defs))
	for _, def := range s.defs {
		defs = append(defs, def)
	}
	s.mu.RUnlock()

	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}
