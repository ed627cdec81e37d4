package inventory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/repository"
)

// fakeRepository is an in-memory repository.Inventory for service tests.
// Transactions mutate the shared state directly; the per-owner lock taken by
// LockOwner is a real mutex held until the transaction finishes, so
// concurrency tests exercise the same serialization the database provides.
type fakeRepository struct {
	mu         sync.Mutex
	entries    map[int64]*domain.InventoryEntry
	players    map[string]*domain.Player
	ownerLocks map[string]*sync.Mutex
	nextID     int64
	commits    int
	rollbacks  int
	listErr    error
	commitErr  error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		entries:    make(map[int64]*domain.InventoryEntry),
		players:    make(map[string]*domain.Player),
		ownerLocks: make(map[string]*sync.Mutex),
		nextID:     1,
	}
}

func (f *fakeRepository) addPlayer(id string, health, maxHealth float32) {
	f.players[id] = &domain.Player{ID: id, Health: health, MaxHealth: maxHealth}
}

func (f *fakeRepository) ownerLock(ownerID string) *sync.Mutex {
	f.mu.Lock()
	defer f.mu.Unlock()
	mu, ok := f.ownerLocks[ownerID]
	if !ok {
		mu = &sync.Mutex{}
		f.ownerLocks[ownerID] = mu
	}
	return mu
}

func (f *fakeRepository) ListEntries(ctx context.Context, ownerID string) ([]domain.InventoryEntry, error) {
	return f.list(ownerID)
}

func (f *fakeRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	return &fakeTx{repo: f}, nil
}

func (f *fakeRepository) list(ownerID string) ([]domain.InventoryEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.InventoryEntry
	for _, e := range f.entries {
		if e.OwnerID == ownerID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SlotIndex < out[j].SlotIndex })
	return out, nil
}

type fakeTx struct {
	repo      *fakeRepository
	held      []*sync.Mutex
	committed bool
	done      bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.repo.commitErr != nil {
		return t.repo.commitErr
	}
	t.committed = true
	t.repo.commits++
	t.release()
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.repo.rollbacks++
	}
	t.release()
	return nil
}

func (t *fakeTx) release() {
	if t.done {
		return
	}
	t.done = true
	for _, mu := range t.held {
		mu.Unlock()
	}
	t.held = nil
}

func (t *fakeTx) LockOwner(ctx context.Context, ownerID string) error {
	mu := t.repo.ownerLock(ownerID)
	mu.Lock()
	t.held = append(t.held, mu)
	return nil
}

func (t *fakeTx) ListEntriesForUpdate(ctx context.Context, ownerID string) ([]domain.InventoryEntry, error) {
	return t.repo.list(ownerID)
}

func (t *fakeTx) GetEntryForUpdate(ctx context.Context, entryID int64) (*domain.InventoryEntry, error) {
	e, ok := t.repo.entries[entryID]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	copied := *e
	return &copied, nil
}

func (t *fakeTx) InsertEntry(ctx context.Context, entry *domain.InventoryEntry) (int64, error) {
	id := t.repo.nextID
	t.repo.nextID++
	entry.EntryID = id
	copied := *entry
	t.repo.entries[id] = &copied
	return id, nil
}

func (t *fakeTx) UpdateEntryQuantity(ctx context.Context, entryID int64, quantity int) error {
	e, ok := t.repo.entries[entryID]
	if !ok {
		return domain.ErrEntryNotFound
	}
	e.Quantity = quantity
	return nil
}

func (t *fakeTx) UpdateEntrySlot(ctx context.Context, entryID int64, slot int) error {
	e, ok := t.repo.entries[entryID]
	if !ok {
		return domain.ErrEntryNotFound
	}
	e.SlotIndex = slot
	return nil
}

func (t *fakeTx) DeleteEntry(ctx context.Context, entryID int64) error {
	if _, ok := t.repo.entries[entryID]; !ok {
		return domain.ErrEntryNotFound
	}
	delete(t.repo.entries, entryID)
	return nil
}

func (t *fakeTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	p, ok := t.repo.players[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	copied := *p
	return &copied, nil
}

func (t *fakeTx) UpdatePlayerHealth(ctx context.Context, playerID string, health float32, at time.Time) error {
	p, ok := t.repo.players[playerID]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	p.Health = health
	p.LastUpdate = at
	return nil
}

// stubCatalog serves a fixed set of definitions
type stubCatalog struct {
	defs map[string]domain.ItemDefinition
}

func newStubCatalog(defs ...domain.ItemDefinition) *stubCatalog {
	byID := make(map[string]domain.ItemDefinition, len(defs))
	for _, d := range defs {
		byID[d.ID] = d
	}
	return &stubCatalog{defs: byID}
}

func (c *stubCatalog) Lookup(itemID string) (*domain.ItemDefinition, error) {
	def, ok := c.defs[itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &def, nil
}
