package instance

import (
	"context"
	"sort"
	"time"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/repository"
)

// fakeState backs the fake repository. Transactions work on a deep copy and
// write it back on commit, mirroring the all-or-nothing store semantics.
type fakeState struct {
	instances     map[int64]*domain.GameInstance
	players       map[string]*domain.Player
	worldItems    map[int64]*domain.WorldItem
	interactables map[int64]*domain.Interactable
	entries       map[int64]*domain.InventoryEntry
	nextInstID    int64
	nextItemID    int64
	nextEntryID   int64
}

func newFakeState() *fakeState {
	return &fakeState{
		instances:     make(map[int64]*domain.GameInstance),
		players:       make(map[string]*domain.Player),
		worldItems:    make(map[int64]*domain.WorldItem),
		interactables: make(map[int64]*domain.Interactable),
		entries:       make(map[int64]*domain.InventoryEntry),
		nextInstID:    1,
		nextItemID:    1,
		nextEntryID:   1,
	}
}

func (s *fakeState) clone() *fakeState {
	c := newFakeState()
	c.nextInstID, c.nextItemID, c.nextEntryID = s.nextInstID, s.nextItemID, s.nextEntryID
	for id, v := range s.instances {
		copied := *v
		c.instances[id] = &copied
	}
	for id, v := range s.players {
		copied := *v
		c.players[id] = &copied
	}
	for id, v := range s.worldItems {
		copied := *v
		c.worldItems[id] = &copied
	}
	for id, v := range s.interactables {
		copied := *v
		c.interactables[id] = &copied
	}
	for id, v := range s.entries {
		copied := *v
		c.entries[id] = &copied
	}
	return c
}

type fakeRepository struct {
	state *fakeState
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{state: newFakeState()}
}

func (f *fakeRepository) addPlayer(p domain.Player) {
	copied := p
	f.state.players[p.ID] = &copied
}

func (f *fakeRepository) player(id string) *domain.Player {
	return f.state.players[id]
}

func (f *fakeRepository) entriesFor(ownerID string) []domain.InventoryEntry {
	var out []domain.InventoryEntry
	for _, e := range f.state.entries {
		if e.OwnerID == ownerID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SlotIndex < out[j].SlotIndex })
	return out
}

func (f *fakeRepository) Create(ctx context.Context, inst *domain.GameInstance) (int64, error) {
	inst.ID = f.state.nextInstID
	f.state.nextInstID++
	copied := *inst
	f.state.instances[inst.ID] = &copied
	return inst.ID, nil
}

func (f *fakeRepository) GetByID(ctx context.Context, instanceID int64) (*domain.GameInstance, error) {
	inst, ok := f.state.instances[instanceID]
	if !ok {
		return nil, domain.ErrInstanceNotFound
	}
	copied := *inst
	return &copied, nil
}

func (f *fakeRepository) List(ctx context.Context) ([]domain.GameInstance, error) {
	var out []domain.GameInstance
	for _, inst := range f.state.instances {
		out = append(out, *inst)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepository) SetState(ctx context.Context, instanceID int64, state domain.InstanceState) error {
	inst, ok := f.state.instances[instanceID]
	if !ok {
		return domain.ErrInstanceNotFound
	}
	inst.State = state
	return nil
}

func (f *fakeRepository) SpawnWorldItem(ctx context.Context, item *domain.WorldItem) (int64, error) {
	item.ID = f.state.nextItemID
	f.state.nextItemID++
	copied := *item
	f.state.worldItems[item.ID] = &copied
	return item.ID, nil
}

func (f *fakeRepository) ListWorldItems(ctx context.Context, instanceID int64) ([]domain.WorldItem, error) {
	var out []domain.WorldItem
	for _, item := range f.state.worldItems {
		if item.InstanceID == instanceID && !item.IsCollected {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepository) SetInteractableActive(ctx context.Context, interactableID int64, active bool) error {
	if obj, ok := f.state.interactables[interactableID]; ok {
		obj.IsActive = active
	}
	return nil
}

func (f *fakeRepository) BeginTx(ctx context.Context) (repository.InstanceTx, error) {
	return &fakeTx{repo: f, state: f.state.clone()}, nil
}

type fakeTx struct {
	repo  *fakeRepository
	state *fakeState
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.repo.state = t.state
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	return nil
}

func (t *fakeTx) LockOwner(ctx context.Context, ownerID string) error {
	if _, ok := t.state.players[ownerID]; !ok {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func (t *fakeTx) GetByIDForUpdate(ctx context.Context, instanceID int64) (*domain.GameInstance, error) {
	inst, ok := t.state.instances[instanceID]
	if !ok {
		return nil, domain.ErrInstanceNotFound
	}
	copied := *inst
	return &copied, nil
}

func (t *fakeTx) AdjustPlayerCount(ctx context.Context, instanceID int64, delta int) error {
	inst, ok := t.state.instances[instanceID]
	if !ok {
		return domain.ErrInstanceNotFound
	}
	inst.CurrentPlayers += delta
	if inst.CurrentPlayers < 0 {
		inst.CurrentPlayers = 0
	}
	return nil
}

func (t *fakeTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	p, ok := t.state.players[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	copied := *p
	return &copied, nil
}

func (t *fakeTx) SetPlayerInstance(ctx context.Context, playerID string, instanceID *int64, at time.Time) error {
	p, ok := t.state.players[playerID]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	p.InstanceID = instanceID
	p.LastUpdate = at
	return nil
}

func (t *fakeTx) ResetPlayerSpawn(ctx context.Context, playerID string, at time.Time) error {
	p, ok := t.state.players[playerID]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	p.PosX, p.PosY, p.PosZ = 0, 0, 100
	p.LastUpdate = at
	return nil
}

func (t *fakeTx) GetWorldItemForUpdate(ctx context.Context, worldItemID int64) (*domain.WorldItem, error) {
	item, ok := t.state.worldItems[worldItemID]
	if !ok {
		return nil, domain.ErrWorldItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (t *fakeTx) MarkWorldItemCollected(ctx context.Context, worldItemID int64) error {
	item, ok := t.state.worldItems[worldItemID]
	if !ok {
		return domain.ErrWorldItemNotFound
	}
	item.IsCollected = true
	return nil
}

func (t *fakeTx) ListEntriesForUpdate(ctx context.Context, ownerID string) ([]domain.InventoryEntry, error) {
	var out []domain.InventoryEntry
	for _, e := range t.state.entries {
		if e.OwnerID == ownerID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SlotIndex < out[j].SlotIndex })
	return out, nil
}

func (t *fakeTx) GetEntryForUpdate(ctx context.Context, entryID int64) (*domain.InventoryEntry, error) {
	e, ok := t.state.entries[entryID]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	copied := *e
	return &copied, nil
}

func (t *fakeTx) InsertEntry(ctx context.Context, entry *domain.InventoryEntry) (int64, error) {
	entry.EntryID = t.state.nextEntryID
	t.state.nextEntryID++
	copied := *entry
	t.state.entries[entry.EntryID] = &copied
	return entry.EntryID, nil
}

func (t *fakeTx) UpdateEntryQuantity(ctx context.Context, entryID int64, quantity int) error {
	e, ok := t.state.entries[entryID]
	if !ok {
		return domain.ErrEntryNotFound
	}
	e.Quantity = quantity
	return nil
}

func (t *fakeTx) UpdateEntrySlot(ctx context.Context, entryID int64, slot int) error {
	e, ok := t.state.entries[entryID]
	if !ok {
		return domain.ErrEntryNotFound
	}
	e.SlotIndex = slot
	return nil
}

func (t *fakeTx) DeleteEntry(ctx context.Context, entryID int64) error {
	if _, ok := t.state.entries[entryID]; !ok {
		return domain.ErrEntryNotFound
	}
	delete(t.state.entries, entryID)
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
