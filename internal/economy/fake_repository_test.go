package economy

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/repository"
)

// fakeState is the shared store behind the fake repository. Transactions work
// on a deep copy and write it back on commit, so a rolled-back operation
// really does leave no partial effects behind.
type fakeState struct {
	players      map[string]bool
	wallets      map[string]*domain.Wallet
	ownerships   []domain.OwnershipRecord
	transactions []domain.TransactionRecord
	entries      map[int64]*domain.InventoryEntry
	nextEntryID  int64
	nextTxnID    int64
	nextOwnID    int64
}

func newFakeState() *fakeState {
	return &fakeState{
		players:     make(map[string]bool),
		wallets:     make(map[string]*domain.Wallet),
		entries:     make(map[int64]*domain.InventoryEntry),
		nextEntryID: 1,
		nextTxnID:   1,
		nextOwnID:   1,
	}
}

func (s *fakeState) clone() *fakeState {
	c := newFakeState()
	c.nextEntryID, c.nextTxnID, c.nextOwnID = s.nextEntryID, s.nextTxnID, s.nextOwnID
	for id := range s.players {
		c.players[id] = true
	}
	for id, w := range s.wallets {
		copied := *w
		c.wallets[id] = &copied
	}
	c.ownerships = append(c.ownerships, s.ownerships...)
	c.transactions = append(c.transactions, s.transactions...)
	for id, e := range s.entries {
		copied := *e
		c.entries[id] = &copied
	}
	return c
}

type fakeRepository struct {
	mu     sync.Mutex
	state  *fakeState
	claims map[string]*sync.Mutex
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{state: newFakeState(), claims: make(map[string]*sync.Mutex)}
}

func (f *fakeRepository) claimMutex(key string) *sync.Mutex {
	f.mu.Lock()
	defer f.mu.Unlock()
	mu, ok := f.claims[key]
	if !ok {
		mu = &sync.Mutex{}
		f.claims[key] = mu
	}
	return mu
}

func (f *fakeRepository) snapshot() *fakeState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.clone()
}

func (f *fakeRepository) addPlayer(id string) {
	f.state.players[id] = true
}

func (f *fakeRepository) setBalance(id string, balance int64) {
	f.state.wallets[id] = &domain.Wallet{OwnerID: id, Balance: balance}
}

func (f *fakeRepository) entriesFor(ownerID string) []domain.InventoryEntry {
	return listEntriesIn(f.state, ownerID)
}

func (f *fakeRepository) GetWallet(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	w, ok := f.state.wallets[ownerID]
	if !ok {
		return nil, nil
	}
	copied := *w
	return &copied, nil
}

func (f *fakeRepository) ListOwnerships(ctx context.Context, ownerID string) ([]domain.OwnershipRecord, error) {
	var out []domain.OwnershipRecord
	for _, rec := range f.state.ownerships {
		if rec.OwnerID == ownerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListTransactions(ctx context.Context, actorID string, limit int) ([]domain.TransactionRecord, error) {
	var out []domain.TransactionRecord
	for i := len(f.state.transactions) - 1; i >= 0 && len(out) < limit; i-- {
		if f.state.transactions[i].ActorID == actorID {
			out = append(out, f.state.transactions[i])
		}
	}
	return out, nil
}

func (f *fakeRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	return &fakeTx{repo: f, state: f.snapshot()}, nil
}

type fakeTx struct {
	repo  *fakeRepository
	state *fakeState
	held  []*sync.Mutex
	done  bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.repo.mu.Lock()
	t.repo.state = t.state
	t.repo.mu.Unlock()
	t.release()
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
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

// LockOwnershipClaim blocks on a per-pair mutex held until the transaction
// finishes, and rereads committed state afterwards, the same visibility an
// advisory lock plus a fresh read gives under read committed.
func (t *fakeTx) LockOwnershipClaim(ctx context.Context, ownerID, itemID string) error {
	mu := t.repo.claimMutex(ownerID + "/" + itemID)
	mu.Lock()
	t.held = append(t.held, mu)
	t.state = t.repo.snapshot()
	return nil
}

func (t *fakeTx) LockOwner(ctx context.Context, ownerID string) error {
	return nil
}

func (t *fakeTx) EnsureWalletForUpdate(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	w, ok := t.state.wallets[ownerID]
	if !ok {
		w = &domain.Wallet{OwnerID: ownerID}
		t.state.wallets[ownerID] = w
	}
	copied := *w
	return &copied, nil
}

func (t *fakeTx) CreditWallet(ctx context.Context, ownerID string, amount int64, at time.Time) error {
	w, ok := t.state.wallets[ownerID]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	w.Balance += amount
	w.LifetimePurchased += amount
	w.LastPurchaseAt = &at
	return nil
}

func (t *fakeTx) DebitWallet(ctx context.Context, ownerID string, amount int64) error {
	w, ok := t.state.wallets[ownerID]
	if !ok || w.Balance < amount {
		return domain.ErrInsufficientFunds
	}
	w.Balance -= amount
	return nil
}

func (t *fakeTx) HasOwned(ctx context.Context, ownerID, itemID string) (bool, error) {
	for _, rec := range t.state.ownerships {
		if rec.OwnerID == ownerID && rec.ItemID == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (t *fakeTx) InsertOwnership(ctx context.Context, rec *domain.OwnershipRecord) (int64, error) {
	rec.ID = t.state.nextOwnID
	t.state.nextOwnID++
	t.state.ownerships = append(t.state.ownerships, *rec)
	return rec.ID, nil
}

func (t *fakeTx) ListOwnershipsForOwner(ctx context.Context, ownerID string) ([]domain.OwnershipRecord, error) {
	var out []domain.OwnershipRecord
	for _, rec := range t.state.ownerships {
		if rec.OwnerID == ownerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (t *fakeTx) InsertTransaction(ctx context.Context, rec *domain.TransactionRecord) (int64, error) {
	rec.ID = t.state.nextTxnID
	t.state.nextTxnID++
	t.state.transactions = append(t.state.transactions, *rec)
	return rec.ID, nil
}

func (t *fakeTx) PlayerExists(ctx context.Context, playerID string) (bool, error) {
	return t.state.players[playerID], nil
}

func (t *fakeTx) ListEntriesForUpdate(ctx context.Context, ownerID string) ([]domain.InventoryEntry, error) {
	return listEntriesIn(t.state, ownerID), nil
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

func listEntriesIn(s *fakeState, ownerID string) []domain.InventoryEntry {
	var out []domain.InventoryEntry
	for _, e := range s.entries {
		if e.OwnerID == ownerID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SlotIndex < out[j].SlotIndex })
	return out
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
