package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/repository"
)

// InventoryRepository implements the inventory repository for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// InventoryTx implements repository.InventoryTx
type InventoryTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &InventoryTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *InventoryTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *InventoryTx) Rollback(ctx context.Context) error {
	return rollback(ctx, t.tx)
}

const entryColumns = `entry_id, owner_id, item_id, quantity, slot_index`

func scanEntry(row pgx.Row) (*domain.InventoryEntry, error) {
	var e domain.InventoryEntry
	if err := row.Scan(&e.EntryID, &e.OwnerID, &e.ItemID, &e.Quantity, &e.SlotIndex); err != nil {
		return nil, err
	}
	return &e, nil
}

// ---- Shared entry helpers (used by inventory, economy and instance transactions) ----

// lockOwner takes the per-owner inventory write lock by locking the player
// row. FOR UPDATE on entry rows cannot cover rows that do not exist yet, so
// concurrent slot allocation is serialized on the owner instead.
func lockOwner(ctx context.Context, q queryer, ownerID string) error {
	var id string
	err := q.QueryRow(ctx, `SELECT player_id FROM players WHERE player_id = $1 FOR UPDATE`, ownerID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, ownerID)
		}
		return fmt.Errorf("failed to lock inventory owner: %w", err)
	}
	return nil
}

func listEntries(ctx context.Context, q queryer, ownerID string, forUpdate bool) ([]domain.InventoryEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM inventory_entries WHERE owner_id = $1 ORDER BY slot_index`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.InventoryEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func getEntryForUpdate(ctx context.Context, q queryer, entryID int64) (*domain.InventoryEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM inventory_entries WHERE entry_id = $1 FOR UPDATE`
	e, err := scanEntry(q.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get inventory entry: %w", err)
	}
	return e, nil
}

func insertEntry(ctx context.Context, q queryer, entry *domain.InventoryEntry) (int64, error) {
	query := `
		INSERT INTO inventory_entries (owner_id, item_id, quantity, slot_index)
		VALUES ($1, $2, $3, $4)
		RETURNING entry_id
	`
	var id int64
	err := q.QueryRow(ctx, query, entry.OwnerID, entry.ItemID, entry.Quantity, entry.SlotIndex).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert inventory entry: %w", err)
	}
	entry.EntryID = id
	return id, nil
}

func updateEntryQuantity(ctx context.Context, q queryer, entryID int64, quantity int) error {
	tag, err := q.Exec(ctx, `UPDATE inventory_entries SET quantity = $2 WHERE entry_id = $1`, entryID, quantity)
	if err != nil {
		return fmt.Errorf("failed to update entry quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func updateEntrySlot(ctx context.Context, q queryer, entryID int64, slot int) error {
	tag, err := q.Exec(ctx, `UPDATE inventory_entries SET slot_index = $2 WHERE entry_id = $1`, entryID, slot)
	if err != nil {
		return fmt.Errorf("failed to update entry slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func deleteEntry(ctx context.Context, q queryer, entryID int64) error {
	tag, err := q.Exec(ctx, `DELETE FROM inventory_entries WHERE entry_id = $1`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// ---- Repository methods ----

// ListEntries retrieves all entries for an owner ordered by slot
func (r *InventoryRepository) ListEntries(ctx context.Context, ownerID string) ([]domain.InventoryEntry, error) {
	return listEntries(ctx, r.db, ownerID, false)
}

// ---- Tx methods ----

// LockOwner serializes inventory writes for the owner
func (t *InventoryTx) LockOwner(ctx context.Context, ownerID string) error {
	return lockOwner(ctx, t.tx, ownerID)
}

// ListEntriesForUpdate retrieves and locks all entries for an owner
func (t *InventoryTx) ListEntriesForUpdate(ctx context.Context, ownerID string) ([]domain.InventoryEntry, error) {
	return listEntries(ctx, t.tx, ownerID, true)
}

// GetEntryForUpdate retrieves and locks a single entry
func (t *InventoryTx) GetEntryForUpdate(ctx context.Context, entryID int64) (*domain.InventoryEntry, error) {
	return getEntryForUpdate(ctx, t.tx, entryID)
}

// InsertEntry stores a new entry and returns its assigned id
func (t *InventoryTx) InsertEntry(ctx context.Context, entry *domain.InventoryEntry) (int64, error) {
	return insertEntry(ctx, t.tx, entry)
}

// UpdateEntryQuantity sets an entry's quantity
func (t *InventoryTx) UpdateEntryQuantity(ctx context.Context, entryID int64, quantity int) error {
	return updateEntryQuantity(ctx, t.tx, entryID, quantity)
}

// UpdateEntrySlot moves an entry to a slot
func (t *InventoryTx) UpdateEntrySlot(ctx context.Context, entryID int64, slot int) error {
	return updateEntrySlot(ctx, t.tx, entryID, slot)
}

// DeleteEntry removes an entry
func (t *InventoryTx) DeleteEntry(ctx context.Context, entryID int64) error {
	return deleteEntry(ctx, t.tx, entryID)
}

// GetPlayerForUpdate retrieves and locks the player row for a consumable effect
func (t *InventoryTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1 FOR UPDATE`
	p, err := scanPlayer(t.tx.QueryRow(ctx, query, playerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return p, nil
}

// UpdatePlayerHealth writes an already-clamped health value inside the transaction
func (t *InventoryTx) UpdatePlayerHealth(ctx context.Context, playerID string, health float32, at time.Time) error {
	tag, err := t.tx.Exec(ctx, `UPDATE players SET health = $2, last_update = $3 WHERE player_id = $1`, playerID, health, at)
	if err != nil {
		return fmt.Errorf("failed to update player health: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}
