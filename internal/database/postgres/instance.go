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

// InstanceRepository implements the game instance repository for PostgreSQL
type InstanceRepository struct {
	db *pgxpool.Pool
}

// NewInstanceRepository creates a new InstanceRepository
func NewInstanceRepository(db *pgxpool.Pool) *InstanceRepository {
	return &InstanceRepository{db: db}
}

// InstanceTx implements repository.InstanceTx
type InstanceTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *InstanceRepository) BeginTx(ctx context.Context) (repository.InstanceTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &InstanceTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *InstanceTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *InstanceTx) Rollback(ctx context.Context) error {
	return rollback(ctx, t.tx)
}

const instanceColumns = `instance_id, name, max_players, current_players, state, created_at, owner_id`

func scanInstance(row pgx.Row) (*domain.GameInstance, error) {
	var inst domain.GameInstance
	err := row.Scan(&inst.ID, &inst.Name, &inst.MaxPlayers, &inst.CurrentPlayers, &inst.State, &inst.CreatedAt, &inst.OwnerID)
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func getInstance(ctx context.Context, q queryer, instanceID int64, forUpdate bool) (*domain.GameInstance, error) {
	query := `SELECT ` + instanceColumns + ` FROM game_instances WHERE instance_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	inst, err := scanInstance(q.QueryRow(ctx, query, instanceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInstanceNotFound
		}
		return nil, fmt.Errorf("failed to get instance: %w", err)
	}
	return inst, nil
}

// ---- Repository methods ----

// Create inserts a new instance and returns its assigned id
func (r *InstanceRepository) Create(ctx context.Context, inst *domain.GameInstance) (int64, error) {
	query := `
		INSERT INTO game_instances (name, max_players, state, created_at, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING instance_id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, inst.Name, inst.MaxPlayers, inst.State, inst.CreatedAt, inst.OwnerID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert instance: %w", err)
	}
	inst.ID = id
	return id, nil
}

// GetByID retrieves an instance
func (r *InstanceRepository) GetByID(ctx context.Context, instanceID int64) (*domain.GameInstance, error) {
	return getInstance(ctx, r.db, instanceID, false)
}

// List retrieves all instances newest first
func (r *InstanceRepository) List(ctx context.Context) ([]domain.GameInstance, error) {
	query := `SELECT ` + instanceColumns + ` FROM game_instances ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list instances: %w", err)
	}
	defer rows.Close()

	var instances []domain.GameInstance
	for rows.Next() {
		inst, err := scanInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan instance: %w", err)
		}
		instances = append(instances, *inst)
	}
	return instances, rows.Err()
}

// SetState updates the instance lifecycle state
func (r *InstanceRepository) SetState(ctx context.Context, instanceID int64, state domain.InstanceState) error {
	tag, err := r.db.Exec(ctx, `UPDATE game_instances SET state = $2 WHERE instance_id = $1`, instanceID, state)
	if err != nil {
		return fmt.Errorf("failed to set instance state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInstanceNotFound
	}
	return nil
}

// SpawnWorldItem places a collectible pickup in an instance
func (r *InstanceRepository) SpawnWorldItem(ctx context.Context, item *domain.WorldItem) (int64, error) {
	query := `
		INSERT INTO world_items (instance_id, item_id, quantity, pos_x, pos_y, pos_z)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING world_item_id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, item.InstanceID, item.ItemID, item.Quantity, item.PosX, item.PosY, item.PosZ).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to spawn world item: %w", err)
	}
	item.ID = id
	return id, nil
}

// ListWorldItems retrieves the uncollected pickups in an instance
func (r *InstanceRepository) ListWorldItems(ctx context.Context, instanceID int64) ([]domain.WorldItem, error) {
	query := `
		SELECT world_item_id, instance_id, item_id, quantity, pos_x, pos_y, pos_z, is_collected
		FROM world_items
		WHERE instance_id = $1 AND is_collected = FALSE
		ORDER BY world_item_id
	`
	rows, err := r.db.Query(ctx, query, instanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list world items: %w", err)
	}
	defer rows.Close()

	var items []domain.WorldItem
	for rows.Next() {
		var item domain.WorldItem
		if err := rows.Scan(&item.ID, &item.InstanceID, &item.ItemID, &item.Quantity, &item.PosX, &item.PosY, &item.PosZ, &item.IsCollected); err != nil {
			return nil, fmt.Errorf("failed to scan world item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SetInteractableActive toggles an interactable. A missing row is a silent
// no-op: toggles are low-stakes writes and the client may race a despawn.
func (r *InstanceRepository) SetInteractableActive(ctx context.Context, interactableID int64, active bool) error {
	_, err := r.db.Exec(ctx, `UPDATE interactables SET is_active = $2 WHERE interactable_id = $1`, interactableID, active)
	if err != nil {
		return fmt.Errorf("failed to set interactable state: %w", err)
	}
	return nil
}

// ---- Tx methods ----

// GetByIDForUpdate retrieves and locks an instance
func (t *InstanceTx) GetByIDForUpdate(ctx context.Context, instanceID int64) (*domain.GameInstance, error) {
	return getInstance(ctx, t.tx, instanceID, true)
}

// AdjustPlayerCount changes the member count, clamped at zero
func (t *InstanceTx) AdjustPlayerCount(ctx context.Context, instanceID int64, delta int) error {
	query := `UPDATE game_instances SET current_players = GREATEST(current_players + $2, 0) WHERE instance_id = $1`
	tag, err := t.tx.Exec(ctx, query, instanceID, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust player count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInstanceNotFound
	}
	return nil
}

// GetPlayerForUpdate retrieves and locks a player row
func (t *InstanceTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
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

// SetPlayerInstance moves a player between instances (nil leaves all)
func (t *InstanceTx) SetPlayerInstance(ctx context.Context, playerID string, instanceID *int64, at time.Time) error {
	tag, err := t.tx.Exec(ctx, `UPDATE players SET instance_id = $2, last_update = $3 WHERE player_id = $1`, playerID, instanceID, at)
	if err != nil {
		return fmt.Errorf("failed to set player instance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// ResetPlayerSpawn moves a player back to the spawn point
func (t *InstanceTx) ResetPlayerSpawn(ctx context.Context, playerID string, at time.Time) error {
	query := `UPDATE players SET pos_x = 0, pos_y = 0, pos_z = 100, last_update = $2 WHERE player_id = $1`
	tag, err := t.tx.Exec(ctx, query, playerID, at)
	if err != nil {
		return fmt.Errorf("failed to reset player spawn: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// GetWorldItemForUpdate retrieves and locks a world item
func (t *InstanceTx) GetWorldItemForUpdate(ctx context.Context, worldItemID int64) (*domain.WorldItem, error) {
	query := `
		SELECT world_item_id, instance_id, item_id, quantity, pos_x, pos_y, pos_z, is_collected
		FROM world_items
		WHERE world_item_id = $1
		FOR UPDATE
	`
	var item domain.WorldItem
	err := t.tx.QueryRow(ctx, query, worldItemID).Scan(
		&item.ID, &item.InstanceID, &item.ItemID, &item.Quantity,
		&item.PosX, &item.PosY, &item.PosZ, &item.IsCollected,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWorldItemNotFound
		}
		return nil, fmt.Errorf("failed to get world item: %w", err)
	}
	return &item, nil
}

// MarkWorldItemCollected flags a pickup as taken
func (t *InstanceTx) MarkWorldItemCollected(ctx context.Context, worldItemID int64) error {
	tag, err := t.tx.Exec(ctx, `UPDATE world_items SET is_collected = TRUE WHERE world_item_id = $1`, worldItemID)
	if err != nil {
		return fmt.Errorf("failed to mark world item collected: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWorldItemNotFound
	}
	return nil
}

// ---- Tx methods: inventory (shared helpers) ----

// LockOwner serializes inventory writes for the owner
func (t *InstanceTx) LockOwner(ctx context.Context, ownerID string) error {
	return lockOwner(ctx, t.tx, ownerID)
}

// ListEntriesForUpdate retrieves and locks all entries for an owner
func (t *InstanceTx) ListEntriesForUpdate(ctx context.Context, ownerID string) ([]domain.InventoryEntry, error) {
	return listEntries(ctx, t.tx, ownerID, true)
}

// GetEntryForUpdate retrieves and locks a single entry
func (t *InstanceTx) GetEntryForUpdate(ctx context.Context, entryID int64) (*domain.InventoryEntry, error) {
	return getEntryForUpdate(ctx, t.tx, entryID)
}

// InsertEntry stores a new entry and returns its assigned id
func (t *InstanceTx) InsertEntry(ctx context.Context, entry *domain.InventoryEntry) (int64, error) {
	return insertEntry(ctx, t.tx, entry)
}

// UpdateEntryQuantity sets an entry's quantity
func (t *InstanceTx) UpdateEntryQuantity(ctx context.Context, entryID int64, quantity int) error {
	return updateEntryQuantity(ctx, t.tx, entryID, quantity)
}

// UpdateEntrySlot moves an entry to a slot
func (t *InstanceTx) UpdateEntrySlot(ctx context.Context, entryID int64, slot int) error {
	return updateEntrySlot(ctx, t.tx, entryID, slot)
}

// DeleteEntry removes an entry
func (t *InstanceTx) DeleteEntry(ctx context.Context, entryID int64) error {
	return deleteEntry(ctx, t.tx, entryID)
}
