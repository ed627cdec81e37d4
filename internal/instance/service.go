package instance

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/inventory"
	"github.com/eon-online/eon-server/internal/logger"
	"github.com/eon-online/eon-server/internal/metrics"
	"github.com/eon-online/eon-server/internal/repository"
)

// Catalog is the item definition lookup the service depends on
type Catalog interface {
	Lookup(itemID string) (*domain.ItemDefinition, error)
}

// CollectResult reports a completed world item pickup
type CollectResult struct {
	ItemID     string `json:"item_id"`
	UnitsAdded int    `json:"units_added"`
}

// Service defines the interface for game instance operations
type Service interface {
	Create(ctx context.Context, ownerID, name string, maxPlayers int) (*domain.GameInstance, error)
	Get(ctx context.Context, instanceID int64) (*domain.GameInstance, error)
	List(ctx context.Context) ([]domain.GameInstance, error)
	Join(ctx context.Context, playerID string, instanceID int64) error
	Leave(ctx context.Context, playerID string) error
	SetState(ctx context.Context, callerID string, instanceID int64, state domain.InstanceState) error
	SpawnWorldItem(ctx context.Context, instanceID int64, itemID string, quantity int, x, y, z float32) (*domain.WorldItem, error)
	ListWorldItems(ctx context.Context, instanceID int64) ([]domain.WorldItem, error)
	CollectWorldItem(ctx context.Context, playerID string, worldItemID int64) (*CollectResult, error)
	ToggleInteractable(ctx context.Context, interactableID int64, active bool) error
}

type service struct {
	repo    repository.Instance
	catalog Catalog
	now     func() time.Time
}

// NewService creates a new instance service
func NewService(repo repository.Instance, catalog Catalog) Service {
	return &service{
		repo:    repo,
		catalog: catalog,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create opens a new instance in the lobby state
func (s *service) Create(ctx context.Context, ownerID, name string, maxPlayers int) (*domain.GameInstance, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateCalled, "owner_id", ownerID, "name", name, "max_players", maxPlayers)

	if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
		return nil, fmt.Errorf("%w: "+ErrMsgNameLength, domain.ErrInvalidInput, MinNameLength, MaxNameLength)
	}
	if maxPlayers < MinPlayers || maxPlayers > MaxPlayers {
		return nil, fmt.Errorf("%w: "+ErrMsgMaxPlayers, domain.ErrInvalidInput, MinPlayers, MaxPlayers)
	}

	inst := &domain.GameInstance{
		Name:       name,
		MaxPlayers: maxPlayers,
		State:      domain.InstanceLobby,
		CreatedAt:  s.now(),
		OwnerID:    ownerID,
	}
	if _, err := s.repo.Create(ctx, inst); err != nil {
		return nil, err
	}

	log.Info(LogMsgCreated, "instance_id", inst.ID, "name", name)
	return inst, nil
}

func (s *service) Get(ctx context.Context, instanceID int64) (*domain.GameInstance, error) {
	return s.repo.GetByID(ctx, instanceID)
}

func (s *service) List(ctx context.Context) ([]domain.GameInstance, error) {
	return s.repo.List(ctx)
}

// Join moves the player into an instance, leaving any previous one. The
// player respawns at the spawn point of the new instance.
func (s *service) Join(ctx context.Context, playerID string, instanceID int64) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgJoinCalled, "player_id", playerID, "instance_id", instanceID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	inst, err := tx.GetByIDForUpdate(ctx, instanceID)
	if err != nil {
		return err
	}
	if !inst.State.Joinable() {
		return fmt.Errorf("%w: state %s", domain.ErrInstanceNotJoinable, inst.State)
	}
	if inst.CurrentPlayers >= inst.MaxPlayers {
		return fmt.Errorf("%w: %d/%d", domain.ErrInstanceFull, inst.CurrentPlayers, inst.MaxPlayers)
	}

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return err
	}
	if player.InstanceID != nil {
		if *player.InstanceID == instanceID {
			return tx.Commit(ctx)
		}
		if err := tx.AdjustPlayerCount(ctx, *player.InstanceID, -1); err != nil {
			return err
		}
	}

	now := s.now()
	if err := tx.SetPlayerInstance(ctx, playerID, &instanceID, now); err != nil {
		return err
	}
	if err := tx.ResetPlayerSpawn(ctx, playerID, now); err != nil {
		return err
	}
	if err := tx.AdjustPlayerCount(ctx, instanceID, 1); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	log.Info(LogMsgJoined, "player_id", playerID, "instance_id", instanceID)
	return nil
}

// Leave removes the player from their current instance
func (s *service) Leave(ctx context.Context, playerID string) error {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return err
	}
	if player.InstanceID == nil {
		return domain.ErrNotInInstance
	}

	instanceID := *player.InstanceID
	if err := tx.AdjustPlayerCount(ctx, instanceID, -1); err != nil {
		return err
	}
	if err := tx.SetPlayerInstance(ctx, playerID, nil, s.now()); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	log.Info(LogMsgLeft, "player_id", playerID, "instance_id", instanceID)
	return nil
}

// SetState changes the instance lifecycle state. Owner only.
func (s *service) SetState(ctx context.Context, callerID string, instanceID int64, state domain.InstanceState) error {
	switch state {
	case domain.InstanceLobby, domain.InstanceInProgress, domain.InstanceFinished, domain.InstanceClosed:
	default:
		return fmt.Errorf("%w: unknown state %q", domain.ErrInvalidInput, state)
	}

	inst, err := s.repo.GetByID(ctx, instanceID)
	if err != nil {
		return err
	}
	if inst.OwnerID != callerID {
		return domain.ErrNotInstanceOwner
	}

	if err := s.repo.SetState(ctx, instanceID, state); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgStateChanged, "instance_id", instanceID, "state", state)
	return nil
}

// SpawnWorldItem places a collectible pickup in an instance
func (s *service) SpawnWorldItem(ctx context.Context, instanceID int64, itemID string, quantity int, x, y, z float32) (*domain.WorldItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}
	if _, err := s.catalog.Lookup(itemID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, instanceID); err != nil {
		return nil, err
	}

	item := &domain.WorldItem{
		InstanceID: instanceID,
		ItemID:     itemID,
		Quantity:   quantity,
		PosX:       x,
		PosY:       y,
		PosZ:       z,
	}
	if _, err := s.repo.SpawnWorldItem(ctx, item); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgItemSpawned, "instance_id", instanceID, "item_id", itemID, "world_item_id", item.ID)
	return item, nil
}

func (s *service) ListWorldItems(ctx context.Context, instanceID int64) ([]domain.WorldItem, error) {
	return s.repo.ListWorldItems(ctx, instanceID)
}

// CollectWorldItem picks up a world item into the player's inventory. The
// pickup and the inventory grant commit together.
func (s *service) CollectWorldItem(ctx context.Context, playerID string, worldItemID int64) (*CollectResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	item, err := tx.GetWorldItemForUpdate(ctx, worldItemID)
	if err != nil {
		return nil, err
	}
	if item.IsCollected {
		return nil, domain.ErrWorldItemCollected
	}

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.InstanceID == nil {
		return nil, domain.ErrNotInInstance
	}
	if *player.InstanceID != item.InstanceID {
		return nil, domain.ErrDifferentInstance
	}
	if distance(player.PosX, player.PosY, player.PosZ, item.PosX, item.PosY, item.PosZ) > PickupRange {
		return nil, domain.ErrOutOfPickupRange
	}

	def, err := s.catalog.Lookup(item.ItemID)
	if err != nil {
		return nil, err
	}

	added, err := inventory.Grant(ctx, tx, playerID, def, item.Quantity)
	if err != nil {
		return nil, err
	}
	if err := tx.MarkWorldItemCollected(ctx, worldItemID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	metrics.ItemsCollected.WithLabelValues(item.ItemID).Inc()

	log.Info(LogMsgItemCollected, "player_id", playerID, "world_item_id", worldItemID, "item_id", item.ItemID, "added", added)
	return &CollectResult{ItemID: item.ItemID, UnitsAdded: added}, nil
}

// ToggleInteractable flips a world object's active flag. A missing
// interactable is ignored.
func (s *service) ToggleInteractable(ctx context.Context, interactableID int64, active bool) error {
	return s.repo.SetInteractableActive(ctx, interactableID, active)
}

func distance(x1, y1, z1, x2, y2, z2 float32) float32 {
	dx := float64(x1 - x2)
	dy := float64(y1 - y2)
	dz := float64(z1 - z2)
	return float32(math.Sqrt(dx*dx + dy*dy + dz*dz))
}
