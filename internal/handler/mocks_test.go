package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/economy"
	"github.com/eon-online/eon-server/internal/instance"
	"github.com/eon-online/eon-server/internal/inventory"
	"github.com/eon-online/eon-server/internal/player"
)

type MockEconomyService struct {
	mock.Mock
}

var _ economy.Service = (*MockEconomyService)(nil)

func (m *MockEconomyService) PurchasePremiumItem(ctx context.Context, buyerID, itemID string) (*economy.AcquisitionResult, error) {
	args := m.Called(ctx, buyerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.AcquisitionResult), args.Error(1)
}

func (m *MockEconomyService) GiftPremiumItem(ctx context.Context, senderID, itemID, recipientID string) (*economy.AcquisitionResult, error) {
	args := m.Called(ctx, senderID, itemID, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.AcquisitionResult), args.Error(1)
}

func (m *MockEconomyService) AdminGrantPremiumItem(ctx context.Context, recipientID, itemID, reason string) (*economy.AcquisitionResult, error) {
	args := m.Called(ctx, recipientID, itemID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.AcquisitionResult), args.Error(1)
}

func (m *MockEconomyService) ReclaimPremiumItems(ctx context.Context, ownerID string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *MockEconomyService) AddPremiumCurrency(ctx context.Context, ownerID string, amount int64, receipt string) (*domain.Wallet, error) {
	args := m.Called(ctx, ownerID, amount, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockEconomyService) GetWallet(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockEconomyService) ListOwnerships(ctx context.Context, ownerID string) ([]domain.OwnershipRecord, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnershipRecord), args.Error(1)
}

func (m *MockEconomyService) ListTransactions(ctx context.Context, actorID string, limit int) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, actorID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}

type MockInventoryService struct {
	mock.Mock
}

var _ inventory.Service = (*MockInventoryService)(nil)

func (m *MockInventoryService) Get(ctx context.Context, ownerID string) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockInventoryService) AddStack(ctx context.Context, ownerID, itemID string, quantity int) (int, error) {
	args := m.Called(ctx, ownerID, itemID, quantity)
	return args.Int(0), args.Error(1)
}

func (m *MockInventoryService) Remove(ctx context.Context, ownerID string, entryID int64, quantity int) error {
	args := m.Called(ctx, ownerID, entryID, quantity)
	return args.Error(0)
}

func (m *MockInventoryService) MoveSlot(ctx context.Context, ownerID string, entryID int64, newSlot int) error {
	args := m.Called(ctx, ownerID, entryID, newSlot)
	return args.Error(0)
}

func (m *MockInventoryService) UseItem(ctx context.Context, ownerID string, entryID int64) (float32, error) {
	args := m.Called(ctx, ownerID, entryID)
	return args.Get(0).(float32), args.Error(1)
}

type MockPlayerService struct {
	mock.Mock
}

var _ player.Service = (*MockPlayerService)(nil)

func (m *MockPlayerService) Connect(ctx context.Context, playerID, username string) (*domain.Player, error) {
	args := m.Called(ctx, playerID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) Disconnect(ctx context.Context, playerID string) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

func (m *MockPlayerService) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) SetName(ctx context.Context, playerID, name string) error {
	args := m.Called(ctx, playerID, name)
	return args.Error(0)
}

func (m *MockPlayerService) UpdateTransform(ctx context.Context, playerID string, t domain.Transform) error {
	args := m.Called(ctx, playerID, t)
	return args.Error(0)
}

func (m *MockPlayerService) SetAttacking(ctx context.Context, playerID string, attacking bool) error {
	args := m.Called(ctx, playerID, attacking)
	return args.Error(0)
}

func (m *MockPlayerService) ApplyDamage(ctx context.Context, attackerID, targetID string, amount float32) (float32, error) {
	args := m.Called(ctx, attackerID, targetID, amount)
	return args.Get(0).(float32), args.Error(1)
}

func (m *MockPlayerService) Heal(ctx context.Context, playerID string, amount float32) (float32, error) {
	args := m.Called(ctx, playerID, amount)
	return args.Get(0).(float32), args.Error(1)
}

type MockInstanceService struct {
	mock.Mock
}

var _ instance.Service = (*MockInstanceService)(nil)

func (m *MockInstanceService) Create(ctx context.Context, ownerID, name string, maxPlayers int) (*domain.GameInstance, error) {
	args := m.Called(ctx, ownerID, name, maxPlayers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameInstance), args.Error(1)
}

func (m *MockInstanceService) Get(ctx context.Context, instanceID int64) (*domain.GameInstance, error) {
	args := m.Called(ctx, instanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameInstance), args.Error(1)
}

func (m *MockInstanceService) List(ctx context.Context) ([]domain.GameInstance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GameInstance), args.Error(1)
}

func (m *MockInstanceService) Join(ctx context.Context, playerID string, instanceID int64) error {
	args := m.Called(ctx, playerID, instanceID)
	return args.Error(0)
}

func (m *MockInstanceService) Leave(ctx context.Context, playerID string) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

func (m *MockInstanceService) SetState(ctx context.Context, callerID string, instanceID int64, state domain.InstanceState) error {
	args := m.Called(ctx, callerID, instanceID, state)
	return args.Error(0)
}

func (m *MockInstanceService) SpawnWorldItem(ctx context.Context, instanceID int64, itemID string, quantity int, x, y, z float32) (*domain.WorldItem, error) {
	args := m.Called(ctx, instanceID, itemID, quantity, x, y, z)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorldItem), args.Error(1)
}

func (m *MockInstanceService) ListWorldItems(ctx context.Context, instanceID int64) ([]domain.WorldItem, error) {
	args := m.Called(ctx, instanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorldItem), args.Error(1)
}

func (m *MockInstanceService) CollectWorldItem(ctx context.Context, playerID string, worldItemID int64) (*instance.CollectResult, error) {
	args := m.Called(ctx, playerID, worldItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*instance.CollectResult), args.Error(1)
}

func (m *MockInstanceService) ToggleInteractable(ctx context.Context, interactableID int64, active bool) error {
	args := m.Called(ctx, interactableID, active)
	return args.Error(0)
}
