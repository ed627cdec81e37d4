package player

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/repository"
)

// MockRepository implements repository.Player for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRepository) Exists(ctx context.Context, playerID string) (bool, error) {
	args := m.Called(ctx, playerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, player *domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockRepository) SetOnline(ctx context.Context, playerID string, online bool, at time.Time) error {
	args := m.Called(ctx, playerID, online, at)
	return args.Error(0)
}

func (m *MockRepository) UpdateName(ctx context.Context, playerID, name string, at time.Time) error {
	args := m.Called(ctx, playerID, name, at)
	return args.Error(0)
}

func (m *MockRepository) UpdateTransform(ctx context.Context, playerID string, t domain.Transform, at time.Time) error {
	args := m.Called(ctx, playerID, t, at)
	return args.Error(0)
}

func (m *MockRepository) SetAttacking(ctx context.Context, playerID string, attacking bool, at time.Time) error {
	args := m.Called(ctx, playerID, attacking, at)
	return args.Error(0)
}

func (m *MockRepository) UpdateHealth(ctx context.Context, playerID string, health float32, at time.Time) error {
	args := m.Called(ctx, playerID, health, at)
	return args.Error(0)
}

// Ensure MockRepository implements repository.Player
var _ repository.Player = (*MockRepository)(nil)
