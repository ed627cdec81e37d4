package player

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/logger"
	"github.com/eon-online/eon-server/internal/metrics"
	"github.com/eon-online/eon-server/internal/repository"
)

// Service defines the interface for player lifecycle operations
type Service interface {
	Connect(ctx context.Context, playerID, username string) (*domain.Player, error)
	Disconnect(ctx context.Context, playerID string) error
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	SetName(ctx context.Context, playerID, name string) error
	UpdateTransform(ctx context.Context, playerID string, t domain.Transform) error
	SetAttacking(ctx context.Context, playerID string, attacking bool) error
	ApplyDamage(ctx context.Context, attackerID, targetID string, amount float32) (float32, error)
	Heal(ctx context.Context, playerID string, amount float32) (float32, error)
}

type service struct {
	repo  repository.Player
	cache *playerCache
	now   func() time.Time
}

// NewService creates a new player service
func NewService(repo repository.Player) Service {
	return &service{
		repo:  repo,
		cache: newPlayerCache(CacheSize, CacheTTL),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func validateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < MinNameLength || n > MaxNameLength {
		return fmt.Errorf("%w: "+ErrMsgNameLength, domain.ErrInvalidInput, MinNameLength, MaxNameLength)
	}
	return nil
}

// Connect registers the player on first sight and marks them online
func (s *service) Connect(ctx context.Context, playerID, username string) (*domain.Player, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgConnectCalled, "player_id", playerID)

	if username == "" {
		username = DefaultUsername
	}
	if err := validateName(username); err != nil {
		return nil, err
	}

	now := s.now()
	exists, err := s.repo.Exists(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if !exists {
		p := &domain.Player{
			ID:         playerID,
			Username:   username,
			PosX:       SpawnX,
			PosY:       SpawnY,
			PosZ:       SpawnZ,
			Health:     DefaultHealth,
			MaxHealth:  DefaultHealth,
			IsOnline:   true,
			LastUpdate: now,
		}
		if err := s.repo.Create(ctx, p); err != nil {
			return nil, err
		}
		metrics.PlayersOnline.Inc()
		log.Info(LogMsgConnected, "player_id", playerID, "username", username, "new", true)
		return p, nil
	}

	if err := s.repo.SetOnline(ctx, playerID, true, now); err != nil {
		return nil, err
	}
	s.cache.Invalidate(playerID)

	p, err := s.repo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	metrics.PlayersOnline.Inc()
	log.Info(LogMsgConnected, "player_id", playerID, "username", p.Username, "new", false)
	return p, nil
}

// Disconnect marks the player offline
func (s *service) Disconnect(ctx context.Context, playerID string) error {
	if err := s.repo.SetOnline(ctx, playerID, false, s.now()); err != nil {
		return err
	}
	s.cache.Invalidate(playerID)
	metrics.PlayersOnline.Dec()
	logger.FromContext(ctx).Info(LogMsgDisconnected, "player_id", playerID)
	return nil
}

// GetPlayer returns the player, served from cache when fresh
func (s *service) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	if p, ok := s.cache.Get(playerID); ok {
		return p, nil
	}

	p, err := s.repo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(p)
	return p, nil
}

// SetName changes the display name
func (s *service) SetName(ctx context.Context, playerID, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := s.repo.UpdateName(ctx, playerID, name, s.now()); err != nil {
		return err
	}
	s.cache.Invalidate(playerID)
	logger.FromContext(ctx).Info(LogMsgNameChanged, "player_id", playerID, "name", name)
	return nil
}

// UpdateTransform writes the position/rotation from the client sync loop.
// High-frequency path: no logging beyond errors.
func (s *service) UpdateTransform(ctx context.Context, playerID string, t domain.Transform) error {
	if err := s.repo.UpdateTransform(ctx, playerID, t, s.now()); err != nil {
		return err
	}
	s.cache.Invalidate(playerID)
	return nil
}

// SetAttacking flips the combat state flag
func (s *service) SetAttacking(ctx context.Context, playerID string, attacking bool) error {
	if err := s.repo.SetAttacking(ctx, playerID, attacking, s.now()); err != nil {
		return err
	}
	s.cache.Invalidate(playerID)
	return nil
}

// ApplyDamage reduces the target's health, clamped at zero. Attacker and
// target must be in the same instance.
func (s *service) ApplyDamage(ctx context.Context, attackerID, targetID string, amount float32) (float32, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: damage must be positive", domain.ErrInvalidInput)
	}

	attacker, err := s.repo.GetByID(ctx, attackerID)
	if err != nil {
		return 0, err
	}
	target, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return 0, err
	}

	if attacker.InstanceID == nil {
		return 0, domain.ErrNotInInstance
	}
	if target.InstanceID == nil || *target.InstanceID != *attacker.InstanceID {
		return 0, domain.ErrDifferentInstance
	}

	health := target.Health - amount
	if health < 0 {
		health = 0
	}
	if err := s.repo.UpdateHealth(ctx, targetID, health, s.now()); err != nil {
		return 0, err
	}
	s.cache.Invalidate(targetID)

	logger.FromContext(ctx).Info(LogMsgDamageApplied, "attacker_id", attackerID, "target_id", targetID, "amount", amount, "health", health)
	return health, nil
}

// Heal raises the player's health, clamped at max health
func (s *service) Heal(ctx context.Context, playerID string, amount float32) (float32, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: heal amount must be positive", domain.ErrInvalidInput)
	}

	p, err := s.repo.GetByID(ctx, playerID)
	if err != nil {
		return 0, err
	}

	health := p.Health + amount
	if health > p.MaxHealth {
		health = p.MaxHealth
	}
	if err := s.repo.UpdateHealth(ctx, playerID, health, s.now()); err != nil {
		return 0, err
	}
	s.cache.Invalidate(playerID)

	logger.FromContext(ctx).Info(LogMsgHealed, "player_id", playerID, "amount", amount, "health", health)
	return health, nil
}
