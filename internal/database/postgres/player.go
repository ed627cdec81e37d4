package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eon-online/eon-server/internal/domain"
)

// PlayerRepository implements the player repository for PostgreSQL.
// Mutations are targeted single-field updates so concurrent calls touching
// different fields never clobber each other.
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

const playerColumns = `player_id, username, instance_id, pos_x, pos_y, pos_z, rot_pitch, rot_yaw, rot_roll, health, max_health, is_attacking, is_online, last_update`

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(
		&p.ID,
		&p.Username,
		&p.InstanceID,
		&p.PosX, &p.PosY, &p.PosZ,
		&p.RotPitch, &p.RotYaw, &p.RotRoll,
		&p.Health, &p.MaxHealth,
		&p.IsAttacking,
		&p.IsOnline,
		&p.LastUpdate,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID retrieves a player by identity
func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1`
	p, err := scanPlayer(r.db.QueryRow(ctx, query, playerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return p, nil
}

// Exists reports whether a player row exists for the identity
func (r *PlayerRepository) Exists(ctx context.Context, playerID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM players WHERE player_id = $1)`, playerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check player existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new player row
func (r *PlayerRepository) Create(ctx context.Context, player *domain.Player) error {
	if _, err := parsePlayerUUID(player.ID); err != nil {
		return err
	}
	query := `
		INSERT INTO players (player_id, username, pos_x, pos_y, pos_z, health, max_health, is_online, last_update)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		player.ID,
		player.Username,
		player.PosX, player.PosY, player.PosZ,
		player.Health, player.MaxHealth,
		player.IsOnline,
		player.LastUpdate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

// SetOnline flips the presence flag
func (r *PlayerRepository) SetOnline(ctx context.Context, playerID string, online bool, at time.Time) error {
	return r.exec(ctx, `UPDATE players SET is_online = $2, last_update = $3 WHERE player_id = $1`, playerID, online, at)
}

// UpdateName sets the display name
func (r *PlayerRepository) UpdateName(ctx context.Context, playerID, name string, at time.Time) error {
	return r.exec(ctx, `UPDATE players SET username = $2, last_update = $3 WHERE player_id = $1`, playerID, name, at)
}

// UpdateTransform writes position and rotation from the client sync loop
func (r *PlayerRepository) UpdateTransform(ctx context.Context, playerID string, t domain.Transform, at time.Time) error {
	query := `
		UPDATE players
		SET pos_x = $2, pos_y = $3, pos_z = $4, rot_pitch = $5, rot_yaw = $6, rot_roll = $7, last_update = $8
		WHERE player_id = $1
	`
	return r.exec(ctx, query, playerID, t.PosX, t.PosY, t.PosZ, t.RotPitch, t.RotYaw, t.RotRoll, at)
}

// SetAttacking flips the combat state flag
func (r *PlayerRepository) SetAttacking(ctx context.Context, playerID string, attacking bool, at time.Time) error {
	return r.exec(ctx, `UPDATE players SET is_attacking = $2, last_update = $3 WHERE player_id = $1`, playerID, attacking, at)
}

// UpdateHealth writes an already-clamped health value
func (r *PlayerRepository) UpdateHealth(ctx context.Context, playerID string, health float32, at time.Time) error {
	return r.exec(ctx, `UPDATE players SET health = $2, last_update = $3 WHERE player_id = $1`, playerID, health, at)
}

func (r *PlayerRepository) exec(ctx context.Context, query string, playerID string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, append([]any{playerID}, args...)...)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}
