package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eon-online/eon-server/internal/domain"
)

// ItemRepository implements the item definition repository for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `item_id, display_name, item_description, category, max_stack, is_premium, premium_price, is_exclusive, rarity, heal_amount`

func scanItem(row pgx.Row) (*domain.ItemDefinition, error) {
	var def domain.ItemDefinition
	err := row.Scan(
		&def.ID,
		&def.DisplayName,
		&def.Description,
		&def.Category,
		&def.MaxStack,
		&def.IsPremium,
		&def.PremiumPrice,
		&def.IsExclusive,
		&def.Rarity,
		&def.HealAmount,
	)
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// GetByID retrieves an item definition by its identifier
func (r *ItemRepository) GetByID(ctx context.Context, itemID string) (*domain.ItemDefinition, error) {
	query := `SELECT ` + itemColumns + ` FROM item_definitions WHERE item_id = $1`
	def, err := scanItem(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
		}
		return nil, fmt.Errorf("failed to get item definition: %w", err)
	}
	return def, nil
}

// ListAll retrieves every item definition
func (r *ItemRepository) ListAll(ctx context.Context) ([]domain.ItemDefinition, error) {
	query := `SELECT ` + itemColumns + ` FROM item_definitions ORDER BY item_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list item definitions: %w", err)
	}
	defer rows.Close()

	var defs []domain.ItemDefinition
	for rows.Next() {
		def, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item definition: %w", err)
		}
		defs = append(defs, *def)
	}
	return defs, rows.Err()
}

// Count returns the number of item definitions
func (r *ItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM item_definitions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count item definitions: %w", err)
	}
	return count, nil
}

// Insert stores a new item definition
func (r *ItemRepository) Insert(ctx context.Context, def domain.ItemDefinition) error {
	query := `
		INSERT INTO item_definitions (item_id, display_name, item_description, category, max_stack, is_premium, premium_price, is_exclusive, rarity, heal_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		def.ID,
		def.DisplayName,
		def.Description,
		def.Category,
		def.MaxStack,
		def.IsPremium,
		def.PremiumPrice,
		def.IsExclusive,
		def.Rarity,
		def.HealAmount,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item definition %s: %w", def.ID, err)
	}
	return nil
}
