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

// EconomyRepository implements the economy repository for PostgreSQL
type EconomyRepository struct {
	db *pgxpool.Pool
}

// NewEconomyRepository creates a new EconomyRepository
func NewEconomyRepository(db *pgxpool.Pool) *EconomyRepository {
	return &EconomyRepository{db: db}
}

// EconomyTx implements repository.EconomyTx
type EconomyTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *EconomyRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &EconomyTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *EconomyTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *EconomyTx) Rollback(ctx context.Context) error {
	return rollback(ctx, t.tx)
}

const walletColumns = `owner_id, balance, lifetime_purchased, last_purchase_at`

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	if err := row.Scan(&w.OwnerID, &w.Balance, &w.LifetimePurchased, &w.LastPurchaseAt); err != nil {
		return nil, err
	}
	return &w, nil
}

// ---- Repository methods ----

// GetWallet retrieves a wallet, or nil when the player has no wallet yet
func (r *EconomyRepository) GetWallet(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE owner_id = $1`
	w, err := scanWallet(r.db.QueryRow(ctx, query, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return w, nil
}

// ListOwnerships retrieves all ownership records for an owner
func (r *EconomyRepository) ListOwnerships(ctx context.Context, ownerID string) ([]domain.OwnershipRecord, error) {
	return listOwnerships(ctx, r.db, ownerID)
}

// ListTransactions retrieves the most recent transaction records for an actor
func (r *EconomyRepository) ListTransactions(ctx context.Context, actorID string, limit int) ([]domain.TransactionRecord, error) {
	query := `
		SELECT transaction_id, actor_id, item_id, amount, kind, created_at, receipt_ref
		FROM transactions
		WHERE actor_id = $1
		ORDER BY transaction_id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, actorID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var records []domain.TransactionRecord
	for rows.Next() {
		var rec domain.TransactionRecord
		if err := rows.Scan(&rec.ID, &rec.ActorID, &rec.ItemID, &rec.Amount, &rec.Kind, &rec.CreatedAt, &rec.ReceiptRef); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func listOwnerships(ctx context.Context, q queryer, ownerID string) ([]domain.OwnershipRecord, error) {
	query := `
		SELECT ownership_id, owner_id, item_id, acquired_at, transaction_id, is_gift, gifter_id
		FROM ownership_records
		WHERE owner_id = $1
		ORDER BY ownership_id
	`
	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ownership records: %w", err)
	}
	defer rows.Close()

	var records []domain.OwnershipRecord
	for rows.Next() {
		var rec domain.OwnershipRecord
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.ItemID, &rec.AcquiredAt, &rec.TransactionID, &rec.IsGift, &rec.GifterID); err != nil {
			return nil, fmt.Errorf("failed to scan ownership record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ---- Tx methods: wallet ----

// EnsureWalletForUpdate lazily creates the wallet, then locks and returns it.
// The insert and the lock happen in the same transaction as whatever balance
// check and writes follow.
func (t *EconomyTx) EnsureWalletForUpdate(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	if _, err := parsePlayerUUID(ownerID); err != nil {
		return nil, err
	}
	_, err := t.tx.Exec(ctx, `INSERT INTO wallets (owner_id) VALUES ($1) ON CONFLICT (owner_id) DO NOTHING`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure wallet: %w", err)
	}

	query := `SELECT ` + walletColumns + ` FROM wallets WHERE owner_id = $1 FOR UPDATE`
	w, err := scanWallet(t.tx.QueryRow(ctx, query, ownerID))
	if err != nil {
		return nil, fmt.Errorf("failed to lock wallet: %w", err)
	}
	return w, nil
}

// CreditWallet increases balance and lifetime purchased
func (t *EconomyTx) CreditWallet(ctx context.Context, ownerID string, amount int64, at time.Time) error {
	query := `
		UPDATE wallets
		SET balance = balance + $2, lifetime_purchased = lifetime_purchased + $2, last_purchase_at = $3
		WHERE owner_id = $1
	`
	tag, err := t.tx.Exec(ctx, query, ownerID, amount, at)
	if err != nil {
		return fmt.Errorf("failed to credit wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// DebitWallet decreases balance, guarded against overdraft at the SQL level
// as well as by the caller's balance check under the row lock.
func (t *EconomyTx) DebitWallet(ctx context.Context, ownerID string, amount int64) error {
	query := `UPDATE wallets SET balance = balance - $2 WHERE owner_id = $1 AND balance >= $2`
	tag, err := t.tx.Exec(ctx, query, ownerID, amount)
	if err != nil {
		return fmt.Errorf("failed to debit wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientFunds
	}
	return nil
}

// ---- Tx methods: ownership registry ----

// LockOwnershipClaim takes a transaction-scoped advisory lock keyed on the
// (owner, item) pair. The ownership table allows repeat records for
// non-exclusive items, so exactly-once acquisition of exclusive items cannot
// be a unique constraint; the advisory lock makes the HasOwned check that
// follows it race-free, since a competing claim holds the lock until its
// record is committed and visible.
func (t *EconomyTx) LockOwnershipClaim(ctx context.Context, ownerID, itemID string) error {
	_, err := t.tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, ownerID+"/"+itemID)
	if err != nil {
		return fmt.Errorf("failed to lock ownership claim: %w", err)
	}
	return nil
}

// HasOwned reports whether any ownership record exists for the pair
func (t *EconomyTx) HasOwned(ctx context.Context, ownerID, itemID string) (bool, error) {
	var owned bool
	query := `SELECT EXISTS(SELECT 1 FROM ownership_records WHERE owner_id = $1 AND item_id = $2)`
	if err := t.tx.QueryRow(ctx, query, ownerID, itemID).Scan(&owned); err != nil {
		return false, fmt.Errorf("failed to check ownership: %w", err)
	}
	return owned, nil
}

// InsertOwnership appends an immutable ownership record
func (t *EconomyTx) InsertOwnership(ctx context.Context, rec *domain.OwnershipRecord) (int64, error) {
	query := `
		INSERT INTO ownership_records (owner_id, item_id, acquired_at, transaction_id, is_gift, gifter_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ownership_id
	`
	var id int64
	err := t.tx.QueryRow(ctx, query, rec.OwnerID, rec.ItemID, rec.AcquiredAt, rec.TransactionID, rec.IsGift, rec.GifterID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert ownership record: %w", err)
	}
	rec.ID = id
	return id, nil
}

// ListOwnershipsForOwner retrieves all ownership records inside the transaction
func (t *EconomyTx) ListOwnershipsForOwner(ctx context.Context, ownerID string) ([]domain.OwnershipRecord, error) {
	return listOwnerships(ctx, t.tx, ownerID)
}

// ---- Tx methods: transaction log ----

// InsertTransaction appends an audit trail record
func (t *EconomyTx) InsertTransaction(ctx context.Context, rec *domain.TransactionRecord) (int64, error) {
	query := `
		INSERT INTO transactions (actor_id, item_id, amount, kind, created_at, receipt_ref)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING transaction_id
	`
	var id int64
	err := t.tx.QueryRow(ctx, query, rec.ActorID, rec.ItemID, rec.Amount, rec.Kind, rec.CreatedAt, rec.ReceiptRef).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}
	rec.ID = id
	return id, nil
}

// PlayerExists reports whether a player row exists for the identity
func (t *EconomyTx) PlayerExists(ctx context.Context, playerID string) (bool, error) {
	var exists bool
	if err := t.tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM players WHERE player_id = $1)`, playerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check player existence: %w", err)
	}
	return exists, nil
}

// ---- Tx methods: inventory (shared helpers) ----

// LockOwner serializes inventory writes for the owner
func (t *EconomyTx) LockOwner(ctx context.Context, ownerID string) error {
	return lockOwner(ctx, t.tx, ownerID)
}

// ListEntriesForUpdate retrieves and locks all entries for an owner
func (t *EconomyTx) ListEntriesForUpdate(ctx context.Context, ownerID string) ([]domain.InventoryEntry, error) {
	return listEntries(ctx, t.tx, ownerID, true)
}

// GetEntryForUpdate retrieves and locks a single entry
func (t *EconomyTx) GetEntryForUpdate(ctx context.Context, entryID int64) (*domain.InventoryEntry, error) {
	return getEntryForUpdate(ctx, t.tx, entryID)
}

// InsertEntry stores a new entry and returns its assigned id
func (t *EconomyTx) InsertEntry(ctx context.Context, entry *domain.InventoryEntry) (int64, error) {
	return insertEntry(ctx, t.tx, entry)
}

// UpdateEntryQuantity sets an entry's quantity
func (t *EconomyTx) UpdateEntryQuantity(ctx context.Context, entryID int64, quantity int) error {
	return updateEntryQuantity(ctx, t.tx, entryID, quantity)
}

// UpdateEntrySlot moves an entry to a slot
func (t *EconomyTx) UpdateEntrySlot(ctx context.Context, entryID int64, slot int) error {
	return updateEntrySlot(ctx, t.tx, entryID, slot)
}

// DeleteEntry removes an entry
func (t *EconomyTx) DeleteEntry(ctx context.Context, entryID int64) error {
	return deleteEntry(ctx, t.tx, entryID)
}
