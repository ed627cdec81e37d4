package repository

import (
	"context"
	"time"

	"github.com/eon-online/eon-server/internal/domain"
)

// EconomyOps are the transaction-scoped wallet/ownership/transaction-log
// operations. A debit is only ever applied in the same transaction as the
// ownership and audit records it pays for.
type EconomyOps interface {
	// EnsureWalletForUpdate creates the wallet with a zero balance if it does
	// not exist yet, then returns it locked for the rest of the transaction.
	EnsureWalletForUpdate(ctx context.Context, ownerID string) (*domain.Wallet, error)
	// CreditWallet increases balance and lifetime purchased, and stamps the
	// last purchase time.
	CreditWallet(ctx context.Context, ownerID string, amount int64, at time.Time) error
	// DebitWallet decreases balance; returns domain.ErrInsufficientFunds when
	// the balance does not cover the amount.
	DebitWallet(ctx context.Context, ownerID string, amount int64) error

	// LockOwnershipClaim serializes exclusive-item acquisition for one
	// (owner, item) pair until the transaction ends. HasOwned alone is a
	// lock-free read: two concurrent acquisitions would both see no record
	// and both commit. Callers take this lock first, then check HasOwned,
	// which then observes any claim committed while waiting.
	LockOwnershipClaim(ctx context.Context, ownerID, itemID string) error
	HasOwned(ctx context.Context, ownerID, itemID string) (bool, error)
	InsertOwnership(ctx context.Context, rec *domain.OwnershipRecord) (int64, error)
	ListOwnershipsForOwner(ctx context.Context, ownerID string) ([]domain.OwnershipRecord, error)
	InsertTransaction(ctx context.Context, rec *domain.TransactionRecord) (int64, error)

	PlayerExists(ctx context.Context, playerID string) (bool, error)
}

// Economy defines the interface for economy persistence
type Economy interface {
	GetWallet(ctx context.Context, ownerID string) (*domain.Wallet, error)
	ListOwnerships(ctx context.Context, ownerID string) ([]domain.OwnershipRecord, error)
	ListTransactions(ctx context.Context, actorID string, limit int) ([]domain.TransactionRecord, error)
	BeginTx(ctx context.Context) (EconomyTx, error)
}

// EconomyTx defines the interface for economy transactions. Inventory ops are
// included because purchases, gifts, grants and reclaims all finish with an
// inventory grant that must commit with the ledger writes.
type EconomyTx interface {
	Tx
	EconomyOps
	InventoryOps
}
