package domain

import "time"

// Wallet holds a player's premium currency balance.
// Created lazily on the first economic action.
type Wallet struct {
	OwnerID           string     `json:"owner_id" db:"owner_id"`
	Balance           int64      `json:"balance" db:"balance"` // monotonic non-negative
	LifetimePurchased int64      `json:"lifetime_purchased" db:"lifetime_purchased"`
	LastPurchaseAt    *time.Time `json:"last_purchase_at,omitempty" db:"last_purchase_at"`
}

// TransactionKind is the kind of a currency-affecting operation
type TransactionKind string

const (
	TransactionPurchase    TransactionKind = "purchase"
	TransactionGift        TransactionKind = "gift"
	TransactionGrant       TransactionKind = "grant"
	TransactionCurrencyAdd TransactionKind = "currency_add"
	TransactionRefund      TransactionKind = "refund"
)

// TransactionRecord is one append-only audit trail entry.
// ItemID is nil for pure currency top-ups.
type TransactionRecord struct {
	ID         int64           `json:"transaction_id" db:"transaction_id"`
	ActorID    string          `json:"actor_id" db:"actor_id"`
	ItemID     *string         `json:"item_id,omitempty" db:"item_id"`
	Amount     int64           `json:"amount" db:"amount"`
	Kind       TransactionKind `json:"kind" db:"kind"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	ReceiptRef string          `json:"receipt_ref,omitempty" db:"receipt_ref"`
}

// OwnershipRecord is the permanent record of an item acquisition.
// Records are append-only: never updated or deleted once created. They are the
// source of truth for "has this player ever acquired this item", independent
// of whether the item still sits in inventory.
type OwnershipRecord struct {
	ID            int64     `json:"ownership_id" db:"ownership_id"`
	OwnerID       string    `json:"owner_id" db:"owner_id"`
	ItemID        string    `json:"item_id" db:"item_id"`
	AcquiredAt    time.Time `json:"acquired_at" db:"acquired_at"`
	TransactionID int64     `json:"transaction_id" db:"transaction_id"`
	IsGift        bool      `json:"is_gift" db:"is_gift"`
	GifterID      *string   `json:"gifter_id,omitempty" db:"gifter_id"`
}
