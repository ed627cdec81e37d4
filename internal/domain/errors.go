package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Instance errors
	ErrMsgInstanceNotFound    = "instance not found"
	ErrMsgInstanceFull        = "instance is full"
	ErrMsgInstanceNotJoinable = "instance is not joinable"
	ErrMsgNotInstanceOwner    = "only the instance owner can change state"
	ErrMsgNotInInstance       = "player is not in an instance"
	ErrMsgDifferentInstance   = "target is in a different instance"
	ErrMsgWorldItemNotFound   = "world item not found"
	ErrMsgWorldItemCollected  = "world item already collected"
	ErrMsgOutOfPickupRange    = "too far from item"

	// Inventory errors
	ErrMsgEntryNotFound        = "inventory entry not found"
	ErrMsgNotOwner             = "entry does not belong to caller"
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInventoryFull        = "inventory is full"
	ErrMsgInvalidSlot          = "invalid slot index"
	ErrMsgNotConsumable        = "item is not consumable"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgNotPremium        = "item is not a premium item"
	ErrMsgNotPurchasable    = "item is not purchasable"
	ErrMsgAlreadyOwned      = "exclusive item already owned"
	ErrMsgSelfGift          = "cannot gift an item to yourself"

	// Validation errors (used for partial matches)
	ErrMsgInvalidQuantity = "quantity"
	ErrMsgInvalidInput    = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Instance errors
	ErrInstanceNotFound    = errors.New(ErrMsgInstanceNotFound)
	ErrInstanceFull        = errors.New(ErrMsgInstanceFull)
	ErrInstanceNotJoinable = errors.New(ErrMsgInstanceNotJoinable)
	ErrNotInstanceOwner    = errors.New(ErrMsgNotInstanceOwner)
	ErrNotInInstance       = errors.New(ErrMsgNotInInstance)
	ErrDifferentInstance   = errors.New(ErrMsgDifferentInstance)
	ErrWorldItemNotFound   = errors.New(ErrMsgWorldItemNotFound)
	ErrWorldItemCollected  = errors.New(ErrMsgWorldItemCollected)
	ErrOutOfPickupRange    = errors.New(ErrMsgOutOfPickupRange)

	// Inventory errors
	ErrEntryNotFound        = errors.New(ErrMsgEntryNotFound)
	ErrNotOwner             = errors.New(ErrMsgNotOwner)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInventoryFull        = errors.New(ErrMsgInventoryFull)
	ErrInvalidSlot          = errors.New(ErrMsgInvalidSlot)
	ErrNotConsumable        = errors.New(ErrMsgNotConsumable)
	ErrInvalidQuantity      = errors.New("quantity must be greater than 0")

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrNotPremium        = errors.New(ErrMsgNotPremium)
	ErrNotPurchasable    = errors.New(ErrMsgNotPurchasable)
	ErrAlreadyOwned      = errors.New(ErrMsgAlreadyOwned)
	ErrSelfGift          = errors.New(ErrMsgSelfGift)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
