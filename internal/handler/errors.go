package handler

import (
	"errors"
	"net/http"

	"github.com/eon-online/eon-server/internal/domain"
)

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Player messages
	ErrMsgPlayerNotFoundError  = "Player not found"
	ErrMsgNotInInstanceError   = "You are not in an instance"
	ErrMsgDifferentInstanceErr = "Target is in a different instance"

	// Item and inventory messages
	ErrMsgItemNotFoundError    = "Item not found"
	ErrMsgEntryNotFoundError   = "Inventory entry not found"
	ErrMsgNotOwnerError        = "That entry is not yours"
	ErrMsgInsufficientItemsErr = "Not enough items"
	ErrMsgInventoryFullError   = "Inventory is full"
	ErrMsgInvalidSlotError     = "Invalid slot index"
	ErrMsgInvalidQuantityError = "Quantity must be positive"
	ErrMsgNotConsumableError   = "Item is not consumable"

	// Economy messages
	ErrMsgNotEnoughCurrencyError = "Not enough premium currency"
	ErrMsgNotPremiumError        = "Item is not a premium item"
	ErrMsgNotPurchasableError    = "Item is not purchasable"
	ErrMsgAlreadyOwnedError      = "You already own that exclusive item"
	ErrMsgSelfGiftError          = "You cannot gift an item to yourself"

	// Instance messages
	ErrMsgInstanceNotFoundError    = "Instance not found"
	ErrMsgInstanceFullError        = "Instance is full"
	ErrMsgInstanceNotJoinableError = "Instance is not joinable"
	ErrMsgNotInstanceOwnerError    = "Only the instance owner can do that"
	ErrMsgWorldItemNotFoundError   = "World item not found"
	ErrMsgWorldItemCollectedError  = "That item was already collected"
	ErrMsgOutOfPickupRangeError    = "Too far away to pick that up"

	// Validation messages
	ErrMsgInvalidInputError = "Invalid request. Please check your inputs."
)

// mapServiceError maps domain errors to user-friendly HTTP responses.
// Conflicts with current state (funds, capacity, exclusivity) return 409 so
// clients can distinguish them from malformed requests.
func mapServiceError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	// Not found
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound, ErrMsgEntryNotFoundError
	case errors.Is(err, domain.ErrInstanceNotFound):
		return http.StatusNotFound, ErrMsgInstanceNotFoundError
	case errors.Is(err, domain.ErrWorldItemNotFound):
		return http.StatusNotFound, ErrMsgWorldItemNotFoundError

	// Bad input
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityError
	case errors.Is(err, domain.ErrInvalidSlot):
		return http.StatusBadRequest, ErrMsgInvalidSlotError
	case errors.Is(err, domain.ErrSelfGift):
		return http.StatusBadRequest, ErrMsgSelfGiftError
	case errors.Is(err, domain.ErrNotPremium):
		return http.StatusBadRequest, ErrMsgNotPremiumError
	case errors.Is(err, domain.ErrNotPurchasable):
		return http.StatusBadRequest, ErrMsgNotPurchasableError
	case errors.Is(err, domain.ErrNotConsumable):
		return http.StatusBadRequest, ErrMsgNotConsumableError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError

	// Forbidden
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusForbidden, ErrMsgNotOwnerError
	case errors.Is(err, domain.ErrNotInstanceOwner):
		return http.StatusForbidden, ErrMsgNotInstanceOwnerError

	// Conflicts with current state
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusConflict, ErrMsgNotEnoughCurrencyError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusConflict, ErrMsgInsufficientItemsErr
	case errors.Is(err, domain.ErrAlreadyOwned):
		return http.StatusConflict, ErrMsgAlreadyOwnedError
	case errors.Is(err, domain.ErrInventoryFull):
		return http.StatusConflict, ErrMsgInventoryFullError
	case errors.Is(err, domain.ErrInstanceFull):
		return http.StatusConflict, ErrMsgInstanceFullError
	case errors.Is(err, domain.ErrInstanceNotJoinable):
		return http.StatusConflict, ErrMsgInstanceNotJoinableError
	case errors.Is(err, domain.ErrWorldItemCollected):
		return http.StatusConflict, ErrMsgWorldItemCollectedError
	case errors.Is(err, domain.ErrNotInInstance):
		return http.StatusConflict, ErrMsgNotInInstanceError
	case errors.Is(err, domain.ErrDifferentInstance):
		return http.StatusConflict, ErrMsgDifferentInstanceErr
	case errors.Is(err, domain.ErrOutOfPickupRange):
		return http.StatusConflict, ErrMsgOutOfPickupRangeError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
