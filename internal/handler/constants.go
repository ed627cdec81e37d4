package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest  = "Invalid request body"
	ErrMsgMissingIdentity = "Missing player identity"

	// Query/path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidPathParam  = "Invalid %s path parameter"

	// Player operation error messages
	ErrMsgConnectFailed    = "Failed to connect player"
	ErrMsgDisconnectFailed = "Failed to disconnect player"

	// Inventory operation error messages
	ErrMsgGetInventoryFailed = "Failed to get inventory"

	// Economy operation error messages
	ErrMsgGetWalletFailed        = "Failed to get wallet"
	ErrMsgListOwnershipsFailed   = "Failed to list ownerships"
	ErrMsgListTransactionsFailed = "Failed to list transactions"

	// Instance operation error messages
	ErrMsgListInstancesFailed  = "Failed to list instances"
	ErrMsgListWorldItemsFailed = "Failed to list world items"
)

// Success messages for API responses
const (
	MsgDisconnected     = "Player disconnected"
	MsgNameUpdated      = "Name updated"
	MsgTransformUpdated = "Transform updated"
	MsgEntryRemoved     = "Entry removed"
	MsgEntryMoved       = "Entry moved"
	MsgJoinedInstance   = "Joined instance"
	MsgLeftInstance     = "Left instance"
	MsgStateUpdated     = "Instance state updated"
	MsgInteractableSet  = "Interactable updated"
)
