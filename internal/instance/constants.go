package instance

// Instance name length bounds in runes
const (
	MinNameLength = 1
	MaxNameLength = 64
)

// Player capacity bounds
const (
	MinPlayers = 1
	MaxPlayers = 16
)

// PickupRange is the maximum distance, in world units, at which a player can
// collect a world item
const PickupRange float32 = 200

// Error message formats
const (
	ErrMsgBeginTxFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed = "failed to commit transaction: %w"
	ErrMsgNameLength     = "name must be between %d and %d characters"
	ErrMsgMaxPlayers     = "max players must be between %d and %d"
)

// Log messages
const (
	LogMsgCreateCalled  = "CreateInstance called"
	LogMsgCreated       = "Instance created"
	LogMsgJoinCalled    = "JoinInstance called"
	LogMsgJoined        = "Player joined instance"
	LogMsgLeft          = "Player left instance"
	LogMsgStateChanged  = "Instance state changed"
	LogMsgItemSpawned   = "World item spawned"
	LogMsgItemCollected = "World item collected"
)
