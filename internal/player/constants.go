package player

import "time"

// DefaultUsername is assigned on first connect until the player picks a name
const DefaultUsername = "Adventurer"

// Player defaults applied on first connect
const (
	DefaultHealth float32 = 100
	SpawnX        float32 = 0
	SpawnY        float32 = 0
	SpawnZ        float32 = 100
)

// Name length bounds in runes
const (
	MinNameLength = 1
	MaxNameLength = 32
)

// Cache sizing
const (
	CacheSize = 1024
	CacheTTL  = 30 * time.Second
)

// Error message formats
const (
	ErrMsgNameLength = "name must be between %d and %d characters"
)

// Log messages
const (
	LogMsgConnectCalled = "Connect called"
	LogMsgConnected     = "Player connected"
	LogMsgDisconnected  = "Player disconnected"
	LogMsgNameChanged   = "Player name changed"
	LogMsgDamageApplied = "Damage applied"
	LogMsgHealed        = "Player healed"
)
