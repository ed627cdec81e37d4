package domain

import "time"

// InstanceState is the lifecycle state of a game instance
type InstanceState string

const (
	InstanceLobby      InstanceState = "lobby"
	InstanceInProgress InstanceState = "in_progress"
	InstanceFinished   InstanceState = "finished"
	InstanceClosed     InstanceState = "closed"
)

// Joinable reports whether players may enter an instance in this state.
func (s InstanceState) Joinable() bool {
	return s == InstanceLobby || s == InstanceInProgress
}

// GameInstance is a bounded multiplayer session/room
type GameInstance struct {
	ID             int64         `json:"instance_id" db:"instance_id"`
	Name           string        `json:"name" db:"name"`
	MaxPlayers     int           `json:"max_players" db:"max_players"`
	CurrentPlayers int           `json:"current_players" db:"current_players"`
	State          InstanceState `json:"state" db:"state"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	OwnerID        string        `json:"owner_id" db:"owner_id"`
}

// WorldItem is a collectible item pickup placed in an instance
type WorldItem struct {
	ID          int64   `json:"world_item_id" db:"world_item_id"`
	InstanceID  int64   `json:"instance_id" db:"instance_id"`
	ItemID      string  `json:"item_id" db:"item_id"`
	Quantity    int     `json:"quantity" db:"quantity"`
	PosX        float32 `json:"pos_x" db:"pos_x"`
	PosY        float32 `json:"pos_y" db:"pos_y"`
	PosZ        float32 `json:"pos_z" db:"pos_z"`
	IsCollected bool    `json:"is_collected" db:"is_collected"`
}

// Interactable is a toggleable world object (door, chest, lever)
type Interactable struct {
	ID         int64  `json:"interactable_id" db:"interactable_id"`
	InstanceID int64  `json:"instance_id" db:"instance_id"`
	Kind       string `json:"kind" db:"kind"`
	IsActive   bool   `json:"is_active" db:"is_active"`
}
