package domain

import "time"

// Player represents a connected (or previously connected) player.
// Position and rotation are raw replicated state; no invariants beyond
// "write what was sent".
type Player struct {
	ID          string    `json:"player_id" db:"player_id"`
	Username    string    `json:"username" db:"username"`
	InstanceID  *int64    `json:"instance_id,omitempty" db:"instance_id"`
	PosX        float32   `json:"pos_x" db:"pos_x"`
	PosY        float32   `json:"pos_y" db:"pos_y"`
	PosZ        float32   `json:"pos_z" db:"pos_z"`
	RotPitch    float32   `json:"rot_pitch" db:"rot_pitch"`
	RotYaw      float32   `json:"rot_yaw" db:"rot_yaw"`
	RotRoll     float32   `json:"rot_roll" db:"rot_roll"`
	Health      float32   `json:"health" db:"health"`
	MaxHealth   float32   `json:"max_health" db:"max_health"`
	IsAttacking bool      `json:"is_attacking" db:"is_attacking"`
	IsOnline    bool      `json:"is_online" db:"is_online"`
	LastUpdate  time.Time `json:"last_update" db:"last_update"`
}

// Transform is a position/rotation pair sent by the client sync loop
type Transform struct {
	PosX     float32 `json:"pos_x"`
	PosY     float32 `json:"pos_y"`
	PosZ     float32 `json:"pos_z"`
	RotPitch float32 `json:"rot_pitch"`
	RotYaw   float32 `json:"rot_yaw"`
	RotRoll  float32 `json:"rot_roll"`
}
