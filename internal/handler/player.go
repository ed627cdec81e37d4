package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/logger"
	"github.com/eon-online/eon-server/internal/player"
)

type ConnectRequest struct {
	Username string `json:"username" validate:"omitempty,max=32,excludesall=\x00\n\r\t"`
}

// HandleConnect registers the caller as online, creating the player on first
// connect
// @Summary Connect player
// @Description Marks the caller online; first connect creates the player at spawn
// @Tags player
// @Accept json
// @Produce json
// @Param request body ConnectRequest true "Connect details"
// @Success 200 {object} domain.Player
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /players/connect [post]
func HandleConnect(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req ConnectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode connect request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		p, err := svc.Connect(r.Context(), playerID, req.Username)
		if err != nil {
			log.Error("Failed to connect player", "error", err, "player_id", playerID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// HandleDisconnect marks the caller offline
// @Summary Disconnect player
// @Description Marks the caller offline
// @Tags player
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Router /players/disconnect [post]
func HandleDisconnect(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := callerID(w, r)
		if !ok {
			return
		}

		if err := svc.Disconnect(r.Context(), playerID); err != nil {
			log.Error("Failed to disconnect player", "error", err, "player_id", playerID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDisconnected})
	}
}

// HandleGetPlayer returns the caller's player state
// @Summary Get player
// @Description Returns the caller's current player state
// @Tags player
// @Produce json
// @Success 200 {object} domain.Player
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/me [get]
func HandleGetPlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := callerID(w, r)
		if !ok {
			return
		}

		p, err := svc.GetPlayer(r.Context(), playerID)
		if err != nil {
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

type SetNameRequest struct {
	Name string `json:"name" validate:"required,max=32,excludesall=\x00\n\r\t"`
}

// HandleSetName renames the caller
// @Summary Set player name
// @Description Renames the caller
// @Tags player
// @Accept json
// @Produce json
// @Param request body SetNameRequest true "New name"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /players/name [post]
func HandleSetName(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req SetNameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode set name request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		if err := svc.SetName(r.Context(), playerID, req.Name); err != nil {
			log.Error("Failed to set name", "error", err, "player_id", playerID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgNameUpdated})
	}
}

// HandleUpdateTransform replicates the caller's position and rotation
// @Summary Update transform
// @Description Replicates the caller's position and rotation
// @Tags player
// @Accept json
// @Produce json
// @Param request body domain.Transform true "Transform"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /players/transform [post]
func HandleUpdateTransform(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := callerID(w, r)
		if !ok {
			return
		}

		var t domain.Transform
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := svc.UpdateTransform(r.Context(), playerID, t); err != nil {
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTransformUpdated})
	}
}

type SetAttackingRequest struct {
	Attacking bool `json:"attacking"`
}

// HandleSetAttacking replicates the caller's attacking flag
// @Summary Set attacking state
// @Description Replicates the caller's attacking flag
// @Tags player
// @Accept json
// @Produce json
// @Param request body SetAttackingRequest true "Attacking state"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /players/attacking [post]
func HandleSetAttacking(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req SetAttackingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := svc.SetAttacking(r.Context(), playerID, req.Attacking); err != nil {
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTransformUpdated})
	}
}

type DamageRequest struct {
	TargetID string  `json:"target_id" validate:"required,uuid"`
	Amount   float32 `json:"amount" validate:"gt=0"`
}

type HealthResponseBody struct {
	Health float32 `json:"health"`
}

// HandleDamage applies damage from the caller to a target in the same
// instance
// @Summary Apply damage
// @Description Applies damage from the caller to a target in the same instance
// @Tags player
// @Accept json
// @Produce json
// @Param request body DamageRequest true "Damage details"
// @Success 200 {object} HealthResponseBody
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /players/damage [post]
func HandleDamage(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		attackerID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req DamageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode damage request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		health, err := svc.ApplyDamage(r.Context(), attackerID, req.TargetID, req.Amount)
		if err != nil {
			log.Error("Failed to apply damage", "error", err, "attacker_id", attackerID, "target_id", req.TargetID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, HealthResponseBody{Health: health})
	}
}

type HealRequest struct {
	Amount float32 `json:"amount" validate:"gt=0"`
}

// HandleHeal restores the caller's health up to their maximum
// @Summary Heal player
// @Description Restores the caller's health up to their maximum
// @Tags player
// @Accept json
// @Produce json
// @Param request body HealRequest true "Heal details"
// @Success 200 {object} HealthResponseBody
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /players/heal [post]
func HandleHeal(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req HealRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		health, err := svc.Heal(r.Context(), playerID, req.Amount)
		if err != nil {
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, HealthResponseBody{Health: health})
	}
}
