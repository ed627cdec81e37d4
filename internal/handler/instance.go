package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/instance"
	"github.com/eon-online/eon-server/internal/logger"
)

type CreateInstanceRequest struct {
	Name       string `json:"name" validate:"required,max=64,excludesall=\x00\n\r\t"`
	MaxPlayers int    `json:"max_players" validate:"min=1,max=16"`
}

// HandleCreateInstance opens a new instance owned by the caller
// @Summary Create instance
// @Description Opens a new game instance in the lobby state, owned by the caller
// @Tags instance
// @Accept json
// @Produce json
// @Param request body CreateInstanceRequest true "Instance details"
// @Success 200 {object} domain.GameInstance
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /instances [post]
func HandleCreateInstance(svc instance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ownerID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req CreateInstanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode create instance request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		inst, err := svc.Create(r.Context(), ownerID, req.Name, req.MaxPlayers)
		if err != nil {
			log.Error("Failed to create instance", "error", err, "owner_id", ownerID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, inst)
	}
}

type ListInstancesResponse struct {
	Instances []domain.GameInstance `json:"instances"`
}

// HandleListInstances returns all instances
// @Summary List instances
// @Description Returns all game instances
// @Tags instance
// @Produce json
// @Success 200 {object} ListInstancesResponse
// @Router /instances [get]
func HandleListInstances(svc instance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		instances, err := svc.List(r.Context())
		if err != nil {
			log.Error("Failed to list instances", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgListInstancesFailed)
			return
		}

		respondJSON(w, http.StatusOK, ListInstancesResponse{Instances: instances})
	}
}

// HandleGetInstance returns one instance by ID
// @Summary Get instance
// @Description Returns one game instance by ID
// @Tags instance
// @Produce json
// @Param instanceID path int true "Instance ID"
// @Success 200 {object} domain.GameInstance
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /instances/{instanceID} [get]
func HandleGetInstance(svc instance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		instanceID, ok := pathID(w, r, "instanceID")
		if !ok {
			return
		}

		inst, err := svc.Get(r.Context(), instanceID)
		if err != nil {
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, inst)
	}
}

// HandleJoinInstance moves the caller into an instance
// @Summary Join instance
// @Description Moves the caller into an instance, leaving any previous one
// @Tags instance
// @Produce json
// @Param instanceID path int true "Instance ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /instances/{instanceID}/join [post]
func HandleJoinInstance(svc instance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := callerID(w, r)
		if !ok {
			return
		}
		instanceID, ok := pathID(w, r, "instanceID")
		if !ok {
			return
		}

		if err := svc.Join(r.Context(), playerID, instanceID); err != nil {
			log.Error("Failed to join instance", "error", err, "player_id", playerID, "instance_id", instanceID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgJoinedInstance})
	}
}

// HandleLeaveInstance removes the caller from their current instance
// @Summary Leave instance
// @Description Removes the caller from their current instance
// @Tags instance
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /instances/leave [post]
func HandleLeaveInstance(svc instance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := callerID(w, r)
		if !ok {
			return
		}

		if err := svc.Leave(r.Context(), playerID); err != nil {
			log.Error("Failed to leave instance", "error", err, "player_id", playerID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLeftInstance})
	}
}

type SetInstanceStateRequest struct {
	State string `json:"state" validate:"required,oneof=lobby in_progress finished closed"`
}

// HandleSetInstanceState changes the instance lifecycle state. Owner only.
// @Summary Set instance state
// @Description Changes the instance lifecycle state; only the owner may do this
// @Tags instance
// @Accept json
// @Produce json
// @Param instanceID path int true "Instance ID"
// @Param request body SetInstanceStateRequest true "New state"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /instances/{instanceID}/state [post]
func HandleSetInstanceState(svc instance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := callerID(w, r)
		if !ok {
			return
		}
		instanceID, ok := pathID(w, r, "instanceID")
		if !ok {
			return
		}

		var req SetInstanceStateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode set state request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		if err := svc.SetState(r.Context(), playerID, instanceID, domain.InstanceState(req.State)); err != nil {
			log.Error("Failed to set instance state", "error", err, "player_id", playerID, "instance_id", instanceID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgStateUpdated})
	}
}

type SpawnWorldItemRequest struct {
	ItemID   string  `json:"item_id" validate:"required,max=64"`
	Quantity int     `json:"quantity" validate:"min=1,max=10000"`
	PosX     float32 `json:"pos_x"`
	PosY     float32 `json:"pos_y"`
	PosZ     float32 `json:"pos_z"`
}

// HandleSpawnWorldItem places a collectible pickup in an instance. Admin
// only; the route sits behind the admin key middleware.
// @Summary Spawn world item
// @Description Places a collectible item pickup in an instance (admin action)
// @Tags admin
// @Accept json
// @Produce json
// @Param instanceID path int true "Instance ID"
// @Param request body SpawnWorldItemRequest true "Spawn details"
// @Success 200 {object} domain.WorldItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/instances/{instanceID}/items [post]
func HandleSpawnWorldItem(svc instance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		instanceID, ok := pathID(w, r, "instanceID")
		if !ok {
			return
		}

		var req SpawnWorldItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode spawn item request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		item, err := svc.SpawnWorldItem(r.Context(), instanceID, req.ItemID, req.Quantity, req.PosX, req.PosY, req.PosZ)
		if err != nil {
			log.Error("Failed to spawn world item", "error", err, "instance_id", instanceID, "item_id", req.ItemID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, item)
	}
}

type ListWorldItemsResponse struct {
	Items []domain.WorldItem `json:"items"`
}

// HandleListWorldItems returns the uncollected world items in an instance
// @Summary List world items
// @Description Returns the uncollected item pickups in an instance
// @Tags instance
// @Produce json
// @Param instanceID path int true "Instance ID"
// @Success 200 {object} ListWorldItemsResponse
// @Failure 400 {object} ErrorResponse
// @Router /instances/{instanceID}/items [get]
func HandleListWorldItems(svc instance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		instanceID, ok := pathID(w, r, "instanceID")
		if !ok {
			return
		}

		items, err := svc.ListWorldItems(r.Context(), instanceID)
		if err != nil {
			log.Error("Failed to list world items", "error", err, "instance_id", instanceID)
			respondError(w, http.StatusInternalServerError, ErrMsgListWorldItemsFailed)
			return
		}

		respondJSON(w, http.StatusOK, ListWorldItemsResponse{Items: items})
	}
}

// HandleCollectWorldItem picks up a world item into the caller's inventory
// @Summary Collect world item
// @Description Picks up a world item into the caller's inventory
// @Tags instance
// @Produce json
// @Param worldItemID path int true "World item ID"
// @Success 200 {object} instance.CollectResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /world-items/{worldItemID}/collect [post]
func HandleCollectWorldItem(svc instance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := callerID(w, r)
		if !ok {
			return
		}
		worldItemID, ok := pathID(w, r, "worldItemID")
		if !ok {
			return
		}

		result, err := svc.CollectWorldItem(r.Context(), playerID, worldItemID)
		if err != nil {
			log.Error("Failed to collect world item", "error", err, "player_id", playerID, "world_item_id", worldItemID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

type ToggleInteractableRequest struct {
	Active bool `json:"active"`
}

// HandleToggleInteractable flips a world object's active flag. Admin only.
// @Summary Toggle interactable
// @Description Sets a world object's active flag (admin action)
// @Tags admin
// @Accept json
// @Produce json
// @Param interactableID path int true "Interactable ID"
// @Param request body ToggleInteractableRequest true "Toggle details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/interactables/{interactableID} [post]
func HandleToggleInteractable(svc instance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		interactableID, ok := pathID(w, r, "interactableID")
		if !ok {
			return
		}

		var req ToggleInteractableRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := svc.ToggleInteractable(r.Context(), interactableID, req.Active); err != nil {
			log.Error("Failed to toggle interactable", "error", err, "interactable_id", interactableID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgInteractableSet})
	}
}
