package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/inventory"
	"github.com/eon-online/eon-server/internal/logger"
)

type GetInventoryResponse struct {
	Entries []domain.InventoryEntry `json:"entries"`
}

// HandleGetInventory returns the caller's inventory ordered by slot
// @Summary Get inventory
// @Description Returns the caller's inventory entries ordered by slot
// @Tags inventory
// @Produce json
// @Success 200 {object} GetInventoryResponse
// @Failure 401 {object} ErrorResponse
// @Router /inventory [get]
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := callerID(w, r)
		if !ok {
			return
		}

		entries, err := svc.Get(r.Context(), playerID)
		if err != nil {
			log.Error("Failed to get inventory", "error", err, "player_id", playerID)
			respondError(w, http.StatusInternalServerError, ErrMsgGetInventoryFailed)
			return
		}

		respondJSON(w, http.StatusOK, GetInventoryResponse{Entries: entries})
	}
}

type AddStackRequest struct {
	ItemID   string `json:"item_id" validate:"required,max=64"`
	Quantity int    `json:"quantity" validate:"min=1,max=10000"`
}

type AddStackResponse struct {
	Added int `json:"added"`
}

// HandleAddStack adds items to the caller's inventory, merging into an
// existing stack where possible
// @Summary Add item stack
// @Description Adds items to the caller's inventory; excess over the stack cap is discarded
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body AddStackRequest true "Item details"
// @Success 200 {object} AddStackResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /inventory/add [post]
func HandleAddStack(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req AddStackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode add stack request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		added, err := svc.AddStack(r.Context(), playerID, req.ItemID, req.Quantity)
		if err != nil {
			log.Error("Failed to add stack", "error", err, "player_id", playerID, "item_id", req.ItemID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Stack added", "player_id", playerID, "item_id", req.ItemID, "added", added)
		respondJSON(w, http.StatusOK, AddStackResponse{Added: added})
	}
}

type RemoveEntryRequest struct {
	EntryID  int64 `json:"entry_id" validate:"required,min=1"`
	Quantity int   `json:"quantity" validate:"min=1,max=10000"`
}

// HandleRemoveEntry removes items from one of the caller's inventory entries
// @Summary Remove from entry
// @Description Removes a quantity from an inventory entry; the entry is deleted when it reaches zero
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body RemoveEntryRequest true "Removal details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/remove [post]
func HandleRemoveEntry(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req RemoveEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode remove entry request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		if err := svc.Remove(r.Context(), playerID, req.EntryID, req.Quantity); err != nil {
			log.Error("Failed to remove entry", "error", err, "player_id", playerID, "entry_id", req.EntryID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEntryRemoved})
	}
}

type UseItemRequest struct {
	EntryID int64 `json:"entry_id" validate:"required,min=1"`
}

type UseItemResponse struct {
	Health float32 `json:"health"`
}

// HandleUseItem consumes one unit of a consumable entry and applies its effect
// @Summary Use item
// @Description Consumes one unit of a consumable inventory entry and applies its heal effect
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body UseItemRequest true "Entry to consume"
// @Success 200 {object} UseItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/use [post]
func HandleUseItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req UseItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode use item request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		health, err := svc.UseItem(r.Context(), playerID, req.EntryID)
		if err != nil {
			log.Error("Failed to use item", "error", err, "player_id", playerID, "entry_id", req.EntryID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Item used", "player_id", playerID, "entry_id", req.EntryID)
		respondJSON(w, http.StatusOK, UseItemResponse{Health: health})
	}
}

type MoveSlotRequest struct {
	EntryID int64 `json:"entry_id" validate:"required,min=1"`
	NewSlot int   `json:"new_slot" validate:"min=0,max=99"`
}

// HandleMoveSlot relocates an entry to a new slot, swapping with any occupant
// @Summary Move entry slot
// @Description Moves an inventory entry to a new slot, swapping with any occupant
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body MoveSlotRequest true "Move details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/move [post]
func HandleMoveSlot(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req MoveSlotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode move slot request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		if err := svc.MoveSlot(r.Context(), playerID, req.EntryID, req.NewSlot); err != nil {
			log.Error("Failed to move slot", "error", err, "player_id", playerID, "entry_id", req.EntryID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEntryMoved})
	}
}
