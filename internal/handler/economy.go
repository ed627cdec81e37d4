package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/economy"
	"github.com/eon-online/eon-server/internal/logger"
)

type PurchaseRequest struct {
	ItemID string `json:"item_id" validate:"required,max=64"`
}

// HandlePurchase buys a premium item for the caller
// @Summary Purchase premium item
// @Description Buys a premium item with the caller's premium currency
// @Tags economy
// @Accept json
// @Produce json
// @Param request body PurchaseRequest true "Purchase details"
// @Success 200 {object} economy.AcquisitionResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /economy/purchase [post]
func HandlePurchase(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		buyerID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req PurchaseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode purchase request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		result, err := svc.PurchasePremiumItem(r.Context(), buyerID, req.ItemID)
		if err != nil {
			log.Error("Failed to purchase item", "error", err, "buyer_id", buyerID, "item_id", req.ItemID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

type GiftRequest struct {
	ItemID      string `json:"item_id" validate:"required,max=64"`
	RecipientID string `json:"recipient_id" validate:"required,uuid"`
}

// HandleGift buys a premium item for another player at the caller's expense
// @Summary Gift premium item
// @Description Buys a premium item for another player; the caller pays
// @Tags economy
// @Accept json
// @Produce json
// @Param request body GiftRequest true "Gift details"
// @Success 200 {object} economy.AcquisitionResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /economy/gift [post]
func HandleGift(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		senderID, ok := callerID(w, r)
		if !ok {
			return
		}

		var req GiftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode gift request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		result, err := svc.GiftPremiumItem(r.Context(), senderID, req.ItemID, req.RecipientID)
		if err != nil {
			log.Error("Failed to gift item", "error", err, "sender_id", senderID, "recipient_id", req.RecipientID, "item_id", req.ItemID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

type GrantRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid"`
	ItemID      string `json:"item_id" validate:"required,max=64"`
	Reason      string `json:"reason" validate:"required,max=200"`
}

// HandleAdminGrant grants a premium item without payment. Admin only; the
// route sits behind the admin key middleware.
// @Summary Grant premium item
// @Description Grants a premium item to a player without payment (admin action)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body GrantRequest true "Grant details"
// @Success 200 {object} economy.AcquisitionResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/economy/grant [post]
func HandleAdminGrant(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req GrantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode grant request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		result, err := svc.AdminGrantPremiumItem(r.Context(), req.RecipientID, req.ItemID, req.Reason)
		if err != nil {
			log.Error("Failed to grant item", "error", err, "recipient_id", req.RecipientID, "item_id", req.ItemID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Item granted", "recipient_id", req.RecipientID, "item_id", req.ItemID, "reason", req.Reason)
		respondJSON(w, http.StatusOK, result)
	}
}

type ReclaimResponse struct {
	Restored int `json:"restored"`
}

// HandleReclaim restores missing premium items from the caller's ownership
// records
// @Summary Reclaim premium items
// @Description Restores premium items recorded as owned but missing from inventory
// @Tags economy
// @Produce json
// @Success 200 {object} ReclaimResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /economy/reclaim [post]
func HandleReclaim(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ownerID, ok := callerID(w, r)
		if !ok {
			return
		}

		restored, err := svc.ReclaimPremiumItems(r.Context(), ownerID)
		if err != nil {
			log.Error("Failed to reclaim items", "error", err, "owner_id", ownerID)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, ReclaimResponse{Restored: restored})
	}
}

type TopUpRequest struct {
	OwnerID string `json:"owner_id" validate:"required,uuid"`
	Amount  int64  `json:"amount" validate:"required,min=1"`
	Receipt string `json:"receipt" validate:"required,max=200"`
}

// HandleAdminTopUp credits premium currency after a verified payment. Admin
// only; called by the payment callback, never by game clients.
// @Summary Credit premium currency
// @Description Credits premium currency to a wallet after a verified payment (admin action)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body TopUpRequest true "Top-up details"
// @Success 200 {object} domain.Wallet
// @Failure 400 {object} ErrorResponse
// @Router /admin/economy/currency [post]
func HandleAdminTopUp(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req TopUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode top-up request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		wallet, err := svc.AddPremiumCurrency(r.Context(), req.OwnerID, req.Amount, req.Receipt)
		if err != nil {
			log.Error("Failed to credit currency", "error", err, "owner_id", req.OwnerID, "amount", req.Amount)
			status, msg := mapServiceError(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Currency credited", "owner_id", req.OwnerID, "amount", req.Amount)
		respondJSON(w, http.StatusOK, wallet)
	}
}

// HandleGetWallet returns the caller's wallet, creating it on first read
// @Summary Get wallet
// @Description Returns the caller's premium currency wallet
// @Tags economy
// @Produce json
// @Success 200 {object} domain.Wallet
// @Failure 401 {object} ErrorResponse
// @Router /economy/wallet [get]
func HandleGetWallet(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ownerID, ok := callerID(w, r)
		if !ok {
			return
		}

		wallet, err := svc.GetWallet(r.Context(), ownerID)
		if err != nil {
			log.Error("Failed to get wallet", "error", err, "owner_id", ownerID)
			respondError(w, http.StatusInternalServerError, ErrMsgGetWalletFailed)
			return
		}

		respondJSON(w, http.StatusOK, wallet)
	}
}

type ListOwnershipsResponse struct {
	Ownerships []domain.OwnershipRecord `json:"ownerships"`
}

// HandleListOwnerships returns the caller's ownership records
// @Summary List ownerships
// @Description Returns the caller's permanent ownership records
// @Tags economy
// @Produce json
// @Success 200 {object} ListOwnershipsResponse
// @Failure 401 {object} ErrorResponse
// @Router /economy/ownerships [get]
func HandleListOwnerships(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ownerID, ok := callerID(w, r)
		if !ok {
			return
		}

		ownerships, err := svc.ListOwnerships(r.Context(), ownerID)
		if err != nil {
			log.Error("Failed to list ownerships", "error", err, "owner_id", ownerID)
			respondError(w, http.StatusInternalServerError, ErrMsgListOwnershipsFailed)
			return
		}

		respondJSON(w, http.StatusOK, ListOwnershipsResponse{Ownerships: ownerships})
	}
}

type ListTransactionsResponse struct {
	Transactions []domain.TransactionRecord `json:"transactions"`
}

// HandleListTransactions returns the caller's transaction history, newest
// first
// @Summary List transactions
// @Description Returns the caller's transaction history, newest first
// @Tags economy
// @Produce json
// @Param limit query int false "Maximum records to return (default 50)"
// @Success 200 {object} ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /economy/transactions [get]
func HandleListTransactions(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		actorID, ok := callerID(w, r)
		if !ok {
			return
		}

		limit := 50
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > 500 {
				respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, "limit"))
				return
			}
			limit = parsed
		}

		transactions, err := svc.ListTransactions(r.Context(), actorID, limit)
		if err != nil {
			log.Error("Failed to list transactions", "error", err, "actor_id", actorID)
			respondError(w, http.StatusInternalServerError, ErrMsgListTransactionsFailed)
			return
		}

		respondJSON(w, http.StatusOK, ListTransactionsResponse{Transactions: transactions})
	}
}
