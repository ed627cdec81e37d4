package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/economy"
	"github.com/eon-online/eon-server/internal/middleware"
)

const (
	testBuyerID     = "11111111-1111-1111-1111-111111111111"
	testRecipientID = "22222222-2222-2222-2222-222222222222"
)

// newAuthedRequest builds a request carrying a player identity, mirroring
// what the identity middleware does in production.
func newAuthedRequest(method, target, playerID string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if playerID != "" {
		req = req.WithContext(middleware.WithPlayerID(req.Context(), playerID))
	}
	return req
}

func TestHandlePurchase(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		playerID       string
		requestBody    interface{}
		setupMock      func(*MockEconomyService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			playerID:    testBuyerID,
			requestBody: PurchaseRequest{ItemID: "celestial_blade"},
			setupMock: func(m *MockEconomyService) {
				m.On("PurchasePremiumItem", mock.Anything, testBuyerID, "celestial_blade").
					Return(&economy.AcquisitionResult{TransactionID: 7, Balance: 500, UnitsAdded: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"balance":500`,
		},
		{
			name:           "Missing identity",
			playerID:       "",
			requestBody:    PurchaseRequest{ItemID: "celestial_blade"},
			setupMock:      func(m *MockEconomyService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrMsgMissingIdentity,
		},
		{
			name:           "Missing item ID",
			playerID:       testBuyerID,
			requestBody:    PurchaseRequest{},
			setupMock:      func(m *MockEconomyService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid request",
		},
		{
			name:        "Insufficient funds",
			playerID:    testBuyerID,
			requestBody: PurchaseRequest{ItemID: "celestial_blade"},
			setupMock: func(m *MockEconomyService) {
				m.On("PurchasePremiumItem", mock.Anything, testBuyerID, "celestial_blade").
					Return(nil, domain.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgNotEnoughCurrencyError,
		},
		{
			name:        "Already owned",
			playerID:    testBuyerID,
			requestBody: PurchaseRequest{ItemID: "celestial_blade"},
			setupMock: func(m *MockEconomyService) {
				m.On("PurchasePremiumItem", mock.Anything, testBuyerID, "celestial_blade").
					Return(nil, domain.ErrAlreadyOwned)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgAlreadyOwnedError,
		},
		{
			name:        "Unknown item",
			playerID:    testBuyerID,
			requestBody: PurchaseRequest{ItemID: "no_such_item"},
			setupMock: func(m *MockEconomyService) {
				m.On("PurchasePremiumItem", mock.Anything, testBuyerID, "no_such_item").
					Return(nil, domain.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgItemNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockEconomyService)
			tt.setupMock(mockSvc)

			req := newAuthedRequest("POST", "/economy/purchase", tt.playerID, tt.requestBody)
			w := httptest.NewRecorder()
			HandlePurchase(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleGift(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockEconomyService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: GiftRequest{ItemID: "shadow_cloak", RecipientID: testRecipientID},
			setupMock: func(m *MockEconomyService) {
				m.On("GiftPremiumItem", mock.Anything, testBuyerID, "shadow_cloak", testRecipientID).
					Return(&economy.AcquisitionResult{TransactionID: 8, Balance: 100, UnitsAdded: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"transaction_id":8`,
		},
		{
			name:           "Recipient not a UUID",
			requestBody:    GiftRequest{ItemID: "shadow_cloak", RecipientID: "bob"},
			setupMock:      func(m *MockEconomyService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid request",
		},
		{
			name:        "Self gift",
			requestBody: GiftRequest{ItemID: "shadow_cloak", RecipientID: testBuyerID},
			setupMock: func(m *MockEconomyService) {
				m.On("GiftPremiumItem", mock.Anything, testBuyerID, "shadow_cloak", testBuyerID).
					Return(nil, domain.ErrSelfGift)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgSelfGiftError,
		},
		{
			name:        "Recipient not found",
			requestBody: GiftRequest{ItemID: "shadow_cloak", RecipientID: testRecipientID},
			setupMock: func(m *MockEconomyService) {
				m.On("GiftPremiumItem", mock.Anything, testBuyerID, "shadow_cloak", testRecipientID).
					Return(nil, domain.ErrPlayerNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgPlayerNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockEconomyService)
			tt.setupMock(mockSvc)

			req := newAuthedRequest("POST", "/economy/gift", testBuyerID, tt.requestBody)
			w := httptest.NewRecorder()
			HandleGift(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleAdminGrant(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockEconomyService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: GrantRequest{RecipientID: testRecipientID, ItemID: "ember_fox", Reason: "contest winner"},
			setupMock: func(m *MockEconomyService) {
				m.On("AdminGrantPremiumItem", mock.Anything, testRecipientID, "ember_fox", "contest winner").
					Return(&economy.AcquisitionResult{TransactionID: 9, UnitsAdded: 1}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"units_added":1`,
		},
		{
			name:           "Missing reason",
			requestBody:    GrantRequest{RecipientID: testRecipientID, ItemID: "ember_fox"},
			setupMock:      func(m *MockEconomyService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid request",
		},
		{
			name:        "Not a premium item",
			requestBody: GrantRequest{RecipientID: testRecipientID, ItemID: "wood", Reason: "oops"},
			setupMock: func(m *MockEconomyService) {
				m.On("AdminGrantPremiumItem", mock.Anything, testRecipientID, "wood", "oops").
					Return(nil, domain.ErrNotPremium)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotPremiumError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockEconomyService)
			tt.setupMock(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/admin/economy/grant", bytes.NewBuffer(body))
			w := httptest.NewRecorder()
			HandleAdminGrant(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleAdminTopUp(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockEconomyService)
		mockSvc.On("AddPremiumCurrency", mock.Anything, testBuyerID, int64(2000), "stripe-rcpt-1").
			Return(&domain.Wallet{OwnerID: testBuyerID, Balance: 2000}, nil)

		body, _ := json.Marshal(TopUpRequest{OwnerID: testBuyerID, Amount: 2000, Receipt: "stripe-rcpt-1"})
		req := httptest.NewRequest("POST", "/admin/economy/currency", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		HandleAdminTopUp(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"balance":2000`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		mockSvc := new(MockEconomyService)

		body, _ := json.Marshal(TopUpRequest{OwnerID: testBuyerID, Amount: 0, Receipt: "r"})
		req := httptest.NewRequest("POST", "/admin/economy/currency", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		HandleAdminTopUp(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "AddPremiumCurrency", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleReclaim(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockEconomyService)
		mockSvc.On("ReclaimPremiumItems", mock.Anything, testBuyerID).Return(2, nil)

		req := newAuthedRequest("POST", "/economy/reclaim", testBuyerID, nil)
		w := httptest.NewRecorder()
		HandleReclaim(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"restored":2`)
	})

	t.Run("Inventory full", func(t *testing.T) {
		mockSvc := new(MockEconomyService)
		mockSvc.On("ReclaimPremiumItems", mock.Anything, testBuyerID).Return(0, domain.ErrInventoryFull)

		req := newAuthedRequest("POST", "/economy/reclaim", testBuyerID, nil)
		w := httptest.NewRecorder()
		HandleReclaim(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInventoryFullError)
	})
}

func TestHandleGetWallet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockEconomyService)
		mockSvc.On("GetWallet", mock.Anything, testBuyerID).
			Return(&domain.Wallet{OwnerID: testBuyerID, Balance: 750, LifetimePurchased: 2000}, nil)

		req := newAuthedRequest("GET", "/economy/wallet", testBuyerID, nil)
		w := httptest.NewRecorder()
		HandleGetWallet(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"lifetime_purchased":2000`)
	})

	t.Run("Service error", func(t *testing.T) {
		mockSvc := new(MockEconomyService)
		mockSvc.On("GetWallet", mock.Anything, testBuyerID).Return(nil, errors.New("db down"))

		req := newAuthedRequest("GET", "/economy/wallet", testBuyerID, nil)
		w := httptest.NewRecorder()
		HandleGetWallet(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgGetWalletFailed)
	})
}

func TestHandleListTransactions_LimitValidation(t *testing.T) {
	mockSvc := new(MockEconomyService)

	req := newAuthedRequest("GET", "/economy/transactions?limit=0", testBuyerID, nil)
	w := httptest.NewRecorder()
	HandleListTransactions(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}
