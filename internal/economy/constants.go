package economy

// Database operation error messages
const (
	ErrMsgBeginTxFailed        = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed       = "failed to commit transaction: %w"
	ErrMsgLockClaimFailed      = "failed to lock ownership claim: %w"
	ErrMsgCheckOwnershipFailed = "failed to check ownership: %w"
	ErrMsgCheckRecipientFailed = "failed to check recipient: %w"
	ErrMsgEnsureWalletFailed   = "failed to ensure wallet: %w"
	ErrMsgInsertTxnFailed      = "failed to insert transaction record: %w"
	ErrMsgInsertOwnedFailed    = "failed to insert ownership record: %w"
	ErrMsgListOwnedFailed      = "failed to list ownership records: %w"
)

// Log messages
const (
	LogMsgPurchaseCalled    = "PurchasePremiumItem called"
	LogMsgPurchased         = "Premium item purchased"
	LogMsgGiftCalled        = "GiftPremiumItem called"
	LogMsgGifted            = "Premium item gifted"
	LogMsgGrantCalled       = "AdminGrantPremiumItem called"
	LogMsgGranted           = "Premium item granted"
	LogMsgReclaimCalled     = "ReclaimPremiumItems called"
	LogMsgReclaimed         = "Premium items reclaimed"
	LogMsgReclaimSkipped    = "Reclaim skipped, definition missing"
	LogMsgCurrencyAddCalled = "AddPremiumCurrency called"
	LogMsgCurrencyAdded     = "Premium currency added"
)
