package inventory

// Error message formats
const (
	ErrMsgBeginTxFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed = "failed to commit transaction: %w"
)

// Log messages
const (
	LogMsgAddStackCalled  = "AddStack called"
	LogMsgRemoveCalled    = "Remove called"
	LogMsgMoveSlotCalled  = "MoveSlot called"
	LogMsgUseItemCalled   = "UseItem called"
	LogMsgItemUsed        = "Item consumed"
	LogMsgExcessDiscarded = "Stack cap reached, excess discarded"
)
