package economy

import (
	"context"
	"fmt"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/inventory"
	"github.com/eon-online/eon-server/internal/repository"
)

// acquisition describes the ledger writes shared by purchase, gift and grant
type acquisition struct {
	actorID string // who performed the operation (buyer, sender, recipient for grants)
	ownerID string // who receives the item
	def     *domain.ItemDefinition
	kind    domain.TransactionKind
	amount  int64 // currency spent; 0 for grants
	receipt string
	isGift  bool
	gifter  *string
}

// recordAcquisition appends the transaction record, the ownership record and
// the inventory grant inside the caller's open transaction. Returns the units
// added and the transaction id.
func (s *service) recordAcquisition(ctx context.Context, tx repository.EconomyTx, a acquisition) (int, int64, error) {
	now := s.now()
	itemID := a.def.ID

	txnID, err := tx.InsertTransaction(ctx, &domain.TransactionRecord{
		ActorID:    a.actorID,
		ItemID:     &itemID,
		Amount:     a.amount,
		Kind:       a.kind,
		CreatedAt:  now,
		ReceiptRef: a.receipt,
	})
	if err != nil {
		return 0, 0, fmt.Errorf(ErrMsgInsertTxnFailed, err)
	}

	if _, err := tx.InsertOwnership(ctx, &domain.OwnershipRecord{
		OwnerID:       a.ownerID,
		ItemID:        itemID,
		AcquiredAt:    now,
		TransactionID: txnID,
		IsGift:        a.isGift,
		GifterID:      a.gifter,
	}); err != nil {
		return 0, 0, fmt.Errorf(ErrMsgInsertOwnedFailed, err)
	}

	added, err := inventory.Grant(ctx, tx, a.ownerID, a.def, 1)
	if err != nil {
		return 0, 0, err
	}
	return added, txnID, nil
}
