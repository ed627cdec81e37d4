package economy

import (
	"context"
	"fmt"
	"time"

	"github.com/eon-online/eon-server/internal/domain"
	"github.com/eon-online/eon-server/internal/inventory"
	"github.com/eon-online/eon-server/internal/logger"
	"github.com/eon-online/eon-server/internal/metrics"
	"github.com/eon-online/eon-server/internal/repository"
)

// Catalog is the item definition lookup the service depends on
type Catalog interface {
	Lookup(itemID string) (*domain.ItemDefinition, error)
}

// AcquisitionResult reports a completed purchase, gift or grant
type AcquisitionResult struct {
	TransactionID int64 `json:"transaction_id"`
	Balance       int64 `json:"balance"` // remaining balance of the paying wallet; 0 for grants
	UnitsAdded    int   `json:"units_added"`
}

// Service defines the interface for premium economy operations. Every mutation
// runs as one transaction: all effects become visible together or not at all.
type Service interface {
	PurchasePremiumItem(ctx context.Context, buyerID, itemID string) (*AcquisitionResult, error)
	GiftPremiumItem(ctx context.Context, senderID, itemID, recipientID string) (*AcquisitionResult, error)
	AdminGrantPremiumItem(ctx context.Context, recipientID, itemID, reason string) (*AcquisitionResult, error)
	ReclaimPremiumItems(ctx context.Context, ownerID string) (int, error)
	AddPremiumCurrency(ctx context.Context, ownerID string, amount int64, receipt string) (*domain.Wallet, error)
	GetWallet(ctx context.Context, ownerID string) (*domain.Wallet, error)
	ListOwnerships(ctx context.Context, ownerID string) ([]domain.OwnershipRecord, error)
	ListTransactions(ctx context.Context, actorID string, limit int) ([]domain.TransactionRecord, error)
}

type service struct {
	repo    repository.Economy
	catalog Catalog
	now     func() time.Time
}

// NewService creates a new economy service
func NewService(repo repository.Economy, catalog Catalog) Service {
	return &service{
		repo:    repo,
		catalog: catalog,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// lookupPurchasable resolves an item and verifies it can be bought with
// premium currency
func (s *service) lookupPurchasable(itemID string) (*domain.ItemDefinition, error) {
	def, err := s.catalog.Lookup(itemID)
	if err != nil {
		return nil, err
	}
	if !def.IsPremium {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotPremium, itemID)
	}
	if def.PremiumPrice <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotPurchasable, itemID)
	}
	return def, nil
}

func (s *service) PurchasePremiumItem(ctx context.Context, buyerID, itemID string) (*AcquisitionResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseCalled, "buyer_id", buyerID, "item_id", itemID)

	def, err := s.lookupPurchasable(itemID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// the claim lock is held until commit, so a competing acquisition of the
	// same exclusive item either finishes first and is seen by HasOwned, or
	// waits and sees ours
	if def.IsExclusive {
		if err := tx.LockOwnershipClaim(ctx, buyerID, itemID); err != nil {
			return nil, fmt.Errorf(ErrMsgLockClaimFailed, err)
		}
		owned, err := tx.HasOwned(ctx, buyerID, itemID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgCheckOwnershipFailed, err)
		}
		if owned {
			return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, itemID)
		}
	}

	wallet, err := tx.EnsureWalletForUpdate(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEnsureWalletFailed, err)
	}
	if wallet.Balance < def.PremiumPrice {
		return nil, fmt.Errorf("%w: balance %d, price %d", domain.ErrInsufficientFunds, wallet.Balance, def.PremiumPrice)
	}
	if err := tx.DebitWallet(ctx, buyerID, def.PremiumPrice); err != nil {
		return nil, err
	}

	added, txnID, err := s.recordAcquisition(ctx, tx, acquisition{
		actorID: buyerID,
		ownerID: buyerID,
		def:     def,
		kind:    domain.TransactionPurchase,
		amount:  def.PremiumPrice,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	metrics.Purchases.WithLabelValues(itemID).Inc()
	metrics.CurrencyDebited.Add(float64(def.PremiumPrice))

	log.Info(LogMsgPurchased, "buyer_id", buyerID, "item_id", itemID, "price", def.PremiumPrice)
	return &AcquisitionResult{
		TransactionID: txnID,
		Balance:       wallet.Balance - def.PremiumPrice,
		UnitsAdded:    added,
	}, nil
}

func (s *service) GiftPremiumItem(ctx context.Context, senderID, itemID, recipientID string) (*AcquisitionResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGiftCalled, "sender_id", senderID, "item_id", itemID, "recipient_id", recipientID)

	if senderID == recipientID {
		return nil, domain.ErrSelfGift
	}

	def, err := s.lookupPurchasable(itemID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	known, err := tx.PlayerExists(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckRecipientFailed, err)
	}
	if !known {
		return nil, fmt.Errorf("%w: recipient %s", domain.ErrPlayerNotFound, recipientID)
	}

	// exclusivity is judged against the recipient, who ends up owning the
	// item; the claim lock also covers the recipient buying it themselves
	if def.IsExclusive {
		if err := tx.LockOwnershipClaim(ctx, recipientID, itemID); err != nil {
			return nil, fmt.Errorf(ErrMsgLockClaimFailed, err)
		}
		owned, err := tx.HasOwned(ctx, recipientID, itemID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgCheckOwnershipFailed, err)
		}
		if owned {
			return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, itemID)
		}
	}

	wallet, err := tx.EnsureWalletForUpdate(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEnsureWalletFailed, err)
	}
	if wallet.Balance < def.PremiumPrice {
		return nil, fmt.Errorf("%w: balance %d, price %d", domain.ErrInsufficientFunds, wallet.Balance, def.PremiumPrice)
	}
	if err := tx.DebitWallet(ctx, senderID, def.PremiumPrice); err != nil {
		return nil, err
	}

	added, txnID, err := s.recordAcquisition(ctx, tx, acquisition{
		actorID: senderID,
		ownerID: recipientID,
		def:     def,
		kind:    domain.TransactionGift,
		amount:  def.PremiumPrice,
		isGift:  true,
		gifter:  &senderID,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	metrics.Gifts.WithLabelValues(itemID).Inc()
	metrics.CurrencyDebited.Add(float64(def.PremiumPrice))

	log.Info(LogMsgGifted, "sender_id", senderID, "item_id", itemID, "recipient_id", recipientID, "price", def.PremiumPrice)
	return &AcquisitionResult{
		TransactionID: txnID,
		Balance:       wallet.Balance - def.PremiumPrice,
		UnitsAdded:    added,
	}, nil
}

// AdminGrantPremiumItem hands an item to a player without payment. Callers
// must already be authorized; the HTTP layer gates this behind the admin key.
func (s *service) AdminGrantPremiumItem(ctx context.Context, recipientID, itemID, reason string) (*AcquisitionResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGrantCalled, "recipient_id", recipientID, "item_id", itemID, "reason", reason)

	def, err := s.catalog.Lookup(itemID)
	if err != nil {
		return nil, err
	}
	if !def.IsPremium {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotPremium, itemID)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	known, err := tx.PlayerExists(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckRecipientFailed, err)
	}
	if !known {
		return nil, fmt.Errorf("%w: recipient %s", domain.ErrPlayerNotFound, recipientID)
	}

	// grants spend no currency; the audit record carries the reason
	added, txnID, err := s.recordAcquisition(ctx, tx, acquisition{
		actorID: recipientID,
		ownerID: recipientID,
		def:     def,
		kind:    domain.TransactionGrant,
		amount:  0,
		receipt: reason,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	metrics.Grants.WithLabelValues(itemID).Inc()

	log.Info(LogMsgGranted, "recipient_id", recipientID, "item_id", itemID)
	return &AcquisitionResult{TransactionID: txnID, UnitsAdded: added}, nil
}

// ReclaimPremiumItems re-grants every item the owner has ever acquired.
// Unique exclusive items already present in inventory are skipped, which makes
// the operation idempotent. Returns the number of records that put units back.
func (s *service) ReclaimPremiumItems(ctx context.Context, ownerID string) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgReclaimCalled, "owner_id", ownerID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return 0, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	records, err := tx.ListOwnershipsForOwner(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgListOwnedFailed, err)
	}

	regranted := 0
	for _, rec := range records {
		def, err := s.catalog.Lookup(rec.ItemID)
		if err != nil {
			log.Warn(LogMsgReclaimSkipped, "item_id", rec.ItemID)
			continue
		}

		if def.IsUnique() && def.IsExclusive {
			held, err := inventory.HasUnit(ctx, tx, ownerID, rec.ItemID)
			if err != nil {
				return 0, err
			}
			if held {
				continue
			}
		}

		added, err := inventory.Grant(ctx, tx, ownerID, def, 1)
		if err != nil {
			return 0, err
		}
		if added > 0 {
			regranted++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return 0, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	metrics.Reclaims.Inc()

	log.Info(LogMsgReclaimed, "owner_id", ownerID, "records", len(records), "regranted", regranted)
	return regranted, nil
}

// AddPremiumCurrency credits the wallet after an out-of-band payment. The
// receipt is an opaque reference recorded for the audit trail; verification
// happens upstream.
func (s *service) AddPremiumCurrency(ctx context.Context, ownerID string, amount int64, receipt string) (*domain.Wallet, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCurrencyAddCalled, "owner_id", ownerID, "amount", amount)

	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %d", domain.ErrInvalidInput, amount)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	wallet, err := tx.EnsureWalletForUpdate(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEnsureWalletFailed, err)
	}

	now := s.now()
	if err := tx.CreditWallet(ctx, ownerID, amount, now); err != nil {
		return nil, err
	}

	// a top-up spends no currency; the credited amount shows in the wallet
	if _, err := tx.InsertTransaction(ctx, &domain.TransactionRecord{
		ActorID:    ownerID,
		ItemID:     nil,
		Amount:     0,
		Kind:       domain.TransactionCurrencyAdd,
		CreatedAt:  now,
		ReceiptRef: receipt,
	}); err != nil {
		return nil, fmt.Errorf(ErrMsgInsertTxnFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	metrics.CurrencyCredited.Add(float64(amount))

	updated := *wallet
	updated.Balance += amount
	updated.LifetimePurchased += amount
	updated.LastPurchaseAt = &now

	log.Info(LogMsgCurrencyAdded, "owner_id", ownerID, "amount", amount, "balance", updated.Balance)
	return &updated, nil
}

// GetWallet returns the owner's wallet, creating an empty one on first access
func (s *service) GetWallet(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	wallet, err := s.repo.GetWallet(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	wallet, err = tx.EnsureWalletForUpdate(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgEnsureWalletFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	return wallet, nil
}

func (s *service) ListOwnerships(ctx context.Context, ownerID string) ([]domain.OwnershipRecord, error) {
	return s.repo.ListOwnerships(ctx, ownerID)
}

func (s *service) ListTransactions(ctx context.Context, actorID string, limit int) ([]domain.TransactionRecord, error) {
	return s.repo.ListTransactions(ctx, actorID, limit)
}
