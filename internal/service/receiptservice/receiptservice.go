package receiptservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/panelmart/internal/domain"
	"github.com/GlebRadaev/panelmart/internal/pg"
)

type ReceiptRepo interface {
	Create(ctx context.Context, receipt *domain.TopUpReceipt) (*domain.TopUpReceipt, error)
	LockByID(ctx context.Context, id int) (*domain.TopUpReceipt, error)
	SetStatus(ctx context.Context, id int, status, adminNotes string) error
	ListByReseller(ctx context.Context, resellerID int) ([]domain.TopUpReceipt, error)
	ListByStatus(ctx context.Context, status string) ([]domain.TopUpReceipt, error)
}

type Wallet interface {
	Credit(ctx context.Context, resellerID int, amount decimal.Decimal, entry *domain.LedgerEntry) error
}

var (
	ErrReceiptNotFound   = errors.New("receipt not found")
	ErrReceiptNotPending = errors.New("receipt has already been reviewed")
	ErrAmountNotPositive = errors.New("amount must be positive")
	ErrEmptyReference    = errors.New("receipt reference must not be empty")
)

type Service struct {
	receiptRepo ReceiptRepo
	wallet      Wallet
	txManager   pg.TXManager
}

func New(receiptRepo ReceiptRepo, wallet Wallet, txManager pg.TXManager) *Service {
	return &Service{receiptRepo: receiptRepo, wallet: wallet, txManager: txManager}
}

// Submit records a payment claim for admin review. No balance change happens
// until the receipt is approved.
func (s *Service) Submit(ctx context.Context, resellerID int, amount decimal.Decimal, reference string) (*domain.TopUpReceipt, error) {
	if !amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}
	if reference == "" {
		return nil, ErrEmptyReference
	}
	return s.receiptRepo.Create(ctx, &domain.TopUpReceipt{
		ResellerID: resellerID,
		Amount:     amount,
		Reference:  reference,
		Status:     domain.ReceiptPending,
	})
}

// Approve credits the reseller's wallet and marks the receipt approved in
// one transaction. The receipt row is locked so concurrent reviews can't
// double-credit.
func (s *Service) Approve(ctx context.Context, receiptID int, adminNotes string) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		receipt, err := s.receiptRepo.LockByID(ctx, receiptID)
		if err != nil {
			return err
		}
		if receipt == nil {
			return ErrReceiptNotFound
		}
		if receipt.Status != domain.ReceiptPending {
			return ErrReceiptNotPending
		}

		if err := s.receiptRepo.SetStatus(ctx, receiptID, domain.ReceiptApproved, adminNotes); err != nil {
			return err
		}

		entry := &domain.LedgerEntry{
			Type:        domain.TxWalletTopUp,
			ReceiptID:   &receipt.ID,
			Description: fmt.Sprintf("Wallet top-up via receipt '%s'", receipt.Reference),
		}
		if err := s.wallet.Credit(ctx, receipt.ResellerID, receipt.Amount, entry); err != nil {
			return err
		}

		zap.L().Info("receipt approved",
			zap.Int("receiptID", receiptID),
			zap.Int("resellerID", receipt.ResellerID),
			zap.String("amount", receipt.Amount.StringFixed(2)),
		)
		return nil
	})
}

func (s *Service) Reject(ctx context.Context, receiptID int, adminNotes string) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		receipt, err := s.receiptRepo.LockByID(ctx, receiptID)
		if err != nil {
			return err
		}
		if receipt == nil {
			return ErrReceiptNotFound
		}
		if receipt.Status != domain.ReceiptPending {
			return ErrReceiptNotPending
		}
		return s.receiptRepo.SetStatus(ctx, receiptID, domain.ReceiptRejected, adminNotes)
	})
}

func (s *Service) ListForReseller(ctx context.Context, resellerID int) ([]domain.TopUpReceipt, error) {
	return s.receiptRepo.ListByReseller(ctx, resellerID)
}

func (s *Service) ListPending(ctx context.Context) ([]domain.TopUpReceipt, error) {
	return s.receiptRepo.ListByStatus(ctx, domain.ReceiptPending)
}
