package walletservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/panelmart/internal/domain"
	"github.com/GlebRadaev/panelmart/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ResellerRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Reseller, error)
	LockForUpdate(ctx context.Context, id int) (*domain.Reseller, error)
	UpdateBalance(ctx context.Context, id int, balance decimal.Decimal) error
}

type LedgerRepo interface {
	Create(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	ListByReseller(ctx context.Context, resellerID, limit, offset int) ([]domain.LedgerEntry, error)
}

var ErrResellerNotFound = errors.New("reseller not found")

// InsufficientFundsError carries the amounts for user display.
type InsufficientFundsError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient wallet balance. Required: %s, Available: %s", e.Required.StringFixed(2), e.Available.StringFixed(2))
}

type Service struct {
	resellerRepo ResellerRepo
	ledgerRepo   LedgerRepo
	txManager    pg.TXManager
}

func New(resellerRepo ResellerRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		resellerRepo: resellerRepo,
		ledgerRepo:   ledgerRepo,
		txManager:    txManager,
	}
}

func checkFunds(reseller *domain.Reseller, cost decimal.Decimal) error {
	if cost.IsPositive() && reseller.WalletBalance.LessThan(cost) && !reseller.AllowNegativeBalance {
		return &InsufficientFundsError{Required: cost, Available: reseller.WalletBalance}
	}
	return nil
}

// CheckFunds is the optimistic pre-check run before a remote call. The
// authoritative check happens again inside Debit under the row lock.
func (s *Service) CheckFunds(ctx context.Context, resellerID int, cost decimal.Decimal) error {
	reseller, err := s.resellerRepo.FindByID(ctx, resellerID)
	if err != nil {
		return err
	}
	if reseller == nil {
		return ErrResellerNotFound
	}
	return checkFunds(reseller, cost)
}

// Debit subtracts cost from the wallet and appends the matching ledger entry
// in one transaction. The reseller row is locked first and funds are
// re-validated under the lock, so concurrent debits cannot overspend.
func (s *Service) Debit(ctx context.Context, resellerID int, cost decimal.Decimal, entry *domain.LedgerEntry) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		reseller, err := s.resellerRepo.LockForUpdate(ctx, resellerID)
		if err != nil {
			return err
		}
		if reseller == nil {
			return ErrResellerNotFound
		}
		if err := checkFunds(reseller, cost); err != nil {
			return err
		}

		if err := s.resellerRepo.UpdateBalance(ctx, resellerID, reseller.WalletBalance.Sub(cost)); err != nil {
			return err
		}

		entry.ResellerID = resellerID
		entry.Amount = cost.Neg()
		if _, err := s.ledgerRepo.Create(ctx, entry); err != nil {
			return err
		}

		zap.L().Info("wallet debited",
			zap.Int("resellerID", resellerID),
			zap.String("cost", cost.StringFixed(2)),
			zap.String("type", entry.Type),
		)
		return nil
	})
}

// Credit adds amount to the wallet and appends the matching ledger entry in
// one transaction.
func (s *Service) Credit(ctx context.Context, resellerID int, amount decimal.Decimal, entry *domain.LedgerEntry) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		reseller, err := s.resellerRepo.LockForUpdate(ctx, resellerID)
		if err != nil {
			return err
		}
		if reseller == nil {
			return ErrResellerNotFound
		}

		if err := s.resellerRepo.UpdateBalance(ctx, resellerID, reseller.WalletBalance.Add(amount)); err != nil {
			return err
		}

		entry.ResellerID = resellerID
		entry.Amount = amount
		if _, err := s.ledgerRepo.Create(ctx, entry); err != nil {
			return err
		}

		zap.L().Info("wallet credited",
			zap.Int("resellerID", resellerID),
			zap.String("amount", amount.StringFixed(2)),
			zap.String("type", entry.Type),
		)
		return nil
	})
}

func (s *Service) GetBalance(ctx context.Context, resellerID int) (*domain.Reseller, error) {
	reseller, err := s.resellerRepo.FindByID(ctx, resellerID)
	if err != nil {
		zap.L().Error("failed to get reseller balance", zap.Error(err))
		return nil, err
	}
	if reseller == nil {
		return nil, ErrResellerNotFound
	}
	return reseller, nil
}

func (s *Service) GetLedger(ctx context.Context, resellerID, limit, offset int) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListByReseller(ctx, resellerID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
