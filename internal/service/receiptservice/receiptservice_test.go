package receiptservice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/panelmart/internal/domain"
)

type txManagerStub struct{}

func (txManagerStub) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func NewMock(t *testing.T) (*Service, *MockReceiptRepo, *MockWallet) {
	ctrl := gomock.NewController(t)
	receiptRepo := NewMockReceiptRepo(ctrl)
	wallet := NewMockWallet(ctrl)
	service := New(receiptRepo, wallet, txManagerStub{})
	defer ctrl.Finish()
	return service, receiptRepo, wallet
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSubmit(t *testing.T) {
	service, receiptRepo, _ := NewMock(t)

	t.Run("Creates pending receipt", func(t *testing.T) {
		receiptRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, receipt *domain.TopUpReceipt) (*domain.TopUpReceipt, error) {
				assert.Equal(t, 1, receipt.ResellerID)
				assert.Equal(t, domain.ReceiptPending, receipt.Status)
				assert.Equal(t, "bank-ref-42", receipt.Reference)
				return receipt, nil
			},
		)

		receipt, err := service.Submit(context.Background(), 1, dec("50.00"), "bank-ref-42")
		assert.NoError(t, err)
		assert.Equal(t, domain.ReceiptPending, receipt.Status)
	})

	t.Run("Rejects non-positive amount", func(t *testing.T) {
		_, err := service.Submit(context.Background(), 1, dec("0"), "ref")
		assert.ErrorIs(t, err, ErrAmountNotPositive)
	})

	t.Run("Rejects empty reference", func(t *testing.T) {
		_, err := service.Submit(context.Background(), 1, dec("10.00"), "")
		assert.ErrorIs(t, err, ErrEmptyReference)
	})
}

func TestApprove(t *testing.T) {
	pending := &domain.TopUpReceipt{
		ID:         5,
		ResellerID: 1,
		Amount:     dec("50.00"),
		Reference:  "bank-ref-42",
		Status:     domain.ReceiptPending,
	}

	t.Run("Credits wallet and marks approved", func(t *testing.T) {
		service, receiptRepo, wallet := NewMock(t)

		receiptRepo.EXPECT().LockByID(gomock.Any(), 5).Return(pending, nil)
		receiptRepo.EXPECT().SetStatus(gomock.Any(), 5, domain.ReceiptApproved, "looks good").Return(nil)
		wallet.EXPECT().Credit(gomock.Any(), 1, dec("50.00"), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, _ decimal.Decimal, entry *domain.LedgerEntry) error {
				assert.Equal(t, domain.TxWalletTopUp, entry.Type)
				assert.Equal(t, 5, *entry.ReceiptID)
				return nil
			},
		)

		assert.NoError(t, service.Approve(context.Background(), 5, "looks good"))
	})

	t.Run("Unknown receipt", func(t *testing.T) {
		service, receiptRepo, _ := NewMock(t)

		receiptRepo.EXPECT().LockByID(gomock.Any(), 5).Return(nil, nil)

		assert.ErrorIs(t, service.Approve(context.Background(), 5, ""), ErrReceiptNotFound)
	})

	t.Run("Already reviewed receipt cannot be approved again", func(t *testing.T) {
		service, receiptRepo, _ := NewMock(t)

		approved := *pending
		approved.Status = domain.ReceiptApproved
		receiptRepo.EXPECT().LockByID(gomock.Any(), 5).Return(&approved, nil)

		assert.ErrorIs(t, service.Approve(context.Background(), 5, ""), ErrReceiptNotPending)
	})
}

func TestReject(t *testing.T) {
	service, receiptRepo, _ := NewMock(t)

	pending := &domain.TopUpReceipt{ID: 5, ResellerID: 1, Status: domain.ReceiptPending}
	receiptRepo.EXPECT().LockByID(gomock.Any(), 5).Return(pending, nil)
	receiptRepo.EXPECT().SetStatus(gomock.Any(), 5, domain.ReceiptRejected, "no matching payment").Return(nil)

	assert.NoError(t, service.Reject(context.Background(), 5, "no matching payment"))
}

func TestLists(t *testing.T) {
	service, receiptRepo, _ := NewMock(t)

	receipts := []domain.TopUpReceipt{{ID: 5}, {ID: 6}}
	receiptRepo.EXPECT().ListByReseller(gomock.Any(), 1).Return(receipts, nil)
	receiptRepo.EXPECT().ListByStatus(gomock.Any(), domain.ReceiptPending).Return(receipts[:1], nil)

	got, err := service.ListForReseller(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = service.ListPending(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}
