package provisionservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/panelmart/internal/domain"
	"github.com/GlebRadaev/panelmart/internal/panelapi"
)

type txManagerStub struct{}

func (txManagerStub) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mocks struct {
	resellerRepo *MockResellerRepo
	panelRepo    *MockPanelRepo
	mirrorRepo   *MockMirrorRepo
	intentRepo   *MockIntentRepo
	pricing      *MockPricing
	wallet       *MockWallet
	gateway      *panelapi.MockGatewayI
	cipher       *MockCipher
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		resellerRepo: NewMockResellerRepo(ctrl),
		panelRepo:    NewMockPanelRepo(ctrl),
		mirrorRepo:   NewMockMirrorRepo(ctrl),
		intentRepo:   NewMockIntentRepo(ctrl),
		pricing:      NewMockPricing(ctrl),
		wallet:       NewMockWallet(ctrl),
		gateway:      panelapi.NewMockGatewayI(ctrl),
		cipher:       NewMockCipher(ctrl),
	}
	service := New(
		m.resellerRepo, m.panelRepo, m.mirrorRepo, m.intentRepo,
		m.pricing, m.wallet, m.gateway, m.cipher, txManagerStub{},
	)
	defer ctrl.Finish()
	return service, m
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

var (
	testReseller = &domain.Reseller{ID: 1, RemoteAdminID: 7, WalletBalance: dec("100.00")}
	testPanel    = &domain.Panel{ID: 2, Name: "eu-1", APIURL: "https://panel.example.com", AdminUsername: "admin", EncryptedPassword: "enc"}
)

func expectPanelAuth(m *mocks) {
	m.cipher.EXPECT().Decrypt("enc").Return("secret", nil)
	m.gateway.EXPECT().Authenticate(testPanel.APIURL, "admin", "secret").Return("token", nil)
}

func TestCreateUser(t *testing.T) {
	unitCfg := &domain.PricingConfig{ID: 10, ResellerID: 1, PricePerGB: decPtr("0.50")}

	t.Run("Happy path debits wallet and mirrors the user", func(t *testing.T) {
		service, m := NewMock(t)
		service.now = func() time.Time { return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) }

		m.resellerRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testReseller, nil)
		m.resellerRepo.EXPECT().HasPanelAccess(gomock.Any(), 1, 2).Return(true, nil)
		m.panelRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testPanel, nil)
		m.pricing.EXPECT().Resolve(gomock.Any(), 1, 2).Return(unitCfg, nil)
		m.pricing.EXPECT().CostForCreate(unitCfg, floatPtr(40), intPtr(30)).Return(dec("20.00"), nil, nil)
		m.wallet.EXPECT().CheckFunds(gomock.Any(), 1, dec("20.00")).Return(nil)
		expectPanelAuth(m)
		m.intentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, intent *domain.ProvisionIntent) (*domain.ProvisionIntent, error) {
				assert.Equal(t, domain.IntentCreate, intent.Kind)
				assert.Equal(t, domain.IntentPending, intent.State)
				assert.Equal(t, "alice", intent.Username)
				assert.Equal(t, "20.00", intent.Cost.StringFixed(2))
				assert.Equal(t, domain.TxUserCreation, intent.TxType)
				return intent, nil
			},
		)
		m.gateway.EXPECT().CreateUser(testPanel.APIURL, "token", gomock.Any()).DoAndReturn(
			func(_, _ string, params panelapi.CreateUserParams) (*panelapi.UserPayload, error) {
				assert.Equal(t, "alice", params.Username)
				assert.Equal(t, 7, params.CreatorAdminID)
				assert.Equal(t, int64(40)<<30, *params.DataLimitBytes)
				assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC).Unix(), *params.ExpireAt)
				return &panelapi.UserPayload{Username: "alice", Raw: json.RawMessage(`{"username":"alice"}`)}, nil
			},
		)
		m.intentRepo.EXPECT().MarkRemoteDone(gomock.Any(), gomock.Any(), []byte(`{"username":"alice"}`)).Return(nil)
		m.mirrorRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mirror *domain.UserMirror) (*domain.UserMirror, error) {
				assert.True(t, mirror.CreatedLocally)
				assert.Equal(t, "alice", mirror.Username)
				created := *mirror
				created.ID = 33
				return &created, nil
			},
		)
		m.wallet.EXPECT().Debit(gomock.Any(), 1, dec("20.00"), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, _ decimal.Decimal, entry *domain.LedgerEntry) error {
				assert.Equal(t, domain.TxUserCreation, entry.Type)
				assert.Equal(t, intPtr(33), entry.MirrorID)
				assert.Equal(t, intPtr(10), entry.PricingID)
				return nil
			},
		)
		m.intentRepo.EXPECT().MarkState(gomock.Any(), gomock.Any(), domain.IntentCommitted).Return(nil)

		mirror, err := service.CreateUser(context.Background(), 1, CreateUserRequest{
			PanelID:     2,
			Username:    "alice",
			DataLimitGB: floatPtr(40),
			ExpireDays:  intPtr(30),
		})
		assert.NoError(t, err)
		assert.Equal(t, 33, mirror.ID)
	})

	t.Run("Insufficient funds stops before any remote call", func(t *testing.T) {
		service, m := NewMock(t)

		m.resellerRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testReseller, nil)
		m.resellerRepo.EXPECT().HasPanelAccess(gomock.Any(), 1, 2).Return(true, nil)
		m.panelRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testPanel, nil)
		m.pricing.EXPECT().Resolve(gomock.Any(), 1, 2).Return(unitCfg, nil)
		m.pricing.EXPECT().CostForCreate(unitCfg, floatPtr(30), nil).Return(dec("15.00"), nil, nil)
		m.wallet.EXPECT().CheckFunds(gomock.Any(), 1, dec("15.00")).Return(errors.New("insufficient wallet balance. Required: 15.00, Available: 10.00"))

		_, err := service.CreateUser(context.Background(), 1, CreateUserRequest{
			PanelID:     2,
			Username:    "bob",
			DataLimitGB: floatPtr(30),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Required: 15.00, Available: 10.00")
	})

	t.Run("No panel access", func(t *testing.T) {
		service, m := NewMock(t)

		m.resellerRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testReseller, nil)
		m.resellerRepo.EXPECT().HasPanelAccess(gomock.Any(), 1, 2).Return(false, nil)

		_, err := service.CreateUser(context.Background(), 1, CreateUserRequest{PanelID: 2, Username: "bob"})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("Remote conflict marks intent failed and skips billing", func(t *testing.T) {
		service, m := NewMock(t)

		m.resellerRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testReseller, nil)
		m.resellerRepo.EXPECT().HasPanelAccess(gomock.Any(), 1, 2).Return(true, nil)
		m.panelRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testPanel, nil)
		m.pricing.EXPECT().Resolve(gomock.Any(), 1, 2).Return(unitCfg, nil)
		m.pricing.EXPECT().CostForCreate(unitCfg, floatPtr(10), nil).Return(dec("5.00"), nil, nil)
		m.wallet.EXPECT().CheckFunds(gomock.Any(), 1, dec("5.00")).Return(nil)
		expectPanelAuth(m)
		m.intentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, intent *domain.ProvisionIntent) (*domain.ProvisionIntent, error) {
				return intent, nil
			},
		)
		m.gateway.EXPECT().CreateUser(testPanel.APIURL, "token", gomock.Any()).Return(nil, fmt.Errorf("user %q: %w", "alice", panelapi.ErrUsernameConflict))
		m.intentRepo.EXPECT().MarkState(gomock.Any(), gomock.Any(), domain.IntentFailed).Return(nil)

		_, err := service.CreateUser(context.Background(), 1, CreateUserRequest{
			PanelID:     2,
			Username:    "alice",
			DataLimitGB: floatPtr(10),
		})
		assert.ErrorIs(t, err, panelapi.ErrUsernameConflict)
	})

	t.Run("Local commit failure surfaces a reconciliation error", func(t *testing.T) {
		service, m := NewMock(t)

		m.resellerRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testReseller, nil)
		m.resellerRepo.EXPECT().HasPanelAccess(gomock.Any(), 1, 2).Return(true, nil)
		m.panelRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testPanel, nil)
		m.pricing.EXPECT().Resolve(gomock.Any(), 1, 2).Return(unitCfg, nil)
		m.pricing.EXPECT().CostForCreate(unitCfg, floatPtr(10), nil).Return(dec("5.00"), nil, nil)
		m.wallet.EXPECT().CheckFunds(gomock.Any(), 1, dec("5.00")).Return(nil)
		expectPanelAuth(m)
		m.intentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, intent *domain.ProvisionIntent) (*domain.ProvisionIntent, error) {
				return intent, nil
			},
		)
		m.gateway.EXPECT().CreateUser(testPanel.APIURL, "token", gomock.Any()).Return(
			&panelapi.UserPayload{Username: "alice", Raw: json.RawMessage(`{}`)}, nil,
		)
		m.intentRepo.EXPECT().MarkRemoteDone(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.mirrorRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := service.CreateUser(context.Background(), 1, CreateUserRequest{
			PanelID:     2,
			Username:    "alice",
			DataLimitGB: floatPtr(10),
		})

		var commitFailure *CommitFailureError
		assert.True(t, errors.As(err, &commitFailure))
		assert.Equal(t, "alice", commitFailure.Username)
		assert.Equal(t, 2, commitFailure.PanelID)
		assert.Equal(t, "5.00", commitFailure.Cost.StringFixed(2))
		assert.Contains(t, err.Error(), "manual reconciliation required")
	})
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestModifyUser(t *testing.T) {
	planCfg := &domain.PricingConfig{
		ID:     11,
		PlanID: intPtr(5),
		Plan:   &domain.PricingPlan{ID: 5, DurationDays: 30, Price: dec("10.00")},
	}

	t.Run("Nothing to update", func(t *testing.T) {
		service, _ := NewMock(t)

		_, err := service.ModifyUser(context.Background(), 1, 33, ModifyUserRequest{})
		assert.ErrorIs(t, err, ErrNothingToUpdate)
	})

	t.Run("Unknown user", func(t *testing.T) {
		service, m := NewMock(t)

		m.mirrorRepo.EXPECT().FindByIDAndReseller(gomock.Any(), 33, 1).Return(nil, nil)

		note := "x"
		_, err := service.ModifyUser(context.Background(), 1, 33, ModifyUserRequest{Note: &note})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Note only change never touches the panel", func(t *testing.T) {
		service, m := NewMock(t)

		mirror := &domain.UserMirror{ID: 33, Username: "alice", PanelID: 2, ResellerID: 1}
		m.mirrorRepo.EXPECT().FindByIDAndReseller(gomock.Any(), 33, 1).Return(mirror, nil).Times(2)
		m.panelRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testPanel, nil)
		note := "vip customer"
		m.mirrorRepo.EXPECT().RefreshPayload(gomock.Any(), 33, nil, &note).Return(nil)

		got, err := service.ModifyUser(context.Background(), 1, 33, ModifyUserRequest{Note: &note})
		assert.NoError(t, err)
		assert.Equal(t, mirror, got)
	})

	t.Run("Extension starts from the later of now and current expiry", func(t *testing.T) {
		service, m := NewMock(t)
		now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return now }

		currentExpiry := now.AddDate(0, 0, 10)
		payload := fmt.Sprintf(`{"username":"alice","expire":%d}`, currentExpiry.Unix())
		mirror := &domain.UserMirror{ID: 33, Username: "alice", PanelID: 2, ResellerID: 1, RemotePayload: json.RawMessage(payload)}

		m.mirrorRepo.EXPECT().FindByIDAndReseller(gomock.Any(), 33, 1).Return(mirror, nil).Times(2)
		m.panelRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testPanel, nil)
		m.pricing.EXPECT().Resolve(gomock.Any(), 1, 2).Return(planCfg, nil)
		m.pricing.EXPECT().CostForRenewal(planCfg, 30).Return(dec("10.00"), intPtr(5), nil)
		m.wallet.EXPECT().CheckFunds(gomock.Any(), 1, dec("10.00")).Return(nil)
		expectPanelAuth(m)
		m.intentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, intent *domain.ProvisionIntent) (*domain.ProvisionIntent, error) {
				assert.Equal(t, domain.IntentModify, intent.Kind)
				assert.Equal(t, domain.TxRenewal, intent.TxType)
				return intent, nil
			},
		)
		m.gateway.EXPECT().UpdateUser(testPanel.APIURL, "token", "alice", gomock.Any()).DoAndReturn(
			func(_, _, _ string, fields map[string]any) (*panelapi.UserPayload, error) {
				assert.Equal(t, currentExpiry.AddDate(0, 0, 30).Unix(), fields["expire"])
				return &panelapi.UserPayload{Username: "alice", Raw: json.RawMessage(`{}`)}, nil
			},
		)
		m.intentRepo.EXPECT().MarkRemoteDone(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.wallet.EXPECT().Debit(gomock.Any(), 1, dec("10.00"), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, _ decimal.Decimal, entry *domain.LedgerEntry) error {
				assert.Equal(t, domain.TxRenewal, entry.Type)
				assert.Equal(t, intPtr(5), entry.PlanID)
				return nil
			},
		)
		m.mirrorRepo.EXPECT().RefreshPayload(gomock.Any(), 33, json.RawMessage(`{}`), nil).Return(nil)
		m.intentRepo.EXPECT().MarkState(gomock.Any(), gomock.Any(), domain.IntentCommitted).Return(nil)

		_, err := service.ModifyUser(context.Background(), 1, 33, ModifyUserRequest{ExtendDays: intPtr(30)})
		assert.NoError(t, err)
	})

	t.Run("Expired user extends from now", func(t *testing.T) {
		service, _ := NewMock(t)
		now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return now }

		stale := now.AddDate(0, 0, -5)
		payload := fmt.Sprintf(`{"expire":%d}`, stale.Unix())
		mirror := &domain.UserMirror{ID: 33, RemotePayload: json.RawMessage(payload)}

		got := service.extendedExpiry(mirror, 30)
		assert.Equal(t, now.AddDate(0, 0, 30).Unix(), got)
	})

	t.Run("Data and renewal together use the combined entry type", func(t *testing.T) {
		assert.Equal(t, domain.TxDataAndRenew, modificationTxType(true, true))
		assert.Equal(t, domain.TxDataTopUp, modificationTxType(true, false))
		assert.Equal(t, domain.TxRenewal, modificationTxType(false, true))
	})

	t.Run("Non-positive extension is rejected", func(t *testing.T) {
		service, m := NewMock(t)

		mirror := &domain.UserMirror{ID: 33, Username: "alice", PanelID: 2, ResellerID: 1}
		m.mirrorRepo.EXPECT().FindByIDAndReseller(gomock.Any(), 33, 1).Return(mirror, nil)
		m.panelRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testPanel, nil)
		m.pricing.EXPECT().Resolve(gomock.Any(), 1, 2).Return(planCfg, nil)

		_, err := service.ModifyUser(context.Background(), 1, 33, ModifyUserRequest{ExtendDays: intPtr(0)})
		assert.ErrorIs(t, err, ErrDaysNotPositive)
	})
}

func TestGetUsage(t *testing.T) {
	service, m := NewMock(t)

	mirror := &domain.UserMirror{ID: 33, Username: "alice", PanelID: 2, ResellerID: 1}
	m.mirrorRepo.EXPECT().FindByIDAndReseller(gomock.Any(), 33, 1).Return(mirror, nil)
	m.panelRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testPanel, nil)
	expectPanelAuth(m)
	m.gateway.EXPECT().GetUsage(testPanel.APIURL, "token", "alice").Return(&panelapi.Usage{
		Download: 100, Upload: 20, Total: 120, DataLimit: 1 << 30,
	}, nil)

	usage, err := service.GetUsage(context.Background(), 1, 33)
	assert.NoError(t, err)
	assert.Equal(t, int64(120), usage.Total)
}

func TestCommitIntent(t *testing.T) {
	t.Run("Recovers mirror and debit for a create intent", func(t *testing.T) {
		service, m := NewMock(t)

		intent := domain.ProvisionIntent{
			ID:         uuid.New(),
			Kind:       domain.IntentCreate,
			State:      domain.IntentRemoteDone,
			ResellerID: 1,
			PanelID:    2,
			Username:   "alice",
			Cost:       dec("20.00"),
			TxType:     domain.TxUserCreation,
			PricingID:  intPtr(10),
			Payload:    json.RawMessage(`{"username":"alice"}`),
		}

		m.mirrorRepo.EXPECT().FindByUsernameAndPanel(gomock.Any(), "alice", 2).Return(nil, nil)
		m.mirrorRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mirror *domain.UserMirror) (*domain.UserMirror, error) {
				assert.True(t, mirror.CreatedLocally)
				created := *mirror
				created.ID = 44
				return &created, nil
			},
		)
		m.wallet.EXPECT().Debit(gomock.Any(), 1, dec("20.00"), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, _ decimal.Decimal, entry *domain.LedgerEntry) error {
				assert.Equal(t, domain.TxUserCreation, entry.Type)
				assert.Equal(t, intPtr(44), entry.MirrorID)
				return nil
			},
		)
		m.intentRepo.EXPECT().MarkState(gomock.Any(), intent.ID, domain.IntentCommitted).Return(nil)

		assert.NoError(t, service.CommitIntent(context.Background(), intent))
	})

	t.Run("Reuses an existing mirror instead of duplicating it", func(t *testing.T) {
		service, m := NewMock(t)

		intent := domain.ProvisionIntent{
			ID:         uuid.New(),
			Kind:       domain.IntentCreate,
			State:      domain.IntentRemoteDone,
			ResellerID: 1,
			PanelID:    2,
			Username:   "alice",
			Cost:       dec("20.00"),
		}

		m.mirrorRepo.EXPECT().FindByUsernameAndPanel(gomock.Any(), "alice", 2).Return(&domain.UserMirror{ID: 44}, nil)
		m.wallet.EXPECT().Debit(gomock.Any(), 1, dec("20.00"), gomock.Any()).Return(nil)
		m.intentRepo.EXPECT().MarkState(gomock.Any(), intent.ID, domain.IntentCommitted).Return(nil)

		assert.NoError(t, service.CommitIntent(context.Background(), intent))
	})

	t.Run("Recovered modify intents keep their ledger entry type", func(t *testing.T) {
		service, m := NewMock(t)

		mirrorID := 44
		intent := domain.ProvisionIntent{
			ID:         uuid.New(),
			Kind:       domain.IntentModify,
			State:      domain.IntentRemoteDone,
			ResellerID: 1,
			PanelID:    2,
			Username:   "alice",
			Cost:       dec("10.00"),
			TxType:     domain.TxRenewal,
			PlanID:     intPtr(5),
			MirrorID:   &mirrorID,
			Payload:    json.RawMessage(`{"username":"alice"}`),
		}

		m.mirrorRepo.EXPECT().RefreshPayload(gomock.Any(), 44, intent.Payload, nil).Return(nil)
		m.wallet.EXPECT().Debit(gomock.Any(), 1, dec("10.00"), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, _ decimal.Decimal, entry *domain.LedgerEntry) error {
				assert.Equal(t, domain.TxRenewal, entry.Type)
				assert.Equal(t, intPtr(5), entry.PlanID)
				return nil
			},
		)
		m.intentRepo.EXPECT().MarkState(gomock.Any(), intent.ID, domain.IntentCommitted).Return(nil)

		assert.NoError(t, service.CommitIntent(context.Background(), intent))
	})

	t.Run("Rejects intents in any other state", func(t *testing.T) {
		service, _ := NewMock(t)

		err := service.CommitIntent(context.Background(), domain.ProvisionIntent{
			ID:    uuid.New(),
			State: domain.IntentPending,
		})
		assert.Error(t, err)
	})
}
