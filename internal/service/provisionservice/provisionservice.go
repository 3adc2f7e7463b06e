package provisionservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/panelmart/internal/domain"
	"github.com/GlebRadaev/panelmart/internal/panelapi"
	"github.com/GlebRadaev/panelmart/internal/pg"
)

type ResellerRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Reseller, error)
	HasPanelAccess(ctx context.Context, resellerID, panelID int) (bool, error)
}

type PanelRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Panel, error)
}

type MirrorRepo interface {
	Create(ctx context.Context, mirror *domain.UserMirror) (*domain.UserMirror, error)
	FindByIDAndReseller(ctx context.Context, id, resellerID int) (*domain.UserMirror, error)
	FindByUsernameAndPanel(ctx context.Context, username string, panelID int) (*domain.UserMirror, error)
	RefreshPayload(ctx context.Context, id int, payload json.RawMessage, note *string) error
	ListByReseller(ctx context.Context, resellerID, limit, offset int) ([]domain.UserMirror, error)
}

type IntentRepo interface {
	Create(ctx context.Context, intent *domain.ProvisionIntent) (*domain.ProvisionIntent, error)
	MarkRemoteDone(ctx context.Context, id uuid.UUID, payload []byte) error
	MarkState(ctx context.Context, id uuid.UUID, state string) error
}

type Pricing interface {
	Resolve(ctx context.Context, resellerID, panelID int) (*domain.PricingConfig, error)
	CostForCreate(cfg *domain.PricingConfig, dataLimitGB *float64, expireDays *int) (decimal.Decimal, *int, error)
	CostForDataLimit(cfg *domain.PricingConfig, dataLimitGB float64) (decimal.Decimal, error)
	CostForRenewal(cfg *domain.PricingConfig, days int) (decimal.Decimal, *int, error)
}

type Wallet interface {
	CheckFunds(ctx context.Context, resellerID int, cost decimal.Decimal) error
	Debit(ctx context.Context, resellerID int, cost decimal.Decimal, entry *domain.LedgerEntry) error
}

type Cipher interface {
	Decrypt(ciphertext string) (string, error)
}

var (
	ErrResellerNotFound = errors.New("reseller not found")
	ErrAccessDenied     = errors.New("reseller does not have access to this panel")
	ErrPanelNotFound    = errors.New("panel not found")
	ErrUserNotFound     = errors.New("user not found or does not belong to this reseller")
	ErrNothingToUpdate  = errors.New("nothing to update")
	ErrPanelCredentials = errors.New("can't retrieve panel credentials")
	ErrDaysNotPositive  = errors.New("expire_days_to_add must be positive")
)

// CommitFailureError reports the critical window: the remote mutation
// succeeded but the local commit did not, so the wallet and mirror no longer
// reflect remote reality until the reconciliation sweep or an operator fixes
// it.
type CommitFailureError struct {
	Username string
	PanelID  int
	Cost     decimal.Decimal
	Err      error
}

func (e *CommitFailureError) Error() string {
	return fmt.Sprintf(
		"remote operation succeeded but local commit failed for user %q on panel %d (attempted cost %s): %v; manual reconciliation required",
		e.Username, e.PanelID, e.Cost.StringFixed(2), e.Err,
	)
}

func (e *CommitFailureError) Unwrap() error { return e.Err }

type CreateUserRequest struct {
	PanelID     int
	Username    string
	DataLimitGB *float64
	ExpireDays  *int
	Proxies     json.RawMessage
	Inbounds    json.RawMessage
	TelegramID  string
	Note        string
}

type ModifyUserRequest struct {
	DataLimitGB *float64
	ExtendDays  *int
	Proxies     json.RawMessage
	Inbounds    json.RawMessage
	Note        *string
}

type Service struct {
	resellerRepo ResellerRepo
	panelRepo    PanelRepo
	mirrorRepo   MirrorRepo
	intentRepo   IntentRepo
	pricing      Pricing
	wallet       Wallet
	gateway      panelapi.GatewayI
	cipher       Cipher
	txManager    pg.TXManager

	now func() time.Time
}

func New(
	resellerRepo ResellerRepo,
	panelRepo PanelRepo,
	mirrorRepo MirrorRepo,
	intentRepo IntentRepo,
	pricing Pricing,
	wallet Wallet,
	gateway panelapi.GatewayI,
	cipher Cipher,
	txManager pg.TXManager,
) *Service {
	return &Service{
		resellerRepo: resellerRepo,
		panelRepo:    panelRepo,
		mirrorRepo:   mirrorRepo,
		intentRepo:   intentRepo,
		pricing:      pricing,
		wallet:       wallet,
		gateway:      gateway,
		cipher:       cipher,
		txManager:    txManager,
		now:          time.Now,
	}
}

func gbToBytes(gb float64) int64 {
	return int64(gb * 1024 * 1024 * 1024)
}

func (s *Service) panelToken(panel *domain.Panel) (string, error) {
	password, err := s.cipher.Decrypt(panel.EncryptedPassword)
	if err != nil {
		zap.L().Error("can't decrypt panel password", zap.Int("panelID", panel.ID), zap.Error(err))
		return "", fmt.Errorf("%w: panel %q", ErrPanelCredentials, panel.Name)
	}
	return s.gateway.Authenticate(panel.APIURL, panel.AdminUsername, password)
}

// CreateUser provisions a new remote user for the reseller and records the
// debit, the mirror and the ledger entry in one local transaction. The
// remote create happens strictly after pricing and the optimistic funds
// check, and strictly before the local commit.
func (s *Service) CreateUser(ctx context.Context, resellerID int, req CreateUserRequest) (*domain.UserMirror, error) {
	reseller, err := s.resellerRepo.FindByID(ctx, resellerID)
	if err != nil {
		return nil, err
	}
	if reseller == nil {
		return nil, ErrResellerNotFound
	}

	granted, err := s.resellerRepo.HasPanelAccess(ctx, resellerID, req.PanelID)
	if err != nil {
		return nil, err
	}
	if !granted {
		return nil, ErrAccessDenied
	}

	panel, err := s.panelRepo.FindByID(ctx, req.PanelID)
	if err != nil {
		return nil, err
	}
	if panel == nil {
		return nil, ErrPanelNotFound
	}

	cfg, err := s.pricing.Resolve(ctx, resellerID, req.PanelID)
	if err != nil {
		return nil, err
	}
	cost, planID, err := s.pricing.CostForCreate(cfg, req.DataLimitGB, req.ExpireDays)
	if err != nil {
		return nil, err
	}

	if err := s.wallet.CheckFunds(ctx, resellerID, cost); err != nil {
		return nil, err
	}

	token, err := s.panelToken(panel)
	if err != nil {
		return nil, err
	}

	params := panelapi.CreateUserParams{
		Username:       req.Username,
		CreatorAdminID: reseller.RemoteAdminID,
		Proxies:        req.Proxies,
		Inbounds:       req.Inbounds,
		TelegramID:     req.TelegramID,
		Note:           req.Note,
	}
	if req.DataLimitGB != nil {
		limit := gbToBytes(*req.DataLimitGB)
		params.DataLimitBytes = &limit
	}
	expireDays := req.ExpireDays
	if expireDays == nil && cfg.Plan != nil {
		expireDays = &cfg.Plan.DurationDays
	}
	if expireDays != nil {
		expireAt := s.now().UTC().AddDate(0, 0, *expireDays).Unix()
		params.ExpireAt = &expireAt
	}

	intent := &domain.ProvisionIntent{
		ID:         uuid.New(),
		Kind:       domain.IntentCreate,
		State:      domain.IntentPending,
		ResellerID: resellerID,
		PanelID:    panel.ID,
		Username:   req.Username,
		Cost:       cost,
		TxType:     domain.TxUserCreation,
		PlanID:     planID,
		PricingID:  &cfg.ID,
		Note:       req.Note,
	}
	if _, err := s.intentRepo.Create(ctx, intent); err != nil {
		return nil, err
	}

	payload, err := s.gateway.CreateUser(panel.APIURL, token, params)
	if err != nil {
		if markErr := s.intentRepo.MarkState(ctx, intent.ID, domain.IntentFailed); markErr != nil {
			zap.L().Error("can't mark intent failed", zap.String("intentID", intent.ID.String()), zap.Error(markErr))
		}
		return nil, err
	}

	if err := s.intentRepo.MarkRemoteDone(ctx, intent.ID, payload.Raw); err != nil {
		zap.L().Error("can't mark intent remote_done", zap.String("intentID", intent.ID.String()), zap.Error(err))
	}

	description := fmt.Sprintf(
		"Cost for creating user '%s' on panel '%s'. Data: %sGB, Days: %s.",
		payload.Username, panel.Name, floatOrNA(req.DataLimitGB), intOrNA(expireDays),
	)

	var mirror *domain.UserMirror
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		mirror, err = s.mirrorRepo.Create(ctx, &domain.UserMirror{
			Username:       payload.Username,
			PanelID:        panel.ID,
			ResellerID:     resellerID,
			CreatedLocally: true,
			Notes:          req.Note,
			RemotePayload:  payload.Raw,
		})
		if err != nil {
			return err
		}

		if cost.IsPositive() {
			entry := &domain.LedgerEntry{
				Type:        domain.TxUserCreation,
				MirrorID:    &mirror.ID,
				PlanID:      planID,
				PricingID:   &cfg.ID,
				Description: description,
			}
			if err := s.wallet.Debit(ctx, resellerID, cost, entry); err != nil {
				return err
			}
		}

		return s.intentRepo.MarkState(ctx, intent.ID, domain.IntentCommitted)
	})
	if err != nil {
		commitErr := &CommitFailureError{
			Username: payload.Username,
			PanelID:  panel.ID,
			Cost:     cost,
			Err:      err,
		}
		zap.L().Error("local commit failed after remote create",
			zap.String("username", payload.Username),
			zap.Int("panelID", panel.ID),
			zap.String("cost", cost.StringFixed(2)),
			zap.String("intentID", intent.ID.String()),
			zap.Error(err),
		)
		return nil, commitErr
	}

	zap.L().Info("remote user provisioned",
		zap.String("username", payload.Username),
		zap.Int("panelID", panel.ID),
		zap.Int("resellerID", resellerID),
		zap.String("cost", cost.StringFixed(2)),
	)
	return mirror, nil
}

// ModifyUser applies billable (data limit, expiry) and non-billable
// (proxies, inbounds, note) changes to a mirrored user. Note-only changes
// never touch the panel.
func (s *Service) ModifyUser(ctx context.Context, resellerID, localUserID int, req ModifyUserRequest) (*domain.UserMirror, error) {
	if req.DataLimitGB == nil && req.ExtendDays == nil && req.Proxies == nil && req.Inbounds == nil && req.Note == nil {
		return nil, ErrNothingToUpdate
	}

	mirror, err := s.mirrorRepo.FindByIDAndReseller(ctx, localUserID, resellerID)
	if err != nil {
		return nil, err
	}
	if mirror == nil {
		return nil, ErrUserNotFound
	}

	panel, err := s.panelRepo.FindByID(ctx, mirror.PanelID)
	if err != nil {
		return nil, err
	}
	if panel == nil {
		return nil, ErrPanelNotFound
	}

	cost := decimal.Zero
	fields := map[string]any{}
	var descParts []string
	var planID *int
	var pricingID *int
	dataChanged, renewed := false, false

	if req.DataLimitGB != nil || req.ExtendDays != nil {
		cfg, err := s.pricing.Resolve(ctx, resellerID, mirror.PanelID)
		if err != nil {
			return nil, err
		}
		pricingID = &cfg.ID

		if req.DataLimitGB != nil {
			dataCost, err := s.pricing.CostForDataLimit(cfg, *req.DataLimitGB)
			if err != nil {
				return nil, err
			}
			cost = cost.Add(dataCost)
			fields["data_limit"] = gbToBytes(*req.DataLimitGB)
			descParts = append(descParts, fmt.Sprintf("Set data to %gGB (cost: %s)", *req.DataLimitGB, dataCost.StringFixed(2)))
			dataChanged = true
		}

		if req.ExtendDays != nil {
			if *req.ExtendDays <= 0 {
				return nil, ErrDaysNotPositive
			}
			renewCost, pid, err := s.pricing.CostForRenewal(cfg, *req.ExtendDays)
			if err != nil {
				return nil, err
			}
			cost = cost.Add(renewCost)
			planID = pid
			fields["expire"] = s.extendedExpiry(mirror, *req.ExtendDays)
			descParts = append(descParts, fmt.Sprintf("Added %d days (cost: %s)", *req.ExtendDays, renewCost.StringFixed(2)))
			renewed = true
		}
	}

	if req.Proxies != nil {
		fields["proxies"] = req.Proxies
		descParts = append(descParts, "Updated proxies")
	}
	if req.Inbounds != nil {
		fields["inbounds"] = req.Inbounds
		descParts = append(descParts, "Updated inbounds")
	}

	if cost.IsPositive() {
		if err := s.wallet.CheckFunds(ctx, resellerID, cost); err != nil {
			return nil, err
		}
	}

	var payload *panelapi.UserPayload
	var intent *domain.ProvisionIntent
	if len(fields) > 0 {
		token, err := s.panelToken(panel)
		if err != nil {
			return nil, err
		}

		intent = &domain.ProvisionIntent{
			ID:         uuid.New(),
			Kind:       domain.IntentModify,
			State:      domain.IntentPending,
			ResellerID: resellerID,
			PanelID:    panel.ID,
			Username:   mirror.Username,
			Cost:       cost,
			TxType:     modificationTxType(dataChanged, renewed),
			PlanID:     planID,
			PricingID:  pricingID,
			MirrorID:   &mirror.ID,
		}
		if _, err := s.intentRepo.Create(ctx, intent); err != nil {
			return nil, err
		}

		payload, err = s.gateway.UpdateUser(panel.APIURL, token, mirror.Username, fields)
		if err != nil {
			if markErr := s.intentRepo.MarkState(ctx, intent.ID, domain.IntentFailed); markErr != nil {
				zap.L().Error("can't mark intent failed", zap.String("intentID", intent.ID.String()), zap.Error(markErr))
			}
			return nil, err
		}

		if err := s.intentRepo.MarkRemoteDone(ctx, intent.ID, payload.Raw); err != nil {
			zap.L().Error("can't mark intent remote_done", zap.String("intentID", intent.ID.String()), zap.Error(err))
		}
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if cost.IsPositive() {
			entry := &domain.LedgerEntry{
				Type:      modificationTxType(dataChanged, renewed),
				MirrorID:  &mirror.ID,
				PlanID:    planID,
				PricingID: pricingID,
				Description: fmt.Sprintf(
					"Cost for modifying user '%s' on panel '%s'. %s",
					mirror.Username, panel.Name, strings.Join(descParts, "; "),
				),
			}
			if err := s.wallet.Debit(ctx, resellerID, cost, entry); err != nil {
				return err
			}
		}

		var raw json.RawMessage
		if payload != nil {
			raw = payload.Raw
		}
		if err := s.mirrorRepo.RefreshPayload(ctx, mirror.ID, raw, req.Note); err != nil {
			return err
		}

		if intent != nil {
			return s.intentRepo.MarkState(ctx, intent.ID, domain.IntentCommitted)
		}
		return nil
	})
	if err != nil {
		if payload == nil {
			// No remote call was made, so nothing diverged.
			return nil, err
		}
		commitErr := &CommitFailureError{
			Username: mirror.Username,
			PanelID:  panel.ID,
			Cost:     cost,
			Err:      err,
		}
		zap.L().Error("local commit failed after remote update",
			zap.String("username", mirror.Username),
			zap.Int("panelID", panel.ID),
			zap.String("cost", cost.StringFixed(2)),
			zap.Error(err),
		)
		return nil, commitErr
	}

	return s.mirrorRepo.FindByIDAndReseller(ctx, localUserID, resellerID)
}

// extendedExpiry computes the new remote expiry from max(now, current
// expiry): extending an already-expired user starts from now, not from the
// stale timestamp.
func (s *Service) extendedExpiry(mirror *domain.UserMirror, days int) int64 {
	now := s.now().UTC()
	base := now

	var snapshot struct {
		Expire int64 `json:"expire"`
	}
	if len(mirror.RemotePayload) > 0 {
		if err := json.Unmarshal(mirror.RemotePayload, &snapshot); err == nil && snapshot.Expire > 0 {
			if current := time.Unix(snapshot.Expire, 0).UTC(); current.After(now) {
				base = current
			}
		}
	}
	return base.AddDate(0, 0, days).Unix()
}

func modificationTxType(dataChanged, renewed bool) string {
	switch {
	case dataChanged && renewed:
		return domain.TxDataAndRenew
	case dataChanged:
		return domain.TxDataTopUp
	default:
		return domain.TxRenewal
	}
}

// GetUsage fetches live usage for a mirrored user straight from the panel.
func (s *Service) GetUsage(ctx context.Context, resellerID, localUserID int) (*panelapi.Usage, error) {
	mirror, err := s.mirrorRepo.FindByIDAndReseller(ctx, localUserID, resellerID)
	if err != nil {
		return nil, err
	}
	if mirror == nil {
		return nil, ErrUserNotFound
	}

	panel, err := s.panelRepo.FindByID(ctx, mirror.PanelID)
	if err != nil {
		return nil, err
	}
	if panel == nil {
		return nil, ErrPanelNotFound
	}

	token, err := s.panelToken(panel)
	if err != nil {
		return nil, err
	}
	return s.gateway.GetUsage(panel.APIURL, token, mirror.Username)
}

func (s *Service) ListUsers(ctx context.Context, resellerID, limit, offset int) ([]domain.UserMirror, error) {
	return s.mirrorRepo.ListByReseller(ctx, resellerID, limit, offset)
}

// CommitIntent retries the local commit of an intent stuck in remote_done.
// The remote call is never reissued here.
func (s *Service) CommitIntent(ctx context.Context, intent domain.ProvisionIntent) error {
	if intent.State != domain.IntentRemoteDone {
		return fmt.Errorf("intent %s is not in remote_done state", intent.ID)
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		mirrorID := intent.MirrorID
		if mirrorID == nil {
			mirror, err := s.mirrorRepo.FindByUsernameAndPanel(ctx, intent.Username, intent.PanelID)
			if err != nil {
				return err
			}
			if mirror == nil {
				mirror, err = s.mirrorRepo.Create(ctx, &domain.UserMirror{
					Username:       intent.Username,
					PanelID:        intent.PanelID,
					ResellerID:     intent.ResellerID,
					CreatedLocally: intent.Kind == domain.IntentCreate,
					Notes:          intent.Note,
					RemotePayload:  intent.Payload,
				})
				if err != nil {
					return err
				}
			}
			mirrorID = &mirror.ID
		} else if err := s.mirrorRepo.RefreshPayload(ctx, *mirrorID, intent.Payload, nil); err != nil {
			return err
		}

		if intent.Cost.IsPositive() {
			txType := intent.TxType
			if txType == "" {
				txType = domain.TxUserCreation
				if intent.Kind == domain.IntentModify {
					txType = domain.TxDataAndRenew
				}
			}
			entry := &domain.LedgerEntry{
				Type:      txType,
				MirrorID:  mirrorID,
				PlanID:    intent.PlanID,
				PricingID: intent.PricingID,
				Description: fmt.Sprintf(
					"Recovered commit for user '%s' on panel %d (intent %s)",
					intent.Username, intent.PanelID, intent.ID,
				),
			}
			if err := s.wallet.Debit(ctx, intent.ResellerID, intent.Cost, entry); err != nil {
				return err
			}
		}

		return s.intentRepo.MarkState(ctx, intent.ID, domain.IntentCommitted)
	})
}

func floatOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%g", *v)
}

func intOrNA(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v)
}
