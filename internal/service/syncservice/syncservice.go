package syncservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/panelmart/internal/domain"
	"github.com/GlebRadaev/panelmart/internal/panelapi"
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
	FindByUsernameAndPanel(ctx context.Context, username string, panelID int) (*domain.UserMirror, error)
	RefreshPayload(ctx context.Context, id int, payload json.RawMessage, note *string) error
}

type Cipher interface {
	Decrypt(ciphertext string) (string, error)
}

var (
	ErrResellerNotFound = errors.New("reseller not found")
	ErrAccessDenied     = errors.New("reseller does not have access to this panel")
	ErrPanelNotFound    = errors.New("panel not found")
	ErrPanelCredentials = errors.New("can't retrieve panel credentials")
)

// Summary reports one sync pass. Errors holds per-record failures that did
// not abort the pass.
type Summary struct {
	PanelID      int      `json:"synced_panel_id"`
	ResellerID   int      `json:"reseller_id"`
	TotalFromAPI int      `json:"total_users_from_api"`
	NewlyAdded   int      `json:"newly_added_count"`
	Updated      int      `json:"updated_count"`
	Errors       []string `json:"errors,omitempty"`
}

const discoveredNote = "Discovered via panel sync"

type Service struct {
	resellerRepo ResellerRepo
	panelRepo    PanelRepo
	mirrorRepo   MirrorRepo
	gateway      panelapi.GatewayI
	cipher       Cipher
}

func New(resellerRepo ResellerRepo, panelRepo PanelRepo, mirrorRepo MirrorRepo, gateway panelapi.GatewayI, cipher Cipher) *Service {
	return &Service{
		resellerRepo: resellerRepo,
		panelRepo:    panelRepo,
		mirrorRepo:   mirrorRepo,
		gateway:      gateway,
		cipher:       cipher,
	}
}

// SyncPanel pulls the panel's user list, keeps only users attributed to the
// reseller's remote admin, and upserts local mirrors. Idempotent: a second
// pass over unchanged remote data adds nothing.
func (s *Service) SyncPanel(ctx context.Context, resellerID, panelID int) (*Summary, error) {
	reseller, err := s.resellerRepo.FindByID(ctx, resellerID)
	if err != nil {
		return nil, err
	}
	if reseller == nil {
		return nil, ErrResellerNotFound
	}

	granted, err := s.resellerRepo.HasPanelAccess(ctx, resellerID, panelID)
	if err != nil {
		return nil, err
	}
	if !granted {
		return nil, ErrAccessDenied
	}

	panel, err := s.panelRepo.FindByID(ctx, panelID)
	if err != nil {
		return nil, err
	}
	if panel == nil {
		return nil, ErrPanelNotFound
	}

	password, err := s.cipher.Decrypt(panel.EncryptedPassword)
	if err != nil {
		zap.L().Error("can't decrypt panel password", zap.Int("panelID", panelID), zap.Error(err))
		return nil, fmt.Errorf("%w: panel %q", ErrPanelCredentials, panel.Name)
	}
	token, err := s.gateway.Authenticate(panel.APIURL, panel.AdminUsername, password)
	if err != nil {
		return nil, err
	}

	remoteUsers, err := s.gateway.ListUsers(panel.APIURL, token)
	if err != nil {
		return nil, err
	}

	summary := &Summary{PanelID: panelID, ResellerID: resellerID}
	for _, remote := range remoteUsers {
		if remote.CreatorAdminID != reseller.RemoteAdminID {
			continue
		}
		summary.TotalFromAPI++

		if remote.Username == "" {
			summary.Errors = append(summary.Errors, "remote user record has no username, skipped")
			continue
		}

		mirror, err := s.mirrorRepo.FindByUsernameAndPanel(ctx, remote.Username, panelID)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("lookup failed for %q: %v", remote.Username, err))
			continue
		}

		if mirror != nil {
			if err := s.mirrorRepo.RefreshPayload(ctx, mirror.ID, remote.Raw, nil); err != nil {
				summary.Errors = append(summary.Errors, fmt.Sprintf("refresh failed for %q: %v", remote.Username, err))
				continue
			}
			summary.Updated++
			continue
		}

		if _, err := s.mirrorRepo.Create(ctx, &domain.UserMirror{
			Username:       remote.Username,
			PanelID:        panelID,
			ResellerID:     resellerID,
			CreatedLocally: false,
			Notes:          discoveredNote,
			RemotePayload:  remote.Raw,
		}); err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("create failed for %q: %v", remote.Username, err))
			continue
		}
		summary.NewlyAdded++
	}

	zap.L().Info("panel sync finished",
		zap.Int("panelID", panelID),
		zap.Int("resellerID", resellerID),
		zap.Int("total", summary.TotalFromAPI),
		zap.Int("added", summary.NewlyAdded),
		zap.Int("updated", summary.Updated),
		zap.Int("errors", len(summary.Errors)),
	)
	return summary, nil
}
