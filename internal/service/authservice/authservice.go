package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/panelmart/internal/domain"
	"github.com/GlebRadaev/panelmart/pkg/auth"
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.Reseller, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrResellerInactive   = errors.New("reseller account is deactivated")
)

const tokenTTL = 24 * time.Hour

// Service authenticates resellers. Accounts are created by the platform
// admin, so there is no self-registration path.
type Service struct {
	resellerRepo Repo
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		resellerRepo: repo,
		hashService:  hashService,
		jwtService:   jwtService,
	}
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.Reseller, error) {
	reseller, err := s.resellerRepo.FindByUsername(ctx, username)
	if err != nil || reseller == nil {
		zap.L().Info("login failed", zap.String("username", username), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(reseller.PasswordHash, password); !ok {
		zap.L().Info("login failed", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if !reseller.IsActive {
		zap.L().Info("login rejected for inactive reseller", zap.String("username", username))
		return nil, ErrResellerInactive
	}
	zap.L().Info("reseller authenticated", zap.String("username", username))
	return reseller, nil
}

func (s *Service) GenerateToken(resellerID int, role string) (string, error) {
	return s.jwtService.GenerateJWT(resellerID, role, time.Now().Add(tokenTTL))
}
