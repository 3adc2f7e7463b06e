package pricingservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/panelmart/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repo interface {
	FindByResellerAndPanel(ctx context.Context, resellerID int, panelID *int) (*domain.PricingConfig, error)
	GetPlan(ctx context.Context, id int) (*domain.PricingPlan, error)
}

var (
	ErrNoPricingConfigured  = errors.New("no pricing configuration found for this reseller and panel")
	ErrNoUnitPricing        = errors.New("no per-GB pricing configured for this reseller on this panel")
	ErrNoPlanPricing        = errors.New("no plan-based pricing configured for renewal on this panel")
	ErrDataLimitRequired    = errors.New("data_limit_gb must be provided and positive")
	ErrInvalidPricingConfig = errors.New("pricing configuration is invalid")
)

// DurationMismatchError rejects renewals that do not request exactly one
// plan period.
type DurationMismatchError struct {
	ExpectedDays  int
	RequestedDays int
}

func (e *DurationMismatchError) Error() string {
	return fmt.Sprintf("requested duration %d days does not match plan duration %d days", e.RequestedDays, e.ExpectedDays)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// Resolve returns the pricing configuration for a reseller on a panel.
// A panel-specific configuration wins over the reseller's generic one.
func (s *Service) Resolve(ctx context.Context, resellerID, panelID int) (*domain.PricingConfig, error) {
	cfg, err := s.repo.FindByResellerAndPanel(ctx, resellerID, &panelID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg, err = s.repo.FindByResellerAndPanel(ctx, resellerID, nil)
		if err != nil {
			return nil, err
		}
	}
	if cfg == nil {
		return nil, ErrNoPricingConfigured
	}

	if cfg.PlanID != nil {
		plan, err := s.repo.GetPlan(ctx, *cfg.PlanID)
		if err != nil {
			return nil, err
		}
		if plan == nil {
			zap.L().Error("pricing config references missing plan",
				zap.Int("pricingConfigID", cfg.ID), zap.Int("planID", *cfg.PlanID))
			return nil, ErrInvalidPricingConfig
		}
		cfg.Plan = plan
	}
	return cfg, nil
}

// CostForCreate prices a new user. Unit-rate configs require a positive data
// limit; plan configs require the requested duration, when given, to equal
// the plan's duration. Returns the plan ID to link on the ledger entry.
func (s *Service) CostForCreate(cfg *domain.PricingConfig, dataLimitGB *float64, expireDays *int) (decimal.Decimal, *int, error) {
	switch {
	case cfg.PricePerGB != nil:
		if dataLimitGB == nil || *dataLimitGB <= 0 {
			return decimal.Zero, nil, ErrDataLimitRequired
		}
		return unitCost(*dataLimitGB, *cfg.PricePerGB), nil, nil
	case cfg.Plan != nil:
		if expireDays != nil && *expireDays != cfg.Plan.DurationDays {
			return decimal.Zero, nil, &DurationMismatchError{
				ExpectedDays:  cfg.Plan.DurationDays,
				RequestedDays: *expireDays,
			}
		}
		return cfg.Plan.Price, cfg.PlanID, nil
	default:
		return decimal.Zero, nil, ErrInvalidPricingConfig
	}
}

// CostForDataLimit prices setting a user's new absolute data limit. The cost
// covers the whole new package size, not the delta.
func (s *Service) CostForDataLimit(cfg *domain.PricingConfig, dataLimitGB float64) (decimal.Decimal, error) {
	if dataLimitGB <= 0 {
		return decimal.Zero, ErrDataLimitRequired
	}
	if cfg.PricePerGB == nil {
		return decimal.Zero, ErrNoUnitPricing
	}
	return unitCost(dataLimitGB, *cfg.PricePerGB), nil
}

// CostForRenewal prices an expiry extension of exactly one plan period.
func (s *Service) CostForRenewal(cfg *domain.PricingConfig, days int) (decimal.Decimal, *int, error) {
	if cfg.Plan == nil {
		return decimal.Zero, nil, ErrNoPlanPricing
	}
	if days != cfg.Plan.DurationDays {
		return decimal.Zero, nil, &DurationMismatchError{
			ExpectedDays:  cfg.Plan.DurationDays,
			RequestedDays: days,
		}
	}
	return cfg.Plan.Price, cfg.PlanID, nil
}

// unitCost rounds half-up to two decimal places.
func unitCost(gb float64, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(gb).Mul(rate).Round(2)
}
