package pricingrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/panelmart/internal/domain"
	"github.com/GlebRadaev/panelmart/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// FindByResellerAndPanel matches the exact (reseller, panel) pair; pass a nil
// panelID for the reseller's generic configuration. Precedence between the
// two lives in the pricing service, not here.
func (r *Repository) FindByResellerAndPanel(ctx context.Context, resellerID int, panelID *int) (*domain.PricingConfig, error) {
	query := `
        SELECT id, reseller_id, pricing_plan_id, price_per_gb, panel_id, notes, created_at
        FROM pricing_configs
        WHERE reseller_id = $1 AND panel_id IS NOT DISTINCT FROM $2
    `
	var cfg domain.PricingConfig
	err := r.db.QueryRow(ctx, query, resellerID, panelID).Scan(
		&cfg.ID, &cfg.ResellerID, &cfg.PlanID, &cfg.PricePerGB, &cfg.PanelID, &cfg.Notes, &cfg.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find pricing config", zap.Error(err))
		return nil, err
	}
	return &cfg, nil
}

func (r *Repository) GetPlan(ctx context.Context, id int) (*domain.PricingPlan, error) {
	query := `
        SELECT id, name, data_limit_gb, duration_days, price, is_active, created_at
        FROM pricing_plans
        WHERE id = $1
    `
	var plan domain.PricingPlan
	err := r.db.QueryRow(ctx, query, id).Scan(
		&plan.ID, &plan.Name, &plan.DataLimitGB, &plan.DurationDays,
		&plan.Price, &plan.IsActive, &plan.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find pricing plan", zap.Error(err))
		return nil, err
	}
	return &plan, nil
}
