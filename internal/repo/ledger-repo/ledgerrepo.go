package ledgerrepo

import (
	"context"

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

// Create appends one entry. Rows are never updated or deleted afterward.
func (r *Repository) Create(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
        INSERT INTO ledger_entries (reseller_id, entry_type, amount, mirror_id, pricing_plan_id, pricing_config_id, receipt_id, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		entry.ResellerID, entry.Type, entry.Amount, entry.MirrorID,
		entry.PlanID, entry.PricingID, entry.ReceiptID, entry.Description,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) ListByReseller(ctx context.Context, resellerID, limit, offset int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, reseller_id, entry_type, amount, mirror_id, pricing_plan_id, pricing_config_id, receipt_id, description, created_at
        FROM ledger_entries
        WHERE reseller_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, resellerID, limit, offset)
	if err != nil {
		zap.L().Error("can't fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var entry domain.LedgerEntry
		err := rows.Scan(
			&entry.ID, &entry.ResellerID, &entry.Type, &entry.Amount, &entry.MirrorID,
			&entry.PlanID, &entry.PricingID, &entry.ReceiptID, &entry.Description, &entry.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan ledger row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
