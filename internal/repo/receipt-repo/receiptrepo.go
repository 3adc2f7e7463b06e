package receiptrepo

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

func (r *Repository) Create(ctx context.Context, receipt *domain.TopUpReceipt) (*domain.TopUpReceipt, error) {
	query := `
        INSERT INTO topup_receipts (reseller_id, amount, receipt_reference, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, submitted_at
    `
	err := r.db.QueryRow(ctx, query,
		receipt.ResellerID, receipt.Amount, receipt.Reference, receipt.Status,
	).Scan(&receipt.ID, &receipt.SubmittedAt)
	if err != nil {
		zap.L().Error("can't create topup receipt", zap.Error(err))
		return nil, err
	}
	return receipt, nil
}

// LockByID fetches a receipt under FOR UPDATE so a review decision cannot
// race a concurrent one. Only meaningful inside a transaction.
func (r *Repository) LockByID(ctx context.Context, id int) (*domain.TopUpReceipt, error) {
	query := `
        SELECT id, reseller_id, amount, receipt_reference, status, admin_notes, submitted_at, reviewed_at
        FROM topup_receipts
        WHERE id = $1
        FOR UPDATE
    `
	var receipt domain.TopUpReceipt
	err := r.db.QueryRow(ctx, query, id).Scan(
		&receipt.ID, &receipt.ResellerID, &receipt.Amount, &receipt.Reference,
		&receipt.Status, &receipt.AdminNotes, &receipt.SubmittedAt, &receipt.ReviewedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock topup receipt", zap.Error(err))
		return nil, err
	}
	return &receipt, nil
}

func (r *Repository) SetStatus(ctx context.Context, id int, status, adminNotes string) error {
	query := `
        UPDATE topup_receipts
        SET status = $1, admin_notes = $2, reviewed_at = NOW()
        WHERE id = $3
    `
	tag, err := r.db.Exec(ctx, query, status, adminNotes, id)
	if err != nil {
		zap.L().Error("can't update receipt status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) ListByReseller(ctx context.Context, resellerID, limit, offset int) ([]domain.TopUpReceipt, error) {
	query := `
        SELECT id, reseller_id, amount, receipt_reference, status, admin_notes, submitted_at, reviewed_at
        FROM topup_receipts
        WHERE reseller_id = $1
        ORDER BY submitted_at DESC
        LIMIT $2 OFFSET $3
    `
	return r.list(ctx, query, resellerID, limit, offset)
}

func (r *Repository) ListByStatus(ctx context.Context, status string, limit, offset int) ([]domain.TopUpReceipt, error) {
	query := `
        SELECT id, reseller_id, amount, receipt_reference, status, admin_notes, submitted_at, reviewed_at
        FROM topup_receipts
        WHERE status = $1
        ORDER BY submitted_at ASC
        LIMIT $2 OFFSET $3
    `
	return r.list(ctx, query, status, limit, offset)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.TopUpReceipt, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't fetch topup receipts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var receipts []domain.TopUpReceipt
	for rows.Next() {
		var receipt domain.TopUpReceipt
		err := rows.Scan(
			&receipt.ID, &receipt.ResellerID, &receipt.Amount, &receipt.Reference,
			&receipt.Status, &receipt.AdminNotes, &receipt.SubmittedAt, &receipt.ReviewedAt,
		)
		if err != nil {
			zap.L().Error("can't scan topup receipt row", zap.Error(err))
			return nil, err
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}
