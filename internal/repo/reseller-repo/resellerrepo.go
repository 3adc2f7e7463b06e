package resellerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Reseller, error) {
	query := `
        SELECT id, remote_admin_id, username, password_hash, wallet_balance, is_active, allow_negative_balance, created_at
        FROM resellers
        WHERE id = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.Reseller, error) {
	query := `
        SELECT id, remote_admin_id, username, password_hash, wallet_balance, is_active, allow_negative_balance, created_at
        FROM resellers
        WHERE username = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, username))
}

// LockForUpdate takes the row lock that serializes wallet mutations for one
// reseller. Only meaningful inside a transaction.
func (r *Repository) LockForUpdate(ctx context.Context, id int) (*domain.Reseller, error) {
	query := `
        SELECT id, remote_admin_id, username, password_hash, wallet_balance, is_active, allow_negative_balance, created_at
        FROM resellers
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Reseller, error) {
	var reseller domain.Reseller
	err := row.Scan(
		&reseller.ID, &reseller.RemoteAdminID, &reseller.Username, &reseller.PasswordHash,
		&reseller.WalletBalance, &reseller.IsActive, &reseller.AllowNegativeBalance, &reseller.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't scan reseller", zap.Error(err))
		return nil, err
	}
	return &reseller, nil
}

func (r *Repository) Create(ctx context.Context, reseller *domain.Reseller) (*domain.Reseller, error) {
	query := `
        INSERT INTO resellers (remote_admin_id, username, password_hash, wallet_balance, is_active, allow_negative_balance)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		reseller.RemoteAdminID, reseller.Username, reseller.PasswordHash,
		reseller.WalletBalance, reseller.IsActive, reseller.AllowNegativeBalance,
	).Scan(&reseller.ID, &reseller.CreatedAt)
	if err != nil {
		zap.L().Error("can't create reseller", zap.Error(err))
		return nil, err
	}
	return reseller, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, id int, balance decimal.Decimal) error {
	query := `
        UPDATE resellers
        SET wallet_balance = $1
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, balance, id)
	if err != nil {
		zap.L().Error("can't update wallet balance", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) HasPanelAccess(ctx context.Context, resellerID, panelID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM reseller_panel_access
            WHERE reseller_id = $1 AND panel_id = $2
        )
    `
	var granted bool
	if err := r.db.QueryRow(ctx, query, resellerID, panelID).Scan(&granted); err != nil {
		zap.L().Error("can't check panel access", zap.Error(err))
		return false, err
	}
	return granted, nil
}
