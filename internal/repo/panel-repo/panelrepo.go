package panelrepo

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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Panel, error) {
	query := `
        SELECT id, name, api_url, admin_username, encrypted_admin_password, created_at
        FROM panels
        WHERE id = $1
    `
	var panel domain.Panel
	err := r.db.QueryRow(ctx, query, id).Scan(
		&panel.ID, &panel.Name, &panel.APIURL, &panel.AdminUsername,
		&panel.EncryptedPassword, &panel.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find panel", zap.Error(err))
		return nil, err
	}
	return &panel, nil
}
