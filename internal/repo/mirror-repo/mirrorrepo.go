package mirrorrepo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GlebRadaev/panelmart/internal/domain"
	"github.com/GlebRadaev/panelmart/internal/pg"
	"go.uber.org/zap"
)

// ErrMirrorExists reports a second mirror for the same (username, panel).
var ErrMirrorExists = errors.New("mirror already exists for this username and panel")

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, mirror *domain.UserMirror) (*domain.UserMirror, error) {
	query := `
        INSERT INTO user_mirrors (username, panel_id, reseller_id, created_locally, notes, remote_payload)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, last_synced_at, created_at
    `
	err := r.db.QueryRow(ctx, query,
		mirror.Username, mirror.PanelID, mirror.ResellerID,
		mirror.CreatedLocally, mirror.Notes, mirror.RemotePayload,
	).Scan(&mirror.ID, &mirror.LastSyncedAt, &mirror.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrMirrorExists
		}
		zap.L().Error("can't create user mirror", zap.Error(err))
		return nil, err
	}
	return mirror, nil
}

func (r *Repository) FindByIDAndReseller(ctx context.Context, id, resellerID int) (*domain.UserMirror, error) {
	query := `
        SELECT id, username, panel_id, reseller_id, created_locally, notes, remote_payload, last_synced_at, created_at
        FROM user_mirrors
        WHERE id = $1 AND reseller_id = $2
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id, resellerID))
}

func (r *Repository) FindByUsernameAndPanel(ctx context.Context, username string, panelID int) (*domain.UserMirror, error) {
	query := `
        SELECT id, username, panel_id, reseller_id, created_locally, notes, remote_payload, last_synced_at, created_at
        FROM user_mirrors
        WHERE username = $1 AND panel_id = $2
    `
	return r.scanOne(r.db.QueryRow(ctx, query, username, panelID))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.UserMirror, error) {
	var mirror domain.UserMirror
	err := row.Scan(
		&mirror.ID, &mirror.Username, &mirror.PanelID, &mirror.ResellerID,
		&mirror.CreatedLocally, &mirror.Notes, &mirror.RemotePayload,
		&mirror.LastSyncedAt, &mirror.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't scan user mirror", zap.Error(err))
		return nil, err
	}
	return &mirror, nil
}

// RefreshPayload stores the latest remote snapshot and bumps last_synced_at.
// A nil payload keeps the stored snapshot (note-only changes).
func (r *Repository) RefreshPayload(ctx context.Context, id int, payload json.RawMessage, note *string) error {
	query := `
        UPDATE user_mirrors
        SET remote_payload = COALESCE($1, remote_payload),
            notes = COALESCE($2, notes),
            last_synced_at = NOW()
        WHERE id = $3
    `
	tag, err := r.db.Exec(ctx, query, payload, note, id)
	if err != nil {
		zap.L().Error("can't refresh user mirror", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) ListByReseller(ctx context.Context, resellerID, limit, offset int) ([]domain.UserMirror, error) {
	query := `
        SELECT id, username, panel_id, reseller_id, created_locally, notes, remote_payload, last_synced_at, created_at
        FROM user_mirrors
        WHERE reseller_id = $1
        ORDER BY username
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, resellerID, limit, offset)
	if err != nil {
		zap.L().Error("can't fetch user mirrors", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var mirrors []domain.UserMirror
	for rows.Next() {
		var mirror domain.UserMirror
		err := rows.Scan(
			&mirror.ID, &mirror.Username, &mirror.PanelID, &mirror.ResellerID,
			&mirror.CreatedLocally, &mirror.Notes, &mirror.RemotePayload,
			&mirror.LastSyncedAt, &mirror.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan user mirror row", zap.Error(err))
			return nil, err
		}
		mirrors = append(mirrors, mirror)
	}
	return mirrors, nil
}
