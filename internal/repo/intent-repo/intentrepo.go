package intentrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
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

func (r *Repository) Create(ctx context.Context, intent *domain.ProvisionIntent) (*domain.ProvisionIntent, error) {
	query := `
        INSERT INTO provision_intents (id, kind, state, reseller_id, panel_id, username, cost, tx_type, pricing_plan_id, pricing_config_id, mirror_id, note)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		intent.ID, intent.Kind, intent.State, intent.ResellerID, intent.PanelID,
		intent.Username, intent.Cost, intent.TxType, intent.PlanID, intent.PricingID, intent.MirrorID, intent.Note,
	).Scan(&intent.CreatedAt, &intent.UpdatedAt)
	if err != nil {
		zap.L().Error("can't create provision intent", zap.Error(err))
		return nil, err
	}
	return intent, nil
}

// MarkRemoteDone records that the remote mutation succeeded, together with
// the payload the panel returned, before the local commit is attempted.
func (r *Repository) MarkRemoteDone(ctx context.Context, id uuid.UUID, payload []byte) error {
	query := `
        UPDATE provision_intents
        SET state = $1, remote_payload = $2, updated_at = NOW()
        WHERE id = $3
    `
	tag, err := r.db.Exec(ctx, query, domain.IntentRemoteDone, payload, id)
	if err != nil {
		zap.L().Error("can't mark intent remote_done", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) MarkState(ctx context.Context, id uuid.UUID, state string) error {
	query := `
        UPDATE provision_intents
        SET state = $1, updated_at = NOW()
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, state, id)
	if err != nil {
		zap.L().Error("can't update provision intent state", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// FindStuck returns intents where the remote call succeeded but the local
// commit never landed, old enough to no longer be in flight.
func (r *Repository) FindStuck(ctx context.Context, olderThan time.Duration, limit int) ([]domain.ProvisionIntent, error) {
	query := `
        SELECT id, kind, state, reseller_id, panel_id, username, cost, tx_type, pricing_plan_id, pricing_config_id, mirror_id, note, remote_payload, created_at, updated_at
        FROM provision_intents
        WHERE state = $1 AND updated_at < NOW() - $2::interval
        ORDER BY updated_at
        LIMIT $3
    `
	interval := olderThan.Truncate(time.Second).String()
	rows, err := r.db.Query(ctx, query, domain.IntentRemoteDone, interval, limit)
	if err != nil {
		zap.L().Error("can't fetch stuck intents", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var intents []domain.ProvisionIntent
	for rows.Next() {
		var intent domain.ProvisionIntent
		err := rows.Scan(
			&intent.ID, &intent.Kind, &intent.State, &intent.ResellerID, &intent.PanelID,
			&intent.Username, &intent.Cost, &intent.TxType, &intent.PlanID, &intent.PricingID,
			&intent.MirrorID, &intent.Note, &intent.Payload, &intent.CreatedAt, &intent.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan provision intent row", zap.Error(err))
			return nil, err
		}
		intents = append(intents, intent)
	}
	return intents, nil
}
