package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Reseller struct {
	ID                   int             `db:"id"`
	RemoteAdminID        int             `db:"remote_admin_id"`
	Username             string          `db:"username"`
	PasswordHash         string          `db:"password_hash"`
	WalletBalance        decimal.Decimal `db:"wallet_balance"`
	IsActive             bool            `db:"is_active"`
	AllowNegativeBalance bool            `db:"allow_negative_balance"`
	CreatedAt            time.Time       `db:"created_at"`
}

type Panel struct {
	ID                int       `db:"id"`
	Name              string    `db:"name"`
	APIURL            string    `db:"api_url"`
	AdminUsername     string    `db:"admin_username"`
	EncryptedPassword string    `db:"encrypted_admin_password"`
	CreatedAt         time.Time `db:"created_at"`
}

type PricingPlan struct {
	ID           int             `db:"id"`
	Name         string          `db:"name"`
	DataLimitGB  *int            `db:"data_limit_gb"`
	DurationDays int             `db:"duration_days"`
	Price        decimal.Decimal `db:"price"`
	IsActive     bool            `db:"is_active"`
	CreatedAt    time.Time       `db:"created_at"`
}

// PricingConfig holds either a plan reference or a per-GB rate, never both.
// PanelID is nil for a reseller's generic configuration.
type PricingConfig struct {
	ID         int              `db:"id"`
	ResellerID int              `db:"reseller_id"`
	PlanID     *int             `db:"pricing_plan_id"`
	PricePerGB *decimal.Decimal `db:"price_per_gb"`
	PanelID    *int             `db:"panel_id"`
	Notes      string           `db:"notes"`
	CreatedAt  time.Time        `db:"created_at"`

	Plan *PricingPlan `db:"-"`
}

// UserMirror is the local projection of a remote panel user.
// Unique per (username, panel).
type UserMirror struct {
	ID             int             `db:"id"`
	Username       string          `db:"username"`
	PanelID        int             `db:"panel_id"`
	ResellerID     int             `db:"reseller_id"`
	CreatedLocally bool            `db:"created_locally"`
	Notes          string          `db:"notes"`
	RemotePayload  json.RawMessage `db:"remote_payload"`
	LastSyncedAt   time.Time       `db:"last_synced_at"`
	CreatedAt      time.Time       `db:"created_at"`
}

const (
	TxUserCreation = "user_creation_cost"
	TxDataTopUp    = "user_data_topup_cost"
	TxRenewal      = "user_renewal_cost"
	TxDataAndRenew = "user_data_renew_cost"
	TxWalletTopUp  = "wallet_top_up"
)

// LedgerEntry is append-only. Negative amounts are debits.
type LedgerEntry struct {
	ID          int             `db:"id"`
	ResellerID  int             `db:"reseller_id"`
	Type        string          `db:"entry_type"`
	Amount      decimal.Decimal `db:"amount"`
	MirrorID    *int            `db:"mirror_id"`
	PlanID      *int            `db:"pricing_plan_id"`
	PricingID   *int            `db:"pricing_config_id"`
	ReceiptID   *int            `db:"receipt_id"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

const (
	ReceiptPending  = "pending"
	ReceiptApproved = "approved"
	ReceiptRejected = "rejected"
)

type TopUpReceipt struct {
	ID          int             `db:"id"`
	ResellerID  int             `db:"reseller_id"`
	Amount      decimal.Decimal `db:"amount"`
	Reference   string          `db:"receipt_reference"`
	Status      string          `db:"status"`
	AdminNotes  string          `db:"admin_notes"`
	SubmittedAt time.Time       `db:"submitted_at"`
	ReviewedAt  *time.Time      `db:"reviewed_at"`
}

const (
	IntentCreate = "create"
	IntentModify = "modify"

	IntentPending    = "pending"
	IntentRemoteDone = "remote_done"
	IntentCommitted  = "committed"
	IntentFailed     = "failed"
)

// ProvisionIntent records a remote mutation before it is issued so a sweep
// can find operations where the remote call succeeded but the local commit
// did not.
type ProvisionIntent struct {
	ID         uuid.UUID       `db:"id"`
	Kind       string          `db:"kind"`
	State      string          `db:"state"`
	ResellerID int             `db:"reseller_id"`
	PanelID    int             `db:"panel_id"`
	Username   string          `db:"username"`
	Cost       decimal.Decimal `db:"cost"`
	TxType     string          `db:"tx_type"`
	PlanID     *int            `db:"pricing_plan_id"`
	PricingID  *int            `db:"pricing_config_id"`
	MirrorID   *int            `db:"mirror_id"`
	Note       string          `db:"note"`
	Payload    json.RawMessage `db:"remote_payload"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}
