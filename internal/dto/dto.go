package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type LoginRequestDTO struct {
	Username string `json:"username" example:"reseller1"`
	Password string `json:"password" example:"password123"`
}

type LoginResponseDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
}

type CreateUserRequestDTO struct {
	PanelID     int             `json:"panel_id"`
	Username    string          `json:"username"`
	DataLimitGB *float64        `json:"data_limit_gb,omitempty"`
	ExpireDays  *int            `json:"expire_days,omitempty"`
	Proxies     json.RawMessage `json:"proxies,omitempty"`
	Inbounds    json.RawMessage `json:"inbounds,omitempty"`
	TelegramID  string          `json:"telegram_id,omitempty"`
	Note        string          `json:"note,omitempty"`
}

type ModifyUserRequestDTO struct {
	DataLimitGB *float64        `json:"new_data_limit_gb,omitempty"`
	ExtendDays  *int            `json:"expire_days_to_add,omitempty"`
	Proxies     json.RawMessage `json:"proxies,omitempty"`
	Inbounds    json.RawMessage `json:"inbounds,omitempty"`
	Note        *string         `json:"note,omitempty"`
}

type UserMirrorResponseDTO struct {
	ID             int             `json:"id"`
	Username       string          `json:"username"`
	PanelID        int             `json:"panel_id"`
	CreatedLocally bool            `json:"created_locally"`
	Notes          string          `json:"notes,omitempty"`
	RemotePayload  json.RawMessage `json:"remote_payload,omitempty"`
	LastSyncedAt   time.Time       `json:"last_synced_at"`
	CreatedAt      time.Time       `json:"created_at"`
}

type UsageResponseDTO struct {
	Download  int64 `json:"download"`
	Upload    int64 `json:"upload"`
	Total     int64 `json:"total"`
	DataLimit int64 `json:"data_limit"`
}

type BalanceResponseDTO struct {
	Balance              decimal.Decimal `json:"balance"`
	AllowNegativeBalance bool            `json:"allow_negative_balance"`
}

type TransactionResponseDTO struct {
	ID          int             `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	MirrorID    *int            `json:"user_id,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type SubmitReceiptRequestDTO struct {
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"receipt_reference"`
}

type ReceiptResponseDTO struct {
	ID          int             `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Reference   string          `json:"receipt_reference"`
	Status      string          `json:"status"`
	AdminNotes  string          `json:"admin_notes,omitempty"`
	SubmittedAt time.Time       `json:"submitted_at"`
	ReviewedAt  *time.Time      `json:"reviewed_at,omitempty"`
}

type ReviewReceiptRequestDTO struct {
	AdminNotes string `json:"admin_notes,omitempty"`
}

type SyncResponseDTO struct {
	PanelID      int      `json:"synced_panel_id"`
	ResellerID   int      `json:"reseller_id"`
	TotalFromAPI int      `json:"total_users_from_api"`
	NewlyAdded   int      `json:"newly_added_count"`
	Updated      int      `json:"updated_count"`
	Errors       []string `json:"errors,omitempty"`
}
