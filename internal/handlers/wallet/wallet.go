package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/panelmart/internal/domain"
	"github.com/GlebRadaev/panelmart/internal/dto"
	"github.com/GlebRadaev/panelmart/internal/service/receiptservice"
	"github.com/GlebRadaev/panelmart/pkg/auth"
	"github.com/GlebRadaev/panelmart/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, resellerID int) (*domain.Reseller, error)
	GetLedger(ctx context.Context, resellerID, limit, offset int) ([]domain.LedgerEntry, error)
}

type ReceiptService interface {
	Submit(ctx context.Context, resellerID int, amount decimal.Decimal, reference string) (*domain.TopUpReceipt, error)
	Approve(ctx context.Context, receiptID int, adminNotes string) error
	Reject(ctx context.Context, receiptID int, adminNotes string) error
	ListForReseller(ctx context.Context, resellerID int) ([]domain.TopUpReceipt, error)
	ListPending(ctx context.Context) ([]domain.TopUpReceipt, error)
}

type WalletHandler struct {
	walletService  Service
	receiptService ReceiptService
}

func New(walletService Service, receiptService ReceiptService) *WalletHandler {
	return &WalletHandler{
		walletService:  walletService,
		receiptService: receiptService,
	}
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Description	Retrieve the current prepaid balance for the authenticated reseller
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reseller/wallet [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	resellerID := r.Context().Value(auth.ResellerIDKey).(int)

	reseller, err := h.walletService.GetBalance(r.Context(), resellerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance:              reseller.WalletBalance,
		AllowNegativeBalance: reseller.AllowNegativeBalance,
	})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	List ledger entries for the authenticated reseller, newest first
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 100)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reseller/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	resellerID := r.Context().Value(auth.ResellerIDKey).(int)

	limit := queryInt(r, "limit", 100)
	offset := queryInt(r, "offset", 0)

	entries, err := h.walletService.GetLedger(r.Context(), resellerID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.TransactionResponseDTO{
			ID:          e.ID,
			Type:        e.Type,
			Amount:      e.Amount,
			MirrorID:    e.MirrorID,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SubmitReceipt godoc
//
//	@Summary		Submit a top-up receipt
//	@Description	Record a payment claim for admin review; the balance changes only after approval
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitReceiptRequestDTO	true	"Receipt details"
//	@Success		201		{object}	dto.ReceiptResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reseller/wallet/receipts [post]
func (h *WalletHandler) SubmitReceipt(w http.ResponseWriter, r *http.Request) {
	resellerID := r.Context().Value(auth.ResellerIDKey).(int)

	var req dto.SubmitReceiptRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.Submit(r.Context(), resellerID, req.Amount, req.Reference)
	if err != nil {
		switch {
		case errors.Is(err, receiptservice.ErrAmountNotPositive),
			errors.Is(err, receiptservice.ErrEmptyReference):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toReceiptDTO(receipt))
}

// GetReceipts godoc
//
//	@Summary		List own top-up receipts
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReceiptResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reseller/wallet/receipts [get]
func (h *WalletHandler) GetReceipts(w http.ResponseWriter, r *http.Request) {
	resellerID := r.Context().Value(auth.ResellerIDKey).(int)

	receipts, err := h.receiptService.ListForReseller(r.Context(), resellerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch receipts")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReceiptDTOs(receipts))
}

// ListPendingReceipts godoc
//
//	@Summary		List receipts awaiting review
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReceiptResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/receipts [get]
func (h *WalletHandler) ListPendingReceipts(w http.ResponseWriter, r *http.Request) {
	receipts, err := h.receiptService.ListPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch receipts")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReceiptDTOs(receipts))
}

// ApproveReceipt godoc
//
//	@Summary		Approve a top-up receipt
//	@Description	Credit the reseller's wallet with the receipt amount
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Receipt ID"
//	@Param			request	body		dto.ReviewReceiptRequestDTO	false	"Review notes"
//	@Success		200		{object}	utils.Response
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"Receipt not found"
//	@Failure		409		{object}	utils.Response	"Receipt already reviewed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/receipts/{id}/approve [post]
func (h *WalletHandler) ApproveReceipt(w http.ResponseWriter, r *http.Request) {
	h.reviewReceipt(w, r, h.receiptService.Approve, "receipt approved")
}

// RejectReceipt godoc
//
//	@Summary		Reject a top-up receipt
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Receipt ID"
//	@Param			request	body		dto.ReviewReceiptRequestDTO	false	"Review notes"
//	@Success		200		{object}	utils.Response
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"Receipt not found"
//	@Failure		409		{object}	utils.Response	"Receipt already reviewed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/receipts/{id}/reject [post]
func (h *WalletHandler) RejectReceipt(w http.ResponseWriter, r *http.Request) {
	h.reviewReceipt(w, r, h.receiptService.Reject, "receipt rejected")
}

func (h *WalletHandler) reviewReceipt(
	w http.ResponseWriter,
	r *http.Request,
	review func(ctx context.Context, receiptID int, adminNotes string) error,
	message string,
) {
	receiptID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid receipt id")
		return
	}

	var req dto.ReviewReceiptRequestDTO
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	if err := review(r.Context(), receiptID, req.AdminNotes); err != nil {
		switch {
		case errors.Is(err, receiptservice.ErrReceiptNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, receiptservice.ErrReceiptNotPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}

func toReceiptDTO(rc *domain.TopUpReceipt) dto.ReceiptResponseDTO {
	return dto.ReceiptResponseDTO{
		ID:          rc.ID,
		Amount:      rc.Amount,
		Reference:   rc.Reference,
		Status:      rc.Status,
		AdminNotes:  rc.AdminNotes,
		SubmittedAt: rc.SubmittedAt,
		ReviewedAt:  rc.ReviewedAt,
	}
}

func toReceiptDTOs(receipts []domain.TopUpReceipt) []dto.ReceiptResponseDTO {
	response := make([]dto.ReceiptResponseDTO, len(receipts))
	for i := range receipts {
		response[i] = toReceiptDTO(&receipts[i])
	}
	return response
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
