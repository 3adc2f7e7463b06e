package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/panelmart/internal/domain"
	"github.com/GlebRadaev/panelmart/internal/dto"
	"github.com/GlebRadaev/panelmart/internal/panelapi"
	"github.com/GlebRadaev/panelmart/internal/service/pricingservice"
	"github.com/GlebRadaev/panelmart/internal/service/provisionservice"
	"github.com/GlebRadaev/panelmart/internal/service/walletservice"
	"github.com/GlebRadaev/panelmart/pkg/auth"
	"github.com/GlebRadaev/panelmart/pkg/utils"
)

type Service interface {
	CreateUser(ctx context.Context, resellerID int, req provisionservice.CreateUserRequest) (*domain.UserMirror, error)
	ModifyUser(ctx context.Context, resellerID, localUserID int, req provisionservice.ModifyUserRequest) (*domain.UserMirror, error)
	GetUsage(ctx context.Context, resellerID, localUserID int) (*panelapi.Usage, error)
	ListUsers(ctx context.Context, resellerID, limit, offset int) ([]domain.UserMirror, error)
}

type UserHandler struct {
	provisionService Service
}

func New(provisionService Service) *UserHandler {
	return &UserHandler{
		provisionService: provisionService,
	}
}

// CreateUser godoc
//
//	@Summary		Provision a new panel user
//	@Description	Create a user on the remote panel and debit the wallet with the computed cost
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateUserRequestDTO	true	"New user parameters"
//	@Success		201		{object}	dto.UserMirrorResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		403		{object}	utils.Response	"No access to panel"
//	@Failure		409		{object}	utils.Response	"Username already exists on panel"
//	@Failure		422		{object}	utils.Response	"Pricing not configured for request"
//	@Failure		500		{object}	utils.Response	"Commit failure, manual reconciliation required"
//	@Failure		502		{object}	utils.Response	"Panel unreachable or rejected the request"
//	@Router			/api/reseller/users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	resellerID := r.Context().Value(auth.ResellerIDKey).(int)

	var req dto.CreateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.PanelID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "username and panel_id are required")
		return
	}

	mirror, err := h.provisionService.CreateUser(r.Context(), resellerID, provisionservice.CreateUserRequest{
		PanelID:     req.PanelID,
		Username:    req.Username,
		DataLimitGB: req.DataLimitGB,
		ExpireDays:  req.ExpireDays,
		Proxies:     req.Proxies,
		Inbounds:    req.Inbounds,
		TelegramID:  req.TelegramID,
		Note:        req.Note,
	})
	if err != nil {
		respondProvisionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toMirrorDTO(mirror))
}

// ModifyUser godoc
//
//	@Summary		Modify a provisioned user
//	@Description	Apply data limit, expiry extension, proxy or note changes to an existing user
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Local user ID"
//	@Param			request	body		dto.ModifyUserRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.UserMirrorResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or nothing to update"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		422		{object}	utils.Response	"Pricing not configured for request"
//	@Failure		500		{object}	utils.Response	"Commit failure, manual reconciliation required"
//	@Failure		502		{object}	utils.Response	"Panel unreachable or rejected the request"
//	@Router			/api/reseller/users/{id} [patch]
func (h *UserHandler) ModifyUser(w http.ResponseWriter, r *http.Request) {
	resellerID := r.Context().Value(auth.ResellerIDKey).(int)

	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req dto.ModifyUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	mirror, err := h.provisionService.ModifyUser(r.Context(), resellerID, userID, provisionservice.ModifyUserRequest{
		DataLimitGB: req.DataLimitGB,
		ExtendDays:  req.ExtendDays,
		Proxies:     req.Proxies,
		Inbounds:    req.Inbounds,
		Note:        req.Note,
	})
	if err != nil {
		respondProvisionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMirrorDTO(mirror))
}

// ListUsers godoc
//
//	@Summary		List the reseller's users
//	@Description	List local mirrors of users belonging to the authenticated reseller
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 100)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{array}		dto.UserMirrorResponseDTO
//	@Failure		401		{object}	utils.Response	"Not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reseller/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	resellerID := r.Context().Value(auth.ResellerIDKey).(int)

	limit := queryInt(r, "limit", 100)
	offset := queryInt(r, "offset", 0)

	mirrors, err := h.provisionService.ListUsers(r.Context(), resellerID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.UserMirrorResponseDTO, len(mirrors))
	for i := range mirrors {
		response[i] = toMirrorDTO(&mirrors[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetUsage godoc
//
//	@Summary		Get live traffic usage
//	@Description	Fetch current traffic counters for a user straight from the panel
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Local user ID"
//	@Success		200	{object}	dto.UsageResponseDTO
//	@Failure		404	{object}	utils.Response	"User not found locally or on the panel"
//	@Failure		502	{object}	utils.Response	"Panel unreachable"
//	@Router			/api/reseller/users/{id}/usage [get]
func (h *UserHandler) GetUsage(w http.ResponseWriter, r *http.Request) {
	resellerID := r.Context().Value(auth.ResellerIDKey).(int)

	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	usage, err := h.provisionService.GetUsage(r.Context(), resellerID, userID)
	if err != nil {
		switch {
		case errors.Is(err, provisionservice.ErrUserNotFound), errors.Is(err, panelapi.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, provisionservice.ErrPanelNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			respondProvisionError(w, err)
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UsageResponseDTO{
		Download:  usage.Download,
		Upload:    usage.Upload,
		Total:     usage.Total,
		DataLimit: usage.DataLimit,
	})
}

func respondProvisionError(w http.ResponseWriter, err error) {
	var insufficient *walletservice.InsufficientFundsError
	var mismatch *pricingservice.DurationMismatchError
	var commitFailure *provisionservice.CommitFailureError
	var apiErr *panelapi.APIError

	// CommitFailureError wraps its cause and must be matched before any of
	// the causes it can carry, such as the in-lock funds re-check.
	switch {
	case errors.As(err, &commitFailure):
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
	case errors.Is(err, provisionservice.ErrNothingToUpdate),
		errors.Is(err, provisionservice.ErrDaysNotPositive),
		errors.Is(err, pricingservice.ErrDataLimitRequired):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &insufficient):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, provisionservice.ErrAccessDenied):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, provisionservice.ErrUserNotFound),
		errors.Is(err, provisionservice.ErrPanelNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, panelapi.ErrUsernameConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, pricingservice.ErrNoPricingConfigured),
		errors.Is(err, pricingservice.ErrNoUnitPricing),
		errors.Is(err, pricingservice.ErrNoPlanPricing),
		errors.Is(err, pricingservice.ErrInvalidPricingConfig),
		errors.As(err, &mismatch):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, panelapi.ErrAuthFailed),
		errors.Is(err, provisionservice.ErrPanelCredentials),
		errors.As(err, &apiErr):
		utils.RespondWithError(w, http.StatusBadGateway, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toMirrorDTO(m *domain.UserMirror) dto.UserMirrorResponseDTO {
	return dto.UserMirrorResponseDTO{
		ID:             m.ID,
		Username:       m.Username,
		PanelID:        m.PanelID,
		CreatedLocally: m.CreatedLocally,
		Notes:          m.Notes,
		RemotePayload:  m.RemotePayload,
		LastSyncedAt:   m.LastSyncedAt,
		CreatedAt:      m.CreatedAt,
	}
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
