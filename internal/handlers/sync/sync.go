package sync

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/panelmart/internal/dto"
	"github.com/GlebRadaev/panelmart/internal/panelapi"
	"github.com/GlebRadaev/panelmart/internal/service/syncservice"
	"github.com/GlebRadaev/panelmart/pkg/auth"
	"github.com/GlebRadaev/panelmart/pkg/utils"
)

type Service interface {
	SyncPanel(ctx context.Context, resellerID, panelID int) (*syncservice.Summary, error)
}

type SyncHandler struct {
	syncService Service
}

func New(syncService Service) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
	}
}

// SyncPanel godoc
//
//	@Summary		Import users from a panel
//	@Description	Pull the panel user list and upsert local mirrors for users attributed to the reseller
//	@Tags			Sync
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Panel ID"
//	@Success		200	{object}	dto.SyncResponseDTO
//	@Failure		403	{object}	utils.Response	"No access to panel"
//	@Failure		404	{object}	utils.Response	"Panel not found"
//	@Failure		502	{object}	utils.Response	"Panel unreachable"
//	@Router			/api/reseller/panels/{id}/sync [post]
func (h *SyncHandler) SyncPanel(w http.ResponseWriter, r *http.Request) {
	resellerID := r.Context().Value(auth.ResellerIDKey).(int)

	panelID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid panel id")
		return
	}

	summary, err := h.syncService.SyncPanel(r.Context(), resellerID, panelID)
	if err != nil {
		var apiErr *panelapi.APIError
		switch {
		case errors.Is(err, syncservice.ErrAccessDenied):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, syncservice.ErrPanelNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, panelapi.ErrAuthFailed),
			errors.Is(err, syncservice.ErrPanelCredentials),
			errors.As(err, &apiErr):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SyncResponseDTO{
		PanelID:      summary.PanelID,
		ResellerID:   summary.ResellerID,
		TotalFromAPI: summary.TotalFromAPI,
		NewlyAdded:   summary.NewlyAdded,
		Updated:      summary.Updated,
		Errors:       summary.Errors,
	})
}
