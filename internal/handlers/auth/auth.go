package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/panelmart/internal/domain"
	"github.com/GlebRadaev/panelmart/internal/dto"
	"github.com/GlebRadaev/panelmart/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/panelmart/pkg/auth"
	"github.com/GlebRadaev/panelmart/pkg/utils"
)

type Service interface {
	Authenticate(ctx context.Context, username, password string) (*domain.Reseller, error)
	GenerateToken(resellerID int, role string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
//
//	@Summary		Authenticate reseller
//	@Description	Log in with a reseller account and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		403		{object}	utils.Response	"Account deactivated"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reseller/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	reseller, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrResellerInactive) {
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.authService.GenerateToken(reseller.ID, pkgauth.RoleReseller)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}
