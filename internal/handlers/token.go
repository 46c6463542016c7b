package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-review-platform/internal/logger"
	"github.com/sbilibin2017/gw-review-platform/internal/services"
)

// TokenExchanger defines the interface that the token service must implement.
type TokenExchanger interface {
	ExchangeToken(ctx context.Context, username, code string) (string, error)
}

// TokenRequest represents the JSON body for exchanging a confirmation
// code for an access token
// swagger:model TokenRequest
type TokenRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required,max=150"`

	// Confirmation code from the signup email
	// required: true
	ConfirmationCode string `json:"confirmation_code" validate:"required"`
}

// TokenResponse represents a successful token exchange
// swagger:model TokenResponse
type TokenResponse struct {
	// Access token
	// example: JWT_TOKEN
	Token string `json:"token"`
}

// TokenCodeErrorResponse is the body returned on a code mismatch
// swagger:model TokenCodeErrorResponse
type TokenCodeErrorResponse struct {
	// Always "invalid"
	ConfirmationCode string `json:"confirmation_code"`
}

// NewTokenHandler returns an HTTP handler exchanging a confirmation code
// for an access token. This is the only path that activates an account;
// a valid code keeps working after activation and issues a fresh token.
// @Summary Exchange confirmation code for a token
// @Tags auth
// @Accept json
// @Produce json
// @Param tokenRequest body handlers.TokenRequest true "Token request"
// @Success 200 {object} handlers.TokenResponse "Access token"
// @Failure 400 {object} handlers.TokenCodeErrorResponse "Confirmation code mismatch"
// @Failure 404 {object} handlers.ErrorResponse "Unknown username"
// @Router /auth/token [post]
func NewTokenHandler(svc TokenExchanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TokenRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.StructCtx(r.Context(), req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		token, err := svc.ExchangeToken(r.Context(), req.Username, req.ConfirmationCode)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, services.ErrInvalidConfirmationCode):
				writeJSON(w, http.StatusBadRequest, TokenCodeErrorResponse{
					ConfirmationCode: "invalid",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{Token: token})
	}
}
