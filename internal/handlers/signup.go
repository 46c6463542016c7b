package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-review-platform/internal/logger"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/services"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, username, email string) (*models.UserDB, error)
}

// SignupRequest represents the JSON body for signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required,max=150"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email,max=254"`
}

// SignupResponse represents a successful signup response. The
// confirmation code is emailed, never returned here.
// swagger:model SignupResponse
type SignupResponse struct {
	// Username
	// example: john_doe
	Username string `json:"username"`

	// Email
	// example: john@example.com
	Email string `json:"email"`
}

// NewSignupHandler returns an HTTP handler for signup.
// @Summary Sign up
// @Description Creates or reuses a pending account and emails a confirmation code. Repeating an identical signup before activation is idempotent.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 200 {object} handlers.SignupResponse "Confirmation code sent"
// @Failure 400 {object} handlers.ErrorResponse "Invalid username or conflicting identity"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.StructCtx(r.Context(), req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		user, err := svc.Signup(r.Context(), req.Username, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrReservedUsername),
				errors.Is(err, services.ErrInvalidUsername),
				errors.Is(err, services.ErrIdentityConflict):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, SignupResponse{
			Username: user.Username,
			Email:    user.Email,
		})
	}
}
