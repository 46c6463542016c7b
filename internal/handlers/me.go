package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-review-platform/internal/middlewares"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/services"
)

// MeUpdater defines the self-profile update operation.
type MeUpdater interface {
	UpdateMe(ctx context.Context, actor *models.UserDB, update services.UserUpdate) (*models.UserDB, error)
}

// NewGetMeHandler returns an HTTP handler for the actor's own profile.
// The router guarantees an authenticated actor.
// @Summary Get own profile
// @Tags users
// @Produce json
// @Success 200 {object} handlers.UserResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/me [get]
// @Security BearerAuth
func NewGetMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := middlewares.ActorFromContext(r.Context())
		writeJSON(w, http.StatusOK, toUserResponse(actor))
	}
}

// NewUpdateMeHandler returns an HTTP handler for self-profile updates.
// A role field in the body is silently discarded: self-service updates
// can never change the stored role.
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Param updateUserRequest body handlers.UpdateUserRequest true "Partial update, role ignored"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid update"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/me [patch]
// @Security BearerAuth
func NewUpdateMeHandler(svc MeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := middlewares.ActorFromContext(r.Context())

		var req UpdateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.StructCtx(r.Context(), req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		user, err := svc.UpdateMe(r.Context(), actor, services.UserUpdate{
			Username:  req.Username,
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Bio:       req.Bio,
			Role:      req.Role,
		})
		if err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(user))
	}
}
