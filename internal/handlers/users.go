package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-review-platform/internal/logger"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/services"
)

// UserManager defines the interface that the user-management service
// must implement. All of these endpoints are admin-gated by the router.
type UserManager interface {
	List(ctx context.Context, search string, limit, offset int) ([]models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	Create(ctx context.Context, username, email, firstName, lastName, bio, role string) (*models.UserDB, error)
	Update(ctx context.Context, username string, update services.UserUpdate) (*models.UserDB, error)
	Delete(ctx context.Context, username string) error
}

// UserResponse is the API shape of a user record
// swagger:model UserResponse
type UserResponse struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

func toUserResponse(u *models.UserDB) UserResponse {
	return UserResponse{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
		Role:      u.Role,
	}
}

// CreateUserRequest represents the JSON body for admin user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"required,email,max=254"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Bio       string `json:"bio"`
	Role      string `json:"role" validate:"omitempty,oneof=user moderator admin"`
}

// UpdateUserRequest represents a partial user update; absent fields are
// left unchanged
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Username  *string `json:"username" validate:"omitempty,max=150"`
	Email     *string `json:"email" validate:"omitempty,email,max=254"`
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
	Bio       *string `json:"bio"`
	Role      *string `json:"role" validate:"omitempty,oneof=user moderator admin"`
}

// NewListUsersHandler returns an HTTP handler listing users.
// @Summary List users
// @Tags users
// @Produce json
// @Param search query string false "Username substring"
// @Success 200 {array} handlers.UserResponse
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search, limit, offset := listParams(r)

		users, err := svc.List(r.Context(), search, limit, offset)
		if err != nil {
			logger.Log.Errorw("failed to list users", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		resp := make([]UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, toUserResponse(&users[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewCreateUserHandler returns an HTTP handler for admin user creation.
// @Summary Create a user
// @Description Admin-created accounts are active immediately and may carry any role.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User"
// @Success 201 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid or conflicting identity"
// @Router /users [post]
// @Security BearerAuth
func NewCreateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.StructCtx(r.Context(), req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		user, err := svc.Create(r.Context(), req.Username, req.Email, req.FirstName, req.LastName, req.Bio, req.Role)
		if err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toUserResponse(user))
	}
}

// NewGetUserHandler returns an HTTP handler fetching one user.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.UserResponse
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /users/{username} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.GetByUsername(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserResponse(user))
	}
}

// NewUpdateUserHandler returns an HTTP handler for admin user updates.
// Role changes are legitimate on this path.
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param updateUserRequest body handlers.UpdateUserRequest true "Partial update"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid update"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /users/{username} [patch]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := validate.StructCtx(r.Context(), req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		user, err := svc.Update(r.Context(), chi.URLParam(r, "username"), services.UserUpdate{
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

// NewDeleteUserHandler returns an HTTP handler deleting a user.
// @Summary Delete a user
// @Tags users
// @Param username path string true "Username"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /users/{username} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "username")); err != nil {
			writeUserError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrReservedUsername),
		errors.Is(err, services.ErrInvalidUsername),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrIdentityConflict):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
