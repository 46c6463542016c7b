package services

import (
	"context"

	"github.com/sbilibin2017/gw-review-platform/internal/logger"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/repositories"
)

// UserReader defines read operations for user management.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	List(ctx context.Context, search string, limit, offset int) ([]models.UserDB, error)
}

// UserWriter defines write operations for user management.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error)
	Update(ctx context.Context, user *models.UserDB) (*models.UserDB, error)
	Delete(ctx context.Context, username string) (bool, error)
}

// UserUpdate is a partial update of a user record. Nil fields are left
// unchanged.
type UserUpdate struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	Bio       *string
	Role      *string
}

// UsersService handles admin user management and the self-profile
// endpoint.
type UsersService struct {
	reader UserReader
	writer UserWriter
}

// NewUsersService creates a new UsersService instance.
func NewUsersService(reader UserReader, writer UserWriter) *UsersService {
	return &UsersService{
		reader: reader,
		writer: writer,
	}
}

// List returns users, optionally filtered by a username substring.
func (svc *UsersService) List(ctx context.Context, search string, limit, offset int) ([]models.UserDB, error) {
	return svc.reader.List(ctx, search, limit, offset)
}

// GetByUsername returns a single user.
func (svc *UsersService) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Create registers a user on behalf of an admin. Admin-created accounts
// are active immediately and may carry any role.
func (svc *UsersService) Create(ctx context.Context, username, email, firstName, lastName, bio, role string) (*models.UserDB, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	user, err := svc.writer.Save(ctx, &models.UserDB{
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Bio:       bio,
		Role:      role,
		IsActive:  true,
	})
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrIdentityConflict
		}
		logger.Log.Errorw("failed to create user", "username", username, "err", err)
		return nil, err
	}
	return user, nil
}

// Update applies a partial update to a user addressed by username.
// Role changes are allowed here: this path is admin-gated.
func (svc *UsersService) Update(ctx context.Context, username string, update UserUpdate) (*models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return svc.applyUpdate(ctx, user, update)
}

// UpdateMe applies a partial update to the actor's own record. Any
// client-supplied role change is silently discarded: the stored role is
// pinned on this path.
func (svc *UsersService) UpdateMe(ctx context.Context, actor *models.UserDB, update UserUpdate) (*models.UserDB, error) {
	update.Role = nil
	return svc.applyUpdate(ctx, actor, update)
}

// Delete removes a user by username.
func (svc *UsersService) Delete(ctx context.Context, username string) error {
	deleted, err := svc.writer.Delete(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "username", username, "err", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

func (svc *UsersService) applyUpdate(ctx context.Context, user *models.UserDB, update UserUpdate) (*models.UserDB, error) {
	updated := *user
	if update.Username != nil {
		if err := validateUsername(*update.Username); err != nil {
			return nil, err
		}
		updated.Username = *update.Username
	}
	if update.Email != nil {
		updated.Email = *update.Email
	}
	if update.FirstName != nil {
		updated.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		updated.LastName = *update.LastName
	}
	if update.Bio != nil {
		updated.Bio = *update.Bio
	}
	if update.Role != nil {
		if !models.ValidRole(*update.Role) {
			return nil, ErrInvalidRole
		}
		updated.Role = *update.Role
	}

	saved, err := svc.writer.Update(ctx, &updated)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrIdentityConflict
		}
		logger.Log.Errorw("failed to update user", "username", user.Username, "err", err)
		return nil, err
	}
	if saved == nil {
		return nil, ErrUserNotFound
	}
	return saved, nil
}
