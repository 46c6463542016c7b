package services

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-review-platform/internal/logger"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/repositories"
)

// reservedUsername aliases the self-profile endpoint and can never be
// registered.
const reservedUsername = "me"

const maxUsernameLen = 150

var usernameRE = regexp.MustCompile(`^[\w.@+-]+$`)

// validateUsername enforces the username invariants shared by signup,
// admin creation and profile updates.
func validateUsername(username string) error {
	if username == reservedUsername {
		return ErrReservedUsername
	}
	if username == "" || len(username) > maxUsernameLen || !usernameRE.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// AuthUserReader defines read operations for the auth flow.
type AuthUserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserDB, error)
}

// AuthUserWriter defines write operations for the auth flow.
type AuthUserWriter interface {
	Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error)
	SetActive(ctx context.Context, userID uuid.UUID, active bool) error
}

// CodeGenerator derives and verifies confirmation codes.
type CodeGenerator interface {
	Make(user *models.UserDB) string
	Check(user *models.UserDB, code string) bool
}

// EmailSender delivers the confirmation code. A delivery failure fails
// the signup request.
type EmailSender interface {
	Send(to, subject, body string) error
}

// TokenGenerator defines an interface for generating access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username, role string) (string, error)
}

// AuthService handles the signup / token-exchange state machine:
// Unregistered -> PendingConfirmation -> Active.
type AuthService struct {
	reader      AuthUserReader
	writer      AuthUserWriter
	codes       CodeGenerator
	mailer      EmailSender
	jwt         TokenGenerator
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader AuthUserReader,
	writer AuthUserWriter,
	codes CodeGenerator,
	mailer EmailSender,
	jwt TokenGenerator,
	kafkaWriter KafkaWriter,
) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		codes:       codes,
		mailer:      mailer,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
	}
}

// Signup creates (or reuses) a pending user and emails a confirmation
// code. An exact (username, email) match on an existing record is
// idempotent and re-issues the code; a partial collision is a conflict.
// The code is never returned to the caller.
func (svc *AuthService) Signup(ctx context.Context, username, email string) (*models.UserDB, error) {
	if err := validateUsername(username); err != nil {
		logger.Log.Errorw("signup rejected", "username", username, "err", err)
		return nil, err
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}

	switch {
	case user == nil:
		user, err = svc.writer.Save(ctx, &models.UserDB{
			Username: username,
			Email:    email,
			Role:     models.RoleUser,
			IsActive: false,
		})
		if err != nil {
			// Lost a signup race: the unique constraint is authoritative.
			if repositories.IsUniqueViolation(err) {
				logger.Log.Errorw("signup collision", "username", username, "email", email)
				return nil, ErrIdentityConflict
			}
			logger.Log.Errorw("failed to save user", "err", err)
			return nil, err
		}
	case user.Username != username || user.Email != email:
		logger.Log.Errorw("signup identity conflict", "username", username, "email", email)
		return nil, ErrIdentityConflict
	}

	code := svc.codes.Make(user)
	if err := svc.mailer.Send(user.Email, "Confirmation code", "Your confirmation code - "+code); err != nil {
		logger.Log.Errorw("failed to send confirmation code", "username", username, "err", err)
		return nil, err
	}

	return user, nil
}

// ExchangeToken validates a confirmation code, activates the account if
// needed and issues an access token. Activation is idempotent: a valid
// code keeps working after the account became active.
func (svc *AuthService) ExchangeToken(ctx context.Context, username, code string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserNotFound
	}

	if !svc.codes.Check(user, code) {
		logger.Log.Errorw("confirmation code mismatch", "username", username)
		return "", ErrInvalidConfirmationCode
	}

	if !user.IsActive {
		if err := svc.writer.SetActive(ctx, user.UserID, true); err != nil {
			logger.Log.Errorw("failed to activate user", "username", username, "err", err)
			return "", err
		}

		publishEvent(ctx, svc.kafkaWriter, models.Event{
			EventID:   uuid.NewString(),
			Type:      models.EventUserActivated,
			Timestamp: time.Now().Unix(),
			UserID:    user.UserID.String(),
		})
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}
