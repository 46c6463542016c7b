package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-review-platform/internal/jwt"
	"github.com/sbilibin2017/gw-review-platform/internal/logger"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
)

// ClaimsGetter defines the token operations needed to resolve an actor.
type ClaimsGetter interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ActorReader loads the user record behind a token subject.
type ActorReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

type actorKey struct{}

// ActorMiddleware resolves the request actor from the Authorization
// header. A request without credentials proceeds anonymously (policies
// decide later); a request with bad credentials is rejected here.
func ActorMiddleware(tokener ClaimsGetter, users ActorReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				// No credentials: anonymous actor.
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			actor, err := users.GetByID(ctx, claims.UserID)
			if err != nil {
				logger.Log.Errorw("failed to load actor", "userID", claims.UserID, "err", err)
				writeAuthError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if actor == nil {
				logger.Log.Errorw("token subject no longer exists", "userID", claims.UserID)
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(ctx, actor)))
		})
	}
}

// WithActor returns a context carrying the resolved actor.
func WithActor(ctx context.Context, actor *models.UserDB) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the resolved actor, or nil for anonymous
// requests.
func ActorFromContext(ctx context.Context) *models.UserDB {
	actor, _ := ctx.Value(actorKey{}).(*models.UserDB)
	return actor
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
