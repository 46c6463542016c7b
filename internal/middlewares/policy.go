package middlewares

import (
	"net/http"

	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/policies"
)

// PolicyRule is a collection-level authorization rule over the actor and
// the HTTP method.
type PolicyRule func(actor *models.UserDB, method string) policies.Decision

// RequirePolicy evaluates a collection-level rule before the handler
// runs. Object-level checks happen later, in the services, and are
// never reached when the rule denies here.
func RequirePolicy(rule PolicyRule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := ActorFromContext(r.Context())

			switch rule(actor, r.Method) {
			case policies.Allow:
				next.ServeHTTP(w, r)
			case policies.DenyUnauthorized:
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized")
			default:
				writeAuthError(w, http.StatusForbidden, "Forbidden")
			}
		})
	}
}
