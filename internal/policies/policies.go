// Package policies holds the authorization rules as pure functions over
// (actor, method, resource). An actor is a loaded user record or nil for
// anonymous requests. Collection-level rules run before object-level
// rules; a request denied at the collection level never reaches an
// object check.
package policies

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-review-platform/internal/models"
)

// Decision is the outcome of a policy evaluation.
type Decision int

const (
	// Allow permits the request.
	Allow Decision = iota
	// DenyUnauthorized rejects the request for missing credentials.
	DenyUnauthorized
	// DenyForbidden rejects an authenticated request for insufficient rights.
	DenyForbidden
)

// SafeMethod reports whether the HTTP method is read-only.
func SafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// ReadOnlyOrAdmin governs catalog resources (categories, genres, titles):
// anyone may read, only admins may mutate.
func ReadOnlyOrAdmin(actor *models.UserDB, method string) Decision {
	if SafeMethod(method) {
		return Allow
	}
	if actor == nil {
		return DenyUnauthorized
	}
	if actor.IsAdmin() {
		return Allow
	}
	return DenyForbidden
}

// ContentModerationRequest is the collection-level rule for reviews and
// comments: reads are open, writes need any authenticated actor.
func ContentModerationRequest(actor *models.UserDB, method string) Decision {
	if SafeMethod(method) {
		return Allow
	}
	if actor == nil {
		return DenyUnauthorized
	}
	return Allow
}

// ContentModerationObject is the object-level rule for an existing review
// or comment, evaluated against the stored author. Only called after
// ContentModerationRequest allowed the request.
func ContentModerationObject(actor *models.UserDB, method string, authorID uuid.UUID) Decision {
	if SafeMethod(method) {
		return Allow
	}
	if actor == nil {
		return DenyUnauthorized
	}
	if actor.UserID == authorID || actor.IsModerator() || actor.IsAdmin() {
		return Allow
	}
	return DenyForbidden
}

// AdminOnly governs the user-collection endpoints.
func AdminOnly(actor *models.UserDB) Decision {
	if actor == nil {
		return DenyUnauthorized
	}
	if actor.IsAdmin() {
		return Allow
	}
	return DenyForbidden
}

// SelfOrAuthenticated governs the "me" profile endpoint: any
// authenticated actor, scoped by the caller to their own record.
func SelfOrAuthenticated(actor *models.UserDB) Decision {
	if actor == nil {
		return DenyUnauthorized
	}
	return Allow
}
