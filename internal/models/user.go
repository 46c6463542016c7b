package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles. Role is a closed set: every authorization decision goes
// through the capability methods below, never through raw comparison.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// ValidRole reports whether role is one of the known role values.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleModerator || role == RoleAdmin
}

// UserDB represents a user record in the database
type UserDB struct {
	UserID      uuid.UUID `json:"id" db:"user_id"`                // Primary key
	Username    string    `json:"username" db:"username"`         // Unique username
	Email       string    `json:"email" db:"email"`               // Unique email
	FirstName   string    `json:"first_name" db:"first_name"`     // Optional first name
	LastName    string    `json:"last_name" db:"last_name"`       // Optional last name
	Bio         string    `json:"bio" db:"bio"`                   // Optional free-text bio
	Role        string    `json:"role" db:"role"`                 // One of user/moderator/admin
	IsActive    bool      `json:"is_active" db:"is_active"`       // False until email is confirmed
	IsSuperuser bool      `json:"is_superuser" db:"is_superuser"` // Bootstrap flag, implies admin
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

// IsAdmin reports whether the user has admin capabilities.
// Superusers count as admins regardless of role.
func (u *UserDB) IsAdmin() bool {
	return u.Role == RoleAdmin || u.IsSuperuser
}

// IsModerator reports whether the user has the moderator role.
func (u *UserDB) IsModerator() bool {
	return u.Role == RoleModerator
}

// IsRegularUser reports whether the user has the plain user role.
func (u *UserDB) IsRegularUser() bool {
	return u.Role == RoleUser
}
