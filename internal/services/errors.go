package services

import "errors"

// Error variables shared across services. Handlers map them to HTTP
// statuses; anything else is an internal error.
var (
	ErrReservedUsername        = errors.New("username 'me' is reserved")
	ErrInvalidUsername         = errors.New("username contains invalid characters")
	ErrInvalidRole             = errors.New("unknown role")
	ErrIdentityConflict        = errors.New("username or email already taken")
	ErrUserNotFound            = errors.New("user not found")
	ErrInvalidConfirmationCode = errors.New("invalid confirmation code")
	ErrCategoryNotFound        = errors.New("category not found")
	ErrGenreNotFound           = errors.New("genre not found")
	ErrTitleNotFound           = errors.New("title not found")
	ErrReviewNotFound          = errors.New("review not found")
	ErrCommentNotFound         = errors.New("comment not found")
	ErrReviewExists            = errors.New("review already exists")
	ErrSlugTaken               = errors.New("slug already taken")
	ErrInvalidYear             = errors.New("year is in the future")
	ErrForbidden               = errors.New("insufficient rights")
)
