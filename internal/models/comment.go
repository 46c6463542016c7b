package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentDB represents a comment on a review.
type CommentDB struct {
	CommentID int64     `json:"id" db:"comment_id"`     // Primary key
	ReviewID  int64     `json:"-" db:"review_id"`       // Parent review
	AuthorID  uuid.UUID `json:"-" db:"author_id"`       // Authoring user, server-assigned
	Author    string    `json:"author" db:"author"`     // Author username, joined on read
	Text      string    `json:"text" db:"text"`         // Comment body
	PubDate   time.Time `json:"pub_date" db:"pub_date"` // Server-set publication time
}
