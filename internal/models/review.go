package models

import (
	"time"

	"github.com/google/uuid"
)

// ReviewDB represents a review record in the database.
// A (title_id, author_id) pair is unique: one review per author per title.
type ReviewDB struct {
	ReviewID int64     `json:"id" db:"review_id"`    // Primary key
	TitleID  int64     `json:"-" db:"title_id"`      // Parent title
	AuthorID uuid.UUID `json:"-" db:"author_id"`     // Authoring user, server-assigned
	Author   string    `json:"author" db:"author"`   // Author username, joined on read
	Text     string    `json:"text" db:"text"`       // Review body
	Score    int       `json:"score" db:"score"`     // Integer score in [1,10]
	PubDate  time.Time `json:"pub_date" db:"pub_date"` // Server-set publication time
}
