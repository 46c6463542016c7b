package models

// CategoryDB represents a title category record in the database
type CategoryDB struct {
	CategoryID int64  `json:"-" db:"category_id"` // Primary key
	Name       string `json:"name" db:"name"`     // Display name
	Slug       string `json:"slug" db:"slug"`     // Unique slug
}
