package models

// GenreDB represents a title genre record in the database
type GenreDB struct {
	GenreID int64  `json:"-" db:"genre_id"` // Primary key
	Name    string `json:"name" db:"name"`  // Display name
	Slug    string `json:"slug" db:"slug"`  // Unique slug
}
