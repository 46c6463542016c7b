package models

// Title is the read view of a reviewable work: category and genres are
// resolved, rating is the average review score (nil without reviews).
type Title struct {
	TitleID     int64       `json:"id"`
	Name        string      `json:"name"`
	Year        int         `json:"year"`
	Description string      `json:"description"`
	Rating      *float64    `json:"rating"`
	Category    *CategoryDB `json:"category"`
	Genres      []GenreDB   `json:"genre"`
}
