package models

// Domain event types published to Kafka.
const (
	EventUserActivated  = "user_activated"
	EventReviewCreated  = "review_created"
	EventCommentCreated = "comment_created"
)

// Event is the payload published to Kafka for domain events.
type Event struct {
	EventID   string `json:"event_id"`            // Unique event id
	Type      string `json:"type"`                // One of the Event* constants
	Timestamp int64  `json:"timestamp"`           // Unix seconds
	UserID    string `json:"user_id"`             // Acting user
	TitleID   int64  `json:"title_id,omitempty"`  // Set for review/comment events
	ReviewID  int64  `json:"review_id,omitempty"` // Set for review/comment events
}
