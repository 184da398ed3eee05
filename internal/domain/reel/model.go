package reel

import "time"

// Record statuses maintained by the record store client. A reel stays
// "pending" from the placeholder insert until its video URL is set, so
// orphaned placeholders remain queryable.
const (
	StatusPending   = "pending"
	StatusPublished = "published"
)

// Reel represents one media submission and its metadata.
type Reel struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SubmittedBy string    `json:"by"`
	VideoURL    string    `json:"video"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Meta is the validated metadata triple extracted from an upload form.
type Meta struct {
	Title       string
	Description string
	SubmittedBy string
}
