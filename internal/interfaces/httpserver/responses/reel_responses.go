package responses

import (
	"time"

	"samadhan-setu/services/reel-api/internal/domain/reel"
)

// UploadResponse is returned when a reel has been fully published.
type UploadResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Video   string `json:"video"`
}

// BuildUploadResponse creates the success response from a published reel.
func BuildUploadResponse(rec *reel.Reel) *UploadResponse {
	return &UploadResponse{
		Message: "Reel uploaded successfully",
		ID:      rec.ID,
		Video:   rec.VideoURL,
	}
}

// ReelResponse represents one reel on the read surface.
type ReelResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	By          string    `json:"by"`
	Video       string    `json:"video"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// BuildReelResponse creates a read response from a domain reel.
func BuildReelResponse(rec *reel.Reel) *ReelResponse {
	return &ReelResponse{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		By:          rec.SubmittedBy,
		Video:       rec.VideoURL,
		Status:      rec.Status,
		CreatedAt:   rec.CreatedAt,
	}
}

// BuildReelListResponse creates the list response.
func BuildReelListResponse(recs []reel.Reel) []*ReelResponse {
	out := make([]*ReelResponse, 0, len(recs))
	for i := range recs {
		out = append(out, BuildReelResponse(&recs[i]))
	}
	return out
}
