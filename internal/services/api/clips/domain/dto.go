// Package domain holds DTOs for clip http and service contracts
package domain

import "time"

// Paging defaults and bounds for clip listings
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Clip is the wire shape of a canonical archived clip
// Title defaults to the empty string when the submission carried none
type Clip struct {
	ID                     string  `json:"id"`
	YoutubeVideoID         string  `json:"youtube_video_id"`
	YoutubeURL             string  `json:"youtube_url"`
	PerformanceDate        string  `json:"performance_date"`
	Title                  string  `json:"title"`
	Notes                  *string `json:"notes"`
	CreatedByContributorID string  `json:"created_by_contributor_id"`
	AddedViaSubmissionID   string  `json:"added_via_submission_id"`
	CreatedAt              string  `json:"created_at"`
}

// ListInput is the parsed, validated form of the listing query string
type ListInput struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// ClipPage is one page of clips plus the resume token
type ClipPage struct {
	Items      []Clip  `json:"items"`
	NextCursor *string `json:"next_cursor"`
}
