// Package domain holds DTOs for submission http and service contracts
package domain

// Status values a submission can end in; set once during intake, never changed
const (
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// CreateSubmissionInput is the body for an intake attempt
type CreateSubmissionInput struct {
	ContributorID   string  `json:"contributor_id"    validate:"required" example:"ctr_0f8fad5bd9cb469fa165708867fc2da3"`
	RawYoutubeInput string  `json:"raw_youtube_input" validate:"required" example:"https://youtu.be/dQw4w9WgXcQ"`
	RawDateInput    string  `json:"raw_date_input"    validate:"required" example:"2024-05-12"`
	Title           *string `json:"title"             validate:"omitempty,max=500"`
	Notes           *string `json:"notes"`
}

// Submission is the wire shape of one intake audit record
type Submission struct {
	ID              string  `json:"id"`
	ContributorID   string  `json:"contributor_id"`
	ClipID          *string `json:"clip_id"`
	Status          string  `json:"status"`
	ValidationError *string `json:"validation_error"`
	RawYoutubeInput string  `json:"raw_youtube_input"`
	RawDateInput    string  `json:"raw_date_input"`
	Title           *string `json:"title"`
	Notes           *string `json:"notes"`
	SubmittedAt     string  `json:"submitted_at"`
}

// IntakeResult pairs the persisted submission with how the attempt ended
// Duplicate distinguishes the conflict outcome at the transport layer
type IntakeResult struct {
	Submission Submission
	Duplicate  bool
}
