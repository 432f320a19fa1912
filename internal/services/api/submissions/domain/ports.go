package domain

import "context"

// ServicePort defines the service contract for submissions
type ServicePort interface {
	Intake(ctx context.Context, in CreateSubmissionInput) (IntakeResult, error)
	Get(ctx context.Context, publicID string) (Submission, error)
}
