package domain

import "context"

// ServicePort defines the service contract for contributors
type ServicePort interface {
	Create(ctx context.Context, in CreateContributorInput) (Contributor, error)
}
