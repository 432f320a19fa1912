package domain

import "context"

// ServicePort defines the service contract for clips
type ServicePort interface {
	Get(ctx context.Context, publicID string) (Clip, error)
	List(ctx context.Context, in ListInput) (ClipPage, error)
}
