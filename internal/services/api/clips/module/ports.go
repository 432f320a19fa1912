package module

import (
	"context"

	clipsdom "timewarp/internal/services/api/clips/domain"
	clipssvc "timewarp/internal/services/api/clips/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptClipsPort adapts the clips service to the domain port interface
type adaptClipsPort struct{ svc clipssvc.Service }

// Get implements the domain ServicePort interface
func (a adaptClipsPort) Get(ctx context.Context, publicID string) (clipsdom.Clip, error) {
	return a.svc.Get(ctx, publicID)
}

// List implements the domain ServicePort interface
func (a adaptClipsPort) List(ctx context.Context, in clipsdom.ListInput) (clipsdom.ClipPage, error) {
	return a.svc.List(ctx, in)
}
