package module

import (
	"context"

	contribdom "timewarp/internal/services/api/contributors/domain"
	contribsvc "timewarp/internal/services/api/contributors/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptContributorsPort adapts the contributors service to the domain port interface
type adaptContributorsPort struct{ svc contribsvc.Service }

// Create implements the domain ServicePort interface
func (a adaptContributorsPort) Create(
	ctx context.Context,
	in contribdom.CreateContributorInput,
) (contribdom.Contributor, error) {
	return a.svc.Create(ctx, in)
}
