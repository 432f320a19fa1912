package module

import (
	"context"

	subdom "timewarp/internal/services/api/submissions/domain"
	subsvc "timewarp/internal/services/api/submissions/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptSubmissionsPort adapts the submissions service to the domain port interface
type adaptSubmissionsPort struct{ svc subsvc.Service }

// Intake implements the domain ServicePort interface
func (a adaptSubmissionsPort) Intake(
	ctx context.Context,
	in subdom.CreateSubmissionInput,
) (subdom.IntakeResult, error) {
	return a.svc.Intake(ctx, in)
}

// Get implements the domain ServicePort interface
func (a adaptSubmissionsPort) Get(ctx context.Context, publicID string) (subdom.Submission, error) {
	return a.svc.Get(ctx, publicID)
}
