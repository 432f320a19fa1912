// Package http provides http transport for submissions
package http

import (
	stdhttp "net/http"

	"timewarp/internal/modkit/httpkit"
	"timewarp/internal/services/api/submissions/domain"
	svc "timewarp/internal/services/api/submissions/service"
)

// Register mounts submission endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateSubmissionInput](r, "/", h.intake)
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /submissions Submissions submissionsIntake
// @Summary Submit a performance clip reference
// @Tags Submissions
// @Accept json
// @Produce json
// @Param payload body domain.CreateSubmissionInput true "Submission"
// @Success 201 {object} domain.Submission "accepted or content-rejected"
// @Failure 409 {object} domain.Submission "duplicate clip"
// @Router /submissions [post]
func (h *handlers) intake(r *stdhttp.Request, in domain.CreateSubmissionInput) (any, error) {
	out, err := h.svc.Intake(r.Context(), in)
	if err != nil {
		return nil, err
	}
	if out.Duplicate {
		return httpkit.Conflict(out.Submission), nil
	}
	return httpkit.Created(out.Submission), nil
}

// swagger:route GET /submissions/{id} Submissions submissionsGet
// @Summary Fetch one submission audit record
// @Tags Submissions
// @Produce json
// @Success 200 {object} domain.Submission "ok"
// @Failure 404 {string} string "not found"
// @Router /submissions/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "id"))
}
