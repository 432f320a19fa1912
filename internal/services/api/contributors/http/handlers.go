// Package http provides http transport for contributors
package http

import (
	stdhttp "net/http"

	"timewarp/internal/modkit/httpkit"
	"timewarp/internal/services/api/contributors/domain"
	svc "timewarp/internal/services/api/contributors/service"
)

// Register mounts contributor endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateContributorInput](r, "/", h.create)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /contributors Contributors contributorsCreate
// @Summary Register a contributor
// @Tags Contributors
// @Accept json
// @Produce json
// @Param payload body domain.CreateContributorInput true "Contributor"
// @Success 201 {object} domain.Contributor "created"
// @Router /contributors [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateContributorInput) (any, error) {
	out, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}
