// Package http provides http transport for clips
package http

import (
	stdhttp "net/http"
	"strconv"
	"time"

	"timewarp/internal/core/cursor"
	"timewarp/internal/core/dates"
	"timewarp/internal/modkit/httpkit"
	perr "timewarp/internal/platform/errors"
	"timewarp/internal/services/api/clips/domain"
	svc "timewarp/internal/services/api/clips/service"
)

// Register mounts clip endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /clips/{id} Clips clipsGet
// @Summary Fetch one archived clip
// @Tags Clips
// @Produce json
// @Success 200 {object} domain.Clip "ok"
// @Failure 404 {string} string "not found"
// @Router /clips/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "id"))
}

// swagger:route GET /clips Clips clipsList
// @Summary Browse archived clips by performance date
// @Tags Clips
// @Produce json
// @Param from query string false "inclusive lower bound YYYY-MM-DD"
// @Param to query string false "inclusive upper bound YYYY-MM-DD"
// @Param limit query int false "page size, defaults to 50, capped at 200"
// @Param cursor query string false "resume token from a prior page"
// @Success 200 {object} domain.ClipPage "ok"
// @Failure 400 {string} string "bad date or cursor"
// @Router /clips [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	in, err := parseListQuery(r)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), in)
}

func parseListQuery(r *stdhttp.Request) (domain.ListInput, error) {
	q := r.URL.Query()
	var in domain.ListInput

	var err error
	if in.From, err = parseBound(q.Get("from"), "from"); err != nil {
		return domain.ListInput{}, err
	}
	if in.To, err = parseBound(q.Get("to"), "to"); err != nil {
		return domain.ListInput{}, err
	}

	// non-numeric limits fall back to the default; the service clamps the range
	if raw := q.Get("limit"); raw != "" {
		if n, convErr := strconv.Atoi(raw); convErr == nil {
			in.Limit = n
		}
	}

	if tok := q.Get("cursor"); tok != "" {
		off, decErr := cursor.Decode(tok)
		if decErr != nil {
			return domain.ListInput{}, perr.InvalidArgf("Invalid cursor")
		}
		in.Offset = off
	}
	return in, nil
}

func parseBound(raw, name string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := dates.ParsePerformanceDate(raw)
	if err != nil {
		return nil, perr.InvalidArgf("Invalid '%s' date format; expected YYYY-MM-DD", name)
	}
	return &d, nil
}
