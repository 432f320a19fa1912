// Package repo provides postgres access for clips
package repo

import (
	"context"
	"time"

	"timewarp/internal/modkit/repokit"
	"timewarp/internal/platform/store"
)

// Repo defines the repository contract for clips
type Repo interface {
	GetByPublicID(ctx context.Context, publicID string) (RowClip, error)
	List(ctx context.Context, from, to *time.Time, limit, offset int) ([]RowClip, error)
}

// RowClip is a clip row joined to its public references
type RowClip struct {
	PublicID             string
	YoutubeVideoID       string
	PerformanceDate      time.Time
	Title                *string
	Notes                *string
	ContributorPublicID  string
	AddedViaSubmissionID string
	CreatedAt            time.Time
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const clipColumns = `
cl.public_id, cl.youtube_video_id, cl.performance_date, cl.title, cl.notes,
c.public_id, cl.added_via_submission_id, cl.created_at
`

func (r *queries) GetByPublicID(ctx context.Context, publicID string) (RowClip, error) {
	const sql = `
select` + clipColumns + `
from clips cl
join contributors c on c.id = cl.contributor_id
where cl.public_id = $1
`
	return store.One(ctx, r.q, scanClip, sql, publicID)
}

func (r *queries) List(ctx context.Context, from, to *time.Time, limit, offset int) ([]RowClip, error) {
	const sql = `
select` + clipColumns + `
from clips cl
join contributors c on c.id = cl.contributor_id
where ($1::date is null or cl.performance_date >= $1)
and ($2::date is null or cl.performance_date <= $2)
order by cl.performance_date asc, cl.created_at asc, cl.id asc
limit $3 offset $4
`
	return store.Many(ctx, r.q, scanClip, sql, from, to, limit, offset)
}

func scanClip(row repokit.Row) (RowClip, error) {
	var rr RowClip
	if err := row.Scan(
		&rr.PublicID,
		&rr.YoutubeVideoID,
		&rr.PerformanceDate,
		&rr.Title,
		&rr.Notes,
		&rr.ContributorPublicID,
		&rr.AddedViaSubmissionID,
		&rr.CreatedAt,
	); err != nil {
		return RowClip{}, err
	}
	return rr, nil
}
