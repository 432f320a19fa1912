// Package repo provides postgres access for the intake workflow
package repo

import (
	"context"
	"errors"
	"time"

	"timewarp/internal/modkit/repokit"
	perr "timewarp/internal/platform/errors"
	"timewarp/internal/platform/store"
	str "timewarp/internal/platform/strings"
)

// Repo defines the repository contract for submissions
// all mutating calls are expected to run inside one intake transaction
type Repo interface {
	ContributorID(ctx context.Context, publicID string) (int64, error)
	InsertSubmission(ctx context.Context, ins SubmissionInsert) (int64, time.Time, error)
	FinalizeAccepted(ctx context.Context, submissionID, clipID int64) error
	FinalizeRejected(ctx context.Context, submissionID int64, message string) error
	ClipIDByKey(ctx context.Context, videoID string, performanceDate time.Time) (int64, bool, error)
	InsertClip(ctx context.Context, ins ClipInsert) (int64, bool, error)
	GetByPublicID(ctx context.Context, publicID string) (RowSubmission, error)
}

// SubmissionInsert is the provisional row written at the top of intake
type SubmissionInsert struct {
	PublicID        string
	ContributorID   int64
	Status          string
	ValidationError *string
	RawYoutubeInput string
	RawDateInput    string
	Title           *string
	Notes           *string
}

// ClipInsert is the canonical clip candidate written when content is valid
type ClipInsert struct {
	PublicID             string
	ContributorID        int64
	VideoID              string
	RawYoutubeInput      string
	PerformanceDate      time.Time
	Title                *string
	Notes                *string
	AddedViaSubmissionID string
}

// RowSubmission is a submission row joined to its public references
type RowSubmission struct {
	PublicID            string
	ContributorPublicID string
	ClipPublicID        *string
	Status              string
	ValidationError     *string
	RawYoutubeInput     string
	RawDateInput        string
	Title               *string
	Notes               *string
	SubmittedAt         time.Time
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

func (r *queries) ContributorID(ctx context.Context, publicID string) (int64, error) {
	const sql = `select id from contributors where public_id = $1`
	return store.One(ctx, r.q, scanID, sql, publicID)
}

func (r *queries) InsertSubmission(ctx context.Context, ins SubmissionInsert) (int64, time.Time, error) {
	const sql = `
insert into submissions
(public_id, status, contributor_id, validation_error, raw_youtube_input, raw_date_input, title, notes)
values ($1, $2, $3, $4, $5, $6, $7, $8)
returning id, submitted_at
`
	type idAt struct {
		id int64
		at time.Time
	}
	got, err := store.One(ctx, r.q, func(row repokit.Row) (idAt, error) {
		var v idAt
		if err := row.Scan(&v.id, &v.at); err != nil {
			return idAt{}, err
		}
		return v, nil
	}, sql,
		ins.PublicID, ins.Status, ins.ContributorID, str.SQLNullPtr(ins.ValidationError),
		ins.RawYoutubeInput, ins.RawDateInput, str.SQLNullPtr(ins.Title), str.SQLNullPtr(ins.Notes))
	if err != nil {
		return 0, time.Time{}, perr.FromPostgres(err, "insert submission")
	}
	return got.id, got.at, nil
}

func (r *queries) FinalizeAccepted(ctx context.Context, submissionID, clipID int64) error {
	const sql = `
update submissions set status = 'accepted', clip_id = $2, validation_error = null where id = $1
`
	return perr.FromPostgres(store.ExecOne(ctx, r.q, sql, submissionID, clipID), "finalize accepted")
}

func (r *queries) FinalizeRejected(ctx context.Context, submissionID int64, message string) error {
	const sql = `
update submissions set status = 'rejected', clip_id = null, validation_error = $2 where id = $1
`
	return perr.FromPostgres(store.ExecOne(ctx, r.q, sql, submissionID, message), "finalize rejected")
}

func (r *queries) ClipIDByKey(ctx context.Context, videoID string, performanceDate time.Time) (int64, bool, error) {
	const sql = `select id from clips where youtube_video_id = $1 and performance_date = $2`
	id, err := store.One(ctx, r.q, scanID, sql, videoID, performanceDate)
	if errors.Is(err, perr.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// InsertClip relies on the composite unique key to settle races
// the losing side sees no returned row and reports ok=false with a healthy tx
func (r *queries) InsertClip(ctx context.Context, ins ClipInsert) (int64, bool, error) {
	const sql = `
insert into clips
(public_id, contributor_id, youtube_video_id, raw_youtube_input, performance_date, title, notes, added_via_submission_id)
values ($1, $2, $3, $4, $5, $6, $7, $8)
on conflict (youtube_video_id, performance_date) do nothing
returning id
`
	id, err := store.One(ctx, r.q, scanID, sql,
		ins.PublicID, ins.ContributorID, ins.VideoID, ins.RawYoutubeInput,
		ins.PerformanceDate, str.SQLNullPtr(ins.Title), str.SQLNullPtr(ins.Notes),
		ins.AddedViaSubmissionID)
	if errors.Is(err, perr.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, perr.FromPostgres(err, "insert clip")
	}
	return id, true, nil
}

func (r *queries) GetByPublicID(ctx context.Context, publicID string) (RowSubmission, error) {
	const sql = `
select s.public_id, c.public_id, cl.public_id, s.status, s.validation_error,
s.raw_youtube_input, s.raw_date_input, s.title, s.notes, s.submitted_at
from submissions s
join contributors c on c.id = s.contributor_id
left join clips cl on cl.id = s.clip_id
where s.public_id = $1
`
	return store.One(ctx, r.q, scanSubmission, sql, publicID)
}

func scanID(row repokit.Row) (int64, error) {
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func scanSubmission(row repokit.Row) (RowSubmission, error) {
	var rr RowSubmission
	if err := row.Scan(
		&rr.PublicID,
		&rr.ContributorPublicID,
		&rr.ClipPublicID,
		&rr.Status,
		&rr.ValidationError,
		&rr.RawYoutubeInput,
		&rr.RawDateInput,
		&rr.Title,
		&rr.Notes,
		&rr.SubmittedAt,
	); err != nil {
		return RowSubmission{}, err
	}
	return rr, nil
}
