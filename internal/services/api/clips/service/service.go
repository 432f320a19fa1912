// Package service contains clip read workflows
package service

import (
	"context"
	"errors"
	"time"

	"timewarp/internal/core/cursor"
	"timewarp/internal/core/dates"
	"timewarp/internal/core/youtube"
	"timewarp/internal/modkit/repokit"
	perr "timewarp/internal/platform/errors"
	str "timewarp/internal/platform/strings"
	"timewarp/internal/services/api/clips/domain"
	"timewarp/internal/services/api/clips/repo"
)

// Service defines the service contract for clips
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new clips service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("clips.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("clips.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Get returns one clip by its public id
func (s *Svc) Get(ctx context.Context, publicID string) (domain.Clip, error) {
	row, err := s.Repo.GetByPublicID(ctx, publicID)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.Clip{}, perr.NotFoundf("Not found")
	}
	if err != nil {
		return domain.Clip{}, err
	}
	return toClip(row), nil
}

// List returns one page ordered by performance date with creation order as tiebreak
// it fetches one extra row to detect whether a next page exists
func (s *Svc) List(ctx context.Context, in domain.ListInput) (domain.ClipPage, error) {
	limit := in.Limit
	if limit < 1 {
		limit = domain.DefaultLimit
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}

	rows, err := s.Repo.List(ctx, in.From, in.To, limit+1, in.Offset)
	if err != nil {
		return domain.ClipPage{}, err
	}

	page := domain.ClipPage{Items: make([]domain.Clip, 0, len(rows))}
	for i, row := range rows {
		if i == limit {
			tok := cursor.Encode(in.Offset + limit)
			page.NextCursor = &tok
			break
		}
		page.Items = append(page.Items, toClip(row))
	}
	return page, nil
}

func toClip(row repo.RowClip) domain.Clip {
	return domain.Clip{
		ID:                     row.PublicID,
		YoutubeVideoID:         row.YoutubeVideoID,
		YoutubeURL:             youtube.WatchURL(row.YoutubeVideoID),
		PerformanceDate:        dates.Format(row.PerformanceDate),
		Title:                  str.Deref(row.Title),
		Notes:                  row.Notes,
		CreatedByContributorID: row.ContributorPublicID,
		AddedViaSubmissionID:   row.AddedViaSubmissionID,
		CreatedAt:              row.CreatedAt.UTC().Format(time.RFC3339),
	}
}
