// Package service contains the intake workflow
package service

import (
	"context"
	"errors"
	"time"

	"timewarp/internal/core/dates"
	"timewarp/internal/core/ident"
	"timewarp/internal/core/youtube"
	"timewarp/internal/modkit/repokit"
	perr "timewarp/internal/platform/errors"
	"timewarp/internal/services/api/submissions/domain"
	"timewarp/internal/services/api/submissions/repo"
)

// DuplicateClipMessage is recorded on submissions rejected by the dedup key
const DuplicateClipMessage = "Duplicate clip for this YouTube video and performance date"

// Service defines the service contract for submissions
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new submissions service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("submissions.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("submissions.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Intake runs one submission attempt inside a single transaction
// every path past the contributor check persists exactly one submission row
func (s *Svc) Intake(ctx context.Context, in domain.CreateSubmissionInput) (domain.IntakeResult, error) {
	var out domain.IntakeResult

	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		contribID, err := r.ContributorID(ctx, in.ContributorID)
		if errors.Is(err, perr.ErrNotFound) {
			// precondition failure: nothing is written
			return perr.InvalidArgf("Contributor not found")
		}
		if err != nil {
			return err
		}

		subPublicID := ident.New(ident.Submission)

		// content checks, date first; the first failure is the recorded error
		perfDate, dateErr := dates.ParsePerformanceDate(in.RawDateInput)
		videoID, vidErr := youtube.ExtractVideoID(in.RawYoutubeInput)
		contentErr := dateErr
		if contentErr == nil {
			contentErr = vidErr
		}

		if contentErr != nil {
			msg := contentErr.Error()
			_, at, err := r.InsertSubmission(ctx, s.insertRow(subPublicID, contribID, in, &msg))
			if err != nil {
				return err
			}
			out = s.result(subPublicID, in, domain.StatusRejected, nil, &msg, at, false)
			return nil
		}

		// provisional row; finalized below before the tx commits
		subID, at, err := r.InsertSubmission(ctx, s.insertRow(subPublicID, contribID, in, nil))
		if err != nil {
			return err
		}

		reject := func() error {
			if err := r.FinalizeRejected(ctx, subID, DuplicateClipMessage); err != nil {
				return err
			}
			msg := DuplicateClipMessage
			out = s.result(subPublicID, in, domain.StatusRejected, nil, &msg, at, true)
			return nil
		}

		// short-circuit before attempting the insert
		if _, found, err := r.ClipIDByKey(ctx, videoID, perfDate); err != nil {
			return err
		} else if found {
			return reject()
		}

		clipPublicID := ident.New(ident.Clip)
		clipID, inserted, err := r.InsertClip(ctx, repo.ClipInsert{
			PublicID:             clipPublicID,
			ContributorID:        contribID,
			VideoID:              videoID,
			RawYoutubeInput:      in.RawYoutubeInput,
			PerformanceDate:      perfDate,
			Title:                in.Title,
			Notes:                in.Notes,
			AddedViaSubmissionID: subPublicID,
		})
		if err != nil {
			return err
		}
		if !inserted {
			// lost the race; the unique key settles it, same outcome as the short-circuit
			return reject()
		}

		if err := r.FinalizeAccepted(ctx, subID, clipID); err != nil {
			return err
		}
		out = s.result(subPublicID, in, domain.StatusAccepted, &clipPublicID, nil, at, false)
		return nil
	})
	if err != nil {
		return domain.IntakeResult{}, err
	}
	return out, nil
}

// Get returns one submission by its public id
func (s *Svc) Get(ctx context.Context, publicID string) (domain.Submission, error) {
	row, err := s.Repo.GetByPublicID(ctx, publicID)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.Submission{}, perr.NotFoundf("Not found")
	}
	if err != nil {
		return domain.Submission{}, err
	}
	return domain.Submission{
		ID:              row.PublicID,
		ContributorID:   row.ContributorPublicID,
		ClipID:          row.ClipPublicID,
		Status:          row.Status,
		ValidationError: row.ValidationError,
		RawYoutubeInput: row.RawYoutubeInput,
		RawDateInput:    row.RawDateInput,
		Title:           row.Title,
		Notes:           row.Notes,
		SubmittedAt:     row.SubmittedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *Svc) insertRow(
	publicID string,
	contributorID int64,
	in domain.CreateSubmissionInput,
	validationError *string,
) repo.SubmissionInsert {
	return repo.SubmissionInsert{
		PublicID:        publicID,
		ContributorID:   contributorID,
		Status:          domain.StatusRejected,
		ValidationError: validationError,
		RawYoutubeInput: in.RawYoutubeInput,
		RawDateInput:    in.RawDateInput,
		Title:           in.Title,
		Notes:           in.Notes,
	}
}

func (s *Svc) result(
	publicID string,
	in domain.CreateSubmissionInput,
	status string,
	clipID *string,
	validationError *string,
	at time.Time,
	duplicate bool,
) domain.IntakeResult {
	return domain.IntakeResult{
		Submission: domain.Submission{
			ID:              publicID,
			ContributorID:   in.ContributorID,
			ClipID:          clipID,
			Status:          status,
			ValidationError: validationError,
			RawYoutubeInput: in.RawYoutubeInput,
			RawDateInput:    in.RawDateInput,
			Title:           in.Title,
			Notes:           in.Notes,
			SubmittedAt:     at.UTC().Format(time.RFC3339),
		},
		Duplicate: duplicate,
	}
}
