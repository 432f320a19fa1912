// Package service contains contributor workflows
package service

import (
	"context"
	"time"

	"timewarp/internal/core/ident"
	"timewarp/internal/modkit/repokit"
	"timewarp/internal/services/api/contributors/domain"
	"timewarp/internal/services/api/contributors/repo"
)

// Service defines the service contract for contributors
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new contributors service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("contributors.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("contributors.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Create registers a contributor and returns its public record
func (s *Svc) Create(ctx context.Context, in domain.CreateContributorInput) (domain.Contributor, error) {
	row, err := s.Repo.Insert(ctx, ident.New(ident.Contributor), in.DisplayName, in.ExternalID)
	if err != nil {
		return domain.Contributor{}, err
	}
	return domain.Contributor{
		ID:          row.PublicID,
		DisplayName: row.DisplayName,
		ExternalID:  row.ExternalID,
		CreatedAt:   row.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}
