// Package repo provides postgres access for contributors
package repo

import (
	"context"
	"time"

	"timewarp/internal/modkit/repokit"
	perr "timewarp/internal/platform/errors"
	"timewarp/internal/platform/store"
	str "timewarp/internal/platform/strings"
)

// Repo defines the repository contract for contributors
type Repo interface {
	Insert(ctx context.Context, publicID string, displayName, externalID *string) (RowContributor, error)
}

// RowContributor is a contributor row from the database
type RowContributor struct {
	PublicID    string
	DisplayName *string
	ExternalID  *string
	CreatedAt   time.Time
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

func (r *queries) Insert(
	ctx context.Context,
	publicID string,
	displayName, externalID *string,
) (RowContributor, error) {
	const sql = `
insert into contributors (public_id, display_name, external_id)
values ($1, $2, $3)
returning public_id, display_name, external_id, created_at
`
	row, err := store.One(ctx, r.q, scanContributor, sql,
		publicID, str.SQLNullPtr(displayName), str.SQLNullPtr(externalID))
	if err != nil {
		return RowContributor{}, perr.FromPostgres(err, "insert contributor")
	}
	return row, nil
}

func scanContributor(row repokit.Row) (RowContributor, error) {
	var rr RowContributor
	if err := row.Scan(&rr.PublicID, &rr.DisplayName, &rr.ExternalID, &rr.CreatedAt); err != nil {
		return RowContributor{}, err
	}
	return rr, nil
}
